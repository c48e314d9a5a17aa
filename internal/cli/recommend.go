package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"rain-scent/internal/domain"
	"rain-scent/internal/service"
)

func newRecommendCmd(opts *rootOptions) *cobra.Command {
	var (
		answers []string
		seed    uint64
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank the catalog locally for the given answers",
		Example: `  rainscent recommend --answer q1=misty_forest --answer q7=deep_woody
  rainscent recommend -a q1=night_city -a q4=deep_tones --seed 42 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseAnswerFlags(answers)
			if err != nil {
				return err
			}
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			results := service.NewRecommendationService(cat, pickerForSeed(seed), nil).Recommend(parsed)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			printResults(cmd.OutOrStdout(), results)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&answers, "answer", "a", nil, "Answer as questionId=option[,option...] (repeatable)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for the poetic description templates (0 = random)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")
	return cmd
}

// parseAnswerFlags convierte "q1=a,b" en UserAnswer; la misma pregunta repetida acumula opciones.
func parseAnswerFlags(raw []string) ([]domain.UserAnswer, error) {
	byQuestion := map[string][]string{}
	for _, item := range raw {
		qid, opts, ok := strings.Cut(item, "=")
		qid = strings.TrimSpace(qid)
		if !ok || qid == "" {
			return nil, fmt.Errorf("invalid answer %q, expected questionId=option", item)
		}
		for _, o := range strings.Split(opts, ",") {
			if o = strings.TrimSpace(o); o != "" {
				byQuestion[qid] = append(byQuestion[qid], o)
			}
		}
		if _, seen := byQuestion[qid]; !seen {
			byQuestion[qid] = []string{}
		}
	}

	ids := make([]string, 0, len(byQuestion))
	for id := range byQuestion {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	answers := make([]domain.UserAnswer, 0, len(ids))
	for _, id := range ids {
		answers = append(answers, domain.UserAnswer{QuestionID: id, SelectedOptions: byQuestion[id]})
	}
	return answers, nil
}

func printResults(w io.Writer, results []domain.RecommendationResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No perfumes in catalog.")
		return
	}
	for i, r := range results {
		fmt.Fprintf(w, "%d. %s (%s) - %d%%\n", i+1, r.Perfume.Name, r.Perfume.ID, r.MatchScore)
		fmt.Fprintf(w, "   %s\n", r.RainMetaphor)
		for _, reason := range r.MatchReasons {
			fmt.Fprintf(w, "   * %s\n", reason)
		}
		fmt.Fprintf(w, "   %s\n", r.PoeticDescription)
	}
}
