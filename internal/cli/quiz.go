package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rain-scent/internal/config"
	"rain-scent/internal/domain"
	"rain-scent/internal/llm"
	"rain-scent/internal/service"
)

func newQuizCmd(opts *rootOptions) *cobra.Command {
	var (
		seed  uint64
		useAI bool
	)

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Take the quiz interactively",
		Long: `Asks every question on stdin. Enter the option number (or several,
comma separated, for multiple-choice questions); an empty line skips the question.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			answers, err := askQuestions(bufio.NewReader(cmd.InOrStdin()), out, cat.Questions())
			if err != nil {
				return err
			}

			local := service.NewRecommendationService(cat, pickerForSeed(seed), nil)
			if !useAI {
				fmt.Fprintln(out, "\n===== 당신을 위한 장마 향수 =====")
				printResults(out, local.Recommend(answers))
				return nil
			}

			_ = godotenv.Load()
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			var client llm.LLMClient
			if cfg.LLMEnabled() {
				client = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout(), zap.NewNop())
			}
			ai := service.NewAIRecommendationService(client, cat, local, nil, nil, service.AIOptions{Timeout: cfg.LLMTimeout()}, zap.NewNop())
			rec, source := ai.Recommend(context.Background(), answers)
			printAIRecommendation(out, rec, source)
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for the poetic description templates (0 = random)")
	cmd.Flags().BoolVar(&useAI, "ai", false, "Ask the LLM (needs LLM_API_KEY, falls back to the local ranking)")
	return cmd
}

func askQuestions(reader *bufio.Reader, out io.Writer, questions []domain.Question) ([]domain.UserAnswer, error) {
	answers := make([]domain.UserAnswer, 0, len(questions))
	for _, q := range questions {
		fmt.Fprintf(out, "\n%s\n", q.Text)
		for i, o := range q.Options {
			fmt.Fprintf(out, "  [%d] %s\n", i+1, o.Text)
		}

		for {
			if q.Type == domain.QuestionMultiple {
				fmt.Fprint(out, "선택 (쉼표로 여러 개): ")
			} else {
				fmt.Fprint(out, "선택: ")
			}
			line, err := reader.ReadString('\n')
			if err != nil && err != io.EOF {
				return nil, err
			}
			selected, perr := parseSelection(line, q)
			if perr != nil {
				fmt.Fprintln(out, perr.Error())
				if err == io.EOF {
					return answers, nil
				}
				continue
			}
			if len(selected) > 0 {
				answers = append(answers, domain.UserAnswer{QuestionID: q.ID, SelectedOptions: selected})
			}
			if err == io.EOF {
				return answers, nil
			}
			break
		}
	}
	return answers, nil
}

func parseSelection(line string, q domain.Question) ([]string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}
	parts := strings.Split(line, ",")
	if q.Type != domain.QuestionMultiple && len(parts) > 1 {
		return nil, fmt.Errorf("하나만 선택해주세요")
	}
	selected := make([]string, 0, len(parts))
	for _, p := range parts {
		idx, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || idx < 1 || idx > len(q.Options) {
			return nil, fmt.Errorf("1-%d 사이의 번호를 입력해주세요", len(q.Options))
		}
		selected = append(selected, q.Options[idx-1].ID)
	}
	return selected, nil
}

func printAIRecommendation(w io.Writer, rec domain.AIRecommendation, source string) {
	fmt.Fprintf(w, "\n===== %s =====\n", rec.UserProfile.RainType)
	if source == domain.SourceFallback {
		fmt.Fprintln(w, "(AI 추천을 사용할 수 없어 기본 추천을 보여드려요)")
	}
	fmt.Fprintln(w, rec.UserProfile.RecommendationReason)
	for i, m := range rec.TopRecommendations {
		fmt.Fprintf(w, "%d. %s - %d%%\n   %s\n   %s\n", i+1, m.Perfume.Name, m.MatchScore, m.WhyPerfect, m.WhenToWear)
	}
	fmt.Fprintf(w, "\n%s\n", rec.PoeticMessage)
}
