package cli

import (
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"rain-scent/internal/catalog"
	"rain-scent/internal/service"
)

type rootOptions struct {
	catalogDir string
}

// NewRootCmd arma el arbol de comandos de rainscent.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "rainscent",
		Short: "Rainy-season perfume quiz",
		Long: `rainscent runs the rainy-season perfume quiz from the terminal:
print the questions, rank the catalog for a set of answers, or take the quiz interactively.`,
		SilenceUsage: true,
	}
	root.CompletionOptions.HiddenDefaultCmd = true
	root.PersistentFlags().StringVar(&opts.catalogDir, "catalog", os.Getenv("CATALOG_PATH"), "Directory with questions.yaml and perfumes.yaml (default: embedded catalog)")

	root.AddCommand(
		newQuestionsCmd(opts),
		newRecommendCmd(opts),
		newQuizCmd(opts),
	)
	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (o *rootOptions) loadCatalog() (*catalog.Catalog, error) {
	return catalog.Load(o.catalogDir)
}

// pickerForSeed devuelve un picker determinista si seed != 0.
func pickerForSeed(seed uint64) service.Picker {
	if seed == 0 {
		return service.DefaultPicker
	}
	return rand.New(rand.NewPCG(seed, seed))
}
