package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newQuestionsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "Print the quiz questions and their option ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, q := range cat.Questions() {
				fmt.Fprintf(out, "%s [%s] %s\n", q.ID, q.Type, q.Text)
				for _, o := range q.Options {
					fmt.Fprintf(out, "  - %s: %s\n", o.ID, o.Text)
				}
			}
			return nil
		},
	}
}
