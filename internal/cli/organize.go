package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/mdxassets/internal/engine"
)

var (
	organizeWrite  bool
	organizeStrict bool
)

var organizeCmd = &cobra.Command{
	Use:   "organize",
	Short: "Move inbox images into per-activity directories",
	Long: `Find every /images/_inbox/... path referenced by a document, move the file
to public/images/activities/<slug>/<page>/ and rewrite all occurrences of
the path, whatever the surrounding syntax.

Missing inbox files are reported. With --strict they fail the run before
anything is written.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Organize(context.Background(), &engine.OrganizeRequest{
			Write:  organizeWrite,
			Strict: organizeStrict,
		})
		if result != nil {
			if jsonOutput {
				if jerr := outputJSON(result); jerr != nil {
					return jerr
				}
			} else {
				printRunResult("Organize Inbox Images", eng.Config().Paths.Root, result, err != nil)
			}
		}
		return err
	},
}

func init() {
	organizeCmd.Flags().BoolVarP(&organizeWrite, "write", "w", false, "Apply the plan (default is a dry run)")
	organizeCmd.Flags().BoolVar(&organizeStrict, "strict", false, "Fail without writing if any inbox file is missing")
}
