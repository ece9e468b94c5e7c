package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/mdxassets/internal/engine"
)

var (
	migrateWrite  bool
	migrateViewer bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Convert relative Markdown images into figure components",
	Long: `Convert relative Markdown images (![alt](file.png "caption")) into
<ImageFigure /> components and move each image to
public/images/activities/<slug>/<page>/.

The component import is added once per document. External URLs, site-root
paths and missing files are skipped and left for manual handling.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Migrate(context.Background(), &engine.MigrateRequest{
			Write:  migrateWrite,
			Viewer: migrateViewer,
		})
		if result != nil {
			if jsonOutput {
				if jerr := outputJSON(result); jerr != nil {
					return jerr
				}
			} else {
				printRunResult("Migrate Markdown Images", eng.Config().Paths.Root, result, err != nil)
			}
		}
		return err
	},
}

func init() {
	migrateCmd.Flags().BoolVarP(&migrateWrite, "write", "w", false, "Apply the plan (default is a dry run)")
	migrateCmd.Flags().BoolVar(&migrateViewer, "viewer", false, "Emit <ImageFigureViewer /> instead of <ImageFigure />")
}
