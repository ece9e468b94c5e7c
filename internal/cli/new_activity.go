package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/mdxassets/internal/engine"
	"github.com/danieljhkim/mdxassets/internal/scaffold"
)

var (
	activitySlug        string
	activityTitle       string
	activityDescription string
	activityLevel       string
	activityDuration    string
	activityTags        string
	activityStatus      string
	activityOrder       int
	activityFrom        string
	activityForce       bool
)

var newActivityCmd = &cobra.Command{
	Use:   "new-activity",
	Short: "Scaffold a new activity from the blueprint",
	Long: `Create <content>/<slug>/index.mdx and an assets/ folder from
blueprints/activity.mdx (or a built-in template when the project has none).

Describe the activity with flags, or with --from pointing at a YAML file
using the same keys (slug, title, description, level, duration, tags,
status, order, sidebarLabel).`,
	Example: `  mdxassets new-activity --title "Sécurité réseau" --tags "réseau,linux"
  mdxassets new-activity --from activity.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if activityFrom == "" && activitySlug == "" && activityTitle == "" {
			return fmt.Errorf("%w: one of --slug, --title or --from is required", engine.ErrValidation)
		}

		eng, err := newEngine()
		if err != nil {
			return err
		}

		req := &engine.NewActivityRequest{
			Activity: scaffold.Activity{
				Slug:        activitySlug,
				Title:       activityTitle,
				Description: activityDescription,
				Level:       activityLevel,
				Duration:    activityDuration,
				Tags:        scaffold.ParseTags(activityTags),
				Status:      activityStatus,
			},
			FromFile: activityFrom,
			Force:    activityForce,
		}
		if cmd.Flags().Changed("order") {
			order := activityOrder
			req.Activity.Order = &order
		}

		result, err := eng.NewActivity(context.Background(), req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}
		if result.Overwritten {
			PrintWarning(fmt.Sprintf("Overwrote %s", result.RelPath))
		}
		PrintSuccess(fmt.Sprintf("Activity created: %s", result.RelPath))
		return nil
	},
}

func init() {
	newActivityCmd.Flags().StringVar(&activitySlug, "slug", "", "Folder name (default: derived from --title)")
	newActivityCmd.Flags().StringVar(&activityTitle, "title", "", "Activity title")
	newActivityCmd.Flags().StringVar(&activityDescription, "description", "", "Short description")
	newActivityCmd.Flags().StringVar(&activityLevel, "level", "", "Difficulty level")
	newActivityCmd.Flags().StringVar(&activityDuration, "duration", "", "Expected duration")
	newActivityCmd.Flags().StringVar(&activityTags, "tags", "", "Comma-separated tags")
	newActivityCmd.Flags().StringVar(&activityStatus, "status", "", "draft, ready or review (default draft)")
	newActivityCmd.Flags().IntVar(&activityOrder, "order", scaffold.DefaultOrder, "Sidebar order")
	newActivityCmd.Flags().StringVar(&activityFrom, "from", "", "YAML file describing the activity")
	newActivityCmd.Flags().BoolVarP(&activityForce, "force", "f", false, "Overwrite an existing index.mdx")
}
