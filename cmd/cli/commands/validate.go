package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakmere/surveyor-rota/pkg/core/services"
)

// ValidateCmd creates the validate command
func ValidateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <area>",
		Short: "Validate an area's fortnight roster against the scheduling rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			area, err := parseArea(args[0])
			if err != nil {
				return err
			}

			anchorStr, _ := cmd.Flags().GetString("anchor")
			anchor, err := parseAnchor(anchorStr)
			if err != nil {
				return err
			}

			issues, err := services.ValidateRoster(app.Ctx, app.Database, app.Cfg, app.Logger, area, anchor)
			if err != nil {
				return err
			}

			if len(issues) == 0 {
				fmt.Printf("\n✓ No issues found for %s\n\n", area)
				return nil
			}

			fmt.Printf("\nIssues for %s (%d):\n", area, len(issues))
			for _, issue := range issues {
				fmt.Printf("  - %s\n", issue)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("anchor", "", "Anchor date (YYYY-MM-DD, default today)")

	return cmd
}
