package commands

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/spf13/cobra"

	"github.com/oakmere/surveyor-rota/pkg/core/model"
	"github.com/oakmere/surveyor-rota/pkg/core/services"
)

// PopulateCmd creates the populate command
func PopulateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "populate <area>",
		Short: "Auto-populate a fortnight roster for an area",
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

			dryRun, _ := cmd.Flags().GetBool("dry-run")
			var rnd *rand.Rand
			if cmd.Flags().Changed("seed") {
				seed, _ := cmd.Flags().GetInt64("seed")
				rnd = rand.New(rand.NewSource(seed))
			}

			result, err := services.PopulateRoster(app.Ctx, app.Database, app.Cfg, app.Logger, area, anchor, dryRun, rnd)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Roster populated for %s (%s to %s)\n\n", result.Area, result.WindowStart, result.WindowEnd)
			printRoster(result.Assignments)

			if len(result.Issues) > 0 {
				fmt.Printf("Issues (%d):\n", len(result.Issues))
				for _, issue := range result.Issues {
					fmt.Printf("  - %s\n", issue)
				}
				fmt.Println()
			}
			if dryRun {
				fmt.Println("Dry run - nothing was saved.")
			}

			return nil
		},
	}

	cmd.Flags().String("anchor", "", "Anchor date (YYYY-MM-DD, default today)")
	cmd.Flags().Bool("dry-run", false, "Compute the roster without saving it")
	cmd.Flags().Int64("seed", 0, "Seed for the balancing shuffle (reproducible runs)")

	return cmd
}

func printRoster(byDate model.AssignmentsByDate) {
	dates := make([]model.DateKey, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })

	for _, date := range dates {
		if len(byDate[date]) == 0 {
			continue
		}
		fmt.Printf("%s (%s):\n", date, date.Weekday())
		for _, a := range byDate[date] {
			fmt.Printf("  %-6s %s\n", a.Shift, a.SurveyorID)
		}
	}
	fmt.Println()
}
