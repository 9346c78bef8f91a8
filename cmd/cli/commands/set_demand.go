package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakmere/surveyor-rota/pkg/db"
)

// SetDemandCmd creates the setDemand command
func SetDemandCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setDemand <area> <date>",
		Short: "Set the explicit day/night staffing target for one date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			area, err := parseArea(args[0])
			if err != nil {
				return err
			}
			if _, err := parseAnchor(args[1]); err != nil {
				return fmt.Errorf("invalid date: %w", err)
			}

			day, _ := cmd.Flags().GetInt("day")
			night, _ := cmd.Flags().GetInt("night")
			if day < 0 || night < 0 {
				return fmt.Errorf("demand counts must not be negative")
			}

			setting := db.DemandSetting{
				Area:  string(area),
				Date:  args[1],
				Day:   day,
				Night: night,
			}
			if err := app.Database.UpsertDemandSetting(app.Ctx, setting); err != nil {
				return err
			}

			fmt.Printf("\n✓ Demand for %s on %s set to day=%d night=%d\n\n", area, args[1], day, night)
			return nil
		},
	}

	cmd.Flags().Int("day", 0, "Required DAY staffing")
	cmd.Flags().Int("night", 0, "Required NIGHT staffing")

	return cmd
}
