package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oakmere/surveyor-rota/pkg/core/model"
	"github.com/oakmere/surveyor-rota/pkg/core/services"
)

// EditCmd creates the edit command
func EditCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <area> <date> <surveyor_id> <shift>",
		Short: "Manually edit one assignment (shift OFF deletes it)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			area, err := parseArea(args[0])
			if err != nil {
				return err
			}
			if _, err := parseAnchor(args[1]); err != nil {
				return fmt.Errorf("invalid date: %w", err)
			}

			shift := model.Shift(strings.ToUpper(args[3]))
			switch shift {
			case model.ShiftDay, model.ShiftNight, model.ShiftOff:
			default:
				return fmt.Errorf("unknown shift %q (expected DAY, NIGHT or OFF)", args[3])
			}

			breakMins, _ := cmd.Flags().GetInt("break")
			confirmed, _ := cmd.Flags().GetBool("confirmed")

			err = services.EditAssignment(app.Ctx, app.Database, app.Logger, services.EditRequest{
				Area:       area,
				Date:       model.DateKey(args[1]),
				SurveyorID: args[2],
				Shift:      shift,
				BreakMins:  breakMins,
				Confirmed:  confirmed,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Assignment updated\n\n")
			return nil
		},
	}

	cmd.Flags().Int("break", 0, "Break minutes")
	cmd.Flags().Bool("confirmed", false, "Mark the assignment as confirmed")

	return cmd
}
