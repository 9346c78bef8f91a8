package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/oakmere/surveyor-rota/pkg/core/model"
	"github.com/oakmere/surveyor-rota/pkg/db"
)

// AddSurveyorCmd creates the addSurveyor command
func AddSurveyorCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addSurveyor <name>",
		Short: "Add or update a surveyor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record := db.Surveyor{
				Name:   args[0],
				Active: true,
			}

			record.ID, _ = cmd.Flags().GetString("id")
			if record.ID == "" {
				record.ID = uuid.New().String()
			}

			inactive, _ := cmd.Flags().GetBool("inactive")
			record.Active = !inactive

			if areaStr, _ := cmd.Flags().GetString("area"); areaStr != "" {
				area, err := parseArea(areaStr)
				if err != nil {
					return err
				}
				record.AreaPreference = string(area)
			}

			if shiftStr, _ := cmd.Flags().GetString("shift"); shiftStr != "" {
				shift := model.Shift(strings.ToUpper(shiftStr))
				if !shift.IsWorking() {
					return fmt.Errorf("unknown shift preference %q (expected DAY or NIGHT)", shiftStr)
				}
				record.ShiftPreference = string(shift)
			}

			unavailable, _ := cmd.Flags().GetString("unavailable")
			dates, err := parseDateList(unavailable)
			if err != nil {
				return err
			}
			record.NonAvailability = dates

			if err := app.Database.UpsertSurveyor(app.Ctx, record); err != nil {
				return err
			}

			fmt.Printf("\n✓ Surveyor %s saved (id %s)\n\n", record.Name, record.ID)
			return nil
		},
	}

	cmd.Flags().String("id", "", "Surveyor ID (default: generated; pass an existing ID to update)")
	cmd.Flags().Bool("inactive", false, "Exclude the surveyor from scheduling")
	cmd.Flags().String("area", "", "Area preference (SOUTH or NORTH)")
	cmd.Flags().String("shift", "", "Shift preference (DAY or NIGHT)")
	cmd.Flags().String("unavailable", "", "Comma-separated non-availability dates (YYYY-MM-DD)")

	return cmd
}

// parseDateList parses a comma-separated list of YYYY-MM-DD dates
func parseDateList(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}

	var dates []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if _, err := time.Parse(model.DateLayout, part); err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", part, err)
		}
		dates = append(dates, part)
	}
	return dates, nil
}
