package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListSurveyorsCmd creates the listSurveyors command
func ListSurveyorsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listSurveyors",
		Short: "List all surveyors with their preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			surveyors, err := app.Database.GetSurveyors(app.Ctx)
			if err != nil {
				return err
			}

			fmt.Printf("\nSurveyors (%d):\n", len(surveyors))
			for _, s := range surveyors {
				status := "inactive"
				if s.Active {
					status = "active"
				}
				area := s.AreaPreference
				if area == "" {
					area = "any"
				}
				shift := s.ShiftPreference
				if shift == "" {
					shift = "any"
				}
				fmt.Printf("  %-36s %-20s %-8s area=%-6s shift=%-6s unavailable=%d\n",
					s.ID, s.Name, status, area, shift, len(s.NonAvailability))
			}
			fmt.Println()

			return nil
		},
	}
}
