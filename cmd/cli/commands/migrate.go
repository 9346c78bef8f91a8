package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// MigrateCmd creates the migrate command
func MigrateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Postgres.RunMigrations(app.Ctx); err != nil {
				return err
			}
			fmt.Println("\n✓ Migrations applied")
			return nil
		},
	}
}
