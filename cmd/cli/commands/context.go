package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/oakmere/surveyor-rota/internal/config"
	"github.com/oakmere/surveyor-rota/pkg/db"
	"github.com/oakmere/surveyor-rota/pkg/postgres"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database db.Database
	Postgres *postgres.DB
	Logger   *zap.Logger
	Ctx      context.Context
}
