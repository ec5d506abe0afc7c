package store

import (
	"context"

	"github.com/salamaline/salama/internal/config"
	"github.com/salamaline/salama/internal/logger"
)

// Storages aggregates all repositories backed by the shared database
// connection.
type Storages struct {
	CaseRepository CaseRepository
}

// NewStorages connects to the database, applies pending migrations, and
// wires up all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		CaseRepository: NewCaseRepository(db, log),
	}, nil
}
