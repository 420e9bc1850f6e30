package store

import (
	"context"
	"fmt"

	"github.com/hksalaudeen/bookman/internal/config"
	"github.com/hksalaudeen/bookman/internal/logger"
	"github.com/hksalaudeen/bookman/migrations"
)

// Storages aggregates every repository used by the service layer.
type Storages struct {
	UserRepository UserRepository
	BookRepository BookRepository
}

// NewStorages connects to the database described by cfg, applies pending
// schema migrations, and returns the repository container.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		BookRepository: NewBookRepository(db, log),
	}, nil
}
