package cli

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/dataset"
	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/store"
)

// openStore opens the configured database and seeds it with the configured
// dataset. The caller closes the store.
func openStore(ctx context.Context, opts *RootOptions) (*store.Store, error) {
	cfg, err := opts.Settings()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	ds, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load dataset", err)
	}

	log.Ctx(ctx).Debug().Str("path", cfg.Database.Path).Msg("opening database")
	st, err := store.Open(cfg.Database.Path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}

	if err := st.Seed(ctx, ds); err != nil {
		st.Close()
		return nil, WrapExitError(ExitCommandError, "failed to seed database", err)
	}
	return st, nil
}

// closeStore closes st and logs a failure.
func closeStore(ctx context.Context, st *store.Store) {
	if err := st.Close(); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error closing database")
	}
}
