package root

import (
	"context"
	"database/sql"

	"taskbuddy/internal/auth"
	"taskbuddy/internal/config"
	"taskbuddy/internal/logging"
	"taskbuddy/internal/service"
	"taskbuddy/internal/storage"
)

func openDB(ctx context.Context, cfg config.Config) (*sql.DB, func(), error) {
	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

// openService builds the full stack for a signed-in command: config, logger,
// session, database.
func openService(ctx context.Context) (*service.Service, config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, nil, err
	}

	session, err := auth.Require(cfg.SessionPath, cfg.SessionSecret)
	if err != nil {
		return nil, config.Config{}, nil, err
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return nil, config.Config{}, nil, err
	}

	db, closeDB, err := openDB(ctx, cfg)
	if err != nil {
		_ = logger.Sync()
		return nil, config.Config{}, nil, err
	}

	cleanup := func() {
		closeDB()
		_ = logger.Sync()
	}
	return service.New(db, logger, session.UserID), cfg, cleanup, nil
}
