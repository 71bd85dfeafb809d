package cli

import (
	"context"
	"fmt"

	"deskflow/internal/adapters/inspector"
	"deskflow/internal/adapters/logger"
	"deskflow/internal/adapters/turso"
	"deskflow/internal/infrastructure/config"
	"deskflow/internal/infrastructure/database"
	"deskflow/internal/migrate"
)

// testDBOverride lets tests inject a prepared database client; the
// runtime then neither migrates nor closes it.
var testDBOverride *database.Client

// runtime holds the configuration and adapters shared by the commands.
type runtime struct {
	cfg        *config.Client
	log        *logger.ZapLogger
	client     *database.Client
	usage      *turso.UsageRepository
	scores     *turso.ScoreRepository
	ownsClient bool
}

// setup loads configuration, opens the database, and runs pending
// migrations. Callers must close the returned runtime.
func setup(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if testDBOverride != nil {
		return &runtime{
			cfg:    cfg,
			log:    logger.Nop(),
			client: testDBOverride,
			usage:  turso.NewUsageRepository(testDBOverride),
			scores: turso.NewScoreRepository(testDBOverride),
		}, nil
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	url := cfg.Database.URL
	if url == "" {
		path, err := database.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve database path: %w", err)
		}
		url = "file:" + path
	}

	client, err := database.New(url, cfg.Database.AuthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrate.RunAll(ctx, client.DB); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &runtime{
		cfg:        cfg,
		log:        log,
		client:     client,
		usage:      turso.NewUsageRepository(client),
		scores:     turso.NewScoreRepository(client),
		ownsClient: true,
	}, nil
}

func (r *runtime) close() {
	if r.ownsClient {
		r.client.Close()
	}
	r.log.Sync()
}

func (r *runtime) newInspector() *inspector.Client {
	return inspector.NewClient(r.cfg.Inspector.URL, r.cfg.Inspector.Timeout)
}
