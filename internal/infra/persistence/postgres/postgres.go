// Package postgres wires the GORM PostgreSQL client and implements the
// domain repository interfaces on top of it.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/lifecycle"
	"bazaar/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New builds the shared *gorm.DB. The connection is pinged on fx start and
// closed on stop; a background goroutine watches the pool for wait pressure.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// Multi-step atomic operations go through txManager.Execute instead.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// monitorDBPool periodically samples sql.DB pool stats and logs whenever
// connections had to wait since the previous sample.
func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(dbPoolMonitorInterval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if waitDelta := cur.WaitCount - prev.WaitCount; waitDelta > 0 {
				logPoolWait(ctx, logger, cur, waitDelta, cur.WaitDuration-prev.WaitDuration)
			}
			prev = cur
		}
	}
}

func logPoolWait(ctx context.Context, logger *slog.Logger, stats sql.DBStats, waitDelta int64, waitDuration time.Duration) {
	attrs := []slog.Attr{
		slog.Int64("waitCountDelta", waitDelta),
		slog.Duration("waitDurationDelta", waitDuration),
		slog.Duration("avgWait", waitDuration/time.Duration(waitDelta)),
		slog.Int("maxOpenConns", stats.MaxOpenConnections),
		slog.Int("openConns", stats.OpenConnections),
		slog.Int("inUseConns", stats.InUse),
		slog.Int("idleConns", stats.Idle),
		slog.Int64("waitCountTotal", stats.WaitCount),
		slog.Duration("waitDurationTotal", stats.WaitDuration),
	}

	level := slog.LevelDebug
	msg := "Postgres pool wait observed"
	if waitDuration >= dbPoolWarnDurationThreshold {
		level = slog.LevelWarn
		msg = "Postgres pool wait detected"
	}

	logger.LogAttrs(ctx, level, msg, attrs...)
}
