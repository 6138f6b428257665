package impl

import (
	"io"
	"log/slog"

	"bazaar/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Pagination: &config.PaginationConfig{
			DefaultPageSize: 6,
			MaxPageSize:     100,
		},
	}
}
