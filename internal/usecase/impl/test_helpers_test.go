package impl

import (
	"io"
	"log/slog"
	"time"

	"prwatch/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Activation: &config.ActivationConfig{
			TokenTTL: 72 * time.Hour,
			BaseURL:  "https://prwatch.test",
		},
	}
}
