package app

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// initLogger создает и настраивает логгер.
// "production" включает JSON-логгер, иначе development с заданным уровнем.
func initLogger(logLevel string) (*zap.Logger, error) {
	if strings.EqualFold(logLevel, "production") {
		logger, err := zap.NewProduction()
		if err != nil {
			return nil, fmt.Errorf("failed to init logger: %w", err)
		}
		return logger, nil
	}

	cfg := zap.NewDevelopmentConfig()
	if level, err := zap.ParseAtomicLevel(logLevel); err == nil {
		cfg.Level = level
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}
	return logger, nil
}
