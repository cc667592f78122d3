package config

import (
	"combat-sim/internal/constants"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	LogLevel   string
	ArmySize   int
	SquadCount int
	Seed       uint64
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	armySize, err := getEnvInt("ARMY_SIZE", constants.DefaultArmySize)
	if err != nil {
		return nil, err
	}
	squadCount, err := getEnvInt("SQUAD_COUNT", constants.DefaultSquadCount)
	if err != nil {
		return nil, err
	}
	seed, err := getEnvUint("SEED", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		ArmySize:   armySize,
		SquadCount: squadCount,
		Seed:       seed,
	}

	if cfg.ArmySize < 0 {
		return nil, fmt.Errorf("ARMY_SIZE must not be negative, got %d", cfg.ArmySize)
	}
	if cfg.SquadCount < 1 {
		return nil, fmt.Errorf("SQUAD_COUNT must be at least 1, got %d", cfg.SquadCount)
	}

	logger.Info().
		Str("log_level", cfg.LogLevel).
		Int("army_size", cfg.ArmySize).
		Int("squad_count", cfg.SquadCount).
		Uint64("seed", cfg.Seed).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvUint(key string, fallback uint64) (uint64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a non-negative integer: %w", key, err)
	}
	return n, nil
}

var Module = fx.Provide(Load)
