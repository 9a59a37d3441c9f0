package equivalence

import (
	"fmt"

	"github.com/aasmall/gurpsdice/lib/envreader"
	"github.com/aasmall/gurpsdice/lib/logger"
)

const defaultLogName = "gurps-dice"

// Config is read from the environment by LoadConfig.
type Config struct {
	// RoundSeven enables the 7-for-2-dice rate. DICE_ROUND_SEVEN, default true.
	RoundSeven bool
	// TableCount is the dice count Table starts from. DICE_TABLE_COUNT, default 1.
	TableCount int
	LogName    string
	ProjectID  string
	Debug      bool
}

// LoadConfig reads Config through r. Every variable is optional; malformed
// values are reported together.
func LoadConfig(r *envreader.EnvReader) (*Config, error) {
	cfg := &Config{
		RoundSeven: r.GetEnvBoolDefault("DICE_ROUND_SEVEN", true),
		TableCount: r.GetEnvIntDefault("DICE_TABLE_COUNT", 1),
		LogName:    r.GetEnvDefault("LOG_NAME", defaultLogName),
		ProjectID:  r.GetEnvOpt("PROJECT_ID"),
		Debug:      r.GetEnvBoolDefault("DEBUG", false),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	if cfg.TableCount < 0 {
		return nil, fmt.Errorf("DICE_TABLE_COUNT can not be less than zero: %d", cfg.TableCount)
	}
	return cfg, nil
}

// NewLogger builds the logger described by cfg. opts are applied last.
func NewLogger(cfg *Config, opts ...logger.Option) *logger.Logger {
	base := []logger.Option{
		logger.WithProjectID(cfg.ProjectID),
		logger.WithDebug(cfg.Debug),
	}
	return logger.New(cfg.LogName, append(base, opts...)...)
}
