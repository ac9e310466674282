package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/bayneri/aqlplan/internal/planner"
)

const (
	EnvPrefix = "AQLPLAN"
	FileName  = ".aqlplan"
)

const (
	KeyClassification = "classification"
	KeyAcceptance     = "acceptance"
	KeyLevel          = "level"
	KeyAQL            = "aql"
	KeyFormat         = "format"
	KeyLogLevel       = "loglevel"
	KeyPlain          = "plain"
)

// Config holds the defaults a user may set once instead of passing flags on
// every run. An empty Acceptance or Level means "pair with the
// classification".
type Config struct {
	Classification string
	Acceptance     string
	Level          string
	AQL            float64
	Format         string
	LogLevel       string
	Plain          bool
}

func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyClassification, "direct")
	v.SetDefault(KeyAcceptance, "")
	v.SetDefault(KeyLevel, "")
	v.SetDefault(KeyAQL, 1.5)
	v.SetDefault(KeyFormat, "md,json")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyPlain, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile loads path, or $HOME/.aqlplan.yaml when path is empty. A missing
// default file is not an error; a missing explicit file is.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("locate home directory: %w", err)
		}
		v.AddConfigPath(home)
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// DefaultPath is where ReadFile looks when no path is given.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, FileName+".yaml"), nil
}

func FromViper(v *viper.Viper) Config {
	cfg := Config{
		Classification: v.GetString(KeyClassification),
		Acceptance:     v.GetString(KeyAcceptance),
		Level:          v.GetString(KeyLevel),
		AQL:            v.GetFloat64(KeyAQL),
		Format:         v.GetString(KeyFormat),
		LogLevel:       v.GetString(KeyLogLevel),
		Plain:          v.GetBool(KeyPlain),
	}
	if strings.TrimSpace(cfg.Level) == "" {
		cfg.Level = planner.DefaultLevel(cfg.Classification)
	}
	return cfg
}
