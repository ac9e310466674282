package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bayneri/aqlplan/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective defaults and where they came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.config()
			data, err := yaml.Marshal(map[string]interface{}{
				config.KeyClassification: cfg.Classification,
				config.KeyAcceptance:     cfg.Acceptance,
				config.KeyLevel:          cfg.Level,
				config.KeyAQL:            cfg.AQL,
				config.KeyFormat:         cfg.Format,
				config.KeyLogLevel:       cfg.LogLevel,
				config.KeyPlain:          cfg.Plain,
			})
			if err != nil {
				return err
			}
			source := a.v.ConfigFileUsed()
			if source == "" {
				path, err := config.DefaultPath()
				if err != nil {
					return err
				}
				source = path + " (not found, using built-in defaults)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# config: %s\n", source)
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
