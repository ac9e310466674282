package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bayneri/aqlplan/internal/config"
	"github.com/bayneri/aqlplan/internal/logging"
)

const version = "0.1.0"

type app struct {
	v       *viper.Viper
	cfgFile string
}

func (a *app) config() config.Config {
	return config.FromViper(a.v)
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "aqlplan",
		Short: "AQL sampling plans: sample size and accept/reject numbers for a lot.",
		Long: `aqlplan derives how many units to sample from a lot and the defect counts at
which the lot is accepted or rejected, from a lot size, an inspection level and
an AQL percentage.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ReadFile(a.v, a.cfgFile); err != nil {
				return err
			}
			if err := a.v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if err := logging.SetLevel(a.v.GetString(config.KeyLogLevel)); err != nil {
				return err
			}
			logging.Log.SetOutput(cmd.ErrOrStderr())
			if used := a.v.ConfigFileUsed(); used != "" {
				logging.Log.WithField("path", used).Debug("loaded config file")
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.aqlplan.yaml)")
	root.PersistentFlags().StringP(config.KeyLogLevel, "l", "info", "log level: debug, info, warn, error, fatal")
	root.PersistentFlags().Bool(config.KeyPlain, false, "disable colours and borders")

	root.AddCommand(
		newCalcCmd(a),
		newPlanCmd(a),
		newValidateCmd(),
		newReportCmd(a),
		newTablesCmd(),
		newExplainCmd(),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the aqlplan version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
