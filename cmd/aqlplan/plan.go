package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bayneri/aqlplan/internal/logging"
	"github.com/bayneri/aqlplan/internal/spec"
)

func loadSpec(file string) (spec.Spec, error) {
	if strings.TrimSpace(file) == "" {
		return spec.Spec{}, errors.New("-f is required")
	}
	specDoc, err := spec.Load(file)
	if err != nil {
		return spec.Spec{}, err
	}
	if err := specDoc.Validate(); err != nil {
		return spec.Spec{}, err
	}
	logging.Log.WithField("name", specDoc.Metadata.Name).Debug("loaded inspection spec")
	return specDoc, nil
}

func newPlanCmd(a *app) *cobra.Command {
	var (
		out  outputOptions
		file string
	)
	cmd := &cobra.Command{
		Use:     "plan",
		Short:   "Compute the sampling plan described by an inspection file",
		Example: "  aqlplan plan -f inspection.yaml --defects 2",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			specDoc, err := loadSpec(file)
			if err != nil {
				return err
			}
			labels, err := spec.ParseLabels(out.labels)
			if err != nil {
				return err
			}
			req := specDoc.Request(labels)
			if cmd.Flags().Changed("defects") {
				defects, _ := cmd.Flags().GetInt("defects")
				req.Defects = &defects
			}
			return runPlan(cmd.OutOrStdout(), req, out, a.config())
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to inspection spec, - for stdin")
	cmd.Flags().IntP("defects", "d", 0, "observed defects; overrides the file")
	out.register(cmd)
	return cmd
}

func newValidateCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check an inspection file without computing a plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadSpec(file); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Spec is valid.")
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to inspection spec, - for stdin")
	return cmd
}
