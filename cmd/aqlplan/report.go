package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bayneri/aqlplan/internal/config"
	"github.com/bayneri/aqlplan/internal/planner"
	"github.com/bayneri/aqlplan/internal/report"
	"github.com/bayneri/aqlplan/internal/spec"
	"github.com/bayneri/aqlplan/internal/ux"
)

func newReportCmd(a *app) *cobra.Command {
	var (
		file    string
		outDir  string
		explain bool
		labels  string
	)
	cmd := &cobra.Command{
		Use:     "report",
		Short:   "Write an inspection plan as summary.md and summary.json",
		Example: "  aqlplan report -f inspection.yaml --out out/report --format md",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			specDoc, err := loadSpec(file)
			if err != nil {
				return err
			}
			extra, err := spec.ParseLabels(labels)
			if err != nil {
				return err
			}
			plan, err := planner.Build(specDoc.Request(extra))
			if err != nil {
				return err
			}
			cfg := a.config()
			paths, err := report.Write(outDir, plan, parseFormat(cfg.Format), report.Options{Explain: explain})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote report to %s\n", strings.Join(paths, ", "))
			if plan.SampleSize > plan.LotSize {
				ux.Warn(cmd.ErrOrStderr(), cfg.Plain, "sample size exceeds lot size; inspect every item")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to inspection spec, - for stdin")
	cmd.Flags().StringVar(&outDir, "out", "out/report", "output directory")
	cmd.Flags().String(config.KeyFormat, "md,json", "comma-separated output formats")
	cmd.Flags().BoolVar(&explain, "explain", false, "include how each number was derived")
	cmd.Flags().StringVar(&labels, "labels", "", "extra labels in key=value,key=value format")
	return cmd
}

func parseFormat(input string) []string {
	if strings.TrimSpace(input) == "" {
		return []string{"md", "json"}
	}
	var out []string
	for _, part := range strings.Split(input, ",") {
		trimmed := strings.ToLower(strings.TrimSpace(part))
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return []string{"md", "json"}
	}
	return out
}
