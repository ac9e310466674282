package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bayneri/aqlplan/internal/acceptance"
	"github.com/bayneri/aqlplan/internal/config"
	"github.com/bayneri/aqlplan/internal/logging"
	"github.com/bayneri/aqlplan/internal/planner"
	"github.com/bayneri/aqlplan/internal/report"
	"github.com/bayneri/aqlplan/internal/spec"
	"github.com/bayneri/aqlplan/internal/ux"
)

type outputOptions struct {
	json         bool
	failOnReject bool
	labels       string
}

func (o *outputOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.json, "json", false, "print the plan as JSON")
	cmd.Flags().BoolVar(&o.failOnReject, "fail-on-reject", false, "exit with status 2 when the verdict is REJECT")
	cmd.Flags().StringVar(&o.labels, "labels", "", "extra labels in key=value,key=value format")
}

func newCalcCmd(a *app) *cobra.Command {
	var (
		out     outputOptions
		lotSize int
		defects int
	)
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute the sampling plan for one lot from flags",
		Example: `  aqlplan calc --lot-size 2000 --level II --aql 1.5
  aqlplan calc --lot-size 500 --level GII --aql 2.5 --classification code-letter --defects 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("lot-size") {
				return errors.New("--lot-size is required")
			}
			labels, err := spec.ParseLabels(out.labels)
			if err != nil {
				return err
			}
			cfg := a.config()
			req := planner.Request{
				LotSize:        lotSize,
				Level:          cfg.Level,
				AQL:            cfg.AQL,
				Classification: cfg.Classification,
				Acceptance:     cfg.Acceptance,
				Labels:         labels,
			}
			if cmd.Flags().Changed("defects") {
				req.Defects = &defects
			}
			return runPlan(cmd.OutOrStdout(), req, out, cfg)
		},
	}
	cmd.Flags().IntVarP(&lotSize, "lot-size", "n", 0, "number of units in the lot (required)")
	cmd.Flags().IntVarP(&defects, "defects", "d", 0, "observed defects in the sample; enables a verdict")
	cmd.Flags().String(config.KeyLevel, "", "inspection level: I, II, III, S-1..S-4 (direct) or GI, GII, GIII (code-letter); default II or GII to match the classification")
	cmd.Flags().Float64(config.KeyAQL, 1.5, "AQL percentage")
	cmd.Flags().String(config.KeyClassification, "direct", "classification strategy: direct or code-letter")
	cmd.Flags().String(config.KeyAcceptance, "", "acceptance strategy: tiered or rounding (default pairs with classification)")
	out.register(cmd)
	return cmd
}

func runPlan(w io.Writer, req planner.Request, out outputOptions, cfg config.Config) error {
	logging.Log.WithFields(logrus.Fields{
		"lotSize":        req.LotSize,
		"level":          req.Level,
		"aql":            req.AQL,
		"classification": req.Classification,
		"acceptance":     req.Acceptance,
	}).Debug("building sampling plan")

	plan, err := planner.Build(req)
	if err != nil {
		return err
	}
	logging.Log.WithFields(logrus.Fields{
		"sampleSize": plan.SampleSize,
		"accept":     plan.AcceptNumber,
		"reject":     plan.RejectNumber,
	}).Debug("sampling plan ready")

	if out.json {
		if err := report.EncodeJSON(w, plan); err != nil {
			return err
		}
	} else {
		ux.RenderPlan(w, plan, cfg.Plain)
	}

	if out.failOnReject && plan.Verdict == acceptance.VerdictReject {
		return exitError{code: exitCodeRejected, err: fmt.Errorf("lot rejected: %d defects >= %d", *plan.Defects, plan.RejectNumber)}
	}
	return nil
}
