package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bayneri/aqlplan/internal/acceptance"
	"github.com/bayneri/aqlplan/internal/planner"
	"github.com/bayneri/aqlplan/internal/sampling"
)

type lotRangeRow struct {
	Range   int    `yaml:"range"`
	Low     int    `yaml:"low"`
	High    string `yaml:"high"`
	General int    `yaml:"general"`
	Special int    `yaml:"special"`
}

type codeStepRow struct {
	Step int    `yaml:"step"`
	UpTo string `yaml:"upTo"`
	GI   string `yaml:"GI"`
	GII  string `yaml:"GII"`
	GIII string `yaml:"GIII"`
}

type codeSizeRow struct {
	Code       string `yaml:"code"`
	SampleSize int    `yaml:"sampleSize"`
}

func lotRangeRows() []lotRangeRow {
	var rows []lotRangeRow
	for i, r := range sampling.DirectRanges {
		high := "inf"
		if !r.Unbounded() {
			high = strconv.Itoa(r.High)
		}
		general, _ := sampling.ClassifyDirect(r.Low, sampling.LevelII)
		special, _ := sampling.ClassifyDirect(r.Low, sampling.LevelS1)
		rows = append(rows, lotRangeRow{Range: i + 1, Low: r.Low, High: high, General: general, Special: special})
	}
	return rows
}

func codeStepRows() []codeStepRow {
	var rows []codeStepRow
	for step := 0; step < sampling.CodeLetterSteps(); step++ {
		upTo := "inf"
		lot := sampling.CodeBreakpoints[len(sampling.CodeBreakpoints)-1] + 1
		if step < len(sampling.CodeBreakpoints) {
			upTo = strconv.Itoa(sampling.CodeBreakpoints[step])
			lot = sampling.CodeBreakpoints[step]
		}
		row := codeStepRow{Step: step + 1, UpTo: upTo}
		letters := make([]string, len(sampling.CodeLevels))
		for i, level := range sampling.CodeLevels {
			code, _ := sampling.ClassifyCodeLetter(lot, level)
			letters[i] = code.String()
		}
		row.GI, row.GII, row.GIII = letters[0], letters[1], letters[2]
		rows = append(rows, row)
	}
	return rows
}

func codeSizeRows() []codeSizeRow {
	var rows []codeSizeRow
	for _, code := range sampling.CodeAlphabet {
		size, _ := sampling.SampleSizeForCode(code)
		rows = append(rows, codeSizeRow{Code: code.String(), SampleSize: size})
	}
	return rows
}

func newTablesCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:       "tables [lot-ranges|code-letters|aql-limits]",
		Short:     "Print the lookup tables the calculators use",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"lot-ranges", "code-letters", "aql-limits"},
		RunE: func(cmd *cobra.Command, args []string) error {
			names := []string{"lot-ranges", "code-letters", "aql-limits"}
			if len(args) == 1 {
				names = args
			}
			if format != "text" && format != "yaml" {
				return fmt.Errorf("unknown format %q (want text or yaml)", format)
			}
			w := cmd.OutOrStdout()
			for i, name := range names {
				if i > 0 && format == "text" {
					fmt.Fprintln(w, "")
				}
				if err := printTable(w, name, format); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or yaml")
	return cmd
}

func printTable(w io.Writer, name, format string) error {
	var payload interface{}
	switch name {
	case "lot-ranges":
		payload = lotRangeRows()
	case "code-letters":
		payload = map[string]interface{}{"steps": codeStepRows(), "sampleSizes": codeSizeRows()}
	case "aql-limits":
		payload = acceptance.StandardAQLs
	default:
		return fmt.Errorf("unknown table %q (want lot-ranges, code-letters or aql-limits)", name)
	}

	if format == "yaml" {
		data, err := yaml.Marshal(map[string]interface{}{name: payload})
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	switch name {
	case "lot-ranges":
		fmt.Fprintln(tw, "RANGE\tLOT_SIZE\tGENERAL\tSPECIAL")
		for _, row := range lotRangeRows() {
			fmt.Fprintf(tw, "%d\t%d-%s\t%d\t%d\n", row.Range, row.Low, row.High, row.General, row.Special)
		}
	case "code-letters":
		fmt.Fprintln(tw, "STEP\tUP_TO\tGI\tGII\tGIII")
		for _, row := range codeStepRows() {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", row.Step, row.UpTo, row.GI, row.GII, row.GIII)
		}
		fmt.Fprintln(tw, "")
		fmt.Fprintln(tw, "CODE\tSAMPLE_SIZE")
		for _, row := range codeSizeRows() {
			fmt.Fprintf(tw, "%s\t%d\n", row.Code, row.SampleSize)
		}
	case "aql-limits":
		fmt.Fprintln(tw, "AQL\tREF_ACCEPT\tREF_REJECT")
		for _, entry := range acceptance.StandardAQLs {
			fmt.Fprintf(tw, "%s\t%d\t%d\n", planner.FormatAQL(entry.AQL), entry.Accept, entry.Reject)
		}
	}
	return tw.Flush()
}
