package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bayneri/aqlplan/internal/explain"
)

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <topic>",
		Short: "Explain a sampling concept: " + strings.Join(explain.Topics(), ", "),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("explain requires a topic: " + strings.Join(explain.Topics(), ", "))
			}
			text, err := explain.Topic(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
