// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/cobra"

	"pii-mask/internal/formatters"
	_ "pii-mask/internal/formatters/csv"
	_ "pii-mask/internal/formatters/json"
	_ "pii-mask/internal/formatters/text"
	_ "pii-mask/internal/formatters/yaml"
)

func newDetectCmd(flags *globalFlags) *cobra.Command {
	var (
		output  string
		format  string
		noColor bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "detect [file]",
		Short: "Report detected personal information without changing the input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolveConfig(cmd)
			if err != nil {
				return err
			}
			masker, err := flags.newMasker(cmd, cfg)
			if err != nil {
				return err
			}

			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			results, err := masker.DetectPII(cmd.Context(), text, cfg.EntityTypes)
			if err != nil {
				return err
			}

			options := formatters.FormatterOptions{
				NoColor: noColor || output != "" || !isTerminal(cmd.OutOrStdout()),
				Verbose: verbose,
			}
			report, err := formatters.Export(format, results, options)
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, report)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the report to this file instead of stdout")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: json, yaml, text or csv")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "include the recognizer of each entity")
	return cmd
}
