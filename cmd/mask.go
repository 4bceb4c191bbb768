// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/cobra"
)

func newMaskCmd(flags *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "mask [file]",
		Short: "Replace detected personal information in the input",
		Long:  "Read text from file, or standard input when no file or '-' is given, and print it with detected entities rewritten by the configured operators.",
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

			masked, err := masker.AnonymizeText(cmd.Context(), text, cfg.EntityTypes, nil)
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, masked)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the masked text to this file instead of stdout")
	return cmd
}
