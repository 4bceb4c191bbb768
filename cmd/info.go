// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pii-mask/internal/core"
	"pii-mask/internal/version"
)

func newListEntitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-entities",
		Short: "List the supported entity types",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Supported entity types:")
			for _, e := range core.SupportedEntities() {
				fmt.Fprintf(out, "  %-14s %s\n", e.Type, e.Description)
			}
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		},
	}
}
