// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pii-mask/internal/config"
	"pii-mask/internal/core"
	"pii-mask/internal/nlp"
	"pii-mask/internal/observability"
	"pii-mask/internal/preprocessors"
	"pii-mask/internal/version"
)

// globalFlags holds the flags shared by the analysis commands
type globalFlags struct {
	configFile string
	language   string
	modelName  string
	entities   string
	threshold  float64
	artifacts  string
	nerURL     string
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "pii-mask",
		Short:         "Detect and mask personal information in Japanese text",
		Long:          "pii-mask finds names, phone numbers, email addresses, addresses, birth dates and My Numbers in Japanese text and rewrites them.",
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configFile, "config", "c", "", "path to configuration file (YAML)")
	pf.StringVarP(&flags.language, "language", "l", config.DefaultLanguage, "language of the input text")
	pf.StringVarP(&flags.modelName, "model", "m", config.DefaultModelName, "NLP model name reported to the NER sidecar")
	pf.StringVarP(&flags.entities, "entities", "e", "", "comma-separated entity types to detect (default: all)")
	pf.Float64VarP(&flags.threshold, "threshold", "t", config.DefaultThreshold, "minimum score of reported entities (0-1)")
	pf.StringVar(&flags.artifacts, "artifacts", "", "JSON file with precomputed NLP entities")
	pf.StringVar(&flags.nerURL, "ner-url", "", "base URL of the NER sidecar")
	pf.BoolVar(&flags.debug, "debug", false, "log analysis steps to stderr")

	root.AddCommand(
		newMaskCmd(flags),
		newDetectCmd(flags),
		newListEntitiesCmd(),
		newVersionCmd(),
	)
	return root
}

// resolveConfig layers the config file, PII_* environment variables and the
// flags that were set explicitly, in that order
func (g *globalFlags) resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	path := g.configFile
	if path == "" {
		path = config.FindConfigFile()
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	set := cmd.Flags().Changed
	if set("language") {
		cfg.Language = g.language
	}
	if set("model") {
		cfg.ModelName = g.modelName
	}
	if set("threshold") {
		cfg.ScoreThreshold = g.threshold
	}
	if set("entities") {
		cfg.EntityTypes = core.ParseEntities(g.entities)
	}
	if set("artifacts") {
		cfg.NLP.Provider = config.ProviderFile
		cfg.NLP.ArtifactsFile = g.artifacts
	}
	if set("ner-url") {
		cfg.NLP.Provider = config.ProviderSidecar
		cfg.NLP.URL = g.nerURL
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

// newMasker builds the masker and its observer for cfg
func (g *globalFlags) newMasker(cmd *cobra.Command, cfg *config.Config) (*core.Masker, error) {
	observer := observability.NewNopObserver()
	if g.debug {
		observer = observability.NewDebugObserver(cmd.ErrOrStderr()).StandardObserver
	}

	provider, err := nlp.NewProvider(cfg.NLP, observer, nlp.WithModel(cfg.ModelName))
	if err != nil {
		return nil, err
	}
	return core.NewMasker(cfg, provider, observer)
}

// readInput reads the optional file argument, standard input otherwise
func readInput(cmd *cobra.Command, args []string) (string, error) {
	path := preprocessors.StdinPath
	if len(args) > 0 {
		path = args[0]
	}
	return preprocessors.NewReader(preprocessors.WithStdin(cmd.InOrStdin())).ReadText(path)
}

// writeOutput writes result to path, or to the command output when path is empty
func writeOutput(cmd *cobra.Command, path, result string) error {
	if path == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), result)
		return err
	}

	cleanOutputPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanOutputPath); dir != "." {
		// Owner only, the output may still hold personal data
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return errors.WithHint(errors.Wrap(err, "error creating output directory"),
				"check directory permissions and available disk space")
		}
	}
	if err := os.WriteFile(cleanOutputPath, []byte(result), 0o600); err != nil {
		return errors.WithHint(errors.Wrap(err, "error writing output file"),
			"check file permissions and available disk space")
	}
	return nil
}

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printError writes err and its hints, colored when w is a terminal
func printError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)
	if !isTerminal(w) {
		red.DisableColor()
		yellow.DisableColor()
	}

	fmt.Fprintf(w, "%s %v\n", red.Sprint("Error:"), err)
	if hints := errors.FlattenHints(err); hints != "" {
		for _, hint := range strings.Split(hints, "\n") {
			if hint = strings.TrimSpace(hint); hint != "" && !strings.HasPrefix(hint, "--") {
				fmt.Fprintf(w, "%s %s\n", yellow.Sprint("Hint:"), hint)
			}
		}
	}
}
