package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/drblury/swaggerversioning/jsonutil"
	"github.com/drblury/swaggerversioning/weather"
)

func newDocsCmd(flags *globalFlags) *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Write the OpenAPI document of every API version",
		Long:  "Writes <out>/<group>/swagger.json for every published API version.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			a, err := newApp(cfg, cfg.NewLogger(cmd.ErrOrStderr()), weather.NewForecaster())
			if err != nil {
				return err
			}
			return a.writeDocuments(cmd.Context(), outDir, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "docs", "output directory")
	return cmd
}

func (a *app) writeDocuments(ctx context.Context, outDir string, out io.Writer) error {
	for _, group := range a.generator.Groups() {
		doc, err := a.generator.Generate(ctx, group)
		if err != nil {
			return err
		}
		body, err := jsonutil.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encode %s: %w", group, err)
		}

		dir := filepath.Join(outDir, group)
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
		path := filepath.Join(dir, "swagger.json")
		if err := os.WriteFile(path, body, 0o600); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintf(out, "wrote %s\n", path)
	}
	return nil
}
