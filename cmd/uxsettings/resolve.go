package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	uxsettings "github.com/goliatone/go-ux-settings"
)

func resolveCmd(a *app) *cobra.Command {
	var (
		inputPath string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved settings for an input document",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadInput(cmd.Context(), inputPath)
			if err != nil {
				return err
			}

			scope := uxsettings.NewRootScope(a.resolver)
			settings := scope.Publish(in)
			a.logger.Debug("resolved settings", "input", inputPath, "locale", settings.Formats.Dates.Locales)

			return writeDocument(cmd, output, settings)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "f", "", "input document (.yaml, .yml or .json), local or s3://bucket/key")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "output format: json or yaml")
	return cmd
}

func writeDocument(cmd *cobra.Command, format string, value any) error {
	out := cmd.OutOrStdout()

	switch strings.ToLower(format) {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(value)
	case "yaml", "yml":
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
