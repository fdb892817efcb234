package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	uxsettings "github.com/goliatone/go-ux-settings"
)

func numberCmd(a *app) *cobra.Command {
	var (
		inputPath string
		style     string
	)

	cmd := &cobra.Command{
		Use:   "number VALUE [VALUE...]",
		Short: "Format numbers with the resolved number settings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadInput(cmd.Context(), inputPath)
			if err != nil {
				return err
			}

			settings := a.resolver.Resolve(in)
			numberStyle := uxsettings.NumberStyle(style)
			format := settings.FormatNumber(numberStyle)

			for _, arg := range args {
				value, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid number %q: %w", arg, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), format.Format(value, numberStyle))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "f", "", "input document (.yaml, .yml or .json), local or s3://bucket/key")
	cmd.Flags().StringVarP(&style, "style", "s", string(uxsettings.StyleDecimal), "number style")
	return cmd
}
