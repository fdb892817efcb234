package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	uxsettings "github.com/goliatone/go-ux-settings"
)

func ordinalCmd(a *app) *cobra.Command {
	var (
		locale   string
		suffixes []string
	)

	cmd := &cobra.Command{
		Use:   "ordinal N [N...]",
		Short: "Render numbers with their ordinal suffix",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := &uxsettings.DateInput{Locales: locale}
			if len(suffixes) > 0 {
				if len(suffixes) != 4 {
					return fmt.Errorf("--suffixes needs one,two,few,other, got %d values", len(suffixes))
				}
				in.OrdinalSuffixes = map[string]uxsettings.OrdinalSuffixes{
					locale: {One: suffixes[0], Two: suffixes[1], Few: suffixes[2], Other: suffixes[3]},
				}
			}

			dates := a.resolver.DateFormat(in)
			for _, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid number %q: %w", arg, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), dates.Ordinal(n))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&locale, "locale", "l", "en", "locale of the suffix set")
	cmd.Flags().StringSliceVar(&suffixes, "suffixes", nil, "suffix set for --locale as one,two,few,other")
	return cmd
}
