package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	uxsettings "github.com/goliatone/go-ux-settings"
)

type app struct {
	verbose  bool
	weekDays []string
	resolver *uxsettings.Resolver
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "uxsettings",
		Short:        "Resolve UI settings overrides against the built-in defaults",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			opts := []uxsettings.Option{uxsettings.WithLogger(a.logger)}
			for _, entry := range a.weekDays {
				opt, err := weekStartOption(entry)
				if err != nil {
					return err
				}
				opts = append(opts, opt)
			}

			resolver, err := uxsettings.NewResolver(opts...)
			if err != nil {
				return err
			}
			a.resolver = resolver
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringSliceVar(&a.weekDays, "week-start", nil, "pin a locale week start, e.g. en-GB=monday (repeatable)")

	root.AddCommand(resolveCmd(a), ordinalCmd(a), numberCmd(a), serveCmd(a))
	return root
}
