package main

import (
	"context"

	uxsettings "github.com/goliatone/go-ux-settings"
	"github.com/goliatone/go-ux-settings/s3input"
)

// loadInput reads a local document or an s3://bucket/key object. An empty
// location yields an empty Input.
func loadInput(ctx context.Context, location string) (uxsettings.Input, error) {
	switch {
	case location == "":
		return uxsettings.Input{}, nil
	case s3input.IsURL(location):
		return s3input.NewFromEnv().Load(ctx, location)
	default:
		return uxsettings.LoadInput(location)
	}
}
