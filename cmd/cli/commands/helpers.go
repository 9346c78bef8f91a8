package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/oakmere/surveyor-rota/pkg/core/model"
)

// parseArea resolves a user-supplied area name to SOUTH or NORTH
func parseArea(s string) (model.Area, error) {
	switch strings.ToUpper(s) {
	case string(model.AreaSouth):
		return model.AreaSouth, nil
	case string(model.AreaNorth):
		return model.AreaNorth, nil
	default:
		return "", fmt.Errorf("unknown area %q (expected SOUTH or NORTH)", s)
	}
}

// parseAnchor parses an anchor date, defaulting to today when empty
func parseAnchor(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	anchor, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("anchor must be in YYYY-MM-DD form: %w", err)
	}
	return anchor, nil
}
