package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ColorsConfig holds color names for the UI. Values are names such as
// "magenta", ANSI numbers such as "13", or hex such as "#ff00ff".
type ColorsConfig struct {
	HighlightBackground string `toml:"highlight_background"`
	HighlightForeground string `toml:"highlight_foreground"`
	HeaderForeground    string `toml:"header_foreground"`
	InfoForeground      string `toml:"info_foreground"`
	WarningForeground   string `toml:"warning_foreground"`
	ErrorForeground     string `toml:"error_foreground"`
}

// DefaultColors returns the built-in palette
func DefaultColors() ColorsConfig {
	return ColorsConfig{
		HighlightBackground: "magenta",
		HighlightForeground: "black",
		HeaderForeground:    "yellow",
		InfoForeground:      "blue",
		WarningForeground:   "yellow",
		ErrorForeground:     "red",
	}
}

var colorNames = map[string]string{
	"black":        "0",
	"red":          "1",
	"green":        "2",
	"yellow":       "3",
	"blue":         "4",
	"magenta":      "5",
	"cyan":         "6",
	"gray":         "7",
	"grey":         "7",
	"darkgray":     "8",
	"darkgrey":     "8",
	"lightred":     "9",
	"lightgreen":   "10",
	"lightyellow":  "11",
	"lightblue":    "12",
	"lightmagenta": "13",
	"lightcyan":    "14",
	"white":        "15",
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ResolveColor turns a configured color into a terminal color value.
// An empty string or "reset" means the terminal default and yields "".
func ResolveColor(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch {
	case v == "" || v == "reset":
		return "", nil
	case hexColor.MatchString(v):
		return v, nil
	}
	if code, ok := colorNames[v]; ok {
		return code, nil
	}
	if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 255 {
		return v, nil
	}
	return "", fmt.Errorf("unknown color %q", value)
}

func (c ColorsConfig) validate() []error {
	var errs []error
	fields := []struct {
		name  string
		value string
	}{
		{"highlight_background", c.HighlightBackground},
		{"highlight_foreground", c.HighlightForeground},
		{"header_foreground", c.HeaderForeground},
		{"info_foreground", c.InfoForeground},
		{"warning_foreground", c.WarningForeground},
		{"error_foreground", c.ErrorForeground},
	}
	for _, f := range fields {
		if _, err := ResolveColor(f.value); err != nil {
			errs = append(errs, fmt.Errorf("colors.%s: %w", f.name, err))
		}
	}
	return errs
}
