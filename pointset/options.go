package pointset

import (
	"fmt"
	"strings"

	"github.com/viant/pointset/index"
)

// Kind names an index backend.
type Kind string

const (
	// KindKd selects the 2-d tree.
	KindKd Kind = "kd"
	// KindBrute selects the ordered-set scan.
	KindBrute Kind = "brute"
)

const defaultKind = KindKd

// ParseKind maps a backend name to its Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kd", "kdtree":
		return KindKd, nil
	case "brute", "bruteforce":
		return KindBrute, nil
	}
	return "", fmt.Errorf("pointset: unknown index kind %q", s)
}

// Options configures an index built by Open.
type Options struct {
	Kind    Kind
	Palette index.Palette
}

// DefaultOptions returns a kd index drawn with the default palette.
func DefaultOptions() Options {
	return Options{Kind: defaultKind, Palette: index.DefaultPalette()}
}

// ParseOptions reads "key=value" strings. Blank entries, entries without '='
// and unknown keys are ignored; an unknown value for a known key is an error.
func ParseOptions(args []string) (Options, error) {
	opts := DefaultOptions()
	for _, raw := range args {
		a := strings.TrimSpace(raw)
		if a == "" {
			continue
		}
		parts := strings.SplitN(a, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(parts[0]))
		val := strings.TrimSpace(parts[1])
		switch key {
		case "index":
			kind, err := ParseKind(val)
			if err != nil {
				return Options{}, err
			}
			opts.Kind = kind
		case "palette":
			switch strings.ToLower(val) {
			case "default":
				opts.Palette = index.DefaultPalette()
			case "mono":
				opts.Palette = index.MonoPalette()
			default:
				return Options{}, fmt.Errorf("pointset: unknown palette %q", val)
			}
		}
	}
	return opts, nil
}
