package arabshape

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko"
	"golang.org/x/text/unicode/bidi"
)

// Configuration keys read by OptionsFromConfig.
const (
	KeyDirection = "arabshape.direction" // "rtl" (default) or "ltr"
	KeyParallel  = "arabshape.parallel"  // "true" or "false" (default)
)

// OptionsFromConfig reads options from a configuration. Missing keys keep
// their defaults. For invalid values an error is returned together with the
// default options.
func OptionsFromConfig(conf schuko.Configuration) (Options, error) {
	opts := DefaultOptions()
	if conf == nil {
		return opts, nil
	}
	switch d := strings.ToLower(strings.TrimSpace(conf.GetString(KeyDirection))); d {
	case "", "rtl":
	case "ltr":
		opts.Direction = bidi.LeftToRight
	default:
		return DefaultOptions(), fmt.Errorf("arabshape: invalid value for %s: %q", KeyDirection, d)
	}
	switch p := strings.ToLower(strings.TrimSpace(conf.GetString(KeyParallel))); p {
	case "", "false", "no", "off":
	case "true", "yes", "on":
		opts.Parallel = true
	default:
		return DefaultOptions(), fmt.Errorf("arabshape: invalid value for %s: %q", KeyParallel, p)
	}
	tracer().P("direction", directionName(opts.Direction)).Debugf("options from configuration, parallel = %v", opts.Parallel)
	return opts, nil
}

func directionName(d bidi.Direction) string {
	if d == bidi.LeftToRight {
		return "ltr"
	}
	return "rtl"
}
