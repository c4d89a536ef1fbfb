package serialize

import (
	"fmt"
	"strings"

	"github.com/c360/ptil/csc"
	"github.com/c360/ptil/ptilerr"
)

// Format selects one of the three serialization densities.
type Format string

const (
	Verbose Format = "verbose"
	Compact Format = "compact"
	Ultra   Format = "ultra"
)

// Valid reports whether f names one of the three supported formats.
func (f Format) Valid() bool {
	switch f {
	case Verbose, Compact, Ultra:
		return true
	default:
		return false
	}
}

// One renders a single CSC in format. It is the entry point All calls for
// each CSC; serialize.All is the same operation applied to a predicate list.
func One(c csc.CSC, format Format) (string, error) {
	switch format {
	case Verbose:
		return renderVerbose(c), nil
	case Compact:
		return renderCompact(c), nil
	case Ultra:
		return renderUltra(c), nil
	default:
		return "", ptilerr.WrapInvalid(
			fmt.Errorf("unknown format %q", string(format)),
			"serialize", "One", "select format",
		)
	}
}

// All renders every CSC in cscs, in order, joined by a single space. An
// empty list serializes to the empty string (spec §8, empty-input case).
func All(cscs []csc.CSC, format Format) (string, error) {
	if !format.Valid() {
		return "", ptilerr.WrapInvalid(
			fmt.Errorf("unknown format %q", string(format)),
			"serialize", "All", "select format",
		)
	}
	if len(cscs) == 0 {
		return "", nil
	}

	out := make([]string, 0, len(cscs))
	for _, c := range cscs {
		s, err := One(c, format)
		if err != nil {
			return "", err
		}
		out = append(out, s)
	}

	return strings.Join(out, " "), nil
}
