package encoder

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/c360/ptil/config"
	"github.com/c360/ptil/ptilerr"
	"github.com/c360/ptil/serialize"
)

func invalidFormatType(formatType string) error {
	return ptilerr.WrapInvalid(
		fmt.Errorf("unknown training format_type %q", formatType),
		"encoder", "EncodeForTraining", "format_type must be standard, csc_only, or mixed")
}

// TrainingConfig controls EncodeForTraining's output layout (spec §6).
// FormatType selects the layout (config.LayoutStandard/LayoutCSCOnly/
// LayoutMixed); Format selects which serialize.Format renders the CSC
// portion of that layout — a choice the enumerated spec fields leave
// unnamed, so it defaults to serialize.Compact in line with the
// OVERVIEW's goal of compressing prompt token counts.
type TrainingConfig struct {
	FormatType      string
	Format          serialize.Format
	CSCWeight       float64
	OriginalWeight  float64
	Separator       string
	IncludeBrackets bool
}

// DefaultTrainingConfig returns spec §6's documented defaults.
func DefaultTrainingConfig() TrainingConfig {
	return TrainingConfig{
		FormatType:      config.LayoutStandard,
		Format:          serialize.Compact,
		CSCWeight:       1.0,
		OriginalWeight:  1.0,
		Separator:       " ",
		IncludeBrackets: true,
	}
}

// EncodeForTraining runs Encode and renders the result in one of the
// three training layouts §6 defines. An unknown cfg.FormatType or
// cfg.Format is InvalidInput and the only error this method returns.
func (e *Encoder) EncodeForTraining(ctx context.Context, text string, cfg TrainingConfig) (string, error) {
	serialized, err := e.EncodeAndSerialize(ctx, text, cfg.Format)
	if err != nil {
		return "", err
	}

	switch cfg.FormatType {
	case config.LayoutCSCOnly:
		return serialized, nil
	case config.LayoutStandard:
		return renderStandard(serialized, text, cfg), nil
	case config.LayoutMixed:
		return renderMixed(serialized, text, cfg), nil
	default:
		return "", invalidFormatType(cfg.FormatType)
	}
}

func renderStandard(serialized, original string, cfg TrainingConfig) string {
	if cfg.IncludeBrackets {
		return "[CSC] " + serialized + " [TEXT] " + original
	}
	return serialized + cfg.Separator + original
}

func renderMixed(serialized, original string, cfg TrainingConfig) string {
	cscRepeat := weightRepeat(cfg.CSCWeight)
	originalRepeat := weightRepeat(cfg.OriginalWeight)

	parts := make([]string, 0, cscRepeat+originalRepeat)
	for i := 0; i < cscRepeat; i++ {
		if cfg.IncludeBrackets {
			parts = append(parts, "[CSC] "+serialized)
		} else {
			parts = append(parts, serialized)
		}
	}
	for i := 0; i < originalRepeat; i++ {
		if cfg.IncludeBrackets {
			parts = append(parts, "[TEXT] "+original)
		} else {
			parts = append(parts, original)
		}
	}
	return strings.Join(parts, cfg.Separator)
}

// weightRepeat rounds a non-negative weight to a repeat count. A weight
// below 0.5 rounds to zero repeats, omitting that side of the mix
// entirely — a deliberate reading of "repeated with the configured
// weights" for the case of a fractional weight below one.
func weightRepeat(weight float64) int {
	if weight <= 0 {
		return 0
	}
	return int(math.Round(weight))
}
