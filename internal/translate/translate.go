// Package translate turns configured datapoints into the colon-delimited
// pattern=value strings used by LF_ICONS, LS_COLORS and LF_COLORS.
package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/lfenv/lfenv/internal/ansi"
	"github.com/lfenv/lfenv/internal/config"
	"github.com/lfenv/lfenv/internal/listing"
	"github.com/lfenv/lfenv/internal/logger"
	"go.uber.org/zap"
)

// tokenSeparator joins pattern=value tokens.
const tokenSeparator = ":"

// Encoded holds the three derived strings.
type Encoded struct {
	LFIcons  string
	LSColors string
	LFColors string

	// Unsupported lists patterns left out of LS_COLORS, in order.
	Unsupported []string

	counts [3]int
}

// Counts returns the number of tokens in each string.
func (e *Encoded) Counts() (icons, lsColors, lfColors int) {
	return e.counts[0], e.counts[1], e.counts[2]
}

// Translate walks cfg.Data in order and builds the encoded strings.
// Unsupported LS_COLORS keys are reported through v and skipped; a malformed
// color or decoration aborts the whole translation.
func Translate(ctx context.Context, cfg *config.Configuration, v *listing.Validator) (*Encoded, error) {
	log := logger.L(ctx)
	if v == nil {
		v = &listing.Validator{}
	}

	var icons, lsColors, lfColors []string

	for i := range cfg.Data {
		dp := &cfg.Data[i]

		color, lfColor, err := datapointColors(dp)
		if err != nil {
			return nil, fmt.Errorf("data[%d]: %w", i, err)
		}

		log.Debug("datapoint",
			zap.Int("index", i),
			zap.Strings("patterns", dp.Patterns),
			zap.String("color", color),
			zap.String("lf_color", lfColor),
		)

		for _, pattern := range dp.Patterns {
			if dp.HasIcon() {
				icons = append(icons, token(pattern, *dp.Icon))
			}
			if color != "" && v.Check(pattern) {
				lsColors = append(lsColors, token(pattern, color))
			}
			if lfColor != "" {
				lfColors = append(lfColors, token(pattern, lfColor))
			}
		}
	}

	enc := &Encoded{
		LFIcons:     strings.Join(icons, tokenSeparator),
		LSColors:    strings.Join(lsColors, tokenSeparator),
		LFColors:    strings.Join(lfColors, tokenSeparator),
		Unsupported: v.Unsupported(),
		counts:      [3]int{len(icons), len(lsColors), len(lfColors)},
	}

	log.Debug("translated",
		zap.Int("datapoints", len(cfg.Data)),
		zap.Int("icons", len(icons)),
		zap.Int("ls_colors", len(lsColors)),
		zap.Int("lf_colors", len(lfColors)),
	)

	return enc, nil
}

// datapointColors builds the primary and alternate escape fragments.
func datapointColors(dp *config.Datapoint) (color, lfColor string, err error) {
	decoration, lfDecoration := dp.ResolveDecoration()

	bg, err := triplet("bg", dp.BG)
	if err != nil {
		return "", "", err
	}
	fg, err := triplet("fg", dp.FG)
	if err != nil {
		return "", "", err
	}
	lfFG, err := triplet("lf_fg", dp.LFFG)
	if err != nil {
		return "", "", err
	}
	lfBG, err := triplet("lf_bg", dp.LFBG)
	if err != nil {
		return "", "", err
	}

	color, err = ansi.BuildEscape(bg, fg, decoration)
	if err != nil {
		return "", "", fmt.Errorf("decoration: %w", err)
	}
	lfColor, err = ansi.BuildEscape(lfBG, lfFG, lfDecoration)
	if err != nil {
		return "", "", fmt.Errorf("lf_decoration: %w", err)
	}
	return color, lfColor, nil
}

// triplet encodes an optional hex color. Absent stays absent.
func triplet(field string, hex *string) (*string, error) {
	if hex == nil {
		return nil, nil
	}
	t, err := ansi.HexToTriplet(*hex)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &t, nil
}

func token(pattern, value string) string {
	return pattern + "=" + value
}
