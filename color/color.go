/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package color normalizes the color syntaxes found in theme generator output
// (hex, rgb, hsl, hsb, oklch and bare "H S% L%" triples) into a single sRGB
// representation and formats it back out as hex.
package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// RGB is the normalized color representation. Channels are in the 0-1 range.
type RGB struct {
	R, G, B float64

	// A is the alpha channel. Only meaningful when HasAlpha is true.
	A        float64
	HasAlpha bool
}

// hexPattern accepts exactly six hex digits, with or without a leading '#'.
// Three and eight digit forms are intentionally not matched.
var hexPattern = regexp.MustCompile(`(?i)^#?([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})$`)

// HexToRGB parses a #RRGGBB color.
func HexToRGB(text string) (RGB, bool) {
	m := hexPattern.FindStringSubmatch(text)
	if m == nil {
		return RGB{}, false
	}
	var channels [3]float64
	for i := range channels {
		v, err := strconv.ParseUint(m[i+1], 16, 8)
		if err != nil {
			return RGB{}, false
		}
		channels[i] = float64(v) / 255
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, true
}

// RGBToHex formats a color as uppercase #RRGGBB. Each channel is rounded
// independently; alpha is dropped.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", to255(c.R), to255(c.G), to255(c.B))
}

func to255(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Round(clamp01(v) * 255))
}

// clamp01 restricts a value to the 0-1 range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// normalizeHue wraps a hue in degrees into [0, 360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// fraction accepts either an already fractional value (<= 1) or a
// percentage (> 1) and returns it clamped to the 0-1 range.
func fraction(v float64) float64 {
	if v > 1 {
		v /= 100
	}
	return clamp01(v)
}
