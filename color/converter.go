/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package color

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Syntax identifies which color notation a string was detected as.
type Syntax string

const (
	SyntaxNone   Syntax = "none"
	SyntaxRawHSL Syntax = "raw-hsl"
	SyntaxOKLCH  Syntax = "oklch"
	SyntaxHex    Syntax = "hex"
	SyntaxHSL    Syntax = "hsl"
	SyntaxHSB    Syntax = "hsb"
	SyntaxRGB    Syntax = "rgb"
)

// num matches a signed decimal number with optional exponent.
const num = `[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`

// RawTriplePattern matches the unwrapped "H S% L%" shorthand emitted by
// theme generators such as shadcn/ui.
var RawTriplePattern = regexp.MustCompile(`^(` + num + `)\s+(` + num + `)%\s+(` + num + `)%$`)

var (
	hslPattern = regexp.MustCompile(`(?i)hsla?\(\s*(` + num + `)(?:deg)?\s*[,\s]\s*(` + num + `)%?\s*[,\s]\s*(` + num + `)%?\s*(?:[,/]\s*(` + num + `)(%?)\s*)?\)`)
	hsbPattern = regexp.MustCompile(`(?i)hs[bv]a?\(\s*(` + num + `)(?:deg)?\s*[,\s]\s*(` + num + `)%?\s*[,\s]\s*(` + num + `)%?\s*(?:[,/]\s*(` + num + `)(%?)\s*)?\)`)
	rgbPattern = regexp.MustCompile(`(?i)rgba?\(\s*(` + num + `)%?\s*[,\s]\s*(` + num + `)%?\s*[,\s]\s*(` + num + `)%?\s*(?:[,/]\s*(` + num + `)(%?)\s*)?\)`)

	oklchPattern = regexp.MustCompile(`(?i)oklch\(\s*(` + num + `)(%?)\s*[,\s]\s*(` + num + `)(%?)\s*[,\s]\s*(` + num + `)(?:deg)?\s*(?:/\s*(` + num + `)(%?)\s*)?\)`)
)

// Detect inspects the structure of text and reports its color syntax.
// Precedence: raw triple, oklch, hex, hsl, hsb/hsv, rgb.
func Detect(text string) Syntax {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)
	switch {
	case RawTriplePattern.MatchString(trimmed):
		return SyntaxRawHSL
	case strings.Contains(lower, "oklch"):
		return SyntaxOKLCH
	case strings.HasPrefix(lower, "#"):
		return SyntaxHex
	case strings.Contains(lower, "hsl"):
		return SyntaxHSL
	case strings.Contains(lower, "hsb"), strings.Contains(lower, "hsv"):
		return SyntaxHSB
	case strings.Contains(lower, "rgb"):
		return SyntaxRGB
	default:
		return SyntaxNone
	}
}

// Converter parses colors into RGB, memoizing every conversion.
type Converter struct {
	cache *Cache
}

// Option configures a Converter.
type Option func(*Converter)

// WithCache makes the converter use the given cache.
func WithCache(cache *Cache) Option {
	return func(c *Converter) {
		c.cache = cache
	}
}

// NewConverter creates a converter. Without WithCache it owns a fresh
// cache of DefaultCacheSize entries.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache == nil {
		c.cache = NewCache(DefaultCacheSize)
	}
	return c
}

// Cache returns the converter's memo cache.
func (c *Converter) Cache() *Cache {
	return c.cache
}

// ParseToRGB converts text to RGB. The boolean is false when no supported
// syntax was detected or the detected syntax failed to parse; callers should
// leave such values unconverted.
func (c *Converter) ParseToRGB(text string) (RGB, bool) {
	trimmed := strings.TrimSpace(text)
	syntax := Detect(trimmed)
	key := string(syntax) + ":" + text

	if cached, ok := c.cache.Get(key); ok {
		return cached.RGB, cached.OK
	}

	rgb, ok := parse(syntax, trimmed)
	c.cache.Add(key, Result{RGB: rgb, OK: ok})
	return rgb, ok
}

// Preview returns the uppercase #RRGGBB form of text, or text unchanged when
// it cannot be converted (e.g. named colors such as "red").
func (c *Converter) Preview(text string) string {
	rgb, ok := c.ParseToRGB(text)
	if !ok {
		return text
	}
	return RGBToHex(rgb)
}

func parse(syntax Syntax, text string) (RGB, bool) {
	switch syntax {
	case SyntaxRawHSL:
		return parseRawTriple(text)
	case SyntaxOKLCH:
		return parseOKLCH(text)
	case SyntaxHex:
		return HexToRGB(text)
	case SyntaxHSL:
		return parseHSL(text)
	case SyntaxHSB:
		return parseHSB(text)
	case SyntaxRGB:
		return parseRGB(text)
	default:
		return RGB{}, false
	}
}

// floats parses regexp submatches; empty groups parse as zero.
func floats(groups ...string) ([]float64, bool) {
	out := make([]float64, len(groups))
	for i, g := range groups {
		if g == "" {
			continue
		}
		v, err := strconv.ParseFloat(g, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// alpha reads an optional alpha submatch and its percent marker.
func alpha(rgb *RGB, value, percent string) bool {
	if value == "" {
		return true
	}
	a, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return false
	}
	if percent == "%" {
		a /= 100
	}
	rgb.A = a
	rgb.HasAlpha = true
	return true
}

func fromColorful(c colorful.Color) RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

func parseRawTriple(text string) (RGB, bool) {
	m := RawTriplePattern.FindStringSubmatch(text)
	if m == nil {
		return RGB{}, false
	}
	v, ok := floats(m[1], m[2], m[3])
	if !ok {
		return RGB{}, false
	}
	h := normalizeHue(v[0])
	s := clamp01(v[1] / 100)
	l := clamp01(v[2] / 100)
	return fromColorful(colorful.Hsl(h, s, l)), true
}

func parseHSL(text string) (RGB, bool) {
	m := hslPattern.FindStringSubmatch(text)
	if m == nil {
		return RGB{}, false
	}
	v, ok := floats(m[1], m[2], m[3])
	if !ok {
		return RGB{}, false
	}
	rgb := fromColorful(colorful.Hsl(normalizeHue(v[0]), fraction(v[1]), fraction(v[2])))
	if !alpha(&rgb, m[4], m[5]) {
		return RGB{}, false
	}
	return rgb, true
}

func parseHSB(text string) (RGB, bool) {
	m := hsbPattern.FindStringSubmatch(text)
	if m == nil {
		return RGB{}, false
	}
	v, ok := floats(m[1], m[2], m[3])
	if !ok {
		return RGB{}, false
	}
	rgb := fromColorful(colorful.Hsv(normalizeHue(v[0]), fraction(v[1]), fraction(v[2])))
	if !alpha(&rgb, m[4], m[5]) {
		return RGB{}, false
	}
	return rgb, true
}

// parseRGB applies the channel range heuristic: any '%' means percentages,
// otherwise any channel above 1 means 0-255, otherwise channels are fractions.
// rgb(1, 1, 1) is therefore read as white, not as 1/255 gray.
func parseRGB(text string) (RGB, bool) {
	m := rgbPattern.FindStringSubmatch(text)
	if m == nil {
		return RGB{}, false
	}
	v, ok := floats(m[1], m[2], m[3])
	if !ok {
		return RGB{}, false
	}

	var scale float64 = 1
	switch {
	case strings.Contains(text, "%"):
		scale = 100
	case v[0] > 1 || v[1] > 1 || v[2] > 1:
		scale = 255
	}

	rgb := RGB{
		R: clamp01(v[0] / scale),
		G: clamp01(v[1] / scale),
		B: clamp01(v[2] / scale),
	}
	if !alpha(&rgb, m[4], m[5]) {
		return RGB{}, false
	}
	return rgb, true
}
