/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// maxChroma is the chroma that corresponds to 100% in oklch().
const maxChroma = 0.4

func parseOKLCH(text string) (RGB, bool) {
	m := oklchPattern.FindStringSubmatch(text)
	if m == nil {
		return RGB{}, false
	}
	v, ok := floats(m[1], m[3], m[5])
	if !ok {
		return RGB{}, false
	}

	l, c, h := v[0], v[1], v[2]
	if m[2] == "%" || l > 1 {
		l /= 100
	}
	if m[4] == "%" {
		c = c / 100 * maxChroma
	}

	rgb := OKLCHToRGB(l, c, h)
	if !alpha(&rgb, m[6], m[7]) {
		return RGB{}, false
	}
	return rgb, true
}

// OKLCHToRGB converts OKLCH to gamma-encoded sRGB.
//
// The path is OKLCH -> OKLab -> LMS -> CIE XYZ (D65) -> linear sRGB -> sRGB.
// Each output channel is clamped to the 0-1 range independently, so
// out-of-gamut colors are not hue-preserving.
func OKLCHToRGB(l, c, h float64) RGB {
	hr := normalizeHue(h) * math.Pi / 180
	a := c * math.Cos(hr)
	b := c * math.Sin(hr)

	// OKLab -> non-linear LMS
	lp := l + 0.3963377774*a + 0.2158037573*b
	mp := l - 0.1055613458*a - 0.0638541728*b
	sp := l - 0.0894841775*a - 1.2914855480*b

	lms := [3]float64{lp * lp * lp, mp * mp * mp, sp * sp * sp}

	// LMS -> XYZ (D65)
	x := 1.2270138511*lms[0] - 0.5577999807*lms[1] + 0.2812561490*lms[2]
	y := -0.0405801784*lms[0] + 1.1122568696*lms[1] - 0.0716766787*lms[2]
	z := -0.0763812845*lms[0] - 0.4214819784*lms[1] + 1.5861632204*lms[2]

	// XYZ -> linear sRGB uses the D65 sRGB matrix; LinearRgb applies the
	// sRGB transfer function (12.92 below 0.0031308, 1.055*v^(1/2.4)-0.055 above).
	lr, lg, lb := colorful.XyzToLinearRgb(x, y, z)
	return fromColorful(colorful.LinearRgb(lr, lg, lb).Clamped())
}
