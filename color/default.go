/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package color

// defaultConverter backs the package-level helpers.
var defaultConverter = NewConverter()

// Default returns the process-wide converter used by ParseToRGB and Preview.
func Default() *Converter {
	return defaultConverter
}

// ParseToRGB converts text using the default converter.
func ParseToRGB(text string) (RGB, bool) {
	return defaultConverter.ParseToRGB(text)
}

// Preview formats text as hex using the default converter.
func Preview(text string) string {
	return defaultConverter.Preview(text)
}

// ResetCache clears the default converter's memo cache.
func ResetCache() {
	defaultConverter.cache.Reset()
}
