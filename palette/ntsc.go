// This file is part of Gym2600.
//
// Gym2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gym2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gym2600.  If not, see <https://www.gnu.org/licenses/>.

// Package palette converts TIA colour bytes to RGB and to grayscale.
//
// The colour byte is the value written to one of the TIA colour registers.
// Bits 4 to 7 select the hue and bits 1 to 3 select the luminance. Bit 0 is
// unused and is ignored by the lookup functions. The Arcade Learning
// Environment reports screens as colour bytes and so the grayscale value
// required by an observation must be recovered from the colour byte.
//
// Colours are taken from the NTSC palette table of the Stella emulator, which
// is the table used by the Arcade Learning Environment. Grayscale is the
// Rec. 601 luma of the table colour, rounded to the nearest integer.
package palette

import (
	"image/color"
	"math"
)

// ntscTable is indexed by the colour byte shifted right by one. each row is a
// single hue and each column a luminance
var ntscTable = [128]uint32{
	0x000000, 0x4a4a4a, 0x6f6f6f, 0x8e8e8e, 0xaaaaaa, 0xc0c0c0, 0xd6d6d6, 0xececec,
	0x484800, 0x69690f, 0x86861d, 0xa2a22a, 0xbbbb35, 0xd2d240, 0xe8e84a, 0xfcfc54,
	0x7c2c00, 0x904811, 0xa26221, 0xb47a30, 0xc3903d, 0xd2a44a, 0xdfb755, 0xecc860,
	0x901c00, 0xa33915, 0xb55328, 0xc66c3a, 0xd5824a, 0xe39759, 0xf0aa67, 0xfcbc74,
	0x940000, 0xa71a1a, 0xb83232, 0xc84848, 0xd65c5c, 0xe46f6f, 0xf08080, 0xfc9090,
	0x840064, 0x97197a, 0xa8308f, 0xb846a2, 0xc659b3, 0xd46cc3, 0xe07cd2, 0xec8ce0,
	0x500084, 0x68199a, 0x7d30ad, 0x9246c0, 0xa459d0, 0xb56ce0, 0xc57cee, 0xd48cfc,
	0x140090, 0x331aa3, 0x4e32b5, 0x6848c6, 0x7f5cd5, 0x956fe3, 0xa980f0, 0xbc90fc,
	0x000094, 0x181aa7, 0x2d32b8, 0x4248c8, 0x545cd6, 0x656fe4, 0x7580f0, 0x8490fc,
	0x001c88, 0x183b9d, 0x2d57b0, 0x4272c2, 0x548ad2, 0x65a0e1, 0x75b5ef, 0x84c8fc,
	0x003064, 0x185080, 0x2d6d98, 0x4288b0, 0x54a0c5, 0x65b7d9, 0x75cceb, 0x84e0fc,
	0x004030, 0x18624e, 0x2d8169, 0x429e82, 0x54b899, 0x65d1ae, 0x75e7c2, 0x84fcd4,
	0x004400, 0x1a661a, 0x328432, 0x48a048, 0x5cba5c, 0x6fd26f, 0x80e880, 0x90fc90,
	0x143c00, 0x355f18, 0x527e2d, 0x6e9c42, 0x87b754, 0x9ed065, 0xb4e775, 0xc8fc84,
	0x303800, 0x505916, 0x6d762b, 0x88923e, 0xa0ab4f, 0xb7c25f, 0xccd86e, 0xe0ec7c,
	0x482c00, 0x694d14, 0x866a26, 0xa28638, 0xbb9f47, 0xd2b656, 0xe8cc63, 0xfce070,
}

var ntsc [128]color.RGBA
var ntscGray [128]uint8

func luma(c color.RGBA) uint8 {
	y := 0.2989*float64(c.R) + 0.5870*float64(c.G) + 0.1140*float64(c.B)
	return uint8(math.Min(255, math.Round(y)))
}

func init() {
	for i, v := range ntscTable {
		ntsc[i] = color.RGBA{
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
			A: 255,
		}
		ntscGray[i] = luma(ntsc[i])
	}
}

// RGB returns the NTSC colour for the colour byte.
func RGB(col uint8) color.RGBA {
	return ntsc[col>>1]
}

// Gray returns the grayscale intensity for the colour byte.
func Gray(col uint8) uint8 {
	return ntscGray[col>>1]
}

// GrayScreen converts a screen of colour bytes into grayscale intensities.
// The dst slice must be at least as long as the src slice.
func GrayScreen(dst []uint8, src []uint8) {
	dst = dst[:len(src)]
	for i, c := range src {
		dst[i] = ntscGray[c>>1]
	}
}
