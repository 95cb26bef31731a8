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

package environment

import "image"

// Observation is a grayscale image stored in (width, height) order. The
// intensity of the pixel at (x, y) is at Pix[x*Height+y].
type Observation struct {
	Width  int
	Height int
	Pix    []uint8
}

func newObservation(width int, height int) Observation {
	return Observation{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// At returns the intensity of the pixel at (x, y).
func (o *Observation) At(x int, y int) uint8 {
	return o.Pix[x*o.Height+y]
}

// Copy returns an Observation that does not share memory with the original.
func (o *Observation) Copy() *Observation {
	c := &Observation{
		Width:  o.Width,
		Height: o.Height,
		Pix:    make([]uint8, len(o.Pix)),
	}
	copy(c.Pix, o.Pix)
	return c
}

// Image returns the observation as an image in the usual row major order.
func (o *Observation) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, o.Width, o.Height))
	transpose(img, o)
	return img
}

// transpose the observation into img. img must be the same size as the
// observation
func transpose(img *image.Gray, o *Observation) {
	for x := 0; x < o.Width; x++ {
		col := o.Pix[x*o.Height : (x+1)*o.Height]
		for y := range col {
			img.Pix[y*img.Stride+x] = col[y]
		}
	}
}

// fromImage fills the observation with the contents of img, which must be
// the same size as the observation
func (o *Observation) fromImage(img *image.Gray) {
	for y := 0; y < o.Height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+o.Width]
		for x, v := range row {
			o.Pix[x*o.Height+y] = v
		}
	}
}
