// Package diffraction computes far-field interference patterns produced by
// light passing through pinholes evenly spaced on a circle, using coherent
// superposition of spherical wavelets followed by a 2D Fourier transform.
package diffraction

import (
	"errors"
	"math"
	"math/cmplx"
)

// IntensityField returns the npx x npx far-field intensity pattern for
// nholes point sources evenly spaced on a circle of radius R, observed at
// screen distance d.
//
// k      : wavenumber (the wavelength is 2*pi/k)
// u, v   : pattern shift in radians, applied as a linear phase ramp
// npx    : side length of the square output grid in pixels
// nholes : number of pinholes
// R      : radius of the circle the pinholes sit on
// d      : screen distance
//
// Element [row][col] of the result holds the magnitude of the centered
// transform at that pixel. The grid is centered: the 1-based pixel index i
// maps to the coordinate offset i - (npx+1)/2, with X taken from the column
// offset and Y from the negated row offset, so physical y points up while
// the image origin stays top-left.
//
// The function is pure and deterministic. Degenerate input, such as a grid
// point landing exactly on a pinhole with d = 0, propagates through as
// Inf/NaN rather than failing.
func IntensityField(k, u, v float64, npx, nholes int, R, d float64) ([][]float64, error) {
	if npx <= 0 {
		return nil, errors.New("image size must be a positive pixel count")
	}
	if nholes <= 0 {
		return nil, errors.New("pinhole count must be positive")
	}
	if k == 0 {
		return nil, errors.New("wavenumber must be nonzero")
	}

	offset := centeredOffsets(npx)
	lambda := 2.0 * math.Pi / k

	// Superpose one spherical wavelet per pinhole over the whole grid.
	// The Fresnel-Kirchhoff point-source kernel is (-i/lambda)*exp(i*k*r)/r.
	field := makeComplex2D(npx, npx)
	for i := 0; i < nholes; i++ {
		t := float64(i) * 2.0 * math.Pi / float64(nholes)
		xi := R * math.Cos(t)
		yi := R * math.Sin(t)
		for row := 0; row < npx; row++ {
			Y := -offset[row]
			for col := 0; col < npx; col++ {
				X := offset[col]
				r := math.Sqrt((X-xi)*(X-xi) + (Y-yi)*(Y-yi) + d*d)
				field[row][col] += complex(0, -1.0/lambda) * cmplx.Exp(complex(0, k*r)) / complex(r, 0)
			}
		}
	}

	// Apply the (u, v) shift as a linear phase ramp across the mask.
	if u != 0.0 || v != 0.0 {
		for row := 0; row < npx; row++ {
			Y := -offset[row]
			for col := 0; col < npx; col++ {
				X := offset[col]
				field[row][col] *= cmplx.Exp(complex(0, u*X+v*Y))
			}
		}
	}

	fft2InPlace(field)
	shifted := fftshift2D(field)

	intensity := make([][]float64, npx)
	for row := range shifted {
		intensity[row] = make([]float64, npx)
		for col, z := range shifted[row] {
			intensity[row][col] = cmplx.Abs(z)
		}
	}
	return intensity, nil
}

// centeredOffsets maps the 1-based pixel indices 1..npx to coordinate
// offsets symmetric around the grid center.
func centeredOffsets(npx int) []float64 {
	half := float64(npx+1) / 2.0
	offset := make([]float64, npx)
	for i := range offset {
		offset[i] = float64(i+1) - half
	}
	return offset
}

func makeComplex2D(h, w int) [][]complex128 {
	m := make([][]complex128, h)
	for i := range m {
		m[i] = make([]complex128, w)
	}
	return m
}
