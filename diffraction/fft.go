package diffraction

import "gonum.org/v1/gonum/dsp/fourier"

// fft2InPlace applies the forward 2D transform, rows then columns, using
// Gonum CmplxFFT. Gonum handles any length, not just powers of two. The
// result is unnormalized, which does not matter here because only the
// relative magnitudes of the transform survive into the intensity image.
func fft2InPlace(a [][]complex128) {
	h := len(a)
	w := len(a[0])

	rowFFT := fourier.NewCmplxFFT(w)
	colFFT := fourier.NewCmplxFFT(h)

	for y := 0; y < h; y++ {
		rowFFT.Coefficients(a[y], a[y])
	}

	col := make([]complex128, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			col[y] = a[y][x]
		}
		colFFT.Coefficients(col, col)
		for y := 0; y < h; y++ {
			a[y][x] = col[y]
		}
	}
}

// fftshift2D relocates frequency bin k to (k + n/2) mod n along each axis,
// which moves the zero-frequency component from the corner to the grid
// center. For even n this is the usual pairwise quadrant swap.
func fftshift2D(a [][]complex128) [][]complex128 {
	h := len(a)
	w := len(a[0])
	out := makeComplex2D(h, w)
	for y := 0; y < h; y++ {
		yy := (y + h/2) % h
		for x := 0; x < w; x++ {
			out[yy][(x+w/2)%w] = a[y][x]
		}
	}
	return out
}
