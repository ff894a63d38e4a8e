package main

import (
	"errors"
	"image"
	"image/png"
	"math"
	"os"
	"sort"
)

func rectSize(m [][]float64) (h, w int, err error) {
	h = len(m)
	if h == 0 || len(m[0]) == 0 {
		return 0, 0, errors.New("empty matrix")
	}
	w = len(m[0])
	for i := 1; i < h; i++ {
		if len(m[i]) != w {
			return 0, 0, errors.New("ragged matrix")
		}
	}
	return h, w, nil
}

// MatrixToGray16Data -------------------- Data PNG (Gray16, fixed scaling) --------------------
// Mapping: Y16 = round(v * scale), clamped to [0, 65535]. NaN/Inf map to 0.
func MatrixToGray16Data(m [][]float64, scale float64) (*image.Gray16, error) {
	h, w, err := rectSize(m)
	if err != nil {
		return nil, err
	}
	if scale <= 0 {
		return nil, errors.New("scale must be > 0")
	}

	img := image.NewGray16(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := y * img.Stride
		for x := 0; x < w; x++ {
			v := m[y][x]
			i := row + 2*x
			if math.IsNaN(v) || math.IsInf(v, 0) {
				img.Pix[i], img.Pix[i+1] = 0, 0
				continue
			}

			u := math.Round(v * scale)
			if u < 0 {
				u = 0
			} else if u > 65535 {
				u = 65535
			}
			y16 := uint16(u)

			// Gray16 Pix is big-endian per pixel: high byte then low byte
			img.Pix[i] = uint8(y16 >> 8)
			img.Pix[i+1] = uint8(y16)
		}
	}
	return img, nil
}

// MatrixToGrayViewPercentile -------------------- View PNG (Gray8, auto-stretch) --------------------
// Percentile stretch: values at pLow map to 0, values at pHigh map to 255,
// everything outside is clamped. Robust against outlier pixels compared to
// a plain min/max stretch. NaN/Inf map to 0.
func MatrixToGrayViewPercentile(m [][]float64, pLow, pHigh float64) (*image.Gray, error) {
	h, w, err := rectSize(m)
	if err != nil {
		return nil, err
	}
	if !(0 <= pLow && pLow < pHigh && pHigh <= 100) {
		return nil, errors.New("percentiles must satisfy 0 <= pLow < pHigh <= 100")
	}

	// Collect finite values for percentile computation
	vals := make([]float64, 0, h*w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := m[y][x]
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				vals = append(vals, v)
			}
		}
	}
	if len(vals) == 0 {
		return nil, errors.New("matrix has no finite values")
	}

	sort.Float64s(vals)

	percentile := func(p float64) float64 {
		if p <= 0 {
			return vals[0]
		}
		if p >= 100 {
			return vals[len(vals)-1]
		}
		pos := (p / 100.0) * float64(len(vals)-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i >= len(vals)-1 {
			return vals[len(vals)-1]
		}
		return vals[i]*(1-f) + vals[i+1]*f
	}

	lo := percentile(pLow)
	hi := percentile(pHigh)
	if hi == lo {
		hi = lo + 1 // avoid divide-by-zero; image becomes mostly constant
	}

	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := y * img.Stride
		for x := 0; x < w; x++ {
			v := m[y][x]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				img.Pix[row+x] = 0
				continue
			}
			t := (v - lo) / (hi - lo)
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
			img.Pix[row+x] = uint8(math.Round(t * 255.0))
		}
	}
	return img, nil
}

func SaveGrayPNG(filename string, img *image.Gray) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

func SaveGray16PNG(filename string, img *image.Gray16) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
