package main

import (
	"fmt"
	"math"
	"os"
	"time"

	json "github.com/KevinWang15/go-json5"
	"gonum.org/v1/gonum/floats"

	"github.com/gyulat/diffhole/diffraction"
	"github.com/gyulat/diffhole/profile"
)

const version = "1_0_0"

// DiffractionScene holds the validated contents of a scene parameter file.
// Shift values keep the historical percent units (value * pi/50 radians) so
// that old slider settings can be pasted into a scene file unchanged.
type DiffractionScene struct {
	Title               string
	ShowInput           bool
	Wavenumber          float64
	XShiftPercent       float64
	YShiftPercent       float64
	ImageSizePixels     int
	PreviewSizePixels   int
	NumPinholes         int
	CircleRadius        float64
	ScreenDistance      float64
	ProfileGiven        bool
	ProfileAngleDegrees float64
}

func main() {

	programStart := time.Now()

	args := os.Args

	if len(args) != 2 {
		fmt.Println("\n\tWrong number of arguments.\n\tUsage: diffhole <parameter-file>")
		os.Exit(1)
	}

	path := args[1]

	// Read the Json5 (or Json) parameter file
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Println(fmt.Errorf("\n\tAttempt to read input file %q failed: %w\n", path, err))
		os.Exit(2)
	}

	// Parse json(5) data into a generic container
	var jsonTable map[string]interface{}
	err = json.Unmarshal(data, &jsonTable)
	if err != nil {
		fmt.Println(fmt.Errorf("\n\tFormat error in file %q: %w\n", path, err))
		os.Exit(3)
	}

	var scene DiffractionScene
	msg, ok := validateJsonFileAndFillScene(jsonTable, &scene)
	if !ok {
		fmt.Println(msg)
		os.Exit(4)
	}

	// Check for user wanting printout of the complete jsonTable
	if scene.ShowInput {
		fmt.Printf("%s", "\nPrintout of complete jsonTable contents...\n")
		fmt.Println(string(data))
	}

	fmt.Printf("\nVersion %s\n\n", version)

	// Elementary checks to make sure the user has not supplied bad parameters
	if scene.ImageSizePixels < 1 {
		fmt.Println(fmt.Errorf("\n\tThe image size must be at least 1 pixel."))
		os.Exit(5)
	}
	if scene.PreviewSizePixels < 0 {
		fmt.Println(fmt.Errorf("\n\tThe preview size cannot be negative."))
		os.Exit(5)
	}
	if scene.NumPinholes < 1 {
		fmt.Println(fmt.Errorf("\n\tThe pinhole count must be at least 1."))
		os.Exit(5)
	}
	if scene.Wavenumber == 0.0 {
		fmt.Println(fmt.Errorf("\n\tThe wavenumber cannot be zero."))
		os.Exit(5)
	}

	// Convert the historical percent sliders to radians
	u := scene.XShiftPercent * math.Pi / 50.0
	v := scene.YShiftPercent * math.Pi / 50.0

	fmt.Printf("Wavelength is %0.6f units (wavenumber %0.1f)\n", 2.0*math.Pi/scene.Wavenumber, scene.Wavenumber)
	fmt.Printf("Pinholes: %d on a circle of radius %0.2f, screen distance %0.2f\n",
		scene.NumPinholes, scene.CircleRadius, scene.ScreenDistance)
	fmt.Printf("Pattern shift is (%0.4f, %0.4f) radians\n\n", u, v)

	// The original interactive tool refreshed a small preview on every
	// slider change and rendered the full image only on request. The same
	// two-tier policy lives here, at the caller: cheap grid first, full
	// resolution after.
	if scene.PreviewSizePixels > 0 {
		start := time.Now()
		preview, err := diffraction.IntensityField(scene.Wavenumber, u, v,
			scene.PreviewSizePixels, scene.NumPinholes, scene.CircleRadius, scene.ScreenDistance)
		if err != nil {
			fmt.Println(fmt.Errorf("\n\tPreview computation failed: %w", err))
			os.Exit(6)
		}
		fmt.Printf("Computation of the %dx%d preview took %s\n",
			scene.PreviewSizePixels, scene.PreviewSizePixels, time.Since(start))

		previewImg, err := MatrixToGrayViewPercentile(preview, 0.0, 100)
		if err != nil {
			fmt.Println(fmt.Errorf("\n\tCreation of the preview image failed: %w", err))
			os.Exit(7)
		}
		err = SaveGrayPNG("diffractionPreview8bit.png", previewImg)
		if err != nil {
			fmt.Println(fmt.Errorf("\n\tWriting of %q failed: %w", "diffractionPreview8bit.png", err))
			os.Exit(8)
		}
	}

	start := time.Now()
	intensity, err := diffraction.IntensityField(scene.Wavenumber, u, v,
		scene.ImageSizePixels, scene.NumPinholes, scene.CircleRadius, scene.ScreenDistance)
	if err != nil {
		fmt.Println(fmt.Errorf("\n\tPattern computation failed: %w", err))
		os.Exit(9)
	}
	fmt.Printf("Computation of the %dx%d pattern took %s\n",
		scene.ImageSizePixels, scene.ImageSizePixels, time.Since(start))

	peak := 0.0
	for _, row := range intensity {
		if m := floats.Max(row); m > peak {
			peak = m
		}
	}
	fmt.Printf("Peak intensity is %0.3f\n", peak)

	// Make a user-friendly .png of the intensity matrix
	imgForDisplay, err := MatrixToGrayViewPercentile(intensity, 0.0, 100)
	if err != nil {
		fmt.Println(fmt.Errorf("\n\tCreation of the display image failed: %w", err))
		os.Exit(10)
	}
	err = SaveGrayPNG("diffractionPattern8bit.png", imgForDisplay)
	if err != nil {
		fmt.Println(fmt.Errorf("\n\tWriting of %q failed: %w", "diffractionPattern8bit.png", err))
		os.Exit(11)
	}

	// Make the scientific (well-defined scaling) version of the intensity
	// matrix. The scale maps the peak to full range; divide pixel values by
	// the printed scale to recover intensities.
	dataScale := 1.0
	if peak > 0.0 {
		dataScale = 65535.0 / peak
	}
	dataImg, err := MatrixToGray16Data(intensity, dataScale)
	if err != nil {
		fmt.Println(fmt.Errorf("\n\tCreation of the 16 bit data image failed: %w", err))
		os.Exit(12)
	}
	err = SaveGray16PNG("diffractionData16bit.png", dataImg)
	if err != nil {
		fmt.Println(fmt.Errorf("\n\tWriting of %q failed: %w", "diffractionData16bit.png", err))
		os.Exit(13)
	}
	fmt.Printf("16 bit data image written with scale %0.6f counts per intensity unit\n", dataScale)

	if scene.ProfileGiven {
		section := &profile.CrossSection{
			AngleDegrees: scene.ProfileAngleDegrees,
			GridSize:     scene.ImageSizePixels,
		}
		if err := section.ComputeEndpoints(); err != nil {
			fmt.Println(fmt.Errorf("\n\tCross-section setup failed: %w", err))
			os.Exit(14)
		}
		section.ComputeSamplePoints()
		points := profile.Extract(intensity, section)

		title := fmt.Sprintf("Intensity cross-section at %0.1f degrees", scene.ProfileAngleDegrees)
		err = profile.SavePlot("intensityProfile.png", points, title, 1200, 500)
		if err != nil {
			fmt.Println(fmt.Errorf("\n\tWriting of %q failed: %w", "intensityProfile.png", err))
			os.Exit(15)
		}
		fmt.Println("Saved intensity cross-section to intensityProfile.png")
	}

	fmt.Printf("\nTotal program run time is %s\n", time.Since(programStart))
}
