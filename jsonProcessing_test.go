package main

import (
	"strings"
	"testing"

	json "github.com/KevinWang15/go-json5"
)

func parseTable(t *testing.T, src string) map[string]interface{} {
	t.Helper()
	var table map[string]interface{}
	if err := json.Unmarshal([]byte(src), &table); err != nil {
		t.Fatalf("failed to parse test json5: %v", err)
	}
	return table
}

func TestSceneDefaults(t *testing.T) {
	table := parseTable(t, `{wavenumber: 350}`)

	var scene DiffractionScene
	msg, ok := validateJsonFileAndFillScene(table, &scene)
	if !ok {
		t.Fatalf("validation failed: %s", msg)
	}

	if scene.Wavenumber != 350 {
		t.Errorf("Wavenumber = %v, want 350", scene.Wavenumber)
	}
	if scene.XShiftPercent != 0 || scene.YShiftPercent != 0 {
		t.Errorf("shift defaults = (%v, %v), want (0, 0)", scene.XShiftPercent, scene.YShiftPercent)
	}
	if scene.ImageSizePixels != 600 {
		t.Errorf("ImageSizePixels = %d, want 600", scene.ImageSizePixels)
	}
	if scene.PreviewSizePixels != 100 {
		t.Errorf("PreviewSizePixels = %d, want 100", scene.PreviewSizePixels)
	}
	if scene.NumPinholes != 8 {
		t.Errorf("NumPinholes = %d, want 8", scene.NumPinholes)
	}
	if scene.CircleRadius != 2.0 {
		t.Errorf("CircleRadius = %v, want 2.0", scene.CircleRadius)
	}
	if scene.ScreenDistance != 0.1 {
		t.Errorf("ScreenDistance = %v, want 0.1", scene.ScreenDistance)
	}
	if scene.ProfileGiven {
		t.Error("ProfileGiven = true with no profile_angle_degrees field")
	}
	if scene.ShowInput {
		t.Error("ShowInput defaulted to true")
	}
}

func TestSceneFullySpecified(t *testing.T) {
	table := parseTable(t, `{
		title: "eight holes",
		show_input_bool: true,
		wavenumber: 420.5,
		x_shift_percent: 16,
		y_shift_percent: 25,
		image_size_pixels: 300,
		preview_size_pixels: 0,
		num_pinholes: 5,
		circle_radius: 3.5,
		screen_distance: 0.25,
		profile_angle_degrees: 45,
	}`)

	var scene DiffractionScene
	msg, ok := validateJsonFileAndFillScene(table, &scene)
	if !ok {
		t.Fatalf("validation failed: %s", msg)
	}

	if scene.Title != "eight holes" {
		t.Errorf("Title = %q", scene.Title)
	}
	if !scene.ShowInput {
		t.Error("ShowInput = false")
	}
	if scene.Wavenumber != 420.5 {
		t.Errorf("Wavenumber = %v", scene.Wavenumber)
	}
	if scene.XShiftPercent != 16 || scene.YShiftPercent != 25 {
		t.Errorf("shift = (%v, %v)", scene.XShiftPercent, scene.YShiftPercent)
	}
	if scene.ImageSizePixels != 300 || scene.PreviewSizePixels != 0 {
		t.Errorf("sizes = (%d, %d)", scene.ImageSizePixels, scene.PreviewSizePixels)
	}
	if scene.NumPinholes != 5 {
		t.Errorf("NumPinholes = %d", scene.NumPinholes)
	}
	if scene.CircleRadius != 3.5 || scene.ScreenDistance != 0.25 {
		t.Errorf("geometry = (%v, %v)", scene.CircleRadius, scene.ScreenDistance)
	}
	if !scene.ProfileGiven || scene.ProfileAngleDegrees != 45 {
		t.Errorf("profile = (%v, %v)", scene.ProfileGiven, scene.ProfileAngleDegrees)
	}
}

func TestSceneMissingWavenumber(t *testing.T) {
	table := parseTable(t, `{num_pinholes: 8}`)

	var scene DiffractionScene
	msg, ok := validateJsonFileAndFillScene(table, &scene)
	if ok {
		t.Fatal("validation passed without a wavenumber")
	}
	if !strings.Contains(msg, "wavenumber") {
		t.Errorf("message %q does not name the missing field", msg)
	}
}

func TestSceneTypeErrors(t *testing.T) {
	cases := []string{
		`{wavenumber: "fast"}`,
		`{wavenumber: 350, num_pinholes: "eight"}`,
		`{wavenumber: 350, show_input_bool: 1}`,
		`{wavenumber: 350, profile_angle_degrees: "flat"}`,
	}
	for _, src := range cases {
		table := parseTable(t, src)
		var scene DiffractionScene
		if _, ok := validateJsonFileAndFillScene(table, &scene); ok {
			t.Errorf("validation passed for %s", src)
		}
	}
}

func TestGetLeafValue(t *testing.T) {
	table := parseTable(t, `{outer: {inner: 7}}`)

	v, ok := getLeafValue(table, "outer", "inner")
	if !ok {
		t.Fatal("nested lookup failed")
	}
	if v.(float64) != 7 {
		t.Errorf("nested value = %v, want 7", v)
	}

	if _, ok := getLeafValue(table, "outer", "missing"); ok {
		t.Error("lookup of a missing leaf succeeded")
	}
	if _, ok := getLeafValue(table, "outer", "inner", "deeper"); ok {
		t.Error("lookup through a non-map succeeded")
	}
}
