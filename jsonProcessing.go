package main

func getLeafValue(jsonTable map[string]interface{}, path ...string) (interface{}, bool) {
	var cur interface{} = jsonTable
	for _, p := range path {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = m[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func validateJsonFileAndFillScene(jsonTable map[string]interface{}, scene *DiffractionScene) (string, bool) {
	msg := "No problem found in json file" // Initialize msg to presumed success.

	title, ok := getLeafValue(jsonTable, "title")
	if ok {
		scene.Title, ok = title.(string)
		if !ok {
			msg = "title: is not a string"
			return msg, false
		}
	}

	showInput, ok := getLeafValue(jsonTable, "show_input_bool")
	if !ok {
		scene.ShowInput = false // default to false if this field is missing
	} else {
		scene.ShowInput, ok = showInput.(bool)
		if !ok {
			msg = "show_input_bool: is not a bool"
			return msg, false
		}
	}

	wavenumber, ok := getLeafValue(jsonTable, "wavenumber")
	if !ok {
		msg = "wavenumber: not found"
		return msg, false
	}
	scene.Wavenumber, ok = wavenumber.(float64)
	if !ok {
		msg = "wavenumber: is not a float64"
		return msg, false
	}

	// The remaining fields default to the slider positions of the original
	// interactive tool when missing.

	xShift, ok := getLeafValue(jsonTable, "x_shift_percent")
	if !ok {
		scene.XShiftPercent = 0.0
	} else {
		scene.XShiftPercent, ok = xShift.(float64)
		if !ok {
			msg = "x_shift_percent: is not a float64"
			return msg, false
		}
	}

	yShift, ok := getLeafValue(jsonTable, "y_shift_percent")
	if !ok {
		scene.YShiftPercent = 0.0
	} else {
		scene.YShiftPercent, ok = yShift.(float64)
		if !ok {
			msg = "y_shift_percent: is not a float64"
			return msg, false
		}
	}

	imageSize, ok := getLeafValue(jsonTable, "image_size_pixels")
	if !ok {
		scene.ImageSizePixels = 600
	} else {
		size, ok := imageSize.(float64)
		if !ok {
			msg = "image_size_pixels: is not a float64"
			return msg, false
		}
		scene.ImageSizePixels = int(size)
	}

	previewSize, ok := getLeafValue(jsonTable, "preview_size_pixels")
	if !ok {
		scene.PreviewSizePixels = 100 // set to 0 to skip the preview image
	} else {
		size, ok := previewSize.(float64)
		if !ok {
			msg = "preview_size_pixels: is not a float64"
			return msg, false
		}
		scene.PreviewSizePixels = int(size)
	}

	numPinholes, ok := getLeafValue(jsonTable, "num_pinholes")
	if !ok {
		scene.NumPinholes = 8
	} else {
		count, ok := numPinholes.(float64)
		if !ok {
			msg = "num_pinholes: is not a float64"
			return msg, false
		}
		scene.NumPinholes = int(count)
	}

	circleRadius, ok := getLeafValue(jsonTable, "circle_radius")
	if !ok {
		scene.CircleRadius = 2.0
	} else {
		scene.CircleRadius, ok = circleRadius.(float64)
		if !ok {
			msg = "circle_radius: is not a float64"
			return msg, false
		}
	}

	screenDistance, ok := getLeafValue(jsonTable, "screen_distance")
	if !ok {
		scene.ScreenDistance = 0.1
	} else {
		scene.ScreenDistance, ok = screenDistance.(float64)
		if !ok {
			msg = "screen_distance: is not a float64"
			return msg, false
		}
	}

	// A cross-section plot is produced only when an angle is given.
	profileAngle, ok := getLeafValue(jsonTable, "profile_angle_degrees")
	scene.ProfileGiven = ok
	if ok {
		scene.ProfileAngleDegrees, ok = profileAngle.(float64)
		if !ok {
			msg = "profile_angle_degrees: is not a float64"
			return msg, false
		}
	}

	return msg, true
}
