// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifread

// ResolveRAWDimensions is a supplemented feature: RAW/DNG files often
// leave "Image ImageWidth"/"Image ImageHeight" at the sensor's raw
// dimensions while the rendered preview's true size lives in the EXIF
// sub-IFD's ExifImageWidth/ExifImageLength, a SubIFD's own
// ImageWidth/ImageHeight, or DefaultCropSize. This resolves the same
// priority a DNG-aware reader uses: DefaultCropSize wins outright when
// present, otherwise the largest of (IFD0, EXIF sub-IFD, SubIFD) wins.
func ResolveRAWDimensions(result map[string]IfdTag) (width, height int, ok bool) {
	w0, h0 := dimsOf(result, "Image")
	wE, hE := exifDims(result)
	wS, hS := dims2Of(result, "SubIFD", "ImageWidth", "ImageHeight")

	bestW, bestH := w0, h0
	if wE*hE > bestW*bestH {
		bestW, bestH = wE, hE
	}
	if wS*hS > bestW*bestH {
		bestW, bestH = wS, hS
	}

	if cw, ch, cok := defaultCropSize(result); cok {
		bestW, bestH = cw, ch
	}

	if bestW == 0 || bestH == 0 {
		return 0, 0, false
	}
	return bestW, bestH, true
}

func dimsOf(result map[string]IfdTag, ifd string) (int, int) {
	return dims2Of(result, ifd, "ImageWidth", "ImageHeight")
}

func exifDims(result map[string]IfdTag) (int, int) {
	return dims2Of(result, "EXIF", "ExifImageWidth", "ExifImageLength")
}

func dims2Of(result map[string]IfdTag, ifd, widthName, heightName string) (int, int) {
	w, _ := tagInt(result, tagKey(ifd, widthName))
	h, _ := tagInt(result, tagKey(ifd, heightName))
	return int(w), int(h)
}

func defaultCropSize(result map[string]IfdTag) (int, int, bool) {
	tag, ok := result[tagKey("EXIF", "DefaultCropSize")]
	if !ok {
		tag, ok = result[tagKey("SubIFD", "DefaultCropSize")]
	}
	if !ok {
		return 0, 0, false
	}
	if ratios, rok := tag.Ratios(); rok && len(ratios) == 2 {
		return int(ratios[0].Float64()), int(ratios[1].Float64()), true
	}
	if ints, iok := tag.Int64s(); iok && len(ints) == 2 {
		return int(ints[0]), int(ints[1]), true
	}
	return 0, 0, false
}

func tagInt(result map[string]IfdTag, key string) (int64, bool) {
	tag, ok := result[key]
	if !ok {
		return 0, false
	}
	if ints, iok := tag.Int64s(); iok && len(ints) > 0 {
		return ints[0], true
	}
	return 0, false
}
