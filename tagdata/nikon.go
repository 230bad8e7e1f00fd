package tagdata

import "fmt"

// nikonEVBias renders the handful of hardcoded Nikon EV-bias byte
// sequences the way Nikon's own firmware prints them, falling back to
// a ratio-based rendering for anything not in the short table.
// Grounded on exifread's makernote nikon_ev_bias helper.
func nikonEVBias(values []any) string {
	if len(values) != 4 {
		return "Unknown"
	}
	b := make([]int, 4)
	for i, v := range values {
		switch vv := v.(type) {
		case int64:
			b[i] = int(vv)
		case int:
			b[i] = vv
		default:
			return "Unknown"
		}
	}
	switch {
	case b[0] == 252 && b[1] == 1 && b[2] == 6 && b[3] == 0:
		return "-2/3 EV"
	case b[0] == 253 && b[1] == 1 && b[2] == 6 && b[3] == 0:
		return "-1/2 EV"
	case b[0] == 254 && b[1] == 1 && b[2] == 6 && b[3] == 0:
		return "-1/3 EV"
	case b[0] == 0 && b[1] == 1 && b[2] == 6 && b[3] == 0:
		return "0 EV"
	case b[0] == 2 && b[1] == 1 && b[2] == 6 && b[3] == 0:
		return "1/3 EV"
	case b[0] == 3 && b[1] == 1 && b[2] == 6 && b[3] == 0:
		return "1/2 EV"
	case b[0] == 4 && b[1] == 1 && b[2] == 6 && b[3] == 0:
		return "2/3 EV"
	default:
		// Generic case: first byte is a signed numerator over the third
		// as denominator, matching the firmware's general encoding.
		n, d := b[0], b[2]
		if n > 127 {
			n -= 256
		}
		if d == 0 {
			return "Unknown"
		}
		return fmt.Sprintf("%d/%d EV", n, d)
	}
}

// NikonOld is the "type 1" MakerNote dictionary used by early Nikon
// bodies (signaled by the "Nikon\x00\x01" prefix).
var NikonOld = Dict{
	0x0002: {Name: "Quality", Decoder: EnumTable{
		1: "VGA Basic",
		2: "VGA Normal",
		3: "VGA Fine",
		4: "SXGA Basic",
		5: "SXGA Normal",
		6: "SXGA Fine",
	}},
	0x0003: {Name: "ColorMode", Decoder: EnumTable{
		1: "Color",
		2: "Monochrome",
	}},
	0x0004: {Name: "ImageAdjustment", Decoder: EnumTable{
		0: "Normal",
		1: "Bright+",
		2: "Bright-",
		3: "Contrast+",
		4: "Contrast-",
	}},
	0x0005: {Name: "CCDSensitivity", Decoder: EnumTable{
		0: "ISO80",
		2: "ISO160",
		4: "ISO320",
		5: "ISO100",
	}},
	0x0006: {Name: "WhiteBalance", Decoder: EnumTable{
		0: "Auto",
		1: "Preset",
		2: "Daylight",
		3: "Incandescent",
		4: "Fluorescent",
		5: "Cloudy",
		6: "Speedlight",
	}},
	0x0007: {Name: "Focus"},
	0x0008: {Name: "DigitalZoom"},
	0x0009: {Name: "Converter", Decoder: EnumTable{
		0: "None",
		1: "Fisheye",
	}},
}

// NikonNew is the "type 2" MakerNote dictionary used by modern Nikon
// bodies (signaled by the "Nikon\x00\x02" prefix, or an unlabeled
// MakerNote that still belongs to a Nikon Make string).
var NikonNew = Dict{
	0x0001: {Name: "MakerNoteVersion"},
	0x0002: {Name: "ISOSpeed"},
	0x0004: {Name: "Quality", Decoder: EnumTable{
		1: "VGA Basic",
		2: "VGA Normal",
		3: "VGA Fine",
		4: "SXGA Basic",
		5: "SXGA Normal",
		6: "SXGA Fine",
		7: "2 Mpixel Basic",
	}},
	0x0005: {Name: "WhiteBalance", Decoder: EnumTable{
		0: "Auto",
		1: "Preset",
		2: "Daylight",
		3: "Incandescent",
		4: "Fluorescent",
		5: "Cloudy",
		6: "Speedlight",
	}},
	0x0006: {Name: "Sharpening", Decoder: EnumTable{
		0: "Auto",
		1: "Normal",
		2: "Low",
		3: "Medium Low",
		4: "Medium",
		5: "Medium High",
		6: "High",
		7: "None",
	}},
	0x0007: {Name: "Focus"},
	0x0008: {Name: "FlashSetting"},
	0x0009: {Name: "FlashType"},
	0x000B: {Name: "WhiteBalanceBias"},
	0x000C: {Name: "WhiteBalanceRBCoeff"},
	0x000D: {Name: "ProgramShift", Decoder: Formatter(nikonEVBias)},
	0x000E: {Name: "ExposureDifference", Decoder: Formatter(nikonEVBias)},
	0x000F: {Name: "ISOSelection", Decoder: EnumTable{
		0: "Auto",
		1: "Manual",
	}},
	0x0010: {Name: "DataDump"},
	0x0011: {Name: "NikonPreview", Decoder: SubIFD{Name: "MakerNote NikonPreview", Tags: nil}},
	0x0012: {Name: "FlashCompensation", Decoder: Formatter(nikonEVBias)},
	0x0013: {Name: "ISOSetting"},
	0x0016: {Name: "ImageBoundary"},
	0x0017: {Name: "ExternalFlashExposureComp", Decoder: Formatter(nikonEVBias)},
	0x0018: {Name: "FlashExposureBracketValue", Decoder: Formatter(nikonEVBias)},
	0x0019: {Name: "ExposureBracketValue"},
	0x001A: {Name: "ImageProcessing"},
	0x001B: {Name: "CropHiSpeed"},
	0x001D: {Name: "SerialNumber"},
	0x001E: {Name: "ColorSpace", Decoder: EnumTable{
		1: "sRGB",
		2: "Adobe RGB",
	}},
	0x001F: {Name: "VRInfo"},
	0x0022: {Name: "ActiveD-Lighting"},
	0x0023: {Name: "PictureControl"},
	0x0024: {Name: "WorldTime"},
	0x0025: {Name: "ISOInfo"},
	0x002A: {Name: "VignetteControl"},
	0x0080: {Name: "ImageAdjustment"},
	0x0081: {Name: "ToneComp"},
	0x0082: {Name: "AuxiliaryLens"},
	0x0083: {Name: "LensType"},
	0x0084: {Name: "LensMinMaxFocalMaxAperture"},
	0x0085: {Name: "ManualFocusDistance"},
	0x0086: {Name: "DigitalZoom"},
	0x0087: {Name: "FlashMode", Decoder: EnumTable{
		0x00: "Did Not Fire",
		0x01: "Fired, Manual",
		0x07: "Fired, External",
		0x08: "Fired, Commander Mode",
		0x09: "Fired, TTL Mode",
	}},
	0x0088: {Name: "AFInfo"},
	0x0089: {Name: "ShootingMode"},
	0x008A: {Name: "AutoBracketRelease"},
	0x008B: {Name: "LensFStops"},
	0x008C: {Name: "ContrastCurve"},
	0x008D: {Name: "ColorHue"},
	0x008F: {Name: "SceneMode"},
	0x0090: {Name: "LightSource"},
	0x0091: {Name: "ShotInfo"},
	0x0092: {Name: "HueAdjustment"},
	0x0093: {Name: "NEFCompression", Decoder: EnumTable{
		1: "Lossy (type 1)",
		2: "Uncompressed",
		3: "Lossless",
		4: "Lossy (type 2)",
	}},
	0x0094: {Name: "Saturation"},
	0x0095: {Name: "NoiseReduction"},
	0x0096: {Name: "LinearizationTable"},
	0x0097: {Name: "ColorBalance"},
	0x0098: {Name: "LensData"},
	0x0099: {Name: "RawImageCenter"},
	0x009A: {Name: "SensorPixelSize"},
	0x009C: {Name: "SceneAssist"},
	0x009E: {Name: "RetouchHistory"},
	0x00A0: {Name: "SerialNumber2"},
	0x00A2: {Name: "ImageDataSize"},
	0x00A5: {Name: "ImageCount"},
	0x00A6: {Name: "DeletedImageCount"},
	0x00A7: {Name: "ShutterCount"},
	0x00A8: {Name: "FlashInfo"},
	0x00A9: {Name: "ImageOptimization"},
	0x00AA: {Name: "Saturation2"},
	0x00AB: {Name: "VariProgram"},
	0x00AC: {Name: "ImageStabilization"},
	0x00AD: {Name: "AFResponse"},
	0x00B0: {Name: "MultiExposure"},
	0x00B1: {Name: "HighISONoiseReduction", Decoder: EnumTable{
		0: "Off",
		1: "Minimal",
		2: "Low",
		4: "Normal",
		6: "High",
	}},
	0x00B6: {Name: "PowerUpTime"},
	0x00B7: {Name: "AFInfo2"},
	0x00B8: {Name: "FileInfo"},
	0x0100: {Name: "DigitalICE"},
	0x0103: {Name: "PreviewCompression", Decoder: EnumTable{
		1: "Uncompressed",
		6: "JPEG",
	}},
	0x0201: {Name: "PreviewImageStart"},
	0x0202: {Name: "PreviewImageLength"},
}
