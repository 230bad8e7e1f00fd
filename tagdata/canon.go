package tagdata

import "regexp"

// Canon is the top-level MakerNote dictionary for "Canon". Several of
// its entries (CameraSettings, FocalLength, ShotInfo, AFInfo2,
// FileInfo) are themselves opaque index-addressed arrays; those are
// decoded by the indexed tables below rather than by a generic
// sub-IFD recursion.
var Canon = Dict{
	0x0001: {Name: "CameraSettings"},
	0x0002: {Name: "FocalLength"},
	0x0004: {Name: "ShotInfo"},
	0x0005: {Name: "Panorama"},
	0x0006: {Name: "ImageType"},
	0x0007: {Name: "FirmwareVersion"},
	0x0008: {Name: "FileNumber"},
	0x0009: {Name: "OwnerName"},
	0x000C: {Name: "SerialNumber"},
	0x000D: {Name: "CameraInfo"},
	0x000F: {Name: "CustomFunctions"},
	0x0010: {Name: "ModelID"},
	0x0012: {Name: "PictureInfo"},
	0x0015: {Name: "SerialNumberFormat"},
	0x001C: {Name: "SuperMacro"},
	0x0026: {Name: "AFInfo2"},
	0x0083: {Name: "OriginalDecisionDataOffset"},
	0x0093: {Name: "FileInfo"},
	0x00A4: {Name: "WhiteBalanceTable"},
	0x4001: {Name: "ColorData"},
}

// CanonIndexEntry is one position of an indexed composite MakerNote
// tag: the name to give the synthetic tag and the optional decoder
// applied to the raw value at that position.
type CanonIndexEntry struct {
	Name    string
	Decoder Decoder
}

// CanonCameraSettings is the position-indexed CameraSettings tag
// (MakerNote Tag 0x0001).
var CanonCameraSettings = map[int]CanonIndexEntry{
	1: {Name: "MacroMode", Decoder: EnumTable{1: "Macro", 2: "Normal"}},
	2: {Name: "SelfTimer"},
	3: {Name: "Quality", Decoder: EnumTable{
		1: "Economy",
		2: "Normal",
		3: "Fine",
		4: "RAW",
		5: "Superfine",
	}},
	4: {Name: "FlashMode", Decoder: EnumTable{
		0: "Off",
		1: "Auto",
		2: "On",
		3: "Red Eye Reduction",
		4: "Slow Sync",
		5: "Auto + Red Eye Reduction",
		6: "On + Red Eye Reduction",
		16: "External Flash",
	}},
	5: {Name: "ContinuousDrive", Decoder: EnumTable{
		0: "Single",
		1: "Continuous",
		2: "Movie",
		3: "Continuous, Speed Priority",
	}},
	7: {Name: "FocusMode", Decoder: EnumTable{
		0: "One-shot AF",
		1: "AI Servo AF",
		2: "AI Focus AF",
		3: "Manual Focus",
		4: "Single",
		5: "Continuous",
		6: "Manual Focus",
	}},
	10: {Name: "ImageSize", Decoder: EnumTable{
		0: "Large",
		1: "Medium",
		2: "Small",
	}},
	11: {Name: "EasyMode"},
	12: {Name: "DigitalZoom"},
	13: {Name: "Contrast", Decoder: EnumTable{
		0xFFFF: "Low",
		0:      "Normal",
		1:      "High",
	}},
	14: {Name: "Saturation", Decoder: EnumTable{
		0xFFFF: "Low",
		0:      "Normal",
		1:      "High",
	}},
	15: {Name: "Sharpness", Decoder: EnumTable{
		0xFFFF: "Low",
		0:      "Normal",
		1:      "High",
	}},
	16: {Name: "ISOSpeed"},
	17: {Name: "MeteringMode", Decoder: EnumTable{
		0: "Default",
		1: "Spot",
		2: "Average",
		3: "Evaluative",
		4: "Partial",
		5: "Center-weighted",
	}},
	18: {Name: "FocusType", Decoder: EnumTable{
		0: "Manual",
		1: "Auto",
		3: "Close-up (Macro)",
		8: "Locked (Pan Mode)",
	}},
	19: {Name: "AFPointSelected"},
	20: {Name: "ExposureMode", Decoder: EnumTable{
		0: "Easy",
		1: "Program AE",
		2: "Shutter priority",
		3: "Aperture priority",
		4: "Manual",
		5: "Depth-of-field AE",
	}},
	22: {Name: "LensType"},
	23: {Name: "LongFocalLength"},
	24: {Name: "ShortFocalLength"},
	25: {Name: "FocalUnits"},
	26: {Name: "MaxAperture"},
	27: {Name: "MinAperture"},
	28: {Name: "FlashActivity"},
	29: {Name: "FlashDetails"},
	32: {Name: "FocusContinuous", Decoder: EnumTable{
		0: "Single",
		1: "Continuous",
	}},
	33: {Name: "AESetting", Decoder: EnumTable{
		0: "Normal AE",
		1: "Exposure Compensation",
		2: "AE Lock",
		3: "AE Lock + Exposure Compensation",
		4: "No AE",
	}},
	34: {Name: "ImageStabilization"},
	39: {Name: "SpotMeteringMode"},
	40: {Name: "PhotoEffect"},
}

// CanonFocalLength is the position-indexed FocalLength tag
// (MakerNote Tag 0x0002).
var CanonFocalLength = map[int]CanonIndexEntry{
	1: {Name: "FocalType", Decoder: EnumTable{1: "Fixed", 2: "Zoom"}},
	2: {Name: "FocalLength"},
	3: {Name: "FocalPlaneXSize"},
	4: {Name: "FocalPlaneYSize"},
}

// CanonShotInfo is the position-indexed ShotInfo tag (MakerNote
// Tag 0x0004).
var CanonShotInfo = map[int]CanonIndexEntry{
	1:  {Name: "AutoISO"},
	2:  {Name: "BaseISO"},
	3:  {Name: "MeasuredEV"},
	4:  {Name: "TargetAperture"},
	5:  {Name: "TargetExposureTime"},
	6:  {Name: "ExposureCompensation"},
	7:  {Name: "WhiteBalance"},
	8:  {Name: "SlowShutter"},
	9:  {Name: "SequenceNumber"},
	10: {Name: "OpticalZoomCode"},
	13: {Name: "FlashGuideNumber"},
	14: {Name: "AFPointsInFocus"},
	15: {Name: "FlashExposureCompensation"},
	16: {Name: "AutoExposureBracketing"},
	17: {Name: "AEBBracketValue"},
	18: {Name: "ControlMode"},
	21: {Name: "FocusDistanceUpper"},
	22: {Name: "FocusDistanceLower"},
	23: {Name: "FNumber"},
	24: {Name: "ExposureTime"},
	25: {Name: "MeasuredEV2"},
	28: {Name: "CameraType"},
	29: {Name: "AutoRotate"},
	30: {Name: "NDFilter"},
}

// CanonAFInfo2 is the position-indexed AFInfo2 tag (MakerNote
// Tag 0x0026).
var CanonAFInfo2 = map[int]CanonIndexEntry{
	1: {Name: "AFInfoSize"},
	2: {Name: "AFAreaMode"},
	3: {Name: "NumAFPoints"},
	4: {Name: "ValidAFPoints"},
	5: {Name: "CanonImageWidth"},
	6: {Name: "CanonImageHeight"},
}

// CanonFileInfo is the position-indexed FileInfo tag (MakerNote
// Tag 0x0093).
var CanonFileInfo = map[int]CanonIndexEntry{
	1: {Name: "FileNumber"},
	3: {Name: "BracketMode", Decoder: EnumTable{
		0: "Off",
		1: "AEB",
		2: "FEB",
		3: "ISO",
		4: "WB",
	}},
	4:  {Name: "BracketValue"},
	5:  {Name: "BracketShotNumber"},
	6:  {Name: "RawJpgQuality"},
	7:  {Name: "RawJpgSize"},
	8:  {Name: "NoiseReduction"},
	9:  {Name: "WBBracketMode"},
	14: {Name: "LiveViewShooting"},
}

// CanonIndexedTags maps a Canon composite-tag name (as stored in the
// Canon dictionary above) to its position-indexed decode table, per
// spec's "registered offset-encoded subtag" list.
var CanonIndexedTags = map[string]map[int]CanonIndexEntry{
	"CameraSettings": CanonCameraSettings,
	"FocalLength":    CanonFocalLength,
	"ShotInfo":       CanonShotInfo,
	"AFInfo2":        CanonAFInfo2,
	"FileInfo":       CanonFileInfo,
}

// CanonCameraInfoEntry describes one fixed-offset field inside the
// Canon CameraInfo opaque byte blob.
type CanonCameraInfoEntry struct {
	Offset int
	Name   string
	// Size is the field width in bytes; supported values are 1, 2, 4.
	Size int
	// Signed marks the field as a signed integer.
	Signed bool
	// Decoder, if set, receives the raw decoded integer and returns the
	// printable/serialized value; if nil, the integer is used directly.
	Decoder Decoder
}

// CanonCameraInfoTable is a named, model-matched CameraInfo byte
// layout.
type CanonCameraInfoTable struct {
	ModelPattern *regexp.Regexp
	Entries      []CanonCameraInfoEntry
}

// CanonCameraInfoTables lists the model-specific CameraInfo layouts in
// the order they should be tried; the first pattern matching
// "Image Model" wins. On no match the composite tag is left unchanged,
// per the spec's explicit ambiguity-tolerant policy.
var CanonCameraInfoTables = []CanonCameraInfoTable{
	{
		ModelPattern: regexp.MustCompile(`\bEOS 5D\b`),
		Entries: []CanonCameraInfoEntry{
			{Offset: 15, Name: "CameraTemperature", Size: 1},
			{Offset: 47, Name: "LensType", Size: 2},
			{Offset: 49, Name: "FocalType", Size: 1},
		},
	},
	{
		ModelPattern: regexp.MustCompile(`\bEOS 40D\b`),
		Entries: []CanonCameraInfoEntry{
			{Offset: 14, Name: "CameraTemperature", Size: 1},
			{Offset: 48, Name: "LensType", Size: 2},
		},
	},
	{
		ModelPattern: regexp.MustCompile(`\bEOS-1D`),
		Entries: []CanonCameraInfoEntry{
			{Offset: 24, Name: "CameraTemperature", Size: 1},
			{Offset: 60, Name: "LensType", Size: 2},
		},
	},
}
