package tagdata

// Olympus is the MakerNote dictionary selected when Image Make starts
// with "OLYMPUS".
var Olympus = Dict{
	0x0200: {Name: "SpecialMode"},
	0x0201: {Name: "JPEGQuality", Decoder: EnumTable{
		1: "SQ",
		2: "HQ",
		3: "SHQ",
	}},
	0x0202: {Name: "Macro", Decoder: EnumTable{
		0: "Normal",
		1: "Macro",
		2: "SuperMacro",
	}},
	0x0203: {Name: "BWMode", Decoder: EnumTable{
		0: "Off",
		1: "On",
	}},
	0x0204: {Name: "DigitalZoom"},
	0x0205: {Name: "FocalPlaneDiagonal"},
	0x0206: {Name: "LensDistortionParams"},
	0x0207: {Name: "CameraType"},
	0x0208: {Name: "TextInfo"},
	0x0209: {Name: "CameraID"},
	0x020B: {Name: "EpsonImageWidth"},
	0x020C: {Name: "EpsonImageHeight"},
	0x020D: {Name: "EpsonSoftware"},
	0x0280: {Name: "PreviewImage"},
	0x0300: {Name: "PreCaptureFrames"},
	0x0301: {Name: "WhiteBoard"},
	0x0302: {Name: "OneTouchWB", Decoder: EnumTable{
		0: "Off",
		1: "On",
	}},
	0x0303: {Name: "WhiteBalanceBracket"},
	0x0304: {Name: "WhiteBalanceBias"},
	0x0404: {Name: "SerialNumber"},
	0x1000: {Name: "ShutterSpeedValue"},
	0x1001: {Name: "ISOValue"},
	0x1002: {Name: "ApertureValue"},
	0x1003: {Name: "BrightnessValue"},
	0x1004: {Name: "FlashMode"},
	0x1005: {Name: "FlashDevice"},
	0x1006: {Name: "ExposureCompensation"},
	0x1007: {Name: "SensorTemperature"},
	0x1008: {Name: "LensTemperature"},
	0x100B: {Name: "FocusMode", Decoder: EnumTable{
		0: "Auto",
		1: "Manual",
	}},
	0x1017: {Name: "RedBalance"},
	0x1018: {Name: "BlueBalance"},
	0x101A: {Name: "SerialNumber"},
	0x1023: {Name: "FlashExposureComp"},
	0x1029: {Name: "ColorMatrix"},
	0x102C: {Name: "WhiteBalance2"},
	0x1034: {Name: "CompressionRatio"},
}
