package tagdata

// Sony is the MakerNote dictionary selected when Image Make contains
// "SONY".
var Sony = Dict{
	0x0102: {Name: "Quality", Decoder: EnumTable{
		0: "RAW",
		1: "Super Fine",
		2: "Fine",
		3: "Standard",
		4: "Economy",
		5: "Extra Fine",
	}},
	0x0104: {Name: "FlashExposureComp"},
	0x0105: {Name: "Teleconverter"},
	0x0112: {Name: "WhiteBalanceFineTune"},
	0x0114: {Name: "CameraSettings"},
	0x0115: {Name: "WhiteBalance"},
	0x0116: {Name: "PrintImageMatchingInfo"},
	0x0e00: {Name: "PrintIM"},
	0x1000: {Name: "MultiBurstMode", Decoder: EnumTable{
		0: "Off",
		1: "On",
	}},
	0x1001: {Name: "MultiBurstImageWidth"},
	0x1002: {Name: "MultiBurstImageHeight"},
	0x1003: {Name: "Panorama"},
	0x2001: {Name: "PreviewImage"},
	0x2004: {Name: "Contrast"},
	0x2005: {Name: "Saturation"},
	0x2006: {Name: "Sharpness"},
	0x2007: {Name: "Brightness"},
	0x2008: {Name: "LongExposureNoiseReduction", Decoder: EnumTable{
		0: "Off",
		1: "On",
	}},
	0x2009: {Name: "HighISONoiseReduction", Decoder: EnumTable{
		0: "Off",
		1: "On",
	}},
	0x200a: {Name: "HDR"},
	0x200b: {Name: "MultiFrameNoiseReduction", Decoder: EnumTable{
		0: "Off",
		1: "On",
	}},
	0x3000: {Name: "ShotInfo"},
	0xb000: {Name: "FileFormat"},
	0xb001: {Name: "SonyModelID"},
	0xb020: {Name: "ColorReproduction"},
	0xb021: {Name: "ColorTemperature"},
	0xb023: {Name: "SceneMode"},
	0xb024: {Name: "ZoneMatching"},
	0xb025: {Name: "DynamicRangeOptimizer"},
	0xb026: {Name: "ImageStabilization", Decoder: EnumTable{
		0: "Off",
		1: "On",
	}},
	0xb027: {Name: "LensID"},
	0xb040: {Name: "Macro"},
	0xb041: {Name: "ExposureMode"},
	0xb047: {Name: "JPEGQuality"},
}
