package tagdata

// Casio is the MakerNote dictionary selected when Image Make contains
// "CASIO" (any case).
var Casio = Dict{
	0x0001: {Name: "RecordingMode", Decoder: EnumTable{
		1: "Single Shutter",
		2: "Panorama",
		3: "Night Scene",
		4: "Portrait",
		5: "Landscape",
	}},
	0x0002: {Name: "Quality", Decoder: EnumTable{
		1: "Economy",
		2: "Normal",
		3: "Fine",
	}},
	0x0003: {Name: "FocusingMode", Decoder: EnumTable{
		2: "Macro",
		3: "Auto Focus",
		4: "Manual Focus",
		5: "Infinity",
	}},
	0x0004: {Name: "FlashMode", Decoder: EnumTable{
		1: "Auto",
		2: "On",
		3: "Off",
		4: "Red Eye Reduction",
	}},
	0x0005: {Name: "FlashIntensity", Decoder: EnumTable{
		11: "Weak",
		13: "Normal",
		15: "Strong",
	}},
	0x0006: {Name: "ObjectDistance"},
	0x0007: {Name: "WhiteBalance", Decoder: EnumTable{
		1: "Auto",
		2: "Tungsten",
		3: "Daylight",
		4: "Fluorescent",
		5: "Shade",
		129: "Manual",
	}},
	0x000A: {Name: "DigitalZoom"},
	0x000B: {Name: "Sharpness", Decoder: EnumTable{
		0: "Normal",
		1: "Soft",
		2: "Hard",
	}},
	0x000C: {Name: "Contrast", Decoder: EnumTable{
		0: "Normal",
		1: "Low",
		2: "High",
	}},
	0x000D: {Name: "Saturation", Decoder: EnumTable{
		0: "Normal",
		1: "Low",
		2: "High",
	}},
	0x0014: {Name: "CCDSensitivity"},
}
