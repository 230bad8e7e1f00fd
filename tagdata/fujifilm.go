package tagdata

// Fujifilm is the MakerNote dictionary walked at offset 12 inside the
// Intel-endian, base-relative sub-block the FUJIFILM dispatch pushes.
var Fujifilm = Dict{
	0x0000: {Name: "NoteVersion"},
	0x1000: {Name: "Quality"},
	0x1001: {Name: "Sharpness", Decoder: EnumTable{
		1: "Soft",
		2: "Soft2",
		3: "Normal",
		4: "Hard",
		5: "Hard2",
	}},
	0x1002: {Name: "WhiteBalance", Decoder: EnumTable{
		0x0:    "Auto",
		0x100:  "Daylight",
		0x200:  "Cloudy",
		0x300:  "Daylight Fluorescent",
		0x400:  "Warm White Fluorescent",
		0x500:  "Cool White Fluorescent",
		0x600:  "White Fluorescent",
		0x700:  "Incandescent",
		0xf00:  "Custom",
		0xff00: "Kelvin",
	}},
	0x1003: {Name: "Saturation"},
	0x1004: {Name: "Contrast"},
	0x1010: {Name: "FlashMode", Decoder: EnumTable{
		0: "Auto",
		1: "On",
		2: "Off",
		3: "Red Eye Reduction",
	}},
	0x1011: {Name: "FlashExposureComp"},
	0x1020: {Name: "Macro", Decoder: EnumTable{
		0: "Off",
		1: "On",
	}},
	0x1021: {Name: "FocusMode"},
	0x1030: {Name: "SlowSync", Decoder: EnumTable{
		0: "Off",
		1: "On",
	}},
	0x1031: {Name: "PictureMode"},
	0x1100: {Name: "AutoBracketing"},
	0x1210: {Name: "ColorMode"},
	0x1400: {Name: "NoiseReduction"},
	0x1431: {Name: "RateConversion"},
	0x1440: {Name: "SensorBlueLevel"},
	0x1450: {Name: "FilmMode"},
	0x3820: {Name: "FrameRate"},
}
