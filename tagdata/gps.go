package tagdata

// GPSTags is the GPS sub-IFD dictionary (tag 0x8825 off the root IFD).
var GPSTags = Dict{
	0x0000: {Name: "GPSVersionID"},
	0x0001: {Name: "GPSLatitudeRef", Decoder: EnumTable{0: "N/A"}},
	0x0002: {Name: "GPSLatitude"},
	0x0003: {Name: "GPSLongitudeRef"},
	0x0004: {Name: "GPSLongitude"},
	0x0005: {Name: "GPSAltitudeRef", Decoder: EnumTable{
		0: "Sea level",
		1: "Below sea level",
	}},
	0x0006: {Name: "GPSAltitude"},
	0x0007: {Name: "GPSTimeStamp"},
	0x0008: {Name: "GPSSatellites"},
	0x0009: {Name: "GPSStatus", Decoder: EnumTable{
		'A': "Measurement Active",
		'V': "Measurement Void",
	}},
	0x000A: {Name: "GPSMeasureMode", Decoder: EnumTable{
		'2': "2-Dimensional Measurement",
		'3': "3-Dimensional Measurement",
	}},
	0x000B: {Name: "GPSDOP"},
	0x000C: {Name: "GPSSpeedRef", Decoder: EnumTable{
		'K': "Kilometers per hour",
		'M': "Miles per hour",
		'N': "Knots",
	}},
	0x000D: {Name: "GPSSpeed"},
	0x000E: {Name: "GPSTrackRef", Decoder: EnumTable{
		'T': "True direction",
		'M': "Magnetic direction",
	}},
	0x000F: {Name: "GPSTrack"},
	0x0010: {Name: "GPSImgDirectionRef", Decoder: EnumTable{
		'T': "True direction",
		'M': "Magnetic direction",
	}},
	0x0011: {Name: "GPSImgDirection"},
	0x0012: {Name: "GPSMapDatum"},
	0x0013: {Name: "GPSDestLatitudeRef"},
	0x0014: {Name: "GPSDestLatitude"},
	0x0015: {Name: "GPSDestLongitudeRef"},
	0x0016: {Name: "GPSDestLongitude"},
	0x0017: {Name: "GPSDestBearingRef"},
	0x0018: {Name: "GPSDestBearing"},
	0x0019: {Name: "GPSDestDistanceRef"},
	0x001A: {Name: "GPSDestDistance"},
	0x001B: {Name: "GPSProcessingMethod"},
	0x001C: {Name: "GPSAreaInformation"},
	0x001D: {Name: "GPSDate"},
	0x001E: {Name: "GPSDifferential", Decoder: EnumTable{
		0: "Without correction",
		1: "Correction applied",
	}},
	0x001F: {Name: "GPSHPositioningError"},
}

// InteropTags is the Interoperability sub-IFD dictionary (tag 0xA005).
var InteropTags = Dict{
	0x0001: {Name: "InteropIndex"},
	0x0002: {Name: "InteropVersion"},
	0x1000: {Name: "RelatedImageFileFormat"},
	0x1001: {Name: "RelatedImageWidth"},
	0x1002: {Name: "RelatedImageHeight"},
}
