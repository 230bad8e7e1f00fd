package tagdata

// Apple is the MakerNote dictionary walked once the "Apple iOS\x00"
// prefix is confirmed and the endian context has been rebased.
var Apple = Dict{
	0x0001: {Name: "MakerNoteVersion"},
	0x0002: {Name: "AEStable"},
	0x0003: {Name: "AETarget"},
	0x0004: {Name: "AEAverage"},
	0x0005: {Name: "AFStable"},
	0x0006: {Name: "AccelerationVector"},
	0x0007: {Name: "HDRImageType", Decoder: EnumTable{
		3: "HDR Image",
		4: "Original Image",
	}},
	0x0008: {Name: "BurstUUID"},
	0x0009: {Name: "FocusDistanceRange"},
	0x000A: {Name: "OISMode"},
	0x000E: {Name: "ContentIdentifier"},
	0x0011: {Name: "ImageUniqueID"},
	0x0014: {Name: "LivePhotoVideoIndex"},
	0x0017: {Name: "ImageCaptureType", Decoder: EnumTable{
		1: "ProRAW",
		2: "Portrait",
		10: "Photo",
		11: "Manual Focus",
		12: "Scene",
	}},
	0x0023: {Name: "SemanticStyleInfo"},
}
