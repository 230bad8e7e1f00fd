package tagdata

// EXIFTags is the shared dictionary for the root IFDs (Image, Thumbnail)
// and the EXIF sub-IFD. The four pointer entries (SubIFDs, ExifOffset,
// GPSInfo, InteropOffset) carry a SubIFD decoder so the walker recurses
// automatically; MakerNote carries no decoder here because its vendor
// dispatch needs the raw bytes and Image Make, handled separately by
// the MakerNote dispatcher rather than a generic sub-IFD recursion.
var EXIFTags = Dict{
	0x0001: {Name: "InteropIndex"},
	0x0002: {Name: "InteropVersion"},
	0x000B: {Name: "ProcessingSoftware"},
	0x00FE: {Name: "SubfileType"},
	0x00FF: {Name: "OldSubfileType"},
	0x0100: {Name: "ImageWidth"},
	0x0101: {Name: "ImageHeight"},
	0x0102: {Name: "BitsPerSample"},
	0x0103: {Name: "Compression", Decoder: EnumTable{
		1:     "Uncompressed TIFF",
		2:     "CCITT 1D",
		3:     "T4/Group 3 Fax",
		4:     "T6/Group 4 Fax",
		5:     "LZW",
		6:     "JPEG (old-style)",
		7:     "JPEG",
		8:     "Adobe Deflate",
		32773: "PackBits",
	}},
	0x014A: {Name: "SubIFDs", Decoder: SubIFD{Name: "SubIFD", Tags: nil}},
	0x0106: {Name: "PhotometricInterpretation"},
	0x0107: {Name: "Thresholding"},
	0x010A: {Name: "FillOrder"},
	0x010D: {Name: "DocumentName"},
	0x010E: {Name: "ImageDescription"},
	0x010F: {Name: "Make"},
	0x0110: {Name: "Model"},
	0x0111: {Name: "StripOffsets"},
	0x0112: {Name: "Orientation", Decoder: EnumTable{
		1: "Horizontal (normal)",
		2: "Mirrored horizontal",
		3: "Rotated 180",
		4: "Mirrored vertical",
		5: "Mirrored horizontal then rotated 90 CCW",
		6: "Rotated 90 CW",
		7: "Mirrored horizontal then rotated 90 CW",
		8: "Rotated 90 CCW",
	}},
	0x0115: {Name: "SamplesPerPixel"},
	0x0116: {Name: "RowsPerStrip"},
	0x0117: {Name: "StripByteCounts"},
	0x011A: {Name: "XResolution"},
	0x011B: {Name: "YResolution"},
	0x011C: {Name: "PlanarConfiguration"},
	0x0128: {Name: "ResolutionUnit", Decoder: EnumTable{
		1: "Not Absolute",
		2: "Pixels/Inch",
		3: "Pixels/Centimeter",
	}},
	0x0131: {Name: "Software"},
	0x0132: {Name: "DateTime"},
	0x013B: {Name: "Artist"},
	0x013E: {Name: "WhitePoint"},
	0x013F: {Name: "PrimaryChromaticities"},
	0x0142: {Name: "TileWidth"},
	0x0143: {Name: "TileLength"},
	0x0144: {Name: "TileOffsets"},
	0x0145: {Name: "TileByteCounts"},
	0x0156: {Name: "TransferRange"},
	0x0201: {Name: "JPEGInterchangeFormat"},
	0x0202: {Name: "JPEGInterchangeFormatLength"},
	0x0211: {Name: "YCbCrCoefficients"},
	0x0212: {Name: "YCbCrSubSampling"},
	0x0213: {Name: "YCbCrPositioning", Decoder: EnumTable{
		1: "Centered",
		2: "Co-sited",
	}},
	0x0214: {Name: "ReferenceBlackWhite"},
	0x02BC: {Name: "ApplicationNotes"},
	0x4746: {Name: "Rating"},
	0x4749: {Name: "RatingPercent"},
	0x8298: {Name: "Copyright"},
	0x829A: {Name: "ExposureTime"},
	0x829D: {Name: "FNumber"},
	0x8769: {Name: "ExifOffset", Decoder: SubIFD{Name: "EXIF", Tags: nil}},
	0x8822: {Name: "ExposureProgram", Decoder: EnumTable{
		0: "Not Defined",
		1: "Manual",
		2: "Program Normal",
		3: "Aperture Priority",
		4: "Shutter Priority",
		5: "Program Creative",
		6: "Program Action",
		7: "Portrait Mode",
		8: "Landscape Mode",
	}},
	0x8824: {Name: "SpectralSensitivity"},
	0x8825: {Name: "GPSInfo", Decoder: SubIFD{Name: "GPS", Tags: GPSTags}},
	0x8827: {Name: "ISOSpeedRatings"},
	0x8828: {Name: "OECF"},
	0x8830: {Name: "SensitivityType"},
	0x8832: {Name: "RecommendedExposureIndex"},
	0x9000: {Name: "ExifVersion"},
	0x9003: {Name: "DateTimeOriginal"},
	0x9004: {Name: "DateTimeDigitized"},
	0x9010: {Name: "OffsetTime"},
	0x9011: {Name: "OffsetTimeOriginal"},
	0x9012: {Name: "OffsetTimeDigitized"},
	0x9101: {Name: "ComponentsConfiguration", Decoder: EnumTable{
		0: "",
		1: "Y",
		2: "Cb",
		3: "Cr",
		4: "Red",
		5: "Green",
		6: "Blue",
	}},
	0x9102: {Name: "CompressedBitsPerPixel"},
	0x9201: {Name: "ShutterSpeedValue"},
	0x9202: {Name: "ApertureValue"},
	0x9203: {Name: "BrightnessValue"},
	0x9204: {Name: "ExposureBiasValue"},
	0x9205: {Name: "MaxApertureValue"},
	0x9206: {Name: "SubjectDistance"},
	0x9207: {Name: "MeteringMode", Decoder: EnumTable{
		0:   "Unidentified",
		1:   "Average",
		2:   "CenterWeightedAverage",
		3:   "Spot",
		4:   "MultiSpot",
		5:   "Pattern",
		6:   "Partial",
		255: "Other",
	}},
	0x9208: {Name: "LightSource", Decoder: EnumTable{
		0:   "Unknown",
		1:   "Daylight",
		2:   "Fluorescent",
		3:   "Tungsten (Incandescent)",
		4:   "Flash",
		9:   "Fine Weather",
		10:  "Cloudy",
		11:  "Shade",
		255: "Other",
	}},
	0x9209: {Name: "Flash", Decoder: EnumTable{
		0x0:  "Flash did not fire",
		0x1:  "Flash fired",
		0x5:  "Strobe return light not detected",
		0x7:  "Strobe return light detected",
		0x9:  "Flash fired, compulsory flash mode",
		0x10: "Flash did not fire, compulsory flash mode",
		0x18: "Flash did not fire, auto mode",
		0x19: "Flash fired, auto mode",
		0x1D: "Flash fired, auto mode, return light not detected",
		0x1F: "Flash fired, auto mode, return light detected",
		0x20: "No flash function",
		0x41: "Flash fired, red-eye reduction mode",
		0x59: "Flash fired, red-eye reduction mode, auto mode",
	}},
	0x920A: {Name: "FocalLength"},
	0x9214: {Name: "SubjectArea"},
	0x927C: {Name: "MakerNote"},
	0x9286: {Name: "UserComment"},
	0x9290: {Name: "SubSecTime"},
	0x9291: {Name: "SubSecTimeOriginal"},
	0x9292: {Name: "SubSecTimeDigitized"},
	0xA000: {Name: "FlashPixVersion"},
	0xA001: {Name: "ColorSpace", Decoder: EnumTable{
		1:      "sRGB",
		2:      "Adobe RGB",
		0xFFFF: "Uncalibrated",
	}},
	0xA002: {Name: "ExifImageWidth"},
	0xA003: {Name: "ExifImageLength"},
	0xA004: {Name: "RelatedSoundFile"},
	0xA005: {Name: "InteropOffset", Decoder: SubIFD{Name: "EXIF Interoperability", Tags: InteropTags}},
	0xC620: {Name: "DefaultCropSize"},
	0xA20B: {Name: "FlashEnergy"},
	0xA20E: {Name: "FocalPlaneXResolution"},
	0xA20F: {Name: "FocalPlaneYResolution"},
	0xA210: {Name: "FocalPlaneResolutionUnit", Decoder: EnumTable{
		1: "Not Absolute",
		2: "Pixels/Inch",
		3: "Pixels/Centimeter",
	}},
	0xA214: {Name: "SubjectLocation"},
	0xA215: {Name: "ExposureIndex"},
	0xA217: {Name: "SensingMethod", Decoder: EnumTable{
		1: "Not defined",
		2: "One-chip color area",
		3: "Two-chip color area",
		4: "Three-chip color area",
		5: "Color sequential area",
		7: "Trilinear",
		8: "Color sequential linear",
	}},
	0xA300: {Name: "FileSource", Decoder: EnumTable{
		1: "Film Scanner",
		2: "Reflection Print Scanner",
		3: "Digital Camera",
	}},
	0xA301: {Name: "SceneType", Decoder: EnumTable{
		1: "Directly Photographed",
	}},
	0xA302: {Name: "CFAPattern"},
	0xA401: {Name: "CustomRendered", Decoder: EnumTable{
		0: "Normal",
		1: "Custom",
	}},
	0xA402: {Name: "ExposureMode", Decoder: EnumTable{
		0: "Auto Exposure",
		1: "Manual Exposure",
		2: "Auto Bracket",
	}},
	0xA403: {Name: "WhiteBalance", Decoder: EnumTable{
		0: "Auto",
		1: "Manual",
	}},
	0xA404: {Name: "DigitalZoomRatio"},
	0xA405: {Name: "FocalLengthIn35mmFilm"},
	0xA406: {Name: "SceneCaptureType", Decoder: EnumTable{
		0: "Standard",
		1: "Landscape",
		2: "Portrait",
		3: "Night",
	}},
	0xA407: {Name: "GainControl", Decoder: EnumTable{
		0: "None",
		1: "Low gain up",
		2: "High gain up",
		3: "Low gain down",
		4: "High gain down",
	}},
	0xA408: {Name: "Contrast", Decoder: EnumTable{
		0: "Normal",
		1: "Soft",
		2: "Hard",
	}},
	0xA409: {Name: "Saturation", Decoder: EnumTable{
		0: "Normal",
		1: "Low",
		2: "High",
	}},
	0xA40A: {Name: "Sharpness", Decoder: EnumTable{
		0: "Normal",
		1: "Soft",
		2: "Hard",
	}},
	0xA40B: {Name: "DeviceSettingDescription"},
	0xA40C: {Name: "SubjectDistanceRange", Decoder: EnumTable{
		0: "Unknown",
		1: "Macro",
		2: "Close",
		3: "Distant",
	}},
	0xA420: {Name: "ImageUniqueID"},
	0xA430: {Name: "CameraOwnerName"},
	0xA431: {Name: "BodySerialNumber"},
	0xA432: {Name: "LensSpecification"},
	0xA433: {Name: "LensMake"},
	0xA434: {Name: "LensModel"},
	0xA435: {Name: "LensSerialNumber"},
	0xA460: {Name: "CompositeImage"},
}

// ExifOffset's sub-IFD recurses into this same table, which can't be
// written as a literal self-reference inside the Dict above without
// an initialization cycle.
func init() {
	e := EXIFTags[0x8769]
	e.Decoder = SubIFD{Name: "EXIF", Tags: EXIFTags}
	EXIFTags[0x8769] = e

	sub := EXIFTags[0x014A]
	sub.Decoder = SubIFD{Name: "SubIFD", Tags: EXIFTags}
	EXIFTags[0x014A] = sub
}
