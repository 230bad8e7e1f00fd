package tagdata

// DJI is the MakerNote dictionary walked at offset 0 inside the
// Intel-endian, base-relative sub-block the DJI dispatch pushes.
var DJI = Dict{
	0x0001: {Name: "Make"},
	0x0003: {Name: "SpeedX"},
	0x0004: {Name: "SpeedY"},
	0x0005: {Name: "SpeedZ"},
	0x0006: {Name: "Pitch"},
	0x0007: {Name: "Yaw"},
	0x0008: {Name: "Roll"},
	0x0009: {Name: "CameraPitch"},
	0x000A: {Name: "CameraYaw"},
	0x000B: {Name: "CameraRoll"},
}
