package parameter

// Chase camera, in aircraft-relative units
const (
	CameraOffsetX, CameraOffsetY, CameraOffsetZ = 0.0, 10.0, 30.0
	CameraLookX, CameraLookY, CameraLookZ       = 0.0, 5.0, -50.0

	// CameraLerp is the per-frame smoothing toward the target position
	CameraLerp = 0.1

	// CameraFOV is the vertical field of view in radians (75°)
	CameraFOV = 1.309

	CameraNear = 0.1
	CameraFar  = 10000.0
)
