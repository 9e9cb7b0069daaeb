package parameter

// Flight model tuning, arcade-grade rather than aerodynamic
const (
	// FlightMaxSpeed is forward speed at full throttle in units/s
	FlightMaxSpeed = 100.0

	// FlightLiftFactor scales the 1-cos(pitch) lift term
	FlightLiftFactor = 0.001

	// FlightGravity is subtracted from vertical velocity per second
	FlightGravity = 0.005

	// FlightDragFactor multiplies velocity once per step
	FlightDragFactor = 0.995

	// FlightRotationSpeed is angular velocity gained per second of held input (rad/s²)
	FlightRotationSpeed = 1.5

	// FlightRotationDamping multiplies angular velocity once per step
	FlightRotationDamping = 0.8

	// FlightThrottleLocked pins throttle at 1 for the dodging mode
	FlightThrottleLocked = true
)

// Aircraft start pose
const (
	AircraftStartX = 0.0
	AircraftStartY = 50.0
	AircraftStartZ = 0.0
)

// Aircraft hull extents in the aircraft's local frame
// Wingspan 30, fin top at +4, nose cone at -14, stabilizer at +11
const (
	HullMinX, HullMaxX = -15.0, 15.0
	HullMinY, HullMaxY = -2.0, 4.0
	HullMinZ, HullMaxZ = -14.0, 11.0
)

// GroundBuffer is the clearance below which the aircraft counts as crashed into terrain
const GroundBuffer = 15.0
