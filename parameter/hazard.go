package parameter

// Hazard spawn discriminants, as authored in level tilesets
const (
	// HazardVerticalPatrol marks a patrol that moves along y, any other patrol value moves along x
	HazardVerticalPatrol = 88

	// HazardSmallSpike is a rendered small rotator
	HazardSmallSpike = 101

	// HazardLargeSpike is a rendered large rotator, drawn at double size
	HazardLargeSpike = 104

	// HazardBlankSpike is a collision-only rotator with no sprite
	HazardBlankSpike = 0

	// HazardHorizontalPatrol is the canonical value written for horizontal patrols
	HazardHorizontalPatrol = 0
)

// Hazard motion
const (
	// RotatorStepDegrees is the phase advance per frame
	RotatorStepDegrees = 10.0

	// RotatorFullTurn wraps the phase
	RotatorFullTurn = 360.0
)
