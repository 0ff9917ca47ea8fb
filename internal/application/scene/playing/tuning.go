package playing

// Gameplay tuning. Distances are world units, times are seconds,
// per-frame amounts are applied once per Step.
const (
	collectibleCount = 8

	balloonScale = 0.7
	knotScale    = 1.0

	// Swelling after a pickup
	swellDuration = 2.0
	swellGrowth   = 0.0007
	balloonRise   = 0.006
	cameraRise    = 0.005

	// Wobble
	swingPeriod      = 5.0
	balloonSwingDeg  = 5.0
	knotSwingDeg     = 25.0
	swollenSwingRate = 5.0

	pickupRadius = 1.0
	needleRadius = 2.0
	popGrowth    = 100.0
)
