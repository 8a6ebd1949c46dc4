// File: angle.go
// Title: Angle Conversion
// Description: Converts degree and gradian angles to radians.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-02
// Modified: 2026-10-02
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation

package mathx

import (
	"math"

	mdwerror "github.com/msto63/mCALC/foundation/core/error"
)

// Angle units accepted by AngleToRadians
const (
	UnitDegree  = "degree"
	UnitGradian = "gradian"
)

// pi is a float64 variable so the conversion factors below are computed in
// float64 arithmetic rather than as exact constants.
var pi float64 = math.Pi

// AngleToRadians converts angle from unit to radians. An empty unit means
// degrees. Any unit other than "degree" or "gradian" fails with
// CodeInvalidUnit.
func AngleToRadians(angle float64, unit string) (float64, error) {
	switch unit {
	case UnitDegree, "":
		return angle * (pi / 180), nil
	case UnitGradian:
		return angle * (pi / 200), nil
	default:
		return 0, mdwerror.New("unit must be 'degree' or 'gradian'").
			WithCode(mdwerror.CodeInvalidUnit).
			WithOperation("mathx.AngleToRadians").
			WithDetail("unit", unit)
	}
}
