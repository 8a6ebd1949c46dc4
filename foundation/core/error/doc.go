// Package error provides structured error handling for mCALC.
//
// Package: error
// Title: mCALC Error Handling
// Description: Structured errors with codes, severities, operation names,
//              details and stack traces. Packages export sentinels built with
//              Sentinel and return errors built with New; errors.Is matches
//              the two by code.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-12 v0.2.0: Sentinel matching via errors.Is
//
// Usage:
//
//	import mdwerror "github.com/msto63/mCALC/foundation/core/error"
//
//	var ErrDivisionByZero = mdwerror.Sentinel(mdwerror.CodeDivisionByZero, "division by zero is not allowed")
//
//	func divide(a, b float64) (float64, error) {
//		if b == 0 {
//			return 0, mdwerror.New("division by zero is not allowed").
//				WithCode(mdwerror.CodeDivisionByZero).
//				WithOperation("divide").
//				WithDetail("dividend", a)
//		}
//		return a / b, nil
//	}
//
//	if errors.Is(err, ErrDivisionByZero) {
//		// handle
//	}
package error
