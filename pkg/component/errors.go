package component

import "errors"

// ErrInvalidParameter is returned by element constructors when a
// parameter that must be positive (resistance, capacitance, inductance,
// diode Is/Vt) is not.
var ErrInvalidParameter = errors.New("invalid parameter")
