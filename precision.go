package fixed

import (
	"fmt"

	"lukechampine.com/uint128"
)

// Precision is implemented by zero-size marker types that fix the number of
// digits after the decimal point of a [Decimal].
// Because the marker is a type parameter, decimals of different precisions
// are different types and cannot be mixed without an explicit [Convert].
//
// A custom precision is declared as follows:
//
//	type P4 struct{}
//
//	func (P4) Places() int { return 4 }
//
// Places must return a constant in the range [0, MaxPlaces].
type Precision interface {
	Places() int
}

const (
	MaxPlaces     = 38            // maximum number of digits after the decimal point, 10^38 < 2^128
	MaxFracDigits = 2 * MaxPlaces // maximum number of fractional digits accepted by ParseTrunc
	LegacyPlaces  = 18            // number of digits after the decimal point of the legacy decimal
)

// P6 is a precision with 6 digits after the decimal point.
type P6 struct{}

func (P6) Places() int { return 6 }

// P9 is a precision with 9 digits after the decimal point.
type P9 struct{}

func (P9) Places() int { return 9 }

// P12 is a precision with 12 digits after the decimal point.
type P12 struct{}

func (P12) Places() int { return 12 }

// P18 is a precision with 18 digits after the decimal point.
// Decimals of this precision share their atomic representation with the
// ecosystem's legacy fixed-18-digit decimal.
type P18 struct{}

func (P18) Places() int { return LegacyPlaces }

type (
	Decimal6  = Decimal[P6]
	Decimal9  = Decimal[P9]
	Decimal12 = Decimal[P12]
	Decimal18 = Decimal[P18]
)

// placesOf returns the number of digits after the decimal point for P.
// placesOf panics if P reports a number outside of [0, MaxPlaces],
// since such a precision cannot be represented at all.
func placesOf[P Precision]() int {
	var p P
	n := p.Places()
	if n < 0 || n > MaxPlaces {
		panic(fmt.Sprintf("%T.Places() = %v: %v", p, n, errPlacesRange))
	}
	return n
}

// fracOf returns 10^D for P.
func fracOf[P Precision]() aint {
	return pow10[placesOf[P]()]
}

// Places returns the number of digits after the decimal point for P.
func Places[P Precision]() int {
	return placesOf[P]()
}

// Fractional returns the scale factor 10^D for P.
// It is also the atomic value of [One].
func Fractional[P Precision]() uint128.Uint128 {
	return fracOf[P]().u128()
}

// Zero returns a decimal with a value of 0.
func Zero[P Precision]() Decimal[P] {
	return Decimal[P]{}
}

// One returns a decimal with a value of 1.
func One[P Precision]() Decimal[P] {
	return Decimal[P]{atomic: fracOf[P]()}
}

// Max returns the largest representable decimal, whose atomic value is 2^128 - 1.
func Max[P Precision]() Decimal[P] {
	return Decimal[P]{atomic: maxAint}
}
