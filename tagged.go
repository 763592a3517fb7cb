package fixed

import (
	"fmt"

	"lukechampine.com/uint128"
)

// Tagged is a decimal whose number of digits after the decimal point is
// carried at run time rather than in the type.
// It is meant for hosts that learn the precision from data, such as untyped
// RPC payloads, and is converted to a [Decimal] with [Untag] as soon as the
// precision is known.
//
// Binary operations on tagged decimals fail with [ErrPrecisionMismatch]
// if the operands have different precisions; use [Tagged.Rescale] to
// convert explicitly.
// The zero value is 0 with 0 digits after the decimal point.
type Tagged struct {
	atomic aint
	places uint8
}

// NewTagged returns a tagged decimal equal to atomic / 10^places.
//
// NewTagged returns an error if places is less than 0 or greater than
// [MaxPlaces].
func NewTagged(atomic uint128.Uint128, places int) (Tagged, error) {
	if places < 0 || places > MaxPlaces {
		return Tagged{}, fmt.Errorf("tagging %v with %v fractional digits: %w", atomic, places, errPlacesRange)
	}
	return Tagged{atomic: aint(atomic), places: uint8(places)}, nil
}

// ParseTagged converts a string to a tagged decimal with the given number of
// digits after the decimal point, using the rules of [Parse].
func ParseTagged(s string, places int) (Tagged, error) {
	if places < 0 || places > MaxPlaces {
		return Tagged{}, fmt.Errorf("parsing %q: %w", s, errPlacesRange)
	}
	a, err := parseAtomic(s, places, false)
	if err != nil {
		return Tagged{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return Tagged{atomic: a, places: uint8(places)}, nil
}

// Tag returns d with its precision recorded at run time.
func Tag[P Precision](d Decimal[P]) Tagged {
	return Tagged{atomic: d.atomic, places: uint8(placesOf[P]())}
}

// Untag returns t as a decimal of precision P.
//
// Untag returns an error wrapping [ErrPrecisionMismatch] if t does not have
// exactly D digits after the decimal point.
func Untag[P Precision](t Tagged) (Decimal[P], error) {
	if t.Places() != placesOf[P]() {
		return Decimal[P]{}, fmt.Errorf("untagging %v as %v digit(s): %w", t, placesOf[P](), ErrPrecisionMismatch)
	}
	return Decimal[P]{atomic: t.atomic}, nil
}

// Places returns the number of digits after the decimal point.
func (t Tagged) Places() int {
	return int(t.places)
}

// Atomics returns the atomic value of t.
func (t Tagged) Atomics() uint128.Uint128 {
	return t.atomic.u128()
}

// String returns the canonical string representation of t, with exactly
// Places digits after the decimal point.
func (t Tagged) String() string {
	return formatAtomic(t.atomic, t.Places())
}

func (t Tagged) frac() aint {
	return pow10[t.places]
}

func (t Tagged) check(op string, u Tagged) error {
	if t.places != u.places {
		return fmt.Errorf("computing [%v %v %v]: %w", t, op, u, ErrPrecisionMismatch)
	}
	return nil
}

// Rescale converts t to the given number of digits after the decimal point,
// using the rules of [TryConvert].
func (t Tagged) Rescale(places int) (Tagged, error) {
	if places < 0 || places > MaxPlaces {
		return Tagged{}, fmt.Errorf("rescaling %v to %v digit(s): %w", t, places, errPlacesRange)
	}
	a, err := rescale(t.atomic, t.Places(), places)
	if err != nil {
		return Tagged{}, fmt.Errorf("rescaling %v to %v digit(s): %w", t, places, err)
	}
	return Tagged{atomic: a, places: uint8(places)}, nil
}

// Add returns the sum of t and u.
func (t Tagged) Add(u Tagged) (Tagged, error) {
	if err := t.check("+", u); err != nil {
		return Tagged{}, err
	}
	z, ok := t.atomic.add(u.atomic)
	if !ok {
		return Tagged{}, fmt.Errorf("computing [%v + %v]: %w", t, u, ErrOverflow)
	}
	return Tagged{atomic: z, places: t.places}, nil
}

// Sub returns the difference of t and u.
func (t Tagged) Sub(u Tagged) (Tagged, error) {
	if err := t.check("-", u); err != nil {
		return Tagged{}, err
	}
	z, ok := t.atomic.sub(u.atomic)
	if !ok {
		return Tagged{}, fmt.Errorf("computing [%v - %v]: %w", t, u, ErrOverflow)
	}
	return Tagged{atomic: z, places: t.places}, nil
}

// Mul returns the product of t and u, truncated to Places digits.
func (t Tagged) Mul(u Tagged) (Tagged, error) {
	if err := t.check("*", u); err != nil {
		return Tagged{}, err
	}
	z, err := mulQuo(t.atomic, u.atomic, t.frac())
	if err != nil {
		return Tagged{}, fmt.Errorf("computing [%v * %v]: %w", t, u, err)
	}
	return Tagged{atomic: z, places: t.places}, nil
}

// Quo returns the quotient of t and u, truncated to Places digits.
func (t Tagged) Quo(u Tagged) (Tagged, error) {
	if err := t.check("/", u); err != nil {
		return Tagged{}, err
	}
	z, err := mulQuo(t.atomic, t.frac(), u.atomic)
	if err != nil {
		return Tagged{}, fmt.Errorf("computing [%v / %v]: %w", t, u, err)
	}
	return Tagged{atomic: z, places: t.places}, nil
}

// Cmp compares t and u numerically, see [Decimal.Cmp].
// Cmp returns an error wrapping [ErrPrecisionMismatch] if the precisions differ.
func (t Tagged) Cmp(u Tagged) (int, error) {
	if err := t.check("<=>", u); err != nil {
		return 0, err
	}
	return t.atomic.cmp(u.atomic), nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// The layout is the same as the one of [Decimal.MarshalBinary].
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (t Tagged) MarshalBinary() ([]byte, error) {
	return appendBinary(nil, t.atomic, t.Places()), nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// The precision is taken from the data.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (t *Tagged) UnmarshalBinary(data []byte) error {
	a, places, err := parseBinary(data)
	if err != nil {
		return fmt.Errorf("unmarshaling %x: %w", data, err)
	}
	*t = Tagged{atomic: a, places: uint8(places)}
	return nil
}
