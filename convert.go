package fixed

import "fmt"

// TryConvert returns a decimal of precision T equal to d.
//
// If T has fewer digits after the decimal point than S, the extra digits
// are truncated. This is lossy but never fails:
// converting 1.239 from 3 to 2 digits gives 1.23.
// If T has more digits, the atomic value is multiplied by a power of 10
// and TryConvert returns an error wrapping [ErrOverflow] if the result does
// not fit into 128 bits.
// If T and S have the same number of digits, d is returned unchanged.
func TryConvert[T, S Precision](d Decimal[S]) (Decimal[T], error) {
	a, err := rescale(d.atomic, placesOf[S](), placesOf[T]())
	if err != nil {
		return Decimal[T]{}, fmt.Errorf("converting %v to %v digit(s): %w", d, placesOf[T](), err)
	}
	return Decimal[T]{atomic: a}, nil
}

// Convert is like [TryConvert] but panics if the result overflows.
// It is meant for conversions that are known to be safe, such as converting
// to a lower precision.
func Convert[T, S Precision](d Decimal[S]) Decimal[T] {
	e, err := TryConvert[T](d)
	if err != nil {
		panic(fmt.Sprintf("Convert(%v) failed: %v", d, err))
	}
	return e
}

// ToLegacy converts d to the legacy 18-digit decimal.
// For [P18] it is a no-op.
//
// ToLegacy returns an error wrapping [ErrOverflow] if D is less than 18 and
// the scaled atomic value does not fit into 128 bits.
func ToLegacy[P Precision](d Decimal[P]) (Decimal18, error) {
	return TryConvert[P18](d)
}

// MustToLegacy is like [ToLegacy] but panics if the conversion overflows.
func MustToLegacy[P Precision](d Decimal[P]) Decimal18 {
	e, err := ToLegacy(d)
	if err != nil {
		panic(fmt.Sprintf("ToLegacy(%v) failed: %v", d, err))
	}
	return e
}

// FromLegacy converts a legacy 18-digit decimal to precision P.
// For [P18] it is a no-op, and for precisions with at most 18 digits it
// never fails, truncating the extra digits.
//
// FromLegacy returns an error wrapping [ErrOverflow] if D is greater than 18
// and the scaled atomic value does not fit into 128 bits.
func FromLegacy[P Precision](d Decimal18) (Decimal[P], error) {
	return TryConvert[P](d)
}
