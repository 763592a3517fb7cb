package fixed

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"lukechampine.com/uint128"
)

// Decimal type is a representation of a non-negative fixed-point decimal number.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal is a single unsigned 128-bit integer, called the atomic value,
// interpreted as atomic / 10^D, where D is the number of digits after the
// decimal point reported by the type parameter P.
// For example, a [Decimal6] with an atomic value of 1500000 represents 1.5.
//
// D is part of the type, not of the value, so decimals of different
// precisions cannot be compared or combined without an explicit [Convert].
// Decimals of the same precision can be compared with the == operator.
type Decimal[P Precision] struct {
	atomic aint // the scaled numerator of the decimal
}

var (
	ErrInvalidFormat     = errors.New("invalid decimal format")
	ErrOverflow          = errors.New("decimal overflow")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrPrecisionMismatch = errors.New("precision mismatch")
	errPlacesRange       = errors.New("number of fractional digits out of range")
)

// Raw returns a decimal with the given atomic value, that is atomic / 10^D.
func Raw[P Precision](atomic uint128.Uint128) Decimal[P] {
	return Decimal[P]{atomic: aint(atomic)}
}

// Raw64 is like [Raw] but takes an uint64 atomic value.
func Raw64[P Precision](atomic uint64) Decimal[P] {
	return Raw[P](uint128.From64(atomic))
}

// NewFromUint64 returns a decimal equal to the integer v.
//
// NewFromUint64 returns an error if v * 10^D does not fit into 128 bits.
func NewFromUint64[P Precision](v uint64) (Decimal[P], error) {
	return NewFromUint128[P](uint128.From64(v))
}

// NewFromUint128 returns a decimal equal to the integer v.
//
// NewFromUint128 returns an error if v * 10^D does not fit into 128 bits.
func NewFromUint128[P Precision](v uint128.Uint128) (Decimal[P], error) {
	a, ok := aint(v).mul(fracOf[P]())
	if !ok {
		return Decimal[P]{}, fmt.Errorf("converting %v: %w", v, ErrOverflow)
	}
	return Decimal[P]{atomic: a}, nil
}

// NewFromAtomics returns a decimal equal to atomics / 10^places.
// If places is greater than D, the extra digits are truncated.
//
// NewFromAtomics returns an error if:
//   - places is less than 0 or greater than [MaxPlaces];
//   - the rescaled atomic value does not fit into 128 bits.
func NewFromAtomics[P Precision](atomics uint128.Uint128, places int) (Decimal[P], error) {
	if places < 0 || places > MaxPlaces {
		return Decimal[P]{}, fmt.Errorf("converting %v with %v fractional digits: %w", atomics, places, errPlacesRange)
	}
	a, err := rescale(aint(atomics), places, placesOf[P]())
	if err != nil {
		return Decimal[P]{}, fmt.Errorf("converting %v with %v fractional digits: %w", atomics, places, err)
	}
	return Decimal[P]{atomic: a}, nil
}

// NewFromRatio returns a decimal equal to num / den, rounded towards zero
// to D digits after the decimal point.
//
// NewFromRatio returns an error if:
//   - den is 0;
//   - the result does not fit into 128 bits.
func NewFromRatio[P Precision](num, den uint128.Uint128) (Decimal[P], error) {
	a, err := mulQuo(aint(num), fracOf[P](), aint(den))
	if err != nil {
		return Decimal[P]{}, fmt.Errorf("computing [%v / %v]: %w", num, den, err)
	}
	return Decimal[P]{atomic: a}, nil
}

// Percent returns a decimal equal to x / 100.
func Percent[P Precision](x uint64) (Decimal[P], error) {
	return NewFromRatio[P](uint128.From64(x), uint128.From64(100))
}

// Permille returns a decimal equal to x / 1000.
func Permille[P Precision](x uint64) (Decimal[P], error) {
	return NewFromRatio[P](uint128.From64(x), uint128.From64(1_000))
}

// Bps returns a decimal equal to x basis points, that is x / 10000.
func Bps[P Precision](x uint64) (Decimal[P], error) {
	return NewFromRatio[P](uint128.From64(x), uint128.From64(10_000))
}

// rescale converts an atomic value with from fractional digits to an atomic
// value with to fractional digits.
// Scaling up is exact but can overflow, scaling down truncates.
func rescale(x aint, from, to int) (aint, error) {
	if to >= from {
		z, ok := x.lsh(to - from)
		if !ok {
			return aint{}, ErrOverflow
		}
		return z, nil
	}
	return x.rshDown(from - to), nil
}

// Parse converts a string to a decimal.
// The input string must be in one of the following formats:
//
//	1.234
//	1234
//	0.000001
//
// The formal EBNF grammar for the supported format is as follows:
//
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= digits [ '.' digits ]
//
// Both the integer part and, when the decimal point is present, the
// fractional part must contain at least one digit.
// Signs, exponents and whitespace are not allowed.
// Shorter fractional parts are zero-padded to D digits.
//
// Parse returns an error wrapping [ErrInvalidFormat] if the string is
// malformed or has more than D digits after the decimal point, and an error
// wrapping [ErrOverflow] if the value does not fit into 128 bits.
// Also see [ParseTrunc].
func Parse[P Precision](s string) (Decimal[P], error) {
	a, err := parseAtomic(s, placesOf[P](), false)
	if err != nil {
		return Decimal[P]{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return Decimal[P]{atomic: a}, nil
}

// ParseTrunc is like [Parse] but silently discards fractional digits beyond D
// instead of returning an error.
// The discarded digits are truncated, never rounded, so the operation loses
// information: ParseTrunc[P6]("1.1234567") equals Parse[P6]("1.123456").
// At most [MaxFracDigits] fractional digits are accepted.
//
// All decoders of this package use ParseTrunc, so that a value written with
// a higher precision can be read back with a lower one.
func ParseTrunc[P Precision](s string) (Decimal[P], error) {
	a, err := parseAtomic(s, placesOf[P](), true)
	if err != nil {
		return Decimal[P]{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return Decimal[P]{atomic: a}, nil
}

// ParseAll parses every string of ss with [Parse].
// It reports all malformed elements at once, which is handy when decoding
// argument lists.
func ParseAll[P Precision](ss []string) ([]Decimal[P], error) {
	var result *multierror.Error
	ds := make([]Decimal[P], len(ss))
	for i, s := range ss {
		d, err := Parse[P](s)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("element %v: %w", i, err))
			continue
		}
		ds[i] = d
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return ds, nil
}

func parseAtomic(s string, places int, trunc bool) (aint, error) {
	var (
		pos      int
		width    int
		coef     aint
		intdigs  int
		fracdigs int
		ok       bool
	)

	width = len(s)
	if width == 0 {
		return aint{}, fmt.Errorf("empty string: %w", ErrInvalidFormat)
	}

	// Integer
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		coef, ok = coef.fsa(1, s[pos]-'0')
		if !ok {
			return aint{}, ErrOverflow
		}
		intdigs++
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			switch {
			case fracdigs < places:
				coef, ok = coef.fsa(1, s[pos]-'0')
				if !ok {
					return aint{}, ErrOverflow
				}
			case !trunc:
				return aint{}, fmt.Errorf("more than %v digit(s) after the decimal point: %w", places, ErrInvalidFormat)
			case fracdigs >= MaxFracDigits:
				return aint{}, fmt.Errorf("more than %v digit(s) after the decimal point: %w", MaxFracDigits, ErrInvalidFormat)
			}
			fracdigs++
			pos++
		}
		if fracdigs == 0 {
			return aint{}, fmt.Errorf("no digits after the decimal point: %w", ErrInvalidFormat)
		}
	}

	if pos != width {
		return aint{}, fmt.Errorf("invalid character %q: %w", s[pos], ErrInvalidFormat)
	}
	if intdigs == 0 {
		return aint{}, fmt.Errorf("no digits before the decimal point: %w", ErrInvalidFormat)
	}

	// Padding
	if fracdigs < places {
		coef, ok = coef.lsh(places - fracdigs)
		if !ok {
			return aint{}, ErrOverflow
		}
	}
	return coef, nil
}

// String implements the [fmt.Stringer] interface and returns the canonical
// string representation of a decimal value.
// The fractional part always has exactly D digits, so trailing zeros are kept:
// a [Decimal6] equal to 1.5 is formatted as "1.500000".
// If D is 0, the decimal point is omitted.
// The output is formatted according to the following EBNF grammar:
//
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= digits [ '.' digits ]
//
// Also see method [Decimal.Compact].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal[P]) String() string {
	return formatAtomic(d.atomic, placesOf[P]())
}

func formatAtomic(x aint, places int) string {
	var (
		buf   [48]byte
		pos   int
		coef  uint128.Uint128
		r     uint64
		scale int
	)

	pos = len(buf) - 1
	coef = x.u128()
	scale = places

	// Coefficient
	for {
		coef, r = coef.QuoRem64(10)
		buf[pos] = byte(r) + '0'
		pos--
		if scale > 0 {
			scale--
			// Decimal point
			if scale == 0 {
				buf[pos] = '.'
				pos--
				// Leading 0
				if coef.IsZero() {
					buf[pos] = '0'
					pos--
				}
			}
		}
		if coef.IsZero() && scale == 0 {
			break
		}
	}

	return string(buf[pos+1:])
}

// Compact returns a string representation of d without trailing zeros
// in the fractional part, and without the decimal point if d is an integer:
// a [Decimal6] equal to 1.5 is formatted as "1.5", and 2 as "2".
// The result is accepted by [Parse] of any precision with enough digits.
func (d Decimal[P]) Compact() string {
	s := d.String()
	if placesOf[P]() == 0 {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// Format implements the [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v:  1.500000
//	%q:     "1.500000"
//	%f:      1.500000, %.2f: 1.50, %.8f: 1.50000000
//
// Precision of %f truncates the fractional digits or pads them with zeros.
// Width is supported for all verbs, and the '-' flag pads on the right.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal[P]) Format(state fmt.State, verb rune) {
	s := d.String()
	switch verb {
	case 's', 'S', 'v', 'V':
		// canonical form
	case 'q', 'Q':
		s = `"` + s + `"`
	case 'f', 'F':
		if prec, ok := state.Precision(); ok {
			s = withFrac(s, placesOf[P](), prec)
		}
	default:
		s = "%!" + string(verb) + "(fixed.Decimal=" + s + ")"
	}
	if w, ok := state.Width(); ok && w > len(s) {
		pad := strings.Repeat(" ", w-len(s))
		if state.Flag('-') {
			s = s + pad
		} else {
			s = pad + s
		}
	}
	_, _ = io.WriteString(state, s)
}

// withFrac changes the number of fractional digits in the canonical form s
// from places to prec, truncating or padding with zeros.
func withFrac(s string, places, prec int) string {
	switch {
	case prec == places:
		return s
	case prec < places:
		s = s[:len(s)-(places-prec)]
		return strings.TrimSuffix(s, ".")
	}
	if places == 0 {
		s += "."
	}
	return s + strings.Repeat("0", prec-places)
}

// Atomics returns the atomic value of d, that is d * 10^D.
func (d Decimal[P]) Atomics() uint128.Uint128 {
	return d.atomic.u128()
}

// Places returns the number of digits after the decimal point.
func (d Decimal[P]) Places() int {
	return placesOf[P]()
}

// IsZero returns true if d == 0.
func (d Decimal[P]) IsZero() bool {
	return d.atomic.isZero()
}

// IsOne returns true if d == 1.
func (d Decimal[P]) IsOne() bool {
	return d.atomic == fracOf[P]()
}

// IsInt returns true if the fractional part of d is zero.
func (d Decimal[P]) IsInt() bool {
	_, r, _ := d.atomic.quoRem(fracOf[P]())
	return r.isZero()
}

// Add returns the sum of d and e.
//
// Add returns an error wrapping [ErrOverflow] if the sum does not fit into
// 128 bits. Also see [Decimal.SaturatingAdd] and [Decimal.MustAdd].
func (d Decimal[P]) Add(e Decimal[P]) (Decimal[P], error) {
	z, ok := d.atomic.add(e.atomic)
	if !ok {
		return Decimal[P]{}, fmt.Errorf("computing [%v + %v]: %w", d, e, ErrOverflow)
	}
	return Decimal[P]{atomic: z}, nil
}

// SaturatingAdd returns the sum of d and e, or [Max] if the sum overflows.
func (d Decimal[P]) SaturatingAdd(e Decimal[P]) Decimal[P] {
	f, err := d.Add(e)
	if err != nil {
		return Max[P]()
	}
	return f
}

// Sub returns the difference of d and e.
//
// Sub returns an error wrapping [ErrOverflow] if e is greater than d, since
// negative decimals cannot be represented.
// Also see [Decimal.SaturatingSub] and [Decimal.SubAbs].
func (d Decimal[P]) Sub(e Decimal[P]) (Decimal[P], error) {
	z, ok := d.atomic.sub(e.atomic)
	if !ok {
		return Decimal[P]{}, fmt.Errorf("computing [%v - %v]: %w", d, e, ErrOverflow)
	}
	return Decimal[P]{atomic: z}, nil
}

// SaturatingSub returns the difference of d and e, or 0 if e is greater than d.
func (d Decimal[P]) SaturatingSub(e Decimal[P]) Decimal[P] {
	f, err := d.Sub(e)
	if err != nil {
		return Decimal[P]{}
	}
	return f
}

// SubAbs returns |d - e|.
func (d Decimal[P]) SubAbs(e Decimal[P]) Decimal[P] {
	return Decimal[P]{atomic: d.atomic.dist(e.atomic)}
}

// Mul returns the product of d and e, truncated to D digits after
// the decimal point.
// The atomic values are multiplied as 256-bit integers before the product is
// scaled back, so the intermediate result never overflows.
//
// Mul returns an error wrapping [ErrOverflow] if the product does not fit
// into 128 bits.
func (d Decimal[P]) Mul(e Decimal[P]) (Decimal[P], error) {
	z, err := mulQuo(d.atomic, e.atomic, fracOf[P]())
	if err != nil {
		return Decimal[P]{}, fmt.Errorf("computing [%v * %v]: %w", d, e, err)
	}
	return Decimal[P]{atomic: z}, nil
}

// SaturatingMul returns the product of d and e, or [Max] if the product overflows.
func (d Decimal[P]) SaturatingMul(e Decimal[P]) Decimal[P] {
	f, err := d.Mul(e)
	if err != nil {
		return Max[P]()
	}
	return f
}

// Quo returns the quotient of d and e, truncated to D digits after
// the decimal point.
//
// Quo returns an error if:
//   - e is 0, the error wraps [ErrDivisionByZero];
//   - the quotient does not fit into 128 bits, the error wraps [ErrOverflow].
func (d Decimal[P]) Quo(e Decimal[P]) (Decimal[P], error) {
	z, err := mulQuo(d.atomic, fracOf[P](), e.atomic)
	if err != nil {
		return Decimal[P]{}, fmt.Errorf("computing [%v / %v]: %w", d, e, err)
	}
	return Decimal[P]{atomic: z}, nil
}

// Rem returns the remainder of dividing d by e, that is
// d - e * ⌊d / e⌋.
//
// Rem returns an error wrapping [ErrDivisionByZero] if e is 0.
func (d Decimal[P]) Rem(e Decimal[P]) (Decimal[P], error) {
	_, r, ok := d.atomic.quoRem(e.atomic)
	if !ok {
		return Decimal[P]{}, fmt.Errorf("computing [%v %% %v]: %w", d, e, ErrDivisionByZero)
	}
	return Decimal[P]{atomic: r}, nil
}

// Pow returns d raised to the power of n.
// The result is computed by repeated multiplication, each step truncated to
// D digits after the decimal point.
// 0^0 and any other d^0 are equal to 1.
// The cost is linear in n: up to n-1 wide multiplications are performed,
// stopping early once an intermediate product overflows or becomes 0.
//
// Pow returns an error wrapping [ErrOverflow] if any intermediate product
// does not fit into 128 bits.
func (d Decimal[P]) Pow(n uint32) (Decimal[P], error) {
	f := fracOf[P]()

	// Special cases
	switch {
	case n == 0:
		return Decimal[P]{atomic: f}, nil
	case n == 1, d.IsZero(), d.atomic == f:
		return d, nil
	}

	// General case
	z := d.atomic
	for i := uint32(1); i < n; i++ {
		var err error
		z, err = mulQuo(z, d.atomic, f)
		if err != nil {
			return Decimal[P]{}, fmt.Errorf("computing [%v^%v]: %w", d, n, err)
		}
		if z.isZero() {
			break
		}
	}
	return Decimal[P]{atomic: z}, nil
}

// Sqrt returns the square root of d, truncated to D digits after
// the decimal point.
// Since √(a / 10^D) = √(a * 10^D) / 10^D, the atomic value is scaled up
// by 10^D in 256-bit arithmetic before the integer square root is taken.
func (d Decimal[P]) Sqrt() Decimal[P] {
	return Decimal[P]{atomic: isqrt(d.atomic, fracOf[P]())}
}

// MulUint returns ⌊d * x⌋ as a plain integer.
//
// MulUint returns an error wrapping [ErrOverflow] if the result does not fit
// into 128 bits.
func (d Decimal[P]) MulUint(x uint128.Uint128) (uint128.Uint128, error) {
	z, err := mulQuo(d.atomic, aint(x), fracOf[P]())
	if err != nil {
		return uint128.Zero, fmt.Errorf("computing [%v * %v]: %w", d, x, err)
	}
	return z.u128(), nil
}

// MulUintCeil returns ⌈d * x⌉ as a plain integer.
//
// MulUintCeil returns an error wrapping [ErrOverflow] if the result does not
// fit into 128 bits.
func (d Decimal[P]) MulUintCeil(x uint128.Uint128) (uint128.Uint128, error) {
	q, r, err := mulQuoRem(d.atomic, aint(x), fracOf[P]())
	if err == nil && !r.isZero() {
		var ok bool
		q, ok = q.add(oneAint)
		if !ok {
			err = ErrOverflow
		}
	}
	if err != nil {
		return uint128.Zero, fmt.Errorf("computing ⌈%v * %v⌉: %w", d, x, err)
	}
	return q.u128(), nil
}

// QuoUint returns d / x, truncated to D digits after the decimal point.
//
// QuoUint returns an error wrapping [ErrDivisionByZero] if x is 0.
func (d Decimal[P]) QuoUint(x uint128.Uint128) (Decimal[P], error) {
	q, _, ok := d.atomic.quoRem(aint(x))
	if !ok {
		return Decimal[P]{}, fmt.Errorf("computing [%v / %v]: %w", d, x, ErrDivisionByZero)
	}
	return Decimal[P]{atomic: q}, nil
}

// UintQuo returns ⌊x / d⌋ as a plain integer.
//
// UintQuo returns an error if:
//   - d is 0, the error wraps [ErrDivisionByZero];
//   - the result does not fit into 128 bits, the error wraps [ErrOverflow].
func (d Decimal[P]) UintQuo(x uint128.Uint128) (uint128.Uint128, error) {
	z, err := mulQuo(aint(x), fracOf[P](), d.atomic)
	if err != nil {
		return uint128.Zero, fmt.Errorf("computing [%v / %v]: %w", x, d, err)
	}
	return z.u128(), nil
}

// Floor returns the largest integer value less than or equal to d,
// still expressed as a decimal of the same precision.
func (d Decimal[P]) Floor() Decimal[P] {
	_, r, _ := d.atomic.quoRem(fracOf[P]())
	z, _ := d.atomic.sub(r)
	return Decimal[P]{atomic: z}
}

// Ceil returns the smallest integer value greater than or equal to d,
// still expressed as a decimal of the same precision.
//
// Ceil returns an error wrapping [ErrOverflow] if d is greater than the
// largest representable integer value.
func (d Decimal[P]) Ceil() (Decimal[P], error) {
	f := fracOf[P]()
	_, r, _ := d.atomic.quoRem(f)
	if r.isZero() {
		return d, nil
	}
	z, _ := d.atomic.sub(r)
	z, ok := z.add(f)
	if !ok {
		return Decimal[P]{}, fmt.Errorf("computing ⌈%v⌉: %w", d, ErrOverflow)
	}
	return Decimal[P]{atomic: z}, nil
}

// ToUintFloor returns ⌊d⌋ as a plain integer.
func (d Decimal[P]) ToUintFloor() uint128.Uint128 {
	q, _, _ := d.atomic.quoRem(fracOf[P]())
	return q.u128()
}

// ToUintCeil returns ⌈d⌉ as a plain integer.
func (d Decimal[P]) ToUintCeil() uint128.Uint128 {
	q, r, _ := d.atomic.quoRem(fracOf[P]())
	if !r.isZero() {
		// r != 0 implies D > 0, so q + 1 cannot overflow
		q, _ = q.add(oneAint)
	}
	return q.u128()
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Decimal[P]) Cmp(e Decimal[P]) int {
	return d.atomic.cmp(e.atomic)
}

// Less returns true if d < e.
func (d Decimal[P]) Less(e Decimal[P]) bool {
	return d.Cmp(e) < 0
}

// Max returns the larger decimal.
// See also method [Decimal.Cmp].
func (d Decimal[P]) Max(e Decimal[P]) Decimal[P] {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns the smaller decimal.
// See also method [Decimal.Cmp].
func (d Decimal[P]) Min(e Decimal[P]) Decimal[P] {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}

// Sum returns the sum of ds.
// The sum of no decimals is 0.
func Sum[P Precision](ds ...Decimal[P]) (Decimal[P], error) {
	var (
		z   Decimal[P]
		err error
	)
	for _, d := range ds {
		z, err = z.Add(d)
		if err != nil {
			return Decimal[P]{}, err
		}
	}
	return z, nil
}

// Product returns the product of ds.
// The product of no decimals is 1.
func Product[P Precision](ds ...Decimal[P]) (Decimal[P], error) {
	var err error
	z := One[P]()
	for _, d := range ds {
		z, err = z.Mul(d)
		if err != nil {
			return Decimal[P]{}, err
		}
	}
	return z, nil
}
