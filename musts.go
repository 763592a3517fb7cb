package fixed

import (
	"fmt"

	"lukechampine.com/uint128"
)

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse[P Precision](s string) Decimal[P] {
	d, err := Parse[P](s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return d
}

// MustParseTrunc is like [ParseTrunc] but panics if the string cannot be parsed.
func MustParseTrunc[P Precision](s string) Decimal[P] {
	d, err := ParseTrunc[P](s)
	if err != nil {
		panic(fmt.Sprintf("ParseTrunc(%q) failed: %v", s, err))
	}
	return d
}

// MustNewFromUint64 is like [NewFromUint64] but panics if v does not fit.
func MustNewFromUint64[P Precision](v uint64) Decimal[P] {
	d, err := NewFromUint64[P](v)
	if err != nil {
		panic(fmt.Sprintf("NewFromUint64(%v) failed: %v", v, err))
	}
	return d
}

// MustNewFromUint128 is like [NewFromUint128] but panics if v does not fit.
func MustNewFromUint128[P Precision](v uint128.Uint128) Decimal[P] {
	d, err := NewFromUint128[P](v)
	if err != nil {
		panic(fmt.Sprintf("NewFromUint128(%v) failed: %v", v, err))
	}
	return d
}

// MustNewFromAtomics is like [NewFromAtomics] but panics if the atomics
// cannot be represented.
func MustNewFromAtomics[P Precision](atomics uint128.Uint128, places int) Decimal[P] {
	d, err := NewFromAtomics[P](atomics, places)
	if err != nil {
		panic(fmt.Sprintf("NewFromAtomics(%v, %v) failed: %v", atomics, places, err))
	}
	return d
}

// MustNewFromRatio is like [NewFromRatio] but panics if computing error.
func MustNewFromRatio[P Precision](num, den uint128.Uint128) Decimal[P] {
	d, err := NewFromRatio[P](num, den)
	if err != nil {
		panic(fmt.Sprintf("NewFromRatio(%v, %v) failed: %v", num, den, err))
	}
	return d
}

// MustPercent is like [Percent] but panics if computing error.
func MustPercent[P Precision](x uint64) Decimal[P] {
	d, err := Percent[P](x)
	if err != nil {
		panic(fmt.Sprintf("Percent(%v) failed: %v", x, err))
	}
	return d
}

// MustPermille is like [Permille] but panics if computing error.
func MustPermille[P Precision](x uint64) Decimal[P] {
	d, err := Permille[P](x)
	if err != nil {
		panic(fmt.Sprintf("Permille(%v) failed: %v", x, err))
	}
	return d
}

// MustBps is like [Bps] but panics if computing error.
func MustBps[P Precision](x uint64) Decimal[P] {
	d, err := Bps[P](x)
	if err != nil {
		panic(fmt.Sprintf("Bps(%v) failed: %v", x, err))
	}
	return d
}

// MustFromLegacy is like [FromLegacy] but panics if the value does not fit.
func MustFromLegacy[P Precision](d Decimal18) Decimal[P] {
	f, err := FromLegacy[P](d)
	if err != nil {
		panic(fmt.Sprintf("FromLegacy(%v) failed: %v", d, err))
	}
	return f
}

// MustAdd is like [Decimal.Add] but panics if computing error.
func (d Decimal[P]) MustAdd(e Decimal[P]) Decimal[P] {
	f, err := d.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", d, err))
	}
	return f
}

// MustSub is like [Decimal.Sub] but panics if computing error.
func (d Decimal[P]) MustSub(e Decimal[P]) Decimal[P] {
	f, err := d.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", d, err))
	}
	return f
}

// MustMul is like [Decimal.Mul] but panics if computing error.
func (d Decimal[P]) MustMul(e Decimal[P]) Decimal[P] {
	f, err := d.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", d, err))
	}
	return f
}

// MustQuo is like [Decimal.Quo] but panics if computing error.
func (d Decimal[P]) MustQuo(e Decimal[P]) Decimal[P] {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", d, err))
	}
	return f
}

// MustRem is like [Decimal.Rem] but panics if computing error.
func (d Decimal[P]) MustRem(e Decimal[P]) Decimal[P] {
	f, err := d.Rem(e)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", d, err))
	}
	return f
}

// MustPow is like [Decimal.Pow] but panics if computing error.
func (d Decimal[P]) MustPow(n uint32) Decimal[P] {
	f, err := d.Pow(n)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", d, err))
	}
	return f
}

// MustCeil is like [Decimal.Ceil] but panics if computing error.
func (d Decimal[P]) MustCeil() Decimal[P] {
	f, err := d.Ceil()
	if err != nil {
		panic(fmt.Sprintf("MustCeil(%v) failed: %v", d, err))
	}
	return f
}

// MustMulUint is like [Decimal.MulUint] but panics if computing error.
func (d Decimal[P]) MustMulUint(x uint128.Uint128) uint128.Uint128 {
	z, err := d.MulUint(x)
	if err != nil {
		panic(fmt.Sprintf("MustMulUint(%v) failed: %v", d, err))
	}
	return z
}

// MustMulUintCeil is like [Decimal.MulUintCeil] but panics if computing error.
func (d Decimal[P]) MustMulUintCeil(x uint128.Uint128) uint128.Uint128 {
	z, err := d.MulUintCeil(x)
	if err != nil {
		panic(fmt.Sprintf("MustMulUintCeil(%v) failed: %v", d, err))
	}
	return z
}

// MustQuoUint is like [Decimal.QuoUint] but panics if computing error.
func (d Decimal[P]) MustQuoUint(x uint128.Uint128) Decimal[P] {
	f, err := d.QuoUint(x)
	if err != nil {
		panic(fmt.Sprintf("MustQuoUint(%v) failed: %v", d, err))
	}
	return f
}

// MustUintQuo is like [Decimal.UintQuo] but panics if computing error.
func (d Decimal[P]) MustUintQuo(x uint128.Uint128) uint128.Uint128 {
	z, err := d.UintQuo(x)
	if err != nil {
		panic(fmt.Sprintf("MustUintQuo(%v) failed: %v", d, err))
	}
	return z
}
