// Package interop converts fixed-point decimals to and from the decimal types
// of other libraries: the Cosmos SDK LegacyDec, shopspring and apd.
//
// Conversions into a [fixed.Decimal] truncate digits beyond its precision
// and fail with [fixed.ErrOverflow] for negative or too large values.
// Conversions out of a [fixed.Decimal] are exact.
package interop

import (
	"fmt"
	"math/big"

	sdkmath "cosmossdk.io/math"
	"github.com/cockroachdb/apd/v3"
	"github.com/govalues/fixed"
	shopspring "github.com/shopspring/decimal"
	"lukechampine.com/uint128"
)

// maxExp bounds decimal exponents so that 10^maxExp always exceeds 2^128.
const maxExp = fixed.MaxPlaces + 1

// fromScaled converts an integer already scaled by 10^D to a decimal.
func fromScaled[P fixed.Precision](atomic *big.Int) (fixed.Decimal[P], error) {
	if atomic.Sign() < 0 || atomic.BitLen() > 128 {
		return fixed.Decimal[P]{}, fmt.Errorf("converting %v: %w", atomic, fixed.ErrOverflow)
	}
	return fixed.Raw[P](uint128.FromBig(atomic)), nil
}

// scale returns coef * 10^exp, truncating towards zero when exp is negative.
// ok is false if the result is certainly larger than 2^128.
func scale(coef *big.Int, exp int) (z *big.Int, ok bool) {
	z = new(big.Int).Set(coef)
	switch {
	case exp == 0 || z.Sign() == 0:
		return z, true
	case exp > maxExp:
		return nil, false
	case exp < -(2*maxExp + coef.BitLen()):
		// coef < 10^-exp
		return z.SetInt64(0), true
	}
	if exp > 0 {
		m := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil)
		return z.Mul(z, m), true
	}
	d := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-exp)), nil)
	return z.Quo(z, d), true
}

func atomicBig[P fixed.Precision](d fixed.Decimal[P]) *big.Int {
	return d.Atomics().Big()
}

// ToLegacyDec converts d to a Cosmos SDK LegacyDec, which always has
// 18 digits after the decimal point.
//
// ToLegacyDec returns an error wrapping [fixed.ErrOverflow] if d has fewer
// than 18 digits after the decimal point and its legacy atomic value does not
// fit into 128 bits.
func ToLegacyDec[P fixed.Precision](d fixed.Decimal[P]) (sdkmath.LegacyDec, error) {
	e, err := fixed.ToLegacy(d)
	if err != nil {
		return sdkmath.LegacyDec{}, err
	}
	return sdkmath.LegacyNewDecFromBigIntWithPrec(atomicBig(e), sdkmath.LegacyPrecision), nil
}

// FromLegacyDec converts a Cosmos SDK LegacyDec to a decimal of precision P.
//
// FromLegacyDec returns an error if:
//   - x is nil, the error wraps [fixed.ErrInvalidFormat];
//   - x is negative or too large, the error wraps [fixed.ErrOverflow].
func FromLegacyDec[P fixed.Precision](x sdkmath.LegacyDec) (fixed.Decimal[P], error) {
	if x.IsNil() {
		return fixed.Decimal[P]{}, fmt.Errorf("converting nil LegacyDec: %w", fixed.ErrInvalidFormat)
	}
	if x.IsNegative() {
		return fixed.Decimal[P]{}, fmt.Errorf("converting %v: %w", x, fixed.ErrOverflow)
	}
	a, ok := scale(x.BigInt(), fixed.Places[P]()-sdkmath.LegacyPrecision)
	if !ok {
		return fixed.Decimal[P]{}, fmt.Errorf("converting %v: %w", x, fixed.ErrOverflow)
	}
	return fromScaled[P](a)
}

// ToShopspring converts d to a shopspring decimal with the same value.
func ToShopspring[P fixed.Precision](d fixed.Decimal[P]) shopspring.Decimal {
	return shopspring.NewFromBigInt(atomicBig(d), -int32(d.Places()))
}

// FromShopspring converts a shopspring decimal to a decimal of precision P.
//
// FromShopspring returns an error wrapping [fixed.ErrOverflow] if x is
// negative or too large.
func FromShopspring[P fixed.Precision](x shopspring.Decimal) (fixed.Decimal[P], error) {
	if x.Sign() < 0 {
		return fixed.Decimal[P]{}, fmt.Errorf("converting %v: %w", x, fixed.ErrOverflow)
	}
	a, ok := scale(x.Coefficient(), int(x.Exponent())+fixed.Places[P]())
	if !ok {
		return fixed.Decimal[P]{}, fmt.Errorf("converting %v: %w", x, fixed.ErrOverflow)
	}
	return fromScaled[P](a)
}

// ToApd converts d to an apd decimal with the same value and an exponent
// of -D.
func ToApd[P fixed.Precision](d fixed.Decimal[P]) *apd.Decimal {
	coef := new(apd.BigInt).SetMathBigInt(atomicBig(d))
	return apd.NewWithBigInt(coef, -int32(d.Places()))
}

// FromApd converts an apd decimal to a decimal of precision P.
//
// FromApd returns an error if:
//   - x is nil, NaN or Infinity, the error wraps [fixed.ErrInvalidFormat];
//   - x is negative or too large, the error wraps [fixed.ErrOverflow].
//
// Negative zero is converted to 0.
func FromApd[P fixed.Precision](x *apd.Decimal) (fixed.Decimal[P], error) {
	switch {
	case x == nil:
		return fixed.Decimal[P]{}, fmt.Errorf("converting nil apd.Decimal: %w", fixed.ErrInvalidFormat)
	case x.Form != apd.Finite:
		return fixed.Decimal[P]{}, fmt.Errorf("converting %v: %w", x, fixed.ErrInvalidFormat)
	case x.IsZero():
		return fixed.Decimal[P]{}, nil
	case x.Negative:
		return fixed.Decimal[P]{}, fmt.Errorf("converting %v: %w", x, fixed.ErrOverflow)
	}
	a, ok := scale(x.Coeff.MathBigInt(), int(x.Exponent)+fixed.Places[P]())
	if !ok {
		return fixed.Decimal[P]{}, fmt.Errorf("converting %v: %w", x, fixed.ErrOverflow)
	}
	return fromScaled[P](a)
}
