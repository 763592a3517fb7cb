package fixed

import (
	"github.com/holiman/uint256"
	"lukechampine.com/uint128"
)

// aint (Atomic INTeger) is a wrapper around uint128.Uint128.
type aint uint128.Uint128

// maxAint is a maximum value of aint.
var maxAint = aint(uint128.Max)

// oneAint is an aint equal to 1.
var oneAint = aint(uint128.From64(1))

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = func() [MaxPlaces + 1]aint {
	var p [MaxPlaces + 1]aint
	p[0] = oneAint
	for i := 1; i < len(p); i++ {
		p[i] = aint(p[i-1].u128().Mul64(10))
	}
	return p
}()

func (x aint) u128() uint128.Uint128 {
	return uint128.Uint128(x)
}

func (x aint) isZero() bool {
	return x.Lo == 0 && x.Hi == 0
}

func (x aint) cmp(y aint) int {
	return x.u128().Cmp(y.u128())
}

// add calculates x + y and checks overflow.
func (x aint) add(y aint) (z aint, ok bool) {
	s := x.u128().AddWrap(y.u128())
	if s.Cmp(x.u128()) < 0 {
		return aint{}, false
	}
	return aint(s), true
}

// sub calculates x - y and checks underflow.
func (x aint) sub(y aint) (z aint, ok bool) {
	if x.cmp(y) < 0 {
		return aint{}, false
	}
	return aint(x.u128().Sub(y.u128())), true
}

// dist calculates |x - y|.
func (x aint) dist(y aint) aint {
	if x.cmp(y) > 0 {
		return aint(x.u128().Sub(y.u128()))
	}
	return aint(y.u128().Sub(x.u128()))
}

// mul calculates x * y and checks overflow.
func (x aint) mul(y aint) (z aint, ok bool) {
	var w wint
	if !w.mul(x.wide(), y.wide()) {
		return aint{}, false
	}
	return w.aint()
}

// quoRem calculates q = ⌊x / y⌋, r = x - y * q.
func (x aint) quoRem(y aint) (q, r aint, ok bool) {
	if y.isZero() {
		return aint{}, aint{}, false
	}
	qq, rr := x.u128().QuoRem(y.u128())
	return aint(qq), aint(rr), true
}

// lsh (Left Shift) calculates x * 10^shift and checks overflow.
func (x aint) lsh(shift int) (z aint, ok bool) {
	// Special cases
	switch {
	case shift <= 0 || x.isZero():
		return x, true
	case shift >= len(pow10):
		return aint{}, false
	}
	// General case
	return x.mul(pow10[shift])
}

// rshDown (Right Shift) calculates x / 10^shift and rounds result towards zero.
func (x aint) rshDown(shift int) aint {
	// Special cases
	switch {
	case x.isZero():
		return x
	case shift <= 0:
		return x
	case shift >= len(pow10):
		return aint{}
	}
	// General case
	q, _, _ := x.quoRem(pow10[shift])
	return q
}

// fsa (Fused Shift and Addition) calculates x * 10^shift + b and checks overflow.
func (x aint) fsa(shift int, b byte) (z aint, ok bool) {
	z, ok = x.lsh(shift)
	if !ok {
		return aint{}, false
	}
	z, ok = z.add(aint(uint128.From64(uint64(b))))
	if !ok {
		return aint{}, false
	}
	return z, true
}

// wide promotes x to a wint.
func (x aint) wide() *wint {
	return &wint{x.Lo, x.Hi, 0, 0}
}

// wint (Wide INTeger) is a wrapper around uint256.Int.
// It holds products of two aint values, so it never overflows during
// a single multiplication of atomics.
type wint uint256.Int

func (z *wint) int() *uint256.Int {
	return (*uint256.Int)(z)
}

// mul calculates z = x * y and checks overflow.
func (z *wint) mul(x, y *wint) (ok bool) {
	_, overflow := z.int().MulOverflow(x.int(), y.int())
	return !overflow
}

// quoRem calculates z = ⌊x / y⌋, r = x - y * z.
func (z *wint) quoRem(x, y, r *wint) (ok bool) {
	if y.int().IsZero() {
		return false
	}
	z.int().DivMod(x.int(), y.int(), r.int())
	return true
}

// sqrt calculates z = ⌊√x⌋.
func (z *wint) sqrt(x *wint) {
	z.int().Sqrt(x.int())
}

// aint narrows z to 128 bits and checks overflow.
func (z *wint) aint() (x aint, ok bool) {
	if z[2] != 0 || z[3] != 0 {
		return aint{}, false
	}
	return aint(uint128.New(z[0], z[1])), true
}

// mulQuoRem calculates q = ⌊x * y / d⌋ and r = x * y - q * d using
// a wide intermediate, so that the product itself never overflows.
// The result is narrowed back to 128 bits.
func mulQuoRem(x, y, d aint) (q, r aint, err error) {
	if d.isZero() {
		return aint{}, aint{}, ErrDivisionByZero
	}
	var w, z, m wint
	if !w.mul(x.wide(), y.wide()) {
		return aint{}, aint{}, ErrOverflow
	}
	z.quoRem(&w, d.wide(), &m)
	q, ok := z.aint()
	if !ok {
		return aint{}, aint{}, ErrOverflow
	}
	r, _ = m.aint() // r < d, so it always fits
	return q, r, nil
}

// mulQuo calculates ⌊x * y / d⌋, see mulQuoRem.
func mulQuo(x, y, d aint) (aint, error) {
	q, _, err := mulQuoRem(x, y, d)
	return q, err
}

// isqrt calculates ⌊√(x * y)⌋.
// The result always fits into 128 bits.
func isqrt(x, y aint) aint {
	var w, r wint
	w.mul(x.wide(), y.wide())
	r.sqrt(&w)
	z, _ := r.aint()
	return z
}
