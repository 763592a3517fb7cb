package fixed

import (
	"math/big"
	"testing"

	"lukechampine.com/uint128"
)

func TestPow10(t *testing.T) {
	want := big.NewInt(1)
	ten := big.NewInt(10)
	for i, p := range pow10 {
		if p.u128().Big().Cmp(want) != 0 {
			t.Errorf("pow10[%v] = %v, want %v", i, p.u128(), want)
		}
		want.Mul(want, ten)
	}
	if want.Cmp(new(big.Int).Lsh(big.NewInt(1), 128)) <= 0 {
		t.Errorf("10^%v fits into 128 bits, MaxPlaces is too small", len(pow10))
	}
}

func TestAint_Add(t *testing.T) {
	tests := []struct {
		x, y   aint
		want   aint
		wantOk bool
	}{
		{aint{}, aint{}, aint{}, true},
		{oneAint, oneAint, aint(uint128.From64(2)), true},
		{aint(uint128.New(^uint64(0), 0)), oneAint, aint(uint128.New(0, 1)), true},
		{maxAint, aint{}, maxAint, true},
		{maxAint, oneAint, aint{}, false},
		{maxAint, maxAint, aint{}, false},
	}
	for _, tt := range tests {
		got, ok := tt.x.add(tt.y)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("%v.add(%v) = [%v %v], want [%v %v]", tt.x.u128(), tt.y.u128(), got.u128(), ok, tt.want.u128(), tt.wantOk)
		}
	}
}

func TestAint_Sub(t *testing.T) {
	tests := []struct {
		x, y     aint
		want     aint
		wantOk   bool
		wantDist aint
	}{
		{aint{}, aint{}, aint{}, true, aint{}},
		{oneAint, aint{}, oneAint, true, oneAint},
		{aint{}, oneAint, aint{}, false, oneAint},
		{maxAint, maxAint, aint{}, true, aint{}},
	}
	for _, tt := range tests {
		got, ok := tt.x.sub(tt.y)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("%v.sub(%v) = [%v %v], want [%v %v]", tt.x.u128(), tt.y.u128(), got.u128(), ok, tt.want.u128(), tt.wantOk)
		}
		if dist := tt.x.dist(tt.y); dist != tt.wantDist {
			t.Errorf("%v.dist(%v) = %v, want %v", tt.x.u128(), tt.y.u128(), dist.u128(), tt.wantDist.u128())
		}
	}
}

func TestAint_Shift(t *testing.T) {
	tests := []struct {
		x      uint64
		shift  int
		lsh    string
		lshOk  bool
		rshDwn string
	}{
		{0, 0, "0", true, "0"},
		{0, 100, "0", true, "0"},
		{1, 0, "1", true, "1"},
		{1, 38, "100000000000000000000000000000000000000", true, "0"},
		{4, 38, "0", false, "0"},
		{1, 39, "0", false, "0"},
		{123456, 3, "123456000", true, "123"},
		{999, 2, "99900", true, "9"},
	}
	for _, tt := range tests {
		x := aint(uint128.From64(tt.x))
		got, ok := x.lsh(tt.shift)
		if got.u128().String() != tt.lsh || ok != tt.lshOk {
			t.Errorf("%v.lsh(%v) = [%v %v], want [%v %v]", tt.x, tt.shift, got.u128(), ok, tt.lsh, tt.lshOk)
		}
		if got := x.rshDown(tt.shift); got.u128().String() != tt.rshDwn {
			t.Errorf("%v.rshDown(%v) = %v, want %v", tt.x, tt.shift, got.u128(), tt.rshDwn)
		}
	}
}

func TestMulQuoRem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x, y, d aint
			q, r    string
		}{
			{oneAint, oneAint, oneAint, "1", "0"},
			{aint(uint128.From64(7)), aint(uint128.From64(3)), aint(uint128.From64(4)), "5", "1"},
			{maxAint, maxAint, maxAint, maxAtomic, "0"},
			{maxAint, pow10[18], pow10[18], maxAtomic, "0"},
			{maxAint, aint(uint128.From64(2)), aint(uint128.From64(3)), "226854911280625642308916404954512140970", "0"},
		}
		for _, tt := range tests {
			q, r, err := mulQuoRem(tt.x, tt.y, tt.d)
			if err != nil {
				t.Errorf("mulQuoRem(%v, %v, %v) failed: %v", tt.x.u128(), tt.y.u128(), tt.d.u128(), err)
				continue
			}
			if q.u128().String() != tt.q || r.u128().String() != tt.r {
				t.Errorf("mulQuoRem(%v, %v, %v) = [%v %v], want [%v %v]", tt.x.u128(), tt.y.u128(), tt.d.u128(), q.u128(), r.u128(), tt.q, tt.r)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			x, y, d aint
			want    error
		}{
			{oneAint, oneAint, aint{}, ErrDivisionByZero},
			{maxAint, aint(uint128.From64(2)), oneAint, ErrOverflow},
			{maxAint, maxAint, aint(uint128.From64(2)), ErrOverflow},
		}
		for _, tt := range tests {
			_, _, err := mulQuoRem(tt.x, tt.y, tt.d)
			if err != tt.want {
				t.Errorf("mulQuoRem(%v, %v, %v) error = %v, want %v", tt.x.u128(), tt.y.u128(), tt.d.u128(), err, tt.want)
			}
		}
	})
}

func TestIsqrt(t *testing.T) {
	tests := []struct {
		x, y aint
		want string
	}{
		{aint{}, pow10[6], "0"},
		{oneAint, oneAint, "1"},
		{aint(uint128.From64(15)), oneAint, "3"},
		{maxAint, oneAint, "18446744073709551615"},
		{maxAint, maxAint, maxAtomic},
	}
	for _, tt := range tests {
		if got := isqrt(tt.x, tt.y); got.u128().String() != tt.want {
			t.Errorf("isqrt(%v, %v) = %v, want %v", tt.x.u128(), tt.y.u128(), got.u128(), tt.want)
		}
	}
}
