package interop

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/cockroachdb/apd/v3"
	"github.com/govalues/fixed"
	shopspring "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyDec(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d, want string
		}{
			{"0", "0.000000000000000000"},
			{"1", "1.000000000000000000"},
			{"1.5", "1.500000000000000000"},
			{"123.000001", "123.000001000000000000"},
		}
		for _, tt := range tests {
			d := fixed.MustParse[fixed.P6](tt.d)
			got, err := ToLegacyDec(d)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())

			back, err := FromLegacyDec[fixed.P6](got)
			require.NoError(t, err)
			assert.Equal(t, d, back)
		}
	})

	t.Run("truncate", func(t *testing.T) {
		x := sdkmath.LegacyMustNewDecFromStr("1.123456789")
		got, err := FromLegacyDec[fixed.P6](x)
		require.NoError(t, err)
		assert.Equal(t, "1.123456", got.String())
	})

	t.Run("error", func(t *testing.T) {
		_, err := FromLegacyDec[fixed.P6](sdkmath.LegacyMustNewDecFromStr("-1"))
		require.ErrorIs(t, err, fixed.ErrOverflow)

		_, err = FromLegacyDec[fixed.P6](sdkmath.LegacyDec{})
		require.ErrorIs(t, err, fixed.ErrInvalidFormat)

		_, err = ToLegacyDec(fixed.Max[fixed.P6]())
		require.ErrorIs(t, err, fixed.ErrOverflow)
	})
}

func TestShopspring(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []string{
			"0",
			"1",
			"0.000000001",
			"340282366920938463463374607431.768211455",
		}
		for _, tt := range tests {
			d := fixed.MustParse[fixed.P9](tt)
			got := ToShopspring(d)
			assert.True(t, got.Equal(shopspring.RequireFromString(tt)), "ToShopspring(%v) = %v", d, got)

			back, err := FromShopspring[fixed.P9](got)
			require.NoError(t, err)
			assert.Equal(t, d, back)
		}
	})

	t.Run("rescale", func(t *testing.T) {
		tests := []struct {
			x, want string
		}{
			{"1e3", "1000.000000"},
			{"1.9999999", "1.999999"},
			{"0.0000001", "0.000000"},
			{"100.10", "100.100000"},
		}
		for _, tt := range tests {
			got, err := FromShopspring[fixed.P6](shopspring.RequireFromString(tt.x))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"-0.000001",
			"1e40",
			"340282366920938463463374607431768.211456",
		}
		for _, tt := range tests {
			_, err := FromShopspring[fixed.P6](shopspring.RequireFromString(tt))
			require.ErrorIs(t, err, fixed.ErrOverflow, "FromShopspring(%v)", tt)
		}
	})
}

func TestApd(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		d := fixed.MustParse[fixed.P12]("42.000000000001")
		got := ToApd(d)
		assert.Equal(t, int32(-12), got.Exponent)
		assert.Equal(t, "42.000000000001", got.String())

		back, err := FromApd[fixed.P12](got)
		require.NoError(t, err)
		assert.Equal(t, d, back)
	})

	t.Run("rescale", func(t *testing.T) {
		tests := []struct {
			x, want string
		}{
			{"12E2", "1200.000000"},
			{"0.1234567", "0.123456"},
			{"-0", "0.000000"},
			{"1E-100", "0.000000"},
		}
		for _, tt := range tests {
			x, _, err := apd.NewFromString(tt.x)
			require.NoError(t, err)
			got, err := FromApd[fixed.P6](x)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			x    string
			want error
		}{
			{"NaN", fixed.ErrInvalidFormat},
			{"Infinity", fixed.ErrInvalidFormat},
			{"-1", fixed.ErrOverflow},
			{"1E100", fixed.ErrOverflow},
		}
		for _, tt := range tests {
			x, _, err := apd.NewFromString(tt.x)
			require.NoError(t, err)
			_, err = FromApd[fixed.P6](x)
			require.ErrorIs(t, err, tt.want, "FromApd(%v)", tt.x)
		}

		_, err := FromApd[fixed.P6](nil)
		require.ErrorIs(t, err, fixed.ErrInvalidFormat)
	})
}
