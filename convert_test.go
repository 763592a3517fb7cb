package fixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryConvert(t *testing.T) {
	t.Run("down", func(t *testing.T) {
		tests := []struct {
			d, want string
		}{
			{"0", "0.000000"},
			{"1.123456789", "1.123456"},
			{"1.999999999", "1.999999"},
			{"0.000000999", "0.000000"},
		}
		for _, tt := range tests {
			d := MustParse[P9](tt.d)
			got, err := TryConvert[P6](d)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String(), "TryConvert(%v)", d)
		}
		assert.Equal(t, MustParse[P6]("1.123456"), Convert[P6](MustParse[P9]("1.123456789")))
		assert.Equal(t, "340282366920938463463374607431768", Convert[p0](Max[P6]()).String())
	})

	t.Run("up", func(t *testing.T) {
		d := MustParse[P6]("1.5")
		got, err := TryConvert[P18](d)
		require.NoError(t, err)
		assert.Equal(t, "1.500000000000000000", got.String())
		assert.Equal(t, "1.50000000000000000000000000000000000000", Convert[p38](d).String())
	})

	t.Run("identity", func(t *testing.T) {
		d := Max[P9]()
		got, err := TryConvert[P9](d)
		require.NoError(t, err)
		assert.Equal(t, d, got)
	})

	t.Run("roundtrip", func(t *testing.T) {
		tests := []string{"0", "1", "1.5", "0.000001", "123456789.987654"}
		for _, s := range tests {
			d := MustParse[P6](s)
			assert.Equal(t, d, Convert[P6](Convert[P12](d)), "roundtrip(%v)", d)
			assert.Equal(t, d, Convert[P6](Convert[P18](d)), "roundtrip(%v)", d)
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := TryConvert[P18](Max[P6]())
		assert.ErrorIs(t, err, ErrOverflow)
		_, err = TryConvert[p38](MustParse[P6]("4"))
		assert.ErrorIs(t, err, ErrOverflow)
		assert.Panics(t, func() { Convert[P18](Max[P6]()) })
	})
}

func TestLegacy(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		d := MustParse[P6]("1.5")
		legacy, err := ToLegacy(d)
		require.NoError(t, err)
		assert.Equal(t, "1500000000000000000", legacy.Atomics().String())
		assert.Equal(t, legacy, MustToLegacy(d))

		back, err := FromLegacy[P6](legacy)
		require.NoError(t, err)
		assert.Equal(t, d, back)
	})

	t.Run("noop", func(t *testing.T) {
		d := Max[P18]()
		legacy, err := ToLegacy(d)
		require.NoError(t, err)
		assert.Equal(t, d.Atomics(), legacy.Atomics())
		back, err := FromLegacy[P18](d)
		require.NoError(t, err)
		assert.Equal(t, d, back)
	})

	t.Run("truncate", func(t *testing.T) {
		legacy := MustParse[P18]("1.123456789123456789")
		got, err := FromLegacy[P9](legacy)
		require.NoError(t, err)
		assert.Equal(t, "1.123456789", got.String())
	})

	t.Run("error", func(t *testing.T) {
		_, err := ToLegacy(Max[P6]())
		assert.ErrorIs(t, err, ErrOverflow)
		assert.Panics(t, func() { MustToLegacy(Max[P12]()) })
		_, err = FromLegacy[p38](Max[P18]())
		assert.ErrorIs(t, err, ErrOverflow)
	})
}
