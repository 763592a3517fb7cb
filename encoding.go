package fixed

import (
	"bytes"
	"database/sql/driver"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
	"lukechampine.com/uint128"
)

// binaryLen is the length of the binary form: one byte of places followed
// by the 16-byte big-endian atomic value.
const binaryLen = 1 + 16

var nullLiteral = []byte("null")

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// The text is parsed with [ParseTrunc], so a value written with more digits
// after the decimal point is truncated to D digits.
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal[P]) UnmarshalText(text []byte) error {
	var err error
	*d, err = ParseTrunc[P](string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal[P]) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// A decimal is encoded as a JSON string, since its value may not fit into
// a JSON number without loss of precision.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (d Decimal[P]) MarshalJSON() ([]byte, error) {
	s := d.String()
	b := make([]byte, 0, len(s)+2)
	b = append(b, '"')
	b = append(b, s...)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// It accepts a JSON string in the format of [ParseTrunc].
// A JSON null leaves the decimal unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (d *Decimal[P]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, nullLiteral) {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("unmarshaling %s: expected a JSON string: %w", data, ErrInvalidFormat)
	}
	return d.UnmarshalText(data[1 : len(data)-1])
}

func appendBinary(b []byte, x aint, places int) []byte {
	var buf [binaryLen]byte
	buf[0] = byte(places)
	x.u128().PutBytesBE(buf[1:])
	return append(b, buf[:]...)
}

func parseBinary(data []byte) (aint, int, error) {
	if len(data) != binaryLen {
		return aint{}, 0, fmt.Errorf("length %v, want %v: %w", len(data), binaryLen, ErrInvalidFormat)
	}
	places := int(data[0])
	if places > MaxPlaces {
		return aint{}, 0, fmt.Errorf("%v fractional digits: %w", places, errPlacesRange)
	}
	return aint(uint128.FromBytesBE(data[1:])), places, nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// The result is 17 bytes long: the number of digits after the decimal point
// followed by the atomic value in big-endian order.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (d Decimal[P]) MarshalBinary() ([]byte, error) {
	return appendBinary(make([]byte, 0, binaryLen), d.atomic, placesOf[P]()), nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// Unlike the text form, the binary form is not converted between
// precisions: UnmarshalBinary returns an error wrapping
// [ErrPrecisionMismatch] if the data was written with a different D.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (d *Decimal[P]) UnmarshalBinary(data []byte) error {
	a, places, err := parseBinary(data)
	if err != nil {
		return fmt.Errorf("unmarshaling %x: %w", data, err)
	}
	if places != placesOf[P]() {
		return fmt.Errorf("unmarshaling %v digit(s) into %v digit(s): %w", places, placesOf[P](), ErrPrecisionMismatch)
	}
	d.atomic = a
	return nil
}

// Scan implements the [sql.Scanner] interface.
// Strings and byte slices are parsed with [ParseTrunc],
// non-negative int64 values are converted with [NewFromUint64].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal[P]) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*d, err = ParseTrunc[P](value)
	case []byte:
		*d, err = ParseTrunc[P](string(value))
	case int64:
		if value < 0 {
			return fmt.Errorf("converting %v: %w", value, ErrOverflow)
		}
		*d, err = NewFromUint64[P](uint64(value))
	default:
		err = fmt.Errorf("converting from %T to %T: %w", value, d, ErrInvalidFormat)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// The decimal is stored as its canonical string.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal[P]) Value() (driver.Value, error) {
	return d.String(), nil
}

// NullDecimal represents a decimal that can be null.
// Its zero value is null.
// NullDecimal is safe for concurrent use by multiple goroutines.
type NullDecimal[P Precision] struct {
	Decimal Decimal[P]
	Valid   bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Decimal.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullDecimal[P]) Scan(value any) error {
	if value == nil {
		n.Decimal = Decimal[P]{}
		n.Valid = false
		return nil
	}
	err := n.Decimal.Scan(value)
	if err != nil {
		n.Decimal = Decimal[P]{}
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
// See also method [Decimal.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullDecimal[P]) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Decimal.Value()
}

// EncodeMsgpack implements the [msgpack.CustomEncoder] interface.
// A decimal is encoded as a msgpack str holding its canonical string.
//
// [msgpack.CustomEncoder]: https://pkg.go.dev/github.com/vmihailenco/msgpack/v5#CustomEncoder
func (d Decimal[P]) EncodeMsgpack(e *msgpack.Encoder) error {
	return e.EncodeString(d.String())
}

// DecodeMsgpack implements the [msgpack.CustomDecoder] interface.
// The string is parsed with [ParseTrunc].
//
// [msgpack.CustomDecoder]: https://pkg.go.dev/github.com/vmihailenco/msgpack/v5#CustomDecoder
func (d *Decimal[P]) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return fmt.Errorf("decoding decimal: %w", err)
	}
	*d, err = ParseTrunc[P](s)
	return err
}

// MarshalYAML implements the [yaml.Marshaler] interface.
// A decimal is encoded as a string scalar, so YAML never reads it back
// as a float.
//
// [yaml.Marshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Marshaler
func (d Decimal[P]) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
// Both quoted and plain scalars are accepted and parsed with [ParseTrunc].
//
// [yaml.Unmarshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Unmarshaler
func (d *Decimal[P]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %v: decoding decimal from a non-scalar node: %w", value.Line, ErrInvalidFormat)
	}
	var err error
	*d, err = ParseTrunc[P](value.Value)
	return err
}
