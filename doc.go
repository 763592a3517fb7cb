/*
Package fixed implements immutable non-negative fixed-point decimal numbers.
It is specifically designed for deterministic environments, such as smart
contracts and ledgers, where floating-point arithmetic is not allowed.

# Representation

[Decimal] is a struct with a single field, the atomic value: an unsigned
128-bit integer holding the decimal scaled by 10^D.
D is the number of digits after the decimal point and is fixed by the type
parameter of the decimal, one of the [Precision] markers:

	| Type        | Precision | D  |
	| ----------- | --------- | -- |
	| [Decimal6]  | [P6]      | 6  |
	| [Decimal9]  | [P9]      | 9  |
	| [Decimal12] | [P12]     | 12 |
	| [Decimal18] | [P18]     | 18 |

The numerical value of a decimal is calculated as:

  - Atomic / 10^D.

For example, a [Decimal6] with an atomic value of 1500000 represents 1.5.
Every value has exactly one representation, so decimals of the same type
can be compared with the == operator.
Decimals of different types cannot be mixed, and must be converted explicitly
with [Convert] or [TryConvert].
[Decimal18] has the same atomic representation as the ecosystem's legacy
18-digit decimal.

# Constraints

The range of a decimal is determined by its precision:

	| Type        | Minimum | Maximum                                   |
	| ----------- | ------- | ----------------------------------------- |
	| [Decimal6]  | 0       | 340282366920938463463374607431768.211455  |
	| [Decimal9]  | 0       | 340282366920938463463374607431.768211455  |
	| [Decimal12] | 0       | 340282366920938463463374607.431768211455  |
	| [Decimal18] | 0       | 340282366920938463463.374607431768211455  |

Negative numbers, [NaN] and [Infinity] are not supported.

# Conversions

The package provides methods for converting decimals:

  - from/to string:
    [Parse], [ParseTrunc], [Decimal.String], [Decimal.Compact], [Decimal.Format].
  - from/to integers:
    [NewFromUint64], [NewFromUint128], [Decimal.ToUintFloor], [Decimal.ToUintCeil].
  - from/to atomic values:
    [Raw], [Raw64], [NewFromAtomics], [Decimal.Atomics].
  - between precisions:
    [Convert], [TryConvert], [ToLegacy], [FromLegacy].
  - from ratios:
    [NewFromRatio], [Percent], [Permille], [Bps].

Subpackage interop converts decimals to and from the Cosmos SDK LegacyDec,
shopspring and apd decimals.

# Operations

Each arithmetic operation is carried out on atomic values.
Multiplication and division are performed in 256-bit arithmetic and the
result is then narrowed back to 128 bits, so an intermediate product of two
atomic values never overflows.
If the narrowed result does not fit into 128 bits, an overflow error is
returned.

Each operation comes in up to three flavours:

	| Flavour    | Example                 | On failure          |
	| ---------- | ----------------------- | ------------------- |
	| checked    | [Decimal.Add]           | returns an error    |
	| panicking  | [Decimal.MustAdd]       | panics              |
	| saturating | [Decimal.SaturatingAdd] | clamps to 0 or Max  |

# Rounding

Results that have more than D digits after the decimal point are truncated,
that is rounded towards zero.
This applies to [Decimal.Mul], [Decimal.Quo], [Decimal.Pow], [Decimal.Sqrt],
[ParseTrunc] and conversions to a lower precision.

In addition, the package provides several methods for explicit rounding:

  - rounding towards positive infinity:
    [Decimal.Ceil], [Decimal.ToUintCeil], [Decimal.MulUintCeil].
  - rounding towards zero:
    [Decimal.Floor], [Decimal.ToUintFloor], [Decimal.MulUint].

# Errors

Errors are returned in the following cases:

  - Invalid Format.
    [Parse] and the decoders return [ErrInvalidFormat] for malformed input.

  - Division by Zero.
    Unlike the standard library, [Decimal.Quo] and [Decimal.Rem]
    do not panic when dividing by 0.
    Instead, they return [ErrDivisionByZero].

  - Overflow.
    Unlike standard integers, there is no "wrap around" for decimals.
    For out-of-range values, including negative differences,
    arithmetic operations return [ErrOverflow].

  - Precision Mismatch.
    [Tagged] decimals and the binary decoder return [ErrPrecisionMismatch]
    if the operands have different precisions.

Errors are wrapped with context, use [errors.Is] to check them.

[Infinity]: https://en.wikipedia.org/wiki/Infinity#Computing
[NaN]: https://en.wikipedia.org/wiki/NaN
*/
package fixed
