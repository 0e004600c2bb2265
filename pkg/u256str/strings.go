// Package u256str renders 256-bit unsigned integers as decimal and
// hexadecimal text with the exact output contract of OpenZeppelin's
// Strings.sol, so off-chain tooling reproduces contract-layer strings
// byte for byte.
package u256str

import (
	"github.com/holiman/uint256"
)

var (
	ten     = uint256.NewInt(10)
	sixteen = uint256.NewInt(16)
)

const hexDigits = "0123456789abcdef"

// ToString converts a 256-bit value to its decimal string representation.
// Zero converts to "0"; every other value converts to its digits with no
// leading zeros. The input is never mutated.
func ToString(value *uint256.Int) string {
	if value.IsZero() {
		return "0"
	}

	v := new(uint256.Int).Set(value)
	rem := new(uint256.Int)
	// 2^256-1 has 78 decimal digits.
	buf := make([]byte, 0, 78)

	for !v.IsZero() {
		v.DivMod(v, ten, rem)
		buf = append(buf, '0'+byte(rem.Uint64()))
	}

	reverse(buf)
	return string(buf)
}

// ToHexString converts a 256-bit value to its minimal hexadecimal string
// representation with a "0x" prefix and lowercase letters. Zero converts
// to "0x0"; no other value carries leading zero digits.
func ToHexString(value *uint256.Int) string {
	if value.IsZero() {
		return "0x0"
	}
	return "0x" + string(hexBytes(value))
}

// ToHexStringFixed converts a 256-bit value to a hexadecimal string with a
// "0x" prefix and at least minDigits hex digits. Shorter values are
// left-padded with zeros; longer values are emitted in full, never
// truncated. A zero value yields "0x" followed by exactly minDigits zeros,
// so minDigits of 0 yields "0x" alone. Negative widths behave as zero.
func ToHexStringFixed(value *uint256.Int, minDigits int) string {
	if minDigits < 0 {
		minDigits = 0
	}

	if value.IsZero() {
		out := make([]byte, 2+minDigits)
		out[0], out[1] = '0', 'x'
		for i := 2; i < len(out); i++ {
			out[i] = '0'
		}
		return string(out)
	}

	digits := hexBytes(value)
	if len(digits) >= minDigits {
		return "0x" + string(digits)
	}

	out := make([]byte, 2+minDigits)
	out[0], out[1] = '0', 'x'
	pad := minDigits - len(digits)
	for i := 0; i < pad; i++ {
		out[2+i] = '0'
	}
	copy(out[2+pad:], digits)
	return string(out)
}

// hexBytes extracts the minimal hex digits of a non-zero value,
// most-significant digit first. Digits come out of the div/mod loop
// least-significant-first and are reversed before returning.
func hexBytes(value *uint256.Int) []byte {
	v := new(uint256.Int).Set(value)
	rem := new(uint256.Int)
	buf := make([]byte, 0, 64)

	for !v.IsZero() {
		v.DivMod(v, sixteen, rem)
		buf = append(buf, hexDigits[rem.Uint64()])
	}

	reverse(buf)
	return buf
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
