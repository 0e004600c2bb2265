package u256str

import (
	"math/big"
	"strings"

	"github.com/holiman/uint256"

	"github.com/hexforge/u256strings/pkg/errors"
)

// ParseDecimal parses a base-10 string into a 256-bit value.
func ParseDecimal(s string) (*uint256.Int, error) {
	if s == "" {
		return nil, errors.NewInvalidDecimal("u256str", "ParseDecimal", s, nil)
	}
	i, ok := new(big.Int).SetString(s, 10)
	if !ok || i.Sign() < 0 {
		return nil, errors.NewInvalidDecimal("u256str", "ParseDecimal", s, nil)
	}
	return fromBig(i, "ParseDecimal", s)
}

// ParseHex parses a base-16 string, with or without a "0x" prefix, into a
// 256-bit value.
func ParseHex(s string) (*uint256.Int, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if digits == "" {
		return nil, errors.NewInvalidHex("u256str", "ParseHex", s, nil)
	}
	i, ok := new(big.Int).SetString(digits, 16)
	if !ok || i.Sign() < 0 {
		return nil, errors.NewInvalidHex("u256str", "ParseHex", s, nil)
	}
	return fromBig(i, "ParseHex", s)
}

// Parse parses a "0x"-prefixed string as hexadecimal and anything else as
// decimal.
func Parse(s string) (*uint256.Int, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return ParseHex(s)
	}
	return ParseDecimal(s)
}

func fromBig(i *big.Int, operation, input string) (*uint256.Int, error) {
	u, overflow := uint256.FromBig(i)
	if overflow {
		return nil, errors.NewValueOverflow("u256str", operation, input, nil)
	}
	return u, nil
}
