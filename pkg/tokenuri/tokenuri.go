// Package tokenuri composes the u256str conversions into token-URI style
// strings, the way NFT metadata endpoints reference token ids by decimal
// and fixed-width hex form.
package tokenuri

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/hexforge/u256strings/pkg/u256str"
)

// DefaultTemplate expects the decimal id first and the fixed-width hex id
// second.
const DefaultTemplate = "https://api.example.com/token/%s/metadata?hex=%s"

// DefaultHexIDDigits is the minimum hex width used for the id when none is
// configured.
const DefaultHexIDDigits = 8

// Builder renders token URIs from a URI template and a hex id width.
type Builder struct {
	Template    string
	HexIDDigits int
}

// NewBuilder returns a Builder with the given template and hex id width.
// Empty template and non-positive width fall back to the defaults.
func NewBuilder(template string, hexIDDigits int) Builder {
	if template == "" {
		template = DefaultTemplate
	}
	if hexIDDigits <= 0 {
		hexIDDigits = DefaultHexIDDigits
	}
	return Builder{Template: template, HexIDDigits: hexIDDigits}
}

// TokenURI renders the URI for a token id, substituting the decimal id and
// the fixed-width hex id into the template.
func (b Builder) TokenURI(id *uint256.Int) string {
	return fmt.Sprintf(b.Template, u256str.ToString(id), u256str.ToHexStringFixed(id, b.HexIDDigits))
}

// MultiFormat returns a multi-line display of a value in every supported
// notation.
func MultiFormat(value *uint256.Int) string {
	return fmt.Sprintf(
		"Value representations:\nDecimal: %s\nHex: %s\nHex (8 chars): %s\nHex (16 chars): %s",
		u256str.ToString(value),
		u256str.ToHexString(value),
		u256str.ToHexStringFixed(value, 8),
		u256str.ToHexStringFixed(value, 16),
	)
}

// FromHash interprets a 32-byte hash as a big-endian 256-bit value.
func FromHash(h common.Hash) *uint256.Int {
	return new(uint256.Int).SetBytes(h.Bytes())
}

// FromAddress interprets a 20-byte address as a big-endian 256-bit value.
func FromAddress(a common.Address) *uint256.Int {
	return new(uint256.Int).SetBytes(a.Bytes())
}
