package tokenuri

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestTokenURI_Defaults(t *testing.T) {
	b := NewBuilder("", 0)

	uri := b.TokenURI(uint256.NewInt(42))
	require.Equal(t, "https://api.example.com/token/42/metadata?hex=0x0000002a", uri)

	uri = b.TokenURI(uint256.NewInt(0))
	require.Equal(t, "https://api.example.com/token/0/metadata?hex=0x00000000", uri)
}

func TestTokenURI_CustomTemplateAndWidth(t *testing.T) {
	b := NewBuilder("ipfs://meta/%s?h=%s", 4)

	uri := b.TokenURI(uint256.NewInt(255))
	require.Equal(t, "ipfs://meta/255?h=0x00ff", uri)
}

func TestTokenURI_WideIDIsNotTruncated(t *testing.T) {
	b := NewBuilder("", 4)

	uri := b.TokenURI(uint256.NewInt(0xdeadbeef))
	require.Contains(t, uri, "0xdeadbeef")
}

func TestMultiFormat(t *testing.T) {
	display := MultiFormat(uint256.NewInt(255))
	require.Contains(t, display, "Decimal: 255")
	require.Contains(t, display, "Hex: 0xff")
	require.Contains(t, display, "Hex (8 chars): 0x000000ff")
	require.Contains(t, display, "Hex (16 chars): 0x00000000000000ff")
}

func TestFromHash(t *testing.T) {
	h := common.HexToHash("0xff")
	v := FromHash(h)
	require.Equal(t, uint64(255), v.Uint64())

	// High-order hash byte lands in the most significant limb.
	h = common.HexToHash("0x" + "ff" + strings.Repeat("0", 62))
	v = FromHash(h)
	require.Equal(t, "0x"+"ff"+strings.Repeat("0", 62), v.Hex())
}

func TestFromAddress(t *testing.T) {
	a := common.HexToAddress("0x000000000000000000000000000000000000dead")
	v := FromAddress(a)
	require.Equal(t, uint64(0xdead), v.Uint64())
}
