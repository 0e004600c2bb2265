package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hexforge/u256strings/pkg/errors"
	"github.com/hexforge/u256strings/pkg/testutils"
	"github.com/hexforge/u256strings/pkg/tokenuri"
)

func newTestServer(t *testing.T) (*Server, *testutils.TestLoggerSetup) {
	logSetup := testutils.NewTestLogger(t)
	srv := NewServer("127.0.0.1:0", tokenuri.NewBuilder("", 0), logSetup.Logger)
	return srv, logSetup
}

func TestFormatHandler_Decimal(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/format?value=255", nil)

	srv.formatHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp FormatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "255", resp.Decimal)
	require.Equal(t, "0xff", resp.Hex)
	require.Equal(t, "0x000000ff", resp.HexFixed)
}

func TestFormatHandler_HexInputAndExplicitWidth(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/format?value=0xff&minDigits=4", nil)

	srv.formatHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp FormatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "255", resp.Decimal)
	require.Equal(t, "0x00ff", resp.HexFixed)
}

func TestFormatHandler_ZeroWithZeroWidth(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/format?value=0&minDigits=0", nil)

	srv.formatHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp FormatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "0", resp.Decimal)
	require.Equal(t, "0x0", resp.Hex)
	require.Equal(t, "0x", resp.HexFixed)
}

func TestFormatHandler_BadValue(t *testing.T) {
	srv, logSetup := newTestServer(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/format?value=0xzz", nil)

	srv.formatHandler(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, errors.CodeInvalidHex, resp.Code)
	logSetup.AssertLogContains("Rejected request")
}

func TestFormatHandler_NegativeWidth(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/format?value=1&minDigits=-1", nil)

	srv.formatHandler(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTokenURIHandler(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/tokenuri?id=42", nil)

	srv.tokenURIHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp TokenURIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "42", resp.ID)
	require.Equal(t, "https://api.example.com/token/42/metadata?hex=0x0000002a", resp.URI)
}

func TestTokenURIHandler_BadID(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/tokenuri?id=", nil)

	srv.tokenURIHandler(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthHandler(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)

	srv.healthHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "ok", resp["status"])
}
