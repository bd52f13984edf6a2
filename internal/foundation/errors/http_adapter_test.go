package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPErrorAdapterStatusCodes(t *testing.T) {
	a := NewHTTPErrorAdapter(nil)

	require.Equal(t, http.StatusOK, a.StatusCodeFor(nil))
	require.Equal(t, http.StatusNotFound, a.StatusCodeFor(NotFoundError("missing").Build()))
	require.Equal(t, http.StatusBadRequest, a.StatusCodeFor(ValidationError("bad").Build()))
	require.Equal(t, http.StatusServiceUnavailable, a.StatusCodeFor(GitError("no clone").Build()))
	require.Equal(t, http.StatusInternalServerError, a.StatusCodeFor(InternalError("bug").Build()))
}

func TestHTTPErrorAdapterWriteErrorResponse(t *testing.T) {
	a := NewHTTPErrorAdapter(nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/docs?slug=/en/6/nope/", nil)

	a.WriteErrorResponse(rec, req, NotFoundError("document not found").WithContext("slug", "/en/6/nope/").Build())

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body HTTPErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "document not found", body.Error)
	require.Equal(t, "not_found", body.Code)
	require.Equal(t, "/en/6/nope/", body.Details["slug"])
}
