package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusConflict, StatusFor(ErrImportHasConflicts))
	assert.Equal(t, http.StatusNotFound, StatusFor(ErrSaleNotFound))
	assert.Equal(t, http.StatusForbidden, StatusFor(ErrInsufficientPrivilege))
	assert.Equal(t, http.StatusInternalServerError, StatusFor("XYZ_999"))
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrAffiliateValidation, "CPF invalido.", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, APIError{Code: ErrAffiliateValidation, Message: "CPF invalido."}, body)
}
