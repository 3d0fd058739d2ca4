package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipebox/recipe-service/internal/core/domain"
)

func runErrorHandler(t *testing.T, log zerolog.Logger, accept string, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", nil)
	if accept != "" {
		req.Header.Set(echo.HeaderAccept, accept)
	}
	rec := httptest.NewRecorder()
	NewHTTPErrorHandler(log)(err, e.NewContext(req, rec))
	return rec
}

func TestErrorHandler_DomainStatusCodes(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrDuplicateEmail, http.StatusConflict},
		{domain.ErrPasswordMismatch, http.StatusUnprocessableEntity},
		{domain.ErrUnknownUser, http.StatusNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrPasswordReuse, http.StatusUnprocessableEntity},
		{domain.ErrRecipeNotFound, http.StatusNotFound},
		{domain.ErrForbidden, http.StatusForbidden},
		{fmt.Errorf("recipe update: %w", domain.ErrForbidden), http.StatusForbidden},
		{echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest},
	}

	for _, tc := range cases {
		rec := runErrorHandler(t, zerolog.Nop(), "", tc.err)
		assert.Equal(t, tc.code, rec.Code, tc.err.Error())
	}
}

func TestErrorHandler_PlainTextByDefault(t *testing.T) {
	rec := runErrorHandler(t, zerolog.Nop(), "text/html", domain.ErrDuplicateEmail)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, domain.ErrDuplicateEmail.Error(), rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextPlain)
}

func TestErrorHandler_JSONWhenAccepted(t *testing.T) {
	rec := runErrorHandler(t, zerolog.Nop(), echo.MIMEApplicationJSON, domain.ErrPasswordReuse)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domain.ErrPasswordReuse.Error(), body.Error)
}

func TestErrorHandler_InternalFailureIsGenericAndLogged(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	rec := runErrorHandler(t, log, echo.MIMEApplicationJSON, errors.New("mongo: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "mongo")
	assert.Contains(t, buf.String(), "connection refused")
	assert.Contains(t, buf.String(), "unhandled error")
}

func TestErrorHandler_CommittedResponseUntouched(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, c.Redirect(http.StatusFound, "/users/u1"))

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrForbidden, c)

	assert.Equal(t, http.StatusFound, rec.Code)
}
