package echoapi

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/edtech/core"
	"github.com/trezcool/edtech/core/assignment"
	logsvc "github.com/trezcool/edtech/services/logger"
)

func Test_newAppHTTPErrorHandler(t *testing.T) {
	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), &core.Config{Env: "TEST"})
	logger.Enable(false)

	tests := []struct {
		name     string
		err      error
		debug    bool
		wantCode int
		wantBody string
	}{
		{
			name:     "http error",
			err:      errors.Wrap(errInvalidCredentials, "logging in"),
			wantCode: http.StatusUnauthorized,
			wantBody: `{"detail":"Invalid credentials"}`,
		},
		{
			name: "validation error with fields",
			err: errors.Wrap(core.NewValidationError(
				errors.New("invalid"),
				core.FieldError{Field: "title", Error: "expected string"},
			), "binding"),
			wantCode: http.StatusUnprocessableEntity,
			wantBody: `{"detail":{"title":"expected string"}}`,
		},
		{
			name:     "validation error without fields",
			err:      core.NewValidationError(errors.New("bad request")),
			wantCode: http.StatusUnprocessableEntity,
			wantBody: `{"detail":"bad request"}`,
		},
		{
			name:     "unexpected error",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"detail":"Internal Server Error"}`,
		},
		{
			name:     "unexpected error in debug",
			err:      errors.Wrap(errors.New("boom"), "doing stuff"),
			debug:    true,
			wantCode: http.StatusInternalServerError,
			wantBody: `{"detail":"doing stuff: boom"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Debug = tt.debug
			handler := newAppHTTPErrorHandler(logger, nil)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			handler(tt.err, e.NewContext(req, rec))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func Test_bindError(t *testing.T) {
	bind := func(contentType, body string) error {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/assignments", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, contentType)
		var data assignment.NewAssignment
		err := e.NewContext(req, httptest.NewRecorder()).Bind(&data)
		require.Error(t, err)
		return bindError(err)
	}

	tests := []struct {
		name        string
		contentType string
		body        string
		wantFields  []core.FieldError
	}{
		{
			name:        "syntax error",
			contentType: echo.MIMEApplicationJSON,
			body:        `{"title": "Essay",`,
			wantFields:  []core.FieldError{{Field: "body", Error: "invalid JSON"}},
		},
		{
			name:        "wrong type",
			contentType: echo.MIMEApplicationJSON,
			body:        `{"title":5,"description":"d","due_date":"x","teacher_id":"t"}`,
			wantFields:  []core.FieldError{{Field: "title", Error: "expected string"}},
		},
		{
			name:        "not an object",
			contentType: echo.MIMEApplicationJSON,
			body:        `[]`,
			wantFields:  []core.FieldError{{Field: "body", Error: "invalid JSON"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bind(tt.contentType, tt.body)
			var vErr *core.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantFields, vErr.Fields)
		})
	}

	t.Run("unsupported media type passes through", func(t *testing.T) {
		err := bind(echo.MIMETextPlain, "hello")
		herr, ok := errors.Cause(err).(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnsupportedMediaType, herr.Code)
	})
}
