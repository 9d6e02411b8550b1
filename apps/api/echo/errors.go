package echoapi

import (
	"encoding/json"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/edtech/core"
)

var (
	errEmailExists        = echo.NewHTTPError(http.StatusBadRequest, "Email already exists")
	errInvalidCredentials = echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
)

// ErrorResponse is the body of every error response.
// Detail is either a message or a {field: message} map.
type ErrorResponse struct {
	Detail interface{} `json:"detail"`
}

// bindError turns a failed ctx.Bind into a *core.ValidationError, so that unreadable bodies
// share the 422 class with missing fields. Other bind failures (eg. unsupported media type) pass through.
func bindError(err error) error {
	herr, ok := errors.Cause(err).(*echo.HTTPError)
	if !ok || herr.Code != http.StatusBadRequest {
		return err
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(herr, &typeErr) && typeErr.Field != "" {
		return core.NewValidationError(herr, core.FieldError{
			Field: typeErr.Field,
			Error: "expected " + typeErr.Type.String(),
		})
	}
	return core.NewValidationError(herr, core.FieldError{Field: "body", Error: "invalid JSON"})
}

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
func newAppHTTPErrorHandler(logger core.Logger, translator ut.Translator) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = origErr.Message
		case validator.ValidationErrors:
			fldErrs := make(map[string]string, len(origErr))
			for _, vErr := range origErr {
				fldErrs[vErr.Field()] = vErr.Translate(translator)
			}
			code = http.StatusUnprocessableEntity
			message = fldErrs
		case *core.ValidationError:
			if origErr.Fields != nil {
				fldErrs := make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					fldErrs[fErr.Field] = fErr.Error
				}
				message = fldErrs
			} else {
				message = origErr.Error()
			}
			code = http.StatusUnprocessableEntity
		default: // any other error is a server error
			code = http.StatusInternalServerError
			msg := http.StatusText(http.StatusInternalServerError)
			message = msg
			logger.Error(msg, errors.Wrap(err, msg))

			if ctx.Echo().Debug {
				message = err.Error()
			}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, ErrorResponse{Detail: message})
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
