package handling

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"rosea_server/config"
	"rosea_server/lib"

	"github.com/MonkyMars/gecho"
)

// HandleError maps a service or validation error onto the response envelope.
// Handlers that want an Arabic user-facing message handle those cases before
// falling through to this.
func HandleError(w http.ResponseWriter, err error) {
	var ve *lib.ValidationError
	if errors.As(err, &ve) {
		gecho.BadRequest(w,
			gecho.WithMessage("error.validationFailed"),
			gecho.WithData(ve.Errors),
			gecho.Send(),
		)
		return
	}

	if isBodyError(err) {
		gecho.BadRequest(w, gecho.WithMessage("error.invalidRequestBody"), gecho.Send())
		return
	}

	switch {
	case errors.Is(err, lib.ErrNotFound):
		gecho.NotFound(w, gecho.Send())
	case errors.Is(err, lib.ErrConflict), errors.Is(err, lib.ErrDuplicateEmail):
		gecho.Conflict(w, gecho.Send())
	case errors.Is(err, lib.ErrInvalidCredentials),
		errors.Is(err, lib.ErrInvalidToken),
		errors.Is(err, lib.ErrExpiredToken):
		gecho.Unauthorized(w, gecho.Send())
	case errors.Is(err, lib.ErrMissingFields),
		errors.Is(err, lib.ErrEmptyCart),
		errors.Is(err, lib.ErrInvalidStatus):
		gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
	default:
		config.GetLogger().Error("An error occurred",
			gecho.Field("error", err),
			gecho.WithCallerSkip(3),
		)
		gecho.InternalServerError(w, gecho.Send())
	}
}

// isBodyError reports whether err came from decoding the request body.
// DisallowUnknownFields surfaces as a plain "json: unknown field" error, so
// the prefix check covers it.
func isBodyError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) ||
		errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		strings.HasPrefix(err.Error(), "json:")
}
