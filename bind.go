package rove

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Bind materializes the request body, decodes it as JSON into dst, and
// validates dst with the app's validator. Struct fields opt in to
// validation through the usual `validate` tags.
//
// A malformed body or a failed validation yields an *HTTPError with
// status 400, so a handler can simply return the error and let the
// pipeline answer the client:
//
//	var in CreateUserInput
//	if err := app.Bind(req, &in); err != nil {
//	    return err
//	}
func (a *App) Bind(req *Request, dst any) error {
	raw, err := req.Body()
	if err != nil {
		return err
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return NewHTTPError(http.StatusBadRequest, "malformed JSON body")
	}

	if err := a.validate.Struct(dst); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			// dst is not a struct; nothing to validate.
			return nil
		}
		return NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
