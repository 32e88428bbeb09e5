package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// DecodeJSONRequest decodes the request body into dst and writes a 400
// response on failure. Callers should return immediately on error.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return err
	}
	return nil
}

// ValidateStruct runs validator tags on a decoded request struct and
// returns a readable error for the first failing field.
func ValidateStruct(dst interface{}) error {
	if err := validate.Struct(dst); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			fe := errs[0]
			return fmt.Errorf("field %s failed on the %s rule", fe.Field(), fe.Tag())
		}
		return err
	}
	return nil
}
