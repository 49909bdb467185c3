package helpers

import (
	"encoding/json"
	"errors"
	"net/http"
)

// MaxBodySize caps JSON request bodies. Event, room and speaker payloads are a few KB.
const MaxBodySize int64 = 1 << 20

// Validator is implemented by request bodies that support validation.
// Validate returns a slice of error messages; nil or empty means valid.
type Validator interface {
	Validate() []string
}

// DecodeAndValidate decodes the request body into dest (with DisallowUnknownFields).
// A body that cannot be decoded is answered with 400. If dest implements Validator and
// reports problems, each one is written as an invalid_input entry with status 200.
// Bodies larger than MaxBodySize are answered with 413.
// Callers should return immediately when DecodeAndValidate returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, http.StatusRequestEntityTooLarge, ErrCodeBadRequest, "request body too large")
			return false
		}
		WriteError(w, http.StatusBadRequest, ErrCodeBadRequest, "malformed request body: "+err.Error())
		return false
	}
	if v, ok := dest.(Validator); ok {
		if errs := v.Validate(); len(errs) > 0 {
			WriteInvalidInput(w, errs)
			return false
		}
	}
	return true
}
