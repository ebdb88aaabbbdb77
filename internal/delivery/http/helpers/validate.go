package helpers

import (
	"encoding/json"
	"net/http"
)

// Validator is implemented by request DTOs. Validate returns one
// message per problem; nil means the body is acceptable.
type Validator interface {
	Validate() []string
}

// DecodeAndValidate decodes the request body into dest, rejecting
// unknown fields, then runs dest's Validate when it has one. A decode
// failure yields a single-message 400; validation failures yield a 400
// listing every problem in the error details. Returns false when the
// caller should stop handling the request.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return false
	}
	v, ok := dest.(Validator)
	if !ok {
		return true
	}
	problems := v.Validate()
	if len(problems) == 0 {
		return true
	}
	WriteValidationError(w, problems)
	return false
}
