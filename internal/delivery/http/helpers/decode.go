package helpers

import (
	"encoding/json"
	"net/http"
)

// DecodeJSON decodes the request body into dest with DisallowUnknownFields.
// On failure it writes a 400 error with the given message and returns false;
// callers should return immediately when it does.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dest any, message string) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, message, err.Error())
		return false
	}
	return true
}
