package myhttp

import (
	"encoding/json"
	"net/http"

	"github.com/amazons/backend/lib/myerrors"
)

// ParseRequest decodes the JSON request body into target.
func ParseRequest(r *http.Request, target any) error {
	err := json.NewDecoder(r.Body).Decode(target)
	if err != nil {
		return myerrors.NewInvalidInputErrorf("error parsing request body: %s", err)
	}
	return nil
}
