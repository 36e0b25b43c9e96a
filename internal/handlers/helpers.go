package handlers

import (
	"net/http"

	"reel_lingo_backend/internal/model"
	"reel_lingo_backend/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// pathUUID parses a uuid path parameter, returning a 400 AppError on garbage.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_INPUT", "Malformed id in URL.", name, model.ErrInvalidInput)
	}
	return id, nil
}

// decodeAndValidate decodes the JSON body into dst and runs the shared
// validator over it.
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := webutil.DecodeJSONBody(r, dst); err != nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "The request body is not valid JSON.", "", model.ErrInvalidInput)
	}
	return webutil.ValidateStruct(dst)
}
