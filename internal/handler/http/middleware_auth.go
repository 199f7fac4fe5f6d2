package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/internal/utils"
	"github.com/MKhiriev/go-library-sync/internal/validators"
	"github.com/MKhiriev/go-library-sync/models"
	"github.com/goccy/go-json"
)

// maxRequestBodySize bounds datastore request bodies.
const maxRequestBodySize = 8 << 20

// auth authenticates datastore commands by the authKey field of the JSON
// body.
//
// The body is read once, the session key is verified with
// [service.AuthService.ParseSessionKey], and the owner of the key is stored
// in the request context under [utils.OwnerIDCtxKey]. The body is then
// restored, so the handler can decode the full command.
//
// A body over maxRequestBodySize is answered with 413. A missing or rejected
// key is answered with 401 and the
// "session does not exist" error envelope.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
		if err != nil {
			log.Err(err).Msg("error reading request body")
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				h.writeError(w, r, ErrBodyTooLarge)
				return
			}
			h.writeError(w, r, ErrReadingBody)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		var session models.Session
		if err = json.Unmarshal(body, &session); err != nil {
			log.Err(err).Msg("error decoding session from request body")
			h.writeError(w, r, ErrDecodingBody)
			return
		}
		if session.AuthKey == "" {
			log.Err(validators.ErrEmptyAuthKey).Send()
			h.writeError(w, r, validators.ErrEmptyAuthKey)
			return
		}

		token, err := h.services.AuthService.ParseSessionKey(r.Context(), session.AuthKey)
		if err != nil {
			log.Err(err).Msg("session key rejected")
			h.writeError(w, r, err)
			return
		}

		r = r.WithContext(utils.WithOwnerID(r.Context(), token.OwnerID))
		recordOwner(w, r)

		next.ServeHTTP(w, r)
	})
}
