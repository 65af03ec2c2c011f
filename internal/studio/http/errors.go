package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pixelgrove/studio/internal/studio/service"
	"github.com/pixelgrove/studio/pkg/httpx"
	"github.com/pixelgrove/studio/pkg/slogx"
)

// errorStatus maps service sentinels to HTTP status codes. Order matters only
// for readability; sentinels are disjoint.
var errorStatus = []struct {
	err  error
	code int
}{
	{service.ErrInvalidInput, http.StatusBadRequest},
	{service.ErrDuplicateEmail, http.StatusBadRequest},
	{service.ErrInvalidRole, http.StatusBadRequest},
	{service.ErrSelfRoleChange, http.StatusBadRequest},
	{service.ErrSelfDelete, http.StatusBadRequest},
	{service.ErrResetTokenInvalid, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrUserNotFound, http.StatusNotFound},
}

// writeServiceError translates a service error into the response envelope.
// Known sentinels surface their own message; anything else is a 500 with a
// generic body and the real error only in the log.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	for _, m := range errorStatus {
		if errors.Is(err, m.err) {
			httpx.WriteError(w, m.code, m.err.Error())
			return
		}
	}

	slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
	httpx.WriteError(w, http.StatusInternalServerError, "something went wrong, please try again later")
}
