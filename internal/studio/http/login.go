package http

import (
	"log/slog"
	"net/http"

	"github.com/pixelgrove/studio/internal/studio/service"
	"github.com/pixelgrove/studio/pkg/httpx"
	"github.com/pixelgrove/studio/pkg/slogx"
)

// LoginHandler handles credential login.
type LoginHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

// ServeHTTP handles POST /api/auth/login
//
//	@Summary		Log in
//	@Description	Verifies an email/password pair and returns a signed session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Login request"
//	@Success		200		{object}	httpx.Envelope	"success, token, data.user"
//	@Failure		400		{object}	httpx.Envelope	"success=false, message"
//	@Failure		401		{object}	httpx.Envelope	"success=false, message"
//	@Failure		500		{object}	httpx.Envelope	"success=false, message"
//	@Router			/api/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.UserService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, err := h.TokenService.Issue(user)
	if err != nil {
		log.Error("failed to issue session token", slog.Any("error", err))
		writeServiceError(w, r, err)
		return
	}

	log.Info("user logged in", slog.String("user_id", user.ID))

	httpx.WriteToken(w, http.StatusOK, token, map[string]any{
		"user": toUserResponse(user),
	})
}
