package http

import (
	"log/slog"
	"net/http"

	"github.com/pixelgrove/studio/internal/studio/service"
	"github.com/pixelgrove/studio/pkg/httpx"
	"github.com/pixelgrove/studio/pkg/slogx"
)

// RegisterHandler handles public account registration.
type RegisterHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

// ServeHTTP handles POST /api/auth/register
//
//	@Summary		Register a new account
//	@Description	Creates an editor account and returns a signed session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"Registration request"
//	@Success		201		{object}	httpx.Envelope	"success, token, data.user"
//	@Failure		400		{object}	httpx.Envelope	"success=false, message"
//	@Failure		500		{object}	httpx.Envelope	"success=false, message"
//	@Router			/api/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.UserService.Register(ctx, req.Name, req.Email, req.Password)
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

	httpx.WriteToken(w, http.StatusCreated, token, map[string]any{
		"user": toUserResponse(user),
	})
}
