package http

import (
	"log/slog"
	"net/http"

	"github.com/pixelgrove/studio/internal/studio/service"
	"github.com/pixelgrove/studio/pkg/httpx"
	"github.com/pixelgrove/studio/pkg/slogx"
)

// ResetPasswordHandler redeems an emailed reset token and issues a fresh
// session so the user lands logged in.
type ResetPasswordHandler struct {
	ResetService *service.ResetService
	TokenService *service.TokenService
}

// ServeHTTP handles POST /api/auth/reset-password/{token}
//
//	@Summary		Reset password
//	@Description	Redeems a reset token from the emailed link and sets a new password. Tokens are single use.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			token	path		string					true	"Reset token from the emailed link"
//	@Param			request	body		ResetPasswordRequest	true	"New password"
//	@Success		200		{object}	httpx.Envelope			"success, token, data.user"
//	@Failure		400		{object}	httpx.Envelope			"success=false, message"
//	@Failure		500		{object}	httpx.Envelope			"success=false, message"
//	@Router			/api/auth/reset-password/{token} [post].
func (h *ResetPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req ResetPasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.ResetService.Redeem(ctx, r.PathValue("token"), req.Password)
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

	httpx.WriteToken(w, http.StatusOK, token, map[string]any{
		"user": toUserResponse(user),
	})
}
