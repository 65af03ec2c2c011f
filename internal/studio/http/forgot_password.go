package http

import (
	"log/slog"
	"net/http"

	"github.com/pixelgrove/studio/internal/studio/mail"
	"github.com/pixelgrove/studio/internal/studio/service"
	"github.com/pixelgrove/studio/pkg/httpx"
	"github.com/pixelgrove/studio/pkg/slogx"
)

// ForgotPasswordHandler starts the password-reset flow: mint a token, store
// its digest, and email the plaintext link.
type ForgotPasswordHandler struct {
	ResetService *service.ResetService
	Mailer       mail.Sender
}

// ServeHTTP handles POST /api/auth/forgot-password
//
//	@Summary		Request a password reset
//	@Description	Emails a single-use reset link to the account's address. The link expires after ten minutes.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ForgotPasswordRequest	true	"Account email"
//	@Success		200		{object}	httpx.Envelope			"success, message"
//	@Failure		400		{object}	httpx.Envelope			"success=false, message"
//	@Failure		404		{object}	httpx.Envelope			"success=false, message"
//	@Failure		500		{object}	httpx.Envelope			"success=false, message"
//	@Router			/api/auth/forgot-password [post].
func (h *ForgotPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req ForgotPasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, token, err := h.ResetService.Begin(ctx, req.Email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.Mailer.SendPasswordReset(ctx, user.Email, user.Name, token); err != nil {
		log.Error("failed to send reset email",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		// Roll back the pending digest so the user is not left holding a
		// token that never reached them.
		if clearErr := h.ResetService.Clear(ctx, user.ID); clearErr != nil {
			log.Error("failed to clear reset token after email failure",
				slog.String("user_id", user.ID),
				slog.Any("error", clearErr),
			)
		}
		httpx.WriteError(w, http.StatusInternalServerError, "failed to send reset email, please try again later")
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "a password reset link has been sent to your email")
}
