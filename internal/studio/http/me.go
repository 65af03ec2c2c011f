package http

import (
	"net/http"

	"github.com/pixelgrove/studio/internal/studio/service"
	"github.com/pixelgrove/studio/pkg/httpx"
)

// MeHandler returns the authenticated user's own record.
type MeHandler struct {
	UserService *service.UserService
}

// ServeHTTP handles GET /api/auth/me
//
//	@Summary		Current user
//	@Description	Returns the account behind the presented session token.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	httpx.Envelope	"success, data.user"
//	@Failure		401	{object}	httpx.Envelope	"success=false, message"
//	@Failure		500	{object}	httpx.Envelope	"success=false, message"
//	@Router			/api/auth/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.UserService.GetUserByID(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, map[string]any{
		"user": toUserResponse(user),
	})
}
