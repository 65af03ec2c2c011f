package http

import (
	"net/http"

	"github.com/pixelgrove/studio/pkg/httpx"
)

// LogoutHandler acknowledges logout. Sessions are stateless JWTs with no
// revocation list, so the client discarding its token is the whole operation.
type LogoutHandler struct{}

// ServeHTTP handles POST /api/auth/logout
//
//	@Summary		Log out
//	@Description	Acknowledges logout. The client is expected to discard its token; tokens remain valid until expiry.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	httpx.Envelope	"success, message"
//	@Failure		401	{object}	httpx.Envelope	"success=false, message"
//	@Router			/api/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpx.WriteMessage(w, http.StatusOK, "logged out")
}
