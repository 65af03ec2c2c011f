package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pixelgrove/studio/internal/studio/domain"
	"github.com/pixelgrove/studio/internal/studio/mail"
	"github.com/pixelgrove/studio/internal/studio/service"
	"github.com/pixelgrove/studio/internal/studio/store"
	"github.com/pixelgrove/studio/pkg/httpx"
	"github.com/pixelgrove/studio/pkg/jwtx"
	"github.com/pixelgrove/studio/pkg/slogx"

	_ "github.com/pixelgrove/studio/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store        store.Store
	UserService  *service.UserService
	TokenService *service.TokenService
	ResetService *service.ResetService
	Mailer       mail.Sender
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Pixelgrove Studio API
//	@version		0.1.0
//	@description	Backend for the Pixelgrove marketing site: account registration, JWT sessions,
//	@description	password reset over emailed single-use tokens, and admin user management.
//
//	@contact.name				Pixelgrove Team
//	@contact.url				https://github.com/pixelgrove/studio
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// Credential endpoints get strict per-IP limits to slow brute force.
	r.Mux.Handle("POST /api/auth/register",
		httpx.Chain(&RegisterHandler{UserService: r.UserService, TokenService: r.TokenService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(&LoginHandler{UserService: r.UserService, TokenService: r.TokenService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/forgot-password",
		httpx.Chain(&ForgotPasswordHandler{ResetService: r.ResetService, Mailer: r.Mailer},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/reset-password/{token}",
		httpx.Chain(&ResetPasswordHandler{ResetService: r.ResetService, TokenService: r.TokenService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /api/auth/me",
		httpx.Chain(&MeHandler{UserService: r.UserService},
			httpx.AuthnMiddleware(r.verifier, r.UserService),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/logout",
		httpx.Chain(&LogoutHandler{},
			httpx.AuthnMiddleware(r.verifier, r.UserService),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	adminOnly := func(next http.Handler) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.verifier, r.UserService),
			httpx.RequireRole(domain.RoleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("POST /api/users", adminOnly(http.HandlerFunc(h.HandleCreate)))

	// Listing is read-only and open to editors as well.
	r.Mux.Handle("GET /api/users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier, r.UserService),
			httpx.RequireRole(domain.RoleAdmin, domain.RoleEditor),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /api/users/{id}", adminOnly(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("PATCH /api/users/{id}", adminOnly(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("PATCH /api/users/{id}/role", adminOnly(http.HandlerFunc(h.HandleChangeRole)))
	r.Mux.Handle("DELETE /api/users/{id}", adminOnly(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerSystem() {
	// Health check endpoints - high limits, monitoring systems poll often.
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
