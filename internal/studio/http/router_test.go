package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	studiohttp "github.com/pixelgrove/studio/internal/studio/http"
	"github.com/pixelgrove/studio/internal/studio/service"
	"github.com/pixelgrove/studio/internal/studio/store/drivers/sqlite"
	"github.com/pixelgrove/studio/pkg/jwtx"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type stubMailer struct {
	mu       sync.Mutex
	tokens   []string
	failWith error
}

func (m *stubMailer) SendPasswordReset(ctx context.Context, to, name, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.tokens = append(m.tokens, token)
	return nil
}

func (m *stubMailer) lastToken(t *testing.T) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.tokens)
	return m.tokens[len(m.tokens)-1]
}

type testEnv struct {
	server *httptest.Server
	mailer *stubMailer
	users  *service.UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewHS256([]byte(testSecret), "studio-test")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := studiohttp.NewRouter(signer, "test", st, logger)
	router.UserService = &service.UserService{Store: st}
	router.TokenService = &service.TokenService{Signer: signer, Issuer: "studio-test"}
	router.ResetService = &service.ResetService{Store: st}
	mailer := &stubMailer{}
	router.Mailer = mailer
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testEnv{server: server, mailer: mailer, users: router.UserService}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Token   string          `json:"token"`
	Data    json.RawMessage `json:"data"`
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func (e *testEnv) register(t *testing.T, name, email, password string) (string, string) {
	t.Helper()

	code, env := e.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, code)
	require.True(t, env.Success)
	require.NotEmpty(t, env.Token)

	var data struct {
		User struct{ ID string } `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return env.Token, data.User.ID
}

// promote flips a user's role straight in the store, for tests that need an
// admin without going through the endpoints under test. Role claims are baked
// into tokens at issue time, so callers must log in again afterwards.
func (e *testEnv) promote(t *testing.T, userID string) {
	t.Helper()
	ctx := context.Background()
	_, err := e.users.ChangeRole(ctx, "test-harness", userID, "admin")
	require.NoError(t, err)
}

func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()

	code, env := e.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, env.Token)
	return env.Token
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	token, _ := env.register(t, "Alice", "alice@example.com", "s3cret-pass")
	require.NotEmpty(t, token)

	t.Run("duplicate email rejected", func(t *testing.T) {
		code, resp := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
			"name": "Alice Again", "email": "Alice@Example.com", "password": "s3cret-pass",
		})
		require.Equal(t, http.StatusBadRequest, code)
		require.False(t, resp.Success)
		require.Contains(t, resp.Message, "already exists")
	})

	t.Run("short password rejected", func(t *testing.T) {
		code, resp := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
			"name": "Bob", "email": "bob@example.com", "password": "short",
		})
		require.Equal(t, http.StatusBadRequest, code)
		require.False(t, resp.Success)
	})

	t.Run("login succeeds with case-insensitive email", func(t *testing.T) {
		code, resp := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "ALICE@example.com", "password": "s3cret-pass",
		})
		require.Equal(t, http.StatusOK, code)
		require.True(t, resp.Success)
		require.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password and unknown email get the same message", func(t *testing.T) {
		code1, resp1 := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "alice@example.com", "password": "wrong-pass",
		})
		code2, resp2 := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "nobody@example.com", "password": "wrong-pass",
		})
		require.Equal(t, http.StatusUnauthorized, code1)
		require.Equal(t, http.StatusUnauthorized, code2)
		require.Equal(t, resp1.Message, resp2.Message)
	})
}

func TestMeAndLogout(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	token, userID := env.register(t, "Alice", "alice@example.com", "s3cret-pass")

	t.Run("me returns the caller without secrets", func(t *testing.T) {
		code, resp := env.do(t, http.MethodGet, "/api/auth/me", token, nil)
		require.Equal(t, http.StatusOK, code)
		require.True(t, resp.Success)

		var data struct {
			User map[string]any `json:"user"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		require.Equal(t, userID, data.User["id"])
		require.Equal(t, "alice@example.com", data.User["email"])
		require.Equal(t, "editor", data.User["role"])
		require.NotContains(t, data.User, "passwordHash")
		require.NotContains(t, data.User, "password_hash")
	})

	t.Run("me without a token is unauthorized", func(t *testing.T) {
		code, resp := env.do(t, http.MethodGet, "/api/auth/me", "", nil)
		require.Equal(t, http.StatusUnauthorized, code)
		require.False(t, resp.Success)
	})

	t.Run("me with a garbage token is unauthorized", func(t *testing.T) {
		code, _ := env.do(t, http.MethodGet, "/api/auth/me", "not-a-jwt", nil)
		require.Equal(t, http.StatusUnauthorized, code)
	})

	t.Run("logout acknowledges", func(t *testing.T) {
		code, resp := env.do(t, http.MethodPost, "/api/auth/logout", token, nil)
		require.Equal(t, http.StatusOK, code)
		require.True(t, resp.Success)
	})

	t.Run("token for a deleted user is rejected", func(t *testing.T) {
		_, adminID := env.register(t, "Admin", "admin@example.com", "s3cret-pass")
		env.promote(t, adminID)
		adminToken := env.login(t, "admin@example.com", "s3cret-pass")

		code, _ := env.do(t, http.MethodDelete, "/api/users/"+userID, adminToken, nil)
		require.Equal(t, http.StatusOK, code)

		code, resp := env.do(t, http.MethodGet, "/api/auth/me", token, nil)
		require.Equal(t, http.StatusUnauthorized, code)
		require.False(t, resp.Success)
	})
}

func TestPasswordResetFlow(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	env.register(t, "Alice", "alice@example.com", "original-pass")

	t.Run("forgot-password for unknown email is 404", func(t *testing.T) {
		code, resp := env.do(t, http.MethodPost, "/api/auth/forgot-password", "", map[string]string{
			"email": "nobody@example.com",
		})
		require.Equal(t, http.StatusNotFound, code)
		require.False(t, resp.Success)
	})

	code, resp := env.do(t, http.MethodPost, "/api/auth/forgot-password", "", map[string]string{
		"email": "alice@example.com",
	})
	require.Equal(t, http.StatusOK, code)
	require.True(t, resp.Success)

	token := env.mailer.lastToken(t)
	require.Len(t, token, 64)

	t.Run("redeem with wrong token fails", func(t *testing.T) {
		code, resp := env.do(t, http.MethodPost, "/api/auth/reset-password/deadbeef", "", map[string]string{
			"password": "whatever-pass",
		})
		require.Equal(t, http.StatusBadRequest, code)
		require.False(t, resp.Success)
	})

	t.Run("redeem sets the new password and logs in", func(t *testing.T) {
		code, resp := env.do(t, http.MethodPost, "/api/auth/reset-password/"+token, "", map[string]string{
			"password": "brand-new-pass",
		})
		require.Equal(t, http.StatusOK, code)
		require.True(t, resp.Success)
		require.NotEmpty(t, resp.Token)

		code, _ = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "alice@example.com", "password": "brand-new-pass",
		})
		require.Equal(t, http.StatusOK, code)

		code, _ = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "alice@example.com", "password": "original-pass",
		})
		require.Equal(t, http.StatusUnauthorized, code)
	})

	t.Run("redeemed token cannot be replayed", func(t *testing.T) {
		code, resp := env.do(t, http.MethodPost, "/api/auth/reset-password/"+token, "", map[string]string{
			"password": "yet-another-pass",
		})
		require.Equal(t, http.StatusBadRequest, code)
		require.False(t, resp.Success)
	})
}

func TestForgotPasswordMailFailureClearsToken(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	env.register(t, "Alice", "alice@example.com", "original-pass")

	env.mailer.mu.Lock()
	env.mailer.failWith = errors.New("smtp unreachable")
	env.mailer.mu.Unlock()

	code, resp := env.do(t, http.MethodPost, "/api/auth/forgot-password", "", map[string]string{
		"email": "alice@example.com",
	})
	require.Equal(t, http.StatusInternalServerError, code)
	require.False(t, resp.Success)

	users, err := env.users.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.False(t, users[0].HasPendingReset())
}

func TestAdminUserManagement(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	_, adminID := env.register(t, "Admin", "admin@example.com", "s3cret-pass")
	env.promote(t, adminID)
	adminToken := env.login(t, "admin@example.com", "s3cret-pass")
	editorToken, editorID := env.register(t, "Editor", "editor@example.com", "s3cret-pass")

	t.Run("editor can list but not create users", func(t *testing.T) {
		code, _ := env.do(t, http.MethodGet, "/api/users", editorToken, nil)
		require.Equal(t, http.StatusOK, code)

		code, resp := env.do(t, http.MethodPost, "/api/users", editorToken, map[string]string{
			"name": "Sneaky", "email": "sneaky@example.com", "password": "s3cret-pass",
		})
		require.Equal(t, http.StatusForbidden, code)
		require.False(t, resp.Success)
	})

	t.Run("admin lists users", func(t *testing.T) {
		code, resp := env.do(t, http.MethodGet, "/api/users", adminToken, nil)
		require.Equal(t, http.StatusOK, code)

		var data struct {
			Users []map[string]any `json:"users"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		require.Len(t, data.Users, 2)
	})

	t.Run("admin creates a user with a role", func(t *testing.T) {
		code, resp := env.do(t, http.MethodPost, "/api/users", adminToken, map[string]string{
			"name": "Second Admin", "email": "admin2@example.com", "password": "s3cret-pass", "role": "admin",
		})
		require.Equal(t, http.StatusCreated, code)

		var data struct {
			User map[string]any `json:"user"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		require.Equal(t, "admin", data.User["role"])
	})

	t.Run("invalid role rejected at validation", func(t *testing.T) {
		code, _ := env.do(t, http.MethodPost, "/api/users", adminToken, map[string]string{
			"name": "X", "email": "x@example.com", "password": "s3cret-pass", "role": "superuser",
		})
		require.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("admin gets and updates a user", func(t *testing.T) {
		code, resp := env.do(t, http.MethodGet, "/api/users/"+editorID, adminToken, nil)
		require.Equal(t, http.StatusOK, code)

		code, resp = env.do(t, http.MethodPatch, "/api/users/"+editorID, adminToken, map[string]string{
			"name": "Renamed Editor",
		})
		require.Equal(t, http.StatusOK, code)

		var data struct {
			User map[string]any `json:"user"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		require.Equal(t, "Renamed Editor", data.User["name"])
	})

	t.Run("unknown user id is 404", func(t *testing.T) {
		code, _ := env.do(t, http.MethodGet, "/api/users/01K00000000000000000000000", adminToken, nil)
		require.Equal(t, http.StatusNotFound, code)
	})

	t.Run("admin promotes a user via the role endpoint", func(t *testing.T) {
		code, resp := env.do(t, http.MethodPatch, "/api/users/"+editorID+"/role", adminToken, map[string]string{
			"role": "admin",
		})
		require.Equal(t, http.StatusOK, code)

		var data struct {
			User map[string]any `json:"user"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		require.Equal(t, "admin", data.User["role"])
	})

	t.Run("admin cannot change own role", func(t *testing.T) {
		code, resp := env.do(t, http.MethodPatch, "/api/users/"+adminID+"/role", adminToken, map[string]string{
			"role": "editor",
		})
		require.Equal(t, http.StatusBadRequest, code)
		require.Contains(t, resp.Message, "your own role")
	})

	t.Run("admin cannot delete own account", func(t *testing.T) {
		code, resp := env.do(t, http.MethodDelete, "/api/users/"+adminID, adminToken, nil)
		require.Equal(t, http.StatusBadRequest, code)
		require.Contains(t, resp.Message, "your own account")
	})

	t.Run("admin deletes another user", func(t *testing.T) {
		code, _ := env.do(t, http.MethodDelete, "/api/users/"+editorID, adminToken, nil)
		require.Equal(t, http.StatusOK, code)

		code, _ = env.do(t, http.MethodGet, "/api/users/"+editorID, adminToken, nil)
		require.Equal(t, http.StatusNotFound, code)
	})
}

func TestHealthProbes(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	for _, path := range []string{"/livez", "/readyz"} {
		resp, err := env.server.Client().Get(env.server.URL + path)
		require.NoError(t, err)

		var body studiohttp.HealthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		require.Equal(t, "ok", body.Status, path)
	}
}

func TestMalformedJSONRejected(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	req, err := http.NewRequest(http.MethodPost, env.server.URL+"/api/auth/register",
		bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := env.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	b, _ := io.ReadAll(resp.Body)
	require.Contains(t, string(b), "invalid JSON")
}
