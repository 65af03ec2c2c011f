package http

import (
	"net/http"

	"github.com/pixelgrove/studio/internal/studio/domain"
	"github.com/pixelgrove/studio/internal/studio/service"
	"github.com/pixelgrove/studio/pkg/httpx"
)

// UsersHandler handles the admin user-management endpoints.
type UsersHandler struct {
	UserService *service.UserService
}

// HandleCreate handles POST /api/users
//
//	@Summary		Create user
//	@Description	Creates a user with an explicit role. Admin only.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		CreateUserRequest	true	"User creation request"
//	@Success		201		{object}	httpx.Envelope		"success, data.user"
//	@Failure		400		{object}	httpx.Envelope		"success=false, message"
//	@Failure		401		{object}	httpx.Envelope		"success=false, message"
//	@Failure		403		{object}	httpx.Envelope		"success=false, message"
//	@Failure		500		{object}	httpx.Envelope		"success=false, message"
//	@Router			/api/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	role := req.Role
	if role == "" {
		role = domain.DefaultRole
	}

	user, err := h.UserService.CreateUser(ctx, req.Name, req.Email, req.Password, role)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusCreated, map[string]any{
		"user": toUserResponse(user),
	})
}

// HandleList handles GET /api/users
//
//	@Summary		List users
//	@Description	Returns all users, newest first. Admins and editors.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	httpx.Envelope	"success, data.users"
//	@Failure		401	{object}	httpx.Envelope	"success=false, message"
//	@Failure		403	{object}	httpx.Envelope	"success=false, message"
//	@Failure		500	{object}	httpx.Envelope	"success=false, message"
//	@Router			/api/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.UserService.ListUsers(ctx)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, map[string]any{
		"users": toUserResponses(users),
	})
}

// HandleGet handles GET /api/users/{id}
//
//	@Summary		Get user
//	@Description	Returns a single user by id. Admin only.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string			true	"User ID (ULID)"
//	@Success		200	{object}	httpx.Envelope	"success, data.user"
//	@Failure		401	{object}	httpx.Envelope	"success=false, message"
//	@Failure		403	{object}	httpx.Envelope	"success=false, message"
//	@Failure		404	{object}	httpx.Envelope	"success=false, message"
//	@Failure		500	{object}	httpx.Envelope	"success=false, message"
//	@Router			/api/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.UserService.GetUserByID(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, map[string]any{
		"user": toUserResponse(user),
	})
}

// HandleUpdate handles PATCH /api/users/{id}
//
//	@Summary		Update user
//	@Description	Applies a partial update. Absent fields are untouched; admins cannot change their own role here.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string				true	"User ID (ULID)"
//	@Param			request	body		UpdateUserRequest	true	"Fields to update"
//	@Success		200		{object}	httpx.Envelope		"success, data.user"
//	@Failure		400		{object}	httpx.Envelope		"success=false, message"
//	@Failure		401		{object}	httpx.Envelope		"success=false, message"
//	@Failure		403		{object}	httpx.Envelope		"success=false, message"
//	@Failure		404		{object}	httpx.Envelope		"success=false, message"
//	@Failure		500		{object}	httpx.Envelope		"success=false, message"
//	@Router			/api/users/{id} [patch].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.UserService.UpdateUser(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"), service.UpdateUserParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, map[string]any{
		"user": toUserResponse(user),
	})
}

// HandleChangeRole handles PATCH /api/users/{id}/role
//
//	@Summary		Change user role
//	@Description	Sets a user's role. Admins cannot change their own role.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string				true	"User ID (ULID)"
//	@Param			request	body		ChangeRoleRequest	true	"New role"
//	@Success		200		{object}	httpx.Envelope		"success, data.user"
//	@Failure		400		{object}	httpx.Envelope		"success=false, message"
//	@Failure		401		{object}	httpx.Envelope		"success=false, message"
//	@Failure		403		{object}	httpx.Envelope		"success=false, message"
//	@Failure		404		{object}	httpx.Envelope		"success=false, message"
//	@Failure		500		{object}	httpx.Envelope		"success=false, message"
//	@Router			/api/users/{id}/role [patch].
func (h *UsersHandler) HandleChangeRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ChangeRoleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.UserService.ChangeRole(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"), req.Role)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, map[string]any{
		"user": toUserResponse(user),
	})
}

// HandleDelete handles DELETE /api/users/{id}
//
//	@Summary		Delete user
//	@Description	Deletes a user. Admins cannot delete their own account.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string			true	"User ID (ULID)"
//	@Success		200	{object}	httpx.Envelope	"success, message"
//	@Failure		400	{object}	httpx.Envelope	"success=false, message"
//	@Failure		401	{object}	httpx.Envelope	"success=false, message"
//	@Failure		403	{object}	httpx.Envelope	"success=false, message"
//	@Failure		404	{object}	httpx.Envelope	"success=false, message"
//	@Failure		500	{object}	httpx.Envelope	"success=false, message"
//	@Router			/api/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.UserService.DeleteUser(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "user deleted")
}
