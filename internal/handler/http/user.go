package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/serenus-health/wellness-admin-go/internal/domain/user"
	"github.com/serenus-health/wellness-admin-go/internal/handler/http/middleware"
	"github.com/serenus-health/wellness-admin-go/internal/handler/http/response"
	userService "github.com/serenus-health/wellness-admin-go/internal/service/user"
)

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	ToggleStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService userService.UserService
}

func NewUserHandler(service userService.UserService) UserHandler {
	return &UserHandlerImpl{userService: service}
}

// List implements UserHandler.
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.GetAll(r.Context())
	if err != nil {
		slog.Error("User list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

// Create implements UserHandler.
func (h *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq user.CreateUserRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("User create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("User create validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	created, err := h.userService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("User create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User created successfully", "user_id", created.ID)
	response.Created(w, "User created successfully", created)
}

// GetByID implements UserHandler.
func (h *UserHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	found, err := h.userService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements UserHandler.
func (h *UserHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq user.UpdateUserRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("User update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	// Validate DTO
	if err := updateReq.Validate(); err != nil {
		slog.Error("User update validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	updated, err := h.userService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("User update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User updated successfully", updated)
}

// ToggleStatus implements UserHandler.
func (h *UserHandlerImpl) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	toggled, err := h.userService.ToggleStatus(r.Context(), middleware.UserID(r), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("User toggle service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User status toggled successfully", toggled)
}

// Delete implements UserHandler.
func (h *UserHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.Delete(r.Context(), middleware.UserID(r), chi.URLParam(r, "id")); err != nil {
		slog.Error("User delete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User deleted successfully", nil)
}
