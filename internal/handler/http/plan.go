package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/serenus-health/wellness-admin-go/internal/domain/plan"
	"github.com/serenus-health/wellness-admin-go/internal/handler/http/response"
	planService "github.com/serenus-health/wellness-admin-go/internal/service/plan"
)

type PlanHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	ToggleStatus(w http.ResponseWriter, r *http.Request)
}

type PlanHandlerImpl struct {
	planService planService.PlanService
}

func NewPlanHandler(service planService.PlanService) PlanHandler {
	return &PlanHandlerImpl{planService: service}
}

// List implements PlanHandler.
func (h *PlanHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	plans, err := h.planService.GetAll(r.Context())
	if err != nil {
		slog.Error("Plan list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, plans)
}

// Create implements PlanHandler.
func (h *PlanHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var planReq plan.SavePlanRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&planReq); err != nil {
		slog.Error("Plan create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := planReq.Validate(); err != nil {
		slog.Error("Plan create validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	created, err := h.planService.Add(r.Context(), planReq)
	if err != nil {
		slog.Error("Plan create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Plan created successfully", "plan_id", created.ID)
	response.Created(w, "Plan created successfully", created)
}

// Update implements PlanHandler.
func (h *PlanHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var planReq plan.SavePlanRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&planReq); err != nil {
		slog.Error("Plan update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	planReq.ID = chi.URLParam(r, "id")

	// Validate DTO
	if err := planReq.Validate(); err != nil {
		slog.Error("Plan update validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	updated, err := h.planService.Update(r.Context(), planReq)
	if err != nil {
		slog.Error("Plan update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Plan updated successfully", updated)
}

// ToggleStatus implements PlanHandler.
func (h *PlanHandlerImpl) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	toggled, err := h.planService.ToggleStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Plan toggle service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Plan status toggled successfully", toggled)
}
