package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/serenus-health/wellness-admin-go/internal/domain/company"
	"github.com/serenus-health/wellness-admin-go/internal/handler/http/response"
	companyService "github.com/serenus-health/wellness-admin-go/internal/service/company"
)

type CompanyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	GetCheckupSettings(w http.ResponseWriter, r *http.Request)
	SaveCheckupSettings(w http.ResponseWriter, r *http.Request)

	ListRecommendations(w http.ResponseWriter, r *http.Request)
	SaveRecommendation(w http.ResponseWriter, r *http.Request)
	DeleteRecommendation(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService companyService.CompanyService
}

func NewCompanyHandler(service companyService.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{companyService: service}
}

// List implements CompanyHandler.
func (h *CompanyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companyService.GetAll(r.Context())
	if err != nil {
		slog.Error("Company list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, companies)
}

// Register implements CompanyHandler.
func (h *CompanyHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq company.RegisterCompanyRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("Company register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := registerReq.Validate(); err != nil {
		slog.Error("Company register validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	created, err := h.companyService.Register(r.Context(), registerReq)
	if err != nil {
		slog.Error("Company register service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Company registered successfully", "company_id", created.ID)
	response.Created(w, "Company registered successfully", created)
}

// GetByID implements CompanyHandler.
func (h *CompanyHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	found, err := h.companyService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements CompanyHandler.
func (h *CompanyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq company.UpdateCompanyRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Company update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	// Validate DTO
	if err := updateReq.Validate(); err != nil {
		slog.Error("Company update validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	updated, err := h.companyService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Company update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company updated successfully", updated)
}

// Delete implements CompanyHandler.
func (h *CompanyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.companyService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Company delete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company deleted successfully", nil)
}

// GetCheckupSettings implements CompanyHandler. An unknown company yields a
// null payload, not an error.
func (h *CompanyHandlerImpl) GetCheckupSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.companyService.GetOrCreateCheckupSettings(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Checkup settings get service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, settings)
}

// SaveCheckupSettings implements CompanyHandler.
func (h *CompanyHandlerImpl) SaveCheckupSettings(w http.ResponseWriter, r *http.Request) {
	var settingsReq company.SaveCheckupSettingsRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&settingsReq); err != nil {
		slog.Error("Checkup settings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	settingsReq.CompanyID = chi.URLParam(r, "id")

	// Call service; the company must exist before the payload is validated
	saved, err := h.companyService.SaveCheckupSettings(r.Context(), settingsReq)
	if err != nil {
		slog.Error("Checkup settings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checkup settings saved successfully", saved)
}

// ListRecommendations implements CompanyHandler.
func (h *CompanyHandlerImpl) ListRecommendations(w http.ResponseWriter, r *http.Request) {
	recs, err := h.companyService.GetOrCreateRecommendations(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Recommendations list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, recs)
}

// SaveRecommendation implements CompanyHandler.
func (h *CompanyHandlerImpl) SaveRecommendation(w http.ResponseWriter, r *http.Request) {
	var recReq company.SaveRecommendationRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&recReq); err != nil {
		slog.Error("Recommendation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	recReq.CompanyID = chi.URLParam(r, "id")

	// Call service
	saved, err := h.companyService.SaveRecommendation(r.Context(), recReq)
	if err != nil {
		slog.Error("Recommendation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	if recReq.ID == "" {
		response.Created(w, "Recommendation created successfully", saved)
		return
	}
	response.SuccessWithMessage(w, "Recommendation updated successfully", saved)
}

// DeleteRecommendation implements CompanyHandler.
func (h *CompanyHandlerImpl) DeleteRecommendation(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "id")
	recID := chi.URLParam(r, "recommendationID")

	if err := h.companyService.DeleteRecommendation(r.Context(), companyID, recID); err != nil {
		slog.Error("Recommendation delete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Recommendation deleted successfully", nil)
}
