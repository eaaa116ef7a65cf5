package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/AMESmith/customer-dashboard/internal/domain"
	"github.com/AMESmith/customer-dashboard/internal/mapper"
	"github.com/AMESmith/customer-dashboard/internal/pipeline"
	"github.com/AMESmith/customer-dashboard/internal/service"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// @Summary Get filter options
// @Description Returns the selectable values of every dashboard filter, derived from the loaded dataset:
// @Description account managers (sorted), products and payment methods (first-seen order) and the observed contract value bounds.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.FilterOptions
// @Router /dashboard/options [get]
func (h *DashboardHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.dashboardService.Options())
}

// @Summary Get dashboard view
// @Description Filters the dataset and returns summary metrics, chart series and the pipeline table.
// @Description Omitted list parameters select every option; a list parameter given with an empty value selects none.
// @Description Omitted value bounds default to the observed dataset bounds.
// @Tags Dashboard
// @Produce json
// @Param accountManager query string false "Account manager (All or omitted = no constraint)"
// @Param product query []string false "Allowed products" collectionFormat(multi)
// @Param paymentMethod query []string false "Allowed payment methods" collectionFormat(multi)
// @Param minValue query int false "Minimum contract value (inclusive)"
// @Param maxValue query int false "Maximum contract value (inclusive)"
// @Param stageOrder query string false "Pipeline table order (lexicographic, funnel)"
// @Success 200 {object} domain.DashboardViewDTO
// @Failure 400 {object} domain.APIError
// @Router /dashboard/view [get]
func (h *DashboardHandler) GetView(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req, fieldErrs := filterRequestFromQuery(q)
	if fieldErrs != nil {
		respondFieldErrors(w, fieldErrs)
		return
	}
	req.StageOrder = domain.StageOrder(q.Get(paramStageOrder))
	h.respondView(w, r, req)
}

// @Summary Compute dashboard view
// @Description Same as GET /dashboard/view with the criteria in a JSON body. Null or absent lists select every option; empty lists select none.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body domain.FilterRequest true "Filter criteria"
// @Success 200 {object} domain.DashboardViewDTO
// @Failure 400 {object} domain.APIError
// @Router /dashboard/view [post]
func (h *DashboardHandler) PostView(w http.ResponseWriter, r *http.Request) {
	var req domain.FilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.respondView(w, r, req)
}

// @Summary List raw records
// @Description Returns the full records matching the filter, in dataset order. Accepts the filter parameters of GET /dashboard/view; stageOrder does not apply.
// @Tags Dashboard
// @Produce json
// @Param accountManager query string false "Account manager (All or omitted = no constraint)"
// @Param product query []string false "Allowed products" collectionFormat(multi)
// @Param paymentMethod query []string false "Allowed payment methods" collectionFormat(multi)
// @Param minValue query int false "Minimum contract value (inclusive)"
// @Param maxValue query int false "Maximum contract value (inclusive)"
// @Success 200 {object} domain.RecordsDTO
// @Failure 400 {object} domain.APIError
// @Router /dashboard/records [get]
func (h *DashboardHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	req, fieldErrs := filterRequestFromQuery(r.URL.Query())
	if fieldErrs != nil {
		respondFieldErrors(w, fieldErrs)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	criteria := criteriaFromRequest(req, h.dashboardService.DefaultCriteria())
	records, err := h.dashboardService.Records(r.Context(), criteria)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapper.ToRecordsDTO(records, criteria))
}

func (h *DashboardHandler) respondView(w http.ResponseWriter, r *http.Request, req domain.FilterRequest) {
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	criteria := criteriaFromRequest(req, h.dashboardService.DefaultCriteria())
	view, err := h.dashboardService.View(r.Context(), criteria, req.StageOrder)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapper.ToDashboardViewDTO(view, criteria))
}

// handleServiceError maps caller errors to 400 and everything else to 500
func (h *DashboardHandler) handleServiceError(w http.ResponseWriter, err error) {
	var ve validator.ValidationErrors
	var critErr *pipeline.CriteriaError

	switch {
	case errors.As(err, &ve):
		respondValidationError(w, err)
	case errors.As(err, &critErr):
		respondFieldErrors(w, map[string]string{
			critErr.Field: fmt.Sprintf("%s: %s", domain.GetValidationMessage(critErr.Tag), critErr.Reason),
		})
	case errors.Is(err, service.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.logger.Warn("dashboard request cancelled", zap.Error(err))
		respondWithError(w, http.StatusServiceUnavailable, "Request cancelled")
	default:
		h.logger.Error("failed to compute dashboard view", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to compute dashboard view")
	}
}
