// ================== internal/features/reports/handler.go ==================
package reports

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ModesteNGOMA/geofuite/internal/pkg/logger"
	"github.com/ModesteNGOMA/geofuite/internal/pkg/pagination"
	"github.com/ModesteNGOMA/geofuite/internal/pkg/response"
	"github.com/ModesteNGOMA/geofuite/internal/pkg/validator"
	"github.com/ModesteNGOMA/geofuite/internal/pkg/viewstate"
	apperrors "github.com/ModesteNGOMA/geofuite/pkg/errors"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Create godoc
// @Summary Create a new leak report
// @Description Validates the captured form data, assigns an identifier and persists the report
// @Tags reports
// @Accept json
// @Produce json
// @Param request body CreateReportRequest true "Report creation data"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Failure 507 {object} response.ErrorResponse
// @Router /reports/ [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateCreateReport(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	if !validator.IsValidPhone(req.ClaimantPhone) {
		// Free text is accepted as-is; just leave a trace for dispatchers
		// chasing unreachable claimants. The number itself stays out of
		// the logs.
		logger.Debug("report created with a non-standard claimant phone format")
	}

	identificationDate := Today()
	if req.IdentificationDate != "" {
		// already validated
		identificationDate, _ = ParseDate(req.IdentificationDate)
	}

	status := LeakStatus(req.Status)
	if !status.Valid() {
		// unknown or absent statuses are coerced, never trusted
		status = StatusNew
	}

	report := &LeakReport{
		ID:                 uuid.NewString(),
		Address:            req.Address,
		ClaimantName:       req.ClaimantName,
		ClaimantPhone:      req.ClaimantPhone,
		Coordinates:        req.Coordinates,
		IdentificationDate: identificationDate,
		Status:             status,
		Comments:           req.Comments,
		Photo:              req.Photo,
		AIAnalysis:         req.AIAnalysis,
		CreatedAt:          time.Now().UTC(),
	}

	// A successful create always lands on the list view.
	nextView := viewstate.List

	if err := h.repo.Create(report); err != nil {
		if errors.Is(err, apperrors.ErrQuotaExceeded) {
			// The report is held in memory but could not be mirrored to
			// local storage. Non-fatal: report it and keep going.
			response.StorageError(c, "Local storage quota exceeded; report kept in memory only")
			return
		}
		response.InternalServerError(c, "Failed to save report", "STORAGE_ERROR")
		return
	}

	response.Created(c, gin.H{
		"report":   report,
		"nextView": nextView,
	})
}

// List godoc
// @Summary List leak reports
// @Description Returns the report collection, most recently created first
// @Tags reports
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} response.PaginatedResponse
// @Router /reports/ [get]
func (h *Handler) List(c *gin.Context) {
	req := pagination.FromRequest(c.Query("page"), c.Query("limit"))

	items := h.repo.List(req.Page, req.Limit)
	response.Paginated(c, items, h.repo.Count(), req.Limit, req.Page)
}

// Get godoc
// @Summary Get a leak report
// @Description Returns a single report by identifier
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	report, err := h.repo.GetByID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Report not found")
		return
	}

	response.Success(c, report)
}

// Summary godoc
// @Summary Inspect a leak report
// @Description Returns the multi-line display summary; when coordinates are present, also the external map navigation URL (opening it requires explicit user confirmation)
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/{id}/summary [get]
func (h *Handler) Summary(c *gin.Context) {
	report, err := h.repo.GetByID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Report not found")
		return
	}

	data := gin.H{
		"summary":              FormatSummary(report),
		"requiresConfirmation": false,
	}
	if report.Coordinates != nil {
		data["navigationUrl"] = NavigationURL(*report.Coordinates)
		data["requiresConfirmation"] = true
	}

	response.Success(c, data)
}
