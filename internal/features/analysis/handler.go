// ================== internal/features/analysis/handler.go ==================
package analysis

import (
	"github.com/gin-gonic/gin"

	"github.com/ModesteNGOMA/geofuite/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Analyze godoc
// @Summary Analyze a leak description
// @Description Sends the draft comments and address to the AI advisory bridge and returns a suggested severity, summary and status. Applying the suggestion is the client's decision after explicit user confirmation.
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "Description to analyze"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /analysis/ [post]
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	// The bridge must never be invoked for undersized descriptions.
	if err := ValidateAnalyzeRequest(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	if !h.service.Enabled() {
		response.ServiceUnavailable(c, "AI analysis is not configured", "AI_DISABLED")
		return
	}

	result := h.service.Analyze(c.Request.Context(), req.Comments, req.Address)
	if result == nil {
		// Degraded, not fatal: the form stays usable without a suggestion.
		response.ServiceUnavailable(c, "AI analysis failed, check your connection", "AI_UNAVAILABLE")
		return
	}

	response.Success(c, result)
}
