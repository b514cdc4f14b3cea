package media

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ModesteNGOMA/geofuite/internal/pkg/imaging"
	"github.com/ModesteNGOMA/geofuite/internal/pkg/response"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// UploadPhoto godoc
// @Summary Normalize a captured photo
// @Description Accepts one image from camera or gallery, scales it to at most 800px wide preserving aspect ratio, re-encodes as JPEG quality 70 and returns the inline data URI for the report draft
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Image to normalize"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /media/photo [post]
func (h *Handler) UploadPhoto(c *gin.Context) {
	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		response.BadRequest(c, "Photo file is required", "MISSING_FILE")
		return
	}
	defer file.Close()

	if err := ValidatePhotoFile(header); err != nil {
		response.BadRequest(c, err.Error(), "INVALID_FILE")
		return
	}

	photo, err := imaging.Normalize(file)
	if err != nil {
		if errors.Is(err, imaging.ErrUnsupportedImage) {
			// Recoverable: the client keeps its previous photo state.
			response.BadRequest(c, "Could not decode image", "UNSUPPORTED_IMAGE")
			return
		}
		response.InternalServerError(c, "Failed to process photo", "PHOTO_FAILED")
		return
	}

	response.Success(c, photo)
}
