package reports

import (
	"errors"
	"strings"

	"github.com/ModesteNGOMA/geofuite/internal/pkg/validator"
)

// ValidateCreateReport validates the report creation request. The three
// contact fields are required; everything else is optional but must be
// well-formed when present.
func ValidateCreateReport(req *CreateReportRequest) error {
	if strings.TrimSpace(req.Address) == "" {
		return errors.New("address is required")
	}
	if strings.TrimSpace(req.ClaimantName) == "" {
		return errors.New("claimantName is required")
	}
	// The phone is free-text contact info: presence is required, format
	// is not enforced (extensions and annotations are common).
	if strings.TrimSpace(req.ClaimantPhone) == "" {
		return errors.New("claimantPhone is required")
	}

	if req.Coordinates != nil && !req.Coordinates.Valid() {
		return errors.New("coordinates out of range: latitude must be in [-90,90], longitude in [-180,180]")
	}

	if req.IdentificationDate != "" {
		if _, err := ParseDate(req.IdentificationDate); err != nil {
			return err
		}
	}

	if req.Photo != "" && !validator.IsImageDataURI(req.Photo) {
		return errors.New("photo must be an inline base64 image data URI")
	}

	return nil
}
