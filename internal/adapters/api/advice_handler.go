package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"guardianclima.app/internal/core/session"
	"guardianclima.app/internal/ports"
	"guardianclima.app/pkg/errors"
)

const (
	imagesFormField = "images"
	maxImageBytes   = 10 << 20
)

// OutfitRequest represents the HTTP request for outfit advice. An empty city
// falls back to the city currently shown.
type OutfitRequest struct {
	City string `json:"city" form:"city"`
}

// TravelRequest represents the HTTP request for travel packing advice
type TravelRequest struct {
	Destination string `json:"destination" form:"destination"`
	StartDate   string `json:"start_date" form:"start_date"`
	EndDate     string `json:"end_date" form:"end_date"`
}

// basicAdvice handles POST /api/advice/basic requests
func (s *HTTPServerAdapter) basicAdvice(c *gin.Context) {
	if _, err := s.session.RequestBasicAdvice(c.Request.Context()); err != nil {
		s.handleError(c, err)
		return
	}
	s.respond(c, http.StatusOK, "")
}

// selectOutfitImages handles POST /api/advice/outfit/images multipart uploads
func (s *HTTPServerAdapter) selectOutfitImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	images := make([]ports.ImageFile, 0, len(form.File[imagesFormField]))
	for _, fh := range form.File[imagesFormField] {
		img, err := readImage(fh)
		if err != nil {
			s.handleError(c, err)
			return
		}
		images = append(images, img)
	}

	if err := s.session.SelectOutfitImages(images); err != nil {
		s.handleError(c, err)
		return
	}
	s.respond(c, http.StatusOK, "")
}

func readImage(fh *multipart.FileHeader) (ports.ImageFile, error) {
	if fh.Size > maxImageBytes {
		return ports.ImageFile{}, errors.NewValidationError(fmt.Sprintf("La imagen %q supera el tamaño máximo permitido.", fh.Filename))
	}
	file, err := fh.Open()
	if err != nil {
		return ports.ImageFile{}, errors.NewValidationError(fmt.Sprintf("No se pudo leer la imagen %q.", fh.Filename))
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		return ports.ImageFile{}, errors.NewValidationError(fmt.Sprintf("No se pudo leer la imagen %q.", fh.Filename))
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	return ports.ImageFile{Name: fh.Filename, ContentType: contentType, Data: data}, nil
}

// outfitAdvice handles POST /api/advice/outfit requests
func (s *HTTPServerAdapter) outfitAdvice(c *gin.Context) {
	var req OutfitRequest
	if err := c.ShouldBind(&req); err != nil {
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	if _, err := s.session.RequestOutfitAdvice(c.Request.Context(), req.City); err != nil {
		s.handleError(c, err)
		return
	}
	s.respond(c, http.StatusOK, "")
}

// travelAdvice handles POST /api/advice/travel requests
func (s *HTTPServerAdapter) travelAdvice(c *gin.Context) {
	var req TravelRequest
	if err := c.ShouldBind(&req); err != nil {
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	_, err := s.session.RequestTravelAdvice(c.Request.Context(), session.TravelRequest{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}
	s.respond(c, http.StatusOK, "")
}

// refreshOutfitHistory handles GET /api/outfits requests
func (s *HTTPServerAdapter) refreshOutfitHistory(c *gin.Context) {
	if err := s.session.RefreshOutfitHistory(c.Request.Context()); err != nil {
		s.handleError(c, err)
		return
	}
	s.respond(c, http.StatusOK, "")
}
