package order

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Voice order upload
// --------------------------------------------------
func (h *Handler) ProcessAudio(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	resp, err := h.service.ProcessVoiceOrder(
		c.Request.Context(),
		file,
		header.Filename,
	)
	if err != nil {
		status := http.StatusInternalServerError

		var parseErr *ParseError
		var upstreamErr *UpstreamError
		switch {
		case errors.As(err, &parseErr):
			status = http.StatusUnprocessableEntity
		case errors.As(err, &upstreamErr):
			status = http.StatusBadGateway
		}

		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
