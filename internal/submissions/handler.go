package submissions

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Veerenstael/QuickScan/internal/aggregate"
	"github.com/Veerenstael/QuickScan/internal/shared/metrics"
	"github.com/Veerenstael/QuickScan/internal/shared/server/respond"
)

const maxBodySize = 1 << 20 // 1MB, the form payload is small

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the submission route. OPTIONS /submit is answered
// by the CORS middleware.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/submit", h.submit)
}

func (h *Handler) submit(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)
	metrics.IncSubmissionReceived()

	fields, err := aggregate.ParseForm(c.Request.Body)
	if err != nil {
		metrics.IncSubmissionFailed()
		respond.Error(c, http.StatusInternalServerError, "invalid submission payload: "+err.Error())
		return
	}

	out, err := h.Svc.Process(c.Request.Context(), fields)
	if err != nil {
		metrics.IncSubmissionFailed()
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	if out.Email.Succeeded {
		metrics.IncEmailSent()
	}

	c.Set("artifactKey", out.ArtifactKey)
	c.Set("emailSent", out.Email.Succeeded)

	respond.OK(c, toResponse(out))
}
