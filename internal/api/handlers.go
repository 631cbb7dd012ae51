package api

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	customerrors "github.com/axellelanca/linkbundles/internal/errors"
	"github.com/axellelanca/linkbundles/internal/logger"
	"github.com/axellelanca/linkbundles/internal/models"
	"github.com/axellelanca/linkbundles/internal/services"
)

// BundleHandler exposes the bundle operations over HTTP.
type BundleHandler struct {
	service *services.BundleService
}

// NewBundleHandler creates a new bundle handler
func NewBundleHandler(service *services.BundleService) *BundleHandler {
	return &BundleHandler{service: service}
}

// HealthCheckHandler handles the /health route to verify service status
func HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListAll handles GET /links.
func (h *BundleHandler) ListAll(c *gin.Context) {
	bundles, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if bundles == nil {
		bundles = []models.LinkBundle{}
	}
	c.JSON(http.StatusOK, bundles)
}

// GetByVanityURL handles GET /links/:vanityUrl.
func (h *BundleHandler) GetByVanityURL(c *gin.Context) {
	bundle, err := h.service.GetByVanityURL(c.Request.Context(), c.Param("vanityUrl"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bundle)
}

// ListByUser handles GET /links/user/:userId.
func (h *BundleHandler) ListByUser(c *gin.Context) {
	summaries, err := h.service.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// Create handles POST /links.
func (h *BundleHandler) Create(c *gin.Context) {
	var bundle models.LinkBundle
	if err := c.ShouldBindJSON(&bundle); err != nil {
		respondError(c, customerrors.NewValidationError("body", err.Error()))
		return
	}

	created, err := h.service.Create(c.Request.Context(), &bundle)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", BundleLocation(created.VanityURL))
	c.JSON(http.StatusCreated, created)
}

// Delete handles DELETE /links/:vanityUrl.
func (h *BundleHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("vanityUrl")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Patch handles PATCH /links/:vanityUrl with a JSON Patch body.
func (h *BundleHandler) Patch(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		respondError(c, customerrors.NewValidationError("body", err.Error()))
		return
	}
	edits, err := services.DecodeEditSet(body)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.service.Patch(c.Request.Context(), c.Param("vanityUrl"), edits); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// BundleLocation is the URL a bundle can be read back from. Slashes inside
// the vanity URL are escaped so it stays a single path segment.
func BundleLocation(vanityURL string) string {
	return "/links/" + url.PathEscape(vanityURL)
}

// ProblemDetails is the body of 400 responses.
type ProblemDetails struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail"`
	Instance string            `json:"instance"`
	Errors   map[string]string `json:"errors,omitempty"`
}

// StatusFor maps a service error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case customerrors.IsValidation(err):
		return http.StatusBadRequest
	case customerrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case customerrors.IsAuthorization(err):
		return http.StatusForbidden
	case customerrors.IsNotFound(err):
		return http.StatusNotFound
	case customerrors.IsAlreadyExists(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := StatusFor(err)
	switch status {
	case http.StatusBadRequest:
		c.JSON(status, problemFor(c, err))
	case http.StatusInternalServerError:
		logger.WithContext(c.Request.Context()).
			WithError(err).
			WithField("path", c.Request.URL.Path).
			Error("request failed")
		c.JSON(status, gin.H{"error": "Internal server error"})
	default:
		c.JSON(status, gin.H{"error": err.Error()})
	}
}

func problemFor(c *gin.Context, err error) ProblemDetails {
	problem := ProblemDetails{
		Type:     "/linkylink/clientissue",
		Title:    "Payload is invalid",
		Status:   http.StatusBadRequest,
		Detail:   err.Error(),
		Instance: c.Request.URL.Path,
	}

	var many customerrors.ValidationErrors
	var one *customerrors.ValidationError
	switch {
	case errors.As(err, &many):
		problem.Errors = many.Details()
	case errors.As(err, &one):
		problem.Detail = one.Message
		problem.Errors = map[string]string{one.Field: one.Message}
	}
	return problem
}
