package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/navarrastar/form-autofill/pkg/form"
	"github.com/navarrastar/form-autofill/pkg/logger"
	"github.com/navarrastar/form-autofill/pkg/models"
	"github.com/navarrastar/form-autofill/pkg/services"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	formService   *services.FormService
	lookupService services.LookupService
}

// NewHandlers creates a new Handlers instance
func NewHandlers(formService *services.FormService, lookupService services.LookupService) *Handlers {
	return &Handlers{
		formService:   formService,
		lookupService: lookupService,
	}
}

// RegisterRoutes mounts every endpoint on the router
func (h *Handlers) RegisterRoutes(router gin.IRouter) {
	router.GET("/health", h.HealthCheck)

	forms := router.Group("/forms")
	forms.POST("", h.CreateForm)
	forms.GET("/:id", h.GetForm)
	forms.PUT("/:id/fields/:field", h.SetField)
	forms.POST("/:id/fields/:field/blur", h.BlurField)

	lookup := router.Group("/lookup")
	lookup.GET("/cep/:cep", h.LookupCEP)
	lookup.GET("/cbo/:code", h.LookupCBO)
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// CreateForm renders a new form session
func (h *Handlers) CreateForm(c *gin.Context) {
	var req models.CreateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	session, err := h.formService.Create(req)
	if errors.Is(err, form.ErrFieldNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, services.Snapshot(session))
}

func (h *Handlers) GetForm(c *gin.Context) {
	session, err := h.formService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.Snapshot(session))
}

// SetField types a value into one field
func (h *Handlers) SetField(c *gin.Context) {
	var req models.SetFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	session, err := h.formService.SetField(c.Param("id"), c.Param("field"), req.Value)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.Snapshot(session))
}

// BlurField moves focus out of a field. With ?wait=true the answer already
// carries the outcome of the lookups it started.
func (h *Handlers) BlurField(c *gin.Context) {
	wait := c.Query("wait") == "true"

	session, err := h.formService.Blur(c.Request.Context(), c.Param("id"), c.Param("field"), wait)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if !wait {
		status = http.StatusAccepted
	}
	c.JSON(status, services.Snapshot(session))
}

func (h *Handlers) LookupCEP(c *gin.Context) {
	record, err := h.lookupService.LookupAddress(c.Request.Context(), c.Param("cep"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *Handlers) LookupCBO(c *gin.Context) {
	record, err := h.lookupService.LookupOccupation(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func respondError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, services.ErrUnknownKind),
		errors.Is(err, services.ErrNoFields),
		errors.Is(err, form.ErrDuplicateID),
		errors.Is(err, services.ErrInvalidPostalCode),
		errors.Is(err, services.ErrInvalidOccupationCode):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrFormNotFound),
		errors.Is(err, form.ErrFieldNotFound),
		errors.Is(err, services.ErrPostalCodeNotFound),
		errors.Is(err, services.ErrOccupationNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrFormExpired):
		status = http.StatusGone
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	default:
		// anything left came from the upstream lookup services
		status = http.StatusBadGateway
		logger.Error("Upstream lookup failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
