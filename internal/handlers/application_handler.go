package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ashwannasleep/UX-Job-Tracker/internal/dtos"
	"github.com/ashwannasleep/UX-Job-Tracker/internal/services"
)

type ApplicationHandler struct {
	Service *services.ApplicationService
	Log     *zap.Logger
}

func NewApplicationHandler(svc *services.ApplicationService, log *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{Service: svc, Log: log}
}

// GetAll is GET /api/applications
func (h *ApplicationHandler) GetAll(c *gin.Context) {
	apps, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, h.Log, err, "Failed to fetch applications")
		return
	}
	c.JSON(http.StatusOK, apps)
}

// GetByID is GET /api/applications/:id
func (h *ApplicationHandler) GetByID(c *gin.Context) {
	app, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Log, err, "Failed to fetch application")
		return
	}
	c.JSON(http.StatusOK, app)
}

// Create is POST /api/applications
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req dtos.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	app, err := h.Service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.Log, err, "Failed to create application")
		return
	}
	c.JSON(http.StatusCreated, app)
}

// Update is PUT /api/applications/:id
func (h *ApplicationHandler) Update(c *gin.Context) {
	var req dtos.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	app, err := h.Service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.Log, err, "Failed to update application")
		return
	}
	c.JSON(http.StatusOK, app)
}

// Delete is DELETE /api/applications/:id
func (h *ApplicationHandler) Delete(c *gin.Context) {
	existed, err := h.Service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Log, err, "Failed to delete application")
		return
	}
	if !existed {
		c.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted successfully"})
}

// GetByStatus is GET /api/applications/status/:status
func (h *ApplicationHandler) GetByStatus(c *gin.Context) {
	apps, err := h.Service.GetByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		respondError(c, h.Log, err, "Failed to fetch applications by status")
		return
	}
	c.JSON(http.StatusOK, apps)
}

// Search is GET /api/applications/search/:query
func (h *ApplicationHandler) Search(c *gin.Context) {
	apps, err := h.Service.Search(c.Request.Context(), c.Param("query"))
	if err != nil {
		respondError(c, h.Log, err, "Failed to search applications")
		return
	}
	c.JSON(http.StatusOK, apps)
}

// Stats is GET /api/stats
func (h *ApplicationHandler) Stats(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context())
	if err != nil {
		respondError(c, h.Log, err, "Failed to fetch statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}
