package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/authz"
	"taskboard/internal/models"
	"taskboard/internal/repositories"
	"taskboard/internal/services"
)

type ProjectHandler struct {
	service services.ProjectService
}

func NewProjectHandler(service services.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project := &models.Project{
		OwnerID:     currentUserID(c),
		Name:        req.Name,
		Description: req.Description,
	}
	created, err := h.service.Create(c.Request.Context(), project)
	if err != nil {
		log.Printf("[project][create][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.service.ListByOwner(c.Request.Context(), currentUserID(c))
	if err != nil {
		log.Printf("[project][list][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GET /projects/:id
func (h *ProjectHandler) GetByID(c *gin.Context) {
	project, ok := h.loadOwned(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, project)
}

// PUT /projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	project, ok := h.loadOwned(c)
	if !ok {
		return
	}

	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), project.ID, &models.Project{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		log.Printf("[project][update][err] id=%d: %v", project.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update project"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	project, ok := h.loadOwned(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), project.ID); err != nil {
		log.Printf("[project][delete][err] id=%d: %v", project.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

// loadOwned fetches the project from the path param and enforces
// ownership; it writes the error response itself.
func (h *ProjectHandler) loadOwned(c *gin.Context) (*models.Project, bool) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return nil, false
	}
	project, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == repositories.ErrProjectNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		} else {
			log.Printf("[project][load][err] id=%d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load project"})
		}
		return nil, false
	}
	if !authz.CanManageProject(currentUserID(c), project) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your project"})
		return nil, false
	}
	return project, true
}
