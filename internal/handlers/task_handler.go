package handlers

import (
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/authz"
	"taskboard/internal/models"
	"taskboard/internal/repositories"
	"taskboard/internal/services"
)

type TaskHandler struct {
	service  services.TaskService
	projects repositories.ProjectRepository
	images   services.ImageService

	filesRoot string
}

func NewTaskHandler(service services.TaskService, projects repositories.ProjectRepository, images services.ImageService, filesRoot string) *TaskHandler {
	return &TaskHandler{service: service, projects: projects, images: images, filesRoot: filesRoot}
}

// POST /tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req struct {
		ProjectID   int64               `json:"project_id" binding:"required"`
		AssigneeID  *int64              `json:"assigned_user_id"`
		Title       string              `json:"title" binding:"required"`
		Description string              `json:"description"`
		Priority    models.TaskPriority `json:"priority"` // low|medium|high
		DueDate     string              `json:"due_date"` // YYYY-MM-DD
		Status      models.TaskStatus   `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := currentUserID(c)

	project, err := h.projects.FindByID(c.Request.Context(), req.ProjectID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	if !authz.CanManageProject(userID, project) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to create tasks in this project."})
		return
	}

	due, ok := parseDueDate(c, req.DueDate)
	if !ok {
		return
	}

	task := &models.Task{
		ProjectID:   req.ProjectID,
		OwnerID:     userID,
		AssigneeID:  req.AssigneeID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     due,
		Status:      req.Status,
	}
	created, err := h.service.Create(c.Request.Context(), userID, task)
	if err != nil {
		log.Printf("[task][create][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create task"})
		return
	}
	log.Printf("[task][create][ok] id=%d project=%d title=%q", created.ID, created.ProjectID, created.Title)
	c.JSON(http.StatusCreated, created)
}

// GET /tasks
func (h *TaskHandler) List(c *gin.Context) {
	userID := currentUserID(c)
	filter := models.TaskFilter{}

	if pid, err := paramQueryInt64(c, "project_id"); err == nil {
		filter.ProjectID = &pid
	}
	if s := c.Query("status"); s != "" {
		status := models.TaskStatus(s)
		filter.Status = &status
	}
	if p := c.Query("priority"); p != "" {
		priority := models.TaskPriority(p)
		filter.Priority = &priority
	}

	tasks, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[task][list][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tasks"})
		return
	}

	// ownership filtering happens after the generic filter query
	visible := make([]models.Task, 0, len(tasks))
	for i := range tasks {
		if h.canView(c, userID, &tasks[i]) {
			visible = append(visible, tasks[i])
		}
	}
	c.JSON(http.StatusOK, visible)
}

// GET /tasks/:id
func (h *TaskHandler) GetByID(c *gin.Context) {
	task, ok := h.loadVisible(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, task)
}

// PUT /tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	task, ok := h.loadManaged(c)
	if !ok {
		return
	}

	var req struct {
		Title       string              `json:"title" binding:"required"`
		Description string              `json:"description"`
		Priority    models.TaskPriority `json:"priority"`
		DueDate     string              `json:"due_date"`
		Status      models.TaskStatus   `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	due, ok := parseDueDate(c, req.DueDate)
	if !ok {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), currentUserID(c), task.ID, &models.Task{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     due,
		Status:      req.Status,
	})
	if err != nil {
		log.Printf("[task][update][err] id=%d: %v", task.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update task"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	task, ok := h.loadManaged(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), currentUserID(c), task.ID); err != nil {
		log.Printf("[task][delete][err] id=%d: %v", task.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// POST /tasks/:id/assign
func (h *TaskHandler) Assign(c *gin.Context) {
	task, ok := h.loadManaged(c)
	if !ok {
		return
	}

	var req struct {
		AssigneeID int64 `json:"assigned_user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.Assign(c.Request.Context(), currentUserID(c), task.ID, req.AssigneeID)
	if err != nil {
		log.Printf("[task][assign][err] id=%d assignee=%d: %v", task.ID, req.AssigneeID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to assign task"})
		return
	}
	log.Printf("[task][assign][ok] id=%d assignee=%d", updated.ID, req.AssigneeID)
	c.JSON(http.StatusOK, updated)
}

// POST /tasks/:id/images
func (h *TaskHandler) UploadImage(c *gin.Context) {
	task, ok := h.loadVisible(c)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	relPath := h.images.StoragePath(models.ImageParentTask, task.ID, file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(h.filesRoot, relPath)); err != nil {
		log.Printf("[task][image][err] save task=%d: %v", task.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}

	image, err := h.images.Register(c.Request.Context(), currentUserID(c), &models.Image{
		ParentType:   models.ImageParentTask,
		ParentID:     task.ID,
		Path:         relPath,
		OriginalName: file.Filename,
		MimeType:     file.Header.Get("Content-Type"),
		Size:         file.Size,
	})
	if err != nil {
		log.Printf("[task][image][err] register task=%d: %v", task.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}
	c.JSON(http.StatusCreated, image)
}

// GET /tasks/:id/images
func (h *TaskHandler) ListImages(c *gin.Context) {
	task, ok := h.loadVisible(c)
	if !ok {
		return
	}
	images, err := h.images.ListByParent(c.Request.Context(), models.ImageParentTask, task.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list images"})
		return
	}
	c.JSON(http.StatusOK, images)
}

func (h *TaskHandler) canView(c *gin.Context, userID int64, task *models.Task) bool {
	project, err := h.projects.FindByID(c.Request.Context(), task.ProjectID)
	if err != nil {
		project = nil
	}
	return authz.CanViewTask(userID, task, project)
}

func (h *TaskHandler) loadVisible(c *gin.Context) (*models.Task, bool) {
	return h.load(c, authz.CanViewTask)
}

func (h *TaskHandler) loadManaged(c *gin.Context) (*models.Task, bool) {
	return h.load(c, authz.CanManageTask)
}

func (h *TaskHandler) load(c *gin.Context, allowed func(int64, *models.Task, *models.Project) bool) (*models.Task, bool) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return nil, false
	}
	task, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == repositories.ErrTaskNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		} else {
			log.Printf("[task][load][err] id=%d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load task"})
		}
		return nil, false
	}
	project, err := h.projects.FindByID(c.Request.Context(), task.ProjectID)
	if err != nil {
		project = nil
	}
	if !allowed(currentUserID(c), task, project) {
		c.JSON(http.StatusForbidden, gin.H{"error": "no access to this task"})
		return nil, false
	}
	return task, true
}

// parseDueDate accepts an empty value, a plain date or RFC3339; it
// writes the error response itself.
func parseDueDate(c *gin.Context, raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, true
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid due_date (YYYY-MM-DD or RFC3339)"})
	return nil, false
}
