package handlers

import (
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"taskboard/internal/authz"
	"taskboard/internal/models"
	"taskboard/internal/repositories"
	"taskboard/internal/services"
)

type CommentHandler struct {
	service  services.CommentService
	tasks    services.TaskService
	projects repositories.ProjectRepository
	images   services.ImageService

	filesRoot string
}

func NewCommentHandler(service services.CommentService, tasks services.TaskService, projects repositories.ProjectRepository, images services.ImageService, filesRoot string) *CommentHandler {
	return &CommentHandler{service: service, tasks: tasks, projects: projects, images: images, filesRoot: filesRoot}
}

// GET /tasks/:id/comments
func (h *CommentHandler) ListByTask(c *gin.Context) {
	task, ok := h.loadTask(c)
	if !ok {
		return
	}
	comments, err := h.service.ListByTask(c.Request.Context(), task.ID)
	if err != nil {
		log.Printf("[comment][list][err] task=%d: %v", task.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list comments"})
		return
	}
	c.JSON(http.StatusOK, comments)
}

// POST /tasks/:id/comments
// Accepts either a JSON body or a multipart form with an optional
// "images" file list attached to the new comment.
func (h *CommentHandler) Create(c *gin.Context) {
	task, ok := h.loadTask(c)
	if !ok {
		return
	}

	var body string
	var files []*multipart.FileHeader
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		body = strings.TrimSpace(c.PostForm("body"))
		if form, err := c.MultipartForm(); err == nil {
			files = form.File["images"]
		}
	} else {
		var req struct {
			Body string `json:"body" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		body = req.Body
	}
	if body == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body is required"})
		return
	}

	userID := currentUserID(c)
	comment, err := h.service.Create(c.Request.Context(), userID, &models.Comment{
		TaskID: task.ID,
		UserID: userID,
		Body:   body,
	})
	if err != nil {
		log.Printf("[comment][create][err] task=%d: %v", task.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create comment"})
		return
	}

	// attachments are best-effort: the comment itself is already stored
	for _, file := range files {
		relPath := h.images.StoragePath(models.ImageParentComment, comment.ID, file.Filename)
		if err := c.SaveUploadedFile(file, filepath.Join(h.filesRoot, relPath)); err != nil {
			log.Printf("[comment][image][err] save comment=%d: %v", comment.ID, err)
			continue
		}
		image, err := h.images.Register(c.Request.Context(), userID, &models.Image{
			ParentType:   models.ImageParentComment,
			ParentID:     comment.ID,
			Path:         relPath,
			OriginalName: file.Filename,
			MimeType:     file.Header.Get("Content-Type"),
			Size:         file.Size,
		})
		if err != nil {
			log.Printf("[comment][image][err] register comment=%d: %v", comment.ID, err)
			continue
		}
		comment.Images = append(comment.Images, *image)
	}

	c.JSON(http.StatusCreated, comment)
}

// DELETE /comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}

	comment, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == repositories.ErrCommentNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load comment"})
		}
		return
	}

	task, err := h.tasks.GetByID(c.Request.Context(), comment.TaskID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load task"})
		return
	}
	project, err := h.projects.FindByID(c.Request.Context(), task.ProjectID)
	if err != nil {
		project = nil
	}
	if !authz.CanDeleteComment(currentUserID(c), comment, task, project) {
		c.JSON(http.StatusForbidden, gin.H{"error": "no access to this comment"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		log.Printf("[comment][delete][err] id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete comment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}

// loadTask resolves the task from the path and enforces visibility.
func (h *CommentHandler) loadTask(c *gin.Context) (*models.Task, bool) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return nil, false
	}
	task, err := h.tasks.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == repositories.ErrTaskNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load task"})
		}
		return nil, false
	}
	project, err := h.projects.FindByID(c.Request.Context(), task.ProjectID)
	if err != nil {
		project = nil
	}
	if !authz.CanViewTask(currentUserID(c), task, project) {
		c.JSON(http.StatusForbidden, gin.H{"error": "no access to this task"})
		return nil, false
	}
	return task, true
}
