package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/models"
)

type TaskHandler struct {
	DB  *gorm.DB
	Cfg config.Config
}

type taskRequest struct {
	ProjectID   string `json:"projectId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Completed   *bool  `json:"completed"`
}

func NewTaskHandler(db *gorm.DB, cfg config.Config) *TaskHandler {
	return &TaskHandler{DB: db, Cfg: cfg}
}

func (h *TaskHandler) List(c *gin.Context) {
	query := h.DB.Order("created_at desc")
	if projectID := c.Query("projectId"); projectID != "" {
		id, err := uuid.Parse(projectID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid projectId")
			return
		}
		query = query.Where("project_id = ?", id)
	}

	var tasks []models.Task
	if err := query.Find(&tasks).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}
	respondData(c, http.StatusOK, tasks)
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "projectId and title are required")
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid projectId")
		return
	}
	var project models.Project
	if err := h.DB.First(&project, "id = ?", projectID).Error; err != nil {
		respondError(c, http.StatusNotFound, "project not found")
		return
	}

	task := models.Task{
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
	}
	if task.DueDate, err = parseOptionalDate(req.DueDate); err != nil {
		respondError(c, http.StatusBadRequest, "invalid dueDate, expected YYYY-MM-DD")
		return
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	if err := h.DB.Create(&task).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}
	respondData(c, http.StatusCreated, task)
}

func (h *TaskHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid task id")
		return
	}

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "projectId and title are required")
		return
	}

	var task models.Task
	if err := h.DB.First(&task, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "task not found")
		return
	}

	task.Title = req.Title
	task.Description = req.Description
	if task.DueDate, err = parseOptionalDate(req.DueDate); err != nil {
		respondError(c, http.StatusBadRequest, "invalid dueDate, expected YYYY-MM-DD")
		return
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	if err := h.DB.Save(&task).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}
	respondData(c, http.StatusOK, task)
}

// Complete marks a task done without requiring the full payload.
func (h *TaskHandler) Complete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid task id")
		return
	}

	var task models.Task
	if err := h.DB.First(&task, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "task not found")
		return
	}

	task.Completed = true
	if err := h.DB.Save(&task).Error; err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}
	respondData(c, http.StatusOK, task)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid task id")
		return
	}

	result := h.DB.Delete(&models.Task{}, "id = ?", id)
	if result.Error != nil {
		respondServerError(c, h.Cfg.Production(), result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "task not found")
		return
	}
	respondMessage(c, http.StatusOK, "task deleted")
}
