package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/config"
	projectsvc "portfolio-backend/internal/services/projects"
)

type ProjectHandler struct {
	service *projectsvc.Service
	Cfg     config.Config
}

func NewProjectHandler(service *projectsvc.Service, cfg config.Config) *ProjectHandler {
	return &ProjectHandler{service: service, Cfg: cfg}
}

type createProjectRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	ClientID    string   `json:"clientId"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Services    []string `json:"services"`
}

// updateProjectRequest distinguishes an omitted services field (leave links and
// budget alone) from an empty one (clear links, zero the budget) through the
// slice pointer.
type updateProjectRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	StateID     *string   `json:"stateId"`
	ClientID    *string   `json:"clientId"`
	StartDate   *string   `json:"startDate"`
	EndDate     *string   `json:"endDate"`
	Services    *[]string `json:"services"`
}

func (h *ProjectHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	projects, err := h.service.List(activeOnly)
	if err != nil {
		respondServerError(c, h.Cfg.Production(), err)
		return
	}
	respondData(c, http.StatusOK, projects)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid project id")
		return
	}

	project, err := h.service.Get(id)
	if err != nil {
		respondError(c, http.StatusNotFound, "project not found")
		return
	}
	respondData(c, http.StatusOK, project)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "name is required")
		return
	}

	input := projectsvc.CreateInput{
		Name:        req.Name,
		Description: req.Description,
	}

	if req.ClientID != "" {
		clientID, err := uuid.Parse(req.ClientID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid clientId")
			return
		}
		input.ClientID = &clientID
	}
	var err error
	if input.StartDate, err = parseOptionalDate(req.StartDate); err != nil {
		respondError(c, http.StatusBadRequest, "invalid startDate, expected YYYY-MM-DD")
		return
	}
	if input.EndDate, err = parseOptionalDate(req.EndDate); err != nil {
		respondError(c, http.StatusBadRequest, "invalid endDate, expected YYYY-MM-DD")
		return
	}
	if input.ServiceIDs, err = parseServiceIDs(req.Services); err != nil {
		respondError(c, http.StatusBadRequest, "invalid service id in services")
		return
	}

	project, err := h.service.Create(input)
	if err != nil {
		if errors.Is(err, projectsvc.ErrStateNotSeeded) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondServerError(c, h.Cfg.Production(), err)
		return
	}

	respondData(c, http.StatusCreated, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid project id")
		return
	}

	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	input := projectsvc.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
	}

	if req.StateID != nil {
		stateID, err := uuid.Parse(*req.StateID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid stateId")
			return
		}
		input.StateID = &stateID
	}
	if req.ClientID != nil {
		clientID, err := uuid.Parse(*req.ClientID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid clientId")
			return
		}
		input.ClientID = &clientID
	}
	if req.StartDate != nil {
		if input.StartDate, err = parseOptionalDate(*req.StartDate); err != nil {
			respondError(c, http.StatusBadRequest, "invalid startDate, expected YYYY-MM-DD")
			return
		}
	}
	if req.EndDate != nil {
		if input.EndDate, err = parseOptionalDate(*req.EndDate); err != nil {
			respondError(c, http.StatusBadRequest, "invalid endDate, expected YYYY-MM-DD")
			return
		}
	}
	if req.Services != nil {
		serviceIDs, err := parseServiceIDs(*req.Services)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid service id in services")
			return
		}
		input.ServiceIDs = &serviceIDs
	}

	project, err := h.service.Update(id, input)
	if err != nil {
		if errors.Is(err, projectsvc.ErrNotFound) {
			respondError(c, http.StatusNotFound, "project not found")
			return
		}
		respondServerError(c, h.Cfg.Production(), err)
		return
	}

	respondData(c, http.StatusOK, project)
}

func (h *ProjectHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid project id")
		return
	}

	project, err := h.service.Deactivate(id)
	if err != nil {
		switch {
		case errors.Is(err, projectsvc.ErrNotFound):
			respondError(c, http.StatusNotFound, "project not found")
		case errors.Is(err, projectsvc.ErrStateNotSeeded):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondServerError(c, h.Cfg.Production(), err)
		}
		return
	}

	respondData(c, http.StatusOK, project)
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseServiceIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
