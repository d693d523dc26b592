package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/models"
)

func TestProjectCreateWithServices(t *testing.T) {
	r, database, cfg := newTestServer(t, true)
	token := adminToken(t, database, cfg)

	web := models.Service{Designation: "Web Development", BasePrice: 1500, Active: true}
	require.NoError(t, database.Create(&web).Error)
	seo := models.Service{Designation: "SEO", BasePrice: 500, Active: true}
	require.NoError(t, database.Create(&seo).Error)

	project := createProject(t, r, token, "Company site", []string{web.ID.String(), seo.ID.String()})

	assert.Equal(t, 2000.00, project.BudgetTotal)
	assert.True(t, project.Active)
	require.NotNil(t, project.State)
	assert.Equal(t, models.StatePending, project.State.Code)
	assert.Len(t, project.Services, 2)
}

func TestProjectCreateWithoutSeededStates(t *testing.T) {
	r, database, cfg := newTestServer(t, false)
	token := adminToken(t, database, cfg)

	rec := doJSON(t, r, http.MethodPost, "/api/projetos", map[string]interface{}{"name": "Company site"}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}

func TestProjectCreateRejectsBadServiceID(t *testing.T) {
	r, database, cfg := newTestServer(t, true)
	token := adminToken(t, database, cfg)

	rec := doJSON(t, r, http.MethodPost, "/api/projetos", map[string]interface{}{
		"name":     "Company site",
		"services": []string{"not-a-uuid"},
	}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProjectUpdateOmittedServicesKeepsBudget(t *testing.T) {
	r, database, cfg := newTestServer(t, true)
	token := adminToken(t, database, cfg)

	web := models.Service{Designation: "Web Development", BasePrice: 1500, Active: true}
	require.NoError(t, database.Create(&web).Error)
	project := createProject(t, r, token, "Company site", []string{web.ID.String()})

	// No services key in the payload: links and budget stay as they are.
	rec := doJSON(t, r, http.MethodPut, "/api/projetos/"+project.ID, []byte(`{"name":"Renamed"}`), token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated projectPayload
	decodeData(t, rec, &updated)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 1500.00, updated.BudgetTotal)
	assert.Len(t, updated.Services, 1)
}

func TestProjectUpdateEmptyServicesClearsBudget(t *testing.T) {
	r, database, cfg := newTestServer(t, true)
	token := adminToken(t, database, cfg)

	web := models.Service{Designation: "Web Development", BasePrice: 1500, Active: true}
	require.NoError(t, database.Create(&web).Error)
	project := createProject(t, r, token, "Company site", []string{web.ID.String()})

	// An explicit empty list clears every association.
	rec := doJSON(t, r, http.MethodPut, "/api/projetos/"+project.ID, []byte(`{"services":[]}`), token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated projectPayload
	decodeData(t, rec, &updated)
	assert.Zero(t, updated.BudgetTotal)
	assert.Empty(t, updated.Services)
}

func TestProjectUpdateNotFound(t *testing.T) {
	r, database, cfg := newTestServer(t, true)
	token := adminToken(t, database, cfg)

	rec := doJSON(t, r, http.MethodPut, "/api/projetos/8b9f3e51-7a21-4e0f-b7bb-4a1c2a9ad001", []byte(`{"name":"x"}`), token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProjectDeactivateThenNotFound(t *testing.T) {
	r, database, cfg := newTestServer(t, true)
	token := adminToken(t, database, cfg)
	project := createProject(t, r, token, "Company site", nil)

	rec := doJSON(t, r, http.MethodPatch, "/api/projetos/"+project.ID+"/deactivate", nil, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var deactivated projectPayload
	decodeData(t, rec, &deactivated)
	assert.False(t, deactivated.Active)
	require.NotNil(t, deactivated.State)
	assert.Equal(t, models.StateDeactivated, deactivated.State.Code)

	rec = doJSON(t, r, http.MethodPatch, "/api/projetos/"+project.ID+"/deactivate", nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProjectListFiltersActive(t *testing.T) {
	r, database, cfg := newTestServer(t, true)
	token := adminToken(t, database, cfg)

	kept := createProject(t, r, token, "Kept", nil)
	dropped := createProject(t, r, token, "Dropped", nil)

	rec := doJSON(t, r, http.MethodPatch, "/api/projetos/"+dropped.ID+"/deactivate", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/projetos?active=true", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var projects []projectPayload
	decodeData(t, rec, &projects)
	require.Len(t, projects, 1)
	assert.Equal(t, kept.ID, projects[0].ID)

	rec = doJSON(t, r, http.MethodGet, "/api/projetos", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &projects)
	assert.Len(t, projects, 2)
}
