package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/models"
)

func TestContactSubmitStoresMessageWithMeta(t *testing.T) {
	r, database, _ := newTestServer(t, true)

	rec := doJSON(t, r, http.MethodPost, "/api/contact", map[string]string{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"subject": "Hello",
		"message": "I would like a quote.",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var stored models.ContactMessage
	require.NoError(t, database.First(&stored).Error)
	assert.Equal(t, "Visitor", stored.Name)
	assert.False(t, stored.Read)
	assert.Contains(t, string(stored.Meta), "ip")
}

func TestContactSubmitValidatesPayload(t *testing.T) {
	r, _, _ := newTestServer(t, true)

	rec := doJSON(t, r, http.MethodPost, "/api/contact", map[string]string{
		"name":  "Visitor",
		"email": "not-an-email",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactSubmitRateLimited(t *testing.T) {
	r, _, cfg := newTestServer(t, true)

	payload := map[string]string{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"message": "hi",
	}
	for i := 0; i < cfg.ContactMaxPerHour; i++ {
		rec := doJSON(t, r, http.MethodPost, "/api/contact", payload, "")
		require.Equal(t, http.StatusCreated, rec.Code, "request %d should pass", i+1)
	}

	rec := doJSON(t, r, http.MethodPost, "/api/contact", payload, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestContactAdminListAndMarkRead(t *testing.T) {
	r, database, cfg := newTestServer(t, true)
	token := adminToken(t, database, cfg)

	rec := doJSON(t, r, http.MethodPost, "/api/contact", map[string]string{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"message": "hi",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/contact?unread=true", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var messages []models.ContactMessage
	decodeData(t, rec, &messages)
	require.Len(t, messages, 1)

	rec = doJSON(t, r, http.MethodPatch, "/api/contact/"+messages[0].ID.String()+"/read", nil, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, r, http.MethodGet, "/api/contact?unread=true", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &messages)
	assert.Empty(t, messages)
}

func TestContactDelete(t *testing.T) {
	r, database, cfg := newTestServer(t, true)
	token := adminToken(t, database, cfg)

	rec := doJSON(t, r, http.MethodPost, "/api/contact", map[string]string{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"message": "hi",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var stored models.ContactMessage
	require.NoError(t, database.First(&stored).Error)

	rec = doJSON(t, r, http.MethodDelete, "/api/contact/"+stored.ID.String(), nil, token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodDelete, "/api/contact/"+stored.ID.String(), nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
