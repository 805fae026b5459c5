package projects

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "github.com/mzekry/creatorhub/pkg/middleware"
	"github.com/mzekry/creatorhub/pkg/response"
)

// authAs returns a middleware that injects a fixed user id, standing in for
// the JWT middleware in tests.
func authAs(userID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), mw.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func doRequest(t *testing.T, handler http.Handler, path string) (*httptest.ResponseRecorder, response.APIResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var body response.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestHandler_ListProjects(t *testing.T) {
	svc, _, _, _ := newTestService()
	h := NewHandler(svc, false)
	router := h.Routes(authAs("brand_user_001"))

	rec, body := doRequest(t, router, "/applications")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)

	data, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), data["total_campaigns"])
	assert.Equal(t, float64(2), data["campaigns_as_owner"])
	assert.Equal(t, float64(0), data["campaigns_as_applicant"])
}

func TestHandler_ListProjects_UnknownUser(t *testing.T) {
	svc, _, _, _ := newTestService()
	h := NewHandler(svc, false)
	router := h.Routes(authAs("ghost"))

	rec, body := doRequest(t, router, "/applications")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
}

func TestHandler_GetCampaignView_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		path     string
		wantCode int
	}{
		{"owner view", "brand_user_001", "/applications/1", http.StatusOK},
		{"applicant view", "creator_user_001", "/applications/2", http.StatusOK},
		{"no relationship", "creator_user_002", "/applications/2", http.StatusForbidden},
		{"unknown campaign", "brand_user_001", "/applications/999", http.StatusNotFound},
		{"malformed id", "brand_user_001", "/applications/abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := newTestService()
			h := NewHandler(svc, false)
			router := h.Routes(authAs(tt.userID))

			rec, _ := doRequest(t, router, tt.path)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_GetCampaignView_OwnerPayload(t *testing.T) {
	svc, _, _, _ := newTestService()
	h := NewHandler(svc, false)
	router := h.Routes(authAs("brand_user_001"))

	rec, body := doRequest(t, router, "/applications/1")

	require.Equal(t, http.StatusOK, rec.Code)
	data, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "owner", data["user_role"])
	applicants, ok := data["applicants"].([]interface{})
	require.True(t, ok)
	assert.Len(t, applicants, 2)
	_, hasDetails := data["application_details"]
	assert.False(t, hasDetails)
}

func TestHandler_TestEndpointsDisabled(t *testing.T) {
	svc, _, _, _ := newTestService()
	h := NewHandler(svc, false)
	router := h.Routes(authAs("brand_user_001"))

	for _, path := range []string{
		"/test/applications/brand_user_001",
		"/test/applications/brand_user_001/campaign/1",
	} {
		rec, body := doRequest(t, router, path)
		assert.Equal(t, http.StatusForbidden, rec.Code, path)
		require.NotNil(t, body.Error)
		assert.Equal(t, "FORBIDDEN", body.Error.Code)
	}
}

func TestHandler_TestEndpointsEnabled(t *testing.T) {
	svc, _, _, _ := newTestService()
	h := NewHandler(svc, true)
	// No auth on the bypass routes: the user id comes from the path.
	router := h.Routes(mw.Auth("test-secret"))

	rec, body := doRequest(t, router, "/test/applications/creator_user_001")
	assert.Equal(t, http.StatusOK, rec.Code)
	data, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(3), data["total_campaigns"])

	rec, body = doRequest(t, router, "/test/applications/creator_user_001/campaign/2")
	assert.Equal(t, http.StatusOK, rec.Code)
	data, ok = body.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "applicant", data["user_role"])
}

func TestHandler_AuthRequired(t *testing.T) {
	svc, _, _, _ := newTestService()
	h := NewHandler(svc, false)
	router := h.Routes(mw.Auth("test-secret"))

	rec, body := doRequest(t, router, "/applications")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
}
