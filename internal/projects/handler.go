package projects

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	mw "github.com/mzekry/creatorhub/pkg/middleware"
	"github.com/mzekry/creatorhub/pkg/response"
)

// Handler handles HTTP requests for the unified my-projects feature
type Handler struct {
	service             *Service
	enableTestEndpoints bool
}

// NewHandler creates a new projects handler with service dependency injected
func NewHandler(service *Service, enableTestEndpoints bool) *Handler {
	return &Handler{service: service, enableTestEndpoints: enableTestEndpoints}
}

// Routes returns the router for my-projects endpoints. The auth middleware is
// applied to the session-based routes; the /test routes take an explicit user
// id and are gated by configuration instead.
func (h *Handler) Routes(auth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Get("/applications", h.ListProjects)
		r.Get("/applications/{campaignID}", h.GetCampaignView)
	})

	r.Get("/test/applications/{userID}", h.TestListProjects)
	r.Get("/test/applications/{userID}/campaign/{campaignID}", h.TestGetCampaignView)

	return r
}

// ListProjects handles GET /my-projects/applications
// @Summary      List my projects
// @Description  Get the unified list of campaigns the user created or applied to
// @Tags         my-projects
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse{data=ProjectListResponse}
// @Failure      401 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /my-projects/applications [get]
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := mw.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	h.listProjects(w, r, userID)
}

// GetCampaignView handles GET /my-projects/applications/{campaignID}
// @Summary      Get campaign view
// @Description  Get the role-specific view for one campaign: applicant list for owners, application status for applicants
// @Tags         my-projects
// @Produce      json
// @Security     BearerAuth
// @Param        campaignID path int true "Campaign ID"
// @Success      200 {object} response.APIResponse{data=CampaignView}
// @Failure      400 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /my-projects/applications/{campaignID} [get]
func (h *Handler) GetCampaignView(w http.ResponseWriter, r *http.Request) {
	userID, ok := mw.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	h.getCampaignView(w, r, userID)
}

// TestListProjects handles GET /my-projects/test/applications/{userID}.
// Development only: takes the user id from the path instead of the session.
func (h *Handler) TestListProjects(w http.ResponseWriter, r *http.Request) {
	if !h.enableTestEndpoints {
		response.Forbidden(w, "Test endpoints are disabled")
		return
	}

	h.listProjects(w, r, chi.URLParam(r, "userID"))
}

// TestGetCampaignView handles GET /my-projects/test/applications/{userID}/campaign/{campaignID}.
// Development only: takes the user id from the path instead of the session.
func (h *Handler) TestGetCampaignView(w http.ResponseWriter, r *http.Request) {
	if !h.enableTestEndpoints {
		response.Forbidden(w, "Test endpoints are disabled")
		return
	}

	h.getCampaignView(w, r, chi.URLParam(r, "userID"))
}

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request, userID string) {
	result, err := h.service.GetUserProjects(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		log.Printf("Error fetching projects for user %s: %v", userID, err)
		response.InternalError(w, "Failed to fetch projects")
		return
	}

	response.JSON(w, http.StatusOK, result)
}

func (h *Handler) getCampaignView(w http.ResponseWriter, r *http.Request, userID string) {
	campaignID, err := strconv.ParseInt(chi.URLParam(r, "campaignID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid campaign ID")
		return
	}

	result, err := h.service.GetCampaignView(r.Context(), userID, campaignID)
	if err != nil {
		switch {
		case errors.Is(err, ErrCampaignNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrNoRelationship):
			response.Forbidden(w, err.Error())
		default:
			log.Printf("Error fetching campaign %d for user %s: %v", campaignID, userID, err)
			response.InternalError(w, "Failed to fetch campaign details")
		}
		return
	}

	response.JSON(w, http.StatusOK, result)
}
