package handlers

import (
	"errors"
	"net/http"

	"portfolio/internal/contextutil"
	"portfolio/internal/service"
)

// ContributionsHandler handles HTTP requests for a GitHub contribution calendar.
type ContributionsHandler struct {
	contributionsService service.ContributionsService
}

// NewContributionsHandler creates a new ContributionsHandler.
func NewContributionsHandler(contributionsService service.ContributionsService) *ContributionsHandler {
	return &ContributionsHandler{
		contributionsService: contributionsService,
	}
}

// ServeHTTP handles GET /api/github-contributions?username=NAME.
//
// Responds 200 with {"contributions":[{date,count,level}],"total":N},
// 400 when the username is missing or malformed, and 500 with the upstream
// error message when no calendar could be fetched.
func (h *ContributionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}

	username := r.URL.Query().Get("username")
	if username == "" {
		writeError(w, http.StatusBadRequest, "Username is required", "")
		return
	}

	cal, err := h.contributionsService.GetContributions(ctx, username)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			writeError(w, http.StatusBadRequest, "Invalid username", validationErr.Error())
			return
		}
		logger.ErrorContext(ctx, "error fetching GitHub contributions", "username", username, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch contributions", err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, cal); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}
