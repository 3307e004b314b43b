package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/quincyapp/quincy/pkg/httpx"
	"github.com/quincyapp/quincy/pkg/logger"
)

// DevSessionHandler issues a session cookie for the org_id given in the query
// string, so local clients can exercise authenticated endpoints without a
// real identity provider. Mount it ONLY when Environment == development —
// it is an auth bypass by construction.
//
//	curl -c cookies.txt "http://localhost:8080/dev/session?org_id=<uuid>"
func DevSessionHandler(store sessions.Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orgIDStr := r.URL.Query().Get("org_id")
		if orgIDStr == "" {
			orgIDStr = uuid.New().String()
		}
		orgID, err := uuid.Parse(orgIDStr)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "org_id must be a UUID")
			return
		}

		session, err := store.Get(r, sessionName)
		if err != nil {
			log.WarnContext(r.Context(), "dev session: stale cookie replaced", "error", err)
		}
		session.Values[sessionOrgIDKey] = orgID.String()
		if err := store.Save(r, w, session); err != nil {
			log.ErrorContext(r.Context(), "dev session: save failed", "error", err)
			httpx.JSONError(w, http.StatusInternalServerError, "could not create session")
			return
		}

		httpx.JSON(w, http.StatusOK, map[string]string{"org_id": orgID.String()})
	}
}
