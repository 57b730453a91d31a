package mock

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// defaultAuthorizeHandler handles /authorize requests
func (m *AuthorizationService) defaultAuthorizeHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if clientID := query.Get("client_id"); clientID != m.ClientID {
		http.Error(w, "Invalid client ID", http.StatusBadRequest)
		return
	}
	if responseType := query.Get("response_type"); responseType != "code" {
		http.Error(w, "Unsupported response type", http.StatusBadRequest)
		return
	}
	code := uuid.New().String()
	m.issueCode(code, query.Get("scope"))

	redirectURI := query.Get("redirect_uri")
	if redirectURI == "" {
		redirectURI = m.RedirectURI
	}
	redirectURL := fmt.Sprintf("%s?code=%s&state=%s", redirectURI, code, query.Get("state"))
	http.Redirect(w, r, redirectURL, http.StatusFound)
}
