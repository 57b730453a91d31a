package mock

import (
	"net/http"
)

// Handler routes HTTP requests to the appropriate mock OAuth2 server endpoints.
type Handler struct {
	// Server is the mock authorization server with endpoint handlers.
	Server *AuthorizationService
}

// ServeHTTP dispatches incoming HTTP requests based on URL path.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/authorize":
		if h.Server.AuthorizeHandler != nil {
			h.Server.AuthorizeHandler(w, r)
		} else {
			h.Server.defaultAuthorizeHandler(w, r)
		}
	case "/token":
		if h.Server.TokenHandler != nil {
			h.Server.TokenHandler(w, r)
		} else {
			h.Server.defaultTokenHandler(w, r)
		}
	case "/resource":
		if h.Server.ResourceHandler != nil {
			h.Server.ResourceHandler(w, r)
		} else {
			h.Server.defaultResourceHandler(w, r)
		}
	default:
		http.NotFound(w, r)
	}
}
