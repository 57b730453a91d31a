// Package authly transparently supplies OAuth2 bearer authentication for
// outgoing HTTP requests to registered endpoints.
//
// The package glues the endpoint registry, the attribute keyed credential
// store and the interactive authorization code flow behind a single entry
// point. In practice it is used two ways:
//  1. Client – returns an *http.Client whose transport authorizes every
//     request to an interposed URL and
//  2. Authorize – resolves the Authorization header value for one URL.
//
// Example:
//
//	service, _ := authly.New(authly.WithStore(store.NewFile(credURL)))
//	_ = service.Interpose(&endpoint.Config{ /* … */ })
//	resp, _ := service.Client().Get("https://api.example.com/data")
package authly
