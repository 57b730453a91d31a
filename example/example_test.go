package example

import (
	"fmt"
	"io"
	"log"

	"github.com/viant/authly"
	"github.com/viant/authly/mock"
)

// Example runs the whole authorization code flow, the mock prompter
// stands in for the person approving access in a browser.
func Example() {
	server, err := mock.NewHTTPTestAuthorizationServer()
	if err != nil {
		log.Fatal(err)
	}
	defer server.Close()

	service, err := authly.New(authly.WithPrompter(&mock.Prompter{}))
	if err != nil {
		log.Fatal(err)
	}
	resourceURL := server.Issuer + "/resource"
	if err = service.Interpose(mock.NewTestConfig(server.Issuer, resourceURL)); err != nil {
		log.Fatal(err)
	}

	resp, err := service.Client().Get(resourceURL)
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(body))
	// Output: {"message":"This is a protected resource"}
}
