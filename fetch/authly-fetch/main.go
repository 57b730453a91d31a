package main

import (
	"log"
	"os"

	"github.com/viant/authly/fetch"
)

func main() {
	if err := fetch.Run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
