package fetch

import (
	"context"
	"os"

	"github.com/jessevdk/go-flags"
)

func Run(args []string) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	ctx := context.Background()
	service, err := New(ctx, options)
	if err != nil {
		return err
	}
	return service.Fetch(ctx, os.Stdout)
}
