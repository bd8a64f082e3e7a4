package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dherbrich/oandash/internal/client/cli"
	"github.com/dherbrich/oandash/internal/client/config"
	"github.com/dherbrich/oandash/internal/logging"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
