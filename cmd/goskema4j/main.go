package main

import (
	"os"

	"github.com/reoring/goskema4j/internal/cli"
	"github.com/reoring/goskema4j/internal/config"
	"github.com/reoring/goskema4j/internal/logger"
)

func main() {
	log := logger.New(nil)
	cfg, err := config.Load()
	if err != nil {
		log.Error("cannot load configuration", "err", err)
		os.Exit(cli.ExitCommandError)
	}
	if err := cli.NewRootCommand(cfg).Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(cli.GetExitCode(err))
	}
}
