package main

import (
	"fmt"
	"os"

	"github.com/limbo/chai/internal/app"
	"github.com/limbo/chai/internal/cli"
	"github.com/limbo/chai/internal/service"
	"github.com/limbo/chai/pkg/cleanup"
	"github.com/limbo/chai/pkg/config"
	"github.com/limbo/chai/pkg/logger"
)

func main() {
	service.InitValidator()
	cfg := config.New()
	logger.Init(logger.Options{
		Level: "warn",
		Path:  cfg.GetString("LOG_PATH"),
	})

	load := func() (*app.App, error) {
		return app.Build(cfg)
	}
	err := cli.NewRootCommand(load).Execute()
	cleanup.CleanUp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
