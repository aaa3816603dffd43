// meshfold finds the groups of edge-connected triangles in a binary STL mesh.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Faultbox/meshfold/internal/config"
	"github.com/Faultbox/meshfold/internal/logger"
	"github.com/Faultbox/meshfold/internal/server"
)

func main() {
	config.ParseFlags()
	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	if command == "help" {
		printUsage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	switch command {
	case "groups":
		err = cmdGroups(cfg, args)
	case "info":
		err = cmdInfo(cfg, args)
	case "serve":
		err = cmdServe(cfg)
	case "init-config":
		err = cmdInitConfig(cfg, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error(command+" failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshfold - find edge-connected triangle groups in STL meshes

Usage:
  meshfold [flags] <command> [args]

Commands:
  groups [file.stl|-]      Find connected groups and print the report
  info [file.stl|-]        Show header, counts, edge lengths and bounds
  serve                    Start the HTTP API
  init-config [path]       Write the effective config as YAML

Flags:
  -config <path>           Config file
  -debug                   Debug logging and adjacency trace
  -trace                   Log every discovered adjacency
  -format text|json|yaml   Report format
  -out <path>              Write the report to a file
  -addr <host:port>        HTTP listen address

Examples:
  meshfold groups part.stl
  meshfold -trace -format json groups part.stl.gz
  meshfold groups < part.stl
  meshfold -addr :9000 serve`)
}

func cmdServe(cfg *config.Config) error {
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}

func cmdInitConfig(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Printf("Config written to %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
		return nil
	}

	if err := cfg.SaveTo(args[0]); err != nil {
		return err
	}
	fmt.Printf("Config written to %s\n", args[0])
	return nil
}
