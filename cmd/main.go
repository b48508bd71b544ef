package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"go_template_202610/internal/config"
)

type depsKey struct{}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "template",
		Usage: "service template bootstrap",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to config file",
				Aliases: []string{"c"},
				EnvVars: []string{"APP_CONFIG"},
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enables debug logging and request dumps",
			},
		},
		Before: func(ctx *cli.Context) error {
			cfg, err := config.Load(ctx.String("config"))
			if err != nil {
				return fmt.Errorf("cannot load config: %w", err)
			}

			if ctx.Bool("debug") {
				cfg.Logging.Level = "debug"
				cfg.HttpClient.Debug = true
			}

			deps, err := initDependencies(cfg)
			if err != nil {
				return fmt.Errorf("cannot init dependencies: %w", err)
			}

			ctx.Context = context.WithValue(ctx.Context, depsKey{}, deps)
			return nil
		},
		After: func(ctx *cli.Context) error {
			if deps, ok := ctx.Context.Value(depsKey{}).(*Dependencies); ok {
				deps.Close()
			}
			return nil
		},
		Commands: []*cli.Command{
			NewHttpCommand(),
			NewDatabaseCommand(),
		},
	}
}

// getDeps 从上下文取出依赖容器，Before 中已保证存在
func getDeps(ctx *cli.Context) *Dependencies {
	return ctx.Context.Value(depsKey{}).(*Dependencies)
}
