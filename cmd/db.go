package main

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"go_template_202610/pkg/database"
)

// NewDatabaseCommand 数据库运维命令
func NewDatabaseCommand() *cli.Command {
	return &cli.Command{
		Name:    "database",
		Usage:   "database operations",
		Aliases: []string{"db"},
		Subcommands: []*cli.Command{
			{
				Name:  "ping",
				Usage: "check database connectivity",
				Flags: []cli.Flag{
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "ping timeout",
						Value: 5 * time.Second,
					},
				},
				Action: func(ctx *cli.Context) error {
					db, err := getDeps(ctx).DB()
					if err != nil {
						return err
					}

					pingCtx, cancel := context.WithTimeout(ctx.Context, ctx.Duration("timeout"))
					defer cancel()
					if err := database.Ping(pingCtx, db); err != nil {
						return fmt.Errorf("数据库不可用: %w", err)
					}

					_, err = fmt.Fprintln(ctx.App.Writer, "ok")
					return err
				},
			},
		},
	}
}
