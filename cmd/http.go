package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

// NewHttpCommand 出站请求调试命令，响应体原样输出
func NewHttpCommand() *cli.Command {
	return &cli.Command{
		Name:  "http",
		Usage: "issue outbound requests through the shared client",
		Subcommands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "GET a url and print the response body",
				ArgsUsage: "<url>",
				Action: func(ctx *cli.Context) error {
					if ctx.NArg() != 1 {
						return cli.ShowSubcommandHelp(ctx)
					}
					body, err := getDeps(ctx).HttpClient.DoGet(ctx.Args().Get(0))
					if err != nil {
						return err
					}
					_, err = fmt.Fprint(ctx.App.Writer, body)
					return err
				},
			},
			{
				Name:      "post",
				Usage:     "POST a json body and print the response body",
				ArgsUsage: "<url> <json | @file | ->",
				Action: func(ctx *cli.Context) error {
					if ctx.NArg() != 2 {
						return cli.ShowSubcommandHelp(ctx)
					}
					payload, err := readPayload(ctx.Args().Get(1), ctx.App.Reader)
					if err != nil {
						return err
					}
					body, err := getDeps(ctx).HttpClient.DoPost(ctx.Args().Get(0), payload)
					if err != nil {
						return err
					}
					_, err = fmt.Fprint(ctx.App.Writer, body)
					return err
				},
			},
		},
	}
}

// readPayload 支持三种来源：字面量、@文件、- 标准输入
func readPayload(arg string, stdin io.Reader) (string, error) {
	switch {
	case arg == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("读取标准输入失败: %w", err)
		}
		return string(data), nil
	case strings.HasPrefix(arg, "@"):
		data, err := os.ReadFile(strings.TrimPrefix(arg, "@"))
		if err != nil {
			return "", fmt.Errorf("读取请求体文件失败: %w", err)
		}
		return string(data), nil
	default:
		return arg, nil
	}
}
