package main

import (
	"fmt"
	"os"
	"strings"

	"neocrack/internal/core/model"
	"neocrack/internal/core/options"
	"neocrack/internal/core/reporter"
	"neocrack/internal/core/scanner/brute"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// emptyToken 在字典中表示空字符串 (空密码)
const emptyToken = "%empty%"

// loadList 加载列表 (支持文件路径或逗号分隔字符串)
// 空行和空项会被忽略，需要测试空值时使用 %empty%
func loadList(input string) ([]string, error) {
	if input == "" {
		return nil, nil
	}

	var items []string
	// 1. 尝试作为文件读取
	info, err := os.Stat(input)
	if err == nil && !info.IsDir() {
		content, err := os.ReadFile(input)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", input, err)
		}
		// 按行分割，支持 \r\n 和 \n
		items = strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	} else {
		// 2. 作为逗号分隔字符串处理
		items = strings.Split(input, ",")
	}

	var result []string
	for _, item := range items {
		switch item = strings.TrimSpace(item); item {
		case "":
		case emptyToken:
			result = append(result, "")
		default:
			result = append(result, item)
		}
	}
	return result, nil
}

// listFlag 读取列表参数；显式传入空字符串 (--pass "") 表示只测试空值
func listFlag(cmd *cobra.Command, name, value string) ([]string, error) {
	if value == "" && cmd.Flags().Changed(name) {
		return []string{""}, nil
	}
	return loadList(value)
}

// prepareTask 校验参数并转换为任务
func prepareTask(opt options.TaskOption) (*model.Task, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	return opt.ToTask(), nil
}

// NewBruteCmd 创建 brute 子命令
func NewBruteCmd() *cobra.Command {
	var (
		target    string
		plugin    string
		users     string
		passwords string
		output    string
		scanAll   bool
	)

	cmd := &cobra.Command{
		Use:   "brute",
		Short: "使用字典对 MySQL/PostgreSQL 执行弱口令爆破",
		Long: `对目标逐个尝试字典中的凭据。
未指定字典时使用内置 Top 用户名/密码。用户名、密码均支持文件路径或逗号分隔列表。
`,
		Example: `  # MySQL (内置字典)
  neocrack brute -s mysql -t 192.168.1.1

  # PostgreSQL 非默认端口，结果写入文件
  neocrack brute -s pgsql -t 192.168.1.1:15432 -u postgres --pass pass.txt -o loot.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := rt.registry.Get(plugin)
			if err != nil {
				return err
			}

			opts := options.NewBruteOptions()
			opts.Target = target
			opts.Plugin = plugin
			opts.Timeout = rt.cfg.Brute.Timeout
			opts.StopOnSuccess = rt.cfg.Brute.StopOnSuccess && !scanAll
			opts.Output = output

			if opts.Users, err = listFlag(cmd, "users", users); err != nil {
				return fmt.Errorf("failed to load users: %w", err)
			}
			if opts.Passwords, err = listFlag(cmd, "pass", passwords); err != nil {
				return fmt.Errorf("failed to load passwords: %w", err)
			}
			task, err := prepareTask(opts)
			if err != nil {
				return err
			}
			if err := p.Setup(opts); err != nil {
				return fmt.Errorf("plugin setup failed: %w", err)
			}

			reporters := []reporter.Reporter{reporter.NewConsoleReporter()}
			if output != "" {
				fr, err := reporter.NewFileReporter(output)
				if err != nil {
					return err
				}
				reporters = append(reporters, fr)
			}

			pterm.Info.Printf("Starting brute force on %s (%s, timeout %s)...\n", target, plugin, opts.Timeout)

			result, err := brute.NewBruteScanner(rt.registry).Run(cmd.Context(), task)
			if err != nil {
				return fmt.Errorf("execution failed: %w", err)
			}

			return reporter.NewMultiReporter(reporters...).Report(cmd.Context(), result)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&target, "target", "t", "", "目标地址 (host 或 host:port)")
	flags.StringVarP(&plugin, "service", "s", "", "插件名称 (mysql/pgsql)")
	flags.StringVarP(&users, "users", "u", "", "用户名列表 (文件或逗号分隔, %empty% 表示空值)")
	flags.StringVar(&passwords, "pass", "", "密码列表 (文件或逗号分隔, %empty% 表示空密码)")
	flags.StringVarP(&output, "output", "o", "", "结果输出文件 (.json/.yaml)")
	flags.BoolVarP(&scanAll, "all", "a", false, "尝试所有凭据 (默认: 找到一个成功后即停止)")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("service")

	return cmd
}
