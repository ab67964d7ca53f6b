package main

import (
	"errors"
	"fmt"
	"time"

	"neocrack/internal/core/model"
	"neocrack/internal/core/options"
	"neocrack/internal/core/reporter"
	"neocrack/internal/core/scanner/brute"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const (
	exitCodeRejected = 1
	exitCodeError    = 2
)

// NewAttemptCmd 创建 attempt 子命令: 对单组凭据做一次认证
// 退出码: 0 认证成功, 1 凭据被拒绝, 2 参数错误/超时/中断
func NewAttemptCmd() *cobra.Command {
	var (
		target   string
		plugin   string
		username string
		password string
	)

	cmd := &cobra.Command{
		Use:   "attempt",
		Short: "对单组凭据执行一次认证",
		Example: `  neocrack attempt -s mysql -t 10.0.0.5 -u root --pass 123456
  neocrack attempt -s pgsql -t [::1]:5432 -u postgres --pass "" --timeout 2s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := rt.registry.Get(plugin)
			if err != nil {
				return &exitError{code: exitCodeError, msg: err.Error()}
			}

			opts := options.NewBruteOptions()
			opts.Target = target
			opts.Plugin = plugin
			opts.Users = []string{username}
			opts.Passwords = []string{password}
			opts.Timeout = rt.cfg.Brute.Timeout

			task, err := prepareTask(opts)
			if err != nil {
				return &exitError{code: exitCodeError, msg: err.Error()}
			}
			task.Type = model.TaskTypeAttempt
			if err := p.Setup(opts); err != nil {
				return &exitError{code: exitCodeError, msg: fmt.Sprintf("plugin setup failed: %v", err)}
			}

			creds := &model.Credentials{Target: target, Username: username, Password: password}

			result := &model.TaskResult{TaskID: task.ID, ExecutedAt: time.Now()}
			loot, err := p.Attempt(cmd.Context(), creds, task.Timeout)
			result.Attempts = 1
			result.CompletedAt = time.Now()

			switch {
			case errors.Is(err, brute.ErrTimeout):
				pterm.Warning.Printf("%s timed out after %s\n", target, task.Timeout)
				return &exitError{code: exitCodeError, msg: err.Error()}
			case err != nil:
				return &exitError{code: exitCodeError, msg: err.Error()}
			case loot == nil:
				pterm.Error.Printf("%s rejected %s\n", target, username)
				return &exitError{code: exitCodeRejected}
			}

			result.Status = model.TaskStatusSuccess
			result.Result = loot
			if err := reporter.NewConsoleReporter().Report(cmd.Context(), result); err != nil {
				return fmt.Errorf("report failed: %w", err)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&target, "target", "t", "", "目标地址 (host 或 host:port)")
	flags.StringVarP(&plugin, "service", "s", "", "插件名称 (mysql/pgsql)")
	flags.StringVarP(&username, "user", "u", "", "用户名")
	flags.StringVar(&password, "pass", "", "密码 (可为空)")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("service")

	return cmd
}
