/*
 * @author: Sun977
 * @date: 2026.02.10
 * @description: Cobra Root Command 定义
 */

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"neocrack/internal/config"
	"neocrack/internal/core/lib/network/dialer"
	"neocrack/internal/core/scanner/brute"
	"neocrack/internal/core/scanner/brute/protocol"
	"neocrack/internal/pkg/logger"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// runtime 命令执行期共享的对象，在 PersistentPreRunE 中初始化
type runtime struct {
	cfg      *config.Config
	registry *brute.Registry
}

var (
	cfgFile string
	rt      runtime
)

// exitError 携带进程退出码的错误
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string {
	return e.msg
}

var rootCmd = &cobra.Command{
	Use:   "neocrack",
	Short: "neocrack 数据库弱口令验证工具",
	Long: `neocrack 对 SQL 数据库服务做密码认证测试。
支持的插件: mysql (默认端口 3306), pgsql (默认端口 5432).

示例:
  neocrack plugins
  neocrack attempt -s mysql -t 192.168.1.10 -u root --pass 123456
  neocrack brute -s pgsql -t 192.168.1.10:15432 -u postgres --pass passwords.txt -o loot.json
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	// 全局初始化: 配置 -> 日志 -> 拨号器 -> 插件
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initRuntime(cmd)
	},
}

func init() {
	pFlags := rootCmd.PersistentFlags()
	pFlags.StringVar(&cfgFile, "config", "", "配置文件路径 (默认: ./configs/config.yaml)")
	pFlags.String("log-level", "", "日志级别 (debug, info, warn, error)")
	pFlags.String("proxy", "", "SOCKS5 代理 (e.g. socks5://127.0.0.1:1080)")
	pFlags.Duration("timeout", 0, "单次尝试超时 (e.g. 5s)")
	pFlags.String("pg-driver", "", "PostgreSQL 驱动 (pq/pgx)")

	rootCmd.AddCommand(NewPluginsCmd())
	rootCmd.AddCommand(NewAttemptCmd())
	rootCmd.AddCommand(NewBruteCmd())
}

// Execute 执行根命令
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		if exitErr.msg != "" {
			fmt.Fprintln(os.Stderr, exitErr.msg)
		}
		stop()
		os.Exit(exitErr.code)
	}

	fmt.Fprintln(os.Stderr, err)
	stop()
	os.Exit(exitCodeError)
}

// initRuntime 加载配置并初始化日志、拨号器和插件注册表
func initRuntime(cmd *cobra.Command) error {
	loader := config.NewConfigLoader(cfgFile, "NEOCRACK")

	// CLI flag 覆盖配置文件
	v := loader.Viper()
	flags := cmd.Flags()
	for key, flag := range map[string]string{
		"log.level":       "log-level",
		"proxy.url":       "proxy",
		"brute.timeout":   "timeout",
		"brute.pg_driver": "pg-driver",
	} {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	cfg, err := loader.LoadConfig()
	if err != nil {
		return err
	}

	initCLILogger(cfg.Log)

	d, err := dialer.FromURL(cfg.Proxy.URL, cfg.Brute.Timeout)
	if err != nil {
		return fmt.Errorf("invalid proxy: %w", err)
	}
	dialer.SetGlobalDialer(d)

	registry := brute.NewRegistry()
	protocol.Register(registry, cfg.Brute)

	rt = runtime{cfg: cfg, registry: registry}

	logger.WithFields(map[string]interface{}{
		"type":      logger.SystemLog,
		"plugins":   registry.Names(),
		"pg_driver": cfg.Brute.PGDriver,
		"proxy":     cfg.Proxy.URL != "",
	}).Debug("runtime initialized")
	return nil
}

// initCLILogger 初始化 CLI 模式下的日志，同时控制 pterm 输出
func initCLILogger(cfg *config.LogConfig) {
	switch cfg.Level {
	case "debug":
		pterm.EnableDebugMessages()
	case "warn", "error", "fatal":
		pterm.DisableDebugMessages()
		pterm.Info = *pterm.Info.WithWriter(io.Discard)
	default:
		pterm.DisableDebugMessages()
	}

	if _, err := logger.InitLogger(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
	}
}
