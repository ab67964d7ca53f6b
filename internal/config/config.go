/**
 * 配置定义
 * @author: sun977
 * @date: 2026.02.10
 * @description: neocrack 配置结构体及默认值，负责日志、爆破与代理相关配置
 */
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config 全局配置
type Config struct {
	// 应用配置
	App *AppConfig `yaml:"app" mapstructure:"app"`

	// 日志配置
	Log *LogConfig `yaml:"log" mapstructure:"log"`

	// 爆破配置
	Brute *BruteConfig `yaml:"brute" mapstructure:"brute"`

	// 代理配置
	Proxy *ProxyConfig `yaml:"proxy" mapstructure:"proxy"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name        string `yaml:"name" mapstructure:"name"`               // 应用名称
	Version     string `yaml:"version" mapstructure:"version"`         // 应用版本
	Environment string `yaml:"environment" mapstructure:"environment"` // 运行环境
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `yaml:"level" mapstructure:"level"`             // 日志级别 (debug/info/warn/error)
	Format     string `yaml:"format" mapstructure:"format"`           // 日志格式 (json/text)
	Output     string `yaml:"output" mapstructure:"output"`           // 日志输出 (stdout/stderr/file)
	FilePath   string `yaml:"file_path" mapstructure:"file_path"`     // 日志文件路径
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"`       // 最大文件大小（MB）
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"` // 最大备份数
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"`         // 最大保留天数
	Compress   bool   `yaml:"compress" mapstructure:"compress"`       // 是否压缩
	Caller     bool   `yaml:"caller" mapstructure:"caller"`           // 是否显示调用者信息
}

// BruteConfig 爆破配置
type BruteConfig struct {
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`                 // 单次尝试超时 (连接+认证)
	StopOnSuccess bool          `yaml:"stop_on_success" mapstructure:"stop_on_success"` // 找到一组凭据后停止
	PGDriver      string        `yaml:"pg_driver" mapstructure:"pg_driver"`             // PostgreSQL 驱动 (pq/pgx)
	PGSSLMode     string        `yaml:"pg_sslmode" mapstructure:"pg_sslmode"`           // PostgreSQL sslmode
}

// ProxyConfig 出站代理配置
type ProxyConfig struct {
	URL string `yaml:"url" mapstructure:"url"` // socks5://[user:pass@]host:port，为空则直连
}

const (
	PGDriverPQ  = "pq"
	PGDriverPGX = "pgx"
)

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		App: &AppConfig{
			Name:        "neocrack",
			Version:     "1.0.0",
			Environment: "development",
		},
		Log: &LogConfig{
			Level:      "info",
			Format:     "text",
			Output:     "stdout",
			MaxSize:    100,
			MaxBackups: 5,
			MaxAge:     30,
		},
		Brute: &BruteConfig{
			Timeout:       5 * time.Second,
			StopOnSuccess: true,
			PGDriver:      PGDriverPQ,
			PGSSLMode:     "disable",
		},
		Proxy: &ProxyConfig{},
	}
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.Log == nil || c.Brute == nil {
		return fmt.Errorf("log and brute sections are required")
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}

	if c.Brute.Timeout <= 0 {
		return fmt.Errorf("brute.timeout must be positive, got %s", c.Brute.Timeout)
	}

	switch c.Brute.PGDriver {
	case PGDriverPQ, PGDriverPGX:
	default:
		return fmt.Errorf("invalid brute.pg_driver: %s (pq/pgx)", c.Brute.PGDriver)
	}

	switch c.Brute.PGSSLMode {
	case "disable", "require", "verify-ca", "verify-full":
	case "allow", "prefer":
		// lib/pq 不支持协商式 sslmode
		if c.Brute.PGDriver == PGDriverPQ {
			return fmt.Errorf("brute.pg_sslmode %s requires pg_driver pgx", c.Brute.PGSSLMode)
		}
	default:
		return fmt.Errorf("invalid brute.pg_sslmode: %s", c.Brute.PGSSLMode)
	}

	if c.Proxy != nil && c.Proxy.URL != "" && !strings.HasPrefix(c.Proxy.URL, "socks5://") {
		return fmt.Errorf("invalid proxy.url: only socks5:// is supported")
	}

	return nil
}
