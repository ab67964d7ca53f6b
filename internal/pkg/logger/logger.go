// 日志管理器
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"neocrack/internal/config"
)

// LogType 日志类型，作为 "type" 字段写入
type LogType string

const (
	// SystemLog 系统日志 - 启动、配置加载
	SystemLog LogType = "system"
	// BruteLog 爆破日志 - 单次凭据尝试及结果
	BruteLog LogType = "brute"
)

// LoggerManager 日志管理器
type LoggerManager struct {
	logger *logrus.Logger
	config *config.LogConfig
}

// LoggerInstance 全局日志实例
var LoggerInstance *LoggerManager

// InitLogger 初始化日志管理器
// 根据配置初始化 logrus 实例，支持多种输出方式和格式
func InitLogger(cfg *config.LogConfig) (*LoggerManager, error) {
	if cfg == nil {
		return nil, fmt.Errorf("log config cannot be nil")
	}

	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		// 解析失败默认使用 info
		level = logrus.InfoLevel
		logger.Warnf("Invalid log level '%s', using 'info' as default", cfg.Level)
	}
	logger.SetLevel(level)

	if err := setLogFormatter(logger, cfg); err != nil {
		return nil, fmt.Errorf("failed to set log formatter: %w", err)
	}

	if err := setLogOutput(logger, cfg); err != nil {
		return nil, fmt.Errorf("failed to set log output: %w", err)
	}

	logger.SetReportCaller(cfg.Caller)

	lm := &LoggerManager{
		logger: logger,
		config: cfg,
	}
	LoggerInstance = lm

	return lm, nil
}

// setLogFormatter 设置日志格式化器
func setLogFormatter(logger *logrus.Logger, cfg *config.LogConfig) error {
	timestampFormat := "2006-01-02 15:04:05.000"

	switch strings.ToLower(cfg.Format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
				logrus.FieldKeyFunc:  "function",
				logrus.FieldKeyFile:  "file",
			},
		})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: timestampFormat,
			FullTimestamp:   true,
		})
	default:
		return fmt.Errorf("unsupported log format: %s", cfg.Format)
	}
	return nil
}

// setLogOutput 设置日志输出目标
func setLogOutput(logger *logrus.Logger, cfg *config.LogConfig) error {
	switch strings.ToLower(cfg.Output) {
	case "stdout", "":
		logger.SetOutput(os.Stdout)
	case "stderr":
		logger.SetOutput(os.Stderr)
	case "file":
		if cfg.FilePath == "" {
			return fmt.Errorf("file path is required when output is file")
		}

		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}

		// lumberjack 负责日志轮转
		rotator := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,    // MB
			MaxBackups: cfg.MaxBackups, // 保留的备份文件数
			MaxAge:     cfg.MaxAge,     // 保留天数
			Compress:   cfg.Compress,
		}

		// debug 级别同时输出到控制台
		if strings.ToLower(cfg.Level) == "debug" {
			logger.SetOutput(io.MultiWriter(os.Stdout, rotator))
		} else {
			logger.SetOutput(rotator)
		}
	default:
		return fmt.Errorf("unsupported log output: %s", cfg.Output)
	}
	return nil
}

// GetLogger 获取 logrus 实例
func (lm *LoggerManager) GetLogger() *logrus.Logger {
	return lm.logger
}

// GetConfig 获取日志配置
func (lm *LoggerManager) GetConfig() *config.LogConfig {
	return lm.config
}

// SetOutput 替换输出目标 (测试中用于捕获日志)
func (lm *LoggerManager) SetOutput(w io.Writer) {
	lm.logger.SetOutput(w)
}

// 便捷方法：获取全局日志实例

// Debugf 记录格式化调试日志
func Debugf(format string, args ...interface{}) {
	if LoggerInstance != nil {
		LoggerInstance.logger.Debugf(format, args...)
	}
}

// Infof 记录格式化信息日志
func Infof(format string, args ...interface{}) {
	if LoggerInstance != nil {
		LoggerInstance.logger.Infof(format, args...)
	}
}

// Warnf 记录格式化警告日志
func Warnf(format string, args ...interface{}) {
	if LoggerInstance != nil {
		LoggerInstance.logger.Warnf(format, args...)
	}
}

// Errorf 记录格式化错误日志
func Errorf(format string, args ...interface{}) {
	if LoggerInstance != nil {
		LoggerInstance.logger.Errorf(format, args...)
	}
}

// WithField 添加单个字段
func WithField(key string, value interface{}) *logrus.Entry {
	if LoggerInstance != nil {
		return LoggerInstance.logger.WithField(key, value)
	}
	return logrus.NewEntry(logrus.StandardLogger()).WithField(key, value)
}

// WithFields 添加多个字段
func WithFields(fields logrus.Fields) *logrus.Entry {
	if LoggerInstance != nil {
		return LoggerInstance.logger.WithFields(fields)
	}
	return logrus.NewEntry(logrus.StandardLogger()).WithFields(fields)
}

// Brute 返回带 type=brute 字段的日志条目
func Brute(plugin string) *logrus.Entry {
	return WithFields(logrus.Fields{
		"type":   BruteLog,
		"plugin": plugin,
	})
}
