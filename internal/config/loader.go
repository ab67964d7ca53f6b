package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// ConfigLoader 配置加载器
type ConfigLoader struct {
	configPath string
	envPrefix  string
	viper      *viper.Viper
}

// NewConfigLoader 创建配置加载器
// configPath 可以是目录，也可以是具体的 yaml 文件
func NewConfigLoader(configPath, envPrefix string) *ConfigLoader {
	if envPrefix == "" {
		envPrefix = "NEOCRACK"
	}

	return &ConfigLoader{
		configPath: configPath,
		envPrefix:  envPrefix,
		viper:      viper.New(),
	}
}

// Viper 暴露底层 viper 实例，供 CLI 绑定 flag
func (cl *ConfigLoader) Viper() *viper.Viper {
	return cl.viper
}

// LoadConfig 加载配置
// 配置文件不存在时使用默认值 + 环境变量，CLI 模式下配置文件是可选的
func (cl *ConfigLoader) LoadConfig() (*Config, error) {
	cl.viper.SetConfigType("yaml")

	// 环境变量: NEOCRACK_BRUTE_TIMEOUT -> brute.timeout
	cl.viper.SetEnvPrefix(cl.envPrefix)
	cl.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cl.viper.AutomaticEnv()

	cl.setDefaults()

	if err := cl.loadConfigFile(); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	var config Config
	if err := cl.viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// loadConfigFile 加载配置文件
func (cl *ConfigLoader) loadConfigFile() error {
	if cl.configPath == "" {
		if envPath := os.Getenv(cl.envPrefix + "_CONFIG_PATH"); envPath != "" {
			cl.configPath = envPath
		}
	}

	// 显式指定文件时必须存在
	if cl.configPath != "" {
		if info, err := os.Stat(cl.configPath); err == nil && !info.IsDir() {
			cl.viper.SetConfigFile(cl.configPath)
			return cl.viper.ReadInConfig()
		}
		cl.viper.AddConfigPath(cl.configPath)
	}

	cl.viper.AddConfigPath("./configs")
	cl.viper.AddConfigPath(".")
	cl.viper.SetConfigName("config")

	if err := cl.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// setDefaults 设置默认值
func (cl *ConfigLoader) setDefaults() {
	def := DefaultConfig()

	cl.viper.SetDefault("app.name", def.App.Name)
	cl.viper.SetDefault("app.version", def.App.Version)
	cl.viper.SetDefault("app.environment", def.App.Environment)

	cl.viper.SetDefault("log.level", def.Log.Level)
	cl.viper.SetDefault("log.format", def.Log.Format)
	cl.viper.SetDefault("log.output", def.Log.Output)
	cl.viper.SetDefault("log.file_path", def.Log.FilePath)
	cl.viper.SetDefault("log.max_size", def.Log.MaxSize)
	cl.viper.SetDefault("log.max_backups", def.Log.MaxBackups)
	cl.viper.SetDefault("log.max_age", def.Log.MaxAge)
	cl.viper.SetDefault("log.compress", def.Log.Compress)
	cl.viper.SetDefault("log.caller", def.Log.Caller)

	cl.viper.SetDefault("brute.timeout", def.Brute.Timeout)
	cl.viper.SetDefault("brute.stop_on_success", def.Brute.StopOnSuccess)
	cl.viper.SetDefault("brute.pg_driver", def.Brute.PGDriver)
	cl.viper.SetDefault("brute.pg_sslmode", def.Brute.PGSSLMode)

	cl.viper.SetDefault("proxy.url", def.Proxy.URL)
}
