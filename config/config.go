// Package config loads the JSON settings shared by the CLI and the agent service.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// 默认配置文件名与环境变量
const (
	defaultFileName = "mosaic.json"
	envConfigPath   = "MOSAIC_CONFIG"
)

// RenderConfig 渲染参数
type RenderConfig struct {
	Scale   int    `json:"scale"`   // 每个像素放大倍数
	Filled  string `json:"filled"`  // '#' 像素颜色
	Empty   string `json:"empty"`   // '.' 像素颜色
	Monster string `json:"monster"` // 海怪像素颜色
}

// Config 是 CLI 与 agent 共用的配置
type Config struct {
	LogLevel string       `json:"log_level"`
	LogDir   string       `json:"log_dir"`
	Render   RenderConfig `json:"render"`
}

var (
	currentConfig *Config
	configMutex   sync.RWMutex
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		LogDir:   "debug",
		Render: RenderConfig{
			Scale:   4,
			Filled:  "#1e6091",
			Empty:   "#d9ed92",
			Monster: "#d62828",
		},
	}
}

// Load reads the configuration at path. An empty path is resolved with resolvePath;
// when no file is found the defaults are returned.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = resolvePath()
	}

	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			log.Debug().Str("path", path).Msg("config: no config file, using defaults")
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// 未出现的字段保留默认值
	if err := sonic.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	log.Info().Str("path", path).Msg("config: loaded")
	return cfg, nil
}

// Validate checks the log level and the render palette.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Render.Scale < 1 {
		return fmt.Errorf("render scale must be positive, got %d", c.Render.Scale)
	}
	for name, hex := range map[string]string{
		"filled":  c.Render.Filled,
		"empty":   c.Render.Empty,
		"monster": c.Render.Monster,
	} {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("render color %s: %w", name, err)
		}
	}
	return nil
}

// Level parses LogLevel into a zerolog level.
func (c *Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

// resolvePath prefers MOSAIC_CONFIG, then the executable directory,
// and falls back to the current working directory.
func resolvePath() string {
	if p := os.Getenv(envConfigPath); p != "" {
		return p
	}

	if exe, err := os.Executable(); err == nil && exe != "" {
		candidate := filepath.Join(filepath.Dir(exe), defaultFileName)
		if fileExists(candidate) {
			return candidate
		}
	}

	if cwd, err := os.Getwd(); err == nil {
		return filepath.Join(cwd, defaultFileName)
	}
	return defaultFileName
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// Set installs cfg as the current configuration.
func Set(cfg *Config) {
	configMutex.Lock()
	defer configMutex.Unlock()
	currentConfig = cfg
}

// Current returns the installed configuration, or the defaults if none was set.
func Current() *Config {
	configMutex.RLock()
	defer configMutex.RUnlock()
	if currentConfig == nil {
		return Default()
	}
	return currentConfig
}
