// Package config は、既定値・YAML ファイル・環境変数の順にチートシートの設定を読み込みます。
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	EnvAddr      = "CHEATSHEET_ADDR"
	EnvCatalog   = "CHEATSHEET_CATALOG"
	EnvOutputDir = "CHEATSHEET_OUTPUT_DIR"
)

// render コマンドが扱う出力形式です。
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatFeed     = "feed"
	FormatAtom     = "atom"
)

var OutputFormats = []string{FormatMarkdown, FormatHTML, FormatFeed, FormatAtom}

// Config は、アプリケーション全体の設定です。
// Title はページの見出し、HTMLTitle はブラウザのタブに出るタイトルです。
// BaseURL はページの公開先で、フィードの各項目のリンクはその下を指します。
type Config struct {
	Title     string        `yaml:"title"`
	HTMLTitle string        `yaml:"htmlTitle"`
	BaseURL   string        `yaml:"baseURL"`
	Author    Author        `yaml:"author"`
	Catalog   string        `yaml:"catalog"`
	Server    ServerConfig  `yaml:"server"`
	Output    OutputConfig  `yaml:"output"`
	Console   ConsoleConfig `yaml:"console"`
}

// Author は、各ページのフッターに表示する作者です。
type Author struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
	IdleTimeout  time.Duration `yaml:"idleTimeout"`
}

type OutputConfig struct {
	Dir     string   `yaml:"dir"`
	Formats []string `yaml:"formats"`
}

type ConsoleConfig struct {
	// glamour の標準スタイル名、または "auto"
	Style string `yaml:"style"`
	Width int    `yaml:"width"`
}

// Default は、チートシート公開時の設定を返します。
func Default() *Config {
	return &Config{
		Title:     "C++/Java Collections Comparison Guide",
		HTMLTitle: "C++ STL vs Java Collections CheatSheet For DSA",
		BaseURL:   "http://127.0.0.1:8501/",
		Author: Author{
			Name: "Vikrant",
			URL:  "https://www.linkedin.com/in/programming-vikrant/",
		},
		Server: ServerConfig{
			Addr:         "127.0.0.1:8501",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Output: OutputConfig{
			Dir:     "./dist",
			Formats: slices.Clone(OutputFormats),
		},
		Console: ConsoleConfig{
			Style: "auto",
			Width: 100,
		},
	}
}

// Load は、Default の上に YAML ファイルを重ねて読み込みます。
// ファイルにない項目は既定値のままです。
func Load(path string) (*Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv は、CHEATSHEET_* 環境変数で設定を上書きします。
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvAddr)); v != "" {
		c.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvCatalog)); v != "" {
		c.Catalog = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutputDir)); v != "" {
		c.Output.Dir = v
	}
}

// Validate は、設定の誤りをすべてまとめて返します。
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, errors.New("title is required"))
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.IdleTimeout < 0 {
		errs = append(errs, errors.New("server timeouts must not be negative"))
	}
	for _, f := range c.Output.Formats {
		if !slices.Contains(OutputFormats, f) {
			errs = append(errs, fmt.Errorf("unknown output format %q (want one of %s)", f, strings.Join(OutputFormats, ", ")))
		}
	}
	if c.Console.Width < 0 {
		errs = append(errs, errors.New("console.width must not be negative"))
	}
	return errors.Join(errs...)
}
