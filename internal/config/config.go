// Copyright 2026 Syafiq Hadzir
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads tool configuration from an optional YAML file and
// ORSTSYNC_* environment variables. Priority: ENV > YAML > defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Crawler CrawlerConfig `yaml:"crawler"`
	Paths   PathsConfig   `yaml:"paths"`
	Log     LogConfig     `yaml:"log"`
}

// APIConfig holds remote source settings.
type APIConfig struct {
	BaseURL     string        `yaml:"base_url"     env:"ORSTSYNC_API_BASE_URL"     env-default:"https://dictionary.orst.go.th/Lookup/lookupDomain.php"`
	Delay       time.Duration `yaml:"delay"        env:"ORSTSYNC_API_DELAY"        env-default:"200ms"`
	Timeout     time.Duration `yaml:"timeout"      env:"ORSTSYNC_API_TIMEOUT"      env-default:"30s"`
	MaxRetries  int           `yaml:"max_retries"  env:"ORSTSYNC_API_MAX_RETRIES"  env-default:"3"`
	BackoffBase time.Duration `yaml:"backoff_base" env:"ORSTSYNC_API_BACKOFF_BASE" env-default:"1s"`
}

// CrawlerConfig holds sweep behavior settings.
type CrawlerConfig struct {
	Resume           bool `yaml:"resume"            env:"ORSTSYNC_CRAWLER_RESUME"            env-default:"true"`
	CacheEnabled     bool `yaml:"cache_enabled"     env:"ORSTSYNC_CRAWLER_CACHE_ENABLED"     env-default:"true"`
	IncludeCompounds bool `yaml:"include_compounds" env:"ORSTSYNC_CRAWLER_INCLUDE_COMPOUNDS" env-default:"true"`
}

// PathsConfig holds filesystem locations.
type PathsConfig struct {
	Artifact   string `yaml:"artifact"    env:"ORSTSYNC_PATHS_ARTIFACT"    env-default:"th_TH-royin.dic"`
	CacheDir   string `yaml:"cache_dir"   env:"ORSTSYNC_PATHS_CACHE_DIR"   env-default:"data/cache"`
	Checkpoint string `yaml:"checkpoint"  env:"ORSTSYNC_PATHS_CHECKPOINT"  env-default:"data/checkpoint.json"`
	ReportsDir string `yaml:"reports_dir" env:"ORSTSYNC_PATHS_REPORTS_DIR" env-default:"reports"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"ORSTSYNC_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"ORSTSYNC_LOG_FORMAT" env-default:"text"`
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.API.Delay < 0 {
		return fmt.Errorf("api.delay must be non-negative, got %v", c.API.Delay)
	}
	if c.API.MaxRetries < 0 {
		return fmt.Errorf("api.max_retries must be non-negative, got %d", c.API.MaxRetries)
	}
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	return nil
}

// Load reads configuration. The YAML file path comes from CONFIG_PATH
// (fallback "./orstsync.yaml"); a missing file is only an error when
// CONFIG_PATH was set explicitly.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./orstsync.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}
