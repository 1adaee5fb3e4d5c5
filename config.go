// Copyright 2025 Naren Yellavula
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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	envPrefix      = "ORDTREE"
	configFileName = ".ordtree.yaml"
)

var errConfig = errors.New("invalid configuration")

type TreeConfig struct {
	KeyType string `yaml:"key_type" mapstructure:"key_type"`
}

type FilterConfig struct {
	BloomSize   uint `yaml:"bloom_size" mapstructure:"bloom_size"`
	BloomHashes uint `yaml:"bloom_hashes" mapstructure:"bloom_hashes"`
}

type CacheConfig struct {
	LookupTTL       time.Duration `yaml:"lookup_ttl" mapstructure:"lookup_ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval"`
}

type LogConfig struct {
	Level   string `yaml:"level" mapstructure:"level"`
	Console bool   `yaml:"console" mapstructure:"console"`
}

type Config struct {
	Tree   TreeConfig   `yaml:"tree" mapstructure:"tree"`
	Filter FilterConfig `yaml:"filter" mapstructure:"filter"`
	Cache  CacheConfig  `yaml:"cache" mapstructure:"cache"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

var defaultConfig = Config{
	Tree: TreeConfig{
		KeyType: keyTypeInt,
	},
	Filter: FilterConfig{
		BloomSize:   1 << 16,
		BloomHashes: 4,
	},
	Cache: CacheConfig{
		LookupTTL:       30 * time.Minute,
		CleanupInterval: 5 * time.Minute,
	},
	Log: LogConfig{
		Level:   "info",
		Console: true,
	},
}

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"key-type":  "tree.key_type",
	"log-level": "log.level",
}

// LoadConfig merges, from lowest to highest precedence, the defaults, the
// config file at path ($HOME/.ordtree.yaml when empty), ORDTREE_* environment
// variables and any flags in flags that were set explicitly.
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("tree.key_type", defaultConfig.Tree.KeyType)
	v.SetDefault("filter.bloom_size", defaultConfig.Filter.BloomSize)
	v.SetDefault("filter.bloom_hashes", defaultConfig.Filter.BloomHashes)
	v.SetDefault("cache.lookup_ttl", defaultConfig.Cache.LookupTTL)
	v.SetDefault("cache.cleanup_interval", defaultConfig.Cache.CleanupInterval)
	v.SetDefault("log.level", defaultConfig.Log.Level)
	v.SetDefault("log.console", defaultConfig.Log.Console)

	if path == "" {
		if p, err := getConfigPath(); err == nil {
			path = p
		}
	}
	if fileExists(path) {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag --%s: %w", name, err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) validate() error {
	if !isKeyType(c.Tree.KeyType) {
		return fmt.Errorf("%w: tree.key_type %q, want one of %s", errConfig, c.Tree.KeyType, strings.Join(keyTypes, ", "))
	}
	if c.Filter.BloomSize == 0 || c.Filter.BloomHashes == 0 {
		return fmt.Errorf("%w: bloom filter needs a positive size and hash count", errConfig)
	}
	if c.Cache.LookupTTL <= 0 {
		return fmt.Errorf("%w: cache.lookup_ttl must be positive", errConfig)
	}
	return nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func fileExists(name string) bool {
	if name == "" {
		return false
	}
	_, err := os.Stat(name)
	return err == nil
}

func createDefaultConfigFile(path string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// displaySettings prints the effective configuration, creating the default
// config file first when none exists at path.
func displaySettings(w io.Writer, path string, flags *pflag.FlagSet) error {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	created := false
	if !fileExists(path) {
		if err := createDefaultConfigFile(path); err != nil {
			return err
		}
		created = true
	}

	config, err := LoadConfig(path, flags)
	if err != nil {
		return err
	}

	if created {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n\n", path)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s\n\n", path)
	}
	fmt.Fprintf(w, "🔧 %sEffective settings%s\n", Green, Reset)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(config); err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n💡 Environment variables override the file, e.g. %s_TREE_KEY_TYPE=string\n", envPrefix)
	return nil
}
