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
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/cybrota/avlindex/index"
	"gopkg.in/yaml.v3"
)

const configFileName = ".avlindex.yaml"

type DemoConfig struct {
	Keys  []int  `yaml:"keys"`
	Order string `yaml:"order"`
}

type BenchConfig struct {
	Count int   `yaml:"count"`
	Seed  int64 `yaml:"seed"`
}

type Config struct {
	Demo  DemoConfig   `yaml:"demo"`
	Bench BenchConfig  `yaml:"bench"`
	Index index.Config `yaml:"index"`
}

var defaultConfig = Config{
	Demo: DemoConfig{
		Keys:  []int{10, 20, 30, 40, 50, 25},
		Order: "in",
	},
	Bench: BenchConfig{
		Count: 100000,
		Seed:  1,
	},
	Index: index.DefaultConfig(),
}

func newDefaultConfig() *Config {
	c := defaultConfig
	c.Demo.Keys = slices.Clone(defaultConfig.Demo.Keys)
	return &c
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.avlindex.yaml. Any problem with the file yields the
// defaults, so the CLI always has a usable configuration.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return newDefaultConfig(), nil
	}
	return loadConfigFile(configPath)
}

func loadConfigFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return newDefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return newDefaultConfig(), nil
	}

	// Settings missing from the file keep their default values.
	config := newDefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return newDefaultConfig(), nil
	}
	if len(config.Demo.Keys) == 0 {
		config.Demo.Keys = slices.Clone(defaultConfig.Demo.Keys)
	}

	return config, nil
}

func writeConfigFile(configPath string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return writeConfigFile(configPath, newDefaultConfig())
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("%s Failed to get config path: %v\n", styles.Error.Render("❌"), err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("%s Failed to create default config file: %v\n", styles.Error.Render("❌"), err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("%s Failed to load configuration: %v\n", styles.Error.Render("❌"), err)
		return
	}

	fmt.Println(styles.Heading.Render("🔧 avlindex Configuration Settings"))
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Println(styles.Success.Render("🌳 Demo:"))
	fmt.Printf("  • %s: %v\n", styles.Key.Render("keys"), config.Demo.Keys)
	fmt.Printf("  • %s: %s\n\n", styles.Key.Render("order"), config.Demo.Order)

	fmt.Println(styles.Success.Render("⏱  Bench:"))
	fmt.Printf("  • %s: %d\n", styles.Key.Render("count"), config.Bench.Count)
	fmt.Printf("  • %s: %d\n\n", styles.Key.Render("seed"), config.Bench.Seed)

	fmt.Println(styles.Success.Render("🔍 Index:"))
	fmt.Printf("  • %s: %d\n", styles.Key.Render("bloom_size"), config.Index.BloomSize)
	fmt.Printf("  • %s: %d\n", styles.Key.Render("bloom_hashes"), config.Index.BloomHashes)
	fmt.Printf("  • %s: %s\n\n", styles.Key.Render("cache_ttl"), config.Index.CacheTTL)

	fmt.Printf("💡 Edit %s to change these settings.\n", configPath)
}
