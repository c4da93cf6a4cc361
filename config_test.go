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
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := loadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("loadConfigFile() error = %v", err)
	}
	if !reflect.DeepEqual(config, newDefaultConfig()) {
		t.Errorf("loadConfigFile() = %+v; want defaults", config)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	data := []byte("demo:\n  keys: [3, 1, 2]\nindex:\n  cache_ttl: 5m\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	config, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile() error = %v", err)
	}
	if want := []int{3, 1, 2}; !reflect.DeepEqual(config.Demo.Keys, want) {
		t.Errorf("Demo.Keys = %v; want %v", config.Demo.Keys, want)
	}
	if config.Demo.Order != defaultConfig.Demo.Order {
		t.Errorf("Demo.Order = %q; want default %q", config.Demo.Order, defaultConfig.Demo.Order)
	}
	if config.Index.CacheTTL != 5*time.Minute {
		t.Errorf("Index.CacheTTL = %s; want 5m", config.Index.CacheTTL)
	}
	if config.Index.BloomSize != defaultConfig.Index.BloomSize {
		t.Errorf("Index.BloomSize = %d; want default %d", config.Index.BloomSize, defaultConfig.Index.BloomSize)
	}
	if config.Bench != defaultConfig.Bench {
		t.Errorf("Bench = %+v; want default %+v", config.Bench, defaultConfig.Bench)
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	if err := os.WriteFile(path, []byte("demo: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile() error = %v", err)
	}
	if !reflect.DeepEqual(config, newDefaultConfig()) {
		t.Errorf("loadConfigFile() = %+v; want defaults", config)
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	want := newDefaultConfig()
	want.Demo.Keys = []int{5, 4, 3}
	want.Bench.Seed = 99

	if err := writeConfigFile(path, want); err != nil {
		t.Fatalf("writeConfigFile() error = %v", err)
	}
	got, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("loadConfigFile() = %+v; want %+v", got, want)
	}
}

func TestDefaultConfigIsNotShared(t *testing.T) {
	c := newDefaultConfig()
	c.Demo.Keys[0] = -1
	if defaultConfig.Demo.Keys[0] == -1 {
		t.Errorf("newDefaultConfig() shares the default key slice")
	}
}
