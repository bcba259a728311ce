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
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/cybrota/assoc/bst"
	"github.com/cybrota/assoc/hashtable"
)

const configFileName = ".assoc.yaml"

// Flag names double as viper keys and mirror the YAML layout.
const (
	cfgStrategy     = "tree.strategy"
	cfgBuckets      = "hashtable.buckets"
	cfgFullScan     = "hashtable.full_scan_search"
	cfgBloomEnabled = "hashtable.bloom_filter.enabled"
	cfgShowProgress = "script.show_progress"
)

type TreeConfig struct {
	Strategy string `yaml:"strategy"`
}

type BloomFilterConfig struct {
	Enabled bool `yaml:"enabled"`
	Bits    uint `yaml:"bits"`
	Hashes  uint `yaml:"hashes"`
}

type HashtableConfig struct {
	Buckets        int               `yaml:"buckets"`
	FullScanSearch bool              `yaml:"full_scan_search"`
	BloomFilter    BloomFilterConfig `yaml:"bloom_filter"`
}

type ScriptConfig struct {
	ShowProgress bool `yaml:"show_progress"`
}

type Config struct {
	Tree      TreeConfig      `yaml:"tree"`
	Hashtable HashtableConfig `yaml:"hashtable"`
	Script    ScriptConfig    `yaml:"script"`
}

var defaultConfig = Config{
	Tree: TreeConfig{
		Strategy: string(bst.StrategyIterative),
	},
	Hashtable: HashtableConfig{
		Buckets:        hashtable.DefaultSize,
		FullScanSearch: false,
		BloomFilter: BloomFilterConfig{
			Enabled: false,
			Bits:    4096,
			Hashes:  4,
		},
	},
	Script: ScriptConfig{
		ShowProgress: false,
	},
}

// LoadConfig reads ~/.assoc.yaml. Any problem with the file falls back to
// the defaults so the CLI always has a usable configuration.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := defaultConfig
		return &config, nil
	}
	return loadConfigFrom(configPath), nil
}

func loadConfigFrom(configPath string) *Config {
	config := defaultConfig

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &config
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		log.Printf("Failed to read %s: %v. Using default settings.", configPath, err)
		return &config
	}

	// Keys missing from the file keep their default values
	if err := yaml.Unmarshal(data, &config); err != nil {
		log.Printf("Failed to parse %s: %v. Using default settings.", configPath, err)
		config = defaultConfig
		return &config
	}

	return &config
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfig(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return errors.Wrap(err, "failed to marshal default config")
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

// RegisterFlags registers the configuration flags on cmd and binds them
// to viper so that flags given on the command line win over the file.
func RegisterFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String(cfgStrategy, defaultConfig.Tree.Strategy, "Tree implementation: recursive or iterative")
	flags.Int(cfgBuckets, defaultConfig.Hashtable.Buckets, "Number of hash table buckets")
	flags.Bool(cfgFullScan, defaultConfig.Hashtable.FullScanSearch, "Search every bucket instead of the hashed one")
	flags.Bool(cfgBloomEnabled, defaultConfig.Hashtable.BloomFilter.Enabled, "Put a bloom filter in front of hash table lookups")
	flags.Bool(cfgShowProgress, defaultConfig.Script.ShowProgress, "Show a progress spinner while running scripts")

	for _, v := range []string{
		cfgStrategy,
		cfgBuckets,
		cfgFullScan,
		cfgBloomEnabled,
		cfgShowProgress,
	} {
		viper.BindPFlag(v, flags.Lookup(v)) // nolint: errcheck
	}
}

// applyOverrides copies every value explicitly set through viper into
// config.
func applyOverrides(config *Config) {
	if viper.IsSet(cfgStrategy) {
		config.Tree.Strategy = viper.GetString(cfgStrategy)
	}
	if viper.IsSet(cfgBuckets) {
		config.Hashtable.Buckets = viper.GetInt(cfgBuckets)
	}
	if viper.IsSet(cfgFullScan) {
		config.Hashtable.FullScanSearch = viper.GetBool(cfgFullScan)
	}
	if viper.IsSet(cfgBloomEnabled) {
		config.Hashtable.BloomFilter.Enabled = viper.GetBool(cfgBloomEnabled)
	}
	if viper.IsSet(cfgShowProgress) {
		config.Script.ShowProgress = viper.GetBool(cfgShowProgress)
	}
}

// loadSettings is the configuration every command runs with: the file,
// then command-line overrides.
func loadSettings() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		c := defaultConfig
		config = &c
	}
	applyOverrides(config)
	return config
}

func (c *Config) newTree() (bst.Map, error) {
	strategy, err := bst.ParseStrategy(c.Tree.Strategy)
	if err != nil {
		return nil, errors.Wrap(err, "invalid tree configuration")
	}
	return bst.New(strategy)
}

func (c *Config) newTable() (*hashtable.Table, error) {
	var opts []hashtable.Option
	if c.Hashtable.FullScanSearch {
		opts = append(opts, hashtable.WithFullScan())
	}
	if bf := c.Hashtable.BloomFilter; bf.Enabled {
		opts = append(opts, hashtable.WithBloomFilter(bf.Bits, bf.Hashes))
	}

	table, err := hashtable.New(c.Hashtable.Buckets, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid hashtable configuration (buckets: %d)", c.Hashtable.Buckets)
	}
	return table, nil
}

func displaySettings(w io.Writer) {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Fprintf(w, "%s\n", errorStyle.Render(fmt.Sprintf("Failed to get config path: %v", err)))
		return
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Fprintf(w, "Configuration file not found. Creating default configuration...\n\n")
		if err := writeDefaultConfig(configPath); err != nil {
			fmt.Fprintf(w, "%s\n", errorStyle.Render(fmt.Sprintf("Failed to create default config file: %v", err)))
			return
		}
		fmt.Fprintf(w, "Created default configuration at: %s\n\n", configPath)
	}

	config := loadSettings()

	fmt.Fprintln(w, headingStyle.Render("assoc configuration settings"))
	fmt.Fprintf(w, "Config file: %s\n\n", configPath)
	writeSettings(w, config)
}

func writeSettings(w io.Writer, config *Config) {
	rows := []struct {
		key   string
		value any
		desc  string
	}{
		{cfgStrategy, config.Tree.Strategy, "recursive or iterative tree operations"},
		{cfgBuckets, config.Hashtable.Buckets, "fixed bucket count of the hash table"},
		{cfgFullScan, config.Hashtable.FullScanSearch, "search walks every bucket instead of the hashed one"},
		{cfgBloomEnabled, config.Hashtable.BloomFilter.Enabled, fmt.Sprintf("bloom filter (%d bits, %d hashes) in front of lookups",
			config.Hashtable.BloomFilter.Bits, config.Hashtable.BloomFilter.Hashes)},
		{cfgShowProgress, config.Script.ShowProgress, "progress spinner while running scripts"},
	}

	for _, row := range rows {
		fmt.Fprintf(w, "  %s: %v\n", keyStyle.Render(row.key), row.value)
		fmt.Fprintf(w, "    %s\n", mutedStyle.Render(row.desc))
	}
}
