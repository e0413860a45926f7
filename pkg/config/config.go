package config

import (
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type Config struct {
	TagMatch        string  `yaml:"tag_match"`
	LightweightTags bool    `yaml:"lightweight_tags"`
	GitBinary       string  `yaml:"git_binary"`
	APIURL          string  `yaml:"api_url"`
	Release         Release `yaml:"release"`
	Repo            string  `yaml:"-"`
	Token           string  `yaml:"-"`
	Tag             string  `yaml:"-"`
	WorkDir         string  `yaml:"-"`
	DryRun          bool    `yaml:"-"`
	Output          string  `yaml:"-"`
	Debug           bool    `yaml:"-"`
}

type Release struct {
	Draft        bool   `yaml:"draft"`
	NamePrefix   string `yaml:"name_prefix"`
	BodyTemplate string `yaml:"body_template"`
}

func Default() *Config {
	return &Config{
		TagMatch:  "v[0-9]*",
		GitBinary: "git",
		Output:    "text",
		Release: Release{
			Draft:        true,
			BodyTemplate: "{{ .Changelog }}",
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MergeFlags(cfg *Config, flags *pflag.FlagSet) *Config {
	if v, err := flags.GetString("repo"); err == nil && v != "" {
		cfg.Repo = v
	}
	if v, err := flags.GetString("github-token"); err == nil && v != "" {
		cfg.Token = v
	}
	if v, err := flags.GetString("tag"); err == nil && v != "" {
		cfg.Tag = v
	}
	if v, err := flags.GetString("workdir"); err == nil && v != "" {
		cfg.WorkDir = v
	}
	if v, err := flags.GetString("api-url"); err == nil && v != "" {
		cfg.APIURL = v
	}
	if v, err := flags.GetString("tag-match"); err == nil && v != "" {
		cfg.TagMatch = v
	}
	if v, err := flags.GetString("output"); err == nil && v != "" {
		cfg.Output = v
	}
	if v, err := flags.GetBool("dry-run"); err == nil {
		cfg.DryRun = v
	}
	if v, err := flags.GetBool("debug"); err == nil {
		cfg.Debug = v
	}
	if flags.Changed("draft") {
		if v, err := flags.GetBool("draft"); err == nil {
			cfg.Release.Draft = v
		}
	}
	return cfg
}
