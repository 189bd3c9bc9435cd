package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	FormatLines      = "lines"
	FormatProxyTable = "proxytable"
	FormatJSONList   = "jsonlist"

	ValidateCIDR     = "cidr"
	ValidateHostPort = "hostport"
	ValidateNone     = "none"
)

// Source describes one upstream list and where its snapshot is written.
type Source struct {
	Name   string `yaml:"name"`
	URL    string `yaml:"url"`
	File   string `yaml:"file"`
	Format string `yaml:"format"`
	// Field names the JSON document key holding the list, jsonlist only.
	Field    string `yaml:"field"`
	Validate string `yaml:"validate"`
	Output   string `yaml:"output"`

	// Names of environment variables holding basic-auth credentials
	// for sources that require them.
	UsernameEnv string `yaml:"usernameEnv"`
	PasswordEnv string `yaml:"passwordEnv"`

	// PingBest keeps only the N lowest-latency representative hosts,
	// one probed per fetched range. Zero writes the raw range list.
	PingBest int `yaml:"pingBest"`
	// CheckProxies keeps only the first N entries that pass a liveness
	// check. Zero writes the raw scraped list.
	CheckProxies int `yaml:"checkProxies"`
}

type Config struct {
	Sources []Source `yaml:"sources"`
}

// Default reproduces the stock job: Cloudflare's published v4/v6
// ranges plus one free proxy list, written next to the work tree root.
func Default() *Config {
	return &Config{
		Sources: []Source{
			{
				Name:     "cloudflare-ipv4",
				URL:      "https://www.cloudflare.com/ips-v4",
				Format:   FormatLines,
				Validate: ValidateCIDR,
				Output:   "cfipv4.txt",
			},
			{
				Name:     "cloudflare-ipv6",
				URL:      "https://www.cloudflare.com/ips-v6",
				Format:   FormatLines,
				Validate: ValidateCIDR,
				Output:   "cfipv6.txt",
			},
			{
				Name:     "sslproxies",
				URL:      "https://www.sslproxies.org/",
				Format:   FormatProxyTable,
				Validate: ValidateHostPort,
				Output:   "proxyIP.txt",
			},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid source catalog %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return errors.New("no sources defined")
	}

	outputs := map[string]string{}

	for _, s := range c.Sources {
		if s.Name == "" {
			return errors.New("source without a name")
		}

		if (s.URL == "") == (s.File == "") {
			return fmt.Errorf("source %s: exactly one of url or file is required", s.Name)
		}

		switch s.Format {
		case FormatLines, FormatProxyTable:
		case FormatJSONList:
			if s.Field == "" {
				return fmt.Errorf("source %s: jsonlist requires a field", s.Name)
			}
		default:
			return fmt.Errorf("source %s: unknown format %q", s.Name, s.Format)
		}

		switch s.Validate {
		case "", ValidateNone, ValidateCIDR, ValidateHostPort:
		default:
			return fmt.Errorf("source %s: unknown validate mode %q", s.Name, s.Validate)
		}

		if s.Output == "" {
			return fmt.Errorf("source %s: output is required", s.Name)
		}

		if prev, ok := outputs[s.Output]; ok {
			return fmt.Errorf("sources %s and %s share output %s", prev, s.Name, s.Output)
		}
		outputs[s.Output] = s.Name
	}

	return nil
}

// Outputs returns the output paths of all sources in catalog order.
func (c *Config) Outputs() []string {
	out := make([]string, 0, len(c.Sources))
	for _, s := range c.Sources {
		out = append(out, s.Output)
	}

	return out
}
