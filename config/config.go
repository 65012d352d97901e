package config

import (
	"errors"
	log "github.com/mhmorgan/termlog"
	"gopkg.in/yaml.v3"
	"io"
	"os"
)

const (
	DefaultUserAgent   = "gitignore-cli"
	DefaultDestination = ".gitignore"
	DefaultAPIURL      = "https://api.github.com/repos/github/gitignore/contents"
	DefaultRawURL      = "https://raw.githubusercontent.com/github/gitignore/main"
	DefaultSuffix      = ".gitignore"
	DefaultFzfBinary   = "fzf"
	DefaultFzfPrompt   = "Select gitignore template: "
	DefaultFzfHeight   = "40%"
)

var cfg = Default()

type Config struct {
	UserAgent   string `yaml:"user_agent"`
	Destination string

	Catalog struct {
		APIURL string `yaml:"api_url"`
		RawURL string `yaml:"raw_url"`
		Suffix string
	}

	Fzf struct {
		Binary string
		Prompt string
		Height string
	}
}

// Default returns the configuration used when no config file
// is present.
func Default() Config {
	var c Config
	c.UserAgent = DefaultUserAgent
	c.Destination = DefaultDestination
	c.Catalog.APIURL = DefaultAPIURL
	c.Catalog.RawURL = DefaultRawURL
	c.Catalog.Suffix = DefaultSuffix
	c.Fzf.Binary = DefaultFzfBinary
	c.Fzf.Prompt = DefaultFzfPrompt
	c.Fzf.Height = DefaultFzfHeight
	return c
}

// Load decodes a YAML config from r on top of the defaults.
// Keys missing from the document keep their default value.
func Load(r io.Reader) error {
	c := Default()
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	c.fill()
	cfg = c
	return nil
}

// Loadf loads the config file at path. A missing file leaves
// the defaults in place.
func Loadf(path string) error {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg = Default()
		return nil
	} else if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Error(err)
		}
	}()
	return Load(f)
}

func Get() *Config {
	return &cfg
}

// fill restores defaults for keys explicitly set to empty.
func (c *Config) fill() {
	d := Default()
	if c.UserAgent == "" {
		c.UserAgent = d.UserAgent
	}
	if c.Destination == "" {
		c.Destination = d.Destination
	}
	if c.Catalog.APIURL == "" {
		c.Catalog.APIURL = d.Catalog.APIURL
	}
	if c.Catalog.RawURL == "" {
		c.Catalog.RawURL = d.Catalog.RawURL
	}
	if c.Catalog.Suffix == "" {
		c.Catalog.Suffix = d.Catalog.Suffix
	}
	if c.Fzf.Binary == "" {
		c.Fzf.Binary = d.Fzf.Binary
	}
	if c.Fzf.Prompt == "" {
		c.Fzf.Prompt = d.Fzf.Prompt
	}
	if c.Fzf.Height == "" {
		c.Fzf.Height = d.Fzf.Height
	}
}
