package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultParamsImport is the import path of the parameter package generated
// code refers to.
const DefaultParamsImport = "github.com/ensembledata/ensembledata-go/pkg/params"

// DefaultTopLevelData lists the operations whose payload is the whole
// response body rather than its nested "data" member.
var DefaultTopLevelData = []string{
	"tiktok_user_posts_from_username",
	"tiktok_user_posts_from_secuid",
}

// DefaultGroupNames spell the tags whose Go name is not their title case.
var DefaultGroupNames = map[string]string{
	"tiktok":  "TikTok",
	"youtube": "YouTube",
}

// Config represents the complete edgen configuration
type Config struct {
	Spec    string   `yaml:"spec"`
	Name    string   `yaml:"name"`
	Clients []Client `yaml:"clients"`
}

// Client represents one generated façade package
type Client struct {
	Name        string `yaml:"name"`
	OutDir      string `yaml:"outDir"`
	PackageName string `yaml:"packageName"`
	// ParamsImport overrides DefaultParamsImport.
	ParamsImport string   `yaml:"paramsImport"`
	IncludeTags  []string `yaml:"includeTags"`
	ExcludeTags  []string `yaml:"excludeTags"`
	// TopLevelData overrides DefaultTopLevelData.
	TopLevelData []string `yaml:"topLevelData"`
	// GroupNames are merged over DefaultGroupNames.
	GroupNames map[string]string `yaml:"groupNames"`
	// PreCommand runs in OutDir before generation, e.g. ["git", "stash"].
	PreCommand []string `yaml:"preCommand"`
	// PostCommand runs in OutDir after generation, e.g. ["goimports", "-w", "."].
	PostCommand []string `yaml:"postCommand"`
	// ExcludeFiles lists paths relative to OutDir that are never written.
	ExcludeFiles []string `yaml:"exclude"`
}

// GetPreCommand returns the pre-generation command to execute.
func (c *Client) GetPreCommand() []string {
	return c.PreCommand
}

// GetPostCommand returns the post-generation command to execute.
func (c *Client) GetPostCommand() []string {
	return c.PostCommand
}

// GroupName returns the Go identifier prefix configured for tag, or "" when
// none is.
func (c *Client) GroupName(tag string) string {
	if name, ok := c.GroupNames[tag]; ok {
		return name
	}
	return DefaultGroupNames[strings.ToLower(tag)]
}

// IsTopLevelData reports whether operationID returns the whole body as data.
func (c *Client) IsTopLevelData(operationID string) bool {
	list := c.TopLevelData
	if list == nil {
		list = DefaultTopLevelData
	}
	for _, id := range list {
		if id == operationID {
			return true
		}
	}
	return false
}

// ShouldExcludeFile checks if a file path should be excluded based on the ExcludeFiles list.
// targetPath should be an absolute path, and the comparison is done relative to OutDir.
func (c *Client) ShouldExcludeFile(targetPath string) bool {
	if len(c.ExcludeFiles) == 0 {
		return false
	}

	relPath, err := filepath.Rel(c.OutDir, targetPath)
	if err != nil {
		return false
	}
	relPath = filepath.ToSlash(relPath)
	if relPath == "." {
		relPath = ""
	}

	for _, excludePattern := range c.ExcludeFiles {
		normalizedExclude := filepath.ToSlash(excludePattern)
		if relPath == normalizedExclude {
			return true
		}
		// "sub/" excludes everything below sub
		if normalizedExclude != "" && strings.HasPrefix(relPath, strings.TrimSuffix(normalizedExclude, "/")+"/") {
			return true
		}
	}
	return false
}

// applyDefaults fills optional fields and absolutizes OutDir.
func (c *Client) applyDefaults() {
	if c.ParamsImport == "" {
		c.ParamsImport = DefaultParamsImport
	}
	if c.Name == "" {
		c.Name = c.PackageName
	}
	if c.OutDir != "" && !filepath.IsAbs(c.OutDir) {
		if abs, err := filepath.Abs(c.OutDir); err == nil {
			c.OutDir = abs
		}
	}
}

// Normalize validates cfg and fills defaults in place.
func (cfg *Config) Normalize() error {
	if cfg.Spec == "" {
		return errors.New("config.spec is required")
	}
	if len(cfg.Clients) == 0 {
		return errors.New("config.clients must list at least one client")
	}
	for i := range cfg.Clients {
		c := &cfg.Clients[i]
		if c.OutDir == "" || c.PackageName == "" {
			return fmt.Errorf("clients[%d] missing required fields (outDir, packageName)", i)
		}
		c.applyDefaults()
	}
	// Do not absolutize when spec is an HTTP(S) URL
	if u, err := url.Parse(cfg.Spec); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return nil
	}
	if !filepath.IsAbs(cfg.Spec) {
		if abs, err := filepath.Abs(cfg.Spec); err == nil {
			cfg.Spec = abs
		}
	}
	return nil
}

// Load loads configuration from a YAML file. A relative spec path is resolved
// against the working directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
