package config

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/spf13/viper"
)

// ConfigFileName is the base name of the optional project config file.
const ConfigFileName = ".mdxassets"

// EnvPrefix is the prefix for environment overrides, e.g. MDXASSETS_PUBLIC_DIR.
const EnvPrefix = "MDXASSETS"

// ErrInvalid indicates an unreadable config file or an invalid setting.
var ErrInvalid = errors.New("invalid configuration")

// Settings holds the tunable layout and matching rules.
type Settings struct {
	// ContentDir is the activities directory, relative to the project root
	ContentDir string `mapstructure:"content_dir"`

	// PublicDir is the asset root, relative to the project root
	PublicDir string `mapstructure:"public_dir"`

	// DocumentGlob selects documents under the content root
	DocumentGlob string `mapstructure:"document_glob"`

	// InboxPrefix is the web path of the staging folder
	InboxPrefix string `mapstructure:"inbox_prefix"`

	// ComponentDir is the logical import path holding the figure components
	ComponentDir string `mapstructure:"component_dir"`

	// MigratedPrefixes are site-root paths that are already organized
	MigratedPrefixes []string `mapstructure:"migrated_prefixes"`

	// ImageExtensions are the recognized image file extensions
	ImageExtensions []string `mapstructure:"image_extensions"`

	// BlueprintPath is the new-activity template, relative to the project root
	BlueprintPath string `mapstructure:"blueprint_path"`
}

// Config is the resolved configuration for one run.
type Config struct {
	Paths    Paths
	Settings Settings
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		ContentDir:       "src/content/docs/activities",
		PublicDir:        "public",
		DocumentGlob:     "**/*.mdx",
		InboxPrefix:      "/images/_inbox/",
		ComponentDir:     "@/components",
		MigratedPrefixes: []string{"/images/", "/activity01/"},
		ImageExtensions:  []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".avif"},
		BlueprintPath:    "blueprints/activity.mdx",
	}
}

// Load resolves settings for the project rooted at root.
func Load(root string) (*Config, error) {
	defaults := DefaultSettings()
	v := viper.New()

	v.SetDefault("content_dir", defaults.ContentDir)
	v.SetDefault("public_dir", defaults.PublicDir)
	v.SetDefault("document_glob", defaults.DocumentGlob)
	v.SetDefault("inbox_prefix", defaults.InboxPrefix)
	v.SetDefault("component_dir", defaults.ComponentDir)
	v.SetDefault("migrated_prefixes", defaults.MigratedPrefixes)
	v.SetDefault("image_extensions", defaults.ImageExtensions)
	v.SetDefault("blueprint_path", defaults.BlueprintPath)

	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(root)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The config file is optional; a broken one is not.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: failed to read config file: %v", ErrInvalid, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal config: %v", ErrInvalid, err)
	}
	if err := s.normalize(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return &Config{
		Paths:    NewPaths(root, s),
		Settings: s,
	}, nil
}

// normalize canonicalizes prefixes and extensions and validates the result.
func (s *Settings) normalize() error {
	if s.ContentDir == "" || s.PublicDir == "" {
		return fmt.Errorf("content_dir and public_dir must not be empty")
	}
	if s.DocumentGlob == "" {
		return fmt.Errorf("document_glob must not be empty")
	}

	prefix := strings.TrimSpace(s.InboxPrefix)
	if prefix == "" || !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("inbox_prefix must be an absolute web path, got %q", s.InboxPrefix)
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	s.InboxPrefix = path.Clean(prefix) + "/"

	s.ComponentDir = strings.TrimSuffix(s.ComponentDir, "/")

	exts := make([]string, 0, len(s.ImageExtensions))
	for _, ext := range s.ImageExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	if len(exts) == 0 {
		return fmt.Errorf("image_extensions must not be empty")
	}
	s.ImageExtensions = exts

	return nil
}

// ComponentImportPath returns the logical source path of a component,
// e.g. "@/components/ImageFigure.astro".
func (s Settings) ComponentImportPath(component string) string {
	return s.ComponentDir + "/" + component + ".astro"
}
