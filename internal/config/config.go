package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Options is the application configuration. It is loaded once at startup
// and passed explicitly into the components that need it; nothing reads
// configuration ambiently.
type Options struct {
	// Editor is the program used to open selected matches.
	Editor string `toml:"editor"`
	// EditorVariant picks the command dialect: "vim", "line", "single"
	// or "plain". Empty means guess from the editor name.
	EditorVariant string `toml:"editor_variant"`
	// IndexTool is the identifier-database query program (gid-style
	// grep output: file:line:text).
	IndexTool string `toml:"index_tool"`
	// IndexArgs are extra arguments passed before the pattern.
	IndexArgs []string `toml:"index_args"`
	// BuildTool rebuilds the identifier database.
	BuildTool string `toml:"build_tool"`
	// Window is the default extended-search window (lines above/below
	// an anchor match). 0 means same-line correlation only.
	Window int `toml:"window"`
	// Verbose enables per-line diagnostics in the log.
	Verbose bool `toml:"verbose"`
	// LibraryPaths are scanned by the binary-symbol lookup.
	LibraryPaths []string `toml:"library_paths"`
}

// Service handles loading and scaffolding the configuration file.
type Service interface {
	Load() (*Options, error)
	LoadFromPath(path string) (*Options, error)
	WriteDefault() (string, error)
	Path() string
}

type service struct {
	filePath string
}

// NewService creates a config service rooted at the user config dir.
func NewService() Service {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return &service{
		filePath: filepath.Join(configDir, "idseek", "config.toml"),
	}
}

// Path returns the config file location.
func (s *service) Path() string {
	return s.filePath
}

// Load loads the configuration, returning defaults when no file exists.
func (s *service) Load() (*Options, error) {
	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		return Default(), nil
	}
	return s.LoadFromPath(s.filePath)
}

// LoadFromPath loads configuration from a specific path. Unknown fields
// and type mismatches are errors, not silently ignored.
func (s *service) LoadFromPath(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	opts := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(opts); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if opts.Window < 0 {
		return nil, fmt.Errorf("config %s: window must not be negative", path)
	}
	return opts, nil
}

// WriteDefault scaffolds a default config file and returns its path. An
// existing file is left alone.
func (s *service) WriteDefault() (string, error) {
	if _, err := os.Stat(s.filePath); err == nil {
		return s.filePath, fmt.Errorf("config already exists: %s", s.filePath)
	}
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := toml.Marshal(Default())
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return s.filePath, nil
}

// Default returns the default configuration.
func Default() *Options {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vim"
	}
	return &Options{
		Editor:    editor,
		IndexTool: "gid",
		BuildTool: "mkid",
		Window:    0,
		LibraryPaths: []string{
			"/usr/lib",
			"/usr/local/lib",
		},
	}
}
