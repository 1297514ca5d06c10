// Package config locates and loads the configuration that points jane at
// its database file.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/calvinalkan/jane/internal/fs"

	"github.com/BurntSushi/toml"
	"github.com/tailscale/hujson"
)

// Error variables for configuration loading.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrConfigWrite        = errors.New("cannot write config file")
	ErrDatabaseEmpty      = errors.New("database cannot be empty")
	ErrInvalidColor       = errors.New("invalid color mode (must be auto, always or never)")
	ErrInvalidLogLevel    = errors.New("invalid log level (must be debug, info, warn or error)")
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

const (
	// ProjectFileName is the optional per-directory config file (JSONC).
	ProjectFileName = ".jane.json"

	appName        = "jane"
	globalFileName = "config.toml"

	dirPerms  = 0o750
	filePerms = 0o600
)

// Config holds all configuration options.
type Config struct {
	// From config files (serialized)
	Database string `json:"database,omitempty" toml:"database,omitempty"`
	Color    string `json:"color,omitempty"    toml:"color,omitempty"`
	LogLevel string `json:"log_level,omitempty" toml:"log_level,omitempty"`

	// Resolved values (computed, not serialized)
	EffectiveCwd string `json:"-" toml:"-"` // Absolute working directory
	DatabaseAbs  string `json:"-" toml:"-"` // Absolute database path, empty if none configured

	// Sources tracks which config files were loaded (for diagnostics)
	Sources Sources `json:"-" toml:"-"`
}

// Sources tracks which config files were loaded.
type Sources struct {
	Global   string // Path to global config if loaded
	Project  string // Path to project config if loaded
	Explicit string // Path given with -c/--config
	Database string // Which layer set the database: "global", "project", "explicit", "flag" or ""
}

// globalFile is the on-disk shape of the global TOML config.
type globalFile struct {
	General Config `toml:"general"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Color:    ColorAuto,
		LogLevel: "warn",
	}
}

// GlobalPath returns the path to the global config file.
// Uses $XDG_CONFIG_HOME/jane/config.toml if set, otherwise ~/.config/jane/config.toml.
// Returns empty string if home directory cannot be determined.
func GlobalPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, appName, globalFileName)
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", appName, globalFileName)
	}

	return ""
}

// DefaultDatabasePath returns ~/<home dir name>_todo.json, or an empty
// string if $HOME is unset.
func DefaultDatabasePath(env map[string]string) string {
	home := env["HOME"]
	if home == "" {
		return ""
	}

	return filepath.Join(home, filepath.Base(home)+"_todo.json")
}

// LoadInput holds the inputs for Load.
type LoadInput struct {
	FS               fs.FS             // filesystem to read config files from
	WorkDirOverride  string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath       string            // -c/--config flag value
	DatabaseOverride string            // --db flag value
	HasDatabaseFlag  bool              // --db was given, even if empty
	Env              map[string]string // environment variables
}

// Load loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config (~/.config/jane/config.toml or $XDG_CONFIG_HOME/jane/config.toml)
// 3. Project config file in the working directory (.jane.json, if exists)
// 4. Explicit config file via ConfigPath (if non-empty)
// 5. CLI overrides.
//
// Relative database paths are resolved against the directory of the file
// that set them, or the working directory for the flag.
func Load(input LoadInput) (Config, error) {
	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	} else if !filepath.IsAbs(workDir) {
		abs, err := filepath.Abs(workDir)
		if err != nil {
			return Config{}, fmt.Errorf("cannot resolve working directory: %w", err)
		}

		workDir = abs
	}

	cfg := DefaultConfig()
	cfg.EffectiveCwd = workDir

	if globalPath := GlobalPath(input.Env); globalPath != "" {
		globalCfg, loaded, err := loadFile(input.FS, globalPath, false)
		if err != nil {
			return Config{}, err
		}

		if loaded {
			cfg.Sources.Global = globalPath
			cfg = merge(cfg, globalCfg, filepath.Dir(globalPath), "global")
		}
	}

	projectPath := filepath.Join(workDir, ProjectFileName)

	projectCfg, loaded, err := loadFile(input.FS, projectPath, false)
	if err != nil {
		return Config{}, err
	}

	if loaded {
		cfg.Sources.Project = projectPath
		cfg = merge(cfg, projectCfg, workDir, "project")
	}

	if input.ConfigPath != "" {
		explicitPath := input.ConfigPath
		if !filepath.IsAbs(explicitPath) {
			explicitPath = filepath.Join(workDir, explicitPath)
		}

		explicitCfg, _, err := loadFile(input.FS, explicitPath, true)
		if err != nil {
			return Config{}, err
		}

		cfg.Sources.Explicit = explicitPath
		cfg = merge(cfg, explicitCfg, filepath.Dir(explicitPath), "explicit")
	}

	if input.HasDatabaseFlag {
		if input.DatabaseOverride == "" {
			return Config{}, ErrDatabaseEmpty
		}

		cfg = merge(cfg, Config{Database: input.DatabaseOverride}, workDir, "flag")
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// WritePath returns the file that `init` should record the database in:
// the explicit config file if one was given, otherwise the global file.
func (c Config) WritePath(env map[string]string) string {
	if c.Sources.Explicit != "" {
		return c.Sources.Explicit
	}

	return GlobalPath(env)
}

// SetDatabase records database in the config file at path, keeping any
// other settings already stored there. Parent directories are created.
// The format follows the file extension: .toml is TOML, anything else JSON.
func SetDatabase(fsys fs.FS, path, database string) error {
	if database == "" {
		return ErrDatabaseEmpty
	}

	existing, _, _, err := readFile(fsys, path, false)
	if err != nil {
		return err
	}

	existing.Database = database

	data, err := marshal(path, existing)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrConfigWrite, path, err)
	}

	if err := fsys.MkdirAll(filepath.Dir(path), dirPerms); err != nil {
		return fmt.Errorf("%w %s: %w", ErrConfigWrite, path, err)
	}

	if err := fsys.WriteFileAtomic(path, data, filePerms); err != nil {
		return fmt.Errorf("%w %s: %w", ErrConfigWrite, path, err)
	}

	return nil
}

// loadFile loads a config file. If mustExist is false, missing files return zero config.
// Returns the config, whether the file was loaded, and any error.
func loadFile(fsys fs.FS, path string, mustExist bool) (Config, bool, error) {
	cfg, explicitEmpty, loaded, err := readFile(fsys, path, mustExist)
	if err != nil {
		return Config{}, false, err
	}

	if explicitEmpty {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, ErrDatabaseEmpty)
	}

	return cfg, loaded, nil
}

// readFile reads and parses a config file without judging its values.
func readFile(fsys fs.FS, path string, mustExist bool) (Config, bool, bool, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if mustExist {
				return Config{}, false, false, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
			}

			return Config{}, false, false, nil
		}

		return Config{}, false, false, fmt.Errorf("%w %s: %w", ErrConfigFileRead, path, err)
	}

	cfg, explicitEmpty, err := parse(path, data)
	if err != nil {
		return Config{}, false, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	return cfg, explicitEmpty, true, nil
}

// parse decodes data according to the file extension.
// Reports whether the database key is present but empty.
func parse(path string, data []byte) (Config, bool, error) {
	if isTOML(path) {
		return parseTOML(data)
	}

	return parseJSONC(data)
}

func parseTOML(data []byte) (Config, bool, error) {
	var file globalFile

	meta, err := toml.Decode(string(data), &file)
	if err != nil {
		return Config{}, false, fmt.Errorf("invalid TOML: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, false, fmt.Errorf("unknown key %q", undecoded[0].String())
	}

	explicitEmpty := meta.IsDefined("general", "database") && file.General.Database == ""

	return file.General, explicitEmpty, nil
}

func parseJSONC(data []byte) (Config, bool, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	dec := json.NewDecoder(bytes.NewReader(standardized))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&cfg); err != nil {
		return Config{}, false, fmt.Errorf("invalid JSON: %w", err)
	}

	// Check whether database was explicitly set to empty
	var raw map[string]any

	_ = json.Unmarshal(standardized, &raw)

	explicitEmpty := false

	if val, exists := raw["database"]; exists {
		if str, ok := val.(string); ok && str == "" {
			explicitEmpty = true
		}
	}

	return cfg, explicitEmpty, nil
}

func marshal(path string, cfg Config) ([]byte, error) {
	if isTOML(path) {
		var buf bytes.Buffer

		if err := toml.NewEncoder(&buf).Encode(globalFile{General: cfg}); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(data, '\n'), nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// merge applies the non-empty fields of overlay to base. A database path
// from overlay is resolved against baseDir.
func merge(base, overlay Config, baseDir, source string) Config {
	if overlay.Database != "" {
		base.Database = overlay.Database
		base.DatabaseAbs = resolvePath(baseDir, overlay.Database)
		base.Sources.Database = source
	}

	if overlay.Color != "" {
		base.Color = overlay.Color
	}

	if overlay.LogLevel != "" {
		base.LogLevel = overlay.LogLevel
	}

	return base
}

func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	return filepath.Join(baseDir, path)
}

func validate(cfg Config) error {
	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColor, cfg.Color)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.LogLevel)
	}

	return nil
}
