package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	tomlparser "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrInvalidTOML is returned when a config file cannot be parsed.
var ErrInvalidTOML = errors.New("invalid TOML")

const (
	// GlobalConfigDir is the directory under the user config dir holding
	// the global configuration.
	GlobalConfigDir = "termlint"

	// GlobalConfigFile is the global configuration file name.
	GlobalConfigFile = "config.toml"

	// ProjectConfigFile is the per-project configuration file name.
	ProjectConfigFile = ".termlint.toml"

	// EnvPrefix is the environment variable prefix.
	EnvPrefix = "TERMLINT_"
)

// envSections are the known top-level config sections, used to map
// TERMLINT_DIAGNOSTICS_PLATFORM_HINTS onto diagnostics.platform_hints.
var envSections = []string{"diagnostics", "schema", "output"}

// Loader loads configuration from all sources with precedence
// (highest to lowest): CLI flags, environment, project file, global file,
// defaults.
type Loader struct {
	k       *koanf.Koanf
	homeDir string
	workDir string
}

// NewLoader creates a Loader rooted at the user's config and working
// directories.
func NewLoader() (*Loader, error) {
	homeDir, err := os.UserConfigDir()
	if err != nil {
		return nil, errors.Wrap(err, "resolving user config directory")
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "resolving working directory")
	}

	return NewLoaderWithDirs(homeDir, workDir), nil
}

// NewLoaderWithDirs creates a Loader with explicit directories, for tests.
func NewLoaderWithDirs(homeDir, workDir string) *Loader {
	return &Loader{
		k:       koanf.New("."),
		homeDir: homeDir,
		workDir: workDir,
	}
}

// GlobalConfigPath returns the global config file path.
func (l *Loader) GlobalConfigPath() string {
	return filepath.Join(l.homeDir, GlobalConfigDir, GlobalConfigFile)
}

// ProjectConfigPath returns the project config file path.
func (l *Loader) ProjectConfigPath() string {
	return filepath.Join(l.workDir, ProjectConfigFile)
}

// Load resolves the configuration from every source. The flags map holds
// dotted koanf paths (e.g. "output.no_color") set from CLI flags; it is
// the highest-precedence layer.
func (l *Loader) Load(flags map[string]any) (*Config, error) {
	// Fresh koanf instance per load.
	l.k = koanf.New(".")

	if err := l.k.Load(confmap.Provider(defaultsToMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "loading defaults")
	}

	if err := l.loadTOMLFile(l.GlobalConfigPath()); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "loading global config")
	}

	if err := l.loadTOMLFile(l.ProjectConfigPath()); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "loading project config")
	}

	envOpt := env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: l.envTransform,
	}

	if err := l.k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, errors.Wrap(err, "loading environment")
	}

	if len(flags) > 0 {
		if err := l.k.Load(confmap.Provider(flags, "."), nil); err != nil {
			return nil, errors.Wrap(err, "loading flags")
		}
	}

	var cfg Config

	unmarshalConf := koanf.UnmarshalConf{
		Tag:           "koanf",
		DecoderConfig: CustomDecoderConfig(&cfg),
	}

	if err := l.k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	return &cfg, nil
}

// loadTOMLFile merges one TOML file into the koanf instance. A missing
// file is reported via os.IsNotExist so callers can skip it.
func (l *Loader) loadTOMLFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	if err := l.k.Load(file.Provider(path), tomlparser.Parser()); err != nil {
		return errors.Wrapf(ErrInvalidTOML, "%s: %v", path, err)
	}

	return nil
}

// envTransform maps TERMLINT_SECTION_SOME_KEY onto section.some_key.
func (*Loader) envTransform(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))

	for _, section := range envSections {
		prefix := section + "_"
		if strings.HasPrefix(key, prefix) {
			return section + "." + strings.TrimPrefix(key, prefix), value
		}
	}

	return key, value
}
