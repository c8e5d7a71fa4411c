package configuration

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/bstmap/ierrors"
)

var (
	// ErrUnknownConfigFormat is returned if the format of the config file is unknown.
	ErrUnknownConfigFormat = ierrors.New("unknown config file format")
)

// Configuration holds config parameters from several sources (file, env vars, flags).
type Configuration struct {
	config *koanf.Koanf
}

// New returns a new configuration.
func New() *Configuration {
	return &Configuration{
		config: koanf.New("."),
	}
}

// LoadFile loads parameters from a JSON, YAML or TOML file and merges them into the loaded config.
// Existing keys will be overwritten.
func (c *Configuration) LoadFile(filePath string) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return ierrors.Errorf("given path is a directory instead of a file %s", filePath)
	}

	parser, err := parserForFile(filePath)
	if err != nil {
		return err
	}

	if err := c.config.Load(file.Provider(filePath), parser); err != nil {
		return ierrors.Wrapf(err, "failed to load config file %s", filePath)
	}

	return nil
}

// StoreFile stores the current config to a JSON, YAML or TOML file.
func (c *Configuration) StoreFile(filePath string, perm os.FileMode) error {
	parser, err := parserForFile(filePath)
	if err != nil {
		return err
	}

	data, err := parser.Marshal(c.config.Raw())
	if err != nil {
		return ierrors.Wrap(err, "unable to marshal config file")
	}

	if err := os.WriteFile(filePath, data, perm); err != nil {
		return ierrors.Wrap(err, "unable to save config file")
	}

	return nil
}

// LoadFlagSet loads parameters from a FlagSet (spf13/pflag lib) including
// default values and merges them into the loaded config.
// Existing keys will only be overwritten, if they were set via command line.
// If not given via command line, default values will only be used if they did not exist beforehand.
func (c *Configuration) LoadFlagSet(flagSet *flag.FlagSet) error {
	return c.config.Load(lowerPosflagProvider(flagSet, ".", c.config), nil)
}

// LoadEnvironmentVars loads parameters from env vars and merges them into the loaded config.
// The prefix is used to filter the env vars.
// Only existing keys will be overwritten, all other keys are ignored.
func (c *Configuration) LoadEnvironmentVars(prefix string) error {
	if prefix != "" {
		prefix += "_"
	}

	return c.config.Load(env.Provider(prefix, ".", func(s string) string {
		mapKey := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, prefix)), "_", ".")
		if !c.config.Exists(mapKey) {
			// only accept values from env vars that already exist in the config
			return ""
		}

		return mapKey
	}), nil)
}

// String returns the string value of a given key path (case-insensitive) or "" if the path does not exist.
func (c *Configuration) String(path string) string {
	return c.config.String(strings.ToLower(path))
}

// Int returns the int value of a given key path (case-insensitive) or 0 if the path does not exist.
func (c *Configuration) Int(path string) int {
	return c.config.Int(strings.ToLower(path))
}

// All returns a flat map of all keys and their values.
func (c *Configuration) All() map[string]interface{} {
	return c.config.All()
}

// Unmarshal unmarshals the given key path (case-insensitive) into the given struct using the "json" tags.
func (c *Configuration) Unmarshal(path string, out interface{}) error {
	return c.config.UnmarshalWithConf(strings.ToLower(path), out, koanf.UnmarshalConf{Tag: "json"})
}

func parserForFile(filePath string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		return &JSONLowerParser{prefix: "", indent: "  "}, nil
	case ".yaml", ".yml":
		return &YAMLLowerParser{}, nil
	case ".toml":
		return &TOMLLowerParser{}, nil
	default:
		return nil, ierrors.Wrapf(ErrUnknownConfigFormat, "extension %q", filepath.Ext(filePath))
	}
}
