package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

/*
Config System Design:
This configuration system implements a hierarchical config with the following precedence
(highest to lowest priority):

1. Runtime overrides (CLI flags)
2. Environment variables (TBPROMPT_*, optionally loaded from .env)
3. Local project config (.tbprompt/*.tbprompt.{yaml,json})
4. Global user config ($XDG_CONFIG_HOME/tbprompt/*.tbprompt.{yaml,json})
5. Default values (embedded defaults.yaml)

The system supports:
- Multiple config files in each directory, merged alphabetically
- Automatic merging of lists (they combine)
- Deep merging of maps
- Override of scalar values
- Tracking of where each config value originated
- Schema validation of the final config

Example:
If you have these files:
~/.config/tbprompt/models.tbprompt.yaml:  { models: { local: {...} } }
./.tbprompt/models.tbprompt.yaml:         { activeModel: local }
The result keeps the default models, adds "local" and makes it active.
*/

const (
	appName    = "tbprompt"
	envPrefix  = "TBPROMPT"
	fileSuffix = "." + appName
)

//go:embed defaults.yaml
var defaultsYAML []byte

// envVarConfig defines an environment variable mapping
type envVarConfig struct {
	key      string // Key in the config
	envVar   string // Environment variable name
	isSecret bool   // Whether to redact in output
}

// Environment variables that do not follow the TBPROMPT_<KEY> pattern
var envVars = []envVarConfig{
	{key: "apikey", envVar: "TBPROMPT_API_KEY", isSecret: true},
	{key: "activemodel", envVar: "TBPROMPT_MODEL"},
	{key: "editor.platform", envVar: "TBPROMPT_PLATFORM"},
}

// Paths lists the directories searched for config files.
type Paths struct {
	Global string
	Local  string
}

// DefaultPaths returns $XDG_CONFIG_HOME/tbprompt and ./.tbprompt.
func DefaultPaths() (Paths, error) {
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, err
		}
		xdgConfig = filepath.Join(home, ".config")
	}
	return Paths{
		Global: filepath.Join(xdgConfig, appName),
		Local:  "." + appName,
	}, nil
}

type configSource struct {
	value  interface{}
	source string
}

// New loads the configuration from the default locations and applies overrides.
func New(overrides *RuntimeOverrides) (*ConfigSchema, error) {
	loadEnv()

	paths, err := DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("error finding config directory: %w", err)
	}
	return Load(paths, overrides)
}

// Load builds the configuration from the embedded defaults, the files in
// paths and the environment, then applies overrides and validates the result.
func Load(paths Paths, overrides *RuntimeOverrides) (*ConfigSchema, error) {
	sources := make(map[string][]configSource)

	merged, err := readDefaults()
	if err != nil {
		return nil, fmt.Errorf("error loading defaults: %w", err)
	}

	known := GetKnownKeys()
	var warnings []string

	for _, dir := range []string{paths.Global, paths.Local} {
		if dir == "" {
			continue
		}
		files, err := findConfigFiles(dir)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}

		for _, f := range files {
			fv := viper.New()
			fv.SetConfigFile(f)
			if err := fv.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file %s: %w", f, err)
			}

			settings := fv.AllSettings()
			trackSources(sources, "", settings, f)
			for _, key := range flattenKeys("", settings) {
				if !IsKnownKey(known, key) {
					warnings = append(warnings, fmt.Sprintf("unknown config key %q in %s", key, f))
				}
			}

			merged, err = mergeSettings(merged, settings)
			if err != nil {
				return nil, fmt.Errorf("error merging config from %s: %w", f, err)
			}
		}
	}

	v := viper.New()
	if err := v.MergeConfigMap(merged); err != nil {
		return nil, fmt.Errorf("error applying config: %w", err)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, env := range envVars {
		if err := v.BindEnv(env.key, env.envVar); err != nil {
			return nil, fmt.Errorf("error binding %s: %w", env.envVar, err)
		}
	}
	trackEnvSources(sources, v)

	var cfg ConfigSchema
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.sources = sources
	cfg.Warnings = warnings

	if err := overrides.apply(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readDefaults() (map[string]interface{}, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaultsYAML)); err != nil {
		return nil, fmt.Errorf("could not read defaults: %w", err)
	}
	return v.AllSettings(), nil
}

// findConfigFiles returns all *.tbprompt.{yaml,yml,json} files in a directory,
// sorted by name
func findConfigFiles(dir string) ([]string, error) {
	var files []string
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, fileSuffix+".yaml") ||
			strings.HasSuffix(name, fileSuffix+".yml") ||
			strings.HasSuffix(name, fileSuffix+".json") {
			files = append(files, filepath.Join(dir, name))
		}
	}
	sort.Strings(files)
	return files, nil
}

// mergeSettings merges settings into existing: lists combine without
// duplicates, maps merge recursively and scalars are replaced.
func mergeSettings(existing, settings map[string]interface{}) (map[string]interface{}, error) {
	result := make(map[string]interface{}, len(existing))
	for k, v := range existing {
		result[k] = v
	}

	for key, value := range settings {
		current, ok := result[key]
		if !ok || current == nil {
			result[key] = value
			continue
		}

		switch currentVal := current.(type) {
		case []interface{}:
			newSlice, ok := value.([]interface{})
			if !ok {
				return nil, fmt.Errorf("type mismatch for key %s: expected list, got %T", key, value)
			}
			result[key] = combineLists(currentVal, newSlice)

		case map[string]interface{}:
			newMap, ok := value.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("type mismatch for key %s: expected map, got %T", key, value)
			}
			merged, err := mergeSettings(currentVal, newMap)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			result[key] = merged

		default:
			result[key] = value
		}
	}
	return result, nil
}

func combineLists(existing, added []interface{}) []interface{} {
	seen := make(map[string]bool)
	combined := make([]interface{}, 0, len(existing)+len(added))
	for _, list := range [][]interface{}{existing, added} {
		for _, v := range list {
			id := fmt.Sprintf("%T:%v", v, v)
			if seen[id] {
				continue
			}
			seen[id] = true
			combined = append(combined, v)
		}
	}
	return combined
}

func flattenKeys(prefix string, settings map[string]interface{}) []string {
	var keys []string
	for k, v := range settings {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]interface{}); ok && len(nested) > 0 {
			keys = append(keys, flattenKeys(key, nested)...)
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func trackSources(sources map[string][]configSource, prefix string, settings map[string]interface{}, filename string) {
	for key, value := range settings {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if nested, ok := value.(map[string]interface{}); ok {
			trackSources(sources, full, nested, filename)
			continue
		}
		sources[full] = append(sources[full], configSource{
			value:  value,
			source: filename,
		})
	}
}

// trackEnvSources records every known key currently supplied by the environment.
func trackEnvSources(sources map[string][]configSource, v *viper.Viper) {
	explicit := make(map[string]string)
	for _, env := range envVars {
		explicit[env.key] = env.envVar
	}

	for _, key := range v.AllKeys() {
		names := []string{envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))}
		if name, ok := explicit[key]; ok {
			names = append([]string{name}, names...)
		}
		for _, name := range names {
			if val, ok := os.LookupEnv(name); ok && val != "" {
				sources[key] = append(sources[key], configSource{
					value:  val,
					source: fmt.Sprintf("%s environment variable", name),
				})
				break
			}
		}
	}
}

// Validate validates the configuration against the schema
func (s *ConfigSchema) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}

	// Additional custom validations
	if _, ok := s.Models[s.ActiveModel]; !ok {
		return fmt.Errorf("activeModel %q must be one of the configured models: %s",
			s.ActiveModel, strings.Join(s.ModelNames(), ", "))
	}

	return nil
}

// ModelNames returns the configured model keys, sorted.
func (s *ConfigSchema) ModelNames() []string {
	names := make([]string, 0, len(s.Models))
	for name := range s.Models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
