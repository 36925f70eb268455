package config

import (
	"fmt"
	"strings"
)

// RuntimeOverrides holds configuration values that can be overridden at runtime
// via CLI flags or other means
type RuntimeOverrides struct {
	ActiveModel *string
	APIKey      *string
	MaxTokens   *int
	Temperature *float64
	LogLevel    *string
	LogFile     *string
	Platform    *string
}

func (o *RuntimeOverrides) apply(cfg *ConfigSchema) error {
	if o == nil {
		return nil
	}

	if o.ActiveModel != nil {
		if _, exists := cfg.Models[*o.ActiveModel]; !exists {
			return fmt.Errorf("model %q not found in configuration", *o.ActiveModel)
		}
		cfg.ActiveModel = *o.ActiveModel
		cfg.track("activemodel", cfg.ActiveModel)
	}
	if o.APIKey != nil {
		cfg.APIKey = *o.APIKey
		cfg.track("apikey", cfg.APIKey)
	}

	if activeModel, ok := cfg.Models[cfg.ActiveModel]; ok {
		if o.MaxTokens != nil {
			activeModel.MaxTokens = *o.MaxTokens
			cfg.track("models."+cfg.ActiveModel+".maxtokens", activeModel.MaxTokens)
		}
		if o.Temperature != nil {
			activeModel.Temperature = *o.Temperature
			cfg.track("models."+cfg.ActiveModel+".temperature", activeModel.Temperature)
		}
		cfg.Models[cfg.ActiveModel] = activeModel
	}

	if o.LogLevel != nil {
		cfg.Log.LogLevel = strings.ToUpper(*o.LogLevel)
		cfg.track("log.level", cfg.Log.LogLevel)
	}
	if o.LogFile != nil {
		cfg.Log.LogFile = *o.LogFile
		cfg.track("log.file", cfg.Log.LogFile)
	}
	if o.Platform != nil {
		cfg.Editor.Platform = *o.Platform
		cfg.track("editor.platform", cfg.Editor.Platform)
	}

	return nil
}

func (s *ConfigSchema) track(key string, value interface{}) {
	if s.sources == nil {
		s.sources = make(map[string][]configSource)
	}
	s.sources[key] = append(s.sources[key], configSource{value: value, source: "command line flag"})
}
