package config

// Providers understood by the llm package.
const (
	ProviderGoogleAI  = "googleai"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

type Model struct {
	Provider    string  `mapstructure:"provider" json:"provider" validate:"required,oneof=googleai openai anthropic" jsonschema:"required,enum=googleai,enum=openai,enum=anthropic,description=LLM provider"`
	Name        string  `mapstructure:"name" json:"name" validate:"required" jsonschema:"required,description=Provider model name"`
	MaxTokens   int     `mapstructure:"maxTokens" json:"maxTokens" validate:"gte=0" jsonschema:"description=Maximum tokens in a reply (0 uses the provider default)"`
	Temperature float64 `mapstructure:"temperature" json:"temperature" validate:"gte=0,lte=2" jsonschema:"description=Sampling temperature,minimum=0,maximum=2"`
}

type Log struct {
	LogLevel string `mapstructure:"level" json:"level" validate:"oneof=DEBUG INFO WARN ERROR" jsonschema:"enum=DEBUG,enum=INFO,enum=WARN,enum=ERROR,default=WARN"`
	LogFile  string `mapstructure:"file" json:"file" jsonschema:"description=Write logs to this file instead of stderr"`
}

type Editor struct {
	Platform           string `mapstructure:"platform" json:"platform" validate:"required" jsonschema:"default=midjourney,description=Target platform passed to the compiler"`
	RewriteInstruction string `mapstructure:"rewriteInstruction" json:"rewriteInstruction" jsonschema:"description=Instruction used by ai rewrite when none is given"`
	Copy               bool   `mapstructure:"copy" json:"copy" jsonschema:"description=Copy compiled prompts to the clipboard by default"`
}

type ConfigSchema struct {
	ActiveModel string           `mapstructure:"activeModel" json:"activeModel" validate:"required" jsonschema:"required,description=Key of the model in models used for AI features"`
	APIKey      string           `mapstructure:"apiKey" json:"apiKey" jsonschema:"description=API key for the active model; overrides the provider environment variable"`
	Models      map[string]Model `mapstructure:"models" json:"models" validate:"required,min=1,dive" jsonschema:"required"`
	Log         Log              `mapstructure:"log" json:"log"`
	Editor      Editor           `mapstructure:"editor" json:"editor"`
	KeyMap      KeyMap           `mapstructure:"keyMap" json:"keyMap"`

	// Warnings collected while loading, such as unknown keys.
	Warnings []string `mapstructure:"-" json:"-"`

	// Internal fields for printing
	sources map[string][]configSource
}

// Model returns the active model settings.
func (s *ConfigSchema) Model() Model {
	return s.Models[s.ActiveModel]
}
