package llm

import (
	"os"
	"strings"

	"github.com/isaacphi/tbprompt/internal/config"
	"github.com/isaacphi/tbprompt/internal/domain"
)

// providerEnvVars lists the environment variables checked for each provider,
// in order.
var providerEnvVars = map[string][]string{
	config.ProviderGoogleAI:  {"GEMINI_API_KEY", "GOOGLE_API_KEY"},
	config.ProviderOpenAI:    {"OPENAI_API_KEY"},
	config.ProviderAnthropic: {"ANTHROPIC_API_KEY"},
}

// ResolveAPIKey returns configured when it is set, otherwise the first
// non-empty provider environment variable.
func ResolveAPIKey(provider, configured string) (string, error) {
	if key := strings.TrimSpace(configured); key != "" {
		return key, nil
	}
	for _, name := range providerEnvVars[provider] {
		if key := strings.TrimSpace(os.Getenv(name)); key != "" {
			return key, nil
		}
	}
	return "", &domain.MissingCredentialError{
		Provider: provider,
		EnvVars:  providerEnvVars[provider],
	}
}
