package session

import (
	"strings"
	"time"
)

const (
	githubConfigurationKeyConstant         = "github"
	workspaceConfigurationKeyConstant      = "workspace"
	usernameConfigurationKeyConstant       = "username"
	apiBaseURLConfigurationKeyConstant     = "api_base_url"
	requestTimeoutConfigurationKeyConstant = "request_timeout_seconds"
	workspaceRootConfigurationKeyConstant  = "root"
	workspaceKeepConfigurationKeyConstant  = "keep"
	defaultAPIBaseURLConstant              = "https://api.github.com"
	defaultRequestTimeoutSecondsConstant   = 30
	configurationKeySeparatorConstant      = "."
)

// GitHubConfiguration captures persistent settings for the GitHub account.
type GitHubConfiguration struct {
	Username              string `mapstructure:"username"`
	APIBaseURL            string `mapstructure:"api_base_url"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds"`
}

// WorkspaceConfiguration captures persistent settings for the clone workspace.
type WorkspaceConfiguration struct {
	Root string `mapstructure:"root"`
	Keep bool   `mapstructure:"keep"`
}

// CommandConfiguration aggregates the configuration consumed by the session
// commands.
type CommandConfiguration struct {
	GitHub    GitHubConfiguration    `mapstructure:"github"`
	Workspace WorkspaceConfiguration `mapstructure:"workspace"`
}

// DefaultCommandConfiguration returns baseline configuration values.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		GitHub: GitHubConfiguration{
			Username:              "",
			APIBaseURL:            defaultAPIBaseURLConstant,
			RequestTimeoutSeconds: defaultRequestTimeoutSecondsConstant,
		},
		Workspace: WorkspaceConfiguration{
			Root: "",
			Keep: false,
		},
	}
}

// DefaultConfigurationValues produces Viper defaults for the session commands.
func DefaultConfigurationValues() map[string]any {
	defaults := DefaultCommandConfiguration()
	values := map[string]any{}
	values[configurationKey(githubConfigurationKeyConstant, usernameConfigurationKeyConstant)] = defaults.GitHub.Username
	values[configurationKey(githubConfigurationKeyConstant, apiBaseURLConfigurationKeyConstant)] = defaults.GitHub.APIBaseURL
	values[configurationKey(githubConfigurationKeyConstant, requestTimeoutConfigurationKeyConstant)] = defaults.GitHub.RequestTimeoutSeconds
	values[configurationKey(workspaceConfigurationKeyConstant, workspaceRootConfigurationKeyConstant)] = defaults.Workspace.Root
	values[configurationKey(workspaceConfigurationKeyConstant, workspaceKeepConfigurationKeyConstant)] = defaults.Workspace.Keep
	return values
}

func configurationKey(sectionName string, fieldName string) string {
	return sectionName + configurationKeySeparatorConstant + fieldName
}

// Sanitize trims whitespace and applies defaults to unset configuration values.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.GitHub.Username = strings.TrimSpace(configuration.GitHub.Username)
	sanitized.GitHub.APIBaseURL = strings.TrimSpace(configuration.GitHub.APIBaseURL)
	if len(sanitized.GitHub.APIBaseURL) == 0 {
		sanitized.GitHub.APIBaseURL = defaultAPIBaseURLConstant
	}
	if sanitized.GitHub.RequestTimeoutSeconds <= 0 {
		sanitized.GitHub.RequestTimeoutSeconds = defaultRequestTimeoutSecondsConstant
	}
	sanitized.Workspace.Root = strings.TrimSpace(configuration.Workspace.Root)
	return sanitized
}

// RequestTimeout converts the configured timeout to a duration.
func (configuration GitHubConfiguration) RequestTimeout() time.Duration {
	return time.Duration(configuration.RequestTimeoutSeconds) * time.Second
}
