// Package githubauth resolves GitHub access tokens from the process
// environment so interactive prompting only occurs as a last resort.
package githubauth

import (
	"os"
	"strings"
)

// Environment variable names consulted for a GitHub access token, in
// preference order.
const (
	EnvGitHubCLIToken = "GH_TOKEN"
	EnvGitHubToken    = "GITHUB_TOKEN"
	EnvGitHubAPIToken = "GITHUB_API_TOKEN"
)

var tokenPreferenceOrder = []string{
	EnvGitHubCLIToken,
	EnvGitHubToken,
	EnvGitHubAPIToken,
}

// EnvironmentLookup reads one environment variable, mirroring os.LookupEnv.
type EnvironmentLookup func(key string) (string, bool)

// ResolveToken returns the first non-blank token found in preference order.
// A nil lookup falls back to the process environment.
func ResolveToken(lookupEnvironment EnvironmentLookup) (string, bool) {
	if lookupEnvironment == nil {
		lookupEnvironment = os.LookupEnv
	}
	for _, variableName := range tokenPreferenceOrder {
		rawValue, present := lookupEnvironment(variableName)
		if !present {
			continue
		}
		trimmedValue := strings.TrimSpace(rawValue)
		if len(trimmedValue) > 0 {
			return trimmedValue, true
		}
	}
	return "", false
}
