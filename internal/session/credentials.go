package session

import (
	"errors"
	"strings"
)

const credentialsRequiredMessageConstant = "github username and access token required"

// ErrCredentialsRequired indicates an authenticated operation was attempted
// without a complete credential pair.
var ErrCredentialsRequired = errors.New(credentialsRequiredMessageConstant)

// Credentials holds the GitHub identity used for authenticated operations.
// Instances live only in process memory and are never persisted.
type Credentials struct {
	Username    string
	AccessToken string
}

// Normalize trims surrounding whitespace from both fields.
func (credentials Credentials) Normalize() Credentials {
	return Credentials{
		Username:    strings.TrimSpace(credentials.Username),
		AccessToken: strings.TrimSpace(credentials.AccessToken),
	}
}

// Complete reports whether both fields are populated.
func (credentials Credentials) Complete() bool {
	normalized := credentials.Normalize()
	return len(normalized.Username) > 0 && len(normalized.AccessToken) > 0
}
