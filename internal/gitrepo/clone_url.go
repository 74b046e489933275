package gitrepo

import (
	"fmt"
	"strings"
)

const (
	githubHostConstant                     = "github.com"
	authenticatedCloneURLTemplateConstant  = "https://%s:%s@%s/%s/%s.git"
	redactedCloneURLTemplateConstant       = "https://***@%s/%s/%s.git"
	usernameFieldNameConstant              = "username"
	accessTokenFieldNameConstant           = "access token"
	repositoryNameFieldNameConstant        = "repository name"
	missingCloneInputMessageTemplateFormat = "%s: %s"
)

// CloneTarget identifies a GitHub repository to clone on behalf of a user.
type CloneTarget struct {
	Username       string
	RepositoryName string
}

// MissingCloneInputError reports an empty field required to build a clone URL.
type MissingCloneInputError struct {
	FieldName string
}

// Error names the missing field.
func (inputError MissingCloneInputError) Error() string {
	return fmt.Sprintf(missingCloneInputMessageTemplateFormat, inputError.FieldName, requiredValueMessageConstant)
}

// BuildAuthenticatedCloneURL produces an HTTPS clone URL carrying the access
// token in the userinfo section. The returned string embeds a credential and
// must never appear in logs or terminal output; use RedactedCloneURL for any
// displayed form.
func BuildAuthenticatedCloneURL(target CloneTarget, accessToken string) (string, error) {
	trimmedUsername := strings.TrimSpace(target.Username)
	if len(trimmedUsername) == 0 {
		return "", MissingCloneInputError{FieldName: usernameFieldNameConstant}
	}
	trimmedRepositoryName := strings.TrimSpace(target.RepositoryName)
	if len(trimmedRepositoryName) == 0 {
		return "", MissingCloneInputError{FieldName: repositoryNameFieldNameConstant}
	}
	trimmedAccessToken := strings.TrimSpace(accessToken)
	if len(trimmedAccessToken) == 0 {
		return "", MissingCloneInputError{FieldName: accessTokenFieldNameConstant}
	}

	return fmt.Sprintf(
		authenticatedCloneURLTemplateConstant,
		trimmedUsername,
		trimmedAccessToken,
		githubHostConstant,
		trimmedUsername,
		trimmedRepositoryName,
	), nil
}

// RedactedCloneURL produces the display form of a clone URL with the userinfo
// section masked.
func RedactedCloneURL(target CloneTarget) string {
	return fmt.Sprintf(
		redactedCloneURLTemplateConstant,
		githubHostConstant,
		strings.TrimSpace(target.Username),
		strings.TrimSpace(target.RepositoryName),
	)
}
