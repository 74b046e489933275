package githubapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURLConstant                  = "https://api.github.com"
	defaultRequestTimeoutConstant           = 30 * time.Second
	authorizationHeaderNameConstant         = "Authorization"
	authorizationHeaderTemplateConstant     = "token %s"
	acceptHeaderNameConstant                = "Accept"
	acceptHeaderValueConstant               = "application/vnd.github.v3+json"
	userRepositoriesEndpointTemplate        = "%s/users/%s/repos?sort=updated"
	repositoryEndpointTemplateConstant      = "%s/repos/%s/%s"
	usernameFieldNameConstant               = "username"
	ownerFieldNameConstant                  = "owner"
	repositoryFieldNameConstant             = "repository"
	accessTokenFieldNameConstant            = "access_token"
	requiredValueMessageConstant            = "value required"
	invalidInputErrorTemplateConstant       = "%s: %s"
	transportErrorTemplateConstant          = "%s request failed: network error"
	statusErrorTemplateConstant             = "%s request rejected: %s"
	responseDecodingErrorTemplateConstant   = "%s response decoding failed: %s"
	requestConstructionErrorTemplate        = "%s request construction failed: %w"
	errorPayloadMessageFieldNameConstant    = "message"
	listUserRepositoriesOperationName       = OperationName("ListUserRepositories")
	deleteRepositoryOperationNameConstant   = OperationName("DeleteRepository")
	unknownServerFailureMessageConstant     = "unknown server error"
	successStatusLowerBoundInclusiveConst   = 200
	successStatusUpperBoundExclusiveConst   = 300
)

// OperationName describes a named GitHub API workflow supported by the client.
type OperationName string

// Repository describes the subset of repository metadata the client decodes.
type Repository struct {
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	Description   string `json:"description"`
	Private       bool   `json:"private"`
	DefaultBranch string `json:"default_branch"`
}

// InvalidInputError surfaces validation issues for operation inputs.
type InvalidInputError struct {
	FieldName string
	Message   string
}

// Error describes the invalid input.
func (inputError InvalidInputError) Error() string {
	return fmt.Sprintf(invalidInputErrorTemplateConstant, inputError.FieldName, inputError.Message)
}

// TransportError reports a request that never produced an HTTP response.
type TransportError struct {
	Operation OperationName
	Cause     error
}

// Error describes the transport failure without exposing request internals.
func (transportError TransportError) Error() string {
	return fmt.Sprintf(transportErrorTemplateConstant, transportError.Operation)
}

// Unwrap exposes the underlying transport failure.
func (transportError TransportError) Unwrap() error {
	return transportError.Cause
}

// StatusError reports a well-formed error response from the API.
type StatusError struct {
	Operation  OperationName
	StatusCode int
	Message    string
}

// Error describes the server-reported failure.
func (statusError StatusError) Error() string {
	return fmt.Sprintf(statusErrorTemplateConstant, statusError.Operation, statusError.Message)
}

// ResponseDecodingError indicates JSON decoding failures for successful responses.
type ResponseDecodingError struct {
	Operation OperationName
	Cause     error
}

// Error describes the decoding failure.
func (decodingError ResponseDecodingError) Error() string {
	return fmt.Sprintf(responseDecodingErrorTemplateConstant, decodingError.Operation, decodingError.Cause)
}

// Unwrap exposes the underlying JSON error.
func (decodingError ResponseDecodingError) Unwrap() error {
	return decodingError.Cause
}

// Options configures client construction.
type Options struct {
	BaseURL        string
	RequestTimeout time.Duration
	HTTPClient     *http.Client
}

// Client issues GitHub REST API requests.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient constructs a GitHub API client, applying the default endpoint and
// a bounded request timeout when the options leave them unset.
func NewClient(options Options) *Client {
	baseURL := strings.TrimSuffix(strings.TrimSpace(options.BaseURL), "/")
	if len(baseURL) == 0 {
		baseURL = defaultBaseURLConstant
	}

	requestTimeout := options.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeoutConstant
	}

	httpClient := &http.Client{Timeout: requestTimeout}
	if options.HTTPClient != nil {
		// Copy so the caller's client is never mutated.
		clientCopy := *options.HTTPClient
		if clientCopy.Timeout == 0 {
			clientCopy.Timeout = requestTimeout
		}
		httpClient = &clientCopy
	}

	return &Client{httpClient: httpClient, baseURL: baseURL}
}

// ListUserRepositories retrieves the repositories owned by the supplied user,
// most recently updated first.
func (client *Client) ListUserRepositories(executionContext context.Context, username string, accessToken string) ([]Repository, error) {
	trimmedUsername := strings.TrimSpace(username)
	if len(trimmedUsername) == 0 {
		return nil, InvalidInputError{FieldName: usernameFieldNameConstant, Message: requiredValueMessageConstant}
	}
	if len(strings.TrimSpace(accessToken)) == 0 {
		return nil, InvalidInputError{FieldName: accessTokenFieldNameConstant, Message: requiredValueMessageConstant}
	}

	endpoint := fmt.Sprintf(userRepositoriesEndpointTemplate, client.baseURL, url.PathEscape(trimmedUsername))
	responsePayload, requestError := client.execute(executionContext, listUserRepositoriesOperationName, http.MethodGet, endpoint, accessToken)
	if requestError != nil {
		return nil, requestError
	}

	var repositories []Repository
	if decodingError := json.Unmarshal(responsePayload, &repositories); decodingError != nil {
		return nil, ResponseDecodingError{Operation: listUserRepositoriesOperationName, Cause: decodingError}
	}

	return repositories, nil
}

// DeleteRepository removes a repository from the remote account. A 204
// response is reported as success with no payload.
func (client *Client) DeleteRepository(executionContext context.Context, owner string, repositoryName string, accessToken string) error {
	trimmedOwner := strings.TrimSpace(owner)
	if len(trimmedOwner) == 0 {
		return InvalidInputError{FieldName: ownerFieldNameConstant, Message: requiredValueMessageConstant}
	}
	trimmedRepositoryName := strings.TrimSpace(repositoryName)
	if len(trimmedRepositoryName) == 0 {
		return InvalidInputError{FieldName: repositoryFieldNameConstant, Message: requiredValueMessageConstant}
	}
	if len(strings.TrimSpace(accessToken)) == 0 {
		return InvalidInputError{FieldName: accessTokenFieldNameConstant, Message: requiredValueMessageConstant}
	}

	endpoint := fmt.Sprintf(repositoryEndpointTemplateConstant, client.baseURL, url.PathEscape(trimmedOwner), url.PathEscape(trimmedRepositoryName))
	_, requestError := client.execute(executionContext, deleteRepositoryOperationNameConstant, http.MethodDelete, endpoint, accessToken)
	return requestError
}

// execute performs a single request attempt and returns the raw success
// payload. Non-2xx responses surface as StatusError carrying the server
// message; failures before a response arrives surface as TransportError.
func (client *Client) execute(executionContext context.Context, operation OperationName, method string, endpoint string, accessToken string) ([]byte, error) {
	request, constructionError := http.NewRequestWithContext(executionContext, method, endpoint, nil)
	if constructionError != nil {
		return nil, fmt.Errorf(requestConstructionErrorTemplate, operation, constructionError)
	}

	request.Header.Set(authorizationHeaderNameConstant, fmt.Sprintf(authorizationHeaderTemplateConstant, accessToken))
	request.Header.Set(acceptHeaderNameConstant, acceptHeaderValueConstant)

	response, requestError := client.httpClient.Do(request)
	if requestError != nil {
		return nil, TransportError{Operation: operation, Cause: requestError}
	}
	defer func() {
		_ = response.Body.Close()
	}()

	responsePayload, readError := io.ReadAll(response.Body)
	if readError != nil {
		return nil, TransportError{Operation: operation, Cause: readError}
	}

	if response.StatusCode >= successStatusLowerBoundInclusiveConst && response.StatusCode < successStatusUpperBoundExclusiveConst {
		return responsePayload, nil
	}

	return nil, StatusError{
		Operation:  operation,
		StatusCode: response.StatusCode,
		Message:    extractServerMessage(responsePayload),
	}
}

// extractServerMessage prefers the structured message field of a GitHub error
// payload, falling back to the raw response text.
func extractServerMessage(responsePayload []byte) string {
	var structuredPayload map[string]any
	if decodingError := json.Unmarshal(responsePayload, &structuredPayload); decodingError == nil {
		if messageValue, messagePresent := structuredPayload[errorPayloadMessageFieldNameConstant]; messagePresent {
			if messageText, isText := messageValue.(string); isText && len(strings.TrimSpace(messageText)) > 0 {
				return messageText
			}
		}
	}

	rawText := strings.TrimSpace(string(responsePayload))
	if len(rawText) == 0 {
		return unknownServerFailureMessageConstant
	}
	return rawText
}
