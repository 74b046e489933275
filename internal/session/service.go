package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/hubdesk/internal/execshell"
	"github.com/temirov/hubdesk/internal/githubapi"
	"github.com/temirov/hubdesk/internal/gitrepo"
	"github.com/temirov/hubdesk/internal/registry"
	"github.com/temirov/hubdesk/internal/workspace"
)

const (
	gitCloneSubcommandConstant              = "clone"
	gitExecutorNotConfiguredMessageConstant = "git executor not configured"
	apiClientNotConfiguredMessageConstant   = "github api client not configured"
	registryNotConfiguredMessageConstant    = "repository registry not configured"
	workspaceNotConfiguredMessageConstant   = "workspace manager not configured"
	repositoryNameRequiredMessageConstant   = "repository name required"
	repositoryAlreadyClonedTemplateConstant = "repository %s already cloned at %s"
	repositoryNotClonedTemplateConstant     = "repository %s has no local clone"
	cloneFailureTemplateConstant            = "clone of %s failed: %w"
	remoteDeleteFailureTemplateConstant     = "remote deletion of %s failed: %w"
	localRemovalWarningTemplateConstant     = "local clone at %s could not be removed: %s"
	scanLogMessageConstant                  = "remote repositories scanned"
	cloneLogMessageConstant                 = "repository cloned"
	deleteLogMessageConstant                = "repository deleted remotely"
	localRemovalWarningLogMessageConstant   = "local clone removal failed"
	adoptedCloneLogMessageConstant          = "existing clone registered"
	logFieldRepositoryConstant              = "repository"
	logFieldRepositoryCountConstant         = "repository_count"
	logFieldClonePathConstant               = "path"
	logFieldCloneURLConstant                = "url"
	logFieldErrorConstant                   = "error"
)

// Service collaborator validation sentinels.
var (
	ErrGitExecutorNotConfigured = errors.New(gitExecutorNotConfiguredMessageConstant)
	ErrAPIClientNotConfigured   = errors.New(apiClientNotConfiguredMessageConstant)
	ErrRegistryNotConfigured    = errors.New(registryNotConfiguredMessageConstant)
	ErrWorkspaceNotConfigured   = errors.New(workspaceNotConfiguredMessageConstant)
	ErrRepositoryNameRequired   = errors.New(repositoryNameRequiredMessageConstant)
)

// RepositoryAlreadyClonedError reports a clone request for a repository that
// already has a registered local path.
type RepositoryAlreadyClonedError struct {
	RepositoryName string
	LocalPath      string
}

// Error describes the conflict.
func (clonedError RepositoryAlreadyClonedError) Error() string {
	return fmt.Sprintf(repositoryAlreadyClonedTemplateConstant, clonedError.RepositoryName, clonedError.LocalPath)
}

// RepositoryNotClonedError reports a local-path lookup for a repository
// without a registered clone.
type RepositoryNotClonedError struct {
	RepositoryName string
}

// Error describes the missing clone.
func (notClonedError RepositoryNotClonedError) Error() string {
	return fmt.Sprintf(repositoryNotClonedTemplateConstant, notClonedError.RepositoryName)
}

// GitExecutor runs git subprocesses.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// RemoteRepositoryClient exposes the GitHub REST operations the service needs.
type RemoteRepositoryClient interface {
	ListUserRepositories(executionContext context.Context, username string, accessToken string) ([]githubapi.Repository, error)
	DeleteRepository(executionContext context.Context, owner string, repositoryName string, accessToken string) error
}

// WorkspaceManager exposes the workspace operations the service needs.
type WorkspaceManager interface {
	RepositoryPath(repositoryName string) (string, error)
	RemoveRepository(repositoryName string) error
	DiscoverClones() ([]workspace.Clone, error)
}

// Dependencies supplies the collaborators required by the Service.
type Dependencies struct {
	GitExecutor GitExecutor
	APIClient   RemoteRepositoryClient
	Registry    *registry.Registry
	Workspace   WorkspaceManager
	Logger      *zap.Logger
}

// DeleteResult reports the outcome of a repository deletion.
type DeleteResult struct {
	RepositoryName      string
	LocalPathRemoved    bool
	LocalRemovalWarning string
}

// Service coordinates registry state, git subprocesses, and the GitHub API
// for one authenticated account.
type Service struct {
	dependencies Dependencies
	credentials  Credentials
}

// NewService validates collaborators and constructs a Service.
func NewService(dependencies Dependencies) (*Service, error) {
	if dependencies.GitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	if dependencies.APIClient == nil {
		return nil, ErrAPIClientNotConfigured
	}
	if dependencies.Registry == nil {
		return nil, ErrRegistryNotConfigured
	}
	if dependencies.Workspace == nil {
		return nil, ErrWorkspaceNotConfigured
	}
	if dependencies.Logger == nil {
		dependencies.Logger = zap.NewNop()
	}
	return &Service{dependencies: dependencies}, nil
}

// SetCredentials stores the credential pair used by authenticated operations.
func (service *Service) SetCredentials(credentials Credentials) error {
	normalized := credentials.Normalize()
	if !normalized.Complete() {
		return ErrCredentialsRequired
	}
	service.credentials = normalized
	return nil
}

// Scan lists the account's remote repositories and replaces the registry's
// remote view with the result.
func (service *Service) Scan(executionContext context.Context) ([]registry.Choice, error) {
	if !service.credentials.Complete() {
		return nil, ErrCredentialsRequired
	}

	remoteRepositories, listError := service.dependencies.APIClient.ListUserRepositories(
		executionContext,
		service.credentials.Username,
		service.credentials.AccessToken,
	)
	if listError != nil {
		return nil, listError
	}

	remoteNames := make([]string, 0, len(remoteRepositories))
	for _, remoteRepository := range remoteRepositories {
		remoteNames = append(remoteNames, remoteRepository.Name)
	}
	service.dependencies.Registry.MergeScanResults(remoteNames)

	service.dependencies.Logger.Info(
		scanLogMessageConstant,
		zap.Int(logFieldRepositoryCountConstant, len(remoteNames)),
	)
	return service.dependencies.Registry.Choices(), nil
}

// Clone clones the named repository into the workspace and registers the
// resulting path. A repository that already has a local path is refused.
// Nothing is registered when the clone fails.
func (service *Service) Clone(executionContext context.Context, repositoryName string) (string, error) {
	if !service.credentials.Complete() {
		return "", ErrCredentialsRequired
	}
	trimmedName := strings.TrimSpace(repositoryName)
	if len(trimmedName) == 0 {
		return "", ErrRepositoryNameRequired
	}
	if existingPath, alreadyCloned := service.dependencies.Registry.LocalPath(trimmedName); alreadyCloned {
		return "", RepositoryAlreadyClonedError{RepositoryName: trimmedName, LocalPath: existingPath}
	}

	destinationPath, pathError := service.dependencies.Workspace.RepositoryPath(trimmedName)
	if pathError != nil {
		return "", pathError
	}

	cloneTarget := gitrepo.CloneTarget{Username: service.credentials.Username, RepositoryName: trimmedName}
	cloneURL, buildError := gitrepo.BuildAuthenticatedCloneURL(cloneTarget, service.credentials.AccessToken)
	if buildError != nil {
		return "", buildError
	}

	commandDetails := execshell.CommandDetails{
		Arguments: []string{gitCloneSubcommandConstant, cloneURL, destinationPath},
	}
	executionResult, executionError := service.dependencies.GitExecutor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		return "", fmt.Errorf(cloneFailureTemplateConstant, trimmedName, executionError)
	}
	if !executionResult.Successful() {
		return "", fmt.Errorf(
			cloneFailureTemplateConstant,
			trimmedName,
			execshell.CommandFailedError{
				Command: execshell.ShellCommand{Name: execshell.CommandGit, Details: commandDetails},
				Result:  executionResult,
			},
		)
	}

	if registerError := service.dependencies.Registry.RegisterLocal(trimmedName, destinationPath); registerError != nil {
		return "", registerError
	}

	service.dependencies.Logger.Info(
		cloneLogMessageConstant,
		zap.String(logFieldRepositoryConstant, trimmedName),
		zap.String(logFieldClonePathConstant, destinationPath),
		zap.String(logFieldCloneURLConstant, gitrepo.RedactedCloneURL(cloneTarget)),
	)
	return destinationPath, nil
}

// Delete removes the named repository from GitHub, then evicts it from the
// registry and best-effort removes any local clone. A failed remote deletion
// leaves the registry untouched. A failed local removal after a successful
// remote deletion produces a warning in the result, never an error.
func (service *Service) Delete(executionContext context.Context, repositoryName string) (DeleteResult, error) {
	if !service.credentials.Complete() {
		return DeleteResult{}, ErrCredentialsRequired
	}
	trimmedName := strings.TrimSpace(repositoryName)
	if len(trimmedName) == 0 {
		return DeleteResult{}, ErrRepositoryNameRequired
	}

	deletionError := service.dependencies.APIClient.DeleteRepository(
		executionContext,
		service.credentials.Username,
		trimmedName,
		service.credentials.AccessToken,
	)
	if deletionError != nil {
		return DeleteResult{}, fmt.Errorf(remoteDeleteFailureTemplateConstant, trimmedName, deletionError)
	}

	localPath, hadLocalClone := service.dependencies.Registry.LocalPath(trimmedName)
	service.dependencies.Registry.Remove(trimmedName)

	deleteResult := DeleteResult{RepositoryName: trimmedName}
	if hadLocalClone {
		if removalError := service.dependencies.Workspace.RemoveRepository(trimmedName); removalError != nil {
			deleteResult.LocalRemovalWarning = fmt.Sprintf(localRemovalWarningTemplateConstant, localPath, removalError.Error())
			service.dependencies.Logger.Warn(
				localRemovalWarningLogMessageConstant,
				zap.String(logFieldRepositoryConstant, trimmedName),
				zap.String(logFieldClonePathConstant, localPath),
				zap.String(logFieldErrorConstant, removalError.Error()),
			)
		} else {
			deleteResult.LocalPathRemoved = true
		}
	}

	service.dependencies.Logger.Info(
		deleteLogMessageConstant,
		zap.String(logFieldRepositoryConstant, trimmedName),
	)
	return deleteResult, nil
}

// Username exposes the authenticated account name.
func (service *Service) Username() string {
	return service.credentials.Username
}

// Choices exposes the registry's display ordering.
func (service *Service) Choices() []registry.Choice {
	return service.dependencies.Registry.Choices()
}

// LocalPath resolves the registered clone path for a repository.
func (service *Service) LocalPath(repositoryName string) (string, error) {
	trimmedName := strings.TrimSpace(repositoryName)
	if len(trimmedName) == 0 {
		return "", ErrRepositoryNameRequired
	}
	localPath, cloned := service.dependencies.Registry.LocalPath(trimmedName)
	if !cloned {
		return "", RepositoryNotClonedError{RepositoryName: trimmedName}
	}
	return localPath, nil
}

// AdoptExistingClones registers clones already present beneath the workspace
// root, letting a fresh process resume with a populated local view.
func (service *Service) AdoptExistingClones() error {
	discoveredClones, discoveryError := service.dependencies.Workspace.DiscoverClones()
	if discoveryError != nil {
		return discoveryError
	}
	for _, discoveredClone := range discoveredClones {
		if registerError := service.dependencies.Registry.RegisterLocal(discoveredClone.Name, discoveredClone.Path); registerError != nil {
			return registerError
		}
		service.dependencies.Logger.Info(
			adoptedCloneLogMessageConstant,
			zap.String(logFieldRepositoryConstant, discoveredClone.Name),
			zap.String(logFieldClonePathConstant, discoveredClone.Path),
		)
	}
	return nil
}
