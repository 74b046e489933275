package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/temirov/hubdesk/internal/execshell"
	"github.com/temirov/hubdesk/internal/filesystem"
	"github.com/temirov/hubdesk/internal/githubapi"
	"github.com/temirov/hubdesk/internal/githubauth"
	"github.com/temirov/hubdesk/internal/registry"
	"github.com/temirov/hubdesk/internal/ui"
	pathutils "github.com/temirov/hubdesk/internal/utils/path"
	"github.com/temirov/hubdesk/internal/workspace"
)

const (
	workspaceRootCreationTemplateConstant = "unable to prepare workspace root %s: %w"
	workspaceRootPermissionsConstant      = fs.FileMode(0o755)
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies sanitized command configuration.
type ConfigurationProvider func() CommandConfiguration

// CommandAssembly bundles the collaborators shared by every session command.
type CommandAssembly struct {
	Service          *Service
	WorkspaceManager *workspace.Manager
	KeepWorkspace    bool
}

// Teardown releases the workspace unless it was configured to persist.
func (assembly *CommandAssembly) Teardown() {
	if assembly.KeepWorkspace || assembly.WorkspaceManager == nil {
		return
	}
	assembly.WorkspaceManager.Teardown()
}

func resolveLoggerFromProvider(provider LoggerProvider) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}
	logger := provider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func resolveConfigurationFromProvider(provider ConfigurationProvider) CommandConfiguration {
	if provider == nil {
		return DefaultCommandConfiguration()
	}
	return provider().Sanitize()
}

// assembleCommandDependencies wires the filesystem, workspace, git executor,
// API client, registry, and credentials into a ready Service. A configured
// workspace root is adopted (and its existing clones registered); otherwise a
// temporary directory is created for the run. Commands that only read local
// clones pass requireCredentials false so missing credentials never block or
// prompt; credentials found in configuration or the environment are still
// applied.
func assembleCommandDependencies(
	logger *zap.Logger,
	configuration CommandConfiguration,
	prompter CredentialPrompter,
	requireCredentials bool,
) (*CommandAssembly, error) {
	osFileSystem := filesystem.OSFileSystem{}

	workspaceManager, managerError := workspace.NewManager(osFileSystem, logger)
	if managerError != nil {
		return nil, managerError
	}

	keepWorkspace := configuration.Workspace.Keep
	if len(configuration.Workspace.Root) > 0 {
		expandedRoot := pathutils.NewHomeExpander().Expand(configuration.Workspace.Root)
		if creationError := osFileSystem.MkdirAll(expandedRoot, workspaceRootPermissionsConstant); creationError != nil {
			return nil, fmt.Errorf(workspaceRootCreationTemplateConstant, expandedRoot, creationError)
		}
		if adoptionError := workspaceManager.AdoptRoot(expandedRoot); adoptionError != nil {
			return nil, adoptionError
		}
		keepWorkspace = true
	} else {
		if _, initializationError := workspaceManager.Initialize(); initializationError != nil {
			return nil, initializationError
		}
	}

	commandRunner := execshell.NewOSCommandRunner()
	shellExecutor, executorError := execshell.NewShellExecutorWithObserver(
		logger,
		commandRunner,
		ui.NewConsoleCommandEventLogger(logger),
	)
	if executorError != nil {
		return nil, executorError
	}

	apiClient := githubapi.NewClient(githubapi.Options{
		BaseURL:        configuration.GitHub.APIBaseURL,
		RequestTimeout: configuration.GitHub.RequestTimeout(),
	})

	service, serviceError := NewService(Dependencies{
		GitExecutor: shellExecutor,
		APIClient:   apiClient,
		Registry:    registry.NewRegistry(),
		Workspace:   workspaceManager,
		Logger:      logger,
	})
	if serviceError != nil {
		return nil, serviceError
	}

	credentials, credentialsError := resolveCredentials(configuration, prompter)
	switch {
	case credentialsError == nil:
		if setError := service.SetCredentials(credentials); setError != nil {
			return nil, setError
		}
	case !requireCredentials && errors.Is(credentialsError, ErrCredentialsRequired):
	default:
		return nil, credentialsError
	}

	if adoptError := service.AdoptExistingClones(); adoptError != nil {
		return nil, adoptError
	}

	return &CommandAssembly{
		Service:          service,
		WorkspaceManager: workspaceManager,
		KeepWorkspace:    keepWorkspace,
	}, nil
}

// resolveCredentials prefers configured and environment-sourced values and
// prompts only for what is still missing.
func resolveCredentials(configuration CommandConfiguration, prompter CredentialPrompter) (Credentials, error) {
	credentials := Credentials{Username: configuration.GitHub.Username}

	if resolvedToken, tokenFound := githubauth.ResolveToken(nil); tokenFound {
		credentials.AccessToken = resolvedToken
	}

	if len(credentials.Username) == 0 {
		if prompter == nil {
			return Credentials{}, ErrCredentialsRequired
		}
		promptedUsername, promptError := prompter.PromptUsername()
		if promptError != nil {
			return Credentials{}, promptError
		}
		credentials.Username = promptedUsername
	}

	if len(credentials.AccessToken) == 0 {
		if prompter == nil {
			return Credentials{}, ErrCredentialsRequired
		}
		promptedToken, promptError := prompter.PromptAccessToken()
		if promptError != nil {
			return Credentials{}, promptError
		}
		credentials.AccessToken = promptedToken
	}

	normalized := credentials.Normalize()
	if !normalized.Complete() {
		return Credentials{}, ErrCredentialsRequired
	}
	return normalized, nil
}

func defaultPrompter(input *os.File, output *os.File) CredentialPrompter {
	return NewIOPrompter(input, output, int(input.Fd()))
}
