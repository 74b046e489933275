package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const (
	workspaceDirectoryPatternConstant        = "hubdesk_*"
	fileSystemNotConfiguredMessageConstant   = "file system not configured"
	workspaceNotInitializedMessageConstant   = "workspace not initialized"
	workspaceAlreadyInitializedMessage       = "workspace already initialized"
	workspaceCreationFailureTemplateConstant = "unable to create workspace directory: %w"
	invalidRepositoryNameTemplateConstant    = "invalid repository name %q"
	teardownWarningMessageConstant           = "workspace removal failed"
	teardownLogFieldPathConstant             = "workspace_path"
	teardownLogFieldErrorConstant            = "error"
	parentDirectoryReferenceConstant         = ".."
	currentDirectoryReferenceConstant        = "."
)

var (
	// ErrFileSystemNotConfigured indicates the manager was constructed without filesystem access.
	ErrFileSystemNotConfigured = errors.New(fileSystemNotConfiguredMessageConstant)
	// ErrWorkspaceNotInitialized indicates a path was requested before Initialize succeeded.
	ErrWorkspaceNotInitialized = errors.New(workspaceNotInitializedMessageConstant)
	// ErrWorkspaceAlreadyInitialized indicates Initialize was invoked twice.
	ErrWorkspaceAlreadyInitialized = errors.New(workspaceAlreadyInitializedMessage)
)

// InvalidRepositoryNameError reports a repository name that cannot form a
// child path of the workspace.
type InvalidRepositoryNameError struct {
	Name string
}

// Error describes the invalid name.
func (nameError InvalidRepositoryNameError) Error() string {
	return fmt.Sprintf(invalidRepositoryNameTemplateConstant, nameError.Name)
}

// FileSystem enumerates the filesystem operations the manager requires.
type FileSystem interface {
	MkdirTemp(dir string, pattern string) (string, error)
	RemoveAll(path string) error
	Stat(path string) (fs.FileInfo, error)
	ReadDir(path string) ([]fs.DirEntry, error)
}

// Manager owns the scratch directory used as the destination root for clones.
type Manager struct {
	fileSystem FileSystem
	logger     *zap.Logger
	rootPath   string
	ownsRoot   bool
}

// NewManager constructs a workspace manager around the provided filesystem.
func NewManager(fileSystem FileSystem, logger *zap.Logger) (*Manager, error) {
	if fileSystem == nil {
		return nil, ErrFileSystemNotConfigured
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{fileSystem: fileSystem, logger: logger}, nil
}

// Initialize creates the workspace directory. Creation failure is
// unrecoverable for the process and is returned for the caller to escalate.
func (manager *Manager) Initialize() (string, error) {
	if len(manager.rootPath) > 0 {
		return "", ErrWorkspaceAlreadyInitialized
	}

	createdPath, creationError := manager.fileSystem.MkdirTemp("", workspaceDirectoryPatternConstant)
	if creationError != nil {
		return "", fmt.Errorf(workspaceCreationFailureTemplateConstant, creationError)
	}

	manager.rootPath = createdPath
	manager.ownsRoot = true
	return createdPath, nil
}

// AdoptRoot points the manager at an existing directory instead of creating a
// temporary one. Adopted roots are not removed at teardown.
func (manager *Manager) AdoptRoot(rootPath string) error {
	if len(manager.rootPath) > 0 {
		return ErrWorkspaceAlreadyInitialized
	}

	trimmedRootPath := strings.TrimSpace(rootPath)
	if len(trimmedRootPath) == 0 {
		return ErrWorkspaceNotInitialized
	}

	if _, statError := manager.fileSystem.Stat(trimmedRootPath); statError != nil {
		return statError
	}

	manager.rootPath = trimmedRootPath
	return nil
}

// Root exposes the workspace directory path.
func (manager *Manager) Root() (string, error) {
	if len(manager.rootPath) == 0 {
		return "", ErrWorkspaceNotInitialized
	}
	return manager.rootPath, nil
}

// RepositoryPath joins a repository name beneath the workspace root. The join
// is pure string manipulation; no filesystem access occurs. Names containing
// path separators or traversal references are rejected.
func (manager *Manager) RepositoryPath(repositoryName string) (string, error) {
	if len(manager.rootPath) == 0 {
		return "", ErrWorkspaceNotInitialized
	}

	trimmedName := strings.TrimSpace(repositoryName)
	if !isSafeRepositoryName(trimmedName) {
		return "", InvalidRepositoryNameError{Name: repositoryName}
	}

	return filepath.Join(manager.rootPath, trimmedName), nil
}

// RemoveRepository best-effort deletes a clone directory beneath the root.
func (manager *Manager) RemoveRepository(repositoryName string) error {
	repositoryPath, pathError := manager.RepositoryPath(repositoryName)
	if pathError != nil {
		return pathError
	}
	return manager.fileSystem.RemoveAll(repositoryPath)
}

// Teardown removes the workspace directory and everything beneath it when the
// manager created it. Failures are logged as warnings, never escalated.
func (manager *Manager) Teardown() {
	if len(manager.rootPath) == 0 || !manager.ownsRoot {
		return
	}

	if removalError := manager.fileSystem.RemoveAll(manager.rootPath); removalError != nil {
		manager.logger.Warn(
			teardownWarningMessageConstant,
			zap.String(teardownLogFieldPathConstant, manager.rootPath),
			zap.String(teardownLogFieldErrorConstant, removalError.Error()),
		)
	}
}

func isSafeRepositoryName(name string) bool {
	if len(name) == 0 {
		return false
	}
	if name == currentDirectoryReferenceConstant || name == parentDirectoryReferenceConstant {
		return false
	}
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, '\\') {
		return false
	}
	return true
}
