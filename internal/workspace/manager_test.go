package workspace_test

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/hubdesk/internal/workspace"
)

const (
	fakeWorkspaceRootConstant      = "/tmp/hubdesk_fake"
	repositoryNameConstant         = "service"
	secondRepositoryNameConstant   = "tooling"
	plainDirectoryNameConstant     = "notes"
	removalFailureMessageConstant  = "device busy"
	creationFailureMessageConstant = "read-only file system"
)

type fakeDirectoryEntry struct {
	entryName   string
	isDirectory bool
}

func (entry fakeDirectoryEntry) Name() string               { return entry.entryName }
func (entry fakeDirectoryEntry) IsDir() bool                { return entry.isDirectory }
func (entry fakeDirectoryEntry) Type() fs.FileMode          { return 0 }
func (entry fakeDirectoryEntry) Info() (fs.FileInfo, error) { return fakeFileInfo{}, nil }

type fakeFileInfo struct{}

func (fakeFileInfo) Name() string       { return "" }
func (fakeFileInfo) Size() int64        { return 0 }
func (fakeFileInfo) Mode() fs.FileMode  { return fs.ModeDir }
func (fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (fakeFileInfo) IsDir() bool        { return true }
func (fakeFileInfo) Sys() any           { return nil }

type fakeFileSystem struct {
	temporaryDirectoryPath string
	creationError          error
	removalError           error
	statError              error
	directoryEntries       map[string][]fs.DirEntry
	removedPaths           []string
}

func (fileSystem *fakeFileSystem) MkdirTemp(string, string) (string, error) {
	if fileSystem.creationError != nil {
		return "", fileSystem.creationError
	}
	return fileSystem.temporaryDirectoryPath, nil
}

func (fileSystem *fakeFileSystem) RemoveAll(path string) error {
	fileSystem.removedPaths = append(fileSystem.removedPaths, path)
	return fileSystem.removalError
}

func (fileSystem *fakeFileSystem) Stat(string) (fs.FileInfo, error) {
	if fileSystem.statError != nil {
		return nil, fileSystem.statError
	}
	return fakeFileInfo{}, nil
}

func (fileSystem *fakeFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	entries, known := fileSystem.directoryEntries[path]
	if !known {
		return nil, fs.ErrNotExist
	}
	return entries, nil
}

func TestNewManagerValidation(testInstance *testing.T) {
	testCases := []struct {
		name          string
		fileSystem    workspace.FileSystem
		expectedError error
	}{
		{
			name:          "missing_file_system",
			fileSystem:    nil,
			expectedError: workspace.ErrFileSystemNotConfigured,
		},
		{
			name:          "configured_file_system",
			fileSystem:    &fakeFileSystem{},
			expectedError: nil,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			manager, constructionError := workspace.NewManager(testCase.fileSystem, zap.NewNop())
			if testCase.expectedError != nil {
				require.ErrorIs(subtestInstance, constructionError, testCase.expectedError)
				require.Nil(subtestInstance, manager)
				return
			}
			require.NoError(subtestInstance, constructionError)
			require.NotNil(subtestInstance, manager)
		})
	}
}

func TestManagerInitializeCreatesRootOnce(testInstance *testing.T) {
	fileSystem := &fakeFileSystem{temporaryDirectoryPath: fakeWorkspaceRootConstant}
	manager, constructionError := workspace.NewManager(fileSystem, zap.NewNop())
	require.NoError(testInstance, constructionError)

	createdPath, initializationError := manager.Initialize()
	require.NoError(testInstance, initializationError)
	require.Equal(testInstance, fakeWorkspaceRootConstant, createdPath)

	rootPath, rootError := manager.Root()
	require.NoError(testInstance, rootError)
	require.Equal(testInstance, fakeWorkspaceRootConstant, rootPath)

	_, secondInitializationError := manager.Initialize()
	require.ErrorIs(testInstance, secondInitializationError, workspace.ErrWorkspaceAlreadyInitialized)
}

func TestManagerInitializeReportsCreationFailure(testInstance *testing.T) {
	fileSystem := &fakeFileSystem{creationError: errors.New(creationFailureMessageConstant)}
	manager, constructionError := workspace.NewManager(fileSystem, zap.NewNop())
	require.NoError(testInstance, constructionError)

	_, initializationError := manager.Initialize()
	require.Error(testInstance, initializationError)
	require.Contains(testInstance, initializationError.Error(), creationFailureMessageConstant)

	_, rootError := manager.Root()
	require.ErrorIs(testInstance, rootError, workspace.ErrWorkspaceNotInitialized)
}

func TestManagerRepositoryPath(testInstance *testing.T) {
	testCases := []struct {
		name           string
		repositoryName string
		expectedPath   string
		expectInvalid  bool
	}{
		{
			name:           "plain_name",
			repositoryName: repositoryNameConstant,
			expectedPath:   filepath.Join(fakeWorkspaceRootConstant, repositoryNameConstant),
		},
		{
			name:           "surrounding_whitespace_trimmed",
			repositoryName: "  " + repositoryNameConstant + "  ",
			expectedPath:   filepath.Join(fakeWorkspaceRootConstant, repositoryNameConstant),
		},
		{
			name:           "empty_name",
			repositoryName: "",
			expectInvalid:  true,
		},
		{
			name:           "forward_slash",
			repositoryName: "nested/" + repositoryNameConstant,
			expectInvalid:  true,
		},
		{
			name:           "backslash",
			repositoryName: "nested\\" + repositoryNameConstant,
			expectInvalid:  true,
		},
		{
			name:           "parent_traversal",
			repositoryName: "..",
			expectInvalid:  true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			fileSystem := &fakeFileSystem{temporaryDirectoryPath: fakeWorkspaceRootConstant}
			manager, constructionError := workspace.NewManager(fileSystem, zap.NewNop())
			require.NoError(subtestInstance, constructionError)
			_, initializationError := manager.Initialize()
			require.NoError(subtestInstance, initializationError)

			repositoryPath, pathError := manager.RepositoryPath(testCase.repositoryName)
			if testCase.expectInvalid {
				require.Error(subtestInstance, pathError)
				require.IsType(subtestInstance, workspace.InvalidRepositoryNameError{}, pathError)
				return
			}
			require.NoError(subtestInstance, pathError)
			require.Equal(subtestInstance, testCase.expectedPath, repositoryPath)
		})
	}
}

func TestManagerRepositoryPathRequiresInitialization(testInstance *testing.T) {
	manager, constructionError := workspace.NewManager(&fakeFileSystem{}, zap.NewNop())
	require.NoError(testInstance, constructionError)

	_, pathError := manager.RepositoryPath(repositoryNameConstant)
	require.ErrorIs(testInstance, pathError, workspace.ErrWorkspaceNotInitialized)
}

func TestManagerTeardownLogsRemovalFailure(testInstance *testing.T) {
	observedCore, observedLogs := observer.New(zap.WarnLevel)
	fileSystem := &fakeFileSystem{
		temporaryDirectoryPath: fakeWorkspaceRootConstant,
		removalError:           errors.New(removalFailureMessageConstant),
	}
	manager, constructionError := workspace.NewManager(fileSystem, zap.New(observedCore))
	require.NoError(testInstance, constructionError)
	_, initializationError := manager.Initialize()
	require.NoError(testInstance, initializationError)

	manager.Teardown()

	require.Equal(testInstance, []string{fakeWorkspaceRootConstant}, fileSystem.removedPaths)
	require.Equal(testInstance, 1, observedLogs.Len())
	require.Contains(testInstance, observedLogs.All()[0].Message, "removal failed")
}

func TestManagerTeardownSkipsAdoptedRoot(testInstance *testing.T) {
	fileSystem := &fakeFileSystem{}
	manager, constructionError := workspace.NewManager(fileSystem, zap.NewNop())
	require.NoError(testInstance, constructionError)
	require.NoError(testInstance, manager.AdoptRoot(fakeWorkspaceRootConstant))

	manager.Teardown()

	require.Empty(testInstance, fileSystem.removedPaths)
}

func TestManagerDiscoverClones(testInstance *testing.T) {
	repositoryPath := filepath.Join(fakeWorkspaceRootConstant, repositoryNameConstant)
	secondRepositoryPath := filepath.Join(fakeWorkspaceRootConstant, secondRepositoryNameConstant)
	plainDirectoryPath := filepath.Join(fakeWorkspaceRootConstant, plainDirectoryNameConstant)

	fileSystem := &fakeFileSystem{
		temporaryDirectoryPath: fakeWorkspaceRootConstant,
		directoryEntries: map[string][]fs.DirEntry{
			fakeWorkspaceRootConstant: {
				fakeDirectoryEntry{entryName: repositoryNameConstant, isDirectory: true},
				fakeDirectoryEntry{entryName: secondRepositoryNameConstant, isDirectory: true},
				fakeDirectoryEntry{entryName: plainDirectoryNameConstant, isDirectory: true},
				fakeDirectoryEntry{entryName: "README.md", isDirectory: false},
			},
			repositoryPath: {
				fakeDirectoryEntry{entryName: ".git", isDirectory: true},
				fakeDirectoryEntry{entryName: "main.go", isDirectory: false},
			},
			secondRepositoryPath: {
				fakeDirectoryEntry{entryName: ".git", isDirectory: true},
			},
			plainDirectoryPath: {
				fakeDirectoryEntry{entryName: "todo.txt", isDirectory: false},
			},
		},
	}

	manager, constructionError := workspace.NewManager(fileSystem, zap.NewNop())
	require.NoError(testInstance, constructionError)
	_, initializationError := manager.Initialize()
	require.NoError(testInstance, initializationError)

	clones, discoveryError := manager.DiscoverClones()
	require.NoError(testInstance, discoveryError)

	discoveredNames := make([]string, 0, len(clones))
	for _, clone := range clones {
		discoveredNames = append(discoveredNames, clone.Name)
	}
	sort.Strings(discoveredNames)
	require.Equal(testInstance, []string{repositoryNameConstant, secondRepositoryNameConstant}, discoveredNames)

	for _, clone := range clones {
		require.True(testInstance, strings.HasPrefix(clone.Path, fakeWorkspaceRootConstant))
	}
}

func TestManagerRemoveRepositoryDelegatesToFileSystem(testInstance *testing.T) {
	fileSystem := &fakeFileSystem{temporaryDirectoryPath: fakeWorkspaceRootConstant}
	manager, constructionError := workspace.NewManager(fileSystem, zap.NewNop())
	require.NoError(testInstance, constructionError)
	_, initializationError := manager.Initialize()
	require.NoError(testInstance, initializationError)

	require.NoError(testInstance, manager.RemoveRepository(repositoryNameConstant))
	require.Equal(testInstance, []string{filepath.Join(fakeWorkspaceRootConstant, repositoryNameConstant)}, fileSystem.removedPaths)
}
