package inspect_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"

	"github.com/temirov/hubdesk/internal/inspect"
)

const (
	readmeFileNameConstant      = "README.md"
	readmeContentConstant       = "# fixture\n"
	nestedDirectoryNameConstant = "docs"
	nestedFileNameConstant      = "guide.md"
	commitSubjectConstant       = "initial import"
	commitAuthorNameConstant    = "Fixture Author"
	commitAuthorEmailConstant   = "fixture@example.com"
	originRemoteNameConstant    = "origin"
	originRemoteSSHURLConstant  = "git@github.com:octocat/fixture.git"
	originCanonicalURLConstant  = "https://github.com/octocat/fixture.git"
)

func writeFixtureTree(testInstance *testing.T) string {
	testInstance.Helper()

	repositoryPath := testInstance.TempDir()
	require.NoError(testInstance, os.WriteFile(filepath.Join(repositoryPath, readmeFileNameConstant), []byte(readmeContentConstant), 0o644))
	require.NoError(testInstance, os.MkdirAll(filepath.Join(repositoryPath, nestedDirectoryNameConstant), 0o755))
	require.NoError(testInstance, os.WriteFile(filepath.Join(repositoryPath, nestedDirectoryNameConstant, nestedFileNameConstant), []byte(readmeContentConstant), 0o644))
	require.NoError(testInstance, os.MkdirAll(filepath.Join(repositoryPath, ".git", "objects"), 0o755))
	return repositoryPath
}

func TestInspectorListEntriesSkipsGitMetadata(testInstance *testing.T) {
	repositoryPath := writeFixtureTree(testInstance)
	inspector := inspect.NewInspector()

	entries, listError := inspector.ListEntries(repositoryPath)
	require.NoError(testInstance, listError)

	relativePaths := make([]string, 0, len(entries))
	for _, entry := range entries {
		relativePaths = append(relativePaths, entry.RelativePath)
	}
	require.Equal(testInstance, []string{
		readmeFileNameConstant,
		nestedDirectoryNameConstant,
		filepath.Join(nestedDirectoryNameConstant, nestedFileNameConstant),
	}, relativePaths)

	require.Equal(testInstance, 0, entries[0].Depth)
	require.False(testInstance, entries[0].IsDirectory)
	require.True(testInstance, entries[1].IsDirectory)
	require.Equal(testInstance, 1, entries[2].Depth)
	require.Equal(testInstance, nestedFileNameConstant, entries[2].Name)
}

func TestInspectorReadFile(testInstance *testing.T) {
	repositoryPath := writeFixtureTree(testInstance)
	inspector := inspect.NewInspector()

	testCases := []struct {
		name            string
		relativePath    string
		expectedContent string
		expectInvalid   bool
	}{
		{
			name:            "root_file",
			relativePath:    readmeFileNameConstant,
			expectedContent: readmeContentConstant,
		},
		{
			name:            "nested_file",
			relativePath:    filepath.Join(nestedDirectoryNameConstant, nestedFileNameConstant),
			expectedContent: readmeContentConstant,
		},
		{
			name:          "blank_path",
			relativePath:  "   ",
			expectInvalid: true,
		},
		{
			name:          "escaping_path",
			relativePath:  filepath.Join("..", "outside.txt"),
			expectInvalid: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			content, readError := inspector.ReadFile(repositoryPath, testCase.relativePath)
			if testCase.expectInvalid {
				require.Error(subtestInstance, readError)
				require.IsType(subtestInstance, inspect.InvalidEntryPathError{}, readError)
				return
			}
			require.NoError(subtestInstance, readError)
			require.Equal(subtestInstance, testCase.expectedContent, string(content))
		})
	}
}

func TestInspectorSummarize(testInstance *testing.T) {
	repositoryPath := testInstance.TempDir()
	repository, initError := git.PlainInit(repositoryPath, false)
	require.NoError(testInstance, initError)

	_, remoteError := repository.CreateRemote(&config.RemoteConfig{
		Name: originRemoteNameConstant,
		URLs: []string{originRemoteSSHURLConstant},
	})
	require.NoError(testInstance, remoteError)

	worktree, worktreeError := repository.Worktree()
	require.NoError(testInstance, worktreeError)

	require.NoError(testInstance, os.WriteFile(filepath.Join(repositoryPath, readmeFileNameConstant), []byte(readmeContentConstant), 0o644))
	_, addError := worktree.Add(readmeFileNameConstant)
	require.NoError(testInstance, addError)

	commitHash, commitError := worktree.Commit(commitSubjectConstant, &git.CommitOptions{
		Author: &object.Signature{
			Name:  commitAuthorNameConstant,
			Email: commitAuthorEmailConstant,
			When:  time.Now(),
		},
	})
	require.NoError(testInstance, commitError)

	inspector := inspect.NewInspector()
	summary, summarizeError := inspector.Summarize(repositoryPath)
	require.NoError(testInstance, summarizeError)

	require.Equal(testInstance, commitHash.String()[:7], summary.CommitHash)
	require.Equal(testInstance, commitSubjectConstant, summary.CommitSubject)
	require.False(testInstance, summary.DetachedHead)
	require.NotEmpty(testInstance, summary.BranchName)
	require.Equal(testInstance, originCanonicalURLConstant, summary.OriginURL)
}

func TestInspectorSummarizeRejectsNonRepository(testInstance *testing.T) {
	inspector := inspect.NewInspector()

	_, summarizeError := inspector.Summarize(testInstance.TempDir())

	require.Error(testInstance, summarizeError)
}
