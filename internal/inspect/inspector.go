package inspect

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"

	"github.com/temirov/hubdesk/internal/gitrepo"
)

const (
	gitMetadataDirectoryNameConstant       = ".git"
	originRemoteNameConstant               = "origin"
	repositoryPathRequiredMessageConstant  = "repository path required"
	relativePathRequiredMessageConstant    = "relative path required"
	pathEscapesRepositoryMessageConstant   = "path escapes the repository"
	invalidEntryPathTemplateConstant       = "%s: %s"
	repositoryOpenFailureTemplateConstant  = "unable to open repository at %s: %w"
	headResolutionFailureTemplateConstant  = "unable to resolve HEAD of %s: %w"
	commitLookupFailureTemplateConstant    = "unable to load HEAD commit of %s: %w"
	abbreviatedCommitHashLengthConstant    = 7
	relativePathComponentSeparatorConstant = string(os.PathSeparator)
)

// Entry describes one file or directory inside a clone.
type Entry struct {
	RelativePath string
	Name         string
	Depth        int
	IsDirectory  bool
}

// Summary captures the checked-out state of a clone. OriginURL carries the
// origin remote in canonical HTTPS form when one is configured and parseable.
type Summary struct {
	BranchName    string
	CommitHash    string
	CommitSubject string
	DetachedHead  bool
	OriginURL     string
}

// InvalidEntryPathError reports a path argument that cannot address an entry
// inside the repository.
type InvalidEntryPathError struct {
	Path    string
	Message string
}

// Error describes the invalid path.
func (pathError InvalidEntryPathError) Error() string {
	return fmt.Sprintf(invalidEntryPathTemplateConstant, pathError.Path, pathError.Message)
}

// Inspector reads local clone contents from disk.
type Inspector struct{}

// NewInspector constructs an Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// ListEntries walks the clone and returns its files and directories in
// lexical walk order, each annotated with its depth below the repository
// root. Git metadata directories are skipped entirely.
func (inspector *Inspector) ListEntries(repositoryPath string) ([]Entry, error) {
	trimmedRepositoryPath := strings.TrimSpace(repositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return nil, InvalidEntryPathError{Path: repositoryPath, Message: repositoryPathRequiredMessageConstant}
	}

	var entries []Entry
	walkError := filepath.WalkDir(trimmedRepositoryPath, func(currentPath string, directoryEntry fs.DirEntry, visitError error) error {
		if visitError != nil {
			return visitError
		}
		if currentPath == trimmedRepositoryPath {
			return nil
		}
		if directoryEntry.IsDir() && directoryEntry.Name() == gitMetadataDirectoryNameConstant {
			return fs.SkipDir
		}

		relativePath, relativeError := filepath.Rel(trimmedRepositoryPath, currentPath)
		if relativeError != nil {
			return relativeError
		}

		entries = append(entries, Entry{
			RelativePath: relativePath,
			Name:         directoryEntry.Name(),
			Depth:        strings.Count(relativePath, relativePathComponentSeparatorConstant),
			IsDirectory:  directoryEntry.IsDir(),
		})
		return nil
	})
	if walkError != nil {
		return nil, walkError
	}
	return entries, nil
}

// ReadFile returns the contents of one file addressed relative to the clone
// root. Paths that escape the repository are rejected.
func (inspector *Inspector) ReadFile(repositoryPath string, relativePath string) ([]byte, error) {
	trimmedRepositoryPath := strings.TrimSpace(repositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return nil, InvalidEntryPathError{Path: repositoryPath, Message: repositoryPathRequiredMessageConstant}
	}
	trimmedRelativePath := strings.TrimSpace(relativePath)
	if len(trimmedRelativePath) == 0 {
		return nil, InvalidEntryPathError{Path: relativePath, Message: relativePathRequiredMessageConstant}
	}

	resolvedPath := filepath.Join(trimmedRepositoryPath, trimmedRelativePath)
	confinementCheck, confinementError := filepath.Rel(trimmedRepositoryPath, resolvedPath)
	if confinementError != nil || strings.HasPrefix(confinementCheck, "..") {
		return nil, InvalidEntryPathError{Path: relativePath, Message: pathEscapesRepositoryMessageConstant}
	}

	return os.ReadFile(resolvedPath)
}

// Summarize opens the clone with go-git and reports the checked-out branch
// and HEAD commit.
func (inspector *Inspector) Summarize(repositoryPath string) (Summary, error) {
	trimmedRepositoryPath := strings.TrimSpace(repositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return Summary{}, InvalidEntryPathError{Path: repositoryPath, Message: repositoryPathRequiredMessageConstant}
	}

	repository, openError := git.PlainOpen(trimmedRepositoryPath)
	if openError != nil {
		return Summary{}, fmt.Errorf(repositoryOpenFailureTemplateConstant, trimmedRepositoryPath, openError)
	}

	headReference, headError := repository.Head()
	if headError != nil {
		return Summary{}, fmt.Errorf(headResolutionFailureTemplateConstant, trimmedRepositoryPath, headError)
	}

	headCommit, commitError := repository.CommitObject(headReference.Hash())
	if commitError != nil {
		return Summary{}, fmt.Errorf(commitLookupFailureTemplateConstant, trimmedRepositoryPath, commitError)
	}

	summary := Summary{
		CommitHash:    headReference.Hash().String()[:abbreviatedCommitHashLengthConstant],
		CommitSubject: firstLine(headCommit.Message),
	}
	if headReference.Name().IsBranch() {
		summary.BranchName = headReference.Name().Short()
	} else {
		summary.DetachedHead = true
	}

	if originRemote, remoteError := repository.Remote(originRemoteNameConstant); remoteError == nil {
		summary.OriginURL = canonicalRemoteURL(originRemote.Config().URLs)
	}

	return summary, nil
}

// canonicalRemoteURL renders the first parseable remote URL in HTTPS form.
func canonicalRemoteURL(remoteURLs []string) string {
	for _, remoteURL := range remoteURLs {
		parsedRemote, parseError := gitrepo.ParseRemoteURL(remoteURL)
		if parseError != nil {
			continue
		}
		formattedRemote, formatError := gitrepo.FormatRemoteURL(parsedRemote)
		if formatError != nil {
			continue
		}
		return formattedRemote
	}
	return ""
}

func firstLine(message string) string {
	if newlineIndex := strings.IndexByte(message, '\n'); newlineIndex != -1 {
		return strings.TrimSpace(message[:newlineIndex])
	}
	return strings.TrimSpace(message)
}
