package registry

import (
	"errors"
	"strings"
	"sync"
)

const (
	repositoryNameRequiredMessageConstant = "repository name must be provided"
	localPathRequiredMessageConstant      = "local path must be provided"
)

var (
	// ErrRepositoryNameRequired indicates an operation received an empty repository name.
	ErrRepositoryNameRequired = errors.New(repositoryNameRequiredMessageConstant)
	// ErrLocalPathRequired indicates a local registration received an empty path.
	ErrLocalPathRequired = errors.New(localPathRequiredMessageConstant)
)

// Choice describes a selectable repository for presentation layers. RemoteOnly
// is set when the repository is known remotely but has no local clone, so a
// front end can tag it accordingly.
type Choice struct {
	Name       string
	RemoteOnly bool
}

// Registry is the in-memory table of known repositories.
type Registry struct {
	mutex            sync.Mutex
	localPathsByName map[string]string
	localNameOrder   []string
	remoteNameSet    map[string]struct{}
	remoteNameOrder  []string
}

// NewRegistry constructs an empty repository registry.
func NewRegistry() *Registry {
	return &Registry{
		localPathsByName: map[string]string{},
		remoteNameSet:    map[string]struct{}{},
	}
}

// MergeScanResults replaces the remote view with the supplied names. The scan
// is authoritative for the remote side at the moment it runs; earlier remote
// entries not present in the new scan are forgotten. Duplicate and blank
// names are dropped while preserving first-seen order.
func (repositoryRegistry *Registry) MergeScanResults(names []string) {
	replacementSet := make(map[string]struct{}, len(names))
	replacementOrder := make([]string, 0, len(names))
	for _, candidateName := range names {
		trimmedName := strings.TrimSpace(candidateName)
		if len(trimmedName) == 0 {
			continue
		}
		if _, alreadySeen := replacementSet[trimmedName]; alreadySeen {
			continue
		}
		replacementSet[trimmedName] = struct{}{}
		replacementOrder = append(replacementOrder, trimmedName)
	}

	repositoryRegistry.mutex.Lock()
	defer repositoryRegistry.mutex.Unlock()
	repositoryRegistry.remoteNameSet = replacementSet
	repositoryRegistry.remoteNameOrder = replacementOrder
}

// RegisterLocal records a locally materialized repository. Registration is an
// idempotent upsert: re-registering an existing name updates its path without
// disturbing its position in the local ordering.
func (repositoryRegistry *Registry) RegisterLocal(name string, path string) error {
	trimmedName := strings.TrimSpace(name)
	if len(trimmedName) == 0 {
		return ErrRepositoryNameRequired
	}
	trimmedPath := strings.TrimSpace(path)
	if len(trimmedPath) == 0 {
		return ErrLocalPathRequired
	}

	repositoryRegistry.mutex.Lock()
	defer repositoryRegistry.mutex.Unlock()
	if _, alreadyRegistered := repositoryRegistry.localPathsByName[trimmedName]; !alreadyRegistered {
		repositoryRegistry.localNameOrder = append(repositoryRegistry.localNameOrder, trimmedName)
	}
	repositoryRegistry.localPathsByName[trimmedName] = trimmedPath
	return nil
}

// LocalPath reports the registered path for a repository and whether it is local.
func (repositoryRegistry *Registry) LocalPath(name string) (string, bool) {
	trimmedName := strings.TrimSpace(name)

	repositoryRegistry.mutex.Lock()
	defer repositoryRegistry.mutex.Unlock()
	localPath, isLocal := repositoryRegistry.localPathsByName[trimmedName]
	return localPath, isLocal
}

// IsKnownRemote reports whether the repository appeared in the last scan.
func (repositoryRegistry *Registry) IsKnownRemote(name string) bool {
	trimmedName := strings.TrimSpace(name)

	repositoryRegistry.mutex.Lock()
	defer repositoryRegistry.mutex.Unlock()
	_, isRemote := repositoryRegistry.remoteNameSet[trimmedName]
	return isRemote
}

// Choices returns every local repository first in registration order, followed
// by remote repositories without a local clone in scan order. A repository
// with a local path is never tagged remote-only, even when the last scan also
// listed it. The ordering is a deliberate contract relied upon by front ends.
func (repositoryRegistry *Registry) Choices() []Choice {
	repositoryRegistry.mutex.Lock()
	defer repositoryRegistry.mutex.Unlock()

	choices := make([]Choice, 0, len(repositoryRegistry.localNameOrder)+len(repositoryRegistry.remoteNameOrder))
	for _, localName := range repositoryRegistry.localNameOrder {
		choices = append(choices, Choice{Name: localName})
	}
	for _, remoteName := range repositoryRegistry.remoteNameOrder {
		if _, isLocal := repositoryRegistry.localPathsByName[remoteName]; isLocal {
			continue
		}
		choices = append(choices, Choice{Name: remoteName, RemoteOnly: true})
	}
	return choices
}

// Remove forgets a repository from both the local and remote views. Removal is
// idempotent: removing an absent name is a no-op, not a failure.
func (repositoryRegistry *Registry) Remove(name string) {
	trimmedName := strings.TrimSpace(name)
	if len(trimmedName) == 0 {
		return
	}

	repositoryRegistry.mutex.Lock()
	defer repositoryRegistry.mutex.Unlock()

	if _, isLocal := repositoryRegistry.localPathsByName[trimmedName]; isLocal {
		delete(repositoryRegistry.localPathsByName, trimmedName)
		repositoryRegistry.localNameOrder = removeName(repositoryRegistry.localNameOrder, trimmedName)
	}

	if _, isRemote := repositoryRegistry.remoteNameSet[trimmedName]; isRemote {
		delete(repositoryRegistry.remoteNameSet, trimmedName)
		repositoryRegistry.remoteNameOrder = removeName(repositoryRegistry.remoteNameOrder, trimmedName)
	}
}

func removeName(names []string, target string) []string {
	filteredNames := names[:0]
	for _, candidateName := range names {
		if candidateName == target {
			continue
		}
		filteredNames = append(filteredNames, candidateName)
	}
	return filteredNames
}
