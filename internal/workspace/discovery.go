package workspace

const gitMetadataDirectoryNameConstant = ".git"

// Clone describes a repository directory discovered beneath the workspace root.
type Clone struct {
	Name string
	Path string
}

// DiscoverClones lists immediate child directories of the workspace root that
// contain a .git entry. The walk is shallow; nested repositories are ignored.
func (manager *Manager) DiscoverClones() ([]Clone, error) {
	rootPath, rootError := manager.Root()
	if rootError != nil {
		return nil, rootError
	}

	rootEntries, readError := manager.fileSystem.ReadDir(rootPath)
	if readError != nil {
		return nil, readError
	}

	var clones []Clone
	for _, rootEntry := range rootEntries {
		if !rootEntry.IsDir() {
			continue
		}

		repositoryPath, pathError := manager.RepositoryPath(rootEntry.Name())
		if pathError != nil {
			continue
		}

		if !manager.containsGitMetadata(repositoryPath) {
			continue
		}

		clones = append(clones, Clone{Name: rootEntry.Name(), Path: repositoryPath})
	}

	return clones, nil
}

func (manager *Manager) containsGitMetadata(repositoryPath string) bool {
	childEntries, readError := manager.fileSystem.ReadDir(repositoryPath)
	if readError != nil {
		return false
	}
	for _, childEntry := range childEntries {
		if childEntry.Name() == gitMetadataDirectoryNameConstant {
			return true
		}
	}
	return false
}
