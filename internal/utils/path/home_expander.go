package pathutils

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const homeShortcutConstant = "~"

// HomeDirectoryProvider reports the home directory of the current user.
type HomeDirectoryProvider func() (string, error)

// HomeExpander rewrites paths that start with a tilde shortcut so they point
// inside the user's home directory. The home lookup happens once and the
// outcome is reused for every subsequent expansion.
type HomeExpander struct {
	homeDirectoryProvider HomeDirectoryProvider
	cachedHomeDirectory   string
	cachedLookupError     error
	lookupOnce            sync.Once
}

// NewHomeExpander constructs a HomeExpander backed by os.UserHomeDir.
func NewHomeExpander() *HomeExpander {
	return NewHomeExpanderWithProvider(os.UserHomeDir)
}

// NewHomeExpanderWithProvider constructs a HomeExpander backed by the supplied
// provider. A nil provider falls back to os.UserHomeDir.
func NewHomeExpanderWithProvider(provider HomeDirectoryProvider) *HomeExpander {
	if provider == nil {
		provider = os.UserHomeDir
	}
	return &HomeExpander{homeDirectoryProvider: provider}
}

// Expand replaces a leading tilde with the user's home directory. Paths
// without the shortcut, and paths whose home lookup fails, come back
// unchanged.
func (expander *HomeExpander) Expand(candidatePath string) string {
	if expander == nil || len(candidatePath) == 0 {
		return candidatePath
	}
	if !strings.HasPrefix(candidatePath, homeShortcutConstant) {
		return candidatePath
	}

	homeDirectory := expander.lookupHomeDirectory()
	if len(homeDirectory) == 0 {
		return candidatePath
	}

	if candidatePath == homeShortcutConstant {
		return homeDirectory
	}

	shortcutPrefixes := []string{
		homeShortcutConstant + "/",
		homeShortcutConstant + string(os.PathSeparator),
	}
	for _, shortcutPrefix := range shortcutPrefixes {
		if strings.HasPrefix(candidatePath, shortcutPrefix) {
			return filepath.Join(homeDirectory, strings.TrimPrefix(candidatePath, shortcutPrefix))
		}
	}

	return candidatePath
}

func (expander *HomeExpander) lookupHomeDirectory() string {
	expander.lookupOnce.Do(func() {
		expander.cachedHomeDirectory, expander.cachedLookupError = expander.homeDirectoryProvider()
	})
	if expander.cachedLookupError != nil {
		return ""
	}
	return expander.cachedHomeDirectory
}
