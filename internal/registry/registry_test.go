package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/hubdesk/internal/registry"
)

func TestMergeScanResultsReplacesRemoteView(testInstance *testing.T) {
	repositoryRegistry := registry.NewRegistry()

	repositoryRegistry.MergeScanResults([]string{"alpha", "beta"})
	require.Equal(testInstance, []registry.Choice{
		{Name: "alpha", RemoteOnly: true},
		{Name: "beta", RemoteOnly: true},
	}, repositoryRegistry.Choices())

	repositoryRegistry.MergeScanResults([]string{"gamma"})
	require.Equal(testInstance, []registry.Choice{
		{Name: "gamma", RemoteOnly: true},
	}, repositoryRegistry.Choices())
	require.False(testInstance, repositoryRegistry.IsKnownRemote("alpha"))
}

func TestMergeScanResultsDropsDuplicatesAndBlanks(testInstance *testing.T) {
	repositoryRegistry := registry.NewRegistry()
	repositoryRegistry.MergeScanResults([]string{"alpha", " alpha ", "", "beta", "alpha"})

	require.Equal(testInstance, []registry.Choice{
		{Name: "alpha", RemoteOnly: true},
		{Name: "beta", RemoteOnly: true},
	}, repositoryRegistry.Choices())
}

func TestRegisterLocalSupersedesRemoteTag(testInstance *testing.T) {
	repositoryRegistry := registry.NewRegistry()
	require.NoError(testInstance, repositoryRegistry.RegisterLocal("alpha", "/ws/alpha"))
	repositoryRegistry.MergeScanResults([]string{"alpha", "beta"})

	require.Equal(testInstance, []registry.Choice{
		{Name: "alpha"},
		{Name: "beta", RemoteOnly: true},
	}, repositoryRegistry.Choices())

	localPath, isLocal := repositoryRegistry.LocalPath("alpha")
	require.True(testInstance, isLocal)
	require.Equal(testInstance, "/ws/alpha", localPath)
	require.True(testInstance, repositoryRegistry.IsKnownRemote("alpha"))
}

func TestRegisterLocalIsIdempotentUpsert(testInstance *testing.T) {
	repositoryRegistry := registry.NewRegistry()
	require.NoError(testInstance, repositoryRegistry.RegisterLocal("alpha", "/ws/alpha"))
	require.NoError(testInstance, repositoryRegistry.RegisterLocal("beta", "/ws/beta"))
	require.NoError(testInstance, repositoryRegistry.RegisterLocal("alpha", "/elsewhere/alpha"))

	require.Equal(testInstance, []registry.Choice{
		{Name: "alpha"},
		{Name: "beta"},
	}, repositoryRegistry.Choices())

	localPath, isLocal := repositoryRegistry.LocalPath("alpha")
	require.True(testInstance, isLocal)
	require.Equal(testInstance, "/elsewhere/alpha", localPath)
}

func TestRegisterLocalValidatesArguments(testInstance *testing.T) {
	repositoryRegistry := registry.NewRegistry()
	require.ErrorIs(testInstance, repositoryRegistry.RegisterLocal("  ", "/ws/alpha"), registry.ErrRepositoryNameRequired)
	require.ErrorIs(testInstance, repositoryRegistry.RegisterLocal("alpha", ""), registry.ErrLocalPathRequired)
}

func TestRemoveIsIdempotent(testInstance *testing.T) {
	repositoryRegistry := registry.NewRegistry()
	require.NoError(testInstance, repositoryRegistry.RegisterLocal("alpha", "/ws/alpha"))
	repositoryRegistry.MergeScanResults([]string{"alpha", "beta"})

	repositoryRegistry.Remove("alpha")
	expectedChoices := []registry.Choice{{Name: "beta", RemoteOnly: true}}
	require.Equal(testInstance, expectedChoices, repositoryRegistry.Choices())

	repositoryRegistry.Remove("alpha")
	require.Equal(testInstance, expectedChoices, repositoryRegistry.Choices())

	repositoryRegistry.Remove("never-registered")
	require.Equal(testInstance, expectedChoices, repositoryRegistry.Choices())
}

func TestChoicesOrderingContract(testInstance *testing.T) {
	repositoryRegistry := registry.NewRegistry()
	require.NoError(testInstance, repositoryRegistry.RegisterLocal("zulu", "/ws/zulu"))
	require.NoError(testInstance, repositoryRegistry.RegisterLocal("alpha", "/ws/alpha"))
	repositoryRegistry.MergeScanResults([]string{"mike", "alpha", "bravo"})

	require.Equal(testInstance, []registry.Choice{
		{Name: "zulu"},
		{Name: "alpha"},
		{Name: "mike", RemoteOnly: true},
		{Name: "bravo", RemoteOnly: true},
	}, repositoryRegistry.Choices())
}
