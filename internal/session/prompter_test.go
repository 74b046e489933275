package session_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/hubdesk/internal/session"
)

func TestIOPrompterReadsCredentialFields(testInstance *testing.T) {
	input := strings.NewReader("octocat\nsecret-token\n")
	var output strings.Builder
	prompter := session.NewIOPrompter(input, &output, -1)

	username, usernameError := prompter.PromptUsername()
	require.NoError(testInstance, usernameError)
	require.Equal(testInstance, "octocat", username)

	accessToken, tokenError := prompter.PromptAccessToken()
	require.NoError(testInstance, tokenError)
	require.Equal(testInstance, "secret-token", accessToken)

	require.Contains(testInstance, output.String(), "GitHub username: ")
	require.Contains(testInstance, output.String(), "GitHub access token: ")
}

func TestIOPrompterConfirm(testInstance *testing.T) {
	testCases := []struct {
		name            string
		response        string
		expectedOutcome bool
	}{
		{name: "short_affirmative", response: "y\n", expectedOutcome: true},
		{name: "long_affirmative", response: "Yes\n", expectedOutcome: true},
		{name: "negative", response: "n\n", expectedOutcome: false},
		{name: "empty_defaults_to_no", response: "\n", expectedOutcome: false},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			var output strings.Builder
			prompter := session.NewIOPrompter(strings.NewReader(testCase.response), &output, -1)

			confirmed, confirmError := prompter.Confirm("Delete service?")

			require.NoError(subtestInstance, confirmError)
			require.Equal(subtestInstance, testCase.expectedOutcome, confirmed)
			require.Contains(subtestInstance, output.String(), "Delete service? [y/N] ")
		})
	}
}
