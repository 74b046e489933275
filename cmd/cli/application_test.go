package cli_test

import (
	"bytes"
	"strings"
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/temirov/hubdesk/cmd/cli"
	"github.com/temirov/hubdesk/internal/session"
)

const (
	testConfigurationTypeConstant    = "yaml"
	testConfigurationContentConstant = "common:\n" +
		"  log_level: warn\n" +
		"  log_format: console\n" +
		"github:\n" +
		"  username: hubdesk-operator\n" +
		"  api_base_url: https://api.github.com\n" +
		"  request_timeout_seconds: 45\n" +
		"workspace:\n" +
		"  root: ~/hubdesk\n"
	testExpectedUsernameConstant   = "hubdesk-operator"
	testExpectedAPIBaseURLConstant = "https://api.github.com"
	testExpectedRootConstant       = "~/hubdesk"
)

func TestApplicationConfigurationDecoding(testInstance *testing.T) {
	viperInstance := viper.New()
	viperInstance.SetConfigType(testConfigurationTypeConstant)

	readError := viperInstance.ReadConfig(bytes.NewReader([]byte(testConfigurationContentConstant)))
	require.NoError(testInstance, readError)

	var configuration cli.ApplicationConfiguration
	unmarshalError := viperInstance.Unmarshal(&configuration)
	require.NoError(testInstance, unmarshalError)

	require.Equal(testInstance, "warn", configuration.Common.LogLevel)
	require.Equal(testInstance, testExpectedUsernameConstant, configuration.GitHub.Username)
	require.Equal(testInstance, testExpectedAPIBaseURLConstant, configuration.GitHub.APIBaseURL)
	require.Equal(testInstance, 45, configuration.GitHub.RequestTimeoutSeconds)
	require.Equal(testInstance, testExpectedRootConstant, configuration.Workspace.Root)
}

func TestDefaultConfigurationValuesDecodeIntoSessionSections(testInstance *testing.T) {
	sectionedValues := map[string]any{}
	for configurationKey, configurationValue := range session.DefaultConfigurationValues() {
		keySegments := strings.SplitN(configurationKey, ".", 2)
		require.Len(testInstance, keySegments, 2)

		sectionName := keySegments[0]
		fieldName := keySegments[1]
		sectionValues, sectionExists := sectionedValues[sectionName].(map[string]any)
		if !sectionExists {
			sectionValues = map[string]any{}
			sectionedValues[sectionName] = sectionValues
		}
		sectionValues[fieldName] = configurationValue
	}

	var configuration session.CommandConfiguration
	decoder, decoderError := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "mapstructure", Result: &configuration})
	require.NoError(testInstance, decoderError)
	require.NoError(testInstance, decoder.Decode(sectionedValues))

	sanitized := configuration.Sanitize()
	require.Equal(testInstance, testExpectedAPIBaseURLConstant, sanitized.GitHub.APIBaseURL)
	require.Positive(testInstance, sanitized.GitHub.RequestTimeoutSeconds)
}

func TestApplicationConfigurationSessionConfiguration(testInstance *testing.T) {
	configuration := cli.ApplicationConfiguration{}
	configuration.GitHub.Username = testExpectedUsernameConstant
	configuration.Workspace.Root = testExpectedRootConstant

	sessionConfiguration := configuration.SessionConfiguration()

	require.Equal(testInstance, testExpectedUsernameConstant, sessionConfiguration.GitHub.Username)
	require.Equal(testInstance, testExpectedRootConstant, sessionConfiguration.Workspace.Root)
}
