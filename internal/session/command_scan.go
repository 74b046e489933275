package session

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/temirov/hubdesk/internal/ui"
)

const (
	scanCommandUseConstant              = "scan"
	scanCommandShortDescriptionConstant = "List the GitHub account's repositories"
	scanCommandLongDescriptionConstant  = "scan fetches the account's repositories from the GitHub API and lists them together with any local clones."
	scanExecutionErrorTemplateConstant  = "repository scan failed: %w"
)

// ScanCommandBuilder assembles the Cobra command that lists repositories.
type ScanCommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	Prompter              CredentialPrompter
	Assembly              *CommandAssembly
}

// Build constructs the scan command.
func (builder *ScanCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   scanCommandUseConstant,
		Short: scanCommandShortDescriptionConstant,
		Long:  scanCommandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}
	return command, nil
}

func (builder *ScanCommandBuilder) run(command *cobra.Command, arguments []string) error {
	assembly, assembled, assemblyError := builder.resolveAssembly()
	if assemblyError != nil {
		return assemblyError
	}
	if assembled {
		defer assembly.Teardown()
	}

	choices, scanError := assembly.Service.Scan(command.Context())
	if scanError != nil {
		return fmt.Errorf(scanExecutionErrorTemplateConstant, scanError)
	}

	renderer := ui.NewRenderer(command.OutOrStdout())
	return renderer.RenderChoices(choices)
}

func (builder *ScanCommandBuilder) resolveAssembly() (*CommandAssembly, bool, error) {
	if builder.Assembly != nil {
		return builder.Assembly, false, nil
	}

	logger := resolveLoggerFromProvider(builder.LoggerProvider)
	configuration := resolveConfigurationFromProvider(builder.ConfigurationProvider)
	prompter := builder.Prompter
	if prompter == nil {
		prompter = defaultPrompter(os.Stdin, os.Stdout)
	}

	assembly, assemblyError := assembleCommandDependencies(logger, configuration, prompter, true)
	if assemblyError != nil {
		return nil, false, assemblyError
	}
	return assembly, true, nil
}
