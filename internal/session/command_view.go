package session

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temirov/hubdesk/internal/inspect"
	"github.com/temirov/hubdesk/internal/ui"
)

const (
	viewCommandUseConstant              = "view <repository> [path]"
	viewCommandShortDescriptionConstant = "Show the contents of a cloned repository"
	viewCommandLongDescriptionConstant  = "view lists the files of a cloned repository, or prints one file when a path inside the clone is given."
	viewExecutionErrorTemplateConstant  = "repository view failed: %w"
	viewSummaryUnavailableLogConstant   = "repository summary unavailable"
	viewArgumentCountMinimumConstant    = 1
	viewArgumentCountMaximumConstant    = 2
)

// ViewCommandBuilder assembles the Cobra command that inspects a clone.
// Viewing touches only the local clone, so the builder never prompts for
// credentials.
type ViewCommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	Assembly              *CommandAssembly
}

// Build constructs the view command.
func (builder *ViewCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   viewCommandUseConstant,
		Short: viewCommandShortDescriptionConstant,
		Long:  viewCommandLongDescriptionConstant,
		Args:  cobra.RangeArgs(viewArgumentCountMinimumConstant, viewArgumentCountMaximumConstant),
		RunE:  builder.run,
	}
	return command, nil
}

func (builder *ViewCommandBuilder) run(command *cobra.Command, arguments []string) error {
	repositoryName := arguments[0]

	assembly, assembled, assemblyError := builder.resolveAssembly()
	if assemblyError != nil {
		return assemblyError
	}
	if assembled {
		defer assembly.Teardown()
	}

	localPath, pathError := assembly.Service.LocalPath(repositoryName)
	if pathError != nil {
		return fmt.Errorf(viewExecutionErrorTemplateConstant, pathError)
	}

	inspector := inspect.NewInspector()

	if len(arguments) == viewArgumentCountMaximumConstant {
		fileContent, readError := inspector.ReadFile(localPath, arguments[1])
		if readError != nil {
			return fmt.Errorf(viewExecutionErrorTemplateConstant, readError)
		}
		_, writeError := command.OutOrStdout().Write(fileContent)
		return writeError
	}

	renderer := ui.NewRenderer(command.OutOrStdout())

	if summary, summaryError := inspector.Summarize(localPath); summaryError == nil {
		if renderError := renderer.RenderSummary(summary); renderError != nil {
			return renderError
		}
	} else {
		resolveLoggerFromProvider(builder.LoggerProvider).Warn(viewSummaryUnavailableLogConstant)
	}

	entries, listError := inspector.ListEntries(localPath)
	if listError != nil {
		return fmt.Errorf(viewExecutionErrorTemplateConstant, listError)
	}
	return renderer.RenderEntries(entries)
}

func (builder *ViewCommandBuilder) resolveAssembly() (*CommandAssembly, bool, error) {
	if builder.Assembly != nil {
		return builder.Assembly, false, nil
	}

	logger := resolveLoggerFromProvider(builder.LoggerProvider)
	configuration := resolveConfigurationFromProvider(builder.ConfigurationProvider)

	assembly, assemblyError := assembleCommandDependencies(logger, configuration, nil, false)
	if assemblyError != nil {
		return nil, false, assemblyError
	}
	return assembly, true, nil
}
