package session

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/temirov/hubdesk/internal/gitrepo"
)

const (
	cloneCommandUseConstant              = "clone <repository>"
	cloneCommandShortDescriptionConstant = "Clone one of the account's repositories into the workspace"
	cloneCommandLongDescriptionConstant  = "clone fetches the named repository over authenticated HTTPS into the workspace directory and records its local path."
	cloneExecutionErrorTemplateConstant  = "repository clone failed: %w"
	cloneSuccessTemplateConstant         = "Cloned %s into %s\n"
	cloneSourceTemplateConstant          = "Cloning %s\n"
)

// CloneCommandBuilder assembles the Cobra command that clones a repository.
type CloneCommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	Prompter              CredentialPrompter
	Assembly              *CommandAssembly
}

// Build constructs the clone command.
func (builder *CloneCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   cloneCommandUseConstant,
		Short: cloneCommandShortDescriptionConstant,
		Long:  cloneCommandLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}
	return command, nil
}

func (builder *CloneCommandBuilder) run(command *cobra.Command, arguments []string) error {
	repositoryName := arguments[0]

	assembly, assembled, assemblyError := builder.resolveAssembly()
	if assemblyError != nil {
		return assemblyError
	}
	if assembled {
		defer assembly.Teardown()
	}

	fmt.Fprintf(
		command.OutOrStdout(),
		cloneSourceTemplateConstant,
		gitrepo.RedactedCloneURL(gitrepo.CloneTarget{Username: assembly.Service.Username(), RepositoryName: repositoryName}),
	)

	clonePath, cloneError := assembly.Service.Clone(command.Context(), repositoryName)
	if cloneError != nil {
		return fmt.Errorf(cloneExecutionErrorTemplateConstant, cloneError)
	}

	fmt.Fprintf(command.OutOrStdout(), cloneSuccessTemplateConstant, repositoryName, clonePath)
	return nil
}

func (builder *CloneCommandBuilder) resolveAssembly() (*CommandAssembly, bool, error) {
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
