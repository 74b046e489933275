package session

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	deleteCommandUseConstant              = "delete <repository>"
	deleteCommandShortDescriptionConstant = "Delete a repository from GitHub"
	deleteCommandLongDescriptionConstant  = "delete removes the named repository from the GitHub account, then removes any local clone from the workspace."
	deleteExecutionErrorTemplateConstant  = "repository deletion failed: %w"
	deleteConfirmationTemplateConstant    = "Permanently delete %s from GitHub?"
	deleteAbortedMessageConstant          = "Deletion aborted.\n"
	deleteSuccessTemplateConstant         = "Deleted %s\n"
	deleteWarningTemplateConstant         = "Warning: %s\n"
	deleteAssumeYesFlagNameConstant       = "yes"
	deleteAssumeYesFlagDescription        = "Skip the confirmation prompt"
)

// DeleteCommandBuilder assembles the Cobra command that deletes a repository.
type DeleteCommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	Prompter              CredentialPrompter
	Confirmer             ConfirmationPrompter
	Assembly              *CommandAssembly
}

// Build constructs the delete command.
func (builder *DeleteCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   deleteCommandUseConstant,
		Short: deleteCommandShortDescriptionConstant,
		Long:  deleteCommandLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}
	command.Flags().Bool(deleteAssumeYesFlagNameConstant, false, deleteAssumeYesFlagDescription)
	return command, nil
}

func (builder *DeleteCommandBuilder) run(command *cobra.Command, arguments []string) error {
	repositoryName := arguments[0]

	assumeYes, _ := command.Flags().GetBool(deleteAssumeYesFlagNameConstant)
	if !assumeYes {
		confirmer := builder.resolveConfirmer(command)
		confirmed, confirmError := confirmer.Confirm(fmt.Sprintf(deleteConfirmationTemplateConstant, repositoryName))
		if confirmError != nil {
			return confirmError
		}
		if !confirmed {
			fmt.Fprint(command.OutOrStdout(), deleteAbortedMessageConstant)
			return nil
		}
	}

	assembly, assembled, assemblyError := builder.resolveAssembly()
	if assemblyError != nil {
		return assemblyError
	}
	if assembled {
		defer assembly.Teardown()
	}

	deleteResult, deleteError := assembly.Service.Delete(command.Context(), repositoryName)
	if deleteError != nil {
		return fmt.Errorf(deleteExecutionErrorTemplateConstant, deleteError)
	}

	fmt.Fprintf(command.OutOrStdout(), deleteSuccessTemplateConstant, deleteResult.RepositoryName)
	if len(deleteResult.LocalRemovalWarning) > 0 {
		fmt.Fprintf(command.ErrOrStderr(), deleteWarningTemplateConstant, deleteResult.LocalRemovalWarning)
	}
	return nil
}

func (builder *DeleteCommandBuilder) resolveConfirmer(command *cobra.Command) ConfirmationPrompter {
	if builder.Confirmer != nil {
		return builder.Confirmer
	}
	return NewIOPrompter(command.InOrStdin(), command.OutOrStdout(), invalidDescriptorConstant)
}

func (builder *DeleteCommandBuilder) resolveAssembly() (*CommandAssembly, bool, error) {
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
