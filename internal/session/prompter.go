package session

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/term"
)

const (
	usernamePromptConstant     = "GitHub username: "
	accessTokenPromptConstant  = "GitHub access token: "
	promptLineBreakConstant    = "\n"
	invalidDescriptorConstant  = -1
	affirmativeShortResponse   = "y"
	affirmativeLongResponse    = "yes"
	confirmationSuffixConstant = " [y/N] "
)

// CredentialPrompter collects missing credential fields interactively.
type CredentialPrompter interface {
	PromptUsername() (string, error)
	PromptAccessToken() (string, error)
}

// ConfirmationPrompter asks the operator to approve a destructive action.
type ConfirmationPrompter interface {
	Confirm(prompt string) (bool, error)
}

// IOPrompter reads prompts from an io.Reader and writes them to an io.Writer.
// When the input descriptor refers to a terminal, token entry is read without
// echo.
type IOPrompter struct {
	reader          *bufio.Reader
	writer          io.Writer
	inputDescriptor int
}

// NewIOPrompter constructs a prompter over the provided streams. Pass a
// negative descriptor when the input is not backed by a terminal.
func NewIOPrompter(input io.Reader, output io.Writer, inputDescriptor int) *IOPrompter {
	return &IOPrompter{
		reader:          bufio.NewReader(input),
		writer:          output,
		inputDescriptor: inputDescriptor,
	}
}

// PromptUsername asks for and returns the GitHub username.
func (prompter *IOPrompter) PromptUsername() (string, error) {
	return prompter.readLine(usernamePromptConstant)
}

// PromptAccessToken asks for the access token, suppressing echo on terminals.
func (prompter *IOPrompter) PromptAccessToken() (string, error) {
	if prompter.inputDescriptor != invalidDescriptorConstant && term.IsTerminal(prompter.inputDescriptor) {
		if writeError := prompter.writePrompt(accessTokenPromptConstant); writeError != nil {
			return "", writeError
		}
		tokenBytes, readError := term.ReadPassword(prompter.inputDescriptor)
		if writeError := prompter.writePrompt(promptLineBreakConstant); writeError != nil {
			return "", writeError
		}
		if readError != nil {
			return "", readError
		}
		return strings.TrimSpace(string(tokenBytes)), nil
	}
	return prompter.readLine(accessTokenPromptConstant)
}

// Confirm writes the prompt and interprets affirmative responses (y/yes).
func (prompter *IOPrompter) Confirm(prompt string) (bool, error) {
	response, readError := prompter.readLine(prompt + confirmationSuffixConstant)
	if readError != nil {
		return false, readError
	}
	switch strings.ToLower(response) {
	case affirmativeShortResponse, affirmativeLongResponse:
		return true, nil
	default:
		return false, nil
	}
}

func (prompter *IOPrompter) readLine(prompt string) (string, error) {
	if writeError := prompter.writePrompt(prompt); writeError != nil {
		return "", writeError
	}
	response, readError := prompter.reader.ReadString('\n')
	if readError != nil && readError != io.EOF {
		return "", readError
	}
	return strings.TrimSpace(response), nil
}

func (prompter *IOPrompter) writePrompt(prompt string) error {
	if prompter.writer == nil {
		return nil
	}
	_, writeError := io.WriteString(prompter.writer, prompt)
	return writeError
}
