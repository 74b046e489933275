package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/temirov/hubdesk/internal/inspect"
	"github.com/temirov/hubdesk/internal/registry"
)

const (
	remoteOnlyTagConstant         = "(remote)"
	localTagConstant              = "(local)"
	choiceLineTemplateConstant    = "%s %s\n"
	treeIndentUnitConstant        = "  "
	treeDirectorySuffixConstant   = "/"
	summaryLineTemplateConstant   = "%s @ %s %s\n"
	summaryOriginTemplateConstant = "origin %s\n"
	detachedHeadLabelConstant     = "(detached)"
	noRepositoriesMessageConstant = "No repositories found. Run scan first.\n"
	renderLineBreakConstant       = "\n"
)

type colorizeFunc func(a ...interface{}) string

// Renderer writes human-facing listings with optional color.
type Renderer struct {
	writer io.Writer
	green  colorizeFunc
	yellow colorizeFunc
	cyan   colorizeFunc
	gray   colorizeFunc
}

// NewRenderer constructs a colored renderer over the provided writer. Color
// output degrades automatically on non-terminal writers.
func NewRenderer(writer io.Writer) *Renderer {
	return &Renderer{
		writer: writer,
		green:  color.New(color.FgGreen, color.Bold).SprintFunc(),
		yellow: color.New(color.FgYellow).SprintFunc(),
		cyan:   color.New(color.FgCyan).SprintFunc(),
		gray:   color.New(color.FgHiBlack).SprintFunc(),
	}
}

// NewPlainRenderer constructs a renderer without color for tests and piped output.
func NewPlainRenderer(writer io.Writer) *Renderer {
	passthrough := func(a ...interface{}) string { return fmt.Sprint(a...) }
	return &Renderer{
		writer: writer,
		green:  passthrough,
		yellow: passthrough,
		cyan:   passthrough,
		gray:   passthrough,
	}
}

// RenderChoices lists repository choices, local clones first, tagging each
// entry with its availability.
func (renderer *Renderer) RenderChoices(choices []registry.Choice) error {
	if len(choices) == 0 {
		_, writeError := io.WriteString(renderer.writer, noRepositoriesMessageConstant)
		return writeError
	}
	for _, choice := range choices {
		availabilityTag := renderer.green(localTagConstant)
		if choice.RemoteOnly {
			availabilityTag = renderer.yellow(remoteOnlyTagConstant)
		}
		if _, writeError := fmt.Fprintf(renderer.writer, choiceLineTemplateConstant, choice.Name, availabilityTag); writeError != nil {
			return writeError
		}
	}
	return nil
}

// RenderEntries prints a depth-indented listing of clone contents.
func (renderer *Renderer) RenderEntries(entries []inspect.Entry) error {
	for _, entry := range entries {
		indentation := strings.Repeat(treeIndentUnitConstant, entry.Depth)
		displayName := entry.Name
		if entry.IsDirectory {
			displayName = renderer.cyan(entry.Name + treeDirectorySuffixConstant)
		}
		if _, writeError := fmt.Fprintf(renderer.writer, "%s%s%s", indentation, displayName, renderLineBreakConstant); writeError != nil {
			return writeError
		}
	}
	return nil
}

// RenderSummary prints the checked-out branch, HEAD commit, and origin remote
// of a clone.
func (renderer *Renderer) RenderSummary(summary inspect.Summary) error {
	branchLabel := renderer.green(summary.BranchName)
	if summary.DetachedHead {
		branchLabel = renderer.yellow(detachedHeadLabelConstant)
	}
	if _, writeError := fmt.Fprintf(
		renderer.writer,
		summaryLineTemplateConstant,
		branchLabel,
		renderer.gray(summary.CommitHash),
		summary.CommitSubject,
	); writeError != nil {
		return writeError
	}
	if len(summary.OriginURL) > 0 {
		if _, writeError := fmt.Fprintf(renderer.writer, summaryOriginTemplateConstant, renderer.gray(summary.OriginURL)); writeError != nil {
			return writeError
		}
	}
	return nil
}
