package execshell

// CommandEventObserver is told about each shell command the executor runs.
// Implementations surface the lifecycle to users, for example on the console.
type CommandEventObserver interface {
	// CommandStarted fires right before the command process is launched.
	CommandStarted(command ShellCommand)
	// CommandCompleted fires once the process exits, successful or not.
	CommandCompleted(command ShellCommand, result ExecutionResult)
	// CommandExecutionFailed fires when the process could not run at all.
	CommandExecutionFailed(command ShellCommand, failure error)
}

// discardingCommandEventObserver swallows every event. It backs executors
// constructed without an observer.
type discardingCommandEventObserver struct{}

func (discardingCommandEventObserver) CommandStarted(ShellCommand) {}

func (discardingCommandEventObserver) CommandCompleted(ShellCommand, ExecutionResult) {}

func (discardingCommandEventObserver) CommandExecutionFailed(ShellCommand, error) {}
