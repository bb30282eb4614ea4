// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// REPL Interaction - these keys configure the interactive prompt.
const (
	ReplPrompt = "repl.prompt"
)

// Script Execution - these keys govern how command scripts are applied to a session.
const (
	ExecStopOnError = "exec.stop_on_error"
	ExecEcho        = "exec.echo"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the command-line behavior.
const (
	CliColored = "cli.colored"
)
