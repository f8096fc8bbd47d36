// Package output provides structured output handling for the dayone2jekyll CLI.
//
// # Printer
//
// The Printer writes either human-readable or JSON output, chosen by the
// --json flag, and styles human output with lipgloss when the writer is a
// terminal:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"message": "Converted 12 entries"})
//	printer.Error(err)
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: Bad arguments or malformed journal records
//	output.ExitSystemError // 2: Archive or filesystem failure
//
// Errors built with NewUserError, NewSystemError and their WithCause
// variants carry these codes; GetExitCode recovers them for os.Exit.
package output
