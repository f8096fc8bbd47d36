package output

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ResolveColorMode determines the effective isTTY value based on the --color
// flag and actual TTY detection. The colorMode parameter accepts "never",
// "always", or "auto":
//   - "never":  always disable colors (returns false)
//   - "always": always enable colors (returns true)
//   - "auto":   use the detected isTTY value (default behavior)
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		return isTTY
	}
}

// IsTTY reports whether writer is a terminal.
// Only *os.File writers can be terminals.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
