package main

import "fmt"

// formatSummary returns the closing line of a conversion.
func formatSummary(count int, journal, dir string) string {
	noun := "entries"
	if count == 1 {
		noun = "entry"
	}
	return fmt.Sprintf("Converted %d %s from %s to %s", count, noun, journal, dir)
}
