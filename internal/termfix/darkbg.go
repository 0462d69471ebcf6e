// ABOUTME: Fixes lipgloss to a dark background before Bubble Tea initializes
// ABOUTME: Import with _ ahead of anything that pulls in bubbletea

package termfix

import "github.com/charmbracelet/lipgloss"

// With the background already known, bubbletea's init skips the OSC 11
// background query, whose late reply would otherwise land on stdin and be
// read as the user's menu choice. Importing bubbletea here would break the
// init ordering.
func init() {
	lipgloss.SetHasDarkBackground(true)
}
