package layout

import "github.com/charmbracelet/lipgloss"

// minContentHeight keeps a few rows of the list visible on tiny terminals.
const minContentHeight = 3

// ContentHeight returns the rows left for the scrolling list once the fixed
// parts of the screen are drawn.
func ContentHeight(height int, fixed ...string) int {
	used := 0
	for _, part := range fixed {
		used += lipgloss.Height(part)
	}
	if h := height - used; h > minContentHeight {
		return h
	}
	return minContentHeight
}

// Window returns the [start, end) range of n rows to show so that cursor stays
// visible in a list of the given height.
func Window(n, cursor, height int) (int, int) {
	if height <= 0 || n <= height {
		return 0, n
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > n {
		start = n - height
	}
	return start, start + height
}
