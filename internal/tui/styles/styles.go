// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}

	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}
)

// Priority colors (P4 = highest urgency in Taskflow's 1..4 scale).
var (
	Priority4Color = lipgloss.Color("#D0473D")
	Priority3Color = lipgloss.Color("#EA8811")
	Priority2Color = lipgloss.Color("#296FDF")
	Priority1Color = lipgloss.Color("")
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// Title is the style for section titles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for secondary headings
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)

	// StatusError is for the error status line
	StatusError = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// StatusInfo is for informational status messages
	StatusInfo = lipgloss.NewStyle().
			Foreground(Subtle)

	// Footer is for the summary line
	Footer = lipgloss.NewStyle().
		Foreground(Subtle).
		PaddingTop(1)
)

// Sidebar styles
var (
	SidebarItem = lipgloss.NewStyle().
			PaddingLeft(2)

	SidebarSelected = lipgloss.NewStyle().
			PaddingLeft(1).
			Bold(true).
			Foreground(Highlight)

	SidebarActive = lipgloss.NewStyle().
			PaddingLeft(2).
			Bold(true)
)

// Task styles
var (
	// TaskItem is the base style for a task item
	TaskItem = lipgloss.NewStyle().
			PaddingLeft(2)

	// TaskSelected is the style for the task under the cursor
	TaskSelected = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeftForeground(Highlight).
			Bold(true)

	// TaskCompleted is the style for completed tasks
	TaskCompleted = lipgloss.NewStyle().
			Faint(true).
			Strikethrough(true)

	// TaskDue is for due date display
	TaskDue = lipgloss.NewStyle().
		Foreground(Subtle).
		PaddingLeft(1)

	// TaskDueOverdue is for overdue tasks
	TaskDueOverdue = lipgloss.NewStyle().
			Foreground(ErrorColor).
			PaddingLeft(1)

	// TaskDueToday is for tasks due today
	TaskDueToday = lipgloss.NewStyle().
			Foreground(SuccessColor).
			PaddingLeft(1)

	// TaskDescription is for descriptions in task lists
	TaskDescription = lipgloss.NewStyle().
			Foreground(Subtle).
			Faint(true).
			Italic(true).
			PaddingLeft(6)
)

// Priority styles
var (
	TaskPriority4 = lipgloss.NewStyle().Foreground(Priority4Color)
	TaskPriority3 = lipgloss.NewStyle().Foreground(Priority3Color)
	TaskPriority2 = lipgloss.NewStyle().Foreground(Priority2Color)
	TaskPriority1 = lipgloss.NewStyle()
)

// GetPriorityStyle returns the appropriate style for a task priority.
func GetPriorityStyle(priority int) lipgloss.Style {
	switch priority {
	case 4:
		return TaskPriority4
	case 3:
		return TaskPriority3
	case 2:
		return TaskPriority2
	default:
		return TaskPriority1
	}
}

// Form styles
var (
	FormLabel = lipgloss.NewStyle().
			Foreground(Subtle)

	FormLabelFocused = lipgloss.NewStyle().
				Bold(true).
				Foreground(Highlight)

	FormBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(1, 2)
)
