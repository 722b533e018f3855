package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/taskflow-app/taskflow-tui/internal/api"
	"github.com/taskflow-app/taskflow-tui/internal/tui/styles"
)

const (
	sidebarWidth = 24
	minListWidth = 40
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.fatalErr != nil {
		return m.viewFatal()
	}
	if m.form != nil {
		return styles.App.Render(m.viewTaskForm())
	}
	if m.projectForm != nil {
		return styles.App.Render(m.viewProjectForm())
	}

	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	sidebar := m.viewSidebar()
	main := m.viewTasks()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", main))

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return styles.App.Render(b.String())
}

func (m *Model) viewFatal() string {
	var b strings.Builder
	b.WriteString(styles.StatusError.Render("Could not load Taskflow"))
	b.WriteString("\n\n")
	b.WriteString(errorMessage(m.fatalErr))
	b.WriteString("\n\n")
	b.WriteString(styles.StatusInfo.Render("r retry · q quit"))
	return styles.App.Render(b.String())
}

func (m *Model) viewHeader() string {
	title := "Inbox"
	if p := m.cache.ActiveProject(); p != nil {
		title = p.Name
	}

	var badges []string
	switch m.completed {
	case api.CompletedActive:
		badges = append(badges, "active only")
	case api.CompletedDone:
		badges = append(badges, "completed only")
	}
	if m.dueBefore != "" {
		badges = append(badges, "due before "+m.dueBefore)
	}
	if s := trimmed(m.search.Value()); s != "" {
		badges = append(badges, "search: "+s)
	}

	header := styles.Title.Render(title)
	if len(badges) > 0 {
		header += styles.Subtitle.Render("  [" + strings.Join(badges, " · ") + "]")
	}
	if m.loading {
		header += " " + m.spinner.View()
	}
	if m.searching {
		header += "\n" + styles.Subtitle.Render("Search: ") + m.search.View()
	}
	if m.editingDue {
		header += "\n" + styles.Subtitle.Render("Due before: ") + m.dueInput.View()
	}
	return header
}

func (m *Model) viewSidebar() string {
	var b strings.Builder
	b.WriteString(styles.Subtitle.Render("Projects"))
	b.WriteString("\n")

	for i, p := range m.cache.Projects {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render("●")
		name := truncateString(p.Name, sidebarWidth-4)
		line := dot + " " + name

		switch {
		case m.pane == PaneSidebar && i == m.projectCursor:
			b.WriteString(styles.SidebarSelected.Render("▸" + line))
		case p.ID == m.cache.ActiveProjectID:
			b.WriteString(styles.SidebarActive.Render(line))
		default:
			b.WriteString(styles.SidebarItem.Render(line))
		}
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Width(sidebarWidth).Render(b.String())
}

func (m *Model) viewTasks() string {
	width := m.width - sidebarWidth - 8
	if width < minListWidth {
		width = minListWidth
	}

	var b strings.Builder
	b.WriteString(styles.Subtitle.Render("Tasks"))
	b.WriteString("\n")

	if m.tasksUnavailable {
		b.WriteString(styles.StatusError.Render("Tasks unavailable. Press r to retry."))
		return b.String()
	}
	if len(m.cache.Tasks) == 0 {
		b.WriteString(styles.StatusInfo.Render("No tasks found. Add one with a."))
		return b.String()
	}

	for i := range m.cache.Tasks {
		task := &m.cache.Tasks[i]
		selected := m.pane == PaneMain && i == m.taskCursor
		b.WriteString(m.viewTaskRow(task, selected, width))
		b.WriteString("\n")
	}

	return b.String()
}

func (m *Model) viewTaskRow(task *api.Task, selected bool, width int) string {
	checkbox := "[ ]"
	if task.Completed {
		checkbox = "[x]"
	}

	priority := styles.GetPriorityStyle(task.Priority).Render(fmt.Sprintf("p%d", task.Priority))

	title := truncateString(task.Title, width-12)
	if task.Completed {
		title = styles.TaskCompleted.Render(title)
	}

	line := fmt.Sprintf("%s %s %s", checkbox, priority, title)

	if task.DueDate != nil {
		due := task.DueDisplay()
		switch {
		case task.IsOverdue():
			line += styles.TaskDueOverdue.Render(due)
		case task.IsDueToday():
			line += styles.TaskDueToday.Render(due)
		default:
			line += styles.TaskDue.Render(due)
		}
	}

	if task.ProjectID != nil {
		for _, p := range m.cache.Projects {
			if p.ID == *task.ProjectID {
				tag := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render("#" + p.Name)
				line += " " + tag
				break
			}
		}
	}

	if selected {
		line = styles.TaskSelected.Render(line)
	} else {
		line = styles.TaskItem.Render(line)
	}

	if selected && task.Description != nil && *task.Description != "" {
		line += "\n" + styles.TaskDescription.Render(truncateString(*task.Description, width-6))
	}

	return line
}

func (m *Model) viewFooter() string {
	var b strings.Builder

	if m.confirmDelete != nil {
		b.WriteString(styles.StatusError.Render(
			fmt.Sprintf("Delete %q? (y/n)", truncateString(m.confirmDelete.Title, 40))))
		b.WriteString("\n")
	} else if m.statusMsg != "" {
		style := styles.StatusInfo
		if m.statusIsErr {
			style = styles.StatusError
		}
		b.WriteString(style.Render(m.statusMsg))
		b.WriteString("\n")
	}

	switch {
	case m.summaryUnavailable:
		b.WriteString(styles.Footer.Render("Summary unavailable"))
	case m.summary != nil:
		b.WriteString(styles.Footer.Render(fmt.Sprintf(
			"%d total · %d completed · %d active",
			m.summary.Total, m.summary.Completed, m.summary.Active)))
	}

	b.WriteString("\n")
	b.WriteString(styles.StatusInfo.Render(
		"j/k move · tab pane · enter select · x toggle · a add · e edit · dd delete · / search · f filter · b due · p project · y yank · r reload · q quit"))

	return b.String()
}

func (m *Model) viewTaskForm() string {
	f := m.form

	heading := "New task"
	if f.Mode == "edit" {
		heading = "Edit task"
	}

	label := func(field int, text string) string {
		if f.FocusIndex == field {
			return styles.FormLabelFocused.Render(text)
		}
		return styles.FormLabel.Render(text)
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(heading))
	b.WriteString("\n\n")
	b.WriteString(label(FormFieldTitle, "Title       ") + f.Title.View() + "\n")
	b.WriteString(label(FormFieldDescription, "Description ") + f.Description.View() + "\n")
	b.WriteString(label(FormFieldDue, "Due date    ") + f.Due.View() + "\n")
	b.WriteString(label(FormFieldPriority, "Priority    ") +
		styles.GetPriorityStyle(f.Priority).Render(fmt.Sprintf("p%d", f.Priority)) + "\n")
	b.WriteString(label(FormFieldProject, "Project     ") + f.ProjectOptions[f.ProjectCursor].Label + "\n")

	if f.Err != nil {
		b.WriteString("\n" + styles.StatusError.Render(errorText(f.Err)))
	}

	b.WriteString("\n\n")
	b.WriteString(styles.StatusInfo.Render("tab next field · h/l adjust · enter save · esc cancel"))

	return styles.FormBox.Render(b.String())
}

func (m *Model) viewProjectForm() string {
	f := m.projectForm

	var swatches []string
	for i, color := range projectColors {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●")
		if i == f.ColorCursor {
			swatch = "[" + swatch + "]"
		} else {
			swatch = " " + swatch + " "
		}
		swatches = append(swatches, swatch)
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("New project"))
	b.WriteString("\n\n")
	b.WriteString(styles.FormLabel.Render("Name  ") + f.Name.View() + "\n")
	b.WriteString(styles.FormLabel.Render("Color ") + strings.Join(swatches, "") + "\n")

	if f.Err != nil {
		b.WriteString("\n" + styles.StatusError.Render(errorText(f.Err)))
	}

	b.WriteString("\n\n")
	b.WriteString(styles.StatusInfo.Render("tab color · enter create · esc cancel"))

	return styles.FormBox.Render(b.String())
}

// errorText renders an error for inline display: validation errors show
// as-is, everything else goes through the API/transport mapping.
func errorText(err error) string {
	switch err {
	case errTitleRequired, errProjectNameRequired, errBadDueDate:
		return err.Error()
	}
	return errorMessage(err)
}

// truncateString truncates a string to the given width, appending "…" if
// truncated. It handles wide characters correctly using runewidth.
func truncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	if runewidth.StringWidth(s) <= maxLen {
		return s
	}

	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > maxLen-1 { // -1 for ellipsis
			return s[:i] + "…"
		}
		w += rw
	}

	return s
}
