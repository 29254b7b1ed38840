package tui

import "github.com/charmbracelet/lipgloss"

func inputStyle(width int, busy bool) lipgloss.Style {
	border := lipgloss.Color("62")
	if busy {
		border = lipgloss.Color("240")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(clampWidth(width - 4))
}

func resultStyle(width int, isError bool) lipgloss.Style {
	fg := lipgloss.Color("252")
	border := lipgloss.Color("214")
	if isError {
		fg = lipgloss.Color("203")
		border = lipgloss.Color("203")
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(border).
		Padding(0, 1).
		MarginLeft(2).
		Width(clampWidth(width - 6))
}

func statsStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("141")).
		Bold(true).
		Padding(0, 2)
}

func advisoryStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Italic(true).
		Padding(0, 2)
}

func toastStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("62")).
		Padding(0, 1).
		MarginLeft(2)
}

func statusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(clampWidth(width))
}

func clampWidth(w int) int {
	if w < 20 {
		return 20
	}
	return w
}
