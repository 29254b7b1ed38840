package tui

import (
	"fmt"
	"strings"
)

const advisoryText = "This model is slower. Summaries may take up to a minute."

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(inputStyle(m.width, m.snap.Busy).Render(m.renderInput()))
	b.WriteString("\n")

	if m.snap.Advisory {
		b.WriteString(advisoryStyle().Render(advisoryText))
		b.WriteString("\n")
	}

	if m.snap.Text != "" {
		b.WriteString(resultStyle(m.width, m.snap.IsError).Render(sanitize(m.snap.Text)))
		b.WriteString("\n")
	}

	if stats := m.snap.Stats; stats != nil {
		b.WriteString(statsStyle().Render(fmt.Sprintf("Original: %s words  Summary: %s words  Compression: %s",
			stats.OriginalWords, stats.SummaryWords, stats.Ratio)))
		b.WriteString("\n")
	}

	if m.snap.Toast != "" {
		b.WriteString(toastStyle().Render(m.snap.Toast))
		b.WriteString("\n")
	}

	b.WriteString(statusStyle(m.width).Render(m.renderStatus()))
	return b.String()
}

func (m *Model) renderInput() string {
	if len(m.input) == 0 {
		return "Paste or type text to summarize. Enter submits, Alt+Enter adds a line."
	}
	return sanitize(string(m.input))
}

func (m *Model) renderStatus() string {
	status := m.status
	if m.snap.Busy {
		status = "Summarizing" + strings.Repeat(".", m.dots)
	}
	return fmt.Sprintf("%s | model: %s | length: %s | backend: %s | tab model  ctrl+l length  ctrl+y copy  ctrl+c quit",
		status, m.model, m.length, m.health)
}
