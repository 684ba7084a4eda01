// Package table renders committed mention history with bubble-table.
package table

import (
	"github.com/charmbracelet/lipgloss"
	bbtable "github.com/evertras/bubble-table/table"

	"github.com/nhath/mentions/internal/config"
	"github.com/nhath/mentions/internal/history"
	"github.com/nhath/mentions/internal/ui/icons"
)

// Column keys
const (
	ColWhen    = "When"
	ColMention = "Mention"
	ColSource  = "Source"
	ColID      = "ID"
)

const maxColumnWidth = 40

var (
	headerColor = lipgloss.Color("#8FBCBB")
	textColor   = lipgloss.Color("#D8DEE9")
	faintColor  = lipgloss.Color("#4C566A")
	recordColor = lipgloss.Color("#A3BE8C")
)

// Init applies the theme colors to tables created afterwards
func Init(theme config.Theme) {
	headerColor = lipgloss.Color(theme.Highlight)
	textColor = lipgloss.Color(theme.TextPrimary)
	faintColor = lipgloss.Color(theme.TextFaint)
	recordColor = lipgloss.Color(theme.Success)
}

// New creates a new bubble-table with the themed base styles (no background)
func New(cols []bbtable.Column) bbtable.Model {
	return bbtable.New(cols).
		WithBaseStyle(lipgloss.NewStyle().
			Foreground(textColor).
			Align(lipgloss.Left)).
		HeaderStyle(lipgloss.NewStyle().
			Foreground(headerColor).
			Bold(true)).
		BorderRounded()
}

// FromHistory builds a table of committed mentions, newest first as given.
func FromHistory(entries []history.Entry) bbtable.Model {
	headers := []string{ColWhen, ColMention, ColSource, ColID}

	rowsData := make([][]string, 0, len(entries))
	for _, e := range entries {
		rowsData = append(rowsData, []string{
			e.MentionedAt.Local().Format("2006-01-02 15:04"),
			e.Trigger + e.DisplayPreview(maxColumnWidth-3),
			icons.GetSourceIcon(e.Source) + " " + e.Source,
			e.EntityID,
		})
	}

	widths := calculateColumnWidths(headers, rowsData)
	cols := make([]bbtable.Column, 0, len(headers))
	for _, h := range headers {
		cols = append(cols, bbtable.NewColumn(h, h, min(widths[h], maxColumnWidth)))
	}

	rows := make([]bbtable.Row, 0, len(rowsData))
	for i, rd := range rowsData {
		mentionStyle := lipgloss.NewStyle().Foreground(textColor)
		if entries[i].IsRecord {
			mentionStyle = lipgloss.NewStyle().Foreground(recordColor).Bold(true)
		}
		rows = append(rows, bbtable.NewRow(bbtable.RowData{
			ColWhen:    bbtable.NewStyledCell(rd[0], lipgloss.NewStyle().Foreground(faintColor)),
			ColMention: bbtable.NewStyledCell(rd[1], mentionStyle),
			ColSource:  rd[2],
			ColID:      bbtable.NewStyledCell(rd[3], lipgloss.NewStyle().Foreground(faintColor)),
		}))
	}

	return New(cols).WithRows(rows).WithNoPagination()
}

func calculateColumnWidths(headers []string, rows [][]string) map[string]int {
	widths := make(map[string]int)
	for _, h := range headers {
		widths[h] = lipgloss.Width(h)
	}

	for _, row := range rows {
		for i, val := range row {
			if i < len(headers) {
				if w := lipgloss.Width(val); w > widths[headers[i]] {
					widths[headers[i]] = w
				}
			}
		}
	}

	// Add padding
	for h := range widths {
		widths[h] += 2
	}

	return widths
}
