// Package printer renders command output tables. When colours are enabled
// it uses lipgloss/table with the CLI theme, otherwise it falls back to a
// plain pterm table for non-TTY environments.
package printer

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/pterm/pterm"

	"github.com/nbaosullivan/lagoon/internal/style"
)

// Table writes rows under headers to out.
func Table(out io.Writer, headers []string, rows [][]string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(out, "No results found.")
		return err
	}
	if style.Enabled {
		return renderStyled(out, headers, rows)
	}
	return renderPlain(out, headers, rows)
}

// Details writes an ordered two-column label/value table to out. Row order
// is preserved exactly as given.
func Details(out io.Writer, rows [][2]string) error {
	flat := make([][]string, len(rows))
	for i, r := range rows {
		flat[i] = []string{r[0], r[1]}
	}
	if style.Enabled {
		return renderStyled(out, nil, flat)
	}
	return renderPlain(out, nil, flat)
}

func renderStyled(out io.Writer, headers []string, rows [][]string) error {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(style.Teal).
		Padding(0, 1)
	cellStyle := lipgloss.NewStyle().
		Foreground(style.White).
		Padding(0, 1)

	t := lgtable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(style.Subtle)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	if len(headers) > 0 {
		t = t.Headers(headers...)
	}
	for _, r := range rows {
		t = t.Row(r...)
	}

	_, err := fmt.Fprintln(out, t.Render())
	return err
}

func renderPlain(out io.Writer, headers []string, rows [][]string) error {
	var data pterm.TableData
	if len(headers) > 0 {
		data = append(data, headers)
	}
	for _, r := range rows {
		data = append(data, r)
	}

	tp := pterm.DefaultTable.WithData(data)
	if len(headers) > 0 {
		tp = tp.WithHasHeader()
	}
	rendered, err := tp.Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, rendered)
	return err
}
