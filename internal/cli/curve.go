package cli

import (
	"fmt"
	"strings"

	"degen-prop/internal/models"
)

const (
	defaultCurveWidth  = 60
	defaultCurveHeight = 12
)

// RenderEquityCurve renders a balance history as a text plot. Each column is
// one sample of the history scaled to the plot width; the y axis spans the
// observed min/max balance.
func RenderEquityCurve(o *Output, history []models.PnLPoint, width, height int) {
	if len(history) == 0 {
		o.Dim("No history to plot.")
		return
	}
	if width <= 0 {
		width = defaultCurveWidth
	}
	if height <= 0 {
		height = defaultCurveHeight
	}
	if width > len(history) {
		width = len(history)
	}

	minBal, maxBal := history[0].Balance, history[0].Balance
	for _, p := range history {
		if p.Balance < minBal {
			minBal = p.Balance
		}
		if p.Balance > maxBal {
			maxBal = p.Balance
		}
	}
	span := maxBal - minBal
	if span == 0 {
		span = 1 // flat curve renders on a single row
	}

	// Sample one balance per column and map it to a row.
	rows := make([]int, width)
	for col := 0; col < width; col++ {
		idx := col * (len(history) - 1) / max(width-1, 1)
		level := (history[idx].Balance - minBal) / span
		row := int(level * float64(height-1))
		rows[col] = height - 1 - row
	}

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
	}
	for col, row := range rows {
		grid[row][col] = '•'
		// Join vertical gaps between adjacent columns so the line reads
		// as continuous.
		if col > 0 {
			from, to := rows[col-1], row
			if from > to {
				from, to = to, from
			}
			for r := from + 1; r < to; r++ {
				if grid[r][col] == ' ' {
					grid[r][col] = '│'
				}
			}
		}
	}

	labelTop := FormatUSD(maxBal)
	labelBottom := FormatUSD(minBal)
	labelWidth := max(len(labelTop), len(labelBottom))

	for r, line := range grid {
		label := strings.Repeat(" ", labelWidth)
		switch r {
		case 0:
			label = fmt.Sprintf("%*s", labelWidth, labelTop)
		case height - 1:
			label = fmt.Sprintf("%*s", labelWidth, labelBottom)
		}
		o.Printf("%s │ %s\n", o.ColoredString(ColorDim, label), o.Cyan(string(line)))
	}
	o.Printf("%s └%s\n", strings.Repeat(" ", labelWidth), strings.Repeat("─", width+1))
	o.Printf("%s   Day 0%sDay %d\n",
		strings.Repeat(" ", labelWidth),
		strings.Repeat(" ", max(width-11-lenDigits(history[len(history)-1].Day), 1)),
		history[len(history)-1].Day)
}

func lenDigits(n int) int {
	return len(fmt.Sprintf("%d", n))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
