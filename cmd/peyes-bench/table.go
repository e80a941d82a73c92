package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/haimasree/pEYES/internal/rank"
)

// renderRanking lays out the labeler ranking with go-pretty. Numeric columns
// are right-aligned and scores print with four decimals.
func renderRanking(entries []rank.Entry) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Rank", "Labeler", "Mean F1", "Trials"})
	for _, e := range entries {
		tw.AppendRow(table.Row{
			e.Rank,
			e.Labeler,
			strconv.FormatFloat(e.Score, 'f', 4, 64),
			e.Trials,
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
