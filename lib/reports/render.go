package reports

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

const barMarker = "#"

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

// RenderIntBuckets prints a sorted histogram table with a bar of
// markers proportional to each count.
func RenderIntBuckets(w io.Writer, keyHeader string, buckets map[int]int) {
	keys := sortedIntKeys(buckets)

	t := newTable(w)
	t.AppendHeader(table.Row{keyHeader, "Count", ""})
	for _, k := range keys {
		count := buckets[k]
		t.AppendRow(table.Row{k, count, strings.Repeat(barMarker, count)})
	}
	t.Render()
}

// RenderStringBuckets is RenderIntBuckets for string-keyed buckets.
func RenderStringBuckets(w io.Writer, keyHeader string, buckets map[string]int) {
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := newTable(w)
	t.AppendHeader(table.Row{keyHeader, "Count", ""})
	for _, k := range keys {
		count := buckets[k]
		t.AppendRow(table.Row{k, count, strings.Repeat(barMarker, count)})
	}
	t.Render()
}

// CumulativeRow is one row of the tenure table: members at exactly
// Months of tenure, plus the running total and its share of all
// members counted so far.
type CumulativeRow struct {
	Months     int     `json:"months"`
	Count      int     `json:"count"`
	Cumulative int     `json:"cumulative"`
	Percent    float64 `json:"percent"`
}

// Cumulate walks the buckets in ascending key order accumulating a
// running total and percentage. The total is assumed to be positive.
func Cumulate(buckets map[int]int) []CumulativeRow {
	keys := sortedIntKeys(buckets)

	total := 0
	for _, count := range buckets {
		total += count
	}

	rows := make([]CumulativeRow, 0, len(keys))
	cumulative := 0
	for _, k := range keys {
		cumulative += buckets[k]
		rows = append(rows, CumulativeRow{
			Months:     k,
			Count:      buckets[k],
			Cumulative: cumulative,
			Percent:    float64(cumulative) / float64(total) * 100,
		})
	}
	return rows
}

// RenderTenure prints the tenure histogram with running cumulative
// count and percentage columns.
func RenderTenure(w io.Writer, buckets map[int]int) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Months", "Count", "Cumulative", "%", ""})
	for _, row := range Cumulate(buckets) {
		t.AppendRow(table.Row{
			row.Months,
			row.Count,
			row.Cumulative,
			fmt.Sprintf("%.1f", row.Percent),
			strings.Repeat(barMarker, row.Count),
		})
	}
	t.Render()
}

func sortedIntKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
