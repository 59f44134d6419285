package reports

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCumulate(t *testing.T) {
	rows := Cumulate(map[int]int{0: 2, 3: 1, 12: 1})
	require.Equal(t, []CumulativeRow{
		{Months: 0, Count: 2, Cumulative: 2, Percent: 50},
		{Months: 3, Count: 1, Cumulative: 3, Percent: 75},
		{Months: 12, Count: 1, Cumulative: 4, Percent: 100},
	}, rows)
}

func TestRenderIntBuckets(t *testing.T) {
	var out strings.Builder
	RenderIntBuckets(&out, "Age", map[int]int{30: 3, 25: 1})

	rendered := out.String()
	require.Contains(t, rendered, "Age")
	require.Contains(t, rendered, "###")
	// sorted ascending by key
	require.Less(t, strings.Index(rendered, "25"), strings.Index(rendered, "30"))
}

func TestRenderTenure(t *testing.T) {
	var out strings.Builder
	RenderTenure(&out, map[int]int{1: 1, 2: 3})

	rendered := out.String()
	require.Contains(t, rendered, "Cumulative")
	require.Contains(t, rendered, "25.0")
	require.Contains(t, rendered, "100.0")
}
