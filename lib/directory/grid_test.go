package directory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"lcrassist/lib/scrapers/lcr"
)

func TestGridSize(t *testing.T) {
	cases := []struct {
		members int
		rows    int
		cols    int
	}{
		{0, 0, 8},
		{1, 1, 8},
		{11, 11, 8},   // one full person-column
		{33, 11, 8},   // exactly one page
		{34, 12, 8},   // spills onto a second page
		{66, 22, 8},   // two full pages
		{100, 34, 8},
	}
	for _, c := range cases {
		rows, cols := GridSize(c.members)
		require.Equal(t, c.rows, rows, "rows for %d members", c.members)
		require.Equal(t, c.cols, cols, "cols for %d members", c.members)
	}
}

func TestCellValuesLayout(t *testing.T) {
	members := make([]lcr.VisualPerson, 34)
	for i := range members {
		members[i] = lcr.VisualPerson{
			Name:     fmt.Sprintf("person %d", i),
			PhotoURL: fmt.Sprintf("https://example.com/%d.jpg", i),
		}
	}

	data := CellValues(members)
	require.Len(t, data, 12)
	for _, row := range data {
		require.Len(t, row, 8)
	}

	// first person sits at the top left of the first page
	require.Equal(t, `=image("https://example.com/0.jpg")`, data[0][0])
	require.Equal(t, "person 0", data[0][1])

	// person 11 starts the second person-column, after a spacer
	require.Equal(t, "person 11", data[0][4])

	// person 22 starts the third person-column
	require.Equal(t, "person 22", data[0][7])

	// person 33 wraps onto the next page, back at the left edge
	require.Equal(t, `=image("https://example.com/33.jpg")`, data[11][0])
	require.Equal(t, "person 33", data[11][1])

	// spacer columns stay empty
	require.Equal(t, "", data[0][2])
	require.Equal(t, "", data[0][5])
}

func TestValueRange(t *testing.T) {
	require.Equal(t, "A1:H12", ValueRange(34))
	require.Equal(t, "A1:H11", ValueRange(33))
	require.Equal(t, "A1:H1", ValueRange(1))
}
