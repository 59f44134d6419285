package directory

import "fmt"

// Print layout constants. Row height is driven by the photo height,
// which is what caps rows per printed page.
const (
	// spreadsheet rows that fit on one piece of portrait paper
	RowsPerPage = 11
	// columns of people displayed across a page
	ColsPerPage = 3
	// spreadsheet columns per person: photo and name
	ColsPerPerson = 2
)

// GridSize returns the spreadsheet dimensions for a member count.
// Full pages take RowsPerPage rows each; a partial final page takes
// one row per leftover person up to a full page's allotment.
func GridSize(numMembers int) (rows, cols int) {
	cols = ColsPerPage*ColsPerPerson + (ColsPerPage - 1)

	fullPages := numMembers / (ColsPerPage * RowsPerPage)
	rows = fullPages * RowsPerPage

	left := numMembers - rows*ColsPerPage
	if left <= RowsPerPage {
		rows += left
	} else {
		rows += RowsPerPage
	}
	return rows, cols
}

// CellValues lays the members into the grid. Within each printed page
// people run down a person-column and then across; every person gets
// an image-formula cell with their name beside it.
func CellValues(members []person) [][]any {
	rows, cols := GridSize(len(members))

	data := make([][]any, rows)
	for x := range data {
		data[x] = make([]any, cols)
		for y := range data[x] {
			data[x][y] = ""
		}
	}

	perPage := RowsPerPage * ColsPerPage
	xOff := 0
	for start := 0; start < len(members); start += perPage {
		end := start + perPage
		if end > len(members) {
			end = len(members)
		}
		for i, m := range members[start:end] {
			x := xOff + i%RowsPerPage
			y := (i / RowsPerPage) * (ColsPerPerson + 1)
			data[x][y] = fmt.Sprintf("=image(%q)", m.PhotoURL)
			data[x][y+1] = m.Name
		}
		xOff += RowsPerPage
	}
	return data
}

// ValueRange returns the A1 range covering the populated grid.
func ValueRange(numMembers int) string {
	rows, cols := GridSize(numMembers)
	return fmt.Sprintf("A1:%c%d", rune('A'+cols-1), rows)
}
