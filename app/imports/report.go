package imports

import "fmt"

// DefaultChunkSize bounds how many rows are read per pass.
const DefaultChunkSize = 50

// Report is what a finished import run hands back: totals plus the
// ordered list of row-level failures. Rows are numbered from 1 in sheet
// order, matching what the operator sees in their spreadsheet.
type Report struct {
	TotalRows int
	Imported  int
	Errors    []string
}

func (r *Report) fail(rowNum int, format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf("Row %d: %s", rowNum, fmt.Sprintf(format, args...)))
}

func (r *Report) Failed() int {
	return len(r.Errors)
}
