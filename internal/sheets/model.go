package sheets

import "time"

// Table is the raw tabular result of one worksheet fetch: the header row
// plus every data row, untyped. It is immutable once returned by the client;
// all derived views (parsed records, filtered subsets, grouped sums) are
// computed fresh from it.
//
// Table is JSON-serializable so the same shape can pass through the Redis
// cache tier and the snapshot store unchanged.
type Table struct {
	SheetURL  string     `json:"sheetUrl"`
	Worksheet string     `json:"worksheet"`
	Headers   []string   `json:"headers"`
	Rows      [][]string `json:"rows"`
	FetchedAt time.Time  `json:"fetchedAt"`
}
