package contract

// Pagination carries page-based listing parameters.
type Pagination struct {
	Page     int
	PageSize int
}
