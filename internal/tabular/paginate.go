package tabular

// Paginate slices items into fixed-size pages and returns the requested
// page plus the total page count. totalPages is at least 1 even for an
// empty input. The page number is clamped into [1, totalPages]; keeping
// the page valid across filter changes is the view orchestrator's job,
// the clamp here only guards direct callers.
func Paginate[T any](items []T, pageSize, page int) ([]T, int) {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil, totalPages
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}
