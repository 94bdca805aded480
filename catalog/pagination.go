package catalog

// DefaultPageSize is the number of products per shop page.
const DefaultPageSize = 6

// TotalPages is ceil(count/size), never less than 1.
func TotalPages(count, size int) int {
	if size < 1 {
		size = DefaultPageSize
	}
	pages := (count + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage forces page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	return min(max(page, 1), totalPages)
}

// Paginate returns items[(page-1)*size : page*size], bounded by len(items).
func Paginate[T any](items []T, page, size int) []T {
	if size < 1 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := min(start+size, len(items))
	return items[start:end]
}
