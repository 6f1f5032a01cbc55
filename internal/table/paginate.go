package table

// DefaultPageSize is used whenever a caller passes a non-positive page size.
const DefaultPageSize = 10

// MaxPageSize bounds the page size a view may ask for.
const MaxPageSize = 500

// Page is one window over a filtered and sorted sequence. Index is 0-based.
type Page[T any] struct {
	Items []T `json:"items"`
	Index int `json:"index"`
	Size  int `json:"size"`
	Count int `json:"count"`
	Total int `json:"total"`
}

// PageCount is ceil(n/size), never less than 1 so pagination controls stay put
// on an empty result.
func PageCount(n, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if n <= 0 {
		return 1
	}
	// (n-1)/size+1 rather than (n+size-1)/size, which overflows for huge sizes
	return (n-1)/size + 1
}

// ClampPage bounds index to [0, count-1].
func ClampPage(index, count int) int {
	if index < 0 {
		return 0
	}
	if index > count-1 {
		return count - 1
	}
	return index
}

func Paginate[T any](seq []T, index, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	count := PageCount(len(seq), size)
	index = ClampPage(index, count)
	start := index * size
	end := min(start+size, len(seq))
	items := []T{}
	if start < end {
		items = append(items, seq[start:end]...)
	}
	return Page[T]{Items: items, Index: index, Size: size, Count: count, Total: len(seq)}
}
