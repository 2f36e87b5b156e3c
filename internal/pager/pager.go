// Package pager computes page-number controls and client-side page slices.
package pager

// DefaultBudget is the number of contiguous page buttons shown around the
// active page.
const DefaultBudget = 7

// Control describes one slot of a pagination bar.
type Control struct {
	Page     int
	Active   bool
	Ellipsis bool
}

// Controls returns the pagination bar for page out of total pages. A budget of
// zero or less shows every page. When pinEdges is set, the first and last
// pages are always present, separated from the window by an ellipsis when
// pages are skipped. A total of one page or fewer yields no controls.
func Controls(page, total, budget int, pinEdges bool) []Control {
	if total <= 1 {
		return nil
	}
	cur := clamp(page, 1, total)
	start, end := window(cur, total, budget)

	controls := make([]Control, 0, end-start+5)
	if pinEdges && start > 1 {
		controls = append(controls, Control{Page: 1, Active: cur == 1})
		if start > 2 {
			controls = append(controls, Control{Ellipsis: true})
		}
	}
	for p := start; p <= end; p++ {
		controls = append(controls, Control{Page: p, Active: p == cur})
	}
	if pinEdges && end < total {
		if end < total-1 {
			controls = append(controls, Control{Ellipsis: true})
		}
		controls = append(controls, Control{Page: total, Active: cur == total})
	}
	return controls
}

// Pages returns only the numbered pages of a control sequence, in order.
func Pages(controls []Control) []int {
	pages := make([]int, 0, len(controls))
	for _, c := range controls {
		if c.Ellipsis {
			continue
		}
		pages = append(pages, c.Page)
	}
	return pages
}

func window(cur, total, budget int) (int, int) {
	if budget <= 0 || budget >= total {
		return 1, total
	}
	start := max(1, cur-budget/2)
	end := min(total, start+budget-1)
	start = max(1, end-budget+1)
	return start, end
}

// Paginate splits n items into pages of limit items. It returns the half-open
// index range [start,end) of the requested page, the total page count (never
// below one) and the page after clamping into range.
func Paginate(n, page, limit int) (start, end, totalPages, current int) {
	if limit <= 0 {
		limit = max(n, 1)
	}
	totalPages = max(1, (n+limit-1)/limit)
	current = clamp(page, 1, totalPages)
	start = min(n, (current-1)*limit)
	end = min(n, start+limit)
	return start, end, totalPages, current
}

// Slice returns the items on the requested page together with the total page
// count and the clamped page number.
func Slice[T any](items []T, page, limit int) ([]T, int, int) {
	start, end, total, current := Paginate(len(items), page, limit)
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out, total, current
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
