package pager

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestControls_DegenerateTotals(t *testing.T) {
	for _, total := range []int{-1, 0, 1} {
		if got := Controls(1, total, DefaultBudget, true); len(got) != 0 {
			t.Fatalf("Controls(1, %d) = %v, want empty", total, got)
		}
	}
}

func TestControls_Window(t *testing.T) {
	cases := []struct {
		name   string
		page   int
		total  int
		budget int
		want   []int
	}{
		{"start", 1, 20, 7, []int{1, 2, 3, 4, 5, 6, 7}},
		{"middle", 10, 20, 7, []int{7, 8, 9, 10, 11, 12, 13}},
		{"end", 20, 20, 7, []int{14, 15, 16, 17, 18, 19, 20}},
		{"fewer pages than budget", 2, 3, 7, []int{1, 2, 3}},
		{"unbounded", 4, 5, 0, []int{1, 2, 3, 4, 5}},
		{"page above total is clamped", 99, 9, 7, []int{3, 4, 5, 6, 7, 8, 9}},
		{"page below one is clamped", -3, 9, 7, []int{1, 2, 3, 4, 5, 6, 7}},
		{"even budget", 5, 10, 4, []int{3, 4, 5, 6}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Pages(Controls(tc.page, tc.total, tc.budget, false))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Controls(%d, %d, %d) pages mismatch (-want +got):\n%s", tc.page, tc.total, tc.budget, diff)
			}
		})
	}
}

func TestControls_PinnedEdges(t *testing.T) {
	got := Controls(10, 20, 7, true)
	want := []Control{
		{Page: 1},
		{Ellipsis: true},
		{Page: 7}, {Page: 8}, {Page: 9}, {Page: 10, Active: true}, {Page: 11}, {Page: 12}, {Page: 13},
		{Ellipsis: true},
		{Page: 20},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("pinned controls mismatch (-want +got):\n%s", diff)
	}

	// Window starting at page 2 pins page 1 without an ellipsis.
	got = Controls(5, 20, 7, true)
	if got[0].Page != 1 || got[1].Ellipsis || got[1].Page != 2 {
		t.Fatalf("pinned controls near start = %v, want 1 followed directly by 2", got)
	}
}

func TestControls_PropertiesHoldForAllInputs(t *testing.T) {
	for total := 2; total <= 30; total++ {
		for page := 1; page <= total; page++ {
			for _, budget := range []int{0, 1, 3, 7, 10} {
				controls := Controls(page, total, budget, false)
				pages := Pages(controls)
				if len(pages) == 0 {
					t.Fatalf("Controls(%d, %d, %d) empty", page, total, budget)
				}
				if pages[0] < 1 || pages[len(pages)-1] > total {
					t.Fatalf("Controls(%d, %d, %d) = %v out of [1,%d]", page, total, budget, pages, total)
				}
				contains := false
				for i, p := range pages {
					if i > 0 && p != pages[i-1]+1 {
						t.Fatalf("Controls(%d, %d, %d) = %v not contiguous", page, total, budget, pages)
					}
					if p == page {
						contains = true
						if !controls[i].Active {
							t.Fatalf("page %d not marked active", page)
						}
					}
				}
				if !contains {
					t.Fatalf("Controls(%d, %d, %d) = %v does not contain current page", page, total, budget, pages)
				}
				if budget > 0 && len(pages) > budget {
					t.Fatalf("Controls(%d, %d, %d) = %v exceeds budget", page, total, budget, pages)
				}
				if diff := cmp.Diff(controls, Controls(page, total, budget, false)); diff != "" {
					t.Fatalf("Controls not idempotent:\n%s", diff)
				}
			}
		}
	}
}

func TestSlice_FavoritesPaging(t *testing.T) {
	ids := []string{"a", "b", "c"}

	page1, total, current := Slice(ids, 1, 2)
	if diff := cmp.Diff([]string{"a", "b"}, page1); diff != "" || total != 2 || current != 1 {
		t.Fatalf("page 1 = %v total=%d current=%d", page1, total, current)
	}

	page2, total, current := Slice(ids, 2, 2)
	if diff := cmp.Diff([]string{"c"}, page2); diff != "" || total != 2 || current != 2 {
		t.Fatalf("page 2 = %v total=%d current=%d", page2, total, current)
	}

	clamped, _, current := Slice(ids, 9, 2)
	if diff := cmp.Diff([]string{"c"}, clamped); diff != "" || current != 2 {
		t.Fatalf("clamped page = %v current=%d, want [c] current=2", clamped, current)
	}
}

func TestPaginate_EmptyHasOnePage(t *testing.T) {
	start, end, total, current := Paginate(0, 3, 10)
	if start != 0 || end != 0 || total != 1 || current != 1 {
		t.Fatalf("Paginate(0) = %d,%d,%d,%d want 0,0,1,1", start, end, total, current)
	}
}
