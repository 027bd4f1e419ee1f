// Package view holds the derive phase of the page contract: filtering,
// sorting and pagination over already-fetched lists. The helpers are
// pure; the only state is the per-table Pager, handed out by Registry.
package view

import (
	"sort"
	"strings"
)

// DefaultPageSize matches the history table.
const DefaultPageSize = 8

const StatusAll = "All"

// MatchesTerm reports whether the term appears, case-insensitively, in
// at least one of the fields. An empty term matches everything.
func MatchesTerm(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// MatchesStatus applies the status dropdown; "All" (or no selection)
// passes everything through.
func MatchesStatus(filter, status string) bool {
	if filter == "" || filter == StatusAll {
		return true
	}
	return filter == status
}

func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func SortBy[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func PageCount(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// ClampPage keeps the index inside [0, pages-1]. An empty result set
// clamps to page 0.
func ClampPage(page, pages int) int {
	if pages <= 0 {
		return 0
	}
	if page < 0 {
		return 0
	}
	if page >= pages {
		return pages - 1
	}
	return page
}

// Page slices one page out of the filtered set. Filtering always
// happens before slicing: filter, count, then slice.
func Page[T any](items []T, page, size int) []T {
	page = ClampPage(page, PageCount(len(items), size))
	start := page * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Pager tracks the search term and page index for one table. Changing
// the term always resets to the first page; Next and Prev saturate at
// the bounds.
type Pager struct {
	size int
	page int
	term string
}

func NewPager(size int) Pager {
	if size <= 0 {
		size = DefaultPageSize
	}
	return Pager{size: size}
}

func (p *Pager) SetTerm(term string) {
	p.term = term
	p.page = 0
}

func (p *Pager) SetPage(page, total int) {
	p.page = ClampPage(page, PageCount(total, p.size))
}

func (p *Pager) Next(total int) {
	p.SetPage(p.page+1, total)
}

func (p *Pager) Prev() {
	if p.page > 0 {
		p.page--
	}
}

// Apply folds one request into the pager: a new term lands back on the
// first page regardless of the requested index, an unchanged term gets
// the requested page clamped against total. Returns the effective page.
func (p *Pager) Apply(term string, page, total int) int {
	if term != p.term {
		p.SetTerm(term)
	} else {
		p.SetPage(page, total)
	}
	return p.page
}

func (p *Pager) Term() string { return p.term }
func (p *Pager) Page() int    { return p.page }
func (p *Pager) Size() int    { return p.size }
