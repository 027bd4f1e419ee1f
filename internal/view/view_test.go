package view_test

import (
	"testing"

	"leavedesk/internal/upstream"
	"leavedesk/internal/view"

	"github.com/stretchr/testify/assert"
)

func sampleRequests() []upstream.LeaveRequest {
	return []upstream.LeaveRequest{
		{ID: 1, Type: "Annual", Status: "Pending", Approver: "Dev Mehta", Reason: "Family trip"},
		{ID: 2, Type: "Sick", Status: "Approved", Approver: "Dev Mehta", Reason: "Fever"},
		{ID: 3, Type: "Casual", Status: "Rejected", Approver: "Priya Nair", Reason: "Errand"},
		{ID: 4, Type: "Annual", Status: "Cancelled", Approver: "Priya Nair", Reason: "travel plans"},
	}
}

func keepByTerm(term string) func(upstream.LeaveRequest) bool {
	return func(r upstream.LeaveRequest) bool {
		return view.MatchesTerm(term, r.Type, r.Status, r.Approver, r.Reason)
	}
}

func TestMatchesTerm_CaseInsensitiveAcrossFields(t *testing.T) {
	got := view.Filter(sampleRequests(), keepByTerm("TRAVEL"))
	assert.Len(t, got, 1)
	assert.Equal(t, 4, got[0].ID)

	got = view.Filter(sampleRequests(), keepByTerm("dev"))
	assert.Len(t, got, 2)

	got = view.Filter(sampleRequests(), keepByTerm("pending"))
	assert.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}

func TestMatchesTerm_EmptyTermMatchesAll(t *testing.T) {
	got := view.Filter(sampleRequests(), keepByTerm(""))
	assert.Len(t, got, 4)

	got = view.Filter(sampleRequests(), keepByTerm("   "))
	assert.Len(t, got, 4)
}

func TestMatchesStatus_AllPassesThrough(t *testing.T) {
	assert.True(t, view.MatchesStatus("All", "Pending"))
	assert.True(t, view.MatchesStatus("", "Rejected"))
	assert.True(t, view.MatchesStatus("Pending", "Pending"))
	assert.False(t, view.MatchesStatus("Pending", "Approved"))
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, view.PageCount(0, 8))
	assert.Equal(t, 1, view.PageCount(8, 8))
	assert.Equal(t, 2, view.PageCount(9, 8))
	assert.Equal(t, 3, view.PageCount(17, 8))
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 0, view.ClampPage(-1, 3))
	assert.Equal(t, 2, view.ClampPage(7, 3))
	assert.Equal(t, 1, view.ClampPage(1, 3))
	assert.Equal(t, 0, view.ClampPage(5, 0))
}

func TestPage_FilterBeforeSlice(t *testing.T) {
	items := make([]int, 17)
	for i := range items {
		items[i] = i
	}

	first := view.Page(items, 0, 8)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, first)

	last := view.Page(items, 2, 8)
	assert.Equal(t, []int{16}, last)

	clamped := view.Page(items, 99, 8)
	assert.Equal(t, []int{16}, clamped)
}

func TestPager_SetTermResetsPage(t *testing.T) {
	p := view.NewPager(8)
	p.SetPage(2, 30)
	assert.Equal(t, 2, p.Page())

	p.SetTerm("annual")
	assert.Equal(t, 0, p.Page())
	assert.Equal(t, "annual", p.Term())
}

func TestPager_NextPrevSaturate(t *testing.T) {
	p := view.NewPager(8)

	p.Prev()
	assert.Equal(t, 0, p.Page())

	// 17 items -> 3 pages
	p.Next(17)
	p.Next(17)
	assert.Equal(t, 2, p.Page())
	p.Next(17)
	assert.Equal(t, 2, p.Page())

	p.Prev()
	assert.Equal(t, 1, p.Page())
}

func TestPager_DefaultSize(t *testing.T) {
	p := view.NewPager(0)
	assert.Equal(t, view.DefaultPageSize, p.Size())
}

func TestPager_ApplyResetsOnNewTerm(t *testing.T) {
	p := view.NewPager(8)

	got := p.Apply("", 2, 20)
	assert.Equal(t, 2, got)

	// The term changed, so the requested index is discarded.
	got = p.Apply("annual", 2, 20)
	assert.Equal(t, 0, got)

	got = p.Apply("annual", 1, 20)
	assert.Equal(t, 1, got)
}

func TestRegistry_PagersArePerSessionAndTable(t *testing.T) {
	reg := view.NewRegistry(8)

	reg.For("sid-1", "history").SetTerm("annual")
	assert.Equal(t, "annual", reg.For("sid-1", "history").Term())
	assert.Equal(t, "", reg.For("sid-1", "employees").Term())
	assert.Equal(t, "", reg.For("sid-2", "history").Term())

	reg.For("sid-2", "history").SetTerm("sick")

	reg.Drop("sid-1")
	assert.Equal(t, "", reg.For("sid-1", "history").Term())
	assert.Equal(t, "sick", reg.For("sid-2", "history").Term())
}
