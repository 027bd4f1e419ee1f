package view

import (
	"strings"
	"sync"
)

// Registry hands out one Pager per session and table, so the search
// term survives between requests and a term change is visible as a
// change. Dropped together with the session.
type Registry struct {
	mu     sync.Mutex
	size   int
	pagers map[string]*Pager
}

func NewRegistry(size int) *Registry {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Registry{size: size, pagers: map[string]*Pager{}}
}

func (r *Registry) For(sid, table string) *Pager {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := sid + "/" + table
	p, ok := r.pagers[key]
	if !ok {
		fresh := NewPager(r.size)
		p = &fresh
		r.pagers[key] = p
	}
	return p
}

// Drop removes every pager the session accumulated.
func (r *Registry) Drop(sid string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.pagers {
		if strings.HasPrefix(key, sid+"/") {
			delete(r.pagers, key)
		}
	}
}
