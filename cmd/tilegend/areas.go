package main

import (
	"sync"

	"github.com/kdudkov/tilegen/pkg/pyramid"
)

type Area struct {
	Key  string
	Name string
	Gen  *pyramid.Generator
}

func NewAreas() *Areas {
	return &Areas{
		data: sync.Map{},
	}
}

type Areas struct {
	data sync.Map
}

func (h *Areas) Get(key string) (*Area, bool) {
	if v, ok := h.data.Load(key); ok {
		if a, ok1 := v.(*Area); ok1 {
			return a, true
		}
	}

	return nil, false
}

func (h *Areas) Add(a *Area) {
	if a == nil {
		return
	}

	h.data.Store(a.Key, a)
}

func (h *Areas) Remove(key string) {
	h.data.Delete(key)
}

func (h *Areas) All(f func(a *Area) bool) {
	h.data.Range(func(_, value any) bool {
		if a, ok := value.(*Area); ok {
			return f(a)
		}

		return true
	})
}
