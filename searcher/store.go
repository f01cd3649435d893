package searcher

import (
	"sync"

	"github.com/OneOfOne/xxhash"
)

// Store is the cache of analyses keyed by canonical board key. Store keeps the
// existing entry unless the new one is strictly deeper, and reports whether
// it wrote.
type Store interface {
	Load(key string) (Analysis, bool)
	Store(key string, a Analysis) bool
	Len() int
	Range(fn func(key string, a Analysis) bool)
}

func supersedes(a Analysis, existing Analysis, ok bool) bool {
	return !ok || a.Depth > existing.Depth
}

// MapStore is an unsynchronized Store for single goroutine use.
type MapStore map[string]Analysis

func NewMapStore() MapStore {
	return MapStore{}
}

func (m MapStore) Load(key string) (Analysis, bool) {
	a, ok := m[key]
	return a, ok
}

func (m MapStore) Store(key string, a Analysis) bool {
	existing, ok := m[key]
	if !supersedes(a, existing, ok) {
		return false
	}
	m[key] = a
	return true
}

func (m MapStore) Len() int {
	return len(m)
}

func (m MapStore) Range(fn func(key string, a Analysis) bool) {
	for k, a := range m {
		if !fn(k, a) {
			return
		}
	}
}

type shard struct {
	sync.RWMutex
	entries map[string]Analysis
}

// SyncStore spreads keys over independently locked shards.
type SyncStore struct {
	shards []shard
}

func NewSyncStore(shards int) *SyncStore {
	if shards < 1 {
		shards = 1
	}
	s := &SyncStore{shards: make([]shard, shards)}
	for i := range s.shards {
		s.shards[i].entries = map[string]Analysis{}
	}
	return s
}

func (s *SyncStore) shard(key string) *shard {
	return &s.shards[xxhash.Checksum64([]byte(key))%uint64(len(s.shards))]
}

func (s *SyncStore) Load(key string) (Analysis, bool) {
	sh := s.shard(key)
	sh.RLock()
	defer sh.RUnlock()
	a, ok := sh.entries[key]
	return a, ok
}

func (s *SyncStore) Store(key string, a Analysis) bool {
	sh := s.shard(key)
	sh.Lock()
	defer sh.Unlock()
	existing, ok := sh.entries[key]
	if !supersedes(a, existing, ok) {
		return false
	}
	sh.entries[key] = a
	return true
}

func (s *SyncStore) Len() int {
	n := 0
	for i := range s.shards {
		s.shards[i].RLock()
		n += len(s.shards[i].entries)
		s.shards[i].RUnlock()
	}
	return n
}

// Range visits a copy of each shard so fn may call back into the store.
func (s *SyncStore) Range(fn func(key string, a Analysis) bool) {
	for i := range s.shards {
		sh := &s.shards[i]
		sh.RLock()
		entries := make(map[string]Analysis, len(sh.entries))
		for k, a := range sh.entries {
			entries[k] = a
		}
		sh.RUnlock()
		for k, a := range entries {
			if !fn(k, a) {
				return
			}
		}
	}
}
