package searcher

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStores(t *testing.T) {
	stores := map[string]func() Store{
		"map":  func() Store { return NewMapStore() },
		"sync": func() Store { return NewSyncStore(4) },
	}
	for name, newStore := range stores {
		t.Run(name+" store only accepts strictly deeper analyses", func(t *testing.T) {
			s := newStore()
			shallow := Analysis{Value: Value{Unknown, 1}, Moves: moves(c(0, 0)), Depth: 1}
			deep := Analysis{Value: Value{Tie, 3}, Moves: moves(c(0, 1)), Depth: 3}

			require.True(t, s.Store("k", shallow))
			require.True(t, s.Store("k", deep))
			require.False(t, s.Store("k", shallow), "Shallower analysis should not replace a deeper one")
			require.False(t, s.Store("k", Analysis{Value: Value{Win, 0}, Depth: 3}), "Equal depth should keep the first analysis")

			got, ok := s.Load("k")
			require.True(t, ok)
			require.Equal(t, deep, got)
			require.Equal(t, 1, s.Len())

			_, ok = s.Load("missing")
			require.False(t, ok)
		})

		t.Run(name+" store ranges over every entry", func(t *testing.T) {
			s := newStore()
			for i := 0; i < 20; i++ {
				s.Store(fmt.Sprint(i), Analysis{Depth: i})
			}

			seen := map[string]int{}
			s.Range(func(key string, a Analysis) bool {
				seen[key] = a.Depth
				return true
			})
			require.Len(t, seen, 20)
			require.Equal(t, 7, seen["7"])

			visits := 0
			s.Range(func(string, Analysis) bool {
				visits++
				return false
			})
			require.Equal(t, 1, visits, "Range should stop when fn returns false")
		})
	}

	t.Run("sync store under concurrent writers keeps the deepest analysis", func(t *testing.T) {
		s := NewSyncStore(8)
		var wg sync.WaitGroup
		for depth := 0; depth < 32; depth++ {
			wg.Add(1)
			depth := depth // per-iteration copy; go directive is below 1.22
			go func() {
				defer wg.Done()
				for k := 0; k < 50; k++ {
					s.Store(fmt.Sprint(k), Analysis{Depth: depth})
				}
			}()
		}
		wg.Wait()

		require.Equal(t, 50, s.Len())
		for k := 0; k < 50; k++ {
			a, ok := s.Load(fmt.Sprint(k))
			require.True(t, ok)
			require.Equal(t, 31, a.Depth)
		}
	})
}
