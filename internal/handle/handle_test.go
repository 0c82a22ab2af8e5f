package handle

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/axkit/pkg/types"
)

func TestTable_InsertGetRemove(t *testing.T) {
	tab := NewTable[string](3)
	h := tab.Insert("a")
	require.False(t, h.IsNull())
	assert.Equal(t, Kind(3), h.Kind())

	v, err := tab.Get(h)
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	assert.True(t, tab.Valid(h))
	assert.Equal(t, 1, tab.Len())

	v, err = tab.Remove(h)
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	assert.Equal(t, 0, tab.Len())

	_, err = tab.Get(h)
	assert.ErrorIs(t, err, types.ErrReleased)
	_, err = tab.Remove(h)
	assert.ErrorIs(t, err, types.ErrReleased)
}

func TestTable_StaleHandleAfterReuse(t *testing.T) {
	tab := NewTable[int](1)
	old := tab.Insert(1)
	_, err := tab.Remove(old)
	require.NoError(t, err)

	fresh := tab.Insert(2)
	assert.NotEqual(t, old, fresh)
	assert.Equal(t, 1, tab.Cap(), "slot is reused")

	_, err = tab.Get(old)
	assert.ErrorIs(t, err, types.ErrReleased)
	v, err := tab.Get(fresh)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestTable_NullAndForeign(t *testing.T) {
	a := NewTable[int](1)
	b := NewTable[int](2)
	h := a.Insert(5)

	_, err := a.Get(0)
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
	_, err = b.Get(h)
	assert.ErrorIs(t, err, types.ErrTypeMismatch)
	_, err = a.Get(Handle(uint64(1)<<56 | 1<<32 | 99))
	assert.ErrorIs(t, err, types.ErrReleased)
}

func TestTable_NoGrowthUnderChurn(t *testing.T) {
	tab := NewTable[int](1)
	for i := 0; i < 10000; i++ {
		h := tab.Insert(i)
		_, err := tab.Remove(h)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, tab.Cap())
	assert.Equal(t, 0, tab.Len())
}

func TestTable_Drain(t *testing.T) {
	tab := NewTable[int](1)
	h1 := tab.Insert(1)
	tab.Insert(2)
	assert.ElementsMatch(t, []int{1, 2}, tab.Drain())
	assert.Equal(t, 0, tab.Len())
	assert.False(t, tab.Valid(h1))
}

func TestTable_Concurrent(t *testing.T) {
	tab := NewTable[int](1)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				h := tab.Insert(i)
				v, err := tab.Get(h)
				if err != nil || v != i {
					t.Errorf("get: %v %d", err, v)
					return
				}
				if _, err := tab.Remove(h); err != nil {
					t.Errorf("remove: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, tab.Len())
	assert.LessOrEqual(t, tab.Cap(), 8)
}
