package cyclic_test

import (
	"container/list"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/cyclic-queue/internal/cyclic"
)

func TestOf_ReadsBackInOrder(t *testing.T) {
	values := []string{"x", "y", "z", "w"}
	r := cyclic.Of(values...)

	require.Equal(t, len(values), r.Cap())
	require.True(t, r.IsFull())
	for i, want := range values {
		got, err := r.Get(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	require.ErrorIs(t, r.PushBack("v"), cyclic.ErrFull)

	o := cyclic.OverwriteOf(values...)
	assert.Equal(t, values, o.Slice())
}

func TestOf_FullAtEverySize(t *testing.T) {
	for n := 1; n <= 32; n++ {
		values := make([]int, n)
		for i := range values {
			values[i] = i * 3
		}
		var r *cyclic.Ring[int]
		require.NotPanics(t, func() { r = cyclic.Of(values...) }, "n=%d", n)
		if r.Len() != n || r.Cap() != n {
			t.Errorf("Of(%d values): Len() = %d, Cap() = %d", n, r.Len(), r.Cap())
		}
		assert.Equal(t, values, r.Slice())
	}
}

func TestOf_EmptyPanics(t *testing.T) {
	assert.Panics(t, func() { cyclic.Of[int]() })
}

func TestFromSlice(t *testing.T) {
	testCases := []struct {
		name     string
		capacity int
		src      []int
		wantErr  bool
	}{
		{"empty", 3, nil, false},
		{"below capacity", 3, []int{1, 2}, false},
		{"exact capacity", 3, []int{1, 2, 3}, false},
		{"over capacity", 3, []int{1, 2, 3, 4}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := cyclic.FromSlice(tc.capacity, tc.src)
			if tc.wantErr {
				require.ErrorIs(t, err, cyclic.ErrCapacityMismatch)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.capacity, r.Cap())
			assert.Equal(t, len(tc.src), r.Len())
			if len(tc.src) > 0 {
				assert.Equal(t, tc.src, r.Slice())
			}
		})
	}
}

func TestFromSlice_DoesNotAliasSource(t *testing.T) {
	src := []int{1, 2, 3}
	r, err := cyclic.FromSlice(4, src)
	require.NoError(t, err)

	src[0] = 100
	front, _ := r.Front()
	assert.Equal(t, 1, front)
}

func TestOverwriteFromSlice_KeepsMostRecent(t *testing.T) {
	src := []int{1, 2, 3, 4, 5, 6, 7}

	r := cyclic.OverwriteFromSlice(3, src)
	assert.Equal(t, []int{5, 6, 7}, r.Slice())

	short := cyclic.OverwriteFromSlice(10, src[:2])
	assert.Equal(t, []int{1, 2}, short.Slice())
	assert.Equal(t, 10, short.Cap())
}

func TestOverwriteFromSlice_EvictHookSeesDisplaced(t *testing.T) {
	var dropped []int
	r := cyclic.OverwriteFromSlice(2, []int{1, 2, 3, 4}, cyclic.WithEvictHook(func(v int) {
		dropped = append(dropped, v)
	}))

	assert.Equal(t, []int{1, 2}, dropped)
	assert.Equal(t, []int{3, 4}, r.Slice())
}

func newList(values ...any) *list.List {
	l := list.New()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

func TestFromList(t *testing.T) {
	r, err := cyclic.FromList[int](4, newList(7, 8, 9))
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8, 9}, r.Slice())

	_, err = cyclic.FromList[int](2, newList(7, 8, 9))
	require.ErrorIs(t, err, cyclic.ErrCapacityMismatch)

	_, err = cyclic.FromList[int](4, newList(7, "eight", 9))
	require.ErrorIs(t, err, cyclic.ErrElementType)

	empty, err := cyclic.FromList[int](2, nil)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestOverwriteFromList(t *testing.T) {
	r, err := cyclic.OverwriteFromList[int](2, newList(7, 8, 9))
	require.NoError(t, err)
	assert.Equal(t, []int{8, 9}, r.Slice())

	_, err = cyclic.OverwriteFromList[int](2, newList(7, 8.5))
	require.ErrorIs(t, err, cyclic.ErrElementType)
}

func TestFromSeq_StopsAtCapacity(t *testing.T) {
	yielded := 0
	seq := func(yield func(int) bool) {
		for i := 0; i < 100; i++ {
			yielded++
			if !yield(i) {
				return
			}
		}
	}

	r, err := cyclic.FromSeq(3, seq)
	require.ErrorIs(t, err, cyclic.ErrCapacityMismatch)
	assert.Nil(t, r)
	assert.Equal(t, 4, yielded, "source should not be drained past the first rejected element")

	o := cyclic.OverwriteFromSeq(3, seq)
	assert.Equal(t, []int{97, 98, 99}, o.Slice())
}

func TestFromSeq_BelowCapacity(t *testing.T) {
	r, err := cyclic.FromSeq(5, slices.Values([]string{"a", "b"}))
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 5, r.Cap())
}

func TestPolicyFlip_RoundTrip(t *testing.T) {
	r := cyclic.New[int](4)
	for i := 0; i < 4; i++ {
		require.NoError(t, r.PushBack(i))
	}
	r.RemoveFront()
	r.RemoveFront()
	require.NoError(t, r.PushBack(4))
	want := r.Slice()

	o := r.Overwrite()
	assert.Equal(t, want, o.Slice())
	assert.Equal(t, r.Cap(), o.Cap())

	back := o.Reject()
	assert.Equal(t, want, back.Slice())
	assert.Equal(t, r.Cap(), back.Cap())

	// Flips copy; mutating one side leaves the other alone.
	o.PushBack(5)
	o.PushBack(6)
	assert.Equal(t, want, r.Slice())
	assert.Equal(t, want, back.Slice())
	assert.Equal(t, []int{3, 4, 5, 6}, o.Slice())
}

func TestPolicyFlip_FullRingKeepsSemantics(t *testing.T) {
	o := cyclic.NewOverwrite[int](2)
	o.PushBack(1)
	o.PushBack(2)
	o.PushBack(3)

	r := o.Reject()
	require.ErrorIs(t, r.PushBack(4), cyclic.ErrFull)
	assert.Equal(t, []int{2, 3}, r.Slice())

	var evicted []int
	again := r.Overwrite(cyclic.WithEvictHook(func(v int) { evicted = append(evicted, v) }))
	again.PushBack(4)
	assert.Equal(t, []int{2}, evicted)
	assert.Equal(t, []int{3, 4}, again.Slice())
}
