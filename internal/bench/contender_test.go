package bench_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/cyclic-queue/internal/bench"
)

func testFIFO(t *testing.T, f bench.FIFO[int], val int, name string) {
	t.Helper()

	// Empty FIFO returns false
	if _, ok := f.Pop(); ok {
		t.Errorf("%s: expected Pop() = false on empty FIFO", name)
	}

	// Push succeeds
	if !f.Push(val) {
		t.Errorf("%s: expected Push() = true", name)
	}
	if f.Len() != 1 {
		t.Errorf("%s: expected Len() = 1, got %d", name, f.Len())
	}

	// Pop returns pushed value
	got, ok := f.Pop()
	if !ok {
		t.Errorf("%s: expected Pop() = true after Push()", name)
	}
	if got != val {
		t.Errorf("%s: expected %v, got %v", name, val, got)
	}

	// FIFO is empty again
	if _, ok := f.Pop(); ok {
		t.Errorf("%s: expected Pop() = false after draining", name)
	}
}

func TestContenders_Contract(t *testing.T) {
	for _, c := range bench.Contenders() {
		t.Run(c.Name, func(t *testing.T) {
			f, err := c.New(8)
			require.NoError(t, err)
			testFIFO(t, f, 42, c.Name)
		})
	}
}

func TestContenders_FIFO(t *testing.T) {
	for _, c := range bench.Contenders() {
		t.Run(c.Name, func(t *testing.T) {
			f, err := c.New(64)
			require.NoError(t, err)

			for i := 0; i < 64; i++ {
				if !f.Push(i) {
					t.Fatalf("expected Push(%d) = true", i)
				}
			}

			for i := 0; i < 64; i++ {
				got, ok := f.Pop()
				if !ok {
					t.Fatalf("expected Pop() = true for item %d", i)
				}
				if got != i {
					t.Errorf("FIFO violation: expected %d, got %d", i, got)
				}
			}
		})
	}
}

func TestContenders_BoundedAtSize(t *testing.T) {
	// Contenders that reject at the exact requested size.
	exact := []string{"cyclic", "queue", "channel", "eapache", "list", "slice"}

	cs, err := bench.LookupContenders(exact)
	require.NoError(t, err)

	for _, c := range cs {
		t.Run(c.Name, func(t *testing.T) {
			f, err := c.New(3)
			require.NoError(t, err)
			for i := 0; i < 3; i++ {
				require.True(t, f.Push(i), "push %d", i)
			}
			require.False(t, f.Push(3), "expected Push() = false on full FIFO")
			require.Equal(t, 3, f.Len())
		})
	}
}

func TestContenders_OverwriteNeverFull(t *testing.T) {
	cs, err := bench.LookupContenders([]string{"cyclic-overwrite"})
	require.NoError(t, err)

	f, err := cs[0].New(2)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		require.True(t, f.Push(i))
	}
	require.Equal(t, 2, f.Len())

	got, ok := f.Pop()
	require.True(t, ok)
	require.Equal(t, 3, got)
}

func TestLookupContenders(t *testing.T) {
	all, err := bench.LookupContenders(nil)
	require.NoError(t, err)
	require.Len(t, all, len(bench.Contenders()))

	some, err := bench.LookupContenders([]string{"slice", "cyclic"})
	require.NoError(t, err)
	require.Equal(t, "slice", some[0].Name)
	require.Equal(t, "cyclic", some[1].Name)

	_, err = bench.LookupContenders([]string{"nope"})
	require.ErrorIs(t, err, bench.ErrUnknown)
}
