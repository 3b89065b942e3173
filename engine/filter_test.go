package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sliceflow/internal/sentinel"
	"github.com/hupe1980/sliceflow/schedule"
)

func isEven(n, _ int, _ []int) (bool, error) { return n%2 == 0, nil }

func TestFilter_KeepsEvens(t *testing.T) {
	kept, err := Filter(context.Background(), schedule.Immediate{}, []int{1, 2, 3, 4, 5}, isEven)
	assert.NoError(t, err)
	assert.Equal(t, []int{2, 4}, kept)
}

func TestFilter_MatchesSynchronousFilter(t *testing.T) {
	items := make([]int, 200)
	for i := range items {
		items[i] = i * 3
	}

	pred := func(n, _ int, _ []int) (bool, error) { return n%7 < 3, nil }

	want := make([]int, 0, len(items))
	for _, n := range items {
		if keep, _ := pred(n, 0, nil); keep {
			want = append(want, n)
		}
	}

	// Real concurrency: completion order is up to the runtime.
	kept, err := Filter(context.Background(), schedule.Goroutine{}, items, pred)
	assert.NoError(t, err)
	assert.Equal(t, want, kept)
}

func TestFilter_OrderPreservedUnderReversedCompletion(t *testing.T) {
	m := &schedule.Manual{}
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}

	type result struct {
		kept []int
		err  error
	}
	resCh := make(chan result, 1)
	go func() {
		kept, err := Filter(context.Background(), m, items, isEven)
		resCh <- result{kept: kept, err: err}
	}()

	require.Eventually(t, func() bool { return m.Len() == len(items) }, time.Second, time.Millisecond)

	// Complete the tasks newest-first; the join must still aggregate in
	// input order.
	m.FlushReverse()

	res := <-resCh
	assert.NoError(t, res.err)
	assert.Equal(t, []int{2, 4, 6, 8}, res.kept)
}

func TestFilter_FailFast(t *testing.T) {
	boom := errors.New("boom")

	pred := func(n, _ int, _ []int) (bool, error) {
		if n == 3 {
			return false, boom
		}
		return true, nil
	}

	kept, err := Filter(context.Background(), schedule.Immediate{}, []int{1, 2, 3, 4}, pred)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, kept, "no partial result on failure")
}

func TestFilter_AllTasksStillRunAfterFailure(t *testing.T) {
	m := &schedule.Manual{}
	items := []int{1, 2, 3, 4}

	ran := make(chan int, len(items))
	pred := func(n, _ int, _ []int) (bool, error) {
		ran <- n
		if n == 1 {
			return false, errors.New("first task fails")
		}
		return true, nil
	}

	errCh := make(chan error, 1)
	go func() {
		_, err := Filter(context.Background(), m, items, pred)
		errCh <- err
	}()

	require.Eventually(t, func() bool { return m.Len() == len(items) }, time.Second, time.Millisecond)

	// Dispatched tasks are never cancelled; every one runs even though the
	// join rejects on the very first completion.
	assert.Equal(t, len(items), m.Flush())
	assert.Error(t, <-errCh)
	assert.Len(t, ran, len(items))
}

func TestFilter_PanicBecomesError(t *testing.T) {
	pred := func(n, _ int, _ []int) (bool, error) {
		if n == 2 {
			panic("predicate exploded")
		}
		return true, nil
	}

	_, err := Filter(context.Background(), schedule.Immediate{}, []int{1, 2, 3}, pred)
	assert.ErrorIs(t, err, ErrElementPanic)
	assert.Contains(t, err.Error(), "predicate exploded")
}

func TestFilter_EmptyInput(t *testing.T) {
	kept, err := Filter(context.Background(), schedule.Immediate{}, []string{}, func(string, int, []string) (bool, error) {
		t.Fatal("predicate must not run for empty input")
		return false, nil
	})
	assert.NoError(t, err)
	assert.Empty(t, kept)
}

func TestFilter_NilSchedulerAndContextDefaults(t *testing.T) {
	kept, err := Filter(nil, nil, []int{1, 2, 3, 4}, isEven)
	assert.NoError(t, err)
	assert.Equal(t, []int{2, 4}, kept)
}

func TestFilter_SentinelLookalikesAreKept(t *testing.T) {
	// Values that resemble the drop marker structurally must survive a
	// keep-all filter; only the one true marker identity is ever dropped.
	items := []any{
		fmt.Sprintf("%v", sentinel.Value()),
		&sentinel.Marker{},
		nil,
		"sentinel",
	}

	kept, err := Filter(context.Background(), schedule.Immediate{}, items, func(any, int, []any) (bool, error) {
		return true, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, items, kept)
}

func TestFilter_InputNotMutated(t *testing.T) {
	items := []int{5, 6, 7, 8}
	original := append([]int(nil), items...)

	_, err := Filter(context.Background(), schedule.Goroutine{}, items, isEven)
	assert.NoError(t, err)
	assert.Equal(t, original, items)
}

func TestFilter_ContextCancelledAbandonsJoin(t *testing.T) {
	m := &schedule.Manual{} // never flushed: tasks stay pending

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Filter(ctx, m, []int{1, 2, 3}, isEven)
	assert.ErrorIs(t, err, context.Canceled)
}
