package loader

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type outcome struct {
	value []int
	err   error
}

func TestLatestCommitsOnlyNewestFetch(t *testing.T) {
	var committed [][]int
	l := New[[]int](context.Background(), "students", OnCommit(func(v []int) { committed = append(committed, v) }))

	started := make(chan context.Context, 1)
	release := make(chan struct{})
	first := make(chan outcome, 1)
	go func() {
		v, err := l.Load(func(ctx context.Context) ([]int, error) {
			started <- ctx
			<-release
			return []int{1}, nil
		})
		first <- outcome{v, err}
	}()

	oldCtx := <-started

	v, err := l.Load(func(context.Context) ([]int, error) { return []int{2}, nil })
	require.NoError(t, err)
	assert.Equal(t, []int{2}, v)

	select {
	case <-oldCtx.Done():
	case <-time.After(time.Second):
		t.Fatal("superseded fetch context was not cancelled")
	}

	close(release)
	res := <-first
	assert.ErrorIs(t, res.err, ErrSuperseded)
	assert.Nil(t, res.value)

	got, ok := l.Value()
	assert.True(t, ok)
	assert.Equal(t, []int{2}, got)
	assert.Equal(t, [][]int{{2}}, committed)
}

func TestLatestCloseBlocksCommit(t *testing.T) {
	l := New[string](context.Background(), "leads")

	started := make(chan context.Context, 1)
	release := make(chan struct{})
	done := make(chan outcome, 1)
	go func() {
		_, err := l.Load(func(ctx context.Context) (string, error) {
			started <- ctx
			<-release
			return "late", nil
		})
		done <- outcome{err: err}
	}()

	ctx := <-started
	l.Close()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)

	close(release)
	res := <-done
	assert.ErrorIs(t, res.err, ErrClosed)

	_, ok := l.Value()
	assert.False(t, ok)

	_, err := l.Load(func(context.Context) (string, error) { return "again", nil })
	assert.ErrorIs(t, err, ErrClosed)
	l.Close()
}

func TestLatestRecordsErrors(t *testing.T) {
	l := New[int](context.Background(), "classes")
	boom := errors.New("boom")

	_, err := l.Load(func(context.Context) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, l.Err(), boom)

	v, err := l.Load(func(context.Context) (int, error) { return 5, nil })
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.NoError(t, l.Err())
}

func TestLatestParentCancellation(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	l := New[int](parent, "reports")
	cancel()

	_, err := l.Load(func(ctx context.Context) (int, error) { return 0, ctx.Err() })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLatestConcurrentLoads(t *testing.T) {
	l := New[int](context.Background(), "trials")

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _ = l.Load(func(context.Context) (int, error) { return n, nil })
		}(i)
	}
	wg.Wait()

	v, err := l.Load(func(context.Context) (int, error) { return 99, nil })
	require.NoError(t, err)
	assert.Equal(t, 99, v)
	got, ok := l.Value()
	assert.True(t, ok)
	assert.Equal(t, 99, got)
}
