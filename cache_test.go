package folio

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eringen/folio/content"
)

func newTestCache(src content.Source, ttl time.Duration) *ContentCache {
	return NewContentCache(src, NewMemoryStore(), ttl, time.Second, NewMetrics(prometheus.NewRegistry()), zap.NewNop())
}

func TestMemoryStoreExpires(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewMemoryStore()
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))
	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), v)

	now = now.Add(time.Minute)
	_, ok, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestContentCacheServesHits(t *testing.T) {
	src := &fakeSource{posts: samplePosts()}
	c := newTestCache(src, time.Minute)
	ctx := context.Background()

	first, err := c.Posts(ctx, content.PostQuery{Limit: 3})
	require.NoError(t, err)
	second, err := c.Posts(ctx, content.PostQuery{Limit: 3})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), src.calls.Load())

	// A different query is a different entry.
	_, err = c.Posts(ctx, content.PostQuery{Limit: 3, Locale: "ru"})
	require.NoError(t, err)
	assert.Equal(t, int32(2), src.calls.Load())
}

func TestContentCacheZeroTTLDisablesStorage(t *testing.T) {
	src := &fakeSource{posts: samplePosts()}
	c := newTestCache(src, 0)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := c.Posts(ctx, content.PostQuery{})
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), src.calls.Load())
}

func TestContentCacheNeverStoresErrors(t *testing.T) {
	src := &fakeSource{posts: samplePosts(), err: errors.New("unavailable")}
	c := newTestCache(src, time.Minute)
	ctx := context.Background()

	_, err := c.Post(ctx, "designing-with-motion")
	require.Error(t, err)

	src.setErr(nil)
	post, err := c.Post(ctx, "designing-with-motion")
	require.NoError(t, err)
	assert.Equal(t, "Designing with motion", post.Title)

	_, err = c.Post(ctx, "missing")
	assert.ErrorIs(t, err, content.ErrNotFound)
	_, err = c.Post(ctx, "missing")
	assert.ErrorIs(t, err, content.ErrNotFound)
	assert.Equal(t, int32(4), src.calls.Load())
}

// blockingSource holds every fetch until release is closed.
type blockingSource struct {
	calls   atomic.Int32
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newBlockingSource() *blockingSource {
	return &blockingSource{entered: make(chan struct{}), release: make(chan struct{})}
}

func (b *blockingSource) Posts(ctx context.Context, _ content.PostQuery) ([]content.Post, error) {
	b.calls.Add(1)
	b.once.Do(func() { close(b.entered) })
	select {
	case <-b.release:
		return samplePosts(), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (b *blockingSource) Post(ctx context.Context, slug string) (content.Post, error) {
	return content.Post{}, content.ErrNotFound
}

func TestContentCacheCollapsesConcurrentMisses(t *testing.T) {
	src := newBlockingSource()
	c := newTestCache(src, time.Minute)

	const callers = 8
	var wg sync.WaitGroup
	results := make([][]content.Post, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.Posts(context.Background(), content.PostQuery{})
		}(i)
	}

	<-src.entered
	time.Sleep(50 * time.Millisecond)
	close(src.release)
	wg.Wait()

	assert.Equal(t, int32(1), src.calls.Load())
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Len(t, results[i], 2)
	}
}

func TestContentCacheCallerCancelDoesNotFailOthers(t *testing.T) {
	src := newBlockingSource()
	c := newTestCache(src, time.Minute)

	leaving, leave := context.WithCancel(context.Background())
	leftErr := make(chan error, 1)
	go func() {
		_, err := c.Posts(leaving, content.PostQuery{})
		leftErr <- err
	}()
	<-src.entered

	stayed := make(chan error, 1)
	go func() {
		_, err := c.Posts(context.Background(), content.PostQuery{})
		stayed <- err
	}()
	time.Sleep(50 * time.Millisecond)

	leave()
	assert.ErrorIs(t, <-leftErr, context.Canceled)

	close(src.release)
	assert.NoError(t, <-stayed)
	assert.Equal(t, int32(1), src.calls.Load())
}

func TestNewRedisStoreRejectsBadURL(t *testing.T) {
	_, err := NewRedisStore("not a url")
	assert.Error(t, err)

	s, err := NewRedisStore("redis://localhost:6379/0")
	require.NoError(t, err)
	assert.NoError(t, s.Close())
}
