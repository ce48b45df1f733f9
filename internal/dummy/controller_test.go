package dummy

import (
	"context"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T, n int) *MemoryController {
	t.Helper()
	c := NewMemoryController()
	for i := range n {
		_, err := c.Create(context.Background(), "", Dummy{
			ID:  fmt.Sprintf("%d", i),
			Key: fmt.Sprintf("key-%d", i%3),
		})
		require.NoError(t, err)
	}
	return c
}

func TestMemoryControllerCreateAssignsID(t *testing.T) {
	c := NewMemoryController()
	d, err := c.Create(context.Background(), "", Dummy{Key: "k", Content: "c"})
	require.NoError(t, err)

	_, err = uuid.Parse(d.ID)
	assert.NoError(t, err, "generated ids are uuids")

	kept, err := c.Create(context.Background(), "", Dummy{ID: "fixed", Key: "k"})
	require.NoError(t, err)
	assert.Equal(t, "fixed", kept.ID)
	assert.Equal(t, 2, c.Len())
}

func TestMemoryControllerGetPageByFilter(t *testing.T) {
	c := seeded(t, 10)
	ctx := context.Background()

	tests := []struct {
		name    string
		filter  Filter
		paging  Paging
		wantIDs []string
		total   *int64
	}{
		{"all", Filter{}, Paging{}, []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}, nil},
		{"by key", Filter{Key: "key-1"}, Paging{}, []string{"1", "4", "7"}, nil},
		{"window", Filter{}, Paging{Skip: 2, Take: 3}, []string{"2", "3", "4"}, nil},
		{"skip past end", Filter{}, Paging{Skip: 50}, []string{}, nil},
		{"with total", Filter{Key: "key-0"}, Paging{Take: 2, Total: true}, []string{"0", "3"}, ptr(int64(4))},
		{"take at max int", Filter{}, Paging{Skip: 8, Take: math.MaxInt64}, []string{"8", "9"}, nil},
		{"skip and take at max int", Filter{}, Paging{Skip: math.MaxInt64, Take: math.MaxInt64}, []string{}, nil},
		{"negative window", Filter{}, Paging{Skip: -3, Take: -1}, []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := c.GetPageByFilter(ctx, "", tt.filter, tt.paging)
			require.NoError(t, err)

			ids := make([]string, 0, len(page.Data))
			for _, d := range page.Data {
				ids = append(ids, d.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.total, page.Total)
		})
	}
}

func TestMemoryControllerCRUD(t *testing.T) {
	c := seeded(t, 2)
	ctx := context.Background()

	got, err := c.GetOneByID(ctx, "", "1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "key-1", got.Key)

	missing, err := c.GetOneByID(ctx, "", "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	updated, err := c.Update(ctx, "", Dummy{ID: "1", Key: "new", Flag: true})
	require.NoError(t, err)
	require.NotNil(t, updated)
	got, _ = c.GetOneByID(ctx, "", "1")
	assert.Equal(t, Dummy{ID: "1", Key: "new", Flag: true}, *got)

	none, err := c.Update(ctx, "", Dummy{ID: "nope"})
	require.NoError(t, err)
	assert.Nil(t, none)

	deleted, err := c.DeleteByID(ctx, "", "0")
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, "0", deleted.ID)
	assert.Equal(t, 1, c.Len())

	deleted, err = c.DeleteByID(ctx, "", "0")
	require.NoError(t, err)
	assert.Nil(t, deleted)
}

func TestMemoryControllerFailures(t *testing.T) {
	c := NewMemoryController()
	assert.ErrorIs(t, c.RaiseException(context.Background(), ""), ErrControllerFailure)

	ok, err := c.Ping(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Create(ctx, "", Dummy{})
	assert.ErrorIs(t, err, context.Canceled)
	_, err = c.GetPageByFilter(ctx, "", Filter{}, Paging{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryControllerConcurrent(t *testing.T) {
	c := NewMemoryController()
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = c.Create(context.Background(), "", Dummy{Key: "k"})
		}()
		go func() {
			defer wg.Done()
			_, _ = c.GetPageByFilter(context.Background(), "", Filter{Key: "k"}, Paging{})
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, c.Len())
}

func ptr[T any](v T) *T { return &v }
