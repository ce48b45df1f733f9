package dummy

import (
	"context"
	"math"
	"testing"

	"github.com/erraggy/commandable/cmderrors"
	"github.com/erraggy/commandable/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSet(t *testing.T) (*command.Set, *MemoryController) {
	t.Helper()
	ctrl := NewMemoryController()
	set, err := NewCommandSet(ctrl)
	require.NoError(t, err)
	return set, ctrl
}

func TestCommandSetOrder(t *testing.T) {
	set, _ := newSet(t)

	names := make([]string, 0, set.Len())
	for _, c := range set.Commands() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{
		"get_dummies",
		"get_dummy_by_id",
		"create_dummy",
		"update_dummy",
		"delete_dummy",
		"create_dummy_without_validation",
		"raise_commandset_error",
		"raise_exception",
		"ping_dummy",
	}, names)
}

func TestCommandSetLifecycle(t *testing.T) {
	set, ctrl := newSet(t)
	ctx := context.Background()

	result, err := set.Execute(ctx, "create_dummy", "c1", command.Parameters{
		"dummy": map[string]any{"id": "1", "key": "Key 1", "content": "Content 1", "flag": true},
	})
	require.NoError(t, err)
	assert.Equal(t, Dummy{ID: "1", Key: "Key 1", Content: "Content 1", Flag: true}, result)

	_, err = set.Execute(ctx, "create_dummy", "c1", command.Parameters{
		"dummy": map[string]any{"key": "Key 2", "content": "Content 2"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, ctrl.Len())

	result, err = set.Execute(ctx, "get_dummies", "c1", command.Parameters{
		"filter": map[string]any{"key": "Key 1"},
		"paging": map[string]any{"total": true},
	})
	require.NoError(t, err)
	page := result.(Page)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "1", page.Data[0].ID)
	require.NotNil(t, page.Total)
	assert.Equal(t, int64(1), *page.Total)

	result, err = set.Execute(ctx, "update_dummy", "c1", command.Parameters{
		"dummy": map[string]any{"id": "1", "key": "Key 1", "content": "Updated"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Updated", result.(*Dummy).Content)

	result, err = set.Execute(ctx, "get_dummy_by_id", "c1", command.Parameters{"dummy_id": "1"})
	require.NoError(t, err)
	assert.Equal(t, "Updated", result.(*Dummy).Content)

	result, err = set.Execute(ctx, "delete_dummy", "c1", command.Parameters{"dummy_id": "1"})
	require.NoError(t, err)
	assert.Equal(t, "1", result.(*Dummy).ID)

	result, err = set.Execute(ctx, "get_dummy_by_id", "c1", command.Parameters{"dummy_id": "1"})
	require.NoError(t, err)
	assert.Nil(t, result, "absent dummies are an untyped nil")
}

func TestCommandSetValidation(t *testing.T) {
	set, ctrl := newSet(t)

	tests := []struct {
		name    string
		command string
		args    command.Parameters
		path    string
	}{
		{"missing dummy", "create_dummy", nil, "dummy"},
		{"missing key", "create_dummy", command.Parameters{"dummy": map[string]any{"id": "1"}}, "dummy.key"},
		{"wrong flag", "update_dummy", command.Parameters{"dummy": map[string]any{"key": "k", "flag": "yes"}}, "dummy.flag"},
		{"missing id", "get_dummy_by_id", command.Parameters{}, "dummy_id"},
		{"bad paging", "get_dummies", command.Parameters{"paging": map[string]any{"skip": "1"}}, "paging.skip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := set.Execute(context.Background(), tt.command, "", tt.args)
			var vErr *cmderrors.ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Len(t, vErr.Violations, 1)
			assert.Equal(t, tt.path, vErr.Violations[0].Path)
		})
	}
	assert.Zero(t, ctrl.Len())
}

func TestCommandSetErrorCommands(t *testing.T) {
	set, _ := newSet(t)
	ctx := context.Background()

	result, err := set.Execute(ctx, "create_dummy_without_validation", "", command.Parameters{"anything": []any{1}})
	require.NoError(t, err)
	assert.Nil(t, result)

	_, err = set.Execute(ctx, "raise_commandset_error", "", command.Parameters{"dummy": map[string]any{"key": "k"}})
	assert.ErrorIs(t, err, ErrCommandSetFailure)

	_, err = set.Execute(ctx, "raise_commandset_error", "", nil)
	assert.ErrorIs(t, err, cmderrors.ErrValidation, "validation runs before the failing handler")

	_, err = set.Execute(ctx, "raise_exception", "", nil)
	assert.ErrorIs(t, err, ErrControllerFailure)

	result, err = set.Execute(ctx, "ping_dummy", "", nil)
	require.NoError(t, err)
	assert.Equal(t, true, result)
}

func TestGetDummiesExtremePaging(t *testing.T) {
	set, _ := newSet(t)
	ctx := context.Background()

	_, err := set.Execute(ctx, "create_dummy", "", command.Parameters{"dummy": map[string]any{"id": "1", "key": "k"}})
	require.NoError(t, err)

	tests := []struct {
		name   string
		paging map[string]any
		want   int
	}{
		{"max take", map[string]any{"skip": int64(0), "take": int64(math.MaxInt64)}, 1},
		{"skip one with max take", map[string]any{"skip": int64(1), "take": int64(math.MaxInt64)}, 0},
		{"near max floats", map[string]any{"skip": float64(1 << 62), "take": float64(1 << 62)}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result any
			require.NotPanics(t, func() {
				result, err = set.Execute(ctx, "get_dummies", "", command.Parameters{"paging": tt.paging})
			})
			require.NoError(t, err)
			page, ok := result.(Page)
			require.True(t, ok, "unexpected result %T", result)
			assert.Len(t, page.Data, tt.want)
		})
	}
}

func TestFromParameters(t *testing.T) {
	assert.Equal(t, Dummy{Key: "k"}, FromParameters(command.Parameters{"key": "k", "flag": "not bool"}))
	assert.Equal(t, Dummy{}, FromParameters(nil))
	assert.Equal(t, Paging{Skip: 0, Take: 5}, PagingFromParameters(command.Parameters{"skip": -3, "take": 5}))
}
