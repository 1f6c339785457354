package hadoop

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWordCountMapper(t *testing.T) {
	m := &WordCountMapper{}
	ctx := newContext(nil)

	err := m.Map(0, "the quick brown fox", ctx)
	require.NoError(t, err)
	require.Equal(t, []KeyValue{
		{"the", 1},
		{"quick", 1},
		{"brown", 1},
		{"fox", 1},
	}, ctx.pairs)
}

func TestWordCountMapper_NonStringValue(t *testing.T) {
	m := &WordCountMapper{}
	ctx := newContext(nil)

	err := m.Map(0, 42, ctx)
	require.Error(t, err)
	require.Empty(t, ctx.pairs)
}

func TestWordCountReducer(t *testing.T) {
	r := &WordCountReducer{}

	tests := []struct {
		name   string
		key    string
		values []any
		want   int
	}{
		{
			name:   "single value",
			key:    "fox",
			values: []any{1},
			want:   1,
		},
		{
			name:   "multiple values",
			key:    "the",
			values: []any{1, 1, 1},
			want:   3,
		},
		{
			name:   "no values",
			key:    "ghost",
			values: nil,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newContext(nil)
			err := r.Reduce(tt.key, newValueIterator(tt.values), ctx)
			require.NoError(t, err)
			require.Equal(t, []KeyValue{{tt.key, tt.want}}, ctx.pairs)
		})
	}
}

func TestWordCountReducer_NonIntValue(t *testing.T) {
	r := &WordCountReducer{}
	ctx := newContext(nil)

	err := r.Reduce("word", newValueIterator([]any{"1"}), ctx)
	require.Error(t, err)
}
