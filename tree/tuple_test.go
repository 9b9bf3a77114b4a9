package tree

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

func TestFromTuple(t *testing.T) {
	tests := []struct {
		name string
		desc any
		want *Node[int]
	}{
		{
			name: "untyped nil",
			desc: nil,
			want: nil,
		},
		{
			name: "nil slice",
			desc: []any(nil),
			want: nil,
		},
		{
			name: "nil pointer",
			desc: (*Triple)(nil),
			want: nil,
		},
		{
			name: "leaf",
			desc: []any{1, nil, nil},
			want: Leaf(1),
		},
		{
			name: "array",
			desc: [3]any{1, nil, nil},
			want: Leaf(1),
		},
		{
			name: "left only",
			desc: []any{2, []any{1, nil, nil}, nil},
			want: New(2, Leaf(1), nil),
		},
		{
			name: "right only",
			desc: []any{1, nil, []any{2, nil, nil}},
			want: New(1, nil, Leaf(2)),
		},
		{
			name: "height=2",
			desc: []any{4,
				[]any{2, []any{1, nil, nil}, []any{3, nil, nil}},
				[]any{6, []any{5, nil, nil}, []any{7, nil, nil}},
			},
			want: newCompleteTree_2Tall(),
		},
		{
			name: "triple",
			desc: Triple{Key: 2, Left: &Triple{Key: 1}, Right: []any{3, nil, nil}},
			want: New(2, Leaf(1), Leaf(3)),
		},
		{
			name: "pointer to slice",
			desc: &[]any{1, nil, nil},
			want: Leaf(1),
		},
		{
			name: "whole float key",
			desc: []any{3.0, nil, nil},
			want: Leaf(3),
		},
		{
			name: "small int key",
			desc: []any{int8(3), nil, nil},
			want: Leaf(3),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromTuple[int](tt.desc)
			require.NoError(t, err)
			assert.True(t, Equal(tt.want, got), "want:\n%v\ngot:\n%v", tt.want, got)
			assert.Equal(t, tt.want.Size(), got.Size())
		})
	}
}

func TestFromTuple_Error(t *testing.T) {
	tests := []struct {
		name    string
		desc    any
		wantErr string
	}{
		{
			name:    "two elements",
			desc:    []any{1, 2},
			wantErr: "malformed tree description: root: want 3 elements, got 2",
		},
		{
			name:    "four elements",
			desc:    []any{1, nil, nil, nil},
			wantErr: "malformed tree description: root: want 3 elements, got 4",
		},
		{
			name:    "empty sequence",
			desc:    []any{},
			wantErr: "malformed tree description: root: want 3 elements, got 0",
		},
		{
			name:    "deep wrong arity",
			desc:    []any{1, []any{2, nil, []any{3}}, nil},
			wantErr: "malformed tree description: root.L.R: want 3 elements, got 1",
		},
		{
			name:    "child not a sequence",
			desc:    []any{1, 2, nil},
			wantErr: "malformed tree description: root.L: int is not a sequence",
		},
		{
			name:    "string is not a sequence",
			desc:    "abc",
			wantErr: "malformed tree description: root: string is not a sequence",
		},
		{
			name:    "wrong key type",
			desc:    []any{"a", nil, nil},
			wantErr: "malformed tree description: root: key a (string) is not a int",
		},
		{
			name:    "fractional key",
			desc:    []any{1.5, nil, nil},
			wantErr: "malformed tree description: root: key 1.5 (float64) is not a int",
		},
		{
			name:    "nil key",
			desc:    []any{nil, nil, nil},
			wantErr: "malformed tree description: root: nil key for int",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromTuple[int](tt.desc)
			assert.ErrorIs(t, err, ErrStructure)
			assert.EqualError(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}

func TestFromTuple_SignError(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (any, error)
		wantErr string
	}{
		{
			name: "negative int to uint",
			build: func() (any, error) {
				return FromTuple[uint]([]any{-1, nil, nil})
			},
			wantErr: "malformed tree description: root: key -1 (int) is not a uint",
		},
		{
			name: "negative int64 to uint64",
			build: func() (any, error) {
				return FromTuple[uint64]([]any{int64(-5), nil, nil})
			},
			wantErr: "malformed tree description: root: key -5 (int64) is not a uint64",
		},
		{
			name: "large uint64 to int64",
			build: func() (any, error) {
				return FromTuple[int64]([]any{uint64(1 << 63), nil, nil})
			},
			wantErr: "malformed tree description: root: key 9223372036854775808 (uint64) is not a int64",
		},
		{
			name: "negative float to uint8",
			build: func() (any, error) {
				return FromTuple[uint8]([]any{-2.0, nil, nil})
			},
			wantErr: "malformed tree description: root: key -2 (float64) is not a uint8",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.build()
			assert.ErrorIs(t, err, ErrStructure)
			assert.EqualError(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}

func checkNumericKey[T constraints.Integer | constraints.Float](t *testing.T, key any, want T) {
	t.Helper()
	got, err := FromTuple[T]([]any{key, nil, nil})
	require.NoError(t, err)
	assert.Equal(t, want, got.Key)
}

func TestFromTuple_NumericKey(t *testing.T) {
	checkNumericKey[uint](t, 3, 3)
	checkNumericKey[uint64](t, 3.0, 3)
	checkNumericKey[int64](t, uint64(1<<63-1), 1<<63-1)
	checkNumericKey[int8](t, -128, -128)
	checkNumericKey[float32](t, -1.5, -1.5)
	checkNumericKey[float64](t, int64(-7), -7)
}

func TestFromTuple_AnyKey(t *testing.T) {
	got, err := FromTuple[any]([]any{nil, []any{"x", nil, nil}, nil})
	require.NoError(t, err)

	assert.Nil(t, got.Key)
	assert.Equal(t, "x", got.Left.Key)
	assert.Nil(t, got.Right)
}

func TestFromTuple_Leaf(t *testing.T) {
	for _, k := range []string{"", "a", "hello world"} {
		got, err := FromTuple[string]([]any{k, nil, nil})
		require.NoError(t, err)
		assert.True(t, Equal(Leaf(k), got))
	}
}

func TestFromTuple_JSON(t *testing.T) {
	var desc any
	data := []byte(`[4, [2, [1, null, null], [3, null, null]], [6, [5, null, null], [7, null, null]]]`)
	require.NoError(t, json.Unmarshal(data, &desc))

	// json numbers are float64, which are converted
	got, err := FromTuple[int](desc)
	require.NoError(t, err)
	assert.True(t, Equal(newCompleteTree_2Tall(), got))

	gotf, err := FromTuple[float64](desc)
	require.NoError(t, err)
	assert.Equal(t, 4.0, gotf.Key)
	assert.Equal(t, 7, gotf.Size())
}

// buildRandomTuple returns a random description with num nodes
// keyed [0, num) in pre-order.
func buildRandomTuple(rd *rand.Rand, num int) any {
	next := 0
	var build func(n int) any
	build = func(n int) any {
		if n == 0 {
			return nil
		}
		k := next
		next++
		left := rd.Intn(n)
		return []any{k, build(left), build(n - 1 - left)}
	}
	return build(num)
}

func TestToTuple_RoundTrip(t *testing.T) {
	seedrd := rand.New(rand.NewSource(0x123456789abcdef0))
	const rounds = 100
	const size = 100

	for i := 0; i < rounds; i++ {
		rd := rand.New(rand.NewSource(int64(seedrd.Uint64())))
		desc := buildRandomTuple(rd, size)

		t.Run(fmt.Sprintf("round=%d", i), func(t *testing.T) {
			tr, err := FromTuple[int](desc)
			require.NoError(t, err)
			assert.Equal(t, size, tr.Size())

			// deterministic
			tr2, err := FromTuple[int](desc)
			require.NoError(t, err)
			assert.True(t, Equal(tr, tr2))
			assert.Equal(t, tr.String(), tr2.String())

			assert.Equal(t, desc, ToTuple(tr))

			tr3, err := FromTuple[int](ToTuple(tr))
			require.NoError(t, err)
			assert.True(t, Equal(tr, tr3), "different tree was recreated")
		})
	}
}

func TestToTuple(t *testing.T) {
	assert.Nil(t, ToTuple[int](nil))
	assert.Equal(t, []any{1, nil, nil}, ToTuple(Leaf(1)))
	assert.Equal(t,
		[]any{2, []any{1, nil, nil}, nil},
		ToTuple(New(2, Leaf(1), nil)))
}

var trForBench *Node[int]

func BenchmarkFromTuple(b *testing.B) {
	seedrd := rand.New(rand.NewSource(0x123456789abcdef0))
	sizes := []int{10, 100, 10000}

	for _, size := range sizes {
		desc := buildRandomTuple(rand.New(rand.NewSource(int64(seedrd.Uint64()))), size)

		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				trForBench, _ = FromTuple[int](desc)
			}
		})
	}
}
