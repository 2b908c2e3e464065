package arr_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/hasbyte1/go-underbar/arr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─── Each / Reduce / Fold ─────────────────────────────────────────────────────

func TestEachVisitsInIndexOrder(t *testing.T) {
	var seen []int
	var idx []int
	arr.Each([]int{10, 20, 30}, func(n, i int) {
		seen = append(seen, n)
		idx = append(idx, i)
	})
	assert.Equal(t, []int{10, 20, 30}, seen)
	assert.Equal(t, []int{0, 1, 2}, idx)
}

func TestReduceSingleElementSkipsReducer(t *testing.T) {
	calls := 0
	got, err := arr.Reduce([]int{5}, func(acc, n int) int {
		calls++
		return acc + n*n
	})
	require.NoError(t, err)
	assert.Equal(t, 5, got)
	assert.Zero(t, calls)
}

func TestReduceSeedsWithFirstElement(t *testing.T) {
	var pairs [][2]int
	got, err := arr.Reduce([]int{1, 2, 3}, func(acc, n int) int {
		pairs = append(pairs, [2]int{acc, n})
		return acc + n
	})
	require.NoError(t, err)
	assert.Equal(t, 6, got)
	assert.Equal(t, [][2]int{{1, 2}, {3, 3}}, pairs)
}

func TestReduceEmpty(t *testing.T) {
	_, err := arr.Reduce([]int{}, func(acc, n int) int { return acc + n })
	assert.ErrorIs(t, err, arr.ErrEmptyCollection)
}

func TestFoldNestsCallsFromSeed(t *testing.T) {
	got := arr.Fold([]string{"a", "b", "c"}, func(acc, s string) string {
		return "f(" + acc + "," + s + ")"
	}, "s")
	assert.Equal(t, "f(f(f(s,a),b),c)", got)
}

func TestFoldEmptyReturnsSeed(t *testing.T) {
	assert.Equal(t, 7, arr.Fold([]int{}, func(acc, n int) int { return acc + n }, 7))
}

// ─── First / Last ─────────────────────────────────────────────────────────────

func TestFirstAndLast(t *testing.T) {
	v, ok := arr.First([]int{10, 20, 30})
	assert.True(t, ok)
	assert.Equal(t, 10, v)

	v, ok = arr.Last([]int{10, 20, 30})
	assert.True(t, ok)
	assert.Equal(t, 30, v)

	_, ok = arr.First([]int{})
	assert.False(t, ok)
	_, ok = arr.Last([]int{})
	assert.False(t, ok)
}

func TestFirstN(t *testing.T) {
	assert.Equal(t, []int{1, 2}, arr.FirstN([]int{1, 2, 3}, 2))
	assert.Equal(t, []int{1, 2, 3}, arr.FirstN([]int{1, 2, 3}, 10))
	assert.Empty(t, arr.FirstN([]int{1, 2, 3}, 0))
	assert.Empty(t, arr.FirstN([]int{1, 2, 3}, -1))
}

func TestLastN(t *testing.T) {
	assert.Equal(t, []int{2, 3}, arr.LastN([]int{1, 2, 3}, 2))
	assert.Equal(t, []int{1, 2, 3}, arr.LastN([]int{1, 2, 3}, 5))
	assert.Empty(t, arr.LastN([]int{1, 2, 3}, 0))
}

func TestFirstNCopies(t *testing.T) {
	items := []int{1, 2, 3}
	got := arr.FirstN(items, 2)
	got[0] = 99
	assert.Equal(t, 1, items[0])
}

// ─── IndexOf / Contains ───────────────────────────────────────────────────────

func TestIndexOf(t *testing.T) {
	assert.Equal(t, 1, arr.IndexOf([]int{10, 20, 30}, 20))
	assert.Equal(t, 1, arr.IndexOf([]int{10, 20, 20}, 20), "first match wins")
	assert.Equal(t, -1, arr.IndexOf([]int{10, 20}, 99))
	assert.Equal(t, -1, arr.IndexOf([]int{}, 1))
}

func TestContains(t *testing.T) {
	assert.True(t, arr.Contains([]int{1, 2, 3}, 2))
	assert.False(t, arr.Contains([]int{1, 2, 3}, 4))
	assert.False(t, arr.Contains([]string{}, "a"))
}

// ─── Every / Some ─────────────────────────────────────────────────────────────

func TestEvery(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	assert.True(t, arr.Every([]int{2, 4, 6}, even))
	assert.False(t, arr.Every([]int{2, 3, 6}, even))
	assert.True(t, arr.Every([]int{}, even))
}

func TestEveryDefaultPredicate(t *testing.T) {
	assert.True(t, arr.Every([]bool{true, true}))
	assert.False(t, arr.Every([]bool{true, false}))
	assert.False(t, arr.Every([]any{true, 1}), "only the boolean true passes")
}

type enabled bool

func TestDefaultPredicateNamedBool(t *testing.T) {
	assert.True(t, arr.Every([]enabled{true, true}))
	assert.False(t, arr.Every([]enabled{true, false}))
	assert.True(t, arr.Some([]any{enabled(true)}))
	assert.False(t, arr.Some([]enabled{false}))
}

func TestSome(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	assert.True(t, arr.Some([]int{1, 3, 4}, even))
	assert.False(t, arr.Some([]int{1, 3, 5}, even))
	assert.False(t, arr.Some([]int{}, even))
}

func TestSomeDefaultPredicate(t *testing.T) {
	assert.True(t, arr.Some([]bool{false, true}))
	assert.False(t, arr.Some([]any{false, "true", 1}))
}

func TestSomeIsComplementOfEvery(t *testing.T) {
	pred := func(n int) bool { return n > 2 }
	for _, items := range [][]int{{}, {1}, {3}, {1, 3}, {3, 4}} {
		assert.Equal(t, arr.Some(items, pred), !arr.Every(items, func(n int) bool { return !pred(n) }), "%v", items)
	}
}

// ─── Transformation ───────────────────────────────────────────────────────────

func TestMap(t *testing.T) {
	assert.Equal(t, []int{2, 4, 6}, arr.Map([]int{1, 2, 3}, func(n int) int { return n * 2 }))
}

func TestFilterAndReject(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	items := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{2, 4}, arr.Filter(items, even))
	assert.Equal(t, []int{1, 3, 5}, arr.Reject(items, even))
	assert.Equal(t, len(items), len(arr.Filter(items, even))+len(arr.Reject(items, even)))
}

func TestPluck(t *testing.T) {
	type P struct{ Name string }
	names := arr.Pluck([]P{{"Alice"}, {"Bob"}}, func(p P) string { return p.Name })
	assert.Equal(t, []string{"Alice", "Bob"}, names)
}

// ─── Deduplication ────────────────────────────────────────────────────────────

func TestUniq(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, arr.Uniq([]int{1, 2, 2, 3, 1}))
}

func TestUniqCollidesOnStringForm(t *testing.T) {
	got := arr.Uniq([]any{1, "1", 2, "x", "x"})
	assert.Equal(t, []any{1, 2, "x"}, got)
	assert.Equal(t, []any{1}, arr.Uniq([]any{1, "1"}), "first value seen is kept")
}

func TestUniqBy(t *testing.T) {
	type P struct{ ID, Val int }
	got := arr.UniqBy([]P{{1, 10}, {2, 20}, {1, 99}}, func(p P) int { return p.ID })
	assert.Equal(t, []P{{1, 10}, {2, 20}}, got)
}

// ─── Shuffle ──────────────────────────────────────────────────────────────────

func TestShuffleIsPermutation(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	got := arr.Shuffle(items)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, items, "input untouched")
	assert.ElementsMatch(t, items, got)
}

func TestShuffleEmpty(t *testing.T) {
	assert.Empty(t, arr.Shuffle([]int{}))
}

func TestShuffleWithChaChaSourceIsReproducible(t *testing.T) {
	seed := [32]byte{1, 2, 3}
	srcA, err := arr.NewChaChaSource(seed)
	require.NoError(t, err)
	srcB, err := arr.NewChaChaSource(seed)
	require.NoError(t, err)

	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	a := arr.ShuffleWith(items, rand.New(srcA))
	b := arr.ShuffleWith(items, rand.New(srcB))
	assert.Equal(t, a, b)
	assert.ElementsMatch(t, items, a)
}

type fixedSource []int

func (f *fixedSource) IntN(int) int {
	v := (*f)[0]
	*f = (*f)[1:]
	return v
}

func TestShuffleWithSwapsAcrossWholeRange(t *testing.T) {
	// i=0 swaps with 2, i=1 with 0, i=2 with 0.
	src := fixedSource{2, 0, 0}
	got := arr.ShuffleWith([]string{"a", "b", "c"}, &src)
	// [c b a] → [b c a] → [a c b]
	assert.Equal(t, []string{"a", "c", "b"}, got)
}

// ─── Invoke / SortBy ──────────────────────────────────────────────────────────

func TestInvoke(t *testing.T) {
	got := arr.Invoke([]string{"a", "b"}, func(s string, args ...any) string {
		return s + args[0].(string)
	}, "!")
	assert.Equal(t, []string{"a!", "b!"}, got)
}

func TestSortByIsStable(t *testing.T) {
	type P struct {
		Name string
		Age  int
	}
	people := []P{{"moe", 40}, {"larry", 50}, {"curly", 40}, {"shemp", 30}}
	got := arr.SortBy(people, func(p P) int { return p.Age })
	assert.Equal(t, []P{{"shemp", 30}, {"moe", 40}, {"curly", 40}, {"larry", 50}}, got)
	assert.Equal(t, "moe", people[0].Name, "input untouched")
}

func TestSortByString(t *testing.T) {
	got := arr.SortBy([]string{"pear", "fig", "banana"}, func(s string) int { return len(s) })
	assert.Equal(t, []string{"fig", "pear", "banana"}, got)
}

// ─── Zip / Flatten ────────────────────────────────────────────────────────────

func TestZip(t *testing.T) {
	got := arr.Zip([]int{1, 2, 3}, []int{10, 20})
	require.Len(t, got, 3)
	assert.Equal(t, []arr.Optional[int]{arr.Just(1), arr.Just(10)}, got[0])
	assert.Equal(t, []arr.Optional[int]{arr.Just(3), arr.Missing[int]()}, got[2])
}

func TestZipNoInput(t *testing.T) {
	assert.Empty(t, arr.Zip[int]())
}

func TestZip2PadsShorterSide(t *testing.T) {
	got := arr.Zip2([]string{"a", "b", "c", "d"}, []int{1, 2, 3})
	require.Len(t, got, 4)
	assert.Equal(t, "(a, 1)", got[0].String())
	assert.Equal(t, "(c, 3)", got[2].String())
	assert.Equal(t, "(d, <missing>)", got[3].String())

	v, ok := got[3].Second.Get()
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestFlattenDeep(t *testing.T) {
	got := arr.Flatten([]any{1, []any{2, []any{3, []any{4}}}}, false)
	assert.Equal(t, []any{1, 2, 3, 4}, got)
}

func TestFlattenTypedInnerSlices(t *testing.T) {
	got := arr.Flatten([]any{"a", []string{"b", "c"}, [2]int{1, 2}}, false)
	assert.Equal(t, []any{"a", "b", "c", 1, 2}, got)
}

func TestFlattenShallow(t *testing.T) {
	got := arr.Flatten([]any{1, []any{2, []any{3}}}, true)
	assert.Equal(t, []any{1, 2, []any{3}}, got)
}

func TestFlattenKeepsNil(t *testing.T) {
	got := arr.Flatten([]any{nil, []any{nil}}, false)
	assert.Equal(t, []any{nil, nil}, got)
}

func TestCollapse(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5}, arr.Collapse([][]int{{1, 2}, {3, 4}, {5}}))
}

// ─── Set operations ───────────────────────────────────────────────────────────

func TestIntersection(t *testing.T) {
	got := arr.Intersection([]int{1, 2, 2, 3}, []int{2, 3, 4}, []int{3, 2})
	assert.Equal(t, []int{2, 2, 3}, got)
}

func TestIntersectionEdgeCases(t *testing.T) {
	assert.Empty(t, arr.Intersection[int]())
	assert.Equal(t, []int{1, 2}, arr.Intersection([]int{1, 2}))
	assert.Empty(t, arr.Intersection([]int{1, 2}, []int{}))
}

func TestDifference(t *testing.T) {
	got := arr.Difference([]int{1, 2, 3, 4, 5}, []int{5, 2, 10}, []int{4})
	assert.Equal(t, []int{1, 3}, got)
	assert.Equal(t, []int{1, 2}, arr.Difference([]int{1, 2}))
}

func TestResultsDoNotAliasInput(t *testing.T) {
	items := []int{3, 1, 2}
	out := arr.SortBy(items, func(n int) int { return n })
	assert.True(t, slices.Equal(items, []int{3, 1, 2}))
	assert.Equal(t, []int{1, 2, 3}, out)
}
