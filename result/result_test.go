package result_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-gql/qcore/result"
)

func TestSuccessValue(t *testing.T) {
	r := result.Success(42)
	v, ok := r.Value()
	require.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, result.KindSuccess, r.Kind())
	assert.False(t, r.IsFailure())
	assert.Empty(t, r.Problems())
}

func TestWarningValue(t *testing.T) {
	p := result.NewUnknownField("Query", "bogus")
	r := result.Warning(result.Problems{p}, 7)
	v, ok := r.Value()
	require.True(t, ok)
	assert.Equal(t, 7, v)
	assert.Equal(t, result.KindWarning, r.Kind())
	assert.False(t, r.IsFailure())
	assert.Len(t, r.Problems(), 1)
}

func TestFailureHasNoValue(t *testing.T) {
	p := result.NewUnknownType("Bogus")
	r := result.Failure[int](result.Problems{p})
	_, ok := r.Value()
	assert.False(t, ok)
	assert.True(t, r.IsFailure())
	assert.Equal(t, 0, r.ValueOrZero())
}

func TestMap(t *testing.T) {
	r := result.Success(2)
	mapped := result.Map(r, func(i int) int { return i * 10 })
	v, ok := mapped.Value()
	require.True(t, ok)
	assert.Equal(t, 20, v)

	fail := result.Failure[int](result.Problems{result.NewUnknownType("X")})
	mappedFail := result.Map(fail, func(i int) int { return i * 10 })
	assert.True(t, mappedFail.IsFailure())
}

func TestFlatMapShortCircuitsOnFailure(t *testing.T) {
	fail := result.Failure[int](result.Problems{result.NewUnknownType("X")})
	out := result.FlatMap(fail, func(i int) *result.Result[string] {
		t.Fatal("f must not run when r is a Failure")
		return nil
	})
	assert.True(t, out.IsFailure())
}

func TestFlatMapMergesProblems(t *testing.T) {
	p1 := result.NewUnknownField("Query", "a")
	warn := result.Warning(result.Problems{p1}, 1)
	p2 := result.NewUnknownField("Query", "b")
	out := result.FlatMap(warn, func(i int) *result.Result[int] {
		return result.Warning(result.Problems{p2}, i+1)
	})
	require.False(t, out.IsFailure())
	assert.Len(t, out.Problems(), 2)
	v, _ := out.Value()
	assert.Equal(t, 2, v)
}

func TestOrElse(t *testing.T) {
	success := result.Success(1)
	fallback := result.Success(2)
	assert.Equal(t, success, success.OrElse(fallback))

	fail := result.Failure[int](result.Problems{result.NewUnknownType("X")})
	assert.Equal(t, fallback, fail.OrElse(fallback))
}

func TestTraverseAccumulatesAllFailures(t *testing.T) {
	items := []int{1, -1, 2, -2}
	out := result.Traverse(items, func(i int) *result.Result[int] {
		if i < 0 {
			return result.Failure[int](result.Problems{result.NewUnknownType("negative")})
		}
		return result.Success(i * 10)
	})
	assert.True(t, out.IsFailure())
	assert.Len(t, out.Problems(), 2, "both failures are reported, not just the first")
}

func TestTraverseAllSuccess(t *testing.T) {
	out := result.Traverse([]int{1, 2, 3}, func(i int) *result.Result[int] {
		return result.Success(i * 2)
	})
	require.False(t, out.IsFailure())
	v, _ := out.Value()
	assert.Equal(t, []int{2, 4, 6}, v)
}

func TestAccumulatorFinish(t *testing.T) {
	acc := result.NewAccumulator()
	result.Absorb(acc, result.Success(1))
	assert.False(t, acc.Failed())
	assert.False(t, acc.HasProblems())

	result.Absorb(acc, result.Warning(result.Problems{result.NewUnknownType("X")}, 2))
	assert.False(t, acc.Failed())
	assert.True(t, acc.HasProblems())

	final := result.Finish(acc, "done")
	assert.Equal(t, result.KindWarning, final.Kind())

	result.Absorb(acc, result.Failure[int](result.Problems{result.NewUnknownType("Y")}))
	assert.True(t, acc.Failed())
	final2 := result.Finish(acc, "done")
	assert.True(t, final2.IsFailure())
}

func TestFailureError(t *testing.T) {
	r := result.Success(1)
	assert.NoError(t, result.FailureError(r))

	fail := result.Failure[int](result.Problems{result.NewUnknownType("X"), result.NewUnknownField("Query", "y")})
	err := result.FailureError(fail)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type")
}

func TestProblemErrorAndUnwrap(t *testing.T) {
	cause := errors.New("boom")
	p := result.NewInternalInvariant(cause, "bad state: %s", "x")
	assert.Contains(t, p.Error(), "bad state: x")
	assert.ErrorIs(t, p, cause)
}

func TestNewParseErrorRendersSnippet(t *testing.T) {
	p := result.NewParseError(2, 3, "query { foo }", errors.New("unexpected token"))
	assert.Equal(t, result.ParseError, p.Kind)
	assert.Contains(t, p.Error(), "line 2 column 3")
	assert.Contains(t, p.Error(), "query { foo }")
}
