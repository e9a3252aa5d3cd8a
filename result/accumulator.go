package result

// Accumulator collects Problems and failure status across a sequence of
// Result values of possibly different value types — exactly the shape the
// elaborator needs when folding over a list of child nodes, each producing
// its own *Result[Query], and wanting one combined *Result[Query] for the
// rebuilt parent (spec.md §4.G: "accumulates the problem into the result
// carrier and continues as far as it meaningfully can").
//
// Go methods cannot themselves be generic, so Accumulator's type-erasing
// Absorb step is a free function (Absorb[T]) rather than a method; Finish
// is likewise free so it can close over whatever value type the caller is
// assembling.
type Accumulator struct {
	problems Problems
	failed   bool
}

// NewAccumulator returns an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Absorb folds r's problems and failure status into acc.
func Absorb[T any](acc *Accumulator, r *Result[T]) {
	problems, failed := r.Status()
	acc.problems = append(acc.problems, problems...)
	acc.failed = acc.failed || failed
}

// Failed reports whether any absorbed Result was a Failure.
func (a *Accumulator) Failed() bool { return a.failed }

// HasProblems reports whether any problems have been absorbed.
func (a *Accumulator) HasProblems() bool { return len(a.problems) > 0 }

// Finish builds the combined Result for v: Failure if any absorbed Result
// failed, Warning if there are problems but none fatal, Success otherwise.
func Finish[T any](acc *Accumulator, v T) *Result[T] {
	switch {
	case acc.failed:
		return Failure[T](acc.problems)
	case len(acc.problems) > 0:
		return Warning(acc.problems, v)
	default:
		return Success(v)
	}
}
