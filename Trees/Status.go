package Trees

// Status of an operation on an AVLTree. Every status other than Success leaves the tree
// exactly as it was before the call.
type Status uint8

const (
	Success Status = iota
	// AllocationError means no new cell could be created: the index type S has no free value left.
	AllocationError
	// InvalidInput is a caller error such as an out of range rank or a stale handle.
	InvalidInput
	// Failure is a value not found, or a duplicate value on insertion.
	Failure
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case AllocationError:
		return "allocation error"
	case InvalidInput:
		return "invalid input"
	case Failure:
		return "failure"
	}
	return "unknown status"
}

// Error lets a Status travel as an error, so errors.Is(err, Trees.Failure) works.
func (s Status) Error() string {
	return "Trees: " + s.String()
}

// Result pairs a Status with a value. Ans is meaningful only when Status is Success.
type Result[V any] struct {
	ans    V
	status Status
}

func ok[V any](v V) Result[V] {
	return Result[V]{ans: v}
}

func fail[V any](s Status) Result[V] {
	return Result[V]{status: s}
}

func (r Result[V]) Status() Status {
	return r.status
}

func (r Result[V]) Ans() V {
	return r.ans
}

func (r Result[V]) Ok() bool {
	return r.status == Success
}

// Err is nil on Success, otherwise the Status itself.
func (r Result[V]) Err() error {
	if r.status == Success {
		return nil
	}
	return r.status
}
