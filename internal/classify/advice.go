package classify

// AdviceState tracks the lifecycle of one advice generation, observed by
// rendering collaborators to show loading and error states independently of
// the classification/statistics lifecycle.
type AdviceState int

const (
	AdviceNotStarted AdviceState = iota
	AdvicePending
	AdviceReady
	AdviceFailed
)

// Advice is the observable state of an advice request. Seq tags the session
// generation the request was issued for; results carrying a stale sequence
// are discarded by the caller.
type Advice struct {
	State AdviceState
	Text  string // markdown, set when State is AdviceReady
	Err   error  // set when State is AdviceFailed
	Seq   int
}
