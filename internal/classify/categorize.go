package classify

import (
	"context"

	"github.com/plumharbor/daylens/internal/journal"
	"github.com/plumharbor/daylens/internal/telemetry"
)

// Result reports how categorization was carried out.
type Result struct {
	// Fallback is true when the local deterministic classifier assigned
	// the categories, either because no client was available or because
	// the remote call failed.
	Fallback bool
	// RemoteErr is the remote failure that triggered the fallback, nil
	// when the remote call succeeded or was never attempted.
	RemoteErr error
}

// Categorize runs the two-step classification pipeline over the given
// entries: attempt the remote classifier, and on any failure fall back to
// the deterministic local one. It always completes with every entry holding
// a valid category, so statistics can be computed immediately after. Remote
// failures are recorded to telemetry, not surfaced as errors.
//
// Categorize touches only the entries it is given and never the session
// they came from; callers that run it asynchronously pass a snapshot and
// apply the outcome (categories, fallback flag) only after confirming seq
// still identifies the live session.
func Categorize(ctx context.Context, client *Client, lex *journal.Lexicon, entries []*journal.Entry, seq int, em *telemetry.Emitter) Result {
	if client != nil {
		err := client.Remote(ctx, entries)
		if err == nil {
			return Result{}
		}
		em.Emit(telemetry.KindRemoteFailed, seq, map[string]string{"error": err.Error()})
		Local(entries, lex)
		em.Emit(telemetry.KindFallbackUsed, seq, nil)
		return Result{Fallback: true, RemoteErr: err}
	}

	Local(entries, lex)
	em.Emit(telemetry.KindFallbackUsed, seq, nil)
	return Result{Fallback: true}
}
