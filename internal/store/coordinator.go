package store

// Coordinator sequences task reloads so that overlapping in-flight requests
// cannot leave the cache holding a stale result. Every issued reload gets a
// monotonically increasing sequence number; a completed reload may be
// applied only while its number is higher than every previously applied
// one. Stale completions are discarded silently.
//
// Cancelling an in-flight HTTP call is deliberately not attempted; a stale
// response is simply never applied.
type Coordinator struct {
	issued  uint64
	applied uint64
}

// Next issues a sequence number for a new reload request.
func (c *Coordinator) Next() uint64 {
	c.issued++
	return c.issued
}

// Accept reports whether a completed reload with the given sequence number
// may be applied, and records it as applied when so.
func (c *Coordinator) Accept(seq uint64) bool {
	if seq <= c.applied {
		return false
	}
	c.applied = seq
	return true
}

// Debouncer collapses rapid-fire triggers (keystroke-driven search) into a
// single reload. Each trigger arms a fresh token; a timer that fires with
// an outdated token is ignored.
type Debouncer struct {
	token int
}

// Arm invalidates any pending timer and returns the token the next timer
// must present.
func (d *Debouncer) Arm() int {
	d.token++
	return d.token
}

// Current reports whether the given token is still the latest armed one.
func (d *Debouncer) Current(token int) bool {
	return token == d.token
}
