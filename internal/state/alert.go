package state

// Alert is the single-slot error channel behind the dashboard banner.
// Setting a message overwrites whatever was there; only the latest is shown.
type Alert struct {
	message string
	live    bool
	seq     uint64
}

// Set makes msg the live error. Every call counts as a new appearance, even
// when msg equals the current message.
func (a *Alert) Set(msg string) {
	a.message = msg
	a.live = true
	a.seq++
}

// Clear empties the slot.
func (a *Alert) Clear() {
	a.message = ""
	a.live = false
}

// Message returns the live error, if any.
func (a *Alert) Message() (string, bool) {
	return a.message, a.live
}

// Seq counts how many times Set has been called.
func (a *Alert) Seq() uint64 {
	return a.seq
}
