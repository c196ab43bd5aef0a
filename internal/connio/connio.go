// Package connio defines the abstract connection the driver talks to,
// independent of any concrete terminal/GUI/web transport.
package connio

// Connection is the narrow interface the driver requires from whatever is
// on the other end of a player's session. TelnetConnection in this package
// is the one concrete adapter shipped; MemConnection is a test double.
type Connection interface {
	// Output queues a paragraph of style-tagged text for delivery.
	Output(text string)
	// WriteInputPrompt renders the input prompt (e.g. after output flush).
	WriteInputPrompt()
	// PendingInput drains and returns any input lines received since the
	// last call.
	PendingInput() []string
	// InputAvailable reports whether PendingInput would return non-empty.
	InputAvailable() bool
	// ClearScreen requests the adapter clear its display, if it can.
	ClearScreen()
	// BreakPressed reports whether the user signalled an interrupt
	// (ctrl-C / telnet break) since the last check.
	BreakPressed() bool
	// Destroy tears down the connection; no further output is delivered.
	Destroy()
}

// MemConnection is an in-memory Connection double used by driver tests.
// It is not a production transport.
type MemConnection struct {
	Outputs []string
	input   []string
	broken  bool
	closed  bool
}

// NewMemConnection creates a test double with no queued input.
func NewMemConnection() *MemConnection {
	return &MemConnection{}
}

func (m *MemConnection) Output(text string) { m.Outputs = append(m.Outputs, text) }
func (m *MemConnection) WriteInputPrompt()   {}

func (m *MemConnection) PendingInput() []string {
	lines := m.input
	m.input = nil
	return lines
}

func (m *MemConnection) InputAvailable() bool { return len(m.input) > 0 }

// Feed queues a line of input as if typed by the user.
func (m *MemConnection) Feed(line string) { m.input = append(m.input, line) }

func (m *MemConnection) ClearScreen()      { m.Outputs = nil }
func (m *MemConnection) BreakPressed() bool { b := m.broken; m.broken = false; return b }

// SignalBreak marks that an interrupt was received.
func (m *MemConnection) SignalBreak() { m.broken = true }

func (m *MemConnection) Destroy() { m.closed = true }

// Closed reports whether Destroy has been called.
func (m *MemConnection) Closed() bool { return m.closed }
