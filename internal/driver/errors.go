package driver

import "fmt"

// ActionRefusedError reports that the world rejected an otherwise
// well-formed action: a locked door, an unmovable item, a denied
// privilege. Surfaced verbatim to the player; never aborts the tick.
type ActionRefusedError struct{ Message string }

func (e *ActionRefusedError) Error() string { return e.Message }

// SecurityViolationError reports that a non-privileged caller invoked a
// privileged command. Handled identically to ActionRefusedError.
type SecurityViolationError struct{ Message string }

func (e *SecurityViolationError) Error() string { return e.Message }

// RetryAsSoul is an internal control signal: the command function asks the
// dispatcher to re-run the same input through the soul parser instead.
// Never surfaced to the player.
type RetryAsSoul struct{}

func (RetryAsSoul) Error() string { return "retry as soul" }

// RetryWithCommand is an internal control signal: the command function asks
// the dispatcher to re-dispatch with a different command line. Never
// surfaced to the player.
type RetryWithCommand struct{ Command string }

func (e RetryWithCommand) Error() string { return fmt.Sprintf("retry with command: %s", e.Command) }

// SessionExitError requests clean termination of the session; the driver
// tells the player goodbye, unregisters them and destroys the connection.
// No story goodbye hook is called.
type SessionExitError struct{ Message string }

func (e *SessionExitError) Error() string { return e.Message }

// StoryCompletedError signals the player reached end-of-story. In either
// mode the driver tells the player the story has ended; it calls no story
// completion hook and does not stop the session.
type StoryCompletedError struct{}

func (StoryCompletedError) Error() string { return "story completed" }
