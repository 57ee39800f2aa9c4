package editor

// Phase tracks the document lifecycle. Transitions move forward only,
// except for a reload which returns to PhaseLoading.
type Phase int

const (
	// PhaseUnloaded means no document load has been requested.
	PhaseUnloaded Phase = iota
	// PhaseLoading means a load is in flight; script execution is not
	// yet safe.
	PhaseLoading
	// PhaseLoaded means the document accepts script execution but the
	// editor shim has not reported ready.
	PhaseLoaded
	// PhaseReady means the first ready notification was processed and
	// delegate notifications are permitted.
	PhaseReady
)

// state is the facade-owned editor state. PhaseReady implies script
// execution is safe; contentHTML is authoritative only after a fetch.
type state struct {
	phase Phase

	contentHTML  string
	editorHeight int

	editingEnabled  bool
	placeholderText string

	// Values buffered before the ready transition and applied when the
	// document reports ready.
	pendingHTML        *string
	pendingEditable    *bool
	pendingPlaceholder *string
}

func newState() state {
	return state{editingEnabled: true}
}

// loaded reports whether script execution is safe.
func (s *state) loaded() bool {
	return s.phase >= PhaseLoaded
}

// ready reports whether delegate notifications are permitted.
func (s *state) ready() bool {
	return s.phase == PhaseReady
}

// resetForLoad re-arms the ready transition for a new document load.
func (s *state) resetForLoad() {
	s.phase = PhaseLoading
	s.editorHeight = 0
}
