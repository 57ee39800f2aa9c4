package editor

// Range is a selection span in character offsets.
type Range struct {
	Start int
	End   int
}

// Delegate receives editor events. Every field is optional; a nil field
// is simply not invoked. Each triggering event produces at most one
// invocation of its callback.
type Delegate struct {
	// OnLoad fires once per document load, after the first ready
	// notification has been processed and pending state applied.
	OnLoad func()

	// OnContentChange fires when the fetched document content differs
	// from the cached copy. Suppressed until the editor is ready.
	OnContentChange func(html string)

	// OnHeightChange fires when the rendered editor height changes.
	// Suppressed until the editor is ready.
	OnHeightChange func(height int)

	// OnFocusGained and OnFocusLost track document focus.
	OnFocusGained func()
	OnFocusLost   func()

	// OnLinkActivated is consulted when the user activates a hyperlink
	// inside the document. Return true to allow the navigation; a nil
	// callback cancels it.
	OnLinkActivated func(url string) bool

	// OnCustomAction fires for action/<name> notifications emitted by
	// the document, after content has been re-fetched.
	OnCustomAction func(name string)

	// OnSelectionChange fires with the current selection range and the
	// active format identifiers at the caret.
	OnSelectionChange func(r Range, attributes []string)
}
