package editor

import (
	"context"

	"github.com/inkforge/richbridge/internal/script"
)

// Formatting commands are fire-and-forget: serialized, submitted, and
// forgotten. Failures surface only as an unchanged document. All of them
// degrade to a no-op while the document is not loaded.

func (e *Editor) Bold(ctx context.Context)          { e.run(ctx, script.Call("setBold")) }
func (e *Editor) Italic(ctx context.Context)        { e.run(ctx, script.Call("setItalic")) }
func (e *Editor) Underline(ctx context.Context)     { e.run(ctx, script.Call("setUnderline")) }
func (e *Editor) Strikethrough(ctx context.Context) { e.run(ctx, script.Call("setStrikethrough")) }
func (e *Editor) Subscript(ctx context.Context)     { e.run(ctx, script.Call("setSubscript")) }
func (e *Editor) Superscript(ctx context.Context)   { e.run(ctx, script.Call("setSuperscript")) }

// SetFontSize sets the base font size in pixels.
func (e *Editor) SetFontSize(ctx context.Context, px int) {
	e.run(ctx, script.Call("setFontSize", px))
}

// SetTextColor sets the foreground color of the selection.
func (e *Editor) SetTextColor(ctx context.Context, color string) {
	e.run(ctx, script.Call("setTextColor", color))
}

// SetTextBackgroundColor sets the background color of the selection.
func (e *Editor) SetTextBackgroundColor(ctx context.Context, color string) {
	e.run(ctx, script.Call("setTextBackgroundColor", color))
}

// Heading wraps the current block in a heading of the given level (1-6).
func (e *Editor) Heading(ctx context.Context, level int) {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	e.run(ctx, script.Call("setHeading", level))
}

func (e *Editor) OrderedList(ctx context.Context)   { e.run(ctx, script.Call("setOrderedList")) }
func (e *Editor) UnorderedList(ctx context.Context) { e.run(ctx, script.Call("setUnorderedList")) }
func (e *Editor) Blockquote(ctx context.Context)    { e.run(ctx, script.Call("setBlockquote")) }

func (e *Editor) AlignLeft(ctx context.Context)   { e.run(ctx, script.Call("setJustifyLeft")) }
func (e *Editor) AlignCenter(ctx context.Context) { e.run(ctx, script.Call("setJustifyCenter")) }
func (e *Editor) AlignRight(ctx context.Context)  { e.run(ctx, script.Call("setJustifyRight")) }

func (e *Editor) Indent(ctx context.Context)  { e.run(ctx, script.Call("setIndent")) }
func (e *Editor) Outdent(ctx context.Context) { e.run(ctx, script.Call("setOutdent")) }

func (e *Editor) Undo(ctx context.Context) { e.run(ctx, script.Call("undo")) }
func (e *Editor) Redo(ctx context.Context) { e.run(ctx, script.Call("redo")) }

// InsertLink inserts a hyperlink at the caret. Both arguments are escaped
// before interpolation; hostile titles cannot break the command.
func (e *Editor) InsertLink(ctx context.Context, href, title string) {
	e.run(ctx, script.Call("insertLink", href, title))
}

// InsertImage inserts an image at the caret.
func (e *Editor) InsertImage(ctx context.Context, src, alt string) {
	e.run(ctx, script.Call("insertImage", src, alt))
}

// RemoveFormat clears inline formatting from the selection.
func (e *Editor) RemoveFormat(ctx context.Context) { e.run(ctx, script.Call("removeFormat")) }

// Focus moves keyboard focus into the editing surface.
func (e *Editor) Focus(ctx context.Context) { e.run(ctx, script.Call("focus")) }

// Blur removes keyboard focus from the editing surface.
func (e *Editor) Blur(ctx context.Context) { e.run(ctx, script.Call("blur")) }
