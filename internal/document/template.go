package document

import "strings"

// baseTemplate is the document skeleton loaded into the renderer. The
// {header} and {footer} placeholders are the only load-time configuration
// surface.
const baseTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
{header}
</head>
<body>
<div id="editor" contenteditable="true" placeholder=""></div>
{footer}
</body>
</html>`

// Template holds the substitution values for one document load.
type Template struct {
	Header string
	Footer string
}

// Render substitutes the named placeholders into the base template.
func (t Template) Render() string {
	out := strings.ReplaceAll(baseTemplate, "{header}", t.Header)
	return strings.ReplaceAll(out, "{footer}", t.Footer)
}
