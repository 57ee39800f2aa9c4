/*
Package executor submits scripts to the embedded document and resolves
their asynchronous results.

Each Execute call resolves its handler exactly once. Evaluation failures
(document unloaded, script threw, navigation in progress) never surface as
errors; the handler receives the empty string instead, so callers observe
failure only as an empty or zero result.

Composite values cross the document boundary as JSON-encoded strings. The
executor decodes them at this single seam: a result shaped like a JSON
object or array is unmarshalled, falling back to the raw string when the
decode fails. Primitive results pass through unchanged.
*/
package executor
