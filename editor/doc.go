/*
Package editor is the public facade of the rich-text bridge.

An Editor issues editing commands to an embedded web document and consumes
the event notifications the document queues back. All communication crosses
the boundary asynchronously: commands are serialized script invocations,
and events arrive through a reserved-scheme navigation signal answered by
a queue drain.

The facade owns all mutable state (load phase, cached content, pending
values) and expects single-goroutine dispatch: all methods and delegate
callbacks must run on one logical event loop, mirroring the UI thread of
a GUI host.
*/
package editor
