/*
Package script builds editor command invocations for evaluation inside the
embedded document.

A Command pairs an operation name with its already-escaped arguments and
renders to a single JavaScript call expression. String arguments pass
through Escape before interpolation so that quotes, backslashes, and line
terminators in user content (link titles, image alt text) cannot break out
of the string literal.
*/
package script
