/*
Package bridge intercepts the embedded document's navigation attempts and
drains its command queue.

The document signals a non-empty queue by navigating to the reserved
bridge-callback scheme. The URL itself carries no payload; it is consumed
as a pure signal, cancelled before it takes effect, and answered with a
single script evaluation that fetches the whole notification backlog.
Notifications in one batch dispatch strictly in order, and two drains
never interleave.
*/
package bridge
