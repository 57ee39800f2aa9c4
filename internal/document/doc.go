/*
Package document provides an in-process embedded document built on the
goja JavaScript engine.

# Overview

The document evaluates bridge scripts against an editor shim that models
the editing surface: content, editability, placeholder, selection, active
formats, and the notification queue. It implements the full document-side
contract the bridge expects:

  - getHtml, getText, setHtml, insertHtml
  - setEditable, setPlaceholderText
  - getCommandQueue (fetch-and-clear, JSON array of strings)
  - getSelectedRange, getActiveAttributes, rangeSelectionExists
  - the formatting command set
  - queue signalling through the reserved bridge-callback navigation

# Signalling

The shim calls a host-injected hook whenever it queues a notification.
The hook only marks a signal pending; delivery happens after the current
evaluation returns, outside the VM lock, mirroring the asynchronous
navigation a real web renderer would perform.

# Security

The VM strips Node-style globals (require, process, module) and disables
timers, following the sandboxing applied to every embedded runtime here.
Plain-text extraction runs host-side over the HTML with goquery.
*/
package document
