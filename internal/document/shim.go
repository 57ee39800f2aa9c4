package document

// editorShim models the editing surface inside the VM. It keeps the
// document-side half of the bridge contract: state, the notification
// queue, and the command set. Notifications are queued document-side and
// fetched in one batch by getCommandQueue; __signalNative only tells the
// host that the queue is non-empty.
const editorShim = `
var __editor = {
	html: '',
	editable: true,
	placeholder: '',
	queue: [],
	history: [],
	future: [],
	sel: [0, 0],
	selHref: '',
	attrs: [],
	indent: 0,
	fontSize: 0,
	focused: false
};

function __enqueue(msg) {
	__editor.queue.push(msg);
	__signalNative();
}

function __record() {
	__editor.history.push(__editor.html);
	__editor.future = [];
}

function __init() {
	__editor.queue = [];
	__enqueue('ready');
}

function getHtml() { return __editor.html; }

function getText() { return __extractText(__editor.html); }

function setHtml(html) {
	__record();
	__editor.html = html;
	__enqueue('input');
}

function insertHtml(html) {
	__record();
	__editor.html += html;
	__enqueue('input');
}

function setEditable(editable) { __editor.editable = !!editable; }

function isEditable() { return __editor.editable ? 'true' : 'false'; }

function setPlaceholderText(text) { __editor.placeholder = text; }

function getPlaceholderText() { return __editor.placeholder; }

function getCommandQueue() {
	var batch = JSON.stringify(__editor.queue);
	__editor.queue = [];
	return batch;
}

function getSelectedRange() { return JSON.stringify(__editor.sel); }

function getActiveAttributes() { return JSON.stringify(__editor.attrs); }

function rangeSelectionExists() {
	return __editor.sel[0] !== __editor.sel[1] ? 'true' : 'false';
}

function getSelectedHref() { return __editor.selHref; }

function getEditorHeight() {
	var lines = 1;
	var blocks = __editor.html.match(/<(p|div|br|li|h[1-6]|blockquote|tr)[^>]*>/g);
	if (blocks) { lines += blocks.length; }
	return 20 * lines;
}

function focus() {
	if (__editor.focused) { return; }
	__editor.focused = true;
	__enqueue('focus');
}

function blur() {
	if (!__editor.focused) { return; }
	__editor.focused = false;
	__enqueue('blur');
}

function setSelectedRange(start, end) {
	__editor.sel = [start, end];
	__enqueue('selection');
}

function fireAction(name) { __enqueue('action/' + name); }

function __toggleAttr(name) {
	var i = __editor.attrs.indexOf(name);
	if (i >= 0) { __editor.attrs.splice(i, 1); } else { __editor.attrs.push(name); }
	__enqueue('selection');
}

function setBold() { __toggleAttr('bold'); }
function setItalic() { __toggleAttr('italic'); }
function setUnderline() { __toggleAttr('underline'); }
function setStrikethrough() { __toggleAttr('strikethrough'); }
function setSubscript() { __toggleAttr('subscript'); }
function setSuperscript() { __toggleAttr('superscript'); }

function __setAlign(dir) {
	__editor.attrs = __editor.attrs.filter(function (a) {
		return a.indexOf('align-') !== 0;
	});
	__editor.attrs.push('align-' + dir);
	__enqueue('selection');
}

function setJustifyLeft() { __setAlign('left'); }
function setJustifyCenter() { __setAlign('center'); }
function setJustifyRight() { __setAlign('right'); }

function __wrapBlock(tag) {
	__record();
	__editor.html = '<' + tag + '>' + __editor.html + '</' + tag + '>';
	__enqueue('input');
}

function setHeading(level) { __wrapBlock('h' + level); }
function setOrderedList() { __wrapBlock('ol'); }
function setUnorderedList() { __wrapBlock('ul'); }
function setBlockquote() { __wrapBlock('blockquote'); }

function setIndent() {
	__editor.indent += 1;
	__enqueue('input');
}

function setOutdent() {
	if (__editor.indent > 0) { __editor.indent -= 1; }
	__enqueue('input');
}

function setFontSize(px) {
	__editor.fontSize = px;
	__enqueue('input');
}

function setTextColor(color) {
	__editor.textColor = color;
	__enqueue('selection');
}

function setTextBackgroundColor(color) {
	__editor.backgroundColor = color;
	__enqueue('selection');
}

function insertLink(href, title) {
	__record();
	__editor.html += '<a href="' + href + '">' + title + '</a>';
	__editor.selHref = href;
	__enqueue('input');
}

function insertImage(src, alt) {
	__record();
	__editor.html += '<img src="' + src + '" alt="' + alt + '">';
	__enqueue('input');
}

function removeFormat() {
	__editor.attrs = [];
	__enqueue('selection');
}

function undo() {
	if (!__editor.history.length) { return; }
	__editor.future.push(__editor.html);
	__editor.html = __editor.history.pop();
	__enqueue('input');
}

function redo() {
	if (!__editor.future.length) { return; }
	__editor.history.push(__editor.html);
	__editor.html = __editor.future.pop();
	__enqueue('input');
}
`
