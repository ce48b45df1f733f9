package apidoc

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Writer receives a document one line at a time.
type Writer interface {
	// WriteScalar writes "key: value".
	WriteScalar(indent int, key string, value any)
	// WriteBlock writes "key:" opening a nested mapping at indent+1.
	WriteBlock(indent int, key string)
	// WriteList writes "key:" followed by one "- item" line per item at indent+1.
	WriteList(indent int, key string, items []string)
}

// indentUnit is the text added per nesting level.
const indentUnit = "  "

// TextWriter renders to YAML-compatible text.
//
// Strings are single-quoted with embedded quotes doubled, or double-quoted
// when they hold control characters. Other scalars are
// written with fmt's default format, unquoted. List items are written bare.
// The zero value is ready to use.
type TextWriter struct {
	b strings.Builder
}

var _ Writer = (*TextWriter)(nil)

// WriteScalar implements Writer. A nil value writes nothing.
func (w *TextWriter) WriteScalar(indent int, key string, value any) {
	if value == nil {
		return
	}
	w.prefix(indent)
	w.b.WriteString(key)
	w.b.WriteString(": ")
	if s, ok := value.(string); ok {
		w.b.WriteString(Quote(s))
	} else {
		fmt.Fprint(&w.b, value)
	}
	w.b.WriteByte('\n')
}

// WriteBlock implements Writer.
func (w *TextWriter) WriteBlock(indent int, key string) {
	w.prefix(indent)
	w.b.WriteString(key)
	w.b.WriteString(":\n")
}

// WriteList implements Writer. An empty list writes nothing.
func (w *TextWriter) WriteList(indent int, key string, items []string) {
	if len(items) == 0 {
		return
	}
	w.WriteBlock(indent, key)
	for _, item := range items {
		w.prefix(indent + 1)
		w.b.WriteString("- ")
		w.b.WriteString(item)
		w.b.WriteByte('\n')
	}
}

// String returns everything written so far.
func (w *TextWriter) String() string {
	return w.b.String()
}

// Len returns the number of bytes written so far.
func (w *TextWriter) Len() int {
	return w.b.Len()
}

func (w *TextWriter) prefix(indent int) {
	for range indent {
		w.b.WriteString(indentUnit)
	}
}

// Quote single-quotes s, doubling any single quote inside it.
// Strings holding line breaks or other control characters are
// double-quoted with escapes instead, since a single-quoted scalar cannot
// carry them.
func Quote(s string) string {
	if strings.IndexFunc(s, unicode.IsControl) >= 0 {
		return strconv.Quote(s)
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
