package html

import "strings"

// Text position only needs the characters that open markup. Quotes are left
// alone so rendered copy keeps its punctuation readable in page source.
var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// Attribute position additionally escapes the double quote so no value can
// break out of its enclosing quotes. Event-handler values go through the
// same escaper: their JS content is permitted verbatim, but never a quote.
var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// EscapeText escapes a string for use as element text content.
func EscapeText(s string) string { return textEscaper.Replace(s) }

// EscapeAttr escapes a string for use inside a double-quoted attribute value.
func EscapeAttr(s string) string { return attrEscaper.Replace(s) }
