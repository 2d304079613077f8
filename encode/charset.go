package encode

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var charsets = map[string]*charmap.Charmap{
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
	"windows-1252": charmap.Windows1252,
}

// charsetEncoder returns nil for UTF-8, which needs no transcoding.
// Runes the charset cannot hold are written as character references.
func charsetEncoder(name string) (*encoding.Encoder, error) {
	lname := strings.ToLower(name)
	if lname == "utf-8" || lname == "utf8" {
		return nil, nil
	}
	cm, ok := charsets[lname]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCharset, name)
	}
	return encoding.HTMLEscapeUnsupported(cm.NewEncoder()), nil
}
