package ir

const (
	DefaultAttrKey = "@"
	DefaultTextKey = "_cdata"
)

// Keys names the two reserved object fields. The attribute field holds a
// mapping of XML attribute names to scalars, the text field holds literal
// text. Neither is treated as a child element.
type Keys struct {
	Attr string
	Text string
}

func DefaultKeys() Keys {
	return Keys{Attr: DefaultAttrKey, Text: DefaultTextKey}
}

func (k Keys) IsReserved(field string) bool {
	return field == k.Attr || field == k.Text
}
