package encode

import (
	"fmt"
	"io"
	"strings"

	xw "github.com/shabbyrobe/xmlwriter"

	"github.com/signadot/feedxml/ir"
)

type xmlEnc struct {
	w    *xw.Writer
	keys ir.Keys
}

// encodeXML renders a canonical tree. A field f holding
//
//   - a scalar becomes <f>text</f>
//   - an object becomes <f> with one child per field
//   - an array becomes <f> with the fields of every object entry as
//     children, scalar entries as text and nested arrays flattened
//
// The attribute field of any entry gives attributes of <f>, the text field
// gives a CDATA section. Absent values produce nothing.
func encodeXML(node *ir.Node, w io.Writer, es *EncState) error {
	root := es.root
	if root == "" {
		if node == nil || node.Type != ir.ObjectType || len(node.Fields) != 1 {
			return fmt.Errorf("%w: expected a single field object", ErrRoot)
		}
		root, node = node.Fields[0], node.Values[0]
	}
	enc, err := charsetEncoder(es.charset)
	if err != nil {
		return err
	}
	var opts []xw.Option
	if es.pretty {
		opts = append(opts, xw.WithIndent())
	}
	e := &xmlEnc{keys: es.keys}
	if enc == nil {
		e.w = xw.Open(w, opts...)
	} else {
		e.w = xw.OpenEncoding(w, es.charset, enc, opts...)
	}
	if es.decl {
		decl := fmt.Sprintf(`<?xml version="1.0" encoding="%s"?>`, es.charset)
		if es.pretty {
			decl += "\n"
		}
		if err := e.w.Write(xw.Raw(decl)); err != nil {
			return err
		}
	}
	if err := e.element(root, node); err != nil {
		return err
	}
	return e.w.EndAllFlush()
}

func (e *xmlEnc) element(name string, node *ir.Node) error {
	if ir.IsAbsent(node) {
		return nil
	}
	if err := e.w.Start(xw.Elem{Name: name}); err != nil {
		return err
	}
	parts := e.parts(node, nil)
	for _, p := range parts {
		if p.text == nil && p.kv.Key == e.keys.Attr {
			if err := e.attrs(name, p.kv.Val); err != nil {
				return err
			}
		}
	}
	for _, p := range parts {
		var err error
		switch {
		case p.text != nil:
			err = e.w.Write(xw.Text(p.text.Text()))
		case p.kv.Key == e.keys.Attr:
		case p.kv.Key == e.keys.Text:
			err = e.cdata(name, p.kv.Val)
		default:
			err = e.element(p.kv.Key, p.kv.Val)
		}
		if err != nil {
			return err
		}
	}
	return e.w.End(xw.ElemNode)
}

// part is either a field of some object entry or a text entry.
type part struct {
	kv   ir.KeyVal
	text *ir.Node
}

func (e *xmlEnc) parts(node *ir.Node, acc []part) []part {
	if ir.IsAbsent(node) {
		return acc
	}
	switch node.Type {
	case ir.ObjectType:
		for _, kv := range node.KeyVals() {
			acc = append(acc, part{kv: kv})
		}
	case ir.ArrayType:
		for _, v := range node.Values {
			acc = e.parts(v, acc)
		}
	default:
		acc = append(acc, part{text: node})
	}
	return acc
}

func (e *xmlEnc) attrs(elem string, node *ir.Node) error {
	if ir.IsAbsent(node) {
		return nil
	}
	if node.Type != ir.ObjectType {
		return fmt.Errorf("%w: attributes of <%s> are %s, not Object", ErrUnsupported, elem, node.Type)
	}
	for i, f := range node.Fields {
		v := node.Values[i]
		if ir.IsAbsent(v) {
			continue
		}
		if !ir.IsScalar(v) {
			return fmt.Errorf("%w: attribute %s of <%s> is %s", ErrUnsupported, f, elem, v.Type)
		}
		attr := xw.Attr{Name: f, Value: v.Text()}
		if prefix, local, ok := strings.Cut(f, ":"); ok {
			attr.Prefix, attr.Name = prefix, local
		}
		if err := e.w.Write(attr); err != nil {
			return err
		}
	}
	return nil
}

func (e *xmlEnc) cdata(elem string, node *ir.Node) error {
	if ir.IsAbsent(node) {
		return nil
	}
	if !ir.IsScalar(node) {
		return fmt.Errorf("%w: text of <%s> is %s", ErrUnsupported, elem, node.Type)
	}
	for _, s := range cdataSections(node.Text()) {
		if err := e.w.Write(xw.CData{Content: s}); err != nil {
			return err
		}
	}
	return nil
}

// cdataSections splits s after each "]]" of a "]]>" so that no section
// contains the terminator.
func cdataSections(s string) []string {
	var res []string
	for {
		i := strings.Index(s, "]]>")
		if i == -1 {
			return append(res, s)
		}
		res = append(res, s[:i+2])
		s = s[i+2:]
	}
}
