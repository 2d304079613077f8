// Package envelope wraps a message payload in the feed envelope: schema
// attributes, a versioned header, the message type and the message.
package envelope

import (
	"errors"
	"fmt"

	"github.com/signadot/feedxml/ir"
)

const (
	RootName        = "AmazonEnvelope"
	DocumentVersion = 1.01

	XSINamespace          = "http://www.w3.org/2001/XMLSchema-instance"
	DefaultSchemaLocation = "amzn-envelope.xsd"
)

var (
	ErrNoMessage = errors.New("envelope has no Message")
	ErrShape     = errors.New("envelope shape")
)

type Data struct {
	MerchantIdentifier string
	MessageType        string
	Message            *ir.Node
}

type options struct {
	schemaLocation string
	attrKey        string
}

type Option func(*options)

func SchemaLocation(loc string) Option {
	return func(o *options) { o.schemaLocation = loc }
}

// AttrKey sets the reserved attribute field, which must agree with the
// keys given to the pipeline and encoder.
func AttrKey(key string) Option {
	return func(o *options) { o.attrKey = key }
}

// New builds the envelope for data. A nil Message is kept as the absent
// marker and removed later by normalization.
func New(data Data, opts ...Option) *ir.Node {
	o := &options{
		schemaLocation: DefaultSchemaLocation,
		attrKey:        ir.DefaultAttrKey,
	}
	for _, opt := range opts {
		opt(o)
	}
	msg := data.Message
	if msg == nil {
		msg = ir.Absent()
	}
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: o.attrKey, Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "xmlns:xsi", Val: ir.FromString(XSINamespace)},
			{Key: "xsi:noNamespaceSchemaLocation", Val: ir.FromString(o.schemaLocation)},
		})},
		{Key: "Header", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "DocumentVersion", Val: ir.FromFloat(DocumentVersion)},
			{Key: "MerchantIdentifier", Val: ir.FromString(data.MerchantIdentifier)},
		})},
		{Key: "MessageType", Val: ir.FromString(data.MessageType)},
		{Key: "Message", Val: msg},
	})
}

// FromNode extracts Data from a decoded document. The document may be
// wrapped in a RootName field. MerchantIdentifier is read from the top
// level or from Header.
func FromNode(node *ir.Node) (Data, error) {
	if node == nil || node.Type != ir.ObjectType {
		return Data{}, fmt.Errorf("%w: expected an object", ErrShape)
	}
	if inner := ir.Get(node, RootName); inner != nil && node.Len() == 1 {
		return FromNode(inner)
	}
	var (
		data Data
		err  error
	)
	data.MerchantIdentifier, err = scalar(node, "MerchantIdentifier")
	if err != nil {
		return Data{}, err
	}
	if data.MerchantIdentifier == "" {
		if h := ir.Get(node, "Header"); h != nil && h.Type == ir.ObjectType {
			data.MerchantIdentifier, err = scalar(h, "MerchantIdentifier")
			if err != nil {
				return Data{}, err
			}
		}
	}
	data.MessageType, err = scalar(node, "MessageType")
	if err != nil {
		return Data{}, err
	}
	data.Message = ir.Get(node, "Message")
	if ir.IsAbsent(data.Message) {
		return Data{}, ErrNoMessage
	}
	return data, nil
}

func scalar(node *ir.Node, field string) (string, error) {
	v := ir.Get(node, field)
	if ir.IsAbsent(v) {
		return "", nil
	}
	if !ir.IsScalar(v) {
		return "", fmt.Errorf("%w: %s is a %s", ErrShape, field, v.Type)
	}
	return v.Text(), nil
}
