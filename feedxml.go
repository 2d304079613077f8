// Package feedxml turns message payloads into feed XML documents.
//
// A payload is wrapped in an envelope, normalized by the shape pipeline
// and rendered as XML under the envelope root element.
package feedxml

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/feedxml/debug"
	"github.com/signadot/feedxml/encode"
	"github.com/signadot/feedxml/envelope"
	"github.com/signadot/feedxml/format"
	"github.com/signadot/feedxml/ir"
	"github.com/signadot/feedxml/shape"
)

type config struct {
	keys     ir.Keys
	pipeline *shape.Pipeline
	encOpts  []encode.EncodeOption
	envOpts  []envelope.Option
}

type Option func(*config)

// WithKeys sets the reserved attribute and text fields for every step.
func WithKeys(keys ir.Keys) Option {
	return func(c *config) { c.keys = keys }
}

// WithPipeline replaces the normalization pipeline. Its keys win over
// WithKeys for normalization.
func WithPipeline(p *shape.Pipeline) Option {
	return func(c *config) { c.pipeline = p }
}

func WithEncodeOptions(opts ...encode.EncodeOption) Option {
	return func(c *config) { c.encOpts = append(c.encOpts, opts...) }
}

func WithEnvelopeOptions(opts ...envelope.Option) Option {
	return func(c *config) { c.envOpts = append(c.envOpts, opts...) }
}

func newConfig(opts []Option) *config {
	c := &config{keys: ir.DefaultKeys()}
	for _, opt := range opts {
		opt(c)
	}
	if c.pipeline == nil {
		c.pipeline = shape.NewPipeline(shape.WithKeys(c.keys))
	}
	return c
}

// CreateXML normalizes node and writes it as XML rooted at
// envelope.RootName.
func CreateXML(node *ir.Node, w io.Writer, opts ...Option) error {
	return newConfig(opts).createXML(node, w)
}

func (c *config) createXML(node *ir.Node, w io.Writer) error {
	node = c.pipeline.Run(node)
	if debug.Encode() {
		debug.Logf("encoding %v\n", node)
	}
	opts := append([]encode.EncodeOption{
		encode.EncodeFormat(format.XMLFormat),
		encode.Root(envelope.RootName),
		encode.Keys(c.pipeline.Keys()),
	}, c.encOpts...)
	return encode.Encode(node, w, opts...)
}

// MessageFunc builds envelope data from a header and a payload source.
type MessageFunc[H, D any] func(header H, data D) (envelope.Data, error)

// CreateEnvelope adapts fn into a function producing complete XML
// documents.
func CreateEnvelope[H, D any](fn MessageFunc[H, D], opts ...Option) func(H, D) ([]byte, error) {
	c := newConfig(opts)
	envOpts := append([]envelope.Option{envelope.AttrKey(c.pipeline.Keys().Attr)}, c.envOpts...)
	return func(header H, data D) ([]byte, error) {
		d, err := fn(header, data)
		if err != nil {
			return nil, fmt.Errorf("building message: %w", err)
		}
		buf := bytes.NewBuffer(nil)
		if err := c.createXML(envelope.New(d, envOpts...), buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}
