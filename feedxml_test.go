package feedxml

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/signadot/feedxml/encode"
	"github.com/signadot/feedxml/envelope"
	"github.com/signadot/feedxml/ir"
)

func kv(k string, v *ir.Node) ir.KeyVal { return ir.KeyVal{Key: k, Val: v} }

func obj(kvs ...ir.KeyVal) *ir.Node { return ir.FromKeyVals(kvs) }

type header struct {
	Merchant string
}

type ack struct {
	ID     int64
	Status string
	Note   *string
}

func orderAck(h header, a ack) (envelope.Data, error) {
	if a.ID == 0 {
		return envelope.Data{}, errors.New("missing id")
	}
	note := ir.Absent()
	if a.Note != nil {
		note = ir.FromString(*a.Note)
	}
	return envelope.Data{
		MerchantIdentifier: h.Merchant,
		MessageType:        "OrderAck",
		Message: ir.FromSlice([]*ir.Node{obj(
			kv("MessageID", ir.FromInt(a.ID)),
			kv("Body", obj(
				kv("Status", ir.FromString(a.Status)),
				kv("Note", note),
			)),
		)}),
	}, nil
}

const wantOrderAck = `<?xml version="1.0" encoding="ISO-8859-1"?>` +
	`<AmazonEnvelope xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:noNamespaceSchemaLocation="amzn-envelope.xsd">` +
	`<Header><DocumentVersion>1.01</DocumentVersion><MerchantIdentifier>M1</MerchantIdentifier></Header>` +
	`<MessageType>OrderAck</MessageType>` +
	`<Message><MessageID>1</MessageID><Body><Status>Success</Status></Body></Message>` +
	`</AmazonEnvelope>`

func TestCreateEnvelope(t *testing.T) {
	build := CreateEnvelope(orderAck)
	got, err := build(header{Merchant: "M1"}, ack{ID: 1, Status: "Success"})
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != wantOrderAck {
		t.Errorf("got\n%s\nwant\n%s", got, wantOrderAck)
	}
	_, err = build(header{Merchant: "M1"}, ack{})
	if err == nil || !strings.Contains(err.Error(), "missing id") {
		t.Errorf("expected message error, got %v", err)
	}
}

func TestCreateXML(t *testing.T) {
	node := envelope.New(envelope.Data{
		MerchantIdentifier: "M1",
		MessageType:        "OrderAck",
		Message: ir.FromSlice([]*ir.Node{obj(
			kv("MessageID", ir.FromInt(1)),
			kv("Body", obj(kv("Status", ir.FromString("Success")))),
			kv("Empty", obj()),
		)}),
	})
	buf := bytes.NewBuffer(nil)
	if err := CreateXML(node, buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != wantOrderAck {
		t.Errorf("got\n%s", buf.String())
	}
}

func TestCreateXMLOptions(t *testing.T) {
	keys := ir.Keys{Attr: "$", Text: "#text"}
	build := CreateEnvelope(orderAck,
		WithKeys(keys),
		WithEnvelopeOptions(envelope.SchemaLocation("ack.xsd")),
		WithEncodeOptions(encode.Pretty(true), encode.Charset("UTF-8")),
	)
	got, err := build(header{Merchant: "Mé"}, ack{ID: 7, Status: "Success"})
	if err != nil {
		t.Fatal(err)
	}
	s := string(got)
	for _, frag := range []string{
		`encoding="UTF-8"`,
		`xsi:noNamespaceSchemaLocation="ack.xsd"`,
		"<MerchantIdentifier>Mé</MerchantIdentifier>",
		"<MessageID>7</MessageID>",
		"\n",
	} {
		if !strings.Contains(s, frag) {
			t.Errorf("missing %q in\n%s", frag, s)
		}
	}
}

func TestCreateXMLVacantMessage(t *testing.T) {
	node := obj(
		kv("Message", ir.FromSlice([]*ir.Node{obj(kv("A", ir.Absent()))})),
		kv("T", ir.FromString("x")),
	)
	buf := bytes.NewBuffer(nil)
	if err := CreateXML(node, buf); err != nil {
		t.Fatal(err)
	}
	want := `<?xml version="1.0" encoding="ISO-8859-1"?><AmazonEnvelope><T>x</T></AmazonEnvelope>`
	if buf.String() != want {
		t.Errorf("got\n%s\nwant\n%s", buf.String(), want)
	}
}
