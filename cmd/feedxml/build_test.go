package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/feedxml/eval"
	"github.com/signadot/feedxml/ir"
	"github.com/signadot/feedxml/parse"
	"github.com/signadot/feedxml/shape"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func TestEnvelopeData(t *testing.T) {
	cfg := &BuildConfig{MainConfig: &MainConfig{}, Env: eval.Env{"id": 7}}
	doc := mustParse(t, `{"MerchantIdentifier": "M1", "MessageType": "OrderAck", "Message": {"MessageID": ".[id]"}}`)
	patch := mustParse(t, `[{"op": "add", "path": "/Message/Status", "value": "Success"}]`)
	data, err := cfg.envelopeData(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	if data.MerchantIdentifier != "M1" || data.MessageType != "OrderAck" {
		t.Errorf("got %+v", data)
	}
	want := ir.FromKeyVals([]ir.KeyVal{
		{Key: "MessageID", Val: ir.FromInt(7)},
		{Key: "Status", Val: ir.FromString("Success")},
	})
	if !ir.Equal(data.Message, want) {
		t.Errorf("message %v", data.Message)
	}
}

func TestEnvelopeDataPayloadOnly(t *testing.T) {
	cfg := &BuildConfig{MainConfig: &MainConfig{}, Merchant: "M2", Type: "Price"}
	doc := mustParse(t, `{"SKU": "a-1"}`)
	data, err := cfg.envelopeData(doc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if data.MerchantIdentifier != "M2" || data.MessageType != "Price" || !ir.Equal(data.Message, doc) {
		t.Errorf("got %+v", data)
	}
}

func TestEnvOpt(t *testing.T) {
	env := eval.Env{}
	f := envOptTypeFunc(env)
	if _, err := f(nil, "order.id=3"); err != nil {
		t.Fatal(err)
	}
	if env["order"].(map[string]any)["id"] != "3" {
		t.Errorf("env %v", env)
	}
	if _, err := f(nil, "novalue"); err == nil {
		t.Errorf("expected usage error")
	}
}

func TestWriteTrace(t *testing.T) {
	doc := mustParse(t, "A:\n  B: null\n  C: x\nD: []\n")
	buf := bytes.NewBuffer(nil)
	if err := writeTrace(buf, shape.NewPipeline().Trace(doc), doc, false, nil); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, frag := range []string{
		"# strip-undefined\n",
		"-  B: null\n",
		"# strip-empty\n",
		"-D: []\n",
		"# collapse-duplicates\n (unchanged)\n",
		"# ensure-arrays\n",
	} {
		if !strings.Contains(got, frag) {
			t.Errorf("missing %q in\n%s", frag, got)
		}
	}
}
