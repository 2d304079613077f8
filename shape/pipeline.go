package shape

import (
	"log/slog"

	"github.com/signadot/feedxml/debug"
	"github.com/signadot/feedxml/ir"
)

const (
	StripUndefinedStage     = "strip-undefined"
	StripEmptyStage         = "strip-empty"
	CollapseDuplicatesStage = "collapse-duplicates"
	EnsureArraysStage       = "ensure-arrays"
)

type Stage struct {
	Name string
	Func Func
}

// Stages returns the default stages in the order they must run.
func Stages(keys ir.Keys) []Stage {
	return []Stage{
		{Name: StripUndefinedStage, Func: StripUndefined},
		{Name: StripEmptyStage, Func: StripEmpty},
		{Name: CollapseDuplicatesStage, Func: CollapseDuplicates(keys)},
		{Name: EnsureArraysStage, Func: EnsureArrays(keys)},
	}
}

// Pipeline runs stages left to right. It holds no mutable state and may be
// shared between goroutines.
type Pipeline struct {
	keys   ir.Keys
	stages []Stage
	log    *slog.Logger
}

type PipelineOption func(*Pipeline)

func WithKeys(keys ir.Keys) PipelineOption {
	return func(p *Pipeline) { p.keys = keys }
}

func WithLogger(l *slog.Logger) PipelineOption {
	return func(p *Pipeline) { p.log = l }
}

// WithStages replaces the default stages.
func WithStages(stages ...Stage) PipelineOption {
	return func(p *Pipeline) { p.stages = stages }
}

func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{keys: ir.DefaultKeys()}
	for _, opt := range opts {
		opt(p)
	}
	if p.stages == nil {
		p.stages = Stages(p.keys)
	}
	if p.log == nil {
		p.log = slog.New(slog.DiscardHandler)
	}
	return p
}

func (p *Pipeline) Keys() ir.Keys {
	return p.keys
}

func (p *Pipeline) Run(node *ir.Node) *ir.Node {
	for i := range p.stages {
		node = p.run(&p.stages[i], node)
	}
	return node
}

type StageResult struct {
	Name string
	Node *ir.Node
}

// Trace runs the pipeline and returns the output of every stage.
func (p *Pipeline) Trace(node *ir.Node) []StageResult {
	res := make([]StageResult, len(p.stages))
	for i := range p.stages {
		node = p.run(&p.stages[i], node)
		res[i] = StageResult{Name: p.stages[i].Name, Node: node}
	}
	return res
}

func (p *Pipeline) run(s *Stage, node *ir.Node) *ir.Node {
	res := s.Func(node)
	p.log.Debug("stage", "name", s.Name, "in", size(node), "out", size(res))
	if debug.Stages() {
		debug.Logf("%s:\n%v\n", s.Name, res)
	}
	return res
}

var defaultPipeline = NewPipeline()

// Normalize runs the default pipeline with the default keys.
func Normalize(node *ir.Node) *ir.Node {
	return defaultPipeline.Run(node)
}

func size(node *ir.Node) int {
	if node == nil {
		return 0
	}
	n := 1
	for _, v := range node.Values {
		n += size(v)
	}
	return n
}
