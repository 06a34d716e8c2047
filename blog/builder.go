package blog

import (
	"fmt"

	"github.com/vt0299/Blog-Generation-Agent/graph"
	"github.com/vt0299/Blog-Generation-Agent/graph/emit"
	"github.com/vt0299/Blog-Generation-Agent/graph/model"
)

// Usecase selects a workflow topology. The set is closed: Setup fails
// loudly on anything it does not recognize instead of compiling a
// partial definition.
type Usecase int

const (
	// UsecaseTopic generates a post from a single topic string:
	// Start -> title_creation -> content_generation -> End.
	UsecaseTopic Usecase = iota
)

// String returns the usecase's wire name.
func (u Usecase) String() string {
	switch u {
	case UsecaseTopic:
		return "topic"
	default:
		return fmt.Sprintf("Usecase(%d)", int(u))
	}
}

// ParseUsecase maps a wire name to a Usecase.
func ParseUsecase(s string) (Usecase, error) {
	switch s {
	case "topic":
		return UsecaseTopic, nil
	default:
		return 0, &graph.ValidationError{Code: "UNKNOWN_USECASE", Message: "unknown usecase: " + s}
	}
}

// GraphBuilder assembles blog workflow topologies. It holds the model
// and observability hooks and builds a fresh definition per Setup call;
// nothing is constructed at package load time.
type GraphBuilder struct {
	llm     model.ChatModel
	emitter emit.Emitter
	metrics *graph.Metrics
}

// NewGraphBuilder creates a GraphBuilder. emitter and metrics may be
// nil to disable events and collection.
func NewGraphBuilder(llm model.ChatModel, emitter emit.Emitter, metrics *graph.Metrics) *GraphBuilder {
	return &GraphBuilder{llm: llm, emitter: emitter, metrics: metrics}
}

// BuildTopicGraph constructs the two-node linear chain for topic-driven
// generation. The returned builder is not yet compiled.
func (g *GraphBuilder) BuildTopicGraph() (*graph.Builder[State], error) {
	nodes := NewNodes(g.llm)
	b := graph.NewBuilder(Reduce, g.emitter, g.metrics)

	if err := b.AddNode(NodeTitleCreation, graph.NodeFunc[State](nodes.TitleCreation)); err != nil {
		return nil, err
	}
	if err := b.AddNode(NodeContentGeneration, graph.NodeFunc[State](nodes.ContentGeneration)); err != nil {
		return nil, err
	}

	if err := b.AddEdge(graph.Start, NodeTitleCreation); err != nil {
		return nil, err
	}
	if err := b.AddEdge(NodeTitleCreation, NodeContentGeneration); err != nil {
		return nil, err
	}
	if err := b.AddEdge(NodeContentGeneration, graph.End); err != nil {
		return nil, err
	}

	return b, nil
}

// Setup builds and compiles the topology for the given usecase.
// An unrecognized usecase returns a *graph.ValidationError.
func (g *GraphBuilder) Setup(usecase Usecase) (*graph.CompiledGraph[State], error) {
	switch usecase {
	case UsecaseTopic:
		b, err := g.BuildTopicGraph()
		if err != nil {
			return nil, err
		}
		return b.Compile()
	default:
		return nil, &graph.ValidationError{
			Code:    "UNKNOWN_USECASE",
			Message: "unknown usecase: " + usecase.String(),
		}
	}
}
