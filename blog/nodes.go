package blog

import (
	"context"
	"fmt"
	"strings"

	"github.com/vt0299/Blog-Generation-Agent/graph"
	"github.com/vt0299/Blog-Generation-Agent/graph/model"
)

// Node names used in graph topologies.
const (
	NodeTitleCreation     = "title_creation"
	NodeContentGeneration = "content_generation"
)

const titlePrompt = "You are an expert blog content writer. Use Markdown formatting. " +
	"Generate a blog title for the topic %q. The title should be creative and SEO friendly. " +
	"Respond with the title only."

const contentPrompt = "You are an expert blog content writer. Use Markdown formatting. " +
	"Generate detailed blog content with a detailed section breakdown for the topic %q."

// Nodes holds the blog workflow nodes, closed over one ChatModel.
// Each node makes exactly one outbound model call per invocation; there
// are no retries and no caching.
type Nodes struct {
	llm model.ChatModel
}

// NewNodes creates the blog nodes backed by the given model.
func NewNodes(llm model.ChatModel) *Nodes {
	return &Nodes{llm: llm}
}

// TitleCreation generates the blog title from the topic.
//
// When the incoming state has no topic the node skips without calling
// the model; the run continues with unchanged state. This mirrors the
// topic check every node performs independently.
func (n *Nodes) TitleCreation(ctx context.Context, state State) graph.NodeResult[State] {
	if state.Topic == "" {
		return graph.NodeResult[State]{Skip: true}
	}

	out, err := n.llm.Chat(ctx, []model.Message{
		{Role: model.RoleSystem, Content: fmt.Sprintf(titlePrompt, state.Topic)},
	})
	if err != nil {
		return graph.NodeResult[State]{Err: err}
	}

	return graph.NodeResult[State]{
		Delta: State{Blog: &Blog{Title: strings.TrimSpace(out.Text)}},
	}
}

// ContentGeneration generates the blog body from the topic.
//
// The incoming title is carried forward explicitly into the delta,
// because the reducer replaces the blog wholesale. A missing title
// means the title node was skipped or never wired upstream; that is a
// wiring defect and fails the run with a *MissingFieldError.
func (n *Nodes) ContentGeneration(ctx context.Context, state State) graph.NodeResult[State] {
	if state.Topic == "" {
		return graph.NodeResult[State]{Skip: true}
	}
	if state.Blog == nil || state.Blog.Title == "" {
		return graph.NodeResult[State]{
			Err: &MissingFieldError{Node: NodeContentGeneration, Field: "blog.title"},
		}
	}

	out, err := n.llm.Chat(ctx, []model.Message{
		{Role: model.RoleSystem, Content: fmt.Sprintf(contentPrompt, state.Topic)},
	})
	if err != nil {
		return graph.NodeResult[State]{Err: err}
	}

	return graph.NodeResult[State]{
		Delta: State{Blog: &Blog{Title: state.Blog.Title, Content: out.Text}},
	}
}
