// Package blog implements the blog-generation workflow: state, nodes,
// and topology builders on top of the graph engine.
package blog

// Blog is the generated post. Title is set by the title node; Content
// is only ever set alongside an existing Title.
type Blog struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
}

// State is the mutable data carrier threaded through the workflow.
// The caller creates it with Topic populated; each node contributes a
// partial update merged by Reduce. Exactly one State instance flows
// through one run.
type State struct {
	Topic string `json:"topic,omitempty"`
	Blog  *Blog  `json:"blog,omitempty"`
}

// Reduce merges a node's partial update into the running state.
//
// The merge is shallow at the top level: a delta that carries a Topic
// replaces the topic, a delta that carries a Blog replaces the blog
// wholesale. The blog is deliberately NOT deep-merged; the content node
// carries the title forward explicitly, and upgrading this to a deep
// merge would mask wiring defects that carry-forward is meant to expose.
func Reduce(prev, delta State) State {
	if delta.Topic != "" {
		prev.Topic = delta.Topic
	}
	if delta.Blog != nil {
		prev.Blog = delta.Blog
	}
	return prev
}
