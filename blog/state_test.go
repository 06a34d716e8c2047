package blog

import "testing"

func TestReduce_MergeLaw(t *testing.T) {
	// Merging {blog:{title:X}} onto {topic:T} keeps the topic;
	// a later {blog:{title:X,content:Y}} replaces the blog wholesale.
	state := State{Topic: "rust vs go"}

	state = Reduce(state, State{Blog: &Blog{Title: "Rust vs Go: A Deep Dive"}})
	if state.Topic != "rust vs go" {
		t.Errorf("topic lost during merge: %q", state.Topic)
	}
	if state.Blog == nil || state.Blog.Title != "Rust vs Go: A Deep Dive" {
		t.Fatalf("title not merged: %+v", state.Blog)
	}

	state = Reduce(state, State{Blog: &Blog{Title: "Rust vs Go: A Deep Dive", Content: "## Intro\n..."}})
	if state.Topic != "rust vs go" {
		t.Errorf("topic lost during second merge: %q", state.Topic)
	}
	if state.Blog.Title != "Rust vs Go: A Deep Dive" {
		t.Errorf("title lost during second merge: %q", state.Blog.Title)
	}
	if state.Blog.Content != "## Intro\n..." {
		t.Errorf("content not merged: %q", state.Blog.Content)
	}
}

func TestReduce_ShallowReplace(t *testing.T) {
	// The blog is replaced wholesale, not deep-merged: a delta whose
	// blog has no title wipes the title. Carry-forward is the content
	// node's job, not the reducer's.
	state := State{Topic: "t", Blog: &Blog{Title: "kept?"}}
	state = Reduce(state, State{Blog: &Blog{Content: "body"}})

	if state.Blog.Title != "" {
		t.Errorf("reducer deep-merged the blog; title should be gone, got %q", state.Blog.Title)
	}
	if state.Blog.Content != "body" {
		t.Errorf("content not set: %q", state.Blog.Content)
	}
}

func TestReduce_EmptyDelta(t *testing.T) {
	state := State{Topic: "t", Blog: &Blog{Title: "title"}}
	merged := Reduce(state, State{})

	if merged.Topic != "t" || merged.Blog == nil || merged.Blog.Title != "title" {
		t.Errorf("empty delta changed state: %+v", merged)
	}
}
