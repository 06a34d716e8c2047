// Command blogctl generates a blog post from a topic using an LLM-backed
// workflow graph.
//
// Usage:
//
//	blogctl -topic "rust vs go"
//	blogctl -topic "rust vs go" -json
//	blogctl -list 10
//
// Configuration is read from the environment (and a .env file when
// present); see Config for the recognized variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vt0299/Blog-Generation-Agent/archive"
	"github.com/vt0299/Blog-Generation-Agent/blog"
	"github.com/vt0299/Blog-Generation-Agent/graph"
	"github.com/vt0299/Blog-Generation-Agent/graph/emit"
	"github.com/vt0299/Blog-Generation-Agent/graph/model"
	"github.com/vt0299/Blog-Generation-Agent/graph/model/anthropic"
	"github.com/vt0299/Blog-Generation-Agent/graph/model/google"
	"github.com/vt0299/Blog-Generation-Agent/graph/model/groq"
	"github.com/vt0299/Blog-Generation-Agent/graph/model/openai"
)

func main() {
	topic := flag.String("topic", "", "topic to generate a blog post for")
	usecaseName := flag.String("usecase", "topic", "workflow topology to run")
	jsonLog := flag.Bool("json", false, "emit workflow events as JSONL instead of text")
	quiet := flag.Bool("quiet", false, "suppress workflow events")
	list := flag.Int("list", 0, "list the N most recent archived posts and exit")
	flag.Parse()

	if err := run(*topic, *usecaseName, *jsonLog, *quiet, *list); err != nil {
		log.Fatal(err)
	}
}

func run(topic, usecaseName string, jsonLog, quiet bool, list int) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if list > 0 {
		return listPosts(ctx, cfg, list)
	}

	if topic == "" {
		return fmt.Errorf("-topic is required")
	}

	usecase, err := blog.ParseUsecase(usecaseName)
	if err != nil {
		return err
	}

	llm, err := newChatModel(ctx, cfg)
	if err != nil {
		return err
	}

	var emitter emit.Emitter
	switch {
	case quiet:
		emitter = emit.NewNullEmitter()
	default:
		emitter = emit.NewLogEmitter(os.Stderr, jsonLog)
	}

	var metrics *graph.Metrics
	if cfg.MetricsAddr != "" {
		registry := prometheus.NewRegistry()
		metrics = graph.NewMetrics(registry)
		go serveMetrics(cfg.MetricsAddr, registry)
	}

	compiled, err := blog.NewGraphBuilder(llm, emitter, metrics).Setup(usecase)
	if err != nil {
		return err
	}

	runID := "run-" + uuid.NewString()
	final, err := compiled.Run(ctx, runID, blog.State{Topic: topic})
	if err != nil {
		return err
	}
	if final.Blog == nil {
		return fmt.Errorf("run %s produced no blog", runID)
	}

	fmt.Printf("# %s\n\n%s\n", final.Blog.Title, final.Blog.Content)

	if cfg.ArchiveDSN != "" {
		if err := archivePost(ctx, cfg, runID, final); err != nil {
			return err
		}
	}

	return nil
}

// newChatModel constructs the provider selected by the configuration.
func newChatModel(ctx context.Context, cfg *Config) (model.ChatModel, error) {
	switch cfg.Provider {
	case "groq":
		return groq.New(cfg.GroqKey, cfg.Model)
	case "openai":
		return openai.New(cfg.OpenAIKey, cfg.Model)
	case "anthropic":
		return anthropic.New(cfg.AnthropicKey, cfg.Model)
	case "google":
		return google.New(ctx, cfg.GoogleKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

func openStore(cfg *Config) (archive.Store, error) {
	switch cfg.ArchiveDriver {
	case "mysql":
		return archive.NewMySQLStore(cfg.ArchiveDSN)
	default:
		return archive.NewSQLiteStore(cfg.ArchiveDSN)
	}
}

func archivePost(ctx context.Context, cfg *Config, runID string, final blog.State) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.SavePost(ctx, archive.Post{
		RunID:     runID,
		Topic:     final.Topic,
		Title:     final.Blog.Title,
		Content:   final.Blog.Content,
		CreatedAt: time.Now().UTC(),
	})
}

func listPosts(ctx context.Context, cfg *Config, limit int) error {
	if cfg.ArchiveDSN == "" {
		return fmt.Errorf("BLOG_ARCHIVE_DSN is required to list archived posts")
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	posts, err := store.ListPosts(ctx, limit)
	if err != nil {
		return err
	}
	for _, post := range posts {
		fmt.Printf("%s\t%s\t%q\t%s\n",
			post.CreatedAt.Format(time.RFC3339), post.RunID, post.Title, post.Topic)
	}
	return nil
}

func serveMetrics(addr string, registry *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	log.Printf("metrics listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("metrics server error: %v", err)
	}
}
