//go:build e2e

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/blkoutuk/ivor/internal/api/handlers"
	"github.com/blkoutuk/ivor/internal/cache"
	"github.com/blkoutuk/ivor/internal/content"
	"github.com/blkoutuk/ivor/internal/index"
	"github.com/blkoutuk/ivor/internal/limiter"
	"github.com/blkoutuk/ivor/internal/server"
	"github.com/blkoutuk/ivor/internal/service"
	"github.com/blkoutuk/ivor/internal/store"
)

// defaultScriptedResponse is what the scripted generator answers with when
// no override is set.
const defaultScriptedResponse = "Here is some community support information for you."

// scriptedGenerator stands in for the OpenAI client so end-to-end runs never
// leave the process. It records every system prompt it sees.
type scriptedGenerator struct {
	mu            sync.Mutex
	response      string
	err           error
	systemPrompts []string
}

func (g *scriptedGenerator) Generate(ctx context.Context, system, user string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.systemPrompts = append(g.systemPrompts, system)
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

// Calls returns how many times Generate has been invoked.
func (g *scriptedGenerator) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.systemPrompts)
}

// LastSystemPrompt returns the most recent system prompt, or "".
func (g *scriptedGenerator) LastSystemPrompt() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.systemPrompts) == 0 {
		return ""
	}
	return g.systemPrompts[len(g.systemPrompts)-1]
}

// Fail makes every subsequent Generate call return err.
func (g *scriptedGenerator) Fail(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.err = err
}

// E2ETestEnv holds all resources needed for E2E tests
type E2ETestEnv struct {
	T            *testing.T
	Ctx          context.Context
	ServerURL    string
	ServerCloser func()
	Generator    *scriptedGenerator
	HTTPClient   *http.Client
}

// SetupE2EEnv starts a full in-process server over the static content
// fixtures, with the generator scripted.
func SetupE2EEnv(t *testing.T) *E2ETestEnv {
	ctx := context.Background()

	knowledgeStore, err := store.NewKnowledgeStoreFromProvider(ctx, content.NewStaticProvider())
	if err != nil {
		t.Fatalf("failed to load content: %v", err)
	}

	similarityIndex := index.NewSimilarityIndex()
	similarityIndex.Upsert(index.ContentDocuments(knowledgeStore.KnowledgeItems(), knowledgeStore.ResourceItems()))

	generator := &scriptedGenerator{response: defaultScriptedResponse}

	pipeline := service.NewPipeline(
		limiter.NewRateLimiter(),
		cache.NewResponseCache(),
		service.NewContextBuilder(service.LocalIndex{Index: similarityIndex}),
		generator,
		knowledgeStore,
	)

	router := server.NewRouter(server.RouterConfig{
		ChatHandler:   handlers.NewChatHandler(pipeline),
		SearchHandler: handlers.NewSearchHandler(knowledgeStore, similarityIndex),
	})

	port, err := getFreePort()
	if err != nil {
		t.Fatalf("failed to get free port: %v", err)
	}

	serverURL, serverCloser := startServer(t, router, port)

	return &E2ETestEnv{
		T:            t,
		Ctx:          ctx,
		ServerURL:    serverURL,
		ServerCloser: serverCloser,
		Generator:    generator,
		HTTPClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Cleanup releases all resources
func (e *E2ETestEnv) Cleanup() {
	if e.ServerCloser != nil {
		e.ServerCloser()
	}
}

// PostJSON performs a POST request and returns the status code and raw body.
func (e *E2ETestEnv) PostJSON(path string, body interface{}) (int, []byte, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to marshal body: %w", err)
	}

	resp, err := e.HTTPClient.Post(e.ServerURL+path, "application/json", bytes.NewReader(jsonData))
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, respBody, nil
}

// GetJSON performs a GET request and returns the status code and raw body.
func (e *E2ETestEnv) GetJSON(path string) (int, []byte, error) {
	resp, err := e.HTTPClient.Get(e.ServerURL + path)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, respBody, nil
}

// Chat posts a message and decodes the chat response.
func (e *E2ETestEnv) Chat(message, userID string) (int, handlers.ChatResponse, error) {
	status, body, err := e.PostJSON("/chat", handlers.ChatRequest{Message: message, UserID: userID})
	if err != nil {
		return 0, handlers.ChatResponse{}, err
	}

	var chat handlers.ChatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return status, handlers.ChatResponse{}, fmt.Errorf("failed to decode chat response: %w", err)
	}
	return status, chat, nil
}

// startServer starts the HTTP server on the given port
func startServer(t *testing.T, handler http.Handler, port int) (string, func()) {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: handler,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	serverURL := fmt.Sprintf("http://localhost:%d", port)
	waitForServer(t, serverURL, 10*time.Second)

	return serverURL, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}
}

func waitForServer(t *testing.T, url string, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	t.Fatalf("server did not start within %v", timeout)
}

func getFreePort() (int, error) {
	addr, err := net.ResolveTCPAddr("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}

	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return 0, err
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}
