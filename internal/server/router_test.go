package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blkoutuk/ivor/internal/api/handlers"
	"github.com/blkoutuk/ivor/internal/content"
	"github.com/blkoutuk/ivor/internal/index"
	"github.com/blkoutuk/ivor/internal/service"
	"github.com/blkoutuk/ivor/internal/store"
)

type MockChatPipeline struct {
	mock.Mock
}

func (m *MockChatPipeline) Respond(ctx context.Context, query, callerID string) service.PipelineResult {
	args := m.Called(ctx, query, callerID)
	return args.Get(0).(service.PipelineResult)
}

func newTestRouter(t *testing.T, pipeline handlers.ChatPipeline) http.Handler {
	t.Helper()

	provider := content.NewStaticProvider()
	knowledge, err := provider.LoadKnowledgeItems(context.Background())
	require.NoError(t, err)
	resources, err := provider.LoadResourceItems(context.Background())
	require.NoError(t, err)

	idx := index.NewSimilarityIndex()
	idx.Upsert(index.ContentDocuments(knowledge, resources))

	return NewRouter(RouterConfig{
		ChatHandler:   handlers.NewChatHandler(pipeline),
		SearchHandler: handlers.NewSearchHandler(store.NewKnowledgeStore(knowledge, resources), idx),
	})
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t, new(MockChatPipeline))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_Chat(t *testing.T) {
	pipeline := new(MockChatPipeline)
	pipeline.On("Respond", mock.Anything, "hello", "u1").
		Return(service.PipelineResult{Success: true, Message: "hi there"})

	router := newTestRouter(t, pipeline)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message": "hello", "user_id": "u1"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "hi there", resp.Message)
	pipeline.AssertExpectations(t)
}

func TestRouter_Search(t *testing.T) {
	router := newTestRouter(t, new(MockChatPipeline))

	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"query": "mental health"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Black Thrive BQC")
}

func TestRouter_IndexStats(t *testing.T) {
	router := newTestRouter(t, new(MockChatPipeline))

	req := httptest.NewRequest(http.MethodGet, "/index/stats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count"`)
}

func TestRouter_BodyTooLarge(t *testing.T) {
	router := newTestRouter(t, new(MockChatPipeline))

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader("{}"))
	req.ContentLength = 10 * 1024 * 1024
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
