package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/blkoutuk/ivor/internal/domain"
	"github.com/blkoutuk/ivor/internal/index"
	"github.com/blkoutuk/ivor/internal/store"
)

// MockJobProcessor is a mock implementation of JobProcessor
type MockJobProcessor struct {
	mock.Mock
}

func (m *MockJobProcessor) ProcessJobs(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockContentProvider is a mock implementation of content.Provider
type MockContentProvider struct {
	mock.Mock
}

func (m *MockContentProvider) LoadKnowledgeItems(ctx context.Context) ([]*domain.KnowledgeItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.KnowledgeItem), args.Error(1)
}

func (m *MockContentProvider) LoadResourceItems(ctx context.Context) ([]*domain.ResourceItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ResourceItem), args.Error(1)
}

// TestWorker_StartStop tests the worker start and stop functionality
func TestWorker_StartStop(t *testing.T) {
	mockProcessor := new(MockJobProcessor)
	mockProcessor.On("ProcessJobs", mock.Anything).Return(nil)

	worker := NewWorker(mockProcessor, 100*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		worker.Start(ctx)
	}()

	// Let it tick a couple of times
	time.Sleep(250 * time.Millisecond)

	worker.Stop()
	wg.Wait()

	mockProcessor.AssertCalled(t, "ProcessJobs", mock.Anything)
}

// TestWorker_ContextCancellation tests worker stops on context cancellation
func TestWorker_ContextCancellation(t *testing.T) {
	mockProcessor := new(MockJobProcessor)
	mockProcessor.On("ProcessJobs", mock.Anything).Return(nil)

	worker := NewWorker(mockProcessor, 100*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		worker.Start(ctx)
	}()

	time.Sleep(150 * time.Millisecond)

	cancel()
	wg.Wait()

	mockProcessor.AssertCalled(t, "ProcessJobs", mock.Anything)
}

func TestContentRefresher_ReloadsStoreAndIndex(t *testing.T) {
	knowledge := []*domain.KnowledgeItem{
		{
			ID:       "kb-fresh",
			Question: "Where can I find housing advice?",
			Answer:   "Local housing charities offer drop-in advice sessions.",
			Category: "housing",
			Priority: domain.PriorityHigh,
			Active:   true,
		},
	}
	resources := []*domain.ResourceItem{
		{
			ID:           "res-fresh",
			Name:         "Community Listening Service",
			Description:  "Peer support phone line",
			Category:     "mental health",
			Organization: "BLKOUT",
			Cost:         domain.CostFree,
			Active:       true,
		},
	}

	mockProvider := new(MockContentProvider)
	mockProvider.On("LoadKnowledgeItems", mock.Anything).Return(knowledge, nil)
	mockProvider.On("LoadResourceItems", mock.Anything).Return(resources, nil)

	knowledgeStore := store.NewKnowledgeStore(nil, nil)
	similarityIndex := index.NewSimilarityIndex()

	refresher := NewContentRefresher(mockProvider, knowledgeStore, similarityIndex)
	err := refresher.ProcessJobs(context.Background())

	assert.NoError(t, err)
	assert.Len(t, knowledgeStore.KnowledgeItems(), 1)
	assert.Len(t, knowledgeStore.ResourceItems(), 1)
	assert.Equal(t, 2, similarityIndex.Stats().Count)
	mockProvider.AssertExpectations(t)
}

func TestContentRefresher_KnowledgeLoadFailure(t *testing.T) {
	mockProvider := new(MockContentProvider)
	mockProvider.On("LoadKnowledgeItems", mock.Anything).Return(nil, errors.New("connection refused"))

	existing := []*domain.KnowledgeItem{{ID: "kb-old", Question: "old", Answer: "old", Active: true}}
	knowledgeStore := store.NewKnowledgeStore(existing, nil)

	refresher := NewContentRefresher(mockProvider, knowledgeStore, index.NewSimilarityIndex())
	err := refresher.ProcessJobs(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load knowledge items")
	// Previous collection stays in place
	assert.Len(t, knowledgeStore.KnowledgeItems(), 1)
	mockProvider.AssertNotCalled(t, "LoadResourceItems", mock.Anything)
}

func TestContentRefresher_ResourceLoadFailure(t *testing.T) {
	mockProvider := new(MockContentProvider)
	mockProvider.On("LoadKnowledgeItems", mock.Anything).Return([]*domain.KnowledgeItem{}, nil)
	mockProvider.On("LoadResourceItems", mock.Anything).Return(nil, errors.New("connection refused"))

	existing := []*domain.ResourceItem{{ID: "res-old", Name: "old", Active: true}}
	knowledgeStore := store.NewKnowledgeStore(nil, existing)

	refresher := NewContentRefresher(mockProvider, knowledgeStore, index.NewSimilarityIndex())
	err := refresher.ProcessJobs(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load resource items")
	assert.Len(t, knowledgeStore.ResourceItems(), 1)
}

func TestContentRefresher_RepeatedRefreshIsIdempotent(t *testing.T) {
	knowledge := []*domain.KnowledgeItem{
		{ID: "kb-1", Question: "q", Answer: "a", Active: true},
	}

	mockProvider := new(MockContentProvider)
	mockProvider.On("LoadKnowledgeItems", mock.Anything).Return(knowledge, nil)
	mockProvider.On("LoadResourceItems", mock.Anything).Return([]*domain.ResourceItem{}, nil)

	knowledgeStore := store.NewKnowledgeStore(nil, nil)
	similarityIndex := index.NewSimilarityIndex()

	refresher := NewContentRefresher(mockProvider, knowledgeStore, similarityIndex)
	assert.NoError(t, refresher.ProcessJobs(context.Background()))
	assert.NoError(t, refresher.ProcessJobs(context.Background()))

	assert.Equal(t, 1, similarityIndex.Stats().Count)
}
