package content

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blkoutuk/ivor/internal/domain"
)

type fakeObjectGetter struct {
	objects map[string]string
}

func (f *fakeObjectGetter) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	body, ok := f.objects[*params.Key]
	if !ok {
		return nil, fmt.Errorf("NoSuchKey: %s", *params.Key)
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestS3Provider_LoadKnowledgeItems(t *testing.T) {
	getter := &fakeObjectGetter{objects: map[string]string{
		"knowledge.json": `[
			{
				"id": "kb-1",
				"question": "mental health support",
				"answer": "Black Thrive BQC provides culturally competent services.",
				"category": "mental health",
				"organization": "Black Thrive BQC",
				"tags": ["mental health", "therapy"],
				"priority": "high",
				"region": "London",
				"active": true,
				"last_updated": "2024-07-01T00:00:00Z"
			}
		]`,
	}}

	provider := newS3ProviderWithClient(getter, S3Config{Bucket: "ivor-content"})

	items, err := provider.LoadKnowledgeItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "kb-1", items[0].ID)
	assert.Equal(t, domain.PriorityHigh, items[0].Priority)
	assert.Equal(t, []string{"mental health", "therapy"}, items[0].Tags)
	assert.True(t, items[0].Active)
}

func TestS3Provider_LoadResourceItems(t *testing.T) {
	getter := &fakeObjectGetter{objects: map[string]string{
		"resources.json": `[
			{
				"id": "res-1",
				"name": "Black Trans Hub Support Services",
				"description": "Peer support and advocacy",
				"category": "trans support",
				"organization": "Black Trans Hub",
				"cost": "free",
				"target_audience": ["Black trans individuals"],
				"accessibility": ["Trans-friendly spaces"],
				"region": "London, Birmingham",
				"cultural_competency": ["Trans experience understanding"],
				"specialties": ["Peer support groups"],
				"active": true,
				"last_updated": "2024-07-01T00:00:00Z"
			}
		]`,
	}}

	provider := newS3ProviderWithClient(getter, S3Config{Bucket: "ivor-content"})

	items, err := provider.LoadResourceItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domain.CostFree, items[0].Cost)
	assert.Equal(t, "Black Trans Hub", items[0].Organization)
}

func TestS3Provider_MissingObject(t *testing.T) {
	getter := &fakeObjectGetter{objects: map[string]string{}}
	provider := newS3ProviderWithClient(getter, S3Config{Bucket: "ivor-content"})

	_, err := provider.LoadKnowledgeItems(context.Background())
	assert.ErrorContains(t, err, "failed to fetch content object")
}

func TestS3Provider_MalformedJSON(t *testing.T) {
	getter := &fakeObjectGetter{objects: map[string]string{
		"knowledge.json": `{"not": "an array"`,
	}}
	provider := newS3ProviderWithClient(getter, S3Config{Bucket: "ivor-content"})

	_, err := provider.LoadKnowledgeItems(context.Background())
	assert.ErrorContains(t, err, "failed to decode content object")
}

func TestS3Provider_CustomKeys(t *testing.T) {
	getter := &fakeObjectGetter{objects: map[string]string{
		"exports/kb.json": `[]`,
	}}
	provider := newS3ProviderWithClient(getter, S3Config{
		Bucket:       "ivor-content",
		KnowledgeKey: "exports/kb.json",
	})

	items, err := provider.LoadKnowledgeItems(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}
