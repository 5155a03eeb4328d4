package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/blkoutuk/ivor/internal/domain"
)

const (
	defaultKnowledgeKey = "knowledge.json"
	defaultResourcesKey = "resources.json"
)

// S3Config holds configuration for the S3 snapshot provider
type S3Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	KnowledgeKey    string
	ResourcesKey    string
	UsePathStyle    bool
}

// objectGetter is the slice of the S3 API the provider needs.
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Provider loads content collections from JSON snapshots published to an
// S3-compatible bucket.
type S3Provider struct {
	client       objectGetter
	bucket       string
	knowledgeKey string
	resourcesKey string
}

// NewS3Provider creates a provider over an S3-compatible endpoint.
func NewS3Provider(ctx context.Context, cfg S3Config) (*S3Provider, error) {
	customResolver := aws.EndpointResolverWithOptionsFunc(
		func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			if cfg.Endpoint != "" {
				return aws.Endpoint{
					URL:               cfg.Endpoint,
					HostnameImmutable: true,
				}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		},
	)

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
		config.WithEndpointResolverWithOptions(customResolver),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
	})

	return newS3ProviderWithClient(client, cfg), nil
}

func newS3ProviderWithClient(client objectGetter, cfg S3Config) *S3Provider {
	knowledgeKey := cfg.KnowledgeKey
	if knowledgeKey == "" {
		knowledgeKey = defaultKnowledgeKey
	}
	resourcesKey := cfg.ResourcesKey
	if resourcesKey == "" {
		resourcesKey = defaultResourcesKey
	}
	return &S3Provider{
		client:       client,
		bucket:       cfg.Bucket,
		knowledgeKey: knowledgeKey,
		resourcesKey: resourcesKey,
	}
}

// LoadKnowledgeItems fetches and decodes the knowledge snapshot object.
func (p *S3Provider) LoadKnowledgeItems(ctx context.Context) ([]*domain.KnowledgeItem, error) {
	var records []knowledgeRecord
	if err := p.fetchJSON(ctx, p.knowledgeKey, &records); err != nil {
		return nil, err
	}

	items := make([]*domain.KnowledgeItem, 0, len(records))
	for _, rec := range records {
		items = append(items, rec.toDomain())
	}
	return items, nil
}

// LoadResourceItems fetches and decodes the resource snapshot object.
func (p *S3Provider) LoadResourceItems(ctx context.Context) ([]*domain.ResourceItem, error) {
	var records []resourceRecord
	if err := p.fetchJSON(ctx, p.resourcesKey, &records); err != nil {
		return nil, err
	}

	items := make([]*domain.ResourceItem, 0, len(records))
	for _, rec := range records {
		items = append(items, rec.toDomain())
	}
	return items, nil
}

func (p *S3Provider) fetchJSON(ctx context.Context, key string, out interface{}) error {
	resp, err := p.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to fetch content object %q: %w", key, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read content object %q: %w", key, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode content object %q: %w", key, err)
	}
	return nil
}

// knowledgeRecord is the wire shape of a knowledge snapshot entry.
type knowledgeRecord struct {
	ID              string    `json:"id"`
	Question        string    `json:"question"`
	Answer          string    `json:"answer"`
	Category        string    `json:"category"`
	Organization    string    `json:"organization"`
	Tags            []string  `json:"tags"`
	Priority        string    `json:"priority"`
	Region          string    `json:"region"`
	CulturalContext string    `json:"cultural_context,omitempty"`
	Accessibility   string    `json:"accessibility,omitempty"`
	Active          bool      `json:"active"`
	LastUpdated     time.Time `json:"last_updated"`
}

func (r knowledgeRecord) toDomain() *domain.KnowledgeItem {
	return &domain.KnowledgeItem{
		ID:              r.ID,
		Question:        r.Question,
		Answer:          r.Answer,
		Category:        r.Category,
		Organization:    r.Organization,
		Tags:            r.Tags,
		Priority:        domain.Priority(r.Priority),
		Region:          r.Region,
		CulturalContext: r.CulturalContext,
		Accessibility:   r.Accessibility,
		Active:          r.Active,
		LastUpdated:     r.LastUpdated,
	}
}

// resourceRecord is the wire shape of a resource snapshot entry.
type resourceRecord struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Category           string    `json:"category"`
	Organization       string    `json:"organization"`
	ContactEmail       string    `json:"contact_email,omitempty"`
	Website            string    `json:"website,omitempty"`
	Cost               string    `json:"cost"`
	TargetAudience     []string  `json:"target_audience"`
	Accessibility      []string  `json:"accessibility"`
	Region             string    `json:"region"`
	CulturalCompetency []string  `json:"cultural_competency"`
	Specialties        []string  `json:"specialties"`
	ReferralProcess    string    `json:"referral_process,omitempty"`
	WaitingTime        string    `json:"waiting_time,omitempty"`
	Active             bool      `json:"active"`
	LastUpdated        time.Time `json:"last_updated"`
}

func (r resourceRecord) toDomain() *domain.ResourceItem {
	return &domain.ResourceItem{
		ID:                 r.ID,
		Name:               r.Name,
		Description:        r.Description,
		Category:           r.Category,
		Organization:       r.Organization,
		ContactEmail:       r.ContactEmail,
		Website:            r.Website,
		Cost:               domain.Cost(r.Cost),
		TargetAudience:     r.TargetAudience,
		Accessibility:      r.Accessibility,
		Region:             r.Region,
		CulturalCompetency: r.CulturalCompetency,
		Specialties:        r.Specialties,
		ReferralProcess:    r.ReferralProcess,
		WaitingTime:        r.WaitingTime,
		Active:             r.Active,
		LastUpdated:        r.LastUpdated,
	}
}
