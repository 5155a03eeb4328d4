package content

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/blkoutuk/ivor/internal/domain"
)

// PostgresProvider loads content collections from Postgres. The schema is
// managed by golang-migrate (see migrations/).
type PostgresProvider struct {
	pool *pgxpool.Pool
}

// NewPostgresProvider creates a provider over the given connection pool.
func NewPostgresProvider(pool *pgxpool.Pool) *PostgresProvider {
	return &PostgresProvider{pool: pool}
}

// LoadKnowledgeItems returns all knowledge items, active and inactive.
func (p *PostgresProvider) LoadKnowledgeItems(ctx context.Context) ([]*domain.KnowledgeItem, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, question, answer, category, organization, tags, priority,
		        region, cultural_context, accessibility, active, last_updated
		 FROM knowledge_items ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanKnowledgeRows(rows)
}

// LoadResourceItems returns all resource items, active and inactive.
func (p *PostgresProvider) LoadResourceItems(ctx context.Context) ([]*domain.ResourceItem, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, name, description, category, organization, contact_email,
		        website, cost, target_audience, accessibility, region,
		        cultural_competency, specialties, referral_process,
		        waiting_time, active, last_updated
		 FROM resource_items ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanResourceRows(rows)
}

// SeedKnowledgeItem inserts or replaces a knowledge item. Used by the
// content seed command to publish the fixture set.
func (p *PostgresProvider) SeedKnowledgeItem(ctx context.Context, k *domain.KnowledgeItem) error {
	if err := domain.ValidateKnowledgeItem(k); err != nil {
		return err
	}
	_, err := p.pool.Exec(ctx,
		`INSERT INTO knowledge_items (id, question, answer, category, organization, tags,
		        priority, region, cultural_context, accessibility, active, last_updated)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (id) DO UPDATE SET
		        question = EXCLUDED.question,
		        answer = EXCLUDED.answer,
		        category = EXCLUDED.category,
		        organization = EXCLUDED.organization,
		        tags = EXCLUDED.tags,
		        priority = EXCLUDED.priority,
		        region = EXCLUDED.region,
		        cultural_context = EXCLUDED.cultural_context,
		        accessibility = EXCLUDED.accessibility,
		        active = EXCLUDED.active,
		        last_updated = EXCLUDED.last_updated`,
		k.ID, k.Question, k.Answer, k.Category, k.Organization, k.Tags,
		string(k.Priority), k.Region, k.CulturalContext, k.Accessibility, k.Active, k.LastUpdated,
	)
	return err
}

// SeedResourceItem inserts or replaces a resource item.
func (p *PostgresProvider) SeedResourceItem(ctx context.Context, r *domain.ResourceItem) error {
	if err := domain.ValidateResourceItem(r); err != nil {
		return err
	}
	_, err := p.pool.Exec(ctx,
		`INSERT INTO resource_items (id, name, description, category, organization,
		        contact_email, website, cost, target_audience, accessibility, region,
		        cultural_competency, specialties, referral_process, waiting_time,
		        active, last_updated)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		 ON CONFLICT (id) DO UPDATE SET
		        name = EXCLUDED.name,
		        description = EXCLUDED.description,
		        category = EXCLUDED.category,
		        organization = EXCLUDED.organization,
		        contact_email = EXCLUDED.contact_email,
		        website = EXCLUDED.website,
		        cost = EXCLUDED.cost,
		        target_audience = EXCLUDED.target_audience,
		        accessibility = EXCLUDED.accessibility,
		        region = EXCLUDED.region,
		        cultural_competency = EXCLUDED.cultural_competency,
		        specialties = EXCLUDED.specialties,
		        referral_process = EXCLUDED.referral_process,
		        waiting_time = EXCLUDED.waiting_time,
		        active = EXCLUDED.active,
		        last_updated = EXCLUDED.last_updated`,
		r.ID, r.Name, r.Description, r.Category, r.Organization,
		nullableString(r.ContactEmail), nullableString(r.Website), string(r.Cost),
		r.TargetAudience, r.Accessibility, r.Region,
		r.CulturalCompetency, r.Specialties, r.ReferralProcess,
		nullableString(r.WaitingTime), r.Active, r.LastUpdated,
	)
	return err
}

func scanKnowledgeRows(rows pgx.Rows) ([]*domain.KnowledgeItem, error) {
	var items []*domain.KnowledgeItem
	for rows.Next() {
		var k domain.KnowledgeItem
		var priority string
		var culturalContext, accessibility *string
		err := rows.Scan(&k.ID, &k.Question, &k.Answer, &k.Category, &k.Organization,
			&k.Tags, &priority, &k.Region, &culturalContext, &accessibility,
			&k.Active, &k.LastUpdated)
		if err != nil {
			return nil, err
		}
		k.Priority = domain.Priority(priority)
		if culturalContext != nil {
			k.CulturalContext = *culturalContext
		}
		if accessibility != nil {
			k.Accessibility = *accessibility
		}
		items = append(items, &k)
	}
	return items, rows.Err()
}

func scanResourceRows(rows pgx.Rows) ([]*domain.ResourceItem, error) {
	var items []*domain.ResourceItem
	for rows.Next() {
		var r domain.ResourceItem
		var cost string
		var contactEmail, website, waitingTime *string
		err := rows.Scan(&r.ID, &r.Name, &r.Description, &r.Category, &r.Organization,
			&contactEmail, &website, &cost, &r.TargetAudience, &r.Accessibility,
			&r.Region, &r.CulturalCompetency, &r.Specialties, &r.ReferralProcess,
			&waitingTime, &r.Active, &r.LastUpdated)
		if err != nil {
			return nil, err
		}
		r.Cost = domain.Cost(cost)
		if contactEmail != nil {
			r.ContactEmail = *contactEmail
		}
		if website != nil {
			r.Website = *website
		}
		if waitingTime != nil {
			r.WaitingTime = *waitingTime
		}
		items = append(items, &r)
	}
	return items, rows.Err()
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
