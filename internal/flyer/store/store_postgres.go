package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"cardeval/internal/flyer/models"
	"cardeval/pkg/platform/sentinel"
	"cardeval/pkg/platform/tx"
)

var findMemberDurationMs = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "cardeval_flyer_find_member_duration_ms",
	Help:    "Latency of frequent flyer member lookups in PostgreSQL in milliseconds",
	Buckets: []float64{0.5, 1, 2.5, 5, 10, 25, 50, 100, 250},
})

const schema = `
	CREATE TABLE IF NOT EXISTS frequent_flyer_members (
		number     TEXT PRIMARY KEY,
		active     BOOLEAN NOT NULL DEFAULT TRUE,
		tier       TEXT NOT NULL DEFAULT 'blue',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// Postgres is a directory of frequent flyer members in PostgreSQL.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Migrate creates the members table when it does not exist.
func (s *Postgres) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate frequent flyer members: %w", err)
	}
	return nil
}

func (s *Postgres) FindMember(ctx context.Context, number string) (*models.Member, error) {
	start := time.Now()
	defer func() {
		findMemberDurationMs.Observe(float64(time.Since(start).Microseconds()) / 1000.0)
	}()

	var (
		member models.Member
		tier   string
	)
	err := tx.Exec(ctx, s.db).QueryRowContext(ctx,
		`SELECT number, active, tier FROM frequent_flyer_members WHERE number = $1`,
		number,
	).Scan(&member.Number, &member.Active, &tier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("member %q: %w", number, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find member: %w", err)
	}
	member.Tier = models.ParseTier(tier)
	return &member, nil
}

// Save inserts or replaces a member.
func (s *Postgres) Save(ctx context.Context, member models.Member) error {
	query := `
		INSERT INTO frequent_flyer_members (number, active, tier)
		VALUES ($1, $2, $3)
		ON CONFLICT (number) DO UPDATE SET
			active = EXCLUDED.active,
			tier = EXCLUDED.tier,
			updated_at = now()
	`
	if _, err := tx.Exec(ctx, s.db).ExecContext(ctx, query, member.Number, member.Active, string(member.Tier)); err != nil {
		return fmt.Errorf("save member: %w", err)
	}
	return nil
}

// SeedMembers upserts members in one statement using unnest.
func (s *Postgres) SeedMembers(ctx context.Context, members []models.Member) error {
	if len(members) == 0 {
		return nil
	}

	numbers := make([]string, len(members))
	active := make([]bool, len(members))
	tiers := make([]string, len(members))
	for i, m := range members {
		numbers[i] = m.Number
		active[i] = m.Active
		tiers[i] = string(m.Tier)
	}

	query := `
		INSERT INTO frequent_flyer_members (number, active, tier)
		SELECT * FROM unnest($1::text[], $2::boolean[], $3::text[])
		ON CONFLICT (number) DO UPDATE SET
			active = EXCLUDED.active,
			tier = EXCLUDED.tier,
			updated_at = now()
	`
	if _, err := tx.Exec(ctx, s.db).ExecContext(ctx, query, pq.Array(numbers), pq.Array(active), pq.Array(tiers)); err != nil {
		return fmt.Errorf("seed members: %w", err)
	}
	return nil
}

// SyncMembers makes the table mirror members: listed members are upserted and
// every other member is deactivated, in one transaction.
func (s *Postgres) SyncMembers(ctx context.Context, members []models.Member) error {
	return tx.Run(ctx, s.db, func(ctx context.Context) error {
		if err := s.SeedMembers(ctx, members); err != nil {
			return err
		}
		numbers := make([]string, len(members))
		for i, m := range members {
			numbers[i] = m.Number
		}
		_, err := tx.Exec(ctx, s.db).ExecContext(ctx, `
			UPDATE frequent_flyer_members
			SET active = FALSE, updated_at = now()
			WHERE active AND NOT (number = ANY($1::text[]))
		`, pq.Array(numbers))
		if err != nil {
			return fmt.Errorf("deactivate missing members: %w", err)
		}
		return nil
	})
}
