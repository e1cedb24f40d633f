package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/brandpulse/brandpulse/internal/core/domain"
)

// UpsertPosts inserts posts whose identifier is not yet stored. Existing rows
// are never touched, so re-ingestion of the same batch is a no-op. The whole
// batch commits in one transaction. Returns the number of rows inserted.
func (db *DB) UpsertPosts(ctx context.Context, posts []domain.Post) (int, error) {
	if len(posts) == 0 {
		return 0, nil
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin upsert: %w", err)
	}

	defer func() {
		_ = tx.Rollback(ctx)
	}()

	inserted := 0

	for _, p := range posts {
		tag, err := tx.Exec(ctx, `
			INSERT INTO posts (id, brand, platform, text, clean_text, author, lang, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO NOTHING
		`, p.ID, p.Brand, string(p.Platform), p.Text, p.CleanText,
			toText(p.Author), p.Language, toTimestamptz(p.CreatedAt))
		if err != nil {
			return 0, fmt.Errorf("upsert post %s: %w", p.ID, err)
		}

		inserted += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit upsert: %w", err)
	}

	return inserted, nil
}

// MergeEnrichment overwrites only the enrichment fields present (non-nil) in
// each update; absent fields keep their stored value. Rows with no matching
// identifier are skipped, not created. The polarity score is converted to its
// x1000 integer representation here. Atomic per call.
func (db *DB) MergeEnrichment(ctx context.Context, updates map[string]domain.Enrichment) (int, error) {
	if len(updates) == 0 {
		return 0, nil
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin merge: %w", err)
	}

	defer func() {
		_ = tx.Rollback(ctx)
	}()

	updated := 0

	for id, e := range updates {
		emotions, err := marshalTags(e.Emotions)
		if err != nil {
			return 0, fmt.Errorf("marshal emotions for %s: %w", id, err)
		}

		topics, err := marshalTags(e.Topics)
		if err != nil {
			return 0, fmt.Errorf("marshal topics for %s: %w", id, err)
		}

		meta, err := marshalMeta(e.Meta)
		if err != nil {
			return 0, fmt.Errorf("marshal meta for %s: %w", id, err)
		}

		tag, err := tx.Exec(ctx, `
			UPDATE posts SET
				sentiment      = COALESCE($2, sentiment),
				confidence     = COALESCE($3, confidence),
				emotions       = COALESCE($4, emotions),
				topics         = COALESCE($5, topics),
				intent         = COALESCE($6, intent),
				summary        = COALESCE($7, summary),
				polarity_score = COALESCE($8, polarity_score),
				meta           = COALESCE($9, meta)
			WHERE id = $1
		`, id, sentimentParam(e.Sentiment), e.Confidence, emotions, topics,
			intentParam(e.Intent), e.Summary, polarityParam(e.PolarityScore), meta)
		if err != nil {
			return 0, fmt.Errorf("merge enrichment %s: %w", id, err)
		}

		updated += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit merge: %w", err)
	}

	return updated, nil
}

// FetchByBrand returns stored posts for a brand ordered by creation timestamp
// descending.
func (db *DB) FetchByBrand(ctx context.Context, brand string, limit int) ([]domain.Post, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, brand, platform, text, clean_text, author, lang,
		       created_at, scraped_at,
		       sentiment, confidence, emotions, topics, intent, summary,
		       polarity_score, meta
		FROM posts
		WHERE brand = $1
		ORDER BY created_at DESC NULLS LAST
		LIMIT $2
	`, brand, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch by brand: %w", err)
	}
	defer rows.Close()

	posts := []domain.Post{}

	for rows.Next() {
		var (
			p         domain.Post
			platform  string
			author    pgtype.Text
			createdAt pgtype.Timestamptz
			scrapedAt pgtype.Timestamptz
			sentiment pgtype.Text
			conf      pgtype.Int4
			emotions  []byte
			topics    []byte
			intent    pgtype.Text
			summary   pgtype.Text
			polarity  pgtype.Int4
			meta      []byte
		)

		if err := rows.Scan(&p.ID, &p.Brand, &platform, &p.Text, &p.CleanText,
			&author, &p.Language, &createdAt, &scrapedAt,
			&sentiment, &conf, &emotions, &topics, &intent, &summary,
			&polarity, &meta); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}

		p.Platform = domain.Platform(platform)
		p.Author = fromText(author)
		p.CreatedAt = fromTimestamptz(createdAt)
		p.ScrapedAt = fromTimestamptz(scrapedAt)

		e, err := scanEnrichment(sentiment, conf, emotions, topics, intent, summary, polarity, meta)
		if err != nil {
			return nil, fmt.Errorf("decode enrichment for %s: %w", p.ID, err)
		}

		p.Enrichment = e

		posts = append(posts, p)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate posts: %w", rows.Err())
	}

	return posts, nil
}

func scanEnrichment(sentiment pgtype.Text, conf pgtype.Int4, emotions, topics []byte,
	intent, summary pgtype.Text, polarity pgtype.Int4, meta []byte,
) (domain.Enrichment, error) {
	var e domain.Enrichment

	if sentiment.Valid {
		s := domain.Sentiment(sentiment.String)
		e.Sentiment = &s
	}

	if conf.Valid {
		c := int(conf.Int32)
		e.Confidence = &c
	}

	if len(emotions) > 0 {
		if err := json.Unmarshal(emotions, &e.Emotions); err != nil {
			return e, fmt.Errorf("unmarshal emotions: %w", err)
		}
	}

	if len(topics) > 0 {
		if err := json.Unmarshal(topics, &e.Topics); err != nil {
			return e, fmt.Errorf("unmarshal topics: %w", err)
		}
	}

	if intent.Valid {
		i := domain.Intent(intent.String)
		e.Intent = &i
	}

	if summary.Valid {
		s := summary.String
		e.Summary = &s
	}

	if polarity.Valid {
		// Stored x1000; expose the raw signed value.
		v := float64(polarity.Int32) / domain.PolarityScale
		e.PolarityScore = &v
	}

	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &e.Meta); err != nil {
			return e, fmt.Errorf("unmarshal meta: %w", err)
		}
	}

	return e, nil
}

// ScaledPolarity converts a raw signed polarity into its stored x1000 integer
// form.
func ScaledPolarity(raw float64) int {
	return int(math.Round(raw * domain.PolarityScale))
}

func polarityParam(raw *float64) *int {
	if raw == nil {
		return nil
	}

	v := ScaledPolarity(*raw)

	return &v
}

func sentimentParam(s *domain.Sentiment) *string {
	if s == nil {
		return nil
	}

	v := string(*s)

	return &v
}

func intentParam(i *domain.Intent) *string {
	if i == nil {
		return nil
	}

	v := string(*i)

	return &v
}

// marshalTags keeps nil (absent) distinct from empty: nil yields a NULL
// parameter so COALESCE leaves the stored value untouched.
func marshalTags(tags []string) ([]byte, error) {
	if tags == nil {
		return nil, nil
	}

	return json.Marshal(tags)
}

func marshalMeta(meta map[string]string) ([]byte, error) {
	if meta == nil {
		return nil, nil
	}

	return json.Marshal(meta)
}
