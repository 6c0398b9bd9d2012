// Package store implements the read-only content store over SQLite using
// Bun's type-safe query builder.
package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"go.trai.ch/zerr"
	_ "modernc.org/sqlite"

	"go.trai.ch/sweep/internal/core/domain"
)

// autosaveSuffix marks autosave copies by slug convention.
const autosaveSuffix = "-autosave-v1"

// Store implements ports.ContentStore against a SQLite content database.
type Store struct {
	db *bun.DB
}

// Open opens the content database at the given DSN.
func Open(dsn string) (*Store, error) {
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreOpenFailed.Error())
	}
	return &Store{db: bun.NewDB(sqlDB, sqlitedialect.New())}, nil
}

// NewWithDB wraps an existing *sql.DB. Used by tests.
func NewWithDB(sqlDB *sql.DB) *Store {
	return &Store{db: bun.NewDB(sqlDB, sqlitedialect.New())}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates the content tables when they do not exist yet. The engine
// never writes rows; this only provisions empty databases for tests and
// local development.
func (s *Store) Migrate(ctx context.Context) error {
	models := []any{
		(*ItemModel)(nil),
		(*TermModel)(nil),
		(*TermTaxonomyModel)(nil),
		(*RelationshipModel)(nil),
		(*AuthorModel)(nil),
		(*CommentModel)(nil),
	}
	for _, model := range models {
		if _, err := s.db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return zerr.Wrap(err, domain.ErrStoreOpenFailed.Error())
		}
	}
	return nil
}

// ContentItem fetches a content item by ID.
func (s *Store) ContentItem(ctx context.Context, id int64) (*domain.ContentItem, error) {
	var model ItemModel
	err := s.db.NewSelect().Model(&model).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, zerr.With(domain.ErrItemNotFound, "item", id)
	}
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreQueryFailed.Error())
	}

	return &domain.ContentItem{
		ID:        model.ID,
		Type:      model.Type,
		Status:    model.Status,
		Slug:      model.Slug,
		CreatedAt: time.Unix(model.CreatedAt, 0).UTC(),
		AuthorID:  model.AuthorID,
		Revision:  model.Type == "revision" || strings.HasSuffix(model.Slug, autosaveSuffix),
	}, nil
}

// TermByID fetches a term by its term ID. When the term is bound to several
// taxonomies the first binding wins; the archive slug is the same either way.
func (s *Store) TermByID(ctx context.Context, id int64) (*domain.TermRef, error) {
	var row struct {
		ID       int64  `bun:"id"`
		Slug     string `bun:"slug"`
		Taxonomy string `bun:"taxonomy"`
	}
	err := s.db.NewRaw(`
		SELECT t.id AS id, t.slug AS slug, tt.taxonomy AS taxonomy
		FROM terms t
		JOIN term_taxonomy tt ON tt.term_id = t.id
		WHERE t.id = ?
		ORDER BY tt.taxonomy_term_id
		LIMIT 1`, id).Scan(ctx, &row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, zerr.With(domain.ErrTermNotFound, "term", id)
	}
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreQueryFailed.Error())
	}
	return &domain.TermRef{ID: row.ID, Taxonomy: row.Taxonomy, Slug: row.Slug}, nil
}

// TermByTaxonomyID fetches a term by its taxonomy-term ID.
func (s *Store) TermByTaxonomyID(ctx context.Context, taxonomyTermID int64) (*domain.TermRef, error) {
	var row struct {
		ID       int64  `bun:"id"`
		Slug     string `bun:"slug"`
		Taxonomy string `bun:"taxonomy"`
	}
	err := s.db.NewRaw(`
		SELECT t.id AS id, t.slug AS slug, tt.taxonomy AS taxonomy
		FROM term_taxonomy tt
		JOIN terms t ON t.id = tt.term_id
		WHERE tt.taxonomy_term_id = ?`, taxonomyTermID).Scan(ctx, &row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, zerr.With(domain.ErrTermNotFound, "taxonomy_term", taxonomyTermID)
	}
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreQueryFailed.Error())
	}
	return &domain.TermRef{ID: row.ID, Taxonomy: row.Taxonomy, Slug: row.Slug}, nil
}

// Comment fetches a comment by ID.
func (s *Store) Comment(ctx context.Context, id int64) (*domain.Comment, error) {
	var model CommentModel
	err := s.db.NewSelect().Model(&model).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, zerr.With(domain.ErrCommentNotFound, "comment", id)
	}
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreQueryFailed.Error())
	}
	return &domain.Comment{ID: model.ID, ItemID: model.ItemID, Status: model.Status}, nil
}

// AuthorSlug returns the URL slug for an author.
func (s *Store) AuthorSlug(ctx context.Context, authorID int64) (string, error) {
	var model AuthorModel
	err := s.db.NewSelect().Model(&model).Where("id = ?", authorID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return "", zerr.With(domain.ErrAuthorNotFound, "author", authorID)
	}
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrStoreQueryFailed.Error())
	}
	return model.Slug, nil
}

// TaxonomiesForType lists the taxonomies in use for a content type.
func (s *Store) TaxonomiesForType(ctx context.Context, itemType string) ([]string, error) {
	var taxonomies []string
	err := s.db.NewRaw(`
		SELECT DISTINCT tt.taxonomy
		FROM term_taxonomy tt
		JOIN term_relationships tr ON tr.taxonomy_term_id = tt.taxonomy_term_id
		JOIN items i ON i.id = tr.item_id
		WHERE i.type = ?
		ORDER BY tt.taxonomy`, itemType).Scan(ctx, &taxonomies)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreQueryFailed.Error())
	}
	return taxonomies, nil
}

// TermsForItem lists the terms associated with an item in one taxonomy.
func (s *Store) TermsForItem(ctx context.Context, itemID int64, taxonomy string) ([]domain.TermRef, error) {
	var rows []struct {
		ID   int64  `bun:"id"`
		Slug string `bun:"slug"`
	}
	err := s.db.NewRaw(`
		SELECT t.id AS id, t.slug AS slug
		FROM term_relationships tr
		JOIN term_taxonomy tt ON tt.taxonomy_term_id = tr.taxonomy_term_id
		JOIN terms t ON t.id = tt.term_id
		WHERE tr.item_id = ? AND tt.taxonomy = ?
		ORDER BY t.id`, itemID, taxonomy).Scan(ctx, &rows)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreQueryFailed.Error())
	}

	terms := make([]domain.TermRef, len(rows))
	for i, row := range rows {
		terms[i] = domain.TermRef{ID: row.ID, Taxonomy: taxonomy, Slug: row.Slug}
	}
	return terms, nil
}

// ItemIDsByTerm lists every item ID associated with a term, across all of
// the term's taxonomy bindings. The result is unbounded.
func (s *Store) ItemIDsByTerm(ctx context.Context, termID int64) ([]int64, error) {
	var ids []int64
	err := s.db.NewRaw(`
		SELECT tr.item_id
		FROM term_relationships tr
		JOIN term_taxonomy tt ON tt.taxonomy_term_id = tr.taxonomy_term_id
		WHERE tt.term_id = ?
		ORDER BY tr.item_id`, termID).Scan(ctx, &ids)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreQueryFailed.Error())
	}
	return ids, nil
}

// ItemIDsByAuthor lists every item ID owned by an author. The result is
// unbounded.
func (s *Store) ItemIDsByAuthor(ctx context.Context, authorID int64) ([]int64, error) {
	var ids []int64
	err := s.db.NewSelect().
		Model((*ItemModel)(nil)).
		Column("id").
		Where("author_id = ?", authorID).
		Order("id").
		Scan(ctx, &ids)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreQueryFailed.Error())
	}
	return ids, nil
}
