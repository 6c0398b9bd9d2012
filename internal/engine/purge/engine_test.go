package purge_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sweep/internal/core/domain"
	"go.trai.ch/sweep/internal/core/ports/mocks"
	"go.trai.ch/sweep/internal/engine/purge"
	"go.uber.org/mock/gomock"
)

type engineMocks struct {
	store     *mocks.MockContentStore
	links     *mocks.MockLinkResolver
	transport *mocks.MockCachePurger
}

// setupEngine creates an Engine backed by an enabled transport and
// permissive logging.
func setupEngine(t *testing.T, settings domain.Settings) (*purge.Engine, engineMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := engineMocks{
		store:     mocks.NewMockContentStore(ctrl),
		links:     mocks.NewMockLinkResolver(ctrl),
		transport: mocks.NewMockCachePurger(ctrl),
	}

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	m.transport.EXPECT().Enabled().Return(true)

	engine, err := purge.New(settings, m.store, m.links, m.transport, logger)
	require.NoError(t, err)
	return engine, m
}

// scaffold returns the expanderMocks view so item expansion expectations can
// be shared with the expander tests.
func (m engineMocks) scaffold() expanderMocks {
	return expanderMocks{store: m.store, links: m.links}
}

func TestEngine_New(t *testing.T) {
	t.Run("disabled transport blocks construction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transport := mocks.NewMockCachePurger(ctrl)
		transport.EXPECT().Enabled().Return(false)

		logger := mocks.NewMockLogger(ctrl)

		_, err := purge.New(
			testSettings(),
			mocks.NewMockContentStore(ctrl),
			mocks.NewMockLinkResolver(ctrl),
			transport,
			logger,
		)
		assert.ErrorIs(t, err, domain.ErrPurgingDisabled)
	})
}

func TestEngine_ItemLifecycle(t *testing.T) {
	created := time.Date(2024, 5, 12, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("publishing a draft accumulates the item's URLs", func(t *testing.T) {
		engine, m := setupEngine(t, testSettings())

		draft := &domain.ContentItem{ID: 1, Type: "post", Status: "draft", AuthorID: 3, CreatedAt: created}
		published := &domain.ContentItem{ID: 1, Type: "post", Status: "publish", AuthorID: 3, CreatedAt: created}

		m.store.EXPECT().ContentItem(gomock.Any(), int64(1)).Return(draft, nil)
		engine.ItemWillChange(ctx, 1)

		m.store.EXPECT().ContentItem(gomock.Any(), int64(1)).Return(published, nil)
		expectItemScaffold(m.scaffold(), published, "https://example.com/hello-world/")
		m.store.EXPECT().TaxonomiesForType(gomock.Any(), "post").Return(nil, nil)
		engine.ItemChanged(ctx, 1)

		assert.True(t, engine.Epoch().Len() > 0)
	})

	t.Run("draft to pending accumulates nothing", func(t *testing.T) {
		engine, m := setupEngine(t, testSettings())

		draft := &domain.ContentItem{ID: 1, Type: "post", Status: "draft", AuthorID: 3, CreatedAt: created}
		pending := &domain.ContentItem{ID: 1, Type: "post", Status: "pending", AuthorID: 3, CreatedAt: created}

		m.store.EXPECT().ContentItem(gomock.Any(), int64(1)).Return(draft, nil)
		engine.ItemWillChange(ctx, 1)

		m.store.EXPECT().ContentItem(gomock.Any(), int64(1)).Return(pending, nil)
		engine.ItemChanged(ctx, 1)

		assert.Equal(t, 0, engine.Epoch().Len())
	})

	t.Run("unpublishing uses the recorded pre-status", func(t *testing.T) {
		engine, m := setupEngine(t, testSettings())

		published := &domain.ContentItem{ID: 1, Type: "post", Status: "publish", AuthorID: 3, CreatedAt: created}
		drafted := &domain.ContentItem{ID: 1, Type: "post", Status: "draft", AuthorID: 3, CreatedAt: created}

		m.store.EXPECT().ContentItem(gomock.Any(), int64(1)).Return(published, nil)
		engine.ItemWillChange(ctx, 1)

		m.store.EXPECT().ContentItem(gomock.Any(), int64(1)).Return(drafted, nil)
		expectItemScaffold(m.scaffold(), drafted, "https://example.com/hello-world/")
		m.store.EXPECT().TaxonomiesForType(gomock.Any(), "post").Return(nil, nil)
		engine.ItemChanged(ctx, 1)

		assert.True(t, engine.Epoch().Len() > 0)
	})

	t.Run("missing pre-status counts as not public", func(t *testing.T) {
		engine, m := setupEngine(t, testSettings())

		drafted := &domain.ContentItem{ID: 1, Type: "post", Status: "draft", AuthorID: 3, CreatedAt: created}

		m.store.EXPECT().ContentItem(gomock.Any(), int64(1)).Return(drafted, nil)
		engine.ItemChanged(ctx, 1)

		assert.Equal(t, 0, engine.Epoch().Len())
	})

	t.Run("revisions never accumulate", func(t *testing.T) {
		engine, m := setupEngine(t, testSettings())

		revision := &domain.ContentItem{ID: 1, Type: "post", Status: "publish", Revision: true, CreatedAt: created}

		m.store.EXPECT().ContentItem(gomock.Any(), int64(1)).Return(revision, nil)
		engine.ItemChanged(ctx, 1)

		assert.Equal(t, 0, engine.Epoch().Len())
	})

	t.Run("deleting a published item accumulates its URLs", func(t *testing.T) {
		engine, m := setupEngine(t, testSettings())

		published := &domain.ContentItem{ID: 1, Type: "post", Status: "publish", AuthorID: 3, CreatedAt: created}

		m.store.EXPECT().ContentItem(gomock.Any(), int64(1)).Return(published, nil)
		expectItemScaffold(m.scaffold(), published, "https://example.com/hello-world/")
		m.store.EXPECT().TaxonomiesForType(gomock.Any(), "post").Return(nil, nil)
		engine.ItemDeleted(ctx, 1)

		assert.True(t, engine.Epoch().Len() > 0)
	})

	t.Run("unresolvable item is dropped quietly", func(t *testing.T) {
		engine, m := setupEngine(t, testSettings())

		m.store.EXPECT().ContentItem(gomock.Any(), int64(99)).
			Return(nil, domain.ErrItemNotFound)
		engine.ItemChanged(ctx, 99)

		assert.Equal(t, 0, engine.Epoch().Len())
	})
}

func TestEngine_TermsChanged(t *testing.T) {
	ctx := context.Background()

	t.Run("a term that fails to resolve does not affect its siblings", func(t *testing.T) {
		engine, m := setupEngine(t, testSettings())
		term := domain.TermRef{ID: 10, Taxonomy: "category", Slug: "news"}

		m.store.EXPECT().TermByTaxonomyID(gomock.Any(), int64(100)).
			Return(nil, domain.ErrTermNotFound)
		m.store.EXPECT().TermByTaxonomyID(gomock.Any(), int64(101)).Return(&term, nil)
		m.links.EXPECT().TermLink(gomock.Any(), term).
			Return("https://example.com/category/news/", nil)
		m.store.EXPECT().ItemIDsByTerm(gomock.Any(), int64(10)).Return(nil, nil)

		engine.TermsChanged(ctx, []int64{100, 101})

		assert.Equal(t, 1, engine.Epoch().Len())
	})
}

func TestEngine_AuthorChanged(t *testing.T) {
	ctx := context.Background()

	t.Run("watched field change expands the author scope", func(t *testing.T) {
		engine, m := setupEngine(t, testSettings())

		m.links.EXPECT().AuthorLink(gomock.Any(), int64(3)).
			Return("https://example.com/author/jane/", nil)
		m.store.EXPECT().ItemIDsByAuthor(gomock.Any(), int64(3)).Return(nil, nil)

		engine.AuthorChanged(ctx, 3,
			map[string]string{"display_name": "Jane"},
			map[string]string{"display_name": "Jane D."},
		)

		assert.Equal(t, 1, engine.Epoch().Len())
	})

	t.Run("unwatched field change accumulates nothing", func(t *testing.T) {
		engine, _ := setupEngine(t, testSettings())

		engine.AuthorChanged(ctx, 3,
			map[string]string{"email": "jane@example.com"},
			map[string]string{"email": "jane.d@example.com"},
		)

		assert.Equal(t, 0, engine.Epoch().Len())
	})
}

func TestEngine_CommentChanged(t *testing.T) {
	created := time.Date(2024, 5, 12, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("approval expands the public parent", func(t *testing.T) {
		engine, m := setupEngine(t, testSettings())
		comment := &domain.Comment{ID: 40, ItemID: 1, Status: "approved"}
		parent := &domain.ContentItem{ID: 1, Type: "post", Status: "publish", AuthorID: 3, CreatedAt: created}

		m.store.EXPECT().Comment(gomock.Any(), int64(40)).Return(comment, nil)
		m.store.EXPECT().ContentItem(gomock.Any(), int64(1)).Return(parent, nil)
		expectItemScaffold(m.scaffold(), parent, "https://example.com/hello-world/")
		m.store.EXPECT().TaxonomiesForType(gomock.Any(), "post").Return(nil, nil)

		engine.CommentChanged(ctx, 40, "pending", "approved")

		assert.True(t, engine.Epoch().Len() > 0)
	})

	t.Run("spam to trash accumulates nothing", func(t *testing.T) {
		engine, _ := setupEngine(t, testSettings())

		engine.CommentChanged(ctx, 40, "spam", "trash")

		assert.Equal(t, 0, engine.Epoch().Len())
	})
}

func TestEngine_SiteEvent(t *testing.T) {
	t.Run("listed event latches a full purge", func(t *testing.T) {
		engine, _ := setupEngine(t, testSettings())

		engine.SiteEvent("theme_switched")

		assert.True(t, engine.Epoch().FullPurgeLatched())
	})

	t.Run("unlisted event is ignored", func(t *testing.T) {
		engine, _ := setupEngine(t, testSettings())

		engine.SiteEvent("widget_moved")

		assert.False(t, engine.Epoch().FullPurgeLatched())
	})
}

func TestEngine_Flush(t *testing.T) {
	created := time.Date(2024, 5, 12, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("full purge wins over accumulated URLs", func(t *testing.T) {
		settings := testSettings()
		settings.TagPrefix = "site-1"
		engine, m := setupEngine(t, settings)

		published := &domain.ContentItem{ID: 1, Type: "post", Status: "publish", AuthorID: 3, CreatedAt: created}
		m.store.EXPECT().ContentItem(gomock.Any(), int64(1)).Return(published, nil)
		expectItemScaffold(m.scaffold(), published, "https://example.com/hello-world/")
		m.store.EXPECT().TaxonomiesForType(gomock.Any(), "post").Return(nil, nil)
		engine.ItemDeleted(ctx, 1)

		engine.SiteEvent("theme_switched")

		m.transport.EXPECT().PurgeHost(gomock.Any(), "example.com").Return(nil)
		m.transport.EXPECT().PurgeTag(gomock.Any(), "site-1").Return(nil)

		engine.Flush(ctx)

		assert.Equal(t, 0, engine.Epoch().Len())
	})

	t.Run("second flush of an empty epoch is a no-op", func(t *testing.T) {
		engine, m := setupEngine(t, testSettings())

		published := &domain.ContentItem{ID: 1, Type: "post", Status: "publish", AuthorID: 3, CreatedAt: created}
		m.store.EXPECT().ContentItem(gomock.Any(), int64(1)).Return(published, nil)
		expectItemScaffold(m.scaffold(), published, "https://example.com/hello-world/")
		m.store.EXPECT().TaxonomiesForType(gomock.Any(), "post").Return(nil, nil)
		engine.ItemDeleted(ctx, 1)

		m.transport.EXPECT().PurgeURL(gomock.Any(), gomock.Any()).Return(nil).Times(6)
		engine.Flush(ctx)

		engine.Flush(ctx)
	})
}
