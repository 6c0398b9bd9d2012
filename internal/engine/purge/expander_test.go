package purge_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/sweep/internal/core/domain"
	"go.trai.ch/sweep/internal/core/ports/mocks"
	"go.trai.ch/sweep/internal/engine/purge"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type expanderMocks struct {
	store *mocks.MockContentStore
	links *mocks.MockLinkResolver
}

// setupExpander creates an Expander with permissive logging.
func setupExpander(t *testing.T, settings domain.Settings) (*purge.Expander, expanderMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := expanderMocks{
		store: mocks.NewMockContentStore(ctrl),
		links: mocks.NewMockLinkResolver(ctrl),
	}

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	return purge.NewExpander(settings, m.store, m.links, logger), m
}

func testSettings() domain.Settings {
	s := domain.DefaultSettings()
	s.BaseURL = "https://example.com"
	return s
}

// expectItemScaffold wires the link calls every item expansion makes.
func expectItemScaffold(m expanderMocks, item *domain.ContentItem, own string) {
	m.links.EXPECT().ItemLink(gomock.Any(), item).Return(own, nil)
	m.links.EXPECT().FrontPageLink().Return("https://example.com/")
	m.links.EXPECT().PostsPageLink().Return("")
	m.links.EXPECT().AuthorLink(gomock.Any(), item.AuthorID).
		Return("https://example.com/author/jane/", nil)
	m.links.EXPECT().DateLink(item.CreatedAt, domain.GranularityYear).
		Return("https://example.com/2024/")
	m.links.EXPECT().DateLink(item.CreatedAt, domain.GranularityMonth).
		Return("https://example.com/2024/05/")
	m.links.EXPECT().DateLink(item.CreatedAt, domain.GranularityDay).
		Return("https://example.com/2024/05/12/")
}

func TestExpander_ExpandItem(t *testing.T) {
	created := time.Date(2024, 5, 12, 10, 0, 0, 0, time.UTC)

	t.Run("item with no terms yields own, front, author, and date archives", func(t *testing.T) {
		x, m := setupExpander(t, testSettings())
		item := &domain.ContentItem{ID: 1, Type: "post", Status: "publish", AuthorID: 3, CreatedAt: created}

		expectItemScaffold(m, item, "https://example.com/hello-world/")
		m.store.EXPECT().TaxonomiesForType(gomock.Any(), "post").Return(nil, nil)

		urls := x.ExpandItem(context.Background(), item)

		assert.Equal(t, []string{
			"https://example.com/",
			"https://example.com/2024/",
			"https://example.com/2024/05/",
			"https://example.com/2024/05/12/",
			"https://example.com/author/jane/",
			"https://example.com/hello-world/",
		}, urls.URLs())
	})

	t.Run("includes term archives across applicable taxonomies", func(t *testing.T) {
		x, m := setupExpander(t, testSettings())
		item := &domain.ContentItem{ID: 1, Type: "post", Status: "publish", AuthorID: 3, CreatedAt: created}

		expectItemScaffold(m, item, "https://example.com/hello-world/")
		m.store.EXPECT().TaxonomiesForType(gomock.Any(), "post").
			Return([]string{"category", "post_tag"}, nil)
		m.store.EXPECT().TermsForItem(gomock.Any(), int64(1), "category").
			Return([]domain.TermRef{{ID: 10, Taxonomy: "category", Slug: "news"}}, nil)
		m.store.EXPECT().TermsForItem(gomock.Any(), int64(1), "post_tag").
			Return([]domain.TermRef{{ID: 20, Taxonomy: "post_tag", Slug: "go"}}, nil)
		m.links.EXPECT().TermLink(gomock.Any(), domain.TermRef{ID: 10, Taxonomy: "category", Slug: "news"}).
			Return("https://example.com/category/news/", nil)
		m.links.EXPECT().TermLink(gomock.Any(), domain.TermRef{ID: 20, Taxonomy: "post_tag", Slug: "go"}).
			Return("https://example.com/tag/go/", nil)

		urls := x.ExpandItem(context.Background(), item)

		assert.True(t, urls.Contains("https://example.com/category/news/"))
		assert.True(t, urls.Contains("https://example.com/tag/go/"))
	})

	t.Run("includes the posts page for its bound type", func(t *testing.T) {
		settings := testSettings()
		settings.PostsPagePath = "/blog/"
		settings.PostsPageType = "post"
		x, m := setupExpander(t, settings)
		item := &domain.ContentItem{ID: 1, Type: "post", Status: "publish", AuthorID: 3, CreatedAt: created}

		m.links.EXPECT().ItemLink(gomock.Any(), item).Return("https://example.com/hello-world/", nil)
		m.links.EXPECT().FrontPageLink().Return("https://example.com/")
		m.links.EXPECT().PostsPageLink().Return("https://example.com/blog/")
		m.links.EXPECT().AuthorLink(gomock.Any(), int64(3)).Return("https://example.com/author/jane/", nil)
		m.links.EXPECT().DateLink(gomock.Any(), gomock.Any()).Return("https://example.com/2024/").Times(3)
		m.store.EXPECT().TaxonomiesForType(gomock.Any(), "post").Return(nil, nil)

		urls := x.ExpandItem(context.Background(), item)

		assert.True(t, urls.Contains("https://example.com/blog/"))
	})

	t.Run("skips the posts page for other types", func(t *testing.T) {
		settings := testSettings()
		settings.PostsPagePath = "/blog/"
		settings.PostsPageType = "post"
		x, m := setupExpander(t, settings)
		item := &domain.ContentItem{ID: 2, Type: "page", Status: "publish", AuthorID: 3, CreatedAt: created}

		m.links.EXPECT().ItemLink(gomock.Any(), item).Return("https://example.com/about/", nil)
		m.links.EXPECT().FrontPageLink().Return("https://example.com/")
		m.links.EXPECT().PostsPageLink().Return("https://example.com/blog/")
		m.links.EXPECT().AuthorLink(gomock.Any(), int64(3)).Return("https://example.com/author/jane/", nil)
		m.links.EXPECT().DateLink(gomock.Any(), gomock.Any()).Return("https://example.com/2024/").Times(3)
		m.store.EXPECT().TaxonomiesForType(gomock.Any(), "page").Return(nil, nil)

		urls := x.ExpandItem(context.Background(), item)

		assert.False(t, urls.Contains("https://example.com/blog/"))
	})

	t.Run("unresolvable item link drops only that URL", func(t *testing.T) {
		x, m := setupExpander(t, testSettings())
		item := &domain.ContentItem{ID: 1, Type: "post", Status: "publish", AuthorID: 3, CreatedAt: created}

		m.links.EXPECT().ItemLink(gomock.Any(), item).Return("", domain.ErrLinkUnresolvable)
		m.links.EXPECT().FrontPageLink().Return("https://example.com/")
		m.links.EXPECT().PostsPageLink().Return("")
		m.links.EXPECT().AuthorLink(gomock.Any(), int64(3)).Return("https://example.com/author/jane/", nil)
		m.links.EXPECT().DateLink(gomock.Any(), gomock.Any()).Return("https://example.com/2024/").Times(3)
		m.store.EXPECT().TaxonomiesForType(gomock.Any(), "post").Return(nil, nil)

		urls := x.ExpandItem(context.Background(), item)

		assert.True(t, urls.Contains("https://example.com/"))
		assert.True(t, urls.Contains("https://example.com/author/jane/"))
	})

	t.Run("expand filters run in registration order", func(t *testing.T) {
		x, m := setupExpander(t, testSettings())
		item := &domain.ContentItem{ID: 1, Type: "post", Status: "publish", AuthorID: 3, CreatedAt: created}

		expectItemScaffold(m, item, "https://example.com/hello-world/")
		m.store.EXPECT().TaxonomiesForType(gomock.Any(), "post").Return(nil, nil)

		x.AddFilter(func(urls domain.URLSet, _ *domain.ContentItem) domain.URLSet {
			urls.Add("https://example.com/extra/")
			return urls
		})
		x.AddFilter(func(urls domain.URLSet, _ *domain.ContentItem) domain.URLSet {
			urls.Remove("https://example.com/extra/")
			return urls
		})

		urls := x.ExpandItem(context.Background(), item)

		assert.False(t, urls.Contains("https://example.com/extra/"))
	})
}

func TestExpander_ExpandTerm(t *testing.T) {
	created := time.Date(2024, 5, 12, 10, 0, 0, 0, time.UTC)
	term := domain.TermRef{ID: 10, Taxonomy: "category", Slug: "news"}

	t.Run("term with two items dedupes shared archives", func(t *testing.T) {
		x, m := setupExpander(t, testSettings())

		itemA := &domain.ContentItem{ID: 1, Type: "post", Status: "publish", AuthorID: 3, CreatedAt: created}
		itemB := &domain.ContentItem{ID: 2, Type: "post", Status: "publish", AuthorID: 3, CreatedAt: created}

		m.links.EXPECT().TermLink(gomock.Any(), term).Return("https://example.com/category/news/", nil)
		m.store.EXPECT().ItemIDsByTerm(gomock.Any(), int64(10)).Return([]int64{1, 2}, nil)
		m.store.EXPECT().ContentItem(gomock.Any(), int64(1)).Return(itemA, nil)
		m.store.EXPECT().ContentItem(gomock.Any(), int64(2)).Return(itemB, nil)

		expectItemScaffold(m, itemA, "https://example.com/first/")
		expectItemScaffold(m, itemB, "https://example.com/second/")
		m.store.EXPECT().TaxonomiesForType(gomock.Any(), "post").Return(nil, nil).Times(2)

		urls := x.ExpandTerm(context.Background(), term)

		// Both items share author and date archives, so the union is the
		// term archive, two item addresses, front, author, and three dates.
		assert.Equal(t, 8, urls.Len())
		assert.True(t, urls.Contains("https://example.com/category/news/"))
		assert.True(t, urls.Contains("https://example.com/first/"))
		assert.True(t, urls.Contains("https://example.com/second/"))
	})

	t.Run("skips non-public and ineligible items", func(t *testing.T) {
		x, m := setupExpander(t, testSettings())

		draft := &domain.ContentItem{ID: 1, Type: "post", Status: "draft", AuthorID: 3, CreatedAt: created}
		revision := &domain.ContentItem{ID: 2, Type: "post", Status: "publish", Revision: true, CreatedAt: created}

		m.links.EXPECT().TermLink(gomock.Any(), term).Return("https://example.com/category/news/", nil)
		m.store.EXPECT().ItemIDsByTerm(gomock.Any(), int64(10)).Return([]int64{1, 2}, nil)
		m.store.EXPECT().ContentItem(gomock.Any(), int64(1)).Return(draft, nil)
		m.store.EXPECT().ContentItem(gomock.Any(), int64(2)).Return(revision, nil)

		urls := x.ExpandTerm(context.Background(), term)

		assert.Equal(t, []string{"https://example.com/category/news/"}, urls.URLs())
	})

	t.Run("listing failure still yields the term archive", func(t *testing.T) {
		x, m := setupExpander(t, testSettings())

		m.links.EXPECT().TermLink(gomock.Any(), term).Return("https://example.com/category/news/", nil)
		m.store.EXPECT().ItemIDsByTerm(gomock.Any(), int64(10)).
			Return(nil, zerr.New("store unavailable"))

		urls := x.ExpandTerm(context.Background(), term)

		assert.Equal(t, []string{"https://example.com/category/news/"}, urls.URLs())
	})
}

func TestExpander_ExpandAuthor(t *testing.T) {
	created := time.Date(2024, 5, 12, 10, 0, 0, 0, time.UTC)

	t.Run("author archive plus owned items", func(t *testing.T) {
		x, m := setupExpander(t, testSettings())
		item := &domain.ContentItem{ID: 1, Type: "post", Status: "publish", AuthorID: 3, CreatedAt: created}

		m.links.EXPECT().AuthorLink(gomock.Any(), int64(3)).
			Return("https://example.com/author/jane/", nil)
		m.store.EXPECT().ItemIDsByAuthor(gomock.Any(), int64(3)).Return([]int64{1}, nil)
		m.store.EXPECT().ContentItem(gomock.Any(), int64(1)).Return(item, nil)

		expectItemScaffold(m, item, "https://example.com/hello-world/")
		m.store.EXPECT().TaxonomiesForType(gomock.Any(), "post").Return(nil, nil)

		urls := x.ExpandAuthor(context.Background(), 3)

		assert.True(t, urls.Contains("https://example.com/author/jane/"))
		assert.True(t, urls.Contains("https://example.com/hello-world/"))
	})

	t.Run("unresolvable author yields only owned items", func(t *testing.T) {
		x, m := setupExpander(t, testSettings())

		m.links.EXPECT().AuthorLink(gomock.Any(), int64(9)).
			Return("", domain.ErrAuthorNotFound)
		m.store.EXPECT().ItemIDsByAuthor(gomock.Any(), int64(9)).Return(nil, nil)

		urls := x.ExpandAuthor(context.Background(), 9)

		assert.Equal(t, 0, urls.Len())
	})
}

func TestExpander_ExpandComment(t *testing.T) {
	created := time.Date(2024, 5, 12, 10, 0, 0, 0, time.UTC)
	comment := &domain.Comment{ID: 40, ItemID: 1, Status: "approved"}

	t.Run("expands the public parent item", func(t *testing.T) {
		x, m := setupExpander(t, testSettings())
		item := &domain.ContentItem{ID: 1, Type: "post", Status: "publish", AuthorID: 3, CreatedAt: created}

		m.store.EXPECT().ContentItem(gomock.Any(), int64(1)).Return(item, nil)
		expectItemScaffold(m, item, "https://example.com/hello-world/")
		m.store.EXPECT().TaxonomiesForType(gomock.Any(), "post").Return(nil, nil)

		urls := x.ExpandComment(context.Background(), comment)

		assert.True(t, urls.Contains("https://example.com/hello-world/"))
	})

	t.Run("non-public parent yields nothing", func(t *testing.T) {
		x, m := setupExpander(t, testSettings())
		item := &domain.ContentItem{ID: 1, Type: "post", Status: "draft", AuthorID: 3, CreatedAt: created}

		m.store.EXPECT().ContentItem(gomock.Any(), int64(1)).Return(item, nil)

		urls := x.ExpandComment(context.Background(), comment)

		assert.Equal(t, 0, urls.Len())
	})

	t.Run("unresolvable parent yields nothing", func(t *testing.T) {
		x, m := setupExpander(t, testSettings())

		m.store.EXPECT().ContentItem(gomock.Any(), int64(1)).
			Return(nil, domain.ErrItemNotFound)

		urls := x.ExpandComment(context.Background(), comment)

		assert.Equal(t, 0, urls.Len())
	})
}
