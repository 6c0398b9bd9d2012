package config

// SweepFile represents the structure of the sweep.yaml configuration file.
type SweepFile struct {
	Site    SiteDTO    `yaml:"site"`
	Cache   CacheDTO   `yaml:"cache"`
	Content ContentDTO `yaml:"content"`
	Store   StoreDTO   `yaml:"store"`
	Debug   bool       `yaml:"debug"`
}

// SiteDTO describes the site being invalidated.
type SiteDTO struct {
	BaseURL       string            `yaml:"base_url"`
	PostsPage     string            `yaml:"posts_page"`
	PostsPageType string            `yaml:"posts_page_type"`
	AuthorBase    string            `yaml:"author_base"`
	TaxonomyPaths map[string]string `yaml:"taxonomy_paths"`
}

// CacheDTO describes the cache server and purge dialect.
type CacheDTO struct {
	Enabled   *bool  `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	Method    string `yaml:"method"`
	TagPrefix string `yaml:"tag_prefix"`
}

// ContentDTO describes which content participates in invalidation.
type ContentDTO struct {
	PublicStatuses        []string `yaml:"public_statuses"`
	ExcludedTypes         []string `yaml:"excluded_types"`
	PublicCommentStatuses []string `yaml:"public_comment_statuses"`
	ProfileFields         []string `yaml:"profile_fields"`
	FullFlushEvents       []string `yaml:"full_flush_events"`
}

// StoreDTO describes the content store connection.
type StoreDTO struct {
	DSN string `yaml:"dsn"`
}
