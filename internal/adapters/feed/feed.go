// Package feed reads YAML mutation-event journals for replay. A journal
// captures one unit of work: the engine processes its events in order and
// flushes once at the end.
package feed

import (
	"os"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"go.trai.ch/sweep/internal/core/domain"
)

// Event kinds understood by the replay host. Each maps onto one engine
// notification entry point.
const (
	KindItemSaving    = "item_saving"
	KindItemSaved     = "item_saved"
	KindItemDeleting  = "item_deleting"
	KindTermsChanged  = "terms_changed"
	KindAuthorUpdated = "author_updated"
	KindCommentStatus = "comment_status"
	KindSite          = "site"
)

// Event is one mutation notification in a journal. Only the fields relevant
// to its kind are set.
type Event struct {
	Kind string `yaml:"kind"`

	ItemID          int64   `yaml:"item_id,omitempty"`
	TaxonomyTermIDs []int64 `yaml:"taxonomy_term_ids,omitempty"`

	AuthorID  int64             `yaml:"author_id,omitempty"`
	OldFields map[string]string `yaml:"old_fields,omitempty"`
	NewFields map[string]string `yaml:"new_fields,omitempty"`

	CommentID int64  `yaml:"comment_id,omitempty"`
	OldStatus string `yaml:"old_status,omitempty"`
	NewStatus string `yaml:"new_status,omitempty"`

	Name string `yaml:"name,omitempty"`
}

// Journal is a parsed event journal.
type Journal struct {
	Events []Event `yaml:"events"`
}

// Load reads and parses a journal file, validating every event kind.
func Load(path string) (*Journal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(
			zerr.Wrap(err, domain.ErrFeedReadFailed.Error()), "path", path)
	}

	var journal Journal
	if err := yaml.Unmarshal(data, &journal); err != nil {
		return nil, zerr.With(
			zerr.Wrap(err, domain.ErrFeedParseFailed.Error()), "path", path)
	}

	for i, ev := range journal.Events {
		if !knownKind(ev.Kind) {
			return nil, zerr.With(zerr.With(domain.ErrUnknownEventKind,
				"kind", ev.Kind), "index", i)
		}
	}
	return &journal, nil
}

func knownKind(kind string) bool {
	switch kind {
	case KindItemSaving, KindItemSaved, KindItemDeleting,
		KindTermsChanged, KindAuthorUpdated, KindCommentStatus, KindSite:
		return true
	}
	return false
}
