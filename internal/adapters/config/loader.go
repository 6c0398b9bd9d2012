// Package config provides the configuration loader for sweep.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"go.trai.ch/sweep/internal/core/domain"
)

// FileName is the configuration file sweep looks for.
const FileName = "sweep.yaml"

// Loader loads engine settings from a sweep.yaml file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load walks up from cwd to find sweep.yaml and returns the settings it
// describes, overlaid on the stock defaults. Settings are immutable once
// loaded.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return domain.Settings{}, err
	}
	return l.loadFile(configPath)
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := cwd
	for {
		configPath := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}
	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) loadFile(configPath string) (domain.Settings, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return domain.Settings{}, zerr.With(
			zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var file SweepFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Settings{}, zerr.With(
			zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	settings := domain.DefaultSettings()
	applyFile(&settings, &file)

	if _, err := settings.Host(); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}

// applyFile overlays the parsed file on the defaults. Absent sequences keep
// their defaults; an explicitly empty sequence clears the default.
func applyFile(settings *domain.Settings, file *SweepFile) {
	settings.BaseURL = file.Site.BaseURL
	settings.PostsPagePath = file.Site.PostsPage
	settings.PostsPageType = file.Site.PostsPageType
	if file.Site.AuthorBase != "" {
		settings.AuthorBasePath = file.Site.AuthorBase
	}
	for taxonomy, segment := range file.Site.TaxonomyPaths {
		settings.TaxonomyPaths[taxonomy] = segment
	}

	if file.Cache.Enabled != nil {
		settings.Enabled = *file.Cache.Enabled
	}
	settings.Endpoint = file.Cache.Endpoint
	if file.Cache.Method != "" {
		settings.Method = file.Cache.Method
	}
	settings.TagPrefix = file.Cache.TagPrefix

	if file.Content.PublicStatuses != nil {
		settings.PublicStatuses = file.Content.PublicStatuses
	}
	if file.Content.ExcludedTypes != nil {
		settings.ExcludedTypes = file.Content.ExcludedTypes
	}
	if file.Content.PublicCommentStatuses != nil {
		settings.PublicCommentStatuses = file.Content.PublicCommentStatuses
	}
	if file.Content.ProfileFields != nil {
		settings.ProfileFields = file.Content.ProfileFields
	}
	if file.Content.FullFlushEvents != nil {
		settings.FullFlushEvents = file.Content.FullFlushEvents
	}

	settings.StoreDSN = file.Store.DSN
	settings.Debug = file.Debug
}
