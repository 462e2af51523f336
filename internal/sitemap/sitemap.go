// Package sitemap renders the directory's sitemap.xml from the static
// catalogs and the published venue listings.
package sitemap

import (
	"context"
	"encoding/xml"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"playfinder/config"
	"playfinder/internal/domain/repository"
	"playfinder/internal/refdata"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// URL is one sitemap entry.
type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// Generator builds sitemap documents for the public site.
type Generator struct {
	venueRepo repository.VenueRepository
	baseURL   string
	logger    *slog.Logger
}

// GeneratorParams holds dependencies for the Generator, injected by Fx.
type GeneratorParams struct {
	fx.In

	VenueRepo repository.VenueRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewGenerator is the constructor for Generator.
func NewGenerator(params GeneratorParams) *Generator {
	baseURL := ""
	if params.Config != nil && params.Config.Sitemap != nil {
		baseURL = strings.TrimSuffix(params.Config.Sitemap.BaseURL, "/")
	}

	return &Generator{
		venueRepo: params.VenueRepo,
		baseURL:   baseURL,
		logger:    params.Logger,
	}
}

// Generate renders the complete sitemap: static pages, one page per
// category, city and state, and one page per published venue.
func (g *Generator) Generate(ctx context.Context) ([]byte, error) {
	set := urlSet{Xmlns: xmlns}

	for _, path := range []string{"", "/search", "/submit-venue", "/newsletter"} {
		set.URLs = append(set.URLs, URL{
			Loc:        g.baseURL + path + "/",
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	for _, category := range refdata.Categories {
		set.URLs = append(set.URLs, URL{
			Loc:        g.baseURL + "/category/" + category.Slug + "/",
			ChangeFreq: "daily",
			Priority:   "0.7",
		})
	}

	for _, state := range refdata.States {
		set.URLs = append(set.URLs, URL{
			Loc:        g.baseURL + "/state/" + state.Code + "/",
			ChangeFreq: "daily",
			Priority:   "0.6",
		})
	}
	for _, city := range refdata.Cities {
		set.URLs = append(set.URLs, URL{
			Loc:        g.baseURL + "/city/" + city.Slug + "/",
			ChangeFreq: "daily",
			Priority:   "0.7",
		})
	}

	entries, err := g.venueRepo.ListPublishedSlugs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list published venues for sitemap")
	}
	for _, entry := range entries {
		set.URLs = append(set.URLs, URL{
			Loc:        g.baseURL + "/venue/" + entry.Slug + "/",
			LastMod:    entry.UpdatedAt.UTC().Format(time.DateOnly),
			ChangeFreq: "weekly",
			Priority:   "0.9",
		})
	}

	g.logger.Info("Sitemap generated", slog.Int("urls", len(set.URLs)))

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal sitemap")
	}

	return append([]byte(xml.Header), body...), nil
}

// WriteFile renders the sitemap and writes it to path atomically.
func (g *Generator) WriteFile(ctx context.Context, path string) error {
	data, err := g.Generate(ctx)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create sitemap directory")
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write sitemap")
	}

	return errors.Wrap(os.Rename(tmp, path), "failed to move sitemap into place")
}
