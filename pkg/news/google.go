package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"geolens/internal/model"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed/rss"
)

const defaultBaseURL = "https://news.google.com"

// Collector fetches articles from the Google News RSS search endpoint for a
// keywords+location query. Entries without a parseable publish time are
// dropped; an optional inclusive date window filters the rest.
type Collector struct {
	baseURL    string
	lang       string
	country    string
	ceid       string
	httpClient *http.Client
	parser     *rss.Parser
}

// NewCollector builds a collector for the given feed locale. Empty values
// fall back to the es-419/MX locale.
func NewCollector(lang, country string) *Collector {
	if lang == "" {
		lang = "es-419"
	}
	if country == "" {
		country = "MX"
	}
	base := lang
	if i := strings.Index(base, "-"); i > 0 {
		base = base[:i]
	}
	return &Collector{
		baseURL:    defaultBaseURL,
		lang:       lang,
		country:    country,
		ceid:       country + ":" + base,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		parser:     &rss.Parser{},
	}
}

// Fetch returns records sorted by publish time descending. Either date bound
// may be nil; supplied bounds are inclusive, expanded to the full day in UTC.
func (c *Collector) Fetch(ctx context.Context, location, keywords string, start, end *time.Time) ([]model.NewsRecord, error) {
	query := strings.TrimSpace(strings.TrimSpace(keywords) + " " + strings.TrimSpace(location))

	params := url.Values{}
	params.Set("q", query)
	params.Set("hl", c.lang)
	params.Set("gl", c.country)
	params.Set("ceid", c.ceid)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/rss/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("news request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news fetch: unexpected status %d", resp.StatusCode)
	}

	feed, err := c.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("news parse: %w", err)
	}

	records := make([]model.NewsRecord, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.PubDateParsed == nil {
			continue
		}
		published := item.PubDateParsed.UTC()

		if start != nil {
			lo := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
			if published.Before(lo) {
				continue
			}
		}
		if end != nil {
			hi := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, time.UTC)
			if published.After(hi) {
				continue
			}
		}

		source := ""
		if item.Source != nil {
			source = item.Source.Title
		}
		if source == "" {
			source = item.Author
		}

		records = append(records, model.NewsRecord{
			Title:       item.Title,
			Description: stripHTML(item.Description),
			URL:         item.Link,
			Source:      source,
			PublishedAt: published,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].PublishedAt.After(records[j].PublishedAt)
	})

	return records, nil
}

// Google News wraps descriptions in anchor markup; only the text matters
// downstream.
func stripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(doc.Text())
}
