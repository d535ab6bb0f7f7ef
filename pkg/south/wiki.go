package south

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"fossil-api/cmd/fossil-api-server/app/config"
	fossilApiLog "fossil-api/pkg/logger"
	"fossil-api/pkg/util/common"

	"github.com/dgraph-io/ristretto"
)

type IImageFinder interface {
	// FindImage returns a thumbnail url for keyword, or "" when there is none or the lookup failed.
	FindImage(ctx context.Context, keyword string) string
}

type wikiSearchReply struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type wikiPageImageReply struct {
	Query struct {
		Pages map[string]struct {
			Title     string `json:"title"`
			Thumbnail *struct {
				Source string `json:"source"`
			} `json:"thumbnail,omitempty"`
		} `json:"pages"`
	} `json:"query"`
}

// WikiImageFinder resolves a keyword to the best matching article and then to its page image.
type WikiImageFinder struct {
	config *config.Wiki
	cache  *ristretto.Cache
}

func NewWikiImageFinder(wikiConfig *config.Wiki) (*WikiImageFinder, error) {
	finder := &WikiImageFinder{config: wikiConfig}
	if wikiConfig.CacheTTL > 0 {
		cache, err := ristretto.NewCache(&ristretto.Config{
			NumCounters: 10000,
			MaxCost:     1000,
			BufferItems: 64,
		})
		if err != nil {
			return nil, err
		}
		finder.cache = cache
	}
	return finder, nil
}

func (f *WikiImageFinder) FindImage(ctx context.Context, keyword string) string {
	keyword = strings.TrimSpace(keyword)
	if f.config.Disabled || keyword == "" {
		return ""
	}

	if f.cache != nil {
		if cached, found := f.cache.Get(keyword); found {
			return cached.(string)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, f.config.Timeout)
	defer cancel()

	imageUrl, err := f.lookup(ctx, keyword)
	if err != nil {
		fossilApiLog.Logger.Warn("wiki lookup failed", "keyword", keyword, "error", err)
		return ""
	}

	// misses are cached too so the same unknown keyword does not hit wikipedia twice
	if f.cache != nil {
		f.cache.SetWithTTL(keyword, imageUrl, 1, f.config.CacheTTL)
		f.cache.Wait()
	}
	return imageUrl
}

func (f *WikiImageFinder) lookup(ctx context.Context, keyword string) (string, error) {
	search := &wikiSearchReply{}
	err := f.query(ctx, url.Values{
		"action":   {"query"},
		"list":     {"search"},
		"srsearch": {keyword},
		"srlimit":  {"1"},
		"format":   {"json"},
	}, search)
	if err != nil {
		return "", err
	}
	if len(search.Query.Search) == 0 {
		return "", nil
	}
	title := search.Query.Search[0].Title

	pageImage := &wikiPageImageReply{}
	err = f.query(ctx, url.Values{
		"action":      {"query"},
		"titles":      {title},
		"prop":        {"pageimages"},
		"format":      {"json"},
		"pithumbsize": {strconv.Itoa(f.config.ThumbSize)},
	}, pageImage)
	if err != nil {
		return "", err
	}
	for _, page := range pageImage.Query.Pages {
		if page.Thumbnail != nil && page.Thumbnail.Source != "" {
			return page.Thumbnail.Source, nil
		}
	}
	return "", nil
}

func (f *WikiImageFinder) query(ctx context.Context, query url.Values, result any) error {
	requestUrl, err := common.BuildQueryUrl(f.config.Endpoint, query)
	if err != nil {
		return err
	}
	header := map[string][]string{}
	if f.config.UserAgent != "" {
		header["User-Agent"] = []string{f.config.UserAgent}
	}
	body, _, code, err := common.CommonRequest(ctx, requestUrl, http.MethodGet, nil, header, false, 0)
	if err != nil {
		return err
	}
	if code != http.StatusOK {
		return &StatusError{Code: code, Body: string(body)}
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("wiki reply: %w", err)
	}
	return nil
}
