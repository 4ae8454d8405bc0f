package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/gr36/clubactiv/internal/domain/entity"
)

const requestTimeout = 3 * time.Second

// NewsIndex stores news documents in an Elasticsearch index.
type NewsIndex struct {
	ES    *elasticsearch.Client
	IndexName string
}

func NewNewsIndex(es *elasticsearch.Client, index string) *NewsIndex {
	return &NewsIndex{ES: es, IndexName: index}
}

type newsDoc struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedBy   string `json:"created_by"`
	ImageURL    string `json:"image_url,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func toDoc(n *entity.News) newsDoc {
	return newsDoc{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		CreatedBy:   n.CreatedBy,
		ImageURL:    n.ImageURL,
		CreatedAt:   n.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   n.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func (d newsDoc) toEntity() entity.News {
	n := entity.News{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		CreatedBy:   d.CreatedBy,
		ImageURL:    d.ImageURL,
	}
	n.CreatedAt, _ = time.Parse(time.RFC3339Nano, d.CreatedAt)
	n.UpdatedAt, _ = time.Parse(time.RFC3339Nano, d.UpdatedAt)
	return n
}

func (ix *NewsIndex) Index(ctx context.Context, n *entity.News) error {
	b, err := json.Marshal(toDoc(n))
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{
		Index:      ix.IndexName,
		DocumentID: strconv.FormatInt(n.ID, 10),
		Body:       bytes.NewReader(b),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, ix.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("es index: %s", res.Status())
	}
	return nil
}

func (ix *NewsIndex) Remove(ctx context.Context, id int64) error {
	req := esapi.DeleteRequest{Index: ix.IndexName, DocumentID: strconv.FormatInt(id, 10)}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, ix.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("es delete: %s", res.Status())
	}
	return nil
}

// Search performs a multi_match query on title and description.
func (ix *NewsIndex) Search(ctx context.Context, q string, size int) ([]entity.News, error) {
	b, err := json.Marshal(searchQuery(q, size))
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := ix.ES.Search(
		ix.ES.Search.WithContext(c),
		ix.ES.Search.WithIndex(ix.IndexName),
		ix.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("es search: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source newsDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]entity.News, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source.toEntity())
	}
	return out, nil
}

func searchQuery(q string, size int) map[string]any {
	return map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "description"},
			},
		},
		"sort": []any{"_score", map[string]any{"created_at": "desc"}},
		"size": size,
	}
}

const newsMapping = `{
  "mappings": {
    "properties": {
      "id":          {"type": "long"},
      "title":       {"type": "text", "fields": {"raw": {"type": "keyword", "ignore_above": 255}}},
      "description": {"type": "text"},
      "created_by":  {"type": "keyword"},
      "image_url":   {"type": "keyword", "index": false},
      "created_at":  {"type": "date"},
      "updated_at":  {"type": "date"}
    }
  }
}`

// EnsureIndex creates the index with the news mapping when it does not exist yet.
func (ix *NewsIndex) EnsureIndex(ctx context.Context) error {
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	exists, err := esapi.IndicesExistsRequest{Index: []string{ix.IndexName}}.Do(c, ix.ES)
	if err != nil {
		return err
	}
	_ = exists.Body.Close()
	if exists.StatusCode == 200 {
		return nil
	}
	if exists.StatusCode != 404 {
		return fmt.Errorf("es exists: %s", exists.Status())
	}

	res, err := esapi.IndicesCreateRequest{Index: ix.IndexName, Body: strings.NewReader(newsMapping)}.Do(c, ix.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	// a concurrent instance may have created it first
	if res.IsError() && res.StatusCode != 400 {
		return fmt.Errorf("es create index: %s", res.Status())
	}
	return nil
}
