package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gr36/clubactiv/internal/domain/entity"
)

func newTestIndex(t *testing.T, h http.HandlerFunc) *NewsIndex {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the client checks this header to confirm it talks to Elasticsearch
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		h(w, r)
	}))
	t.Cleanup(srv.Close)

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return NewNewsIndex(es, "news")
}

func TestIndexPutsDocumentUnderNewsID(t *testing.T) {
	var gotPath string
	var gotDoc map[string]any
	ix := newTestIndex(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &gotDoc)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"result":"created"}`))
	})

	n := &entity.News{ID: 42, Title: "Spring cleanup", Description: "Bring gloves", CreatedAt: time.Now()}
	require.NoError(t, ix.Index(context.Background(), n))

	assert.Equal(t, "/news/_doc/42", gotPath)
	assert.Equal(t, "Spring cleanup", gotDoc["title"])
}

func TestRemoveIgnoresMissingDocument(t *testing.T) {
	ix := newTestIndex(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"result":"not_found"}`))
	})

	assert.NoError(t, ix.Remove(context.Background(), 7))
}

func TestSearchDecodesHits(t *testing.T) {
	ix := newTestIndex(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/news/_search", r.URL.Path)
		_, _ = w.Write([]byte(`{"hits":{"hits":[
			{"_id":"3","_source":{"id":3,"title":"Chess night","description":"Friday","created_by":"anna","created_at":"2024-05-01T10:00:00Z"}}
		]}}`))
	})

	got, err := ix.Search(context.Background(), "chess", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, "Chess night", got[0].Title)
	assert.Equal(t, 2024, got[0].CreatedAt.Year())
}

func TestSearchReturnsErrorOnFailureStatus(t *testing.T) {
	ix := newTestIndex(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"bad query"}`))
	})

	_, err := ix.Search(context.Background(), "x", 10)
	assert.Error(t, err)
}

func TestSearchQueryBoostsTitle(t *testing.T) {
	q := searchQuery("chess", 5)

	mm := q["query"].(map[string]any)["multi_match"].(map[string]any)
	assert.Equal(t, []string{"title^2", "description"}, mm["fields"])
	assert.Equal(t, 5, q["size"])
}

func TestEnsureIndexCreatesMissingIndex(t *testing.T) {
	var calls []string
	ix := newTestIndex(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodHead:
			w.WriteHeader(http.StatusNotFound)
		case http.MethodPut:
			b, _ := io.ReadAll(r.Body)
			assert.Contains(t, string(b), `"created_by"`)
			_, _ = w.Write([]byte(`{"acknowledged":true}`))
		}
	})

	require.NoError(t, ix.EnsureIndex(context.Background()))
	assert.Equal(t, []string{"HEAD /news", "PUT /news"}, calls)
}

func TestEnsureIndexSkipsExistingIndex(t *testing.T) {
	var calls int
	ix := newTestIndex(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, ix.EnsureIndex(context.Background()))
	assert.Equal(t, 1, calls)
}
