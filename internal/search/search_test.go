package search_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/require"

	"github.com/okhotnikov/libman/internal/search"
)

// fakeES answers like an Elasticsearch node, recording the last request.
func fakeES(t *testing.T, respond string) (*elasticsearch.Client, *http.Request, *[]byte) {
	t.Helper()
	var lastReq http.Request
	var lastBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastReq = *r
		lastBody, _ = io.ReadAll(r.Body)
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(respond))
	}))
	t.Cleanup(srv.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return client, &lastReq, &lastBody
}

func TestBooksQueryExcludesRestricted(t *testing.T) {
	client, _, body := fakeES(t,
		`{"hits":{"total":{"value":1},"hits":[{"_source":{"id":2,"title":"Dune","author":"Herbert"}}]}}`)

	total, books, err := search.Books(context.Background(), client, "books", "dune", 0, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, books, 1)
	require.Equal(t, "Dune", books[0].Title)

	var q struct {
		Query struct {
			Bool struct {
				Filter struct {
					Term map[string]bool `json:"term"`
				} `json:"filter"`
			} `json:"bool"`
		} `json:"query"`
	}
	require.NoError(t, json.Unmarshal(*body, &q))
	restricted, ok := q.Query.Bool.Filter.Term["restricted"]
	require.True(t, ok, "query must carry the restricted filter")
	require.False(t, restricted)
}

func TestDeleteBookTargetsDocument(t *testing.T) {
	client, req, _ := fakeES(t, `{"result":"deleted"}`)

	require.NoError(t, search.DeleteBook(context.Background(), client, "books", 7))
	require.Equal(t, http.MethodDelete, req.Method)
	require.Equal(t, "/books/_doc/7", req.URL.Path)
}

func TestDeleteBookNilClientIsNoop(t *testing.T) {
	require.NoError(t, search.DeleteBook(context.Background(), nil, "books", 7))
}
