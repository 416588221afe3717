package places

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
)

func TestSearch_SendsParamsAndHeaders(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	var gotAuth, gotVersion string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("X-Places-Api-Version")
		_ = json.NewEncoder(w).Encode(searchResponse{Results: []Place{
			{FsqID: "p1", Name: "Schwartz's Deli", Rating: 4.6},
		}})
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, zerolog.Nop())
	results, err := c.Search(context.Background(), SearchRequest{
		Query: "food",
		Near:  "Montreal",
		Limit: 5,
		Sort:  SortRating,
	})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if gotPath != "/places/search" {
		t.Errorf("path = %q, want /places/search", gotPath)
	}
	if gotQuery.Get("query") != "food" || gotQuery.Get("near") != "Montreal" {
		t.Errorf("query params = %v", gotQuery)
	}
	if gotQuery.Get("limit") != "5" || gotQuery.Get("sort") != "RATING" {
		t.Errorf("limit/sort params = %v", gotQuery)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q, want Bearer test-key", gotAuth)
	}
	if gotVersion != "2025-06-17" {
		t.Errorf("X-Places-Api-Version = %q, want 2025-06-17", gotVersion)
	}

	if len(results) != 1 || results[0].Name != "Schwartz's Deli" {
		t.Errorf("unexpected results: %+v", results)
	}
}

func TestSearch_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid credentials"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient("bad-key", srv.URL, zerolog.Nop())
	_, err := c.Search(context.Background(), SearchRequest{Query: "food", Near: "Montreal", Limit: 5, Sort: SortRating})
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
	if !errors.Is(err, ErrSearchFailed) {
		t.Errorf("error %v does not match ErrSearchFailed", err)
	}
}

func TestSearch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Connection refused from here on.

	c := NewClient("test-key", srv.URL, zerolog.Nop())
	_, err := c.Search(context.Background(), SearchRequest{Query: "food", Near: "Montreal", Limit: 5, Sort: SortRating})
	if !errors.Is(err, ErrSearchFailed) {
		t.Errorf("error %v does not match ErrSearchFailed", err)
	}
}

func TestSearch_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": [`))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, zerolog.Nop())
	_, err := c.Search(context.Background(), SearchRequest{Query: "food", Near: "Montreal", Limit: 5, Sort: SortRating})
	if !errors.Is(err, ErrSearchFailed) {
		t.Errorf("error %v does not match ErrSearchFailed", err)
	}
}

func TestSearch_EmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, zerolog.Nop())
	results, err := c.Search(context.Background(), SearchRequest{Query: "food", Near: "Nowhere", Limit: 5, Sort: SortRating})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected empty results, got %+v", results)
	}
}
