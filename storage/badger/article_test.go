package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/newsrank/core"
	"github.com/poiesic/newsrank/storage"
)

func TestArticleBasics(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	article := &core.Article{
		Title:         "GPT-4 launches",
		Summary:       "OpenAI ships a new model",
		Source:        "openai",
		Link:          "https://example.com/gpt4",
		PublishedDate: "2025-08-01",
	}

	added, err := repo.AddArticles(ctx, article)
	if err != nil {
		t.Fatalf("Failed to add article: %v", err)
	}
	if len(added) != 1 {
		t.Fatalf("Expected 1 article, got %d", len(added))
	}

	retrieved, err := repo.GetArticleByLink(ctx, article.Link)
	if err != nil {
		t.Fatalf("Failed to get article: %v", err)
	}
	if retrieved.Title != "GPT-4 launches" {
		t.Fatalf("Expected 'GPT-4 launches', got '%s'", retrieved.Title)
	}

	count, err := repo.CountArticles(ctx)
	if err != nil {
		t.Fatalf("Failed to count articles: %v", err)
	}
	if count != 1 {
		t.Fatalf("Expected 1 article, got %d", count)
	}
}

func TestArticleUpsertByLink(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	link := "https://example.com/updated"

	_, err = repo.AddArticles(ctx, &core.Article{
		Title:         "First version",
		Link:          link,
		PublishedDate: "2025-07-01",
	})
	if err != nil {
		t.Fatalf("Failed to add article: %v", err)
	}

	_, err = repo.AddArticles(ctx, &core.Article{
		Title:         "Second version",
		Link:          link,
		PublishedDate: "2025-08-01",
	})
	if err != nil {
		t.Fatalf("Failed to re-add article: %v", err)
	}

	count, err := repo.CountArticles(ctx)
	if err != nil {
		t.Fatalf("Failed to count articles: %v", err)
	}
	if count != 1 {
		t.Fatalf("Expected upsert to keep 1 article, got %d", count)
	}

	retrieved, err := repo.GetArticleByLink(ctx, link)
	if err != nil {
		t.Fatalf("Failed to get article: %v", err)
	}
	if retrieved.Title != "Second version" {
		t.Fatalf("Expected replacement, got '%s'", retrieved.Title)
	}

	// Stale date index entries must not surface deleted versions
	recent, err := repo.GetRecentArticles(ctx, 10)
	if err != nil {
		t.Fatalf("Failed to get recent articles: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("Expected 1 recent article, got %d", len(recent))
	}
}

func TestArticleEmptyLinkRejected(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() {
		repo.Close()
		backend.Close()
	}()

	_, err = repo.AddArticles(context.Background(), &core.Article{Title: "no link"})
	if !errors.Is(err, core.ErrEmptyLink) {
		t.Fatalf("Expected ErrEmptyLink, got %v", err)
	}
}

func TestGetRecentArticles(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	articles := []*core.Article{
		{Title: "old", Link: "https://example.com/old", PublishedDate: "2025-01-05"},
		{Title: "newest", Link: "https://example.com/newest", PublishedDate: "2025-08-20"},
		{Title: "middle", Link: "https://example.com/middle", PublishedDate: "2025-05-10"},
		{Title: "undated", Link: "https://example.com/undated"},
	}
	if _, err := repo.AddArticles(ctx, articles...); err != nil {
		t.Fatalf("Failed to add articles: %v", err)
	}

	recent, err := repo.GetRecentArticles(ctx, 2)
	if err != nil {
		t.Fatalf("Failed to get recent articles: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 articles, got %d", len(recent))
	}
	if recent[0].Title != "newest" || recent[1].Title != "middle" {
		t.Fatalf("Wrong recency order: %s, %s", recent[0].Title, recent[1].Title)
	}

	// Undated articles sort last
	all, err := repo.GetRecentArticles(ctx, 10)
	if err != nil {
		t.Fatalf("Failed to get recent articles: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("Expected 4 articles, got %d", len(all))
	}
	if all[3].Title != "undated" {
		t.Fatalf("Expected undated article last, got '%s'", all[3].Title)
	}
}

func TestDeleteArticles(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	link := "https://example.com/doomed"

	_, err = repo.AddArticles(ctx, &core.Article{Title: "doomed", Link: link, PublishedDate: "2025-03-01"})
	if err != nil {
		t.Fatalf("Failed to add article: %v", err)
	}

	if err := repo.DeleteArticles(ctx, core.IDFromLink(link)); err != nil {
		t.Fatalf("Failed to delete article: %v", err)
	}

	if _, err := repo.GetArticleByLink(ctx, link); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	if err := repo.DeleteArticles(ctx, core.IDFromLink(link)); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound on double delete, got %v", err)
	}

	recent, err := repo.GetRecentArticles(ctx, 10)
	if err != nil {
		t.Fatalf("Failed to get recent articles: %v", err)
	}
	if len(recent) != 0 {
		t.Fatalf("Expected no recent articles after delete, got %d", len(recent))
	}
}

func TestListArticles(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	if _, err := repo.AddArticles(ctx,
		&core.Article{Title: "a", Link: "https://example.com/a"},
		&core.Article{Title: "b", Link: "https://example.com/b", PublishedDate: "2025-06-01"},
	); err != nil {
		t.Fatalf("Failed to add articles: %v", err)
	}

	all, err := repo.ListArticles(ctx)
	if err != nil {
		t.Fatalf("Failed to list articles: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 articles, got %d", len(all))
	}
}
