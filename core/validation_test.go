package core

import (
	"errors"
	"testing"
)

func TestValidateArticle(t *testing.T) {
	tests := []struct {
		name    string
		article *Article
		wantErr error
	}{
		{
			name: "valid article",
			article: &Article{
				Title:         "GPT-4 launches",
				Summary:       "OpenAI ships a new model",
				Source:        "openai",
				Link:          "https://example.com/gpt4",
				PublishedDate: "2025-08-01",
			},
			wantErr: nil,
		},
		{
			name: "valid article without date",
			article: &Article{
				Title: "Claude update",
				Link:  "https://example.com/claude",
			},
			wantErr: nil,
		},
		{
			name: "valid article without link",
			article: &Article{
				Title: "Weather today",
			},
			wantErr: nil,
		},
		{
			name:    "nil article",
			article: nil,
			wantErr: ErrInvalidArticle,
		},
		{
			name: "empty title",
			article: &Article{
				Summary: "no title here",
				Link:    "https://example.com/x",
			},
			wantErr: ErrEmptyTitle,
		},
		{
			name: "bad published date",
			article: &Article{
				Title:         "Broken feed item",
				PublishedDate: "August 1st",
			},
			wantErr: ErrInvalidPublishedDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateArticle(tt.article)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateArticle() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateArticle() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateStorableArticle(t *testing.T) {
	t.Run("link required", func(t *testing.T) {
		err := ValidateStorableArticle(&Article{Title: "no link"})
		if !errors.Is(err, ErrEmptyLink) {
			t.Errorf("ValidateStorableArticle() error = %v, want %v", err, ErrEmptyLink)
		}
	})

	t.Run("valid", func(t *testing.T) {
		err := ValidateStorableArticle(&Article{
			Title: "ok",
			Link:  "https://example.com/ok",
		})
		if err != nil {
			t.Errorf("ValidateStorableArticle() unexpected error: %v", err)
		}
	})

	t.Run("title rule still applies", func(t *testing.T) {
		err := ValidateStorableArticle(&Article{Link: "https://example.com/untitled"})
		if !errors.Is(err, ErrEmptyTitle) {
			t.Errorf("ValidateStorableArticle() error = %v, want %v", err, ErrEmptyTitle)
		}
	})
}
