// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// ValidateArticle validates an Article according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - PublishedDate, if present, must be an ISO YYYY-MM-DD calendar date
//
// NOT validated:
//   - Link (empty links are legal in the ranking pipeline; storage enforces
//     non-empty links separately via ValidateStorableArticle)
//   - Category (assigned upstream, may be absent)
func ValidateArticle(article *Article) error {
	if article == nil {
		return fmt.Errorf("%w: article is nil", ErrInvalidArticle)
	}

	if article.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidArticle, ErrEmptyTitle)
	}

	if article.PublishedDate != "" {
		if _, ok := article.PublishedTime(); !ok {
			return fmt.Errorf("%w: %w: %q", ErrInvalidArticle, ErrInvalidPublishedDate, article.PublishedDate)
		}
	}

	return nil
}

// ValidateStorableArticle validates an Article for persistence.
// Storage keys articles by link, so the link must be non-empty on top of
// the usual article rules.
func ValidateStorableArticle(article *Article) error {
	if err := ValidateArticle(article); err != nil {
		return err
	}

	if article.Link == "" {
		return fmt.Errorf("%w: %w", ErrInvalidArticle, ErrEmptyLink)
	}

	return nil
}
