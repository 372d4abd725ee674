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


package storage

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/newsrank/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, varint.Uint64.Size(uint64(id)))
	varint.Uint64.Marshal(uint64(id), buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	v, _, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return core.ID(v), nil
}

// MarshalArticle serializes an Article to bytes.
// The Article record is a flat set of strings, so the serializer is written
// by hand on MUS primitives instead of generated code.
func MarshalArticle(article *core.Article) []byte {
	size := ord.String.Size(article.Title) +
		ord.String.Size(article.Summary) +
		ord.String.Size(article.Source) +
		ord.String.Size(article.Category) +
		ord.String.Size(article.Link) +
		ord.String.Size(article.PublishedDate)

	buf := make([]byte, size)
	n := ord.String.Marshal(article.Title, buf)
	n += ord.String.Marshal(article.Summary, buf[n:])
	n += ord.String.Marshal(article.Source, buf[n:])
	n += ord.String.Marshal(article.Category, buf[n:])
	n += ord.String.Marshal(article.Link, buf[n:])
	ord.String.Marshal(article.PublishedDate, buf[n:])
	return buf
}

// UnmarshalArticle deserializes an Article from bytes.
func UnmarshalArticle(data []byte) (*core.Article, error) {
	var article core.Article
	n := 0

	fields := []*string{
		&article.Title,
		&article.Summary,
		&article.Source,
		&article.Category,
		&article.Link,
		&article.PublishedDate,
	}
	for _, field := range fields {
		v, c, err := ord.String.Unmarshal(data[n:])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
		}
		*field = v
		n += c
	}

	return &article, nil
}
