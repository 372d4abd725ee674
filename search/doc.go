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


// Package search ranks syndicated articles against user queries.
//
// The Searcher type chooses a strategy per query:
//   - Short queries are scored lexically over title, summary, source and category
//   - Longer queries are scored by embedding similarity over a narrowed
//     candidate set, combined with lexical overlap
//   - Degraded conditions (no embedder, failed query embedding, unusable
//     interpreter output) fall back to keyword ranking
//
// A search never fails: every path returns a well-formed result.
package search
