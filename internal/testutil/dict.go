// Copyright 2025 The histlex Authors
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

// Package testutil provides test fixtures for dictionary tests.
package testutil

import (
	"testing"

	"github.com/histlex/histlex/article"
)

// MakeArticle builds a test article with the given identifier and
// forms and a single text section.
func MakeArticle(t *testing.T, id string, forms ...string) *article.Article {
	t.Helper()
	a, err := article.New(id, forms, []*article.Data{
		{Type: article.UTFTextType, Data: []byte("definition of " + id)},
	})
	if err != nil {
		t.Fatalf("article.New(%q): unexpected error: %v", id, err)
	}
	return a
}
