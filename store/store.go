// seehuhn.de/go/ink - freehand ink annotations for document pages
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package store keeps the ink annotations of a document, page by page.
//
// Pages are created lazily: a [Page] exists for every page index which has
// been passed to [Store.Ensure] or [Store.SetCurrent].  Pages are never
// removed while the store is in use.
package store

import (
	"errors"
	"fmt"
	"iter"

	"golang.org/x/exp/slices"
)

// ErrNotFound is returned by [Store.Get] for pages which have never been
// visited.
var ErrNotFound = errors.New("page not found")

// Store maps page indices to page annotations.
type Store struct {
	pages   map[int]*Page
	current int
}

// New returns an empty store.  Page 0 is the current page.
func New() *Store {
	s := &Store{
		pages: make(map[int]*Page),
	}
	s.Ensure(0)
	return s
}

// Ensure returns the annotations of page i, creating an empty entry
// if needed.
func (s *Store) Ensure(i int) *Page {
	p, ok := s.pages[i]
	if !ok {
		p = &Page{}
		s.pages[i] = p
	}
	return p
}

// Get returns the annotations of page i.  If the page has never been
// visited, an error wrapping [ErrNotFound] is returned.
func (s *Store) Get(i int) (*Page, error) {
	p, ok := s.pages[i]
	if !ok {
		return nil, fmt.Errorf("page %d: %w", i, ErrNotFound)
	}
	return p, nil
}

// SetCurrent sets the page which subsequent gestures apply to.
func (s *Store) SetCurrent(i int) {
	s.Ensure(i)
	s.current = i
}

// Current returns the index of the current page.
func (s *Store) Current() int {
	return s.current
}

// CurrentPage returns the annotations of the current page.
func (s *Store) CurrentPage() *Page {
	return s.Ensure(s.current)
}

// Len returns the number of pages in the store.
func (s *Store) Len() int {
	return len(s.pages)
}

// All iterates over all pages in the store, in order of increasing page
// index.
func (s *Store) All() iter.Seq2[int, *Page] {
	return func(yield func(int, *Page) bool) {
		keys := make([]int, 0, len(s.pages))
		for key := range s.pages {
			keys = append(keys, key)
		}
		slices.Sort(keys)

		for _, key := range keys {
			if !yield(key, s.pages[key]) {
				return
			}
		}
	}
}
