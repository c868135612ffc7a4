// Package carousel keeps the position of named, paginated lists of book cards.
//
// A carousel shows a window of PageSize books starting at its offset. Offsets are held
// in Offsets, which callers keep in the user session and pass in explicitly. State
// transitions (Previous, Next) and rendering (Render) are separate steps.
package carousel

import (
	"fmt"

	"github.com/gosimple/slug"
	"github.com/librelibrary/librelibrary/internal/card"
	"github.com/librelibrary/librelibrary/internal/openlibrary"
	"github.com/librelibrary/librelibrary/internal/result"
)

const SearchResults = "search_results"

// Offsets maps carousel names to the index of their first visible book.
// A name without an entry is at offset 0.
type Offsets map[string]int

// View is what a carousel shows for a given list of books and offset.
type View struct {
	result.Paginated[[]card.Card]
	Name string
	// Reconciled is true when the stored offset did not fit the list and was moved.
	Reconciled bool
}

// First is the 1-based position of the first visible book, or 0 if there is none.
func (v View) First() int {
	if len(v.Hits()) == 0 {
		return 0
	}
	return v.Offset() + 1
}

// Last is the 1-based position of the last visible book.
func (v View) Last() int {
	return v.Offset() + len(v.Hits())
}

func (o Offsets) Offset(name string) int {
	return o[name]
}

// Previous moves the carousel back one page, unless it is already at the start.
func (o Offsets) Previous(name string, pageSize int) bool {
	pageSize = normalize(pageSize)
	offset := o[name]
	if offset <= 0 {
		return false
	}
	offset -= pageSize
	if offset < 0 {
		offset = 0
	}
	o[name] = offset
	return true
}

// Next moves the carousel forward one page, unless the current page already
// reaches the end of a list of total books.
func (o Offsets) Next(name string, pageSize, total int) bool {
	pageSize = normalize(pageSize)
	offset := o[name]
	if offset+pageSize >= total {
		return false
	}
	o[name] = offset + pageSize
	return true
}

// Reconcile clamps the offset of name so it is a multiple of pageSize within
// [0, total). Past the end it moves to the start of the last page.
func (o Offsets) Reconcile(name string, pageSize, total int) bool {
	pageSize = normalize(pageSize)
	offset, ok := o[name]
	if !ok {
		return false
	}

	clamped := offset - offset%pageSize
	switch {
	case clamped < 0 || total <= 0:
		clamped = 0
	case clamped >= total:
		clamped = ((total - 1) / pageSize) * pageSize
	}
	if clamped == offset {
		return false
	}
	o[name] = clamped
	return true
}

// Render reconciles the offset of name with books and builds the cards of the
// visible window.
func (o Offsets) Render(name string, books []openlibrary.Book, pageSize int, opts card.Options) View {
	pageSize = normalize(pageSize)
	reconciled := o.Reconcile(name, pageSize, len(books))

	start := o.Offset(name)
	end := min(start+pageSize, len(books))

	cards := make([]card.Card, 0, end-start)
	for _, book := range books[start:end] {
		cards = append(cards, card.New(book, KeyPrefix(book, start), opts))
	}

	return View{
		Paginated:  result.NewPaginated(pageSize, start/pageSize+1, len(books), cards),
		Name:       name,
		Reconciled: reconciled,
	}
}

// KeyPrefix identifies the cards of book when shown from offset.
func KeyPrefix(book openlibrary.Book, offset int) string {
	return fmt.Sprintf("%s_%d", slug.Make(book.Key), offset)
}

func normalize(pageSize int) int {
	if pageSize < 1 {
		return 1
	}
	return pageSize
}
