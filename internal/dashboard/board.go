// Package dashboard is the client side of the live task board: a one-shot
// snapshot load plus a persistent feed subscription reconciled onto a shared
// ordered row view.
package dashboard

import "sync"

// Source labels where a row came from.
type Source string

const (
	SourceAPI       Source = "API"
	SourceWebSocket Source = "WebSocket"
)

// RowClass is presentation-only state for a row.
type RowClass string

const (
	ClassAssigned RowClass = "assigned"
	ClassNew      RowClass = "new"
)

// Row is one rendered task. ID is opaque text; two rows may carry the same
// id, the board does not deduplicate.
type Row struct {
	ID          string
	Description string
	Status      string
	Assignee    string
	Class       RowClass
	Source      Source
}

// Board is the shared row view. A row exists here iff it was rendered by the
// snapshot loader or the feed and has not since been removed by a completion
// or wiped by a shift end. The snapshot fetch and the feed run on separate
// goroutines, so mutation is serialized internally.
type Board struct {
	mu   sync.RWMutex
	rows []Row
}

func NewBoard() *Board {
	return &Board{}
}

// Prepend puts a row at the top; feed updates land here so the most recent
// row is first.
func (b *Board) Prepend(r Row) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rows = append([]Row{r}, b.rows...)
}

// Append puts a row at the bottom; the snapshot loader uses it to keep the
// service's own ordering.
func (b *Board) Append(r Row) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rows = append(b.rows, r)
}

// RemoveByID removes the first row whose id matches textually. Reports
// whether a row was removed; a miss is a no-op.
func (b *Board) RemoveByID(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.rows {
		if b.rows[i].ID == id {
			b.rows = append(b.rows[:i], b.rows[i+1:]...)
			return true
		}
	}
	return false
}

// Clear wipes every row.
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rows = nil
}

// Rows returns a copy of the current rows, top first.
func (b *Board) Rows() []Row {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Row, len(b.rows))
	copy(out, b.rows)
	return out
}

func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.rows)
}
