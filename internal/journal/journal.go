package journal

import (
	"fmt"
	"io"
)

type Entry struct {
	Record    Record
	Committed bool // always true, there is no two-phase commit
}

// Operation returns the entry description. The zero Entry has none.
func (e Entry) Operation() string {
	if e.Record == nil {
		return ""
	}
	return e.Record.String()
}

// Journal is an in-memory, append-only log of operation records. Undo
// shrinks the log only; reversing the described effect is up to the caller.
type Journal struct {
	entries []Entry
}

func New() *Journal {
	return &Journal{entries: make([]Entry, 0)}
}

// Log appends a free-text entry.
func (j *Journal) Log(description string) {
	j.Append(Note{Text: description})
}

func (j *Journal) Append(r Record) {
	j.entries = append(j.entries, Entry{Record: r, Committed: true})
}

// Undo removes the most recent entry and returns its description.
// ok is false when the journal is empty.
func (j *Journal) Undo() (description string, ok bool) {
	e, ok := j.Pop()
	if !ok {
		return "", false
	}
	return e.Operation(), true
}

func (j *Journal) Pop() (Entry, bool) {
	n := len(j.entries)
	if n == 0 {
		return Entry{}, false
	}
	e := j.entries[n-1]
	j.entries[n-1] = Entry{}
	j.entries = j.entries[:n-1]
	return e, true
}

func (j *Journal) Peek() (Entry, bool) {
	if len(j.entries) == 0 {
		return Entry{}, false
	}
	return j.entries[len(j.entries)-1], true
}

func (j *Journal) Len() int {
	return len(j.entries)
}

// Entries returns a copy of the log in append order.
func (j *Journal) Entries() []Entry {
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Print writes a 1-indexed listing of every entry in append order.
func (j *Journal) Print(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Journal Entries:"); err != nil {
		return err
	}
	for i, e := range j.entries {
		if _, err := fmt.Fprintf(w, "%d. %s [Committed: %t]\n", i+1, e.Operation(), e.Committed); err != nil {
			return err
		}
	}
	return nil
}
