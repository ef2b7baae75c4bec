package journal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	VerbCreateDirectory = "CREATE DIRECTORY"
	VerbCreateFile      = "CREATE FILE"
	VerbAddFile         = "ADD FILE"
	VerbWriteFile       = "WRITE TO FILE"

	toDirectory = "TO DIRECTORY"
)

var ErrInvalidEntry = errors.New("invalid journal entry")

// Record is one logged operation. String renders the human-readable
// description shown in journal listings.
type Record interface {
	Verb() string
	String() string
}

type CreateDirectory struct {
	Name string
}

func (r CreateDirectory) Verb() string   { return VerbCreateDirectory }
func (r CreateDirectory) String() string { return VerbCreateDirectory + ": " + r.Name }

type CreateFile struct {
	Name string
}

func (r CreateFile) Verb() string   { return VerbCreateFile }
func (r CreateFile) String() string { return VerbCreateFile + ": " + r.Name }

type AddFile struct {
	FileIno uint64
	DirIno  uint64
}

func (r AddFile) Verb() string { return VerbAddFile }
func (r AddFile) String() string {
	return fmt.Sprintf("%s: %d %s: %d", VerbAddFile, r.FileIno, toDirectory, r.DirIno)
}

type WriteFile struct {
	FileIno uint64
}

func (r WriteFile) Verb() string   { return VerbWriteFile }
func (r WriteFile) String() string { return fmt.Sprintf("%s: %d", VerbWriteFile, r.FileIno) }

// Note is a free-text entry appended through Journal.Log.
type Note struct {
	Text string
}

func (r Note) Verb() string {
	verb, _, _ := strings.Cut(r.Text, ":")
	return strings.TrimSpace(verb)
}

func (r Note) String() string { return r.Text }

// ParseRecord recovers a typed record from a description of the form
// "<VERB>: <arg>[: <arg>]". Unknown verbs come back as a Note.
func ParseRecord(text string) (Record, error) {
	parts := strings.Split(text, ":")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEntry, text)
	}

	switch parts[0] {
	case VerbCreateDirectory:
		return CreateDirectory{Name: strings.Join(parts[1:], ":")}, nil
	case VerbCreateFile:
		return CreateFile{Name: strings.Join(parts[1:], ":")}, nil
	case VerbWriteFile:
		// A write with a malformed ino is rejected rather than skipped, so
		// undo reports it instead of dropping it silently.
		ino, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidEntry, text, err)
		}
		return WriteFile{FileIno: ino}, nil
	case VerbAddFile:
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidEntry, text)
		}
		fileStr, ok := strings.CutSuffix(parts[1], toDirectory)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidEntry, text)
		}
		fileIno, err := strconv.ParseUint(strings.TrimSpace(fileStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidEntry, text, err)
		}
		dirIno, err := strconv.ParseUint(parts[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidEntry, text, err)
		}
		return AddFile{FileIno: fileIno, DirIno: dirIno}, nil
	default:
		return Note{Text: text}, nil
	}
}
