package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/S1riyS/os-course-lab-4/journalfs/internal/models"
	"github.com/S1riyS/os-course-lab-4/journalfs/internal/service"
	"github.com/S1riyS/os-course-lab-4/journalfs/pkg/logging"
	"github.com/fatih/color"
)

var bold = color.New(color.Bold)

// RunDemo builds a small tree, writes one file, then shows the listing,
// the file contents and the journal before and after a log-only undo.
func RunDemo(ctx context.Context, w io.Writer, fs service.FileSystemService) error {
	const op = "app.RunDemo"

	logger := logging.GetLoggerFromContextWithOp(ctx, op)
	logger.Info("Starting demo")

	dir1 := fs.CreateDirectory(ctx, "Documents")
	dir2 := fs.CreateDirectory(ctx, "Pictures")
	file1 := fs.CreateFile(ctx, "doc1.txt")
	file2 := fs.CreateFile(ctx, "doc2.txt")
	file3 := fs.CreateFile(ctx, "pic1.jpg")

	fs.AddFileToDirectory(ctx, file1, dir1)
	fs.AddFileToDirectory(ctx, file2, dir1)
	fs.AddFileToDirectory(ctx, file3, dir2)

	if err := fs.WriteToFile(ctx, file1, []byte("Hello, world!")); err != nil {
		fmt.Fprintf(w, "Error: %s\n", err)
	}

	section(w, "Directory Listing")
	if err := PrintListing(w, fs.ListDirectoriesAndFiles(ctx)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	data := fs.ReadFile(ctx, file1)
	section(w, "Read File")
	fmt.Fprintf(w, "File Data: %s\n", displayText(data))

	section(w, "Journal")
	if err := fs.Journal().Print(w); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	section(w, "Undo Operation")
	if undone, ok := fs.Journal().Undo(); ok {
		fmt.Fprintf(w, "Undid operation: %s\n", undone)
	} else {
		fmt.Fprintln(w, "Nothing to undo.")
	}

	section(w, "Final Journal")
	if err := fs.Journal().Print(w); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	logger.Info("Demo finished", slog.Int("journal_len", fs.Journal().Len()))
	return nil
}

func section(w io.Writer, title string) {
	bold.Fprintf(w, "\n=== %s ===\n", title)
}

// displayText replaces invalid UTF-8 sequences with U+FFFD.
func displayText(data []byte) string {
	return strings.ToValidUTF8(string(data), "\uFFFD")
}

func PrintListing(w io.Writer, listings []models.DirectoryListing) error {
	for _, dir := range listings {
		if _, err := fmt.Fprintf(w, "Directory %s (ID: %d):\n", dir.Name, dir.Ino); err != nil {
			return err
		}
		for _, e := range dir.Entries {
			if _, err := fmt.Fprintf(w, "- File %s (ID: %d, Size: %d bytes)\n", e.Name, e.Ino, e.Size); err != nil {
				return err
			}
		}
	}
	return nil
}
