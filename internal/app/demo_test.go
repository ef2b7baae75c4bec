package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/S1riyS/os-course-lab-4/journalfs/internal/models"
	"github.com/S1riyS/os-course-lab-4/journalfs/internal/service"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemo(t *testing.T) {
	color.NoColor = true

	ctx := context.Background()
	fs := service.NewInMemory()

	var buf bytes.Buffer
	require.NoError(t, RunDemo(ctx, &buf, fs))

	want := `
=== Directory Listing ===
Directory Documents (ID: 1):
- File doc1.txt (ID: 3, Size: 13 bytes)
- File doc2.txt (ID: 4, Size: 0 bytes)
Directory Pictures (ID: 2):
- File pic1.jpg (ID: 5, Size: 0 bytes)

=== Read File ===
File Data: Hello, world!

=== Journal ===
Journal Entries:
1. CREATE DIRECTORY: Documents [Committed: true]
2. CREATE DIRECTORY: Pictures [Committed: true]
3. CREATE FILE: doc1.txt [Committed: true]
4. CREATE FILE: doc2.txt [Committed: true]
5. CREATE FILE: pic1.jpg [Committed: true]
6. ADD FILE: 3 TO DIRECTORY: 1 [Committed: true]
7. ADD FILE: 4 TO DIRECTORY: 1 [Committed: true]
8. ADD FILE: 5 TO DIRECTORY: 2 [Committed: true]
9. WRITE TO FILE: 3 [Committed: true]

=== Undo Operation ===
Undid operation: WRITE TO FILE: 3

=== Final Journal ===
Journal Entries:
1. CREATE DIRECTORY: Documents [Committed: true]
2. CREATE DIRECTORY: Pictures [Committed: true]
3. CREATE FILE: doc1.txt [Committed: true]
4. CREATE FILE: doc2.txt [Committed: true]
5. CREATE FILE: pic1.jpg [Committed: true]
6. ADD FILE: 3 TO DIRECTORY: 1 [Committed: true]
7. ADD FILE: 4 TO DIRECTORY: 1 [Committed: true]
8. ADD FILE: 5 TO DIRECTORY: 2 [Committed: true]
`
	assert.Equal(t, want, buf.String())

	// log-only undo leaves the written content in place
	assert.Equal(t, "Hello, world!", string(fs.ReadFile(ctx, 3)))
}

func TestPrintListingEmptyDirectory(t *testing.T) {
	var buf bytes.Buffer
	err := PrintListing(&buf, []models.DirectoryListing{
		{Name: "Empty", Ino: 9},
	})
	require.NoError(t, err)
	assert.Equal(t, "Directory Empty (ID: 9):\n", buf.String())
}

func TestDisplayTextReplacesInvalidUTF8(t *testing.T) {
	assert.Equal(t, "Hello, world!", displayText([]byte("Hello, world!")))
	assert.Equal(t, "a\uFFFDb", displayText([]byte{'a', 0xff, 0xfe, 'b'}))
	assert.Empty(t, displayText(nil))
}
