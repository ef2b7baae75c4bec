package repository

import (
	"testing"

	"github.com/S1riyS/os-course-lab-4/journalfs/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type repos struct {
	fs      FilesystemRepository
	inodes  InodeRepository
	dirs    DirectoryRepository
	content ContentRepository
}

func newRepos() repos {
	t := NewInodeTable()
	return repos{
		fs:      NewFilesystemRepository(t),
		inodes:  NewInodeRepository(t),
		dirs:    NewDirectoryRepository(t),
		content: NewContentRepository(t),
	}
}

func TestNextIno(t *testing.T) {
	r := newRepos()

	assert.Equal(t, FirstIno, r.fs.GetNextIno())
	r.fs.IncrementNextIno()
	r.fs.IncrementNextIno()
	assert.Equal(t, uint64(3), r.fs.GetNextIno())
}

func TestGetReturnsCopy(t *testing.T) {
	r := newRepos()
	r.inodes.Create(&models.Inode{Ino: 1, Name: "d", Type: models.NodeTypeDir, Entries: []uint64{}})

	got := r.inodes.Get(1)
	require.NotNil(t, got)
	got.Entries = append(got.Entries, 99)
	got.Name = "changed"

	again := r.inodes.Get(1)
	assert.Equal(t, "d", again.Name)
	assert.Empty(t, again.Entries)
	assert.NotNil(t, again.Entries)

	assert.Nil(t, r.inodes.Get(2))
}

func TestKindChecks(t *testing.T) {
	r := newRepos()
	r.inodes.Create(&models.Inode{Ino: 1, Type: models.NodeTypeDir, Entries: []uint64{}})
	r.inodes.Create(&models.Inode{Ino: 2, Type: models.NodeTypeFile})

	assert.True(t, r.inodes.IsDir(1))
	assert.False(t, r.inodes.IsFile(1))
	assert.True(t, r.inodes.IsFile(2))
	assert.False(t, r.inodes.IsDir(2))
	assert.False(t, r.inodes.IsDir(3))
	assert.False(t, r.inodes.IsFile(3))
}

func TestListOrderedByIno(t *testing.T) {
	r := newRepos()
	for _, ino := range []uint64{5, 1, 3} {
		r.inodes.Create(&models.Inode{Ino: ino, Type: models.NodeTypeFile})
	}

	var inos []uint64
	for _, inode := range r.inodes.List() {
		inos = append(inos, inode.Ino)
	}
	assert.Equal(t, []uint64{1, 3, 5}, inos)
}

func TestAppendEntry(t *testing.T) {
	r := newRepos()
	r.inodes.Create(&models.Inode{Ino: 1, Name: "dir", Type: models.NodeTypeDir, Entries: []uint64{}})
	r.inodes.Create(&models.Inode{Ino: 2, Name: "a", Type: models.NodeTypeFile})

	assert.True(t, r.dirs.AppendEntry(1, 2))
	assert.True(t, r.dirs.AppendEntry(1, 2))
	assert.True(t, r.dirs.AppendEntry(1, 42))
	assert.False(t, r.dirs.AppendEntry(2, 1))
	assert.False(t, r.dirs.AppendEntry(7, 1))

	assert.Equal(t, []uint64{2, 2, 42}, r.inodes.Get(1).Entries)
	assert.Nil(t, r.inodes.Get(2).Entries)

	// dangling 42 is skipped
	entries := r.dirs.GetEntries(1)
	require.Len(t, entries, 2)
	assert.Equal(t, models.Dirent{Name: "a", Ino: 2, Type: models.NodeTypeFile}, entries[0])
	assert.Nil(t, r.dirs.GetEntries(2))
}

func TestContent(t *testing.T) {
	r := newRepos()
	r.inodes.Create(&models.Inode{Ino: 1, Type: models.NodeTypeFile})

	_, ok := r.content.Get(1)
	assert.False(t, ok)

	require.True(t, r.content.Set(1, []byte{}))
	data, ok := r.content.Get(1)
	assert.True(t, ok)
	assert.Empty(t, data)

	require.True(t, r.content.Set(1, []byte("hello")))
	data, _ = r.content.Get(1)
	assert.Equal(t, []byte("hello"), data)
	assert.Equal(t, uint64(5), r.inodes.Get(1).Size)

	require.True(t, r.content.Clear(1))
	_, ok = r.content.Get(1)
	assert.False(t, ok)
	assert.Zero(t, r.inodes.Get(1).Size)

	assert.False(t, r.content.Set(9, []byte("x")))
	assert.False(t, r.content.Clear(9))
}
