package repository

import "github.com/S1riyS/os-course-lab-4/journalfs/internal/models"

type DirectoryRepository interface {
	AppendEntry(dirIno uint64, ino uint64) bool
	GetEntries(dirIno uint64) []models.Dirent
}

type directoryRepository struct {
	t *InodeTable
}

func NewDirectoryRepository(t *InodeTable) DirectoryRepository {
	return &directoryRepository{t: t}
}

// AppendEntry links ino into dirIno. It reports false when dirIno is not a
// directory. ino itself is not checked and duplicates are kept.
func (r *directoryRepository) AppendEntry(dirIno uint64, ino uint64) bool {
	dir, ok := r.t.inodes[dirIno]
	if !ok || dir.Type != models.NodeTypeDir {
		return false
	}
	dir.Entries = append(dir.Entries, ino)
	return true
}

// GetEntries resolves the entries of dirIno in insertion order, skipping
// inos that no longer resolve.
func (r *directoryRepository) GetEntries(dirIno uint64) []models.Dirent {
	dir, ok := r.t.inodes[dirIno]
	if !ok || dir.Type != models.NodeTypeDir {
		return nil
	}

	entries := make([]models.Dirent, 0, len(dir.Entries))
	for _, ino := range dir.Entries {
		inode, ok := r.t.inodes[ino]
		if !ok {
			continue
		}
		entries = append(entries, models.Dirent{
			Name: inode.Name,
			Ino:  inode.Ino,
			Type: inode.Type,
			Size: inode.Size,
		})
	}
	return entries
}
