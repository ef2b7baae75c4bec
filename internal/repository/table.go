package repository

import "github.com/S1riyS/os-course-lab-4/journalfs/internal/models"

// InodeTable is the single owner of every inode. Repositories are views
// over one shared table.
type InodeTable struct {
	inodes  map[uint64]*models.Inode
	nextIno uint64
}

func NewInodeTable() *InodeTable {
	return &InodeTable{
		inodes:  make(map[uint64]*models.Inode),
		nextIno: FirstIno,
	}
}
