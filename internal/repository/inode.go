package repository

import (
	"cmp"
	"slices"

	"github.com/S1riyS/os-course-lab-4/journalfs/internal/models"
)

type InodeRepository interface {
	Get(ino uint64) *models.Inode
	Create(inode *models.Inode)
	List() []*models.Inode
	IsDir(ino uint64) bool
	IsFile(ino uint64) bool
}

type inodeRepository struct {
	t *InodeTable
}

func NewInodeRepository(t *InodeTable) InodeRepository {
	return &inodeRepository{t: t}
}

// Get returns a copy of the inode, or nil if ino does not resolve.
func (r *inodeRepository) Get(ino uint64) *models.Inode {
	inode, ok := r.t.inodes[ino]
	if !ok {
		return nil
	}
	return inode.Clone()
}

func (r *inodeRepository) Create(inode *models.Inode) {
	r.t.inodes[inode.Ino] = inode.Clone()
}

// List returns copies of all inodes ordered by ino.
func (r *inodeRepository) List() []*models.Inode {
	out := make([]*models.Inode, 0, len(r.t.inodes))
	for _, inode := range r.t.inodes {
		out = append(out, inode.Clone())
	}
	slices.SortFunc(out, func(a, b *models.Inode) int {
		return cmp.Compare(a.Ino, b.Ino)
	})
	return out
}

func (r *inodeRepository) IsDir(ino uint64) bool {
	inode, ok := r.t.inodes[ino]
	return ok && inode.Type == models.NodeTypeDir
}

func (r *inodeRepository) IsFile(ino uint64) bool {
	inode, ok := r.t.inodes[ino]
	return ok && inode.Type == models.NodeTypeFile
}
