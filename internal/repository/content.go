package repository

type ContentRepository interface {
	Get(ino uint64) ([]byte, bool)
	Set(ino uint64, data []byte) bool
	Clear(ino uint64) bool
}

type contentRepository struct {
	t *InodeTable
}

func NewContentRepository(t *InodeTable) ContentRepository {
	return &contentRepository{t: t}
}

// Get returns a copy of the stored content. ok is false when ino does not
// resolve or nothing has been written yet.
func (r *contentRepository) Get(ino uint64) ([]byte, bool) {
	inode, ok := r.t.inodes[ino]
	if !ok || inode.Content == nil {
		return nil, false
	}
	return append([]byte{}, inode.Content...), true
}

// Set replaces the content and size of ino. The caller checks the node type.
func (r *contentRepository) Set(ino uint64, data []byte) bool {
	inode, ok := r.t.inodes[ino]
	if !ok {
		return false
	}
	inode.Content = append([]byte{}, data...)
	inode.Size = uint64(len(data))
	return true
}

func (r *contentRepository) Clear(ino uint64) bool {
	inode, ok := r.t.inodes[ino]
	if !ok {
		return false
	}
	inode.Content = nil
	inode.Size = 0
	return true
}
