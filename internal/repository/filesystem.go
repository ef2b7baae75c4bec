package repository

const FirstIno uint64 = 1

type FilesystemRepository interface {
	GetNextIno() uint64
	IncrementNextIno()
}

type filesystemRepository struct {
	t *InodeTable
}

func NewFilesystemRepository(t *InodeTable) FilesystemRepository {
	return &filesystemRepository{t: t}
}

func (r *filesystemRepository) GetNextIno() uint64 {
	return r.t.nextIno
}

// IncrementNextIno never goes backwards, so inos are not reused even when
// the creating operation is undone.
func (r *filesystemRepository) IncrementNextIno() {
	r.t.nextIno++
}
