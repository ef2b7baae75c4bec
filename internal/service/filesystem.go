package service

import (
	"context"
	"log/slog"

	"github.com/S1riyS/os-course-lab-4/journalfs/internal/journal"
	"github.com/S1riyS/os-course-lab-4/journalfs/internal/models"
	"github.com/S1riyS/os-course-lab-4/journalfs/internal/repository"
	"github.com/S1riyS/os-course-lab-4/journalfs/pkg/logging"
	"github.com/S1riyS/os-course-lab-4/journalfs/pkg/logging/slogext"
)

type FileSystemService interface {
	CreateDirectory(ctx context.Context, name string) uint64
	CreateFile(ctx context.Context, name string) uint64
	AddFileToDirectory(ctx context.Context, fileIno uint64, dirIno uint64)
	WriteToFile(ctx context.Context, ino uint64, data []byte) error
	ReadFile(ctx context.Context, ino uint64) []byte
	ListDirectoriesAndFiles(ctx context.Context) []models.DirectoryListing
	UndoLastOperation(ctx context.Context) (journal.Entry, error)
	Stat(ctx context.Context, ino uint64) (*models.Inode, bool)
	Journal() *journal.Journal
}

type Option func(*fileSystemService)

// WithStrictUndo makes UndoLastOperation inspect the last entry before
// removing it, so entries it cannot reverse stay in the journal.
func WithStrictUndo(strict bool) Option {
	return func(s *fileSystemService) {
		s.strictUndo = strict
	}
}

type fileSystemService struct {
	fsRepo      repository.FilesystemRepository
	inodeRepo   repository.InodeRepository
	dirRepo     repository.DirectoryRepository
	contentRepo repository.ContentRepository
	jrnl        *journal.Journal
	strictUndo  bool
}

func NewFileSystemService(
	fsRepo repository.FilesystemRepository,
	inodeRepo repository.InodeRepository,
	dirRepo repository.DirectoryRepository,
	contentRepo repository.ContentRepository,
	jrnl *journal.Journal,
	opts ...Option,
) FileSystemService {
	s := &fileSystemService{
		fsRepo:      fsRepo,
		inodeRepo:   inodeRepo,
		dirRepo:     dirRepo,
		contentRepo: contentRepo,
		jrnl:        jrnl,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewInMemory wires a service over a fresh inode table and journal.
func NewInMemory(opts ...Option) FileSystemService {
	t := repository.NewInodeTable()
	return NewFileSystemService(
		repository.NewFilesystemRepository(t),
		repository.NewInodeRepository(t),
		repository.NewDirectoryRepository(t),
		repository.NewContentRepository(t),
		journal.New(),
		opts...,
	)
}

func (s *fileSystemService) Journal() *journal.Journal {
	return s.jrnl
}

func (s *fileSystemService) CreateDirectory(ctx context.Context, name string) uint64 {
	const op = "service.fileSystemService.CreateDirectory"

	logger := logging.GetLoggerFromContextWithOp(ctx, op)

	ino := s.allocIno()
	s.inodeRepo.Create(&models.Inode{
		Ino:     ino,
		Name:    name,
		Type:    models.NodeTypeDir,
		Entries: []uint64{},
	})
	s.jrnl.Append(journal.CreateDirectory{Name: name})

	logger.Debug("Directory created", slog.String("name", name), slog.Uint64("ino", ino))
	return ino
}

func (s *fileSystemService) CreateFile(ctx context.Context, name string) uint64 {
	const op = "service.fileSystemService.CreateFile"

	logger := logging.GetLoggerFromContextWithOp(ctx, op)

	ino := s.allocIno()
	s.inodeRepo.Create(&models.Inode{
		Ino:  ino,
		Name: name,
		Type: models.NodeTypeFile,
	})
	s.jrnl.Append(journal.CreateFile{Name: name})

	logger.Debug("File created", slog.String("name", name), slog.Uint64("ino", ino))
	return ino
}

func (s *fileSystemService) allocIno() uint64 {
	ino := s.fsRepo.GetNextIno()
	s.fsRepo.IncrementNextIno()
	return ino
}

// AddFileToDirectory appends fileIno to the entries of dirIno. It is a
// silent no-op when dirIno is not a directory. fileIno is linked as given,
// even if it does not resolve.
func (s *fileSystemService) AddFileToDirectory(ctx context.Context, fileIno uint64, dirIno uint64) {
	const op = "service.fileSystemService.AddFileToDirectory"

	logger := logging.GetLoggerFromContextWithOp(ctx, op)

	if !s.dirRepo.AppendEntry(dirIno, fileIno) {
		logger.Debug("Target is not a directory, skipping", slog.Uint64("dir_ino", dirIno))
		return
	}
	if s.inodeRepo.Get(fileIno) == nil {
		logger.Debug("Linked ino does not resolve", slog.Uint64("ino", fileIno))
	}
	s.jrnl.Append(journal.AddFile{FileIno: fileIno, DirIno: dirIno})

	logger.Debug("File added to directory", slog.Uint64("ino", fileIno), slog.Uint64("dir_ino", dirIno))
}

// WriteToFile replaces the content of a regular file. Writing to a
// directory returns an EISDIR error; unknown inos are ignored.
func (s *fileSystemService) WriteToFile(ctx context.Context, ino uint64, data []byte) error {
	const op = "service.fileSystemService.WriteToFile"

	logger := logging.GetLoggerFromContextWithOp(ctx, op)

	if s.inodeRepo.IsDir(ino) {
		err := ErrIsDirectory
		logger.Error("Cannot write to a directory", slogext.Err(err), slog.Uint64("ino", ino))
		return err
	}
	if !s.inodeRepo.IsFile(ino) {
		logger.Debug("File not found, skipping", slog.Uint64("ino", ino))
		return nil
	}

	s.contentRepo.Set(ino, data)
	s.jrnl.Append(journal.WriteFile{FileIno: ino})

	logger.Debug("Write successful", slog.Uint64("ino", ino), slog.Int("bytes_written", len(data)))
	return nil
}

func (s *fileSystemService) ReadFile(ctx context.Context, ino uint64) []byte {
	data, ok := s.contentRepo.Get(ino)
	if !ok {
		return []byte{}
	}
	return data
}

func (s *fileSystemService) ListDirectoriesAndFiles(ctx context.Context) []models.DirectoryListing {
	var listings []models.DirectoryListing
	for _, inode := range s.inodeRepo.List() {
		if !inode.IsDir() {
			continue
		}
		listings = append(listings, models.DirectoryListing{
			Name:    inode.Name,
			Ino:     inode.Ino,
			Entries: s.dirRepo.GetEntries(inode.Ino),
		})
	}
	return listings
}

func (s *fileSystemService) Stat(ctx context.Context, ino uint64) (*models.Inode, bool) {
	inode := s.inodeRepo.Get(ino)
	return inode, inode != nil
}

// UndoLastOperation removes the newest journal entry and reverses its
// effect when it is a file write. Other operations cannot be reversed; by
// default their entry is dropped anyway.
func (s *fileSystemService) UndoLastOperation(ctx context.Context) (journal.Entry, error) {
	const op = "service.fileSystemService.UndoLastOperation"

	logger := logging.GetLoggerFromContextWithOp(ctx, op)

	entry, ok := s.jrnl.Peek()
	if !ok {
		logger.Debug("Journal is empty")
		return journal.Entry{}, ErrNothingToUndo
	}

	if !s.strictUndo {
		s.jrnl.Pop()
	}

	record, err := resolveRecord(entry.Record)
	if err != nil {
		logger.Warn("Invalid journal entry", slogext.Err(err), slog.String("entry", entry.Operation()))
		return entry, newServiceError(codeInvalidEntry, "invalid journal entry: "+entry.Operation())
	}

	switch r := record.(type) {
	case journal.WriteFile:
		if s.strictUndo {
			s.jrnl.Pop()
		}
		if s.contentRepo.Clear(r.FileIno) {
			logger.Info("Undid write operation", slog.Uint64("ino", r.FileIno))
		} else {
			logger.Debug("Written file no longer resolves", slog.Uint64("ino", r.FileIno))
		}
		return entry, nil
	default:
		logger.Warn("Undo not implemented", slog.String("verb", record.Verb()))
		return entry, newServiceError(codeNotImplemented, "undo not implemented for operation: "+record.Verb())
	}
}

// resolveRecord turns free-text notes back into typed records.
func resolveRecord(r journal.Record) (journal.Record, error) {
	note, ok := r.(journal.Note)
	if !ok {
		return r, nil
	}
	return journal.ParseRecord(note.Text)
}
