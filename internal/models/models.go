package models

type NodeType int16

const (
	NodeTypeDir  NodeType = 0
	NodeTypeFile NodeType = 1
)

func (t NodeType) String() string {
	switch t {
	case NodeTypeDir:
		return "directory"
	case NodeTypeFile:
		return "file"
	default:
		return "unknown"
	}
}

// Block pointers are declared for layout parity with on-disk inodes.
// Nothing allocates blocks, so they stay nil.
const NumDirectPointers = 5

type Inode struct {
	Ino            uint64
	Name           string
	Size           uint64
	Type           NodeType
	DirectPointers [NumDirectPointers]*uint64
	Entries        []uint64 // directories only, nil for files
	Content        []byte   // files only, nil until first write
}

func (i *Inode) IsDir() bool {
	return i.Type == NodeTypeDir
}

// Clone returns a deep copy. Nil Entries and Content stay nil.
func (i *Inode) Clone() *Inode {
	c := *i
	if i.Entries != nil {
		c.Entries = append([]uint64{}, i.Entries...)
	}
	if i.Content != nil {
		c.Content = append([]byte{}, i.Content...)
	}
	return &c
}

type Dirent struct {
	Name string   `json:"name"`
	Ino  uint64   `json:"ino"`
	Type NodeType `json:"type"`
	Size uint64   `json:"size"`
}

type DirectoryListing struct {
	Name    string   `json:"name"`
	Ino     uint64   `json:"ino"`
	Entries []Dirent `json:"entries"`
}
