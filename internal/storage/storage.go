package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Storage persists uploaded files (resumes, photos, logos) and returns a URL
// the frontend can load them from.
type Storage interface {
	Save(c *gin.Context, file *multipart.FileHeader) (string, error)
}

// DiskStorage writes uploads into a local directory that the router serves
// under /uploads. Filenames are random so user input never reaches the
// filesystem.
type DiskStorage struct {
	Dir string
}

func NewDiskStorage(dir string) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStorage{Dir: dir}, nil
}

func (s *DiskStorage) Save(c *gin.Context, file *multipart.FileHeader) (string, error) {
	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(s.Dir, name)); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}
