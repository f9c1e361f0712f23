// Package media validates and places uploaded avatar files. Only the
// resulting relative path is recorded in the database.
package media

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/yunqiuxu/unswtalk/internal/config"
)

// AllowedExtensions lists acceptable avatar file extensions, lowercase,
// without the dot.
var AllowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
}

// AllowedFile reports whether filename carries an acceptable extension.
func AllowedFile(filename string) bool {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 {
		return false
	}
	return AllowedExtensions[strings.ToLower(filename[idx+1:])]
}

// Storage places avatars under baseDir/dataset/zid/filename.
type Storage struct {
	baseDir string
	dataset string
}

func NewStorage(cfg *config.Config) *Storage {
	return &Storage{baseDir: cfg.AvatarDir, dataset: cfg.DatasetName}
}

// EnsureStudentDir creates the avatar directory for zid.
func (s *Storage) EnsureStudentDir(zid string) error {
	return os.MkdirAll(filepath.Join(s.baseDir, s.dataset, zid), 0o755)
}

// Paths returns where an avatar lands on disk and the relative path that
// goes into the profile row.
func (s *Storage) Paths(zid, filename string) (diskPath, relPath string) {
	filename = filepath.Base(filename)
	diskPath = filepath.Join(s.baseDir, s.dataset, zid, filename)
	relPath = "student_img/" + s.dataset + "/" + zid + "/" + filename
	return diskPath, relPath
}
