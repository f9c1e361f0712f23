package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yunqiuxu/unswtalk/internal/config"
)

func TestAllowedFile(t *testing.T) {
	allowed := []string{"me.png", "me.jpg", "me.jpeg", "me.gif", "me.PNG", "photo.of.me.JPeG"}
	for _, name := range allowed {
		assert.True(t, AllowedFile(name), name)
	}

	rejected := []string{"me", "me.", "me.bmp", "me.svg", "me.png.exe", "png"}
	for _, name := range rejected {
		assert.False(t, AllowedFile(name), name)
	}
}

func TestStoragePaths(t *testing.T) {
	storage := NewStorage(&config.Config{
		AvatarDir:   "/srv/avatars",
		DatasetName: "dataset-medium",
	})

	disk, rel := storage.Paths("z5555555", "me.png")
	assert.Equal(t, "/srv/avatars/dataset-medium/z5555555/me.png", disk)
	assert.Equal(t, "student_img/dataset-medium/z5555555/me.png", rel)
}

func TestStoragePathsStripsDirectories(t *testing.T) {
	storage := NewStorage(&config.Config{
		AvatarDir:   "/srv/avatars",
		DatasetName: "dataset-medium",
	})

	disk, rel := storage.Paths("z5555555", "../../etc/passwd")
	assert.Equal(t, "/srv/avatars/dataset-medium/z5555555/passwd", disk)
	assert.Equal(t, "student_img/dataset-medium/z5555555/passwd", rel)
}
