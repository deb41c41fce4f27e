package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"tradepost/internal/domain"
)

// Store saves uploaded item and profile images under a single root
// directory and hands back web paths for the /media/* route.
type Store struct {
	Root string
}

func NewStore(root string) *Store { return &Store{Root: root} }

// Filename builds a collision-free name for an entity's upload.
func Filename(id int, original string) string {
	return fmt.Sprintf("%d_%s", id, filepath.Base(original))
}

// Save copies the upload into the media root and returns the path to
// store on the entity. A nil reader yields the placeholder image.
func (s *Store) Save(src io.Reader, filename string) (string, error) {
	if src == nil {
		return domain.DefaultImagePath, nil
	}
	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return "", err
	}
	dst, err := os.Create(filepath.Join(s.Root, filepath.Base(filename)))
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/media/" + filepath.Base(filename), nil
}

// Remove deletes a previously stored image. The shared placeholder is
// never removed.
func (s *Store) Remove(webPath string) {
	if webPath == "" || webPath == domain.DefaultImagePath {
		return
	}
	name := strings.TrimPrefix(webPath, "/media/")
	_ = os.Remove(filepath.Join(s.Root, filepath.Base(name)))
}
