package media_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tradepost/internal/domain"
	"tradepost/internal/media"
)

func TestFilename(t *testing.T) {
	if got := media.Filename(7, "lamp.png"); got != "7_lamp.png" {
		t.Errorf("got %s", got)
	}
	// Path components in the upload name are stripped.
	if got := media.Filename(7, "../../etc/passwd"); got != "7_passwd" {
		t.Errorf("got %s", got)
	}
}

func TestSaveAndRemove(t *testing.T) {
	s := media.NewStore(t.TempDir())

	path, err := s.Save(strings.NewReader("png bytes"), "3_lamp.png")
	if err != nil {
		t.Fatal(err)
	}
	if path != "/media/3_lamp.png" {
		t.Fatalf("web path %s", path)
	}
	onDisk := filepath.Join(s.Root, "3_lamp.png")
	b, err := os.ReadFile(onDisk)
	if err != nil || string(b) != "png bytes" {
		t.Fatalf("stored file wrong: %q, %v", b, err)
	}

	s.Remove(path)
	if _, err := os.Stat(onDisk); !os.IsNotExist(err) {
		t.Fatal("file not removed")
	}
}

func TestSaveNilReaderYieldsPlaceholder(t *testing.T) {
	s := media.NewStore(t.TempDir())
	path, err := s.Save(nil, "ignored.png")
	if err != nil {
		t.Fatal(err)
	}
	if path != domain.DefaultImagePath {
		t.Fatalf("want placeholder, got %s", path)
	}
}

func TestRemoveKeepsPlaceholder(t *testing.T) {
	s := media.NewStore(t.TempDir())
	// Must not panic or touch anything outside the root.
	s.Remove(domain.DefaultImagePath)
	s.Remove("")
	s.Remove("/media/../../outside.txt")
}
