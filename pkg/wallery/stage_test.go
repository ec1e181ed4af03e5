package wallery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStageTo(t *testing.T) {
	srcDir := t.TempDir()
	cacheDir := t.TempDir()

	src := filepath.Join(srcDir, "sunset.jpg")
	if err := os.WriteFile(src, []byte("jpeg bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	staged, err := stageTo(src, cacheDir)
	if err != nil {
		t.Fatalf("stageTo() error: %v", err)
	}

	if filepath.Base(staged) != "sunset.jpg" {
		t.Errorf("staged name = %s, want sunset.jpg", filepath.Base(staged))
	}
	if filepath.Dir(staged) != cacheDir {
		t.Errorf("staged dir = %s, want %s", filepath.Dir(staged), cacheDir)
	}

	got, err := os.ReadFile(staged)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "jpeg bytes" {
		t.Errorf("staged contents = %q", got)
	}

	// Staging again is a no-op.
	again, err := stageTo(src, cacheDir)
	if err != nil {
		t.Fatalf("second stageTo() error: %v", err)
	}
	if again != staged {
		t.Errorf("second stageTo() = %s, want %s", again, staged)
	}
}

func TestStageToMissingSource(t *testing.T) {
	if _, err := stageTo(filepath.Join(t.TempDir(), "gone.jpg"), t.TempDir()); err == nil {
		t.Fatal("stageTo() succeeded on a missing source")
	}
}
