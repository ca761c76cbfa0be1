package pet

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "save.json"))

	want := State{
		Level:     12,
		XP:        87,
		Hunger:    63,
		Happiness: 41,
		Love:      98,
		Energy:    17,
		AgeDays:   9,
		Dead:      false,
	}
	store.Save(&want)

	if got := store.Load(); got != want {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope", "save.json"))
	if got := store.Load(); got != DefaultState() {
		t.Errorf("missing file should yield defaults, got %+v", got)
	}
}

func TestStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := NewStore(path).Load(); got != DefaultState() {
		t.Errorf("corrupt file should yield defaults, got %+v", got)
	}
}

func TestStoreSaveCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "save.json")
	store := NewStore(path)

	st := DefaultState()
	store.Save(&st)

	if _, err := os.Stat(path); err != nil {
		t.Errorf("save file not created: %v", err)
	}
}

func TestStoreSaveLeavesNoTempFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	store := NewStore(path)

	st := DefaultState()
	store.Save(&st)

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind (stat err: %v)", err)
	}
}

func TestStoreSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	store := NewStore(path)

	first := DefaultState()
	store.Save(&first)

	second := DefaultState()
	second.Level = 5
	second.Dead = true
	store.Save(&second)

	if got := store.Load(); got != second {
		t.Errorf("second save not readable, got %+v", got)
	}
}
