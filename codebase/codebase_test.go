package codebase

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanAll(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.c"), "int main() { return helper(); }\n")
	writeFile(t, filepath.Join(root, "lib", "helper.h"), "int helper(void);\n")
	writeFile(t, filepath.Join(root, "lib", "broken.c"), "int broken( {\n")
	writeFile(t, filepath.Join(root, "README.md"), "not C\n")
	writeFile(t, filepath.Join(root, ".git", "hidden.c"), "int hidden;\n")

	c := New(root)
	if err := c.ScanAll(); err != nil {
		t.Fatalf("ScanAll() error = %v", err)
	}

	files := c.Files()
	want := []string{
		filepath.Join(root, "lib", "broken.c"),
		filepath.Join(root, "lib", "helper.h"),
		filepath.Join(root, "main.c"),
	}
	if len(files) != len(want) {
		t.Fatalf("len(Files()) = %d, want %d", len(files), len(want))
	}
	for i, f := range files {
		if f.Path != want[i] {
			t.Errorf("Files()[%d] = %s, want %s", i, f.Path, want[i])
		}
	}

	failed := c.Failed()
	if len(failed) != 1 || failed[0].Path != want[0] {
		t.Fatalf("Failed() = %v, want only %s", failed, want[0])
	}
	if failed[0].AST != nil {
		t.Errorf("failed file AST = %v, want nil", failed[0].AST)
	}

	mainFile := c.GetFile(want[2])
	if mainFile == nil || mainFile.ParseErr != nil || len(mainFile.AST) != 1 {
		t.Fatalf("GetFile(main.c) = %+v, want one parsed declaration", mainFile)
	}
}

func TestScanAllMissingRoot(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "missing"))
	if err := c.ScanAll(); err == nil {
		t.Error("ScanAll() error = nil, want error for missing root")
	}
}

func TestUpdateAndRemoveFile(t *testing.T) {
	c := New(t.TempDir())

	f := c.UpdateFile("a.c", []byte("int x = ;"))
	if !f.Failed() {
		t.Fatal("UpdateFile() with bad source did not fail")
	}
	f = c.UpdateFile("a.c", []byte("int x = 1;"))
	if f.Failed() {
		t.Fatalf("UpdateFile() error = %v", f.ParseErr)
	}
	if got := c.GetFile("a.c"); got != f {
		t.Errorf("GetFile() = %p, want latest FileInfo %p", got, f)
	}

	c.RemoveFile("a.c")
	if got := c.GetFile("a.c"); got != nil {
		t.Errorf("GetFile() after RemoveFile = %+v, want nil", got)
	}
}

func TestFindSymbol(t *testing.T) {
	c := New(t.TempDir())
	c.UpdateFile("a.h", []byte("int helper(int n);\nint counter;\n"))
	c.UpdateFile("b.c", []byte("int helper(int n) { return n; }\n"))

	if got := len(c.Symbols()); got != 3 {
		t.Errorf("len(Symbols()) = %d, want 3", got)
	}

	sym, ok := c.FindSymbol("helper")
	if !ok {
		t.Fatal("FindSymbol(helper) not found")
	}
	if sym.Path != "b.c" || sym.Kind != "function" {
		t.Errorf("FindSymbol(helper) = %s in %s, want function in b.c", sym.Kind, sym.Path)
	}

	sym, ok = c.FindSymbol("counter")
	if !ok || sym.Kind != "variable" {
		t.Errorf("FindSymbol(counter) = %+v, %v, want variable", sym, ok)
	}

	if _, ok := c.FindSymbol("missing"); ok {
		t.Error("FindSymbol(missing) found a symbol")
	}
}

func TestFileWatcherScan(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "w.c")
	writeFile(t, path, "int a;\n")

	c := New(root)
	type event struct {
		path    string
		removed bool
	}
	var events []event
	w := NewFileWatcher(c, WithOnChange(func(f *FileInfo, removed bool) {
		events = append(events, event{f.Path, removed})
	}))

	w.Scan()
	if len(events) != 1 || events[0] != (event{path, false}) {
		t.Fatalf("events after first scan = %v", events)
	}

	w.Scan()
	if len(events) != 1 {
		t.Fatalf("unchanged file reported again: %v", events)
	}

	writeFile(t, path, "int a = ;\n")
	later := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}
	w.Scan()
	if len(events) != 2 {
		t.Fatalf("modified file not reported: %v", events)
	}
	if f := c.GetFile(path); f == nil || !f.Failed() {
		t.Errorf("GetFile() after edit = %+v, want parse failure", f)
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	w.Scan()
	if len(events) != 3 || events[2] != (event{path, true}) {
		t.Fatalf("events after removal = %v", events)
	}
	if c.GetFile(path) != nil {
		t.Error("removed file still in codebase")
	}
}

func TestFileWatcherStartStop(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "s.c"), "int s;\n")

	c := New(root)
	w := NewFileWatcher(c, WithInterval(10*time.Millisecond))
	w.Start()
	w.Stop()

	if len(c.Files()) != 1 {
		t.Errorf("len(Files()) = %d after Start/Stop, want 1", len(c.Files()))
	}
}

func TestFileWatcherSkip(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.c")
	writeFile(t, path, "int disk;")

	c := New(root)
	c.UpdateFile(path, []byte("int editor;"))

	open := map[string]bool{path: true}
	var changed []string
	w := NewFileWatcher(c,
		WithSkip(func(p string) bool { return open[p] }),
		WithOnChange(func(f *FileInfo, removed bool) { changed = append(changed, f.Path) }),
	)

	w.Scan()
	if got := string(c.GetFile(path).Content); got != "int editor;" {
		t.Errorf("Content after scan = %q, want %q", got, "int editor;")
	}
	if len(changed) != 0 {
		t.Errorf("onChange called for skipped file: %v", changed)
	}

	delete(open, path)
	w.Scan()
	if got := string(c.GetFile(path).Content); got != "int disk;" {
		t.Errorf("Content after skip lifted = %q, want %q", got, "int disk;")
	}
}

func TestFileWatcherStopWithoutStart(t *testing.T) {
	w := NewFileWatcher(New(t.TempDir()))
	done := make(chan struct{})
	go func() {
		w.Stop()
		w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop() without Start() did not return")
	}
}

func TestFileWatcherDoubleStop(t *testing.T) {
	w := NewFileWatcher(New(t.TempDir()), WithInterval(10*time.Millisecond))
	w.Start()
	w.Start()
	w.Stop()
	w.Stop()
	w.Start()
	w.Stop()
}
