// Package codebase keeps the parsed state of every C source file below a
// root directory.
package codebase

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dhamidi/cfront/c/ast"
	"github.com/dhamidi/cfront/c/parser"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("cfront.codebase")

// Extensions lists the file extensions the codebase picks up.
var Extensions = []string{".c", ".h"}

type Codebase struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*FileInfo
}

// FileInfo is the latest parse of one file. AST is nil when ParseErr is
// set.
type FileInfo struct {
	Path     string
	Content  []byte
	AST      []ast.Stmt
	ParseErr error
}

func (f *FileInfo) Failed() bool {
	return f.ParseErr != nil
}

func New(rootDir string) *Codebase {
	return &Codebase{
		rootDir: rootDir,
		files:   make(map[string]*FileInfo),
	}
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

// IsSource reports whether path has one of the Extensions.
func IsSource(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ScanAll parses every source file below the root, skipping directories
// whose name starts with a dot. Unreadable entries are logged and skipped.
func (c *Codebase) ScanAll() error {
	if _, err := os.Stat(c.rootDir); err != nil {
		return fmt.Errorf("scan %s: %w", c.rootDir, err)
	}
	return filepath.Walk(c.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Warningf("skipping %s: %s", path, err)
			return nil
		}
		if info.IsDir() {
			if path != c.rootDir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if IsSource(path) {
			if err := c.ScanFile(path); err != nil {
				log.Warningf("skipping %s: %s", path, err)
			}
		}
		return nil
	})
}

func (c *Codebase) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	c.UpdateFile(path, content)
	return nil
}

// UpdateFile replaces the stored state of path with a parse of content.
// A parse failure is recorded on the returned FileInfo, not returned.
func (c *Codebase) UpdateFile(path string, content []byte) *FileInfo {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.updateFileLocked(path, content)
}

func (c *Codebase) updateFileLocked(path string, content []byte) *FileInfo {
	stmts, err := parser.Parse(string(content), parser.WithFile(path))
	if err != nil {
		log.Debugf("%s: %s", path, err)
	}

	f := &FileInfo{
		Path:     path,
		Content:  content,
		AST:      stmts,
		ParseErr: err,
	}
	c.files[path] = f
	return f
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

// Files returns every known file sorted by path.
func (c *Codebase) Files() []*FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	files := make([]*FileInfo, 0, len(c.files))
	for _, f := range c.files {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files
}

// Failed returns the files whose last parse failed, sorted by path.
func (c *Codebase) Failed() []*FileInfo {
	var failed []*FileInfo
	for _, f := range c.Files() {
		if f.Failed() {
			failed = append(failed, f)
		}
	}
	return failed
}

// Symbol is a top-level declaration found in a file.
type Symbol struct {
	Name string
	Kind string
	Path string
	Span ast.Span
}

// Symbols lists the top-level functions and variables of every parsed
// file. A function declared by prototype and defined later is reported
// once per declaration.
func (c *Codebase) Symbols() []Symbol {
	var symbols []Symbol
	for _, f := range c.Files() {
		for _, stmt := range f.AST {
			switch s := stmt.(type) {
			case *ast.FunctionDeclaration:
				kind := "function"
				if s.Prototype {
					kind = "prototype"
				}
				symbols = append(symbols, Symbol{Name: s.Name, Kind: kind, Path: f.Path, Span: s.Span})
			case *ast.VarDeclaration:
				symbols = append(symbols, Symbol{Name: s.Name, Kind: "variable", Path: f.Path, Span: s.Span})
			}
		}
	}
	return symbols
}

// FindSymbol returns the definition of name, preferring a function body
// over its prototype.
func (c *Codebase) FindSymbol(name string) (Symbol, bool) {
	var found Symbol
	ok := false
	for _, sym := range c.Symbols() {
		if sym.Name != name {
			continue
		}
		if !ok || (found.Kind == "prototype" && sym.Kind != "prototype") {
			found, ok = sym, true
		}
	}
	return found, ok
}
