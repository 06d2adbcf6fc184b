// Package sysfs is a read-only fs implementation rooted at the directory the
// kernel pseudo-files are read from, normally "/". It supports stat, reads,
// and doublestar globbing.
package sysfs

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

type FS struct {
	dirFS fs.FS
	root  string
}

func New(root string) FS {
	if root == "" {
		root = "/"
	}
	root = filepath.Clean(root)
	return FS{
		dirFS: os.DirFS(root),
		root:  root,
	}
}

// Root returns the directory the FS reads from.
func (fs FS) Root() string { return fs.root }

// clean converts absolute paths, or paths already prefixed with the root, into
// names valid for io/fs.
func (fs FS) clean(name string) string {
	if fs.root != "/" {
		name = strings.TrimPrefix(name, fs.root+"/")
	}
	name = strings.TrimLeft(filepath.ToSlash(name), "/")
	if name == "" {
		return "."
	}
	return name
}

func (fs FS) Open(name string) (fs.File, error) { return fs.dirFS.Open(fs.clean(name)) }

func (fs FS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(fs.Abs(name))
}

func (fs FS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(fs.Abs(name))
}

// Glob returns names relative to the root matching pattern, which may use
// doublestar syntax ("sys/devices/system/cpu/cpu*/cpufreq/bios_limit").
func (fs FS) Glob(pattern string) ([]string, error) {
	return doublestar.Glob(fs.dirFS, fs.clean(pattern))
}

func (fs FS) Abs(name string) string {
	return filepath.Join(fs.root, filepath.FromSlash(fs.clean(name)))
}
