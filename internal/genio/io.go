package genio

import (
	"errors"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"genmin/internal/logger"
	"genmin/internal/minify"
)

// DefaultDirectory is the generation directory relative to the base directory.
const DefaultDirectory = "generated/code"

const filePerm = 0o644

// Options configures an Io. Header is written verbatim in front of every file.
type Options struct {
	GenerationDir string
	BaseDir       string
	Header        string
	// Policy decides which files are minified; nil selects minify.DefaultPolicy.
	Policy *minify.FilenamePolicy
	Logger logger.Logger
	// Pid supplies the temp-file suffix; nil selects os.Getpid.
	Pid func() int
}

// Io manages generated code on a filesystem.
type Io struct {
	fs            afero.Fs
	generationDir string
	header        string
	policy        *minify.FilenamePolicy
	log           logger.Logger
	pid           func() int
}

// DefaultHeader opens a PHP file.
const DefaultHeader = "<?php "

// DefaultOptions returns options writing DefaultHeader under ./generated/code.
func DefaultOptions() Options {
	return Options{BaseDir: ".", Header: DefaultHeader}
}

// New creates an Io over fs. Header is used verbatim, so an empty header writes
// content unchanged.
func New(fs afero.Fs, opts Options) (*Io, error) {
	if fs == nil {
		return nil, errors.New("genio: nil filesystem")
	}
	gio := &Io{
		fs:     fs,
		header: opts.Header,
		policy: opts.Policy,
		log:    opts.Logger,
		pid:    opts.Pid,
	}
	if gio.policy == nil {
		gio.policy = minify.DefaultPolicy()
	}
	if gio.log == nil {
		gio.log = logger.NewNop()
	}
	if gio.pid == nil {
		gio.pid = os.Getpid
	}
	gio.generationDir = generationDirectory(opts.GenerationDir, opts.BaseDir)
	return gio, nil
}

func generationDirectory(dir, base string) string {
	if dir != "" {
		return strings.TrimRight(dir, "/") + "/"
	}
	if base == "" {
		base = "."
	}
	return strings.TrimRight(base, "/") + "/" + DefaultDirectory + "/"
}

// GenerationDirectory returns the directory generated classes live in, with a trailing slash.
func (gio *Io) GenerationDirectory() string {
	return gio.generationDir
}

// ResultFileName maps a class name to its file: namespace separators and
// underscores become directory separators.
func (gio *Io) ResultFileName(className string) string {
	rel := strings.NewReplacer(`\`, "/", "_", "/").Replace(className)
	return gio.generationDir + strings.TrimLeft(rel, "/") + ".php"
}

// ResultFileDirectory returns the directory of ResultFileName, with a trailing slash.
func (gio *Io) ResultFileDirectory(className string) string {
	return path.Dir(gio.ResultFileName(className)) + "/"
}

// MakeGenerationDirectory ensures the generation directory exists.
func (gio *Io) MakeGenerationDirectory() bool {
	return gio.makeDirectory(gio.generationDir)
}

// MakeResultFileDirectory ensures the directory for className exists.
func (gio *Io) MakeResultFileDirectory(className string) bool {
	return gio.makeDirectory(gio.ResultFileDirectory(className))
}

// FileExists reports whether name exists on the filesystem.
func (gio *Io) FileExists(name string) bool {
	ok, err := afero.Exists(gio.fs, name)
	return err == nil && ok
}

// WriteResultFile stores Header+content at fileName.
//
// A failure writing the temp file is returned immediately. Minification problems
// only mean the file is stored unminified. A failed rename is forgiven when
// fileName exists afterwards.
func (gio *Io) WriteResultFile(fileName string, content []byte) (bool, error) {
	data := make([]byte, 0, len(gio.header)+len(content))
	data = append(data, gio.header...)
	data = append(data, content...)

	perm := gio.targetPerm(fileName)
	tmpFile := fileName + "." + strconv.Itoa(gio.pid())
	if err := afero.WriteFile(gio.fs, tmpFile, data, perm); err != nil {
		return false, &FSError{Op: "write", Path: tmpFile, Err: err}
	}

	baseName := filepath.Base(fileName)
	if gio.policy.Allows(baseName) {
		if minified, ok := gio.minifyFile(tmpFile); ok {
			if err := afero.WriteFile(gio.fs, tmpFile, minified, perm); err != nil {
				return false, &FSError{Op: "write", Path: tmpFile, Err: err}
			}
		}
	} else {
		gio.log.Debug("minification disabled by filename policy", "file", baseName)
	}

	if err := gio.fs.Rename(tmpFile, fileName); err != nil {
		if !gio.FileExists(fileName) {
			return false, &FSError{Op: "rename", Path: fileName, Err: err}
		}
		// другой процесс успел записать тот же файл
		gio.log.Debug("rename lost the race, target already present", "file", fileName, "err", err)
		if rmErr := gio.fs.Remove(tmpFile); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			gio.log.Warn("failed to remove temp file", "file", tmpFile, "err", rmErr)
		}
	}
	return true, nil
}

// targetPerm keeps the permissions of an existing target; new files get filePerm.
func (gio *Io) targetPerm(fileName string) os.FileMode {
	if info, err := gio.fs.Stat(fileName); err == nil && info.Mode().IsRegular() {
		return info.Mode().Perm()
	}
	return filePerm
}

// minifyFile returns the minified content of name, or false when the content
// should stay as written.
func (gio *Io) minifyFile(name string) ([]byte, bool) {
	src, err := afero.ReadFile(gio.fs, name)
	if err != nil {
		gio.log.Debug("minification unavailable", "file", name, "err", err)
		return nil, false
	}
	out, ok, err := minify.Minify(name, src)
	if err != nil {
		gio.log.Debug("minification unavailable", "file", name, "err", err)
		return nil, false
	}
	if !ok || out == "" {
		return nil, false
	}
	gio.log.Debug("minified", "file", name, "before", len(src), "after", len(out))
	return []byte(out), true
}

func (gio *Io) makeDirectory(dir string) bool {
	if gio.isWritable(dir) {
		return true
	}
	isDir, err := afero.IsDir(gio.fs, dir)
	if err == nil && isDir {
		return true
	}
	if err := gio.fs.MkdirAll(dir, 0o755); err != nil {
		gio.log.Warn("failed to create directory", "dir", dir, "err", err)
		return false
	}
	return true
}

// isWritable checks the owner write bit; afero exposes no access(2) equivalent.
func (gio *Io) isWritable(name string) bool {
	info, err := gio.fs.Stat(name)
	if err != nil {
		return false
	}
	return info.Mode().Perm()&0o200 != 0
}
