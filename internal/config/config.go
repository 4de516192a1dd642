package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"genmin/internal/genio"
	"genmin/internal/logger"
	"genmin/internal/minify"
)

// FileName is the project configuration file looked up from the working directory upwards.
const FileName = "genmin.toml"

// DefaultHeader opens every generated file.
const DefaultHeader = genio.DefaultHeader

const (
	EnvGenerationDir   = "GENMIN_GENERATION_DIR"
	EnvBaseDir         = "GENMIN_BASE_DIR"
	EnvInvalidPatterns = "GENMIN_INVALID_PATTERNS"
	EnvJobs            = "GENMIN_JOBS"
	EnvCacheDir        = "GENMIN_CACHE_DIR"
)

// Config is assembled once per process and injected into the writer and driver.
type Config struct {
	// GenerationDir overrides BaseDir/generated/code when set.
	GenerationDir string
	BaseDir       string
	Header        string
	// InvalidPatterns replaces the built-in filename exclusions when non-nil,
	// even if it is empty.
	InvalidPatterns []string
	Jobs            int
	CacheDir        string
	// Path of the file the values were read from; empty for defaults.
	Source string
}

type fileConfig struct {
	Generation generationSection `toml:"generation"`
	Policy     policySection     `toml:"policy"`
	Run        runSection        `toml:"run"`
}

type generationSection struct {
	Directory string `toml:"directory"`
	BaseDir   string `toml:"base_dir"`
	Header    string `toml:"header"`
}

type policySection struct {
	InvalidPatterns []string `toml:"invalid_patterns"`
}

type runSection struct {
	Jobs     int    `toml:"jobs"`
	CacheDir string `toml:"cache_dir"`
}

// Default returns the configuration used when nothing else is given.
func Default() Config {
	return Config{
		BaseDir: ".",
		Header:  DefaultHeader,
		Jobs:    runtime.GOMAXPROCS(0),
	}
}

// Find walks from startDir up to the filesystem root looking for genmin.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load decodes path on top of Default(). Relative directories in the file are
// resolved against the file's own directory.
func Load(path string) (Config, error) {
	cfg := Default()
	var fc fileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}

	root := filepath.Dir(path)
	if fc.Generation.BaseDir != "" {
		cfg.BaseDir = resolveDir(root, fc.Generation.BaseDir)
	} else {
		cfg.BaseDir = root
	}
	if fc.Generation.Directory != "" {
		cfg.GenerationDir = resolveDir(root, fc.Generation.Directory)
	}
	if meta.IsDefined("generation", "header") {
		cfg.Header = fc.Generation.Header
	}
	if meta.IsDefined("policy", "invalid_patterns") {
		cfg.InvalidPatterns = append([]string{}, fc.Policy.InvalidPatterns...)
	}
	if fc.Run.Jobs < 0 {
		return Config{}, fmt.Errorf("%s: [run].jobs must not be negative", path)
	}
	if fc.Run.Jobs > 0 {
		cfg.Jobs = fc.Run.Jobs
	}
	if fc.Run.CacheDir != "" {
		cfg.CacheDir = resolveDir(root, fc.Run.CacheDir)
	}
	cfg.Source = path
	return cfg, nil
}

// ApplyEnv overlays GENMIN_* variables read through lookup (os.LookupEnv in production).
func (c Config) ApplyEnv(lookup func(string) (string, bool)) (Config, error) {
	if v, ok := lookup(EnvGenerationDir); ok && v != "" {
		c.GenerationDir = v
	}
	if v, ok := lookup(EnvBaseDir); ok && v != "" {
		c.BaseDir = v
	}
	if v, ok := lookup(EnvInvalidPatterns); ok {
		c.InvalidPatterns = splitPatterns(v)
	}
	if v, ok := lookup(EnvJobs); ok && v != "" {
		jobs, err := strconv.Atoi(v)
		if err != nil || jobs < 0 {
			return Config{}, fmt.Errorf("%s: invalid value %q", EnvJobs, v)
		}
		if jobs > 0 {
			c.Jobs = jobs
		}
	}
	if v, ok := lookup(EnvCacheDir); ok && v != "" {
		c.CacheDir = v
	}
	return c, nil
}

// Policy compiles the filename exclusion policy.
func (c Config) Policy() (*minify.FilenamePolicy, error) {
	return minify.NewFilenamePolicy(c.InvalidPatterns)
}

// WriterOptions translates the configuration into genio options.
func (c Config) WriterOptions(log logger.Logger) (genio.Options, error) {
	policy, err := c.Policy()
	if err != nil {
		return genio.Options{}, err
	}
	return genio.Options{
		GenerationDir: c.GenerationDir,
		BaseDir:       c.BaseDir,
		Header:        c.Header,
		Policy:        policy,
		Logger:        log,
	}, nil
}

// splitPatterns accepts newline- or ';'-separated patterns; blanks are skipped.
// An empty value yields an empty, non-nil set that disables all exclusions.
func splitPatterns(v string) []string {
	out := []string{}
	for _, p := range strings.FieldsFunc(v, func(r rune) bool { return r == '\n' || r == ';' }) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func resolveDir(root, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}
