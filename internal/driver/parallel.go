package driver

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"genmin/internal/genio"
	"genmin/internal/logger"
	"genmin/internal/minify"
)

// MinifyOptions configures batch minification.
type MinifyOptions struct {
	// Check reports what would change without writing.
	Check bool
	// Stdout returns minified content in the results instead of writing.
	Stdout  bool
	Jobs    int
	Pattern string
	Policy  *minify.FilenamePolicy
	// Cache, when set, skips files already known to be minified output.
	Cache  *DigestCache
	Fs     afero.Fs
	Logger logger.Logger
}

// MinifyResult captures the outcome for a single file.
type MinifyResult struct {
	Path string
	// Changed is true when minification altered (or in check mode would alter) the file.
	Changed bool
	// Skipped is true when the file was left alone: too short, already minified or cached.
	Skipped bool
	Cached  bool
	// Unsafe is true when rejoining would have altered the token stream.
	Unsafe   bool
	Excluded bool
	Err      error
	BytesIn  int
	BytesOut int
	Minified []byte
}

// MinifyPaths minifies files and directories in parallel. Per-file failures are
// reported in the results; the returned error is reserved for collection
// failures and cancellation.
func MinifyPaths(ctx context.Context, paths []string, opts MinifyOptions) ([]MinifyResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}
	if opts.Policy == nil {
		opts.Policy = minify.DefaultPolicy()
	}

	files, err := collectSourceFiles(ctx, opts.Fs, paths, opts.Pattern)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("minify: no source files found")
	}

	// Файлы уже на диске со своим открывающим тегом, заголовок не нужен.
	gio, err := genio.New(opts.Fs, genio.Options{
		Policy: opts.Policy,
		Logger: opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]MinifyResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = minifySingleFile(gio, path, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	opts.Logger.Info("minify finished", "files", len(files), "summary", Summarize(results).String())
	return results, nil
}

func minifySingleFile(gio *genio.Io, path string, opts MinifyOptions) MinifyResult {
	result := MinifyResult{Path: path}
	log := opts.Logger.With("file", path)

	data, err := afero.ReadFile(opts.Fs, path)
	if err != nil {
		result.Err = err
		return result
	}
	result.BytesIn = len(data)
	result.BytesOut = len(data)

	key := digestOf(data)
	if opts.Cache.Has(key) {
		log.Debug("cache hit")
		result.Skipped = true
		result.Cached = true
		if opts.Stdout {
			result.Minified = data
		}
		return result
	}

	if !opts.Policy.Allows(filepath.Base(path)) {
		log.Debug("excluded by filename policy")
		result.Excluded = true
		if opts.Stdout {
			result.Minified = data
		}
		return result
	}

	tokens, err := minify.Tokenize(path, data)
	if err != nil {
		result.Err = err
		return result
	}
	if len(tokens) <= minify.MinTokenCount {
		result.Skipped = true
		if opts.Stdout {
			result.Minified = data
		}
		return result
	}

	out := minify.Rejoin(tokens)
	if !sameStream(path, tokens, out) {
		// склейка слепила токены, файл перестал бы быть тем же PHP
		log.Warn("minified output changes the token stream, file left as is")
		result.Skipped = true
		result.Unsafe = true
		if opts.Stdout {
			result.Minified = data
		}
		return result
	}

	minified := []byte(out)
	result.BytesOut = len(minified)
	changed := !bytes.Equal(data, minified)

	switch {
	case opts.Check:
		result.Changed = changed
		result.Skipped = !changed
		return result
	case opts.Stdout:
		result.Changed = changed
		result.Minified = minified
		return result
	}

	if !changed {
		result.Skipped = true
		rememberMinified(opts.Cache, log, key, path, len(data))
		return result
	}

	if _, err := gio.WriteResultFile(path, data); err != nil {
		result.Err = err
		return result
	}
	result.Changed = true
	rememberMinified(opts.Cache, log, digestOf(minified), path, len(minified))
	return result
}

// sameStream reports whether out scans back to tokens.
func sameStream(path string, tokens []minify.Token, out string) bool {
	back, err := minify.Tokenize(path, []byte(out))
	return err == nil && slices.Equal(tokens, back)
}

func rememberMinified(cache *DigestCache, log logger.Logger, key Digest, path string, size int) {
	if cache == nil {
		return
	}
	if err := cache.Put(key, &CacheEntry{Path: path, Size: size}); err != nil {
		log.Warn("failed to update digest cache", "err", err)
	}
}
