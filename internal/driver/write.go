package driver

import (
	"context"
	"fmt"

	"genmin/internal/genio"
)

// WriteClass stores the generated content of className below the generation
// directory and returns the file it wrote.
func WriteClass(ctx context.Context, gio *genio.Io, className string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if className == "" {
		return "", fmt.Errorf("write: empty class name")
	}
	fileName := gio.ResultFileName(className)
	if !gio.MakeResultFileDirectory(className) {
		return "", fmt.Errorf("write %s: cannot create directory %s", className, gio.ResultFileDirectory(className))
	}
	if _, err := gio.WriteResultFile(fileName, content); err != nil {
		return "", fmt.Errorf("write %s: %w", className, err)
	}
	return fileName, nil
}
