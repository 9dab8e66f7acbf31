// Package source loads the list of domains a run checks.
package source

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/go-faster/errors"
)

// ErrNotConfigured is returned when the domain file path is blank or the
// "#" placeholder.
var ErrNotConfigured = errors.New("domain list not configured")

// LinkSource yields the raw domain strings for a run.
type LinkSource interface {
	List(ctx context.Context) ([]string, error)
}

// File reads one domain per line. Surrounding whitespace is trimmed and
// blank lines are skipped.
type File struct {
	Path string
}

func NewFile(path string) *File { return &File{Path: path} }

func (f *File) List(ctx context.Context) ([]string, error) {
	p := strings.TrimSpace(f.Path)
	if p == "" || p == "#" {
		return nil, ErrNotConfigured
	}
	fh, err := os.Open(p)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", p)
	}
	defer func() {
		_ = fh.Close()
	}()

	var out []string
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", p)
	}
	return out, nil
}

// Memory is a fixed in-process list.
type Memory []string

func (m Memory) List(ctx context.Context) ([]string, error) {
	out := make([]string, 0, len(m))
	for _, d := range m {
		if d = strings.TrimSpace(d); d != "" {
			out = append(out, d)
		}
	}
	return out, nil
}
