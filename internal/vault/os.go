package vault

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkarpovs/accountvault/internal/common"
)

// OSProvider serves directory grants from the local filesystem. There is no
// interactive prompt: RequestDirectory resolves the configured base path and
// ensures it exists. It also implements GrantRestorer, since a filesystem
// path survives process restarts.
type OSProvider struct {
	base string
}

// NewOSProvider returns a provider rooted at base.
func NewOSProvider(base string) *OSProvider {
	return &OSProvider{base: base}
}

func (p *OSProvider) RequestDirectory(ctx context.Context, opts Options) (Dir, error) {
	root := p.base
	if opts.StartIn != "" {
		root = opts.StartIn
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", root, err)
	}
	if err := os.MkdirAll(abs, 0o770); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", abs, err)
	}
	return &osDir{path: abs}, nil
}

// RestoreGrant reopens a previously granted root. The ref is the absolute
// path returned by Dir.Ref; it must still resolve to a directory.
func (p *OSProvider) RestoreGrant(ctx context.Context, ref string) (Dir, error) {
	info, err := os.Stat(ref)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("grant %s: %w", ref, common.ErrorNotFound)
	}
	return &osDir{path: ref}, nil
}

type osDir struct {
	path string
}

func (d *osDir) Ref() string { return d.path }

// validName rejects anything that could escape the directory. Account keys
// are already sanitized upstream, so this only guards direct misuse.
func validName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid entry name %q", name)
	}
	return nil
}

func (d *osDir) Child(name string, create bool) (Dir, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	path := filepath.Join(d.path, name)

	info, err := os.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", name)
		}
	case os.IsNotExist(err):
		if !create {
			return nil, fmt.Errorf("dir %s: %w", name, common.ErrorNotFound)
		}
		if err := os.MkdirAll(path, 0o770); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("stat %s: %w", name, err)
	}

	return &osDir{path: path}, nil
}

func (d *osDir) ReadFile(name string) ([]byte, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(d.path, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file %s: %w", name, common.ErrorNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

func (d *osDir) WriteFile(name string, data []byte) error {
	if err := validName(name); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(d.path, name), data, 0o660); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (d *osDir) Exists(name string) bool {
	if err := validName(name); err != nil {
		return false
	}
	_, err := os.Stat(filepath.Join(d.path, name))
	return err == nil
}
