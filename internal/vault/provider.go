// Package vault abstracts the user-granted storage directory under which all
// account data lives. A Provider hands out a Dir for the storage root; Dir
// gives scoped access to per-account sub-directories and their files.
//
// Grant recovery (reopening a previously granted root without asking the
// user again) is an optional capability: hosts that support it implement
// GrantRestorer, hosts that cannot simply don't.
package vault

import (
	"context"
	"errors"
)

// ErrAccessDenied is returned by RequestDirectory when the user (or host)
// refuses to grant access to a storage root.
var ErrAccessDenied = errors.New("directory access denied")

// Mode is the access mode requested for the storage root.
type Mode string

const (
	ModeRead      Mode = "read"
	ModeReadWrite Mode = "readwrite"
)

// Options controls a directory grant request.
type Options struct {
	Mode Mode
	// StartIn suggests where the grant prompt should start. For hosts
	// without a prompt it is the root location itself.
	StartIn string
}

// Dir is a handle to a granted directory. Implementations are cheap values
// and may be copied freely.
type Dir interface {
	// Ref returns an opaque reference identifying this directory. The ref
	// may be persisted and later passed to GrantRestorer.RestoreGrant,
	// on hosts that support grant recovery.
	Ref() string

	// Child returns a handle to the named sub-directory. With create set,
	// an absent sub-directory is created; otherwise absence is reported
	// as common.ErrorNotFound.
	Child(name string, create bool) (Dir, error)

	// ReadFile returns the full contents of the named file, or
	// common.ErrorNotFound if it does not exist.
	ReadFile(name string) ([]byte, error)

	// WriteFile replaces the named file with data.
	WriteFile(name string, data []byte) error

	// Exists reports whether the named file or sub-directory is present.
	Exists(name string) bool
}

// Provider grants access to a storage root. Requesting may involve user
// interaction on hosts that have a grant prompt, hence the context.
type Provider interface {
	RequestDirectory(ctx context.Context, opts Options) (Dir, error)
}

// GrantRestorer is the optional capability of reopening a previously
// granted storage root from a persisted ref without user interaction.
// Implementations return common.ErrorNotFound when the ref no longer
// resolves to an accessible directory.
type GrantRestorer interface {
	RestoreGrant(ctx context.Context, ref string) (Dir, error)
}
