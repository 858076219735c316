package lifecycle

import "github.com/cockroachdb/errors"

var (
	ErrWindowInit       = errors.New("cannot initialize window system")
	ErrWindowCreate     = errors.New("cannot create window")
	ErrDriverLoad       = errors.New("cannot load graphics driver")
	ErrMissingLayer     = errors.New("validation layer not available")
	ErrMissingExtension = errors.New("instance extension not available")
	ErrInstanceCreate   = errors.New("cannot create instance")
	ErrInvalidState     = errors.New("invalid lifecycle state")
)
