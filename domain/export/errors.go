package export

import "errors"

// Export outcomes. ErrShareCancelled never reaches callers of Export: a
// cancelled share sheet is reported as Result.Cancelled with a nil error.
var (
	ErrNoContent      = errors.New("export: nothing rendered yet")
	ErrEncodeFailed   = errors.New("export: encoding produced no data")
	ErrShareCancelled = errors.New("export: share cancelled")
	ErrShareFailed    = errors.New("export: share failed")
	ErrPopupBlocked   = errors.New("export: could not open a new window")
	ErrExportFailed   = errors.New("export: failed")
)
