package export

import "context"

// Strategy is how an encoded collage reaches the user.
type Strategy int

const (
	StrategyDownload Strategy = iota
	StrategyShare
	StrategyFallback
)

func (s Strategy) String() string {
	switch s {
	case StrategyDownload:
		return "download"
	case StrategyShare:
		return "share"
	case StrategyFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// File is an encoded collage ready for delivery.
type File struct {
	Name string
	MIME string
	Data []byte
}

// ShareData is handed to the platform share capability.
type ShareData struct {
	Files []File
	Title string
	Text  string
}

// Sharer is a platform file-sharing capability (share sheet).
// Share returns ErrShareCancelled when the user dismissed the dialog.
type Sharer interface {
	CanShare(f File) bool
	Share(ctx context.Context, data ShareData) error
}

// Downloader stores the file where the user expects downloads and returns
// the resulting location.
type Downloader interface {
	Download(ctx context.Context, f File) (string, error)
}

// Opener shows an HTML document in a new window. It returns
// ErrPopupBlocked when no window could be opened.
type Opener interface {
	Open(ctx context.Context, name string, page []byte) error
}

// Runtime describes the capabilities of the environment the export runs in.
type Runtime interface {
	Mobile() bool
	// Sharer returns the share capability, or nil when there is none.
	Sharer() Sharer
}

// Selector picks the delivery strategy for f.
type Selector func(rt Runtime, f File) Strategy

// SelectStrategy is the default Selector. A mobile runtime with a share
// capability shares when the capability accepts the file and falls back to
// the new-window page when it does not; every other runtime downloads.
func SelectStrategy(rt Runtime, f File) Strategy {
	if rt == nil || !rt.Mobile() {
		return StrategyDownload
	}
	sh := rt.Sharer()
	if sh == nil {
		return StrategyDownload
	}
	if sh.CanShare(f) {
		return StrategyShare
	}
	return StrategyFallback
}
