package source

import "context"

// Downloader fetches a remote artifact to a local path.
type Downloader interface {
	// Download blocks until url has been written to dest in full. dest's
	// parent directory must already exist. On failure dest is left
	// untouched.
	Download(ctx context.Context, url, dest string) error
}

// Task is a single fetch, kept for diagnostics.
type Task struct {
	URL  string
	Dest string
}

// Fetch runs t with d.
func (t Task) Fetch(ctx context.Context, d Downloader) error {
	return d.Download(ctx, t.URL, t.Dest)
}
