package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// ErrUnexpectedStatus is wrapped by errors for non-200 responses.
var ErrUnexpectedStatus = errors.New("unexpected status")

const userAgent = "sdkprov"

// HTTP downloads over plain HTTP(S) GET. There are no retries: a failed
// download fails the run.
type HTTP struct {
	// Client is used for requests; http.DefaultClient when nil.
	Client *http.Client
}

var _ Downloader = &HTTP{}

func (h *HTTP) Download(ctx context.Context, url, dest string) (err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := h.client().Do(req)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("downloading %s: %w %s", url, ErrUnexpectedStatus, resp.Status)
	}

	// Stage next to dest so the final rename stays on one filesystem and an
	// interrupted download never shows up under the final name.
	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", dest, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("downloading %s: %w", url, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file for %s: %w", dest, err)
	}

	if err := os.Rename(tmpName, dest); err != nil {
		return fmt.Errorf("moving download into %s: %w", dest, err)
	}
	committed = true
	return nil
}

func (h *HTTP) client() *http.Client {
	if h.Client != nil {
		return h.Client
	}
	return http.DefaultClient
}
