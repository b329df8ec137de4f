// Package debuglibs makes sure the SDK's debug-library bundle is unpacked
// into the project's dependency directory, downloading it at most once.
package debuglibs

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/agentpkg/sdkprov/pkg/config"
	"github.com/agentpkg/sdkprov/pkg/extract"
	"github.com/agentpkg/sdkprov/pkg/logging"
	"github.com/agentpkg/sdkprov/pkg/source"
	"github.com/agentpkg/sdkprov/pkg/store"
)

// ExtractFunc matches extract.Zip.
type ExtractFunc func(archivePath, destDir string, maxEntryBytes int64) (int, error)

// Provisioner ensures the debug-library archive has been extracted. Store
// is rooted at the project's dependency directory.
type Provisioner struct {
	Config     *config.Config
	Store      store.Store
	Downloader source.Downloader
	// Extract unpacks the archive; extract.Zip when nil.
	Extract ExtractFunc

	Out    io.Writer
	Logger *log.Logger
}

// Ensure returns true once the marker file exists. When it is missing, the
// archive is downloaded (unless a previous run already did), extracted over
// the dependency directory and removed. Any failure is returned as an
// error; there is no partial rollback.
func (p *Provisioner) Ensure(ctx context.Context) (bool, error) {
	if err := p.validate(); err != nil {
		return false, err
	}
	logger := logging.OrDiscard(p.Logger)
	cfg := p.Config

	extracted, err := p.Store.Exists(cfg.MarkerFile)
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", p.Store.Path(cfg.MarkerFile), err)
	}
	if extracted {
		logger.Debug("debug libs already extracted", "marker", p.Store.Path(cfg.MarkerFile))
		return true, nil
	}

	p.printf("No %s SDK debug libs found. (Checked %s)\n", cfg.Name, p.Store.Path(cfg.MarkerFile))

	// Checked before the directory is created: a previous run may have
	// finished the download and died before extracting.
	downloaded, err := p.Store.Exists(cfg.ArchiveFile)
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", p.Store.Path(cfg.ArchiveFile), err)
	}

	if !downloaded {
		if err := p.Store.EnsureDir(); err != nil {
			return false, fmt.Errorf("preparing dependency directory: %w", err)
		}
		task := source.Task{
			URL:  cfg.DebugLibsDownloadURL(),
			Dest: p.Store.Path(cfg.ArchiveFile),
		}
		p.printf("Downloading %s to %s\n", task.URL, task.Dest)
		logger.Debug("downloading debug libs", "url", task.URL, "dest", task.Dest)
		if err := task.Fetch(ctx, p.Downloader); err != nil {
			return false, fmt.Errorf("fetching %s SDK debug libs: %w", cfg.Name, err)
		}
	} else {
		logger.Debug("reusing downloaded archive", "archive", p.Store.Path(cfg.ArchiveFile))
	}

	if err := p.Store.EnsureDir(); err != nil {
		return false, fmt.Errorf("preparing dependency directory: %w", err)
	}

	p.printf("Extracting...\n")
	n, err := p.extract()(p.Store.Path(cfg.ArchiveFile), p.Store.Root(), cfg.MaxEntryBytes)
	if err != nil {
		return false, fmt.Errorf("extracting %s SDK debug libs: %w", cfg.Name, err)
	}
	logger.Debug("extracted debug libs", "files", n, "dest", p.Store.Root())

	if err := p.Store.Remove(cfg.ArchiveFile); err != nil {
		return false, fmt.Errorf("cleaning up archive: %w", err)
	}

	return true, nil
}

func (p *Provisioner) extract() ExtractFunc {
	if p.Extract != nil {
		return p.Extract
	}
	return extract.Zip
}

func (p *Provisioner) validate() error {
	var errs []error
	if p.Config == nil {
		errs = append(errs, errors.New("debuglibs: config is required"))
	}
	if p.Store == nil {
		errs = append(errs, errors.New("debuglibs: store is required"))
	}
	if p.Downloader == nil {
		errs = append(errs, errors.New("debuglibs: downloader is required"))
	}
	return errors.Join(errs...)
}

func (p *Provisioner) printf(format string, args ...any) {
	if p.Out == nil {
		return
	}
	_, _ = fmt.Fprintf(p.Out, format, args...)
}
