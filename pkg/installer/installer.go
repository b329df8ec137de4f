package installer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/agentpkg/sdkprov/pkg/config"
	"github.com/agentpkg/sdkprov/pkg/launch"
	"github.com/agentpkg/sdkprov/pkg/logging"
	"github.com/agentpkg/sdkprov/pkg/prompt"
	"github.com/agentpkg/sdkprov/pkg/sdk"
	"github.com/agentpkg/sdkprov/pkg/source"
	"github.com/agentpkg/sdkprov/pkg/store"
)

// Installer drives the check -> prompt -> fetch -> launch flow for the
// primary SDK. Store is rooted at the project's dependency directory.
type Installer struct {
	Config     *config.Config
	Store      store.Store
	Probe      *sdk.Probe
	Prompt     prompt.Confirmer
	Downloader source.Downloader
	Launcher   launch.Launcher

	// Out receives the user-facing diagnostic lines.
	Out    io.Writer
	Logger *log.Logger
}

// Result is where the state machine stopped.
type Result struct {
	State sdk.State
	Info  sdk.Info
}

// OK reports whether the SDK is present at the required version.
func (r Result) OK() bool {
	return r.State == sdk.StateValid
}

// EnsureSDK checks the installed SDK and, when it is missing or the wrong
// version, offers to download and launch the vendor installer.
//
// A declined prompt is not an error: the result carries StateAbsent or
// StateWrongVersion and nothing is written. An accepted prompt ends in
// StateInstallTriggered once the installer has been launched; callers must
// stop and let the user re-run after installing.
func (inst *Installer) EnsureSDK(ctx context.Context) (Result, error) {
	if err := inst.validate(); err != nil {
		return Result{}, err
	}
	logger := logging.OrDiscard(inst.Logger)
	cfg := inst.Config

	info := inst.Probe.Probe()
	state := sdk.Classify(info, cfg.RequiredVersion)
	logger.Debug("probed SDK", "var", inst.Probe.EnvVar, "path", info.Path, "state", state)

	switch state {
	case sdk.StateValid:
		inst.printf("Correct %s SDK located at %s\n", cfg.Name, info.Path)
		return Result{State: state, Info: info}, nil
	case sdk.StateAbsent:
		inst.printf("You don't have the %s SDK installed!\n", cfg.Name)
	case sdk.StateWrongVersion:
		inst.printf("Located %s SDK at %s\n", cfg.Name, info.Path)
		inst.printf("You don't have the correct %s SDK version! (requires %s)\n", cfg.Name, cfg.RequiredVersion)
	}

	install, err := inst.Prompt.Confirm(fmt.Sprintf("Would you like to install the %s SDK?", cfg.Name))
	if err != nil {
		return Result{State: state, Info: info}, err
	}
	if !install {
		logger.Debug("install declined", "state", state)
		return Result{State: state, Info: info}, nil
	}

	if err := inst.install(ctx); err != nil {
		return Result{State: state, Info: info}, err
	}
	return Result{State: sdk.StateInstallTriggered, Info: info}, nil
}

func (inst *Installer) install(ctx context.Context) error {
	logger := logging.OrDiscard(inst.Logger)
	cfg := inst.Config

	if err := inst.Store.EnsureDir(); err != nil {
		return fmt.Errorf("preparing dependency directory: %w", err)
	}

	task := source.Task{
		URL:  cfg.InstallerDownloadURL(),
		Dest: inst.Store.Path(cfg.InstallerFile),
	}
	inst.printf("Downloading %s to %s\n", task.URL, task.Dest)
	logger.Debug("downloading installer", "url", task.URL, "dest", task.Dest)
	if err := task.Fetch(ctx, inst.Downloader); err != nil {
		return fmt.Errorf("fetching %s SDK installer: %w", cfg.Name, err)
	}
	inst.printf("Done!\n")

	inst.printf("Running %s SDK installer...\n", cfg.Name)
	if err := inst.Launcher.Launch(task.Dest); err != nil {
		return fmt.Errorf("running %s SDK installer: %w", cfg.Name, err)
	}
	inst.printf("Re-run this command after installation\n")

	return nil
}

func (inst *Installer) validate() error {
	var errs []error
	if inst.Config == nil {
		errs = append(errs, errors.New("installer: config is required"))
	}
	if inst.Store == nil {
		errs = append(errs, errors.New("installer: store is required"))
	}
	if inst.Probe == nil {
		errs = append(errs, errors.New("installer: probe is required"))
	}
	if inst.Prompt == nil {
		errs = append(errs, errors.New("installer: prompt is required"))
	}
	if inst.Downloader == nil {
		errs = append(errs, errors.New("installer: downloader is required"))
	}
	if inst.Launcher == nil {
		errs = append(errs, errors.New("installer: launcher is required"))
	}
	return errors.Join(errs...)
}

func (inst *Installer) printf(format string, args ...any) {
	if inst.Out == nil {
		return
	}
	_, _ = fmt.Fprintf(inst.Out, format, args...)
}
