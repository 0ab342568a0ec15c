package launch

import (
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/kitty-panics/proton-caller/internal/callerr"
	"github.com/kitty-panics/proton-caller/internal/config"
	"github.com/kitty-panics/proton-caller/internal/version"
)

// executable is the fixed entry point inside every installation.
const executable = "proton"

// Plan is everything one run needs, constructed once by Prepare and
// consumed once by Execute.
type Plan struct {
	// Proton is the installation's executable entry point.
	Proton string
	// Program is the target passed to proton's run verb.
	Program string
	// Args go to the program verbatim.
	Args []string
	// CompatDir is the per-version compatibility-data directory, already
	// created.
	CompatDir string
	// Steam is reported to the child as the client install path.
	Steam string
	// Log sets PROTON_LOG for the child.
	Log bool

	version version.Version
}

// Outcome is how the child exited. Code is -1 when the child was killed by
// a signal and carries no exit code.
type Outcome struct {
	Code     int
	Signaled bool
}

func (o Outcome) Success() bool { return !o.Signaled && o.Code == 0 }

// Prepare validates the installation and program paths and creates the
// compatibility-data directory <data>/Proton <version>. The directory
// already existing is success; it is never deleted here.
func Prepare(installDir string, v version.Version, program string, extra []string, cfg config.Config) (*Plan, error) {
	proton := filepath.Join(installDir, executable)
	if _, err := os.Stat(proton); err != nil {
		return nil, callerr.Wrap(callerr.ProtonMissing, err, "Proton %s has no executable at %s", v, proton)
	}
	if _, err := os.Stat(program); err != nil {
		return nil, callerr.Wrap(callerr.ProgramMissing, err, "%s", program)
	}

	compat := filepath.Join(cfg.Data, "Proton "+v.String())
	if err := os.Mkdir(compat, 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
		return nil, callerr.Wrap(callerr.ProtonDir, err, "%s", compat)
	}
	log.Debug().Str("compat", compat).Msg("compatibility data directory ready")

	return &Plan{
		Proton:    proton,
		Program:   program,
		Args:      extra,
		CompatDir: compat,
		Steam:     cfg.Steam,
		Log:       cfg.Log,
		version:   v,
	}, nil
}

// Execute spawns `<proton> run <program> [args...]` with the compat
// environment, inheriting everything else from this process, and blocks
// until the child exits. The wait is unbounded. Spawn and wait failures are
// distinct errors; a child that ran and exited is reported in the Outcome
// whatever its status.
func Execute(plan *Plan) (Outcome, error) {
	args := append([]string{"run", plan.Program}, plan.Args...)
	cmd := exec.Command(plan.Proton, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	protonLog := "0"
	if plan.Log {
		protonLog = "1"
	}
	cmd.Env = append(os.Environ(),
		"PROTON_LOG="+protonLog,
		"STEAM_COMPAT_DATA_PATH="+plan.CompatDir,
		"STEAM_COMPAT_CLIENT_INSTALL_PATH="+plan.Steam,
	)

	log.Info().
		Stringer("proton", plan.version).
		Str("program", plan.Program).
		Msg("running Proton")

	if err := cmd.Start(); err != nil {
		return Outcome{}, callerr.Wrap(callerr.ProtonSpawn, err, "%s", plan.Proton)
	}
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Outcome{}, callerr.Wrap(callerr.ProtonWait, err, "pid %d", cmd.Process.Pid)
		}
	}

	state := cmd.ProcessState
	if code := state.ExitCode(); code >= 0 {
		return Outcome{Code: code}, nil
	}
	return Outcome{Code: -1, Signaled: true}, nil
}
