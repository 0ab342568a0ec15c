package launch_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kitty-panics/proton-caller/internal/callerr"
	"github.com/kitty-panics/proton-caller/internal/config"
	"github.com/kitty-panics/proton-caller/internal/launch"
	"github.com/kitty-panics/proton-caller/internal/version"
)

// stubInstall creates an installation directory whose proton executable is
// the given shell script body.
func stubInstall(t *testing.T, script string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "Proton 6.3")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatalf("mkdir install: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "proton"), []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return dir
}

func stubProgram(t *testing.T) string {
	t.Helper()
	prog := filepath.Join(t.TempDir(), "prog.exe")
	if err := os.WriteFile(prog, []byte("MZ"), 0o644); err != nil {
		t.Fatalf("write program: %v", err)
	}
	return prog
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Data:  t.TempDir(),
		Steam: "/tmp/s",
	}
}

func TestPrepare_CreatesCompatDir(t *testing.T) {
	install := stubInstall(t, "exit 0")
	cfg := testConfig(t)

	plan, err := launch.Prepare(install, version.Mainline(6, 3), stubProgram(t), nil, cfg)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	want := filepath.Join(cfg.Data, "Proton 6.3")
	if plan.CompatDir != want {
		t.Fatalf("CompatDir = %q, want %q", plan.CompatDir, want)
	}
	info, err := os.Stat(want)
	if err != nil || !info.IsDir() {
		t.Fatalf("compat dir not created: %v", err)
	}

	// A second Prepare reuses the directory.
	if _, err := launch.Prepare(install, version.Mainline(6, 3), plan.Program, nil, cfg); err != nil {
		t.Fatalf("Prepare on existing compat dir: %v", err)
	}
}

func TestPrepare_CustomVersionDir(t *testing.T) {
	install := stubInstall(t, "exit 0")
	cfg := testConfig(t)

	plan, err := launch.Prepare(install, version.Custom, stubProgram(t), nil, cfg)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if want := filepath.Join(cfg.Data, "Proton Custom"); plan.CompatDir != want {
		t.Fatalf("CompatDir = %q, want %q", plan.CompatDir, want)
	}
}

func TestPrepare_MissingProton(t *testing.T) {
	empty := t.TempDir()

	_, err := launch.Prepare(empty, version.Mainline(6, 3), stubProgram(t), nil, testConfig(t))
	if err == nil {
		t.Fatal("Prepare succeeded without a proton executable")
	}
	if !callerr.IsKind(err, callerr.ProtonMissing) {
		t.Fatalf("kind = %v, want ProtonMissing", callerr.KindOf(err))
	}
}

func TestPrepare_MissingProgram(t *testing.T) {
	install := stubInstall(t, "exit 0")

	_, err := launch.Prepare(install, version.Mainline(6, 3), "/no/such/prog.exe", nil, testConfig(t))
	if err == nil {
		t.Fatal("Prepare succeeded without the program")
	}
	if !callerr.IsKind(err, callerr.ProgramMissing) {
		t.Fatalf("kind = %v, want ProgramMissing", callerr.KindOf(err))
	}
}

func TestPrepare_CompatParentMissing(t *testing.T) {
	install := stubInstall(t, "exit 0")
	cfg := testConfig(t)
	cfg.Data = filepath.Join(cfg.Data, "missing", "parent")

	_, err := launch.Prepare(install, version.Mainline(6, 3), stubProgram(t), nil, cfg)
	if err == nil {
		t.Fatal("Prepare succeeded with a missing data parent")
	}
	if !callerr.IsKind(err, callerr.ProtonDir) {
		t.Fatalf("kind = %v, want ProtonDir", callerr.KindOf(err))
	}
}

func TestExecute_MirrorsExitCode(t *testing.T) {
	install := stubInstall(t, "exit 42")
	cfg := testConfig(t)

	plan, err := launch.Prepare(install, version.Mainline(6, 3), stubProgram(t), nil, cfg)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	out, err := launch.Execute(plan)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.Signaled || out.Code != 42 {
		t.Fatalf("Outcome = %+v, want code 42", out)
	}
	if out.Success() {
		t.Fatal("Success() on a non-zero exit")
	}
}

func TestExecute_ArgsAndEnvironment(t *testing.T) {
	record := filepath.Join(t.TempDir(), "record")
	// The stub records its invocation and environment for inspection.
	install := stubInstall(t,
		`printf '%s\n' "$@" > "`+record+`"
printf '%s\n' "$PROTON_LOG" "$STEAM_COMPAT_DATA_PATH" "$STEAM_COMPAT_CLIENT_INSTALL_PATH" >> "`+record+`"
exit 0`)
	cfg := testConfig(t)
	cfg.Log = true
	prog := stubProgram(t)

	plan, err := launch.Prepare(install, version.Mainline(6, 3), prog, []string{"--fullscreen", "-x"}, cfg)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	out, err := launch.Execute(plan)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !out.Success() {
		t.Fatalf("Outcome = %+v", out)
	}

	data, err := os.ReadFile(record)
	if err != nil {
		t.Fatalf("read record: %v", err)
	}
	got := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	want := []string{
		"run", prog, "--fullscreen", "-x",
		"1", plan.CompatDir, cfg.Steam,
	}
	if len(got) != len(want) {
		t.Fatalf("recorded %d lines, want %d: %q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("record[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExecute_SpawnFailure(t *testing.T) {
	install := t.TempDir()
	// Present but not executable.
	if err := os.WriteFile(filepath.Join(install, "proton"), []byte("not a script"), 0o644); err != nil {
		t.Fatalf("write non-executable: %v", err)
	}

	plan, err := launch.Prepare(install, version.Mainline(6, 3), stubProgram(t), nil, testConfig(t))
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if _, err := launch.Execute(plan); !callerr.IsKind(err, callerr.ProtonSpawn) {
		t.Fatalf("kind = %v, want ProtonSpawn", callerr.KindOf(err))
	}
}
