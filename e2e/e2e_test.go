//go:build e2e

package e2e_test

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/rogpeppe/go-internal/testscript"
)

var dumpfilesBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "dumpfiles-e2e-*")
	if err != nil {
		panic(err)
	}

	dumpfilesBinary = filepath.Join(tmpDir, "dumpfiles")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", dumpfilesBinary, "./cmd/dumpfiles")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build dumpfiles binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			"waitfile": waitFile,
		},
	})
}

func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")

	binDir := filepath.Dir(dumpfilesBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+currentPath)

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("DUMPFILES_CACHE_DIR", filepath.Join(env.WorkDir, ".cache"))
	env.Setenv("DUMPFILES_SERVER_COMMAND_DELAY", "10ms")

	return nil
}

// waitFile polls until every named file exists, failing after ten seconds.
func waitFile(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("unsupported: ! waitfile")
	}
	if len(args) == 0 {
		ts.Fatalf("usage: waitfile file...")
	}

	deadline := time.Now().Add(10 * time.Second)
	for _, arg := range args {
		path := ts.MkAbs(arg)
		for {
			_, err := os.Stat(path)
			if err == nil {
				break
			}
			if !errors.Is(err, os.ErrNotExist) || time.Now().After(deadline) {
				ts.Fatalf("waiting for %s: %v", arg, err)
			}
			time.Sleep(20 * time.Millisecond)
		}
	}
}
