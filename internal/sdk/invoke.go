package sdk

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
)

// libraryPathVar is the shared-library search path extended for the child.
const libraryPathVar = "LD_LIBRARY_PATH"

// Invoker spawns a resolved tool with the SDK environment applied. Nil
// streams are discarded; NewInvoker wires the calling process's own
// environment and standard streams.
type Invoker struct {
	// Environ is the ambient environment, os.Environ() by default.
	Environ []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewInvoker returns an Invoker wired to the calling process's environment
// and standard streams.
func NewInvoker() Invoker {
	return Invoker{
		Environ: os.Environ(),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Run executes the resolved tool with args, blocking until it exits, and
// returns the child's exit code. The child inherits the invoker's streams
// unmodified. A child killed by a signal maps to 128 plus the signal
// number, the shell convention; a spawn failure returns an error instead.
func (inv Invoker) Run(rt ResolvedTool, args []string) (int, error) {
	cmd := exec.Command(rt.Path, args...)
	cmd.Env = BuildEnv(inv.Environ, rt.SDK.Path)
	cmd.Stdin = inv.Stdin
	cmd.Stdout = inv.Stdout
	cmd.Stderr = inv.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return 0, fmt.Errorf("exec %s: %w", rt.Path, err)
	}

	if code := exitErr.ExitCode(); code >= 0 {
		return code, nil
	}
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal()), nil
	}
	return 1, nil
}

// BuildEnv derives the child environment from the ambient one: SDKROOT is
// replaced with the SDK root, the SDK root is prepended to PATH, and the
// SDK's lib directory is prepended to the library search path. Ambient
// variables that are absent collapse to just the SDK-derived value.
func BuildEnv(environ []string, sdkPath string) []string {
	libDir := filepath.Join(sdkPath, "lib")
	env := make([]string, 0, len(environ)+3)
	var sawPath, sawLib bool

	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			env = append(env, kv)
			continue
		}
		switch key {
		case "SDKROOT":
			continue
		case "PATH":
			sawPath = true
			env = append(env, "PATH="+prepend(sdkPath, value))
		case libraryPathVar:
			sawLib = true
			env = append(env, libraryPathVar+"="+prepend(libDir, value))
		default:
			env = append(env, kv)
		}
	}

	env = append(env, "SDKROOT="+sdkPath)
	if !sawPath {
		env = append(env, "PATH="+sdkPath)
	}
	if !sawLib {
		env = append(env, libraryPathVar+"="+libDir)
	}
	return env
}

func prepend(entry, existing string) string {
	if existing == "" {
		return entry
	}
	return entry + ":" + existing
}
