// Package sdk selects an SDK for a requested tool, locates the tool's
// executable inside it, and executes the tool with an adjusted environment.
package sdk

import (
	"errors"
	"fmt"
	"path/filepath"

	"sdkrun/internal/config"
	"sdkrun/internal/paths"
)

// ErrToolNotFound is returned both when no SDK matches a request and when
// a selected SDK does not contain the tool. The two cases are distinct
// checks but surface identically to the caller.
var ErrToolNotFound = errors.New("tool not found")

// Request asks for one tool, optionally pinning the SDK by name.
type Request struct {
	Tool    string
	SDKHint string
}

// ResolvedTool pairs the selected SDK with the tool's executable path. The
// path was confirmed to exist at resolution time.
type ResolvedTool struct {
	SDK  *config.SDK
	Path string
}

// Select chooses exactly one SDK for the request. With a hint, the first
// descriptor whose name matches exactly wins regardless of tool presence;
// there is no fallback to probing on a hint mismatch. Without a hint, the
// first descriptor (in store order) that contains the tool under bin/ or
// usr/bin wins.
func Select(sdks []config.SDK, req Request) (*config.SDK, error) {
	for i := range sdks {
		if req.SDKHint != "" {
			if sdks[i].Name == req.SDKHint {
				return &sdks[i], nil
			}
			continue
		}
		if hasTool(&sdks[i], req.Tool) {
			return &sdks[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrToolNotFound, req.Tool)
}

// Locate finds the tool inside an already-selected SDK, probing bin/ before
// usr/bin. Failing here is distinct from a selection failure: the SDK
// matched, but the binary is absent from both conventional locations.
func Locate(s *config.SDK, tool string) (string, error) {
	for _, candidate := range candidatePaths(s, tool) {
		if paths.FileExists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrToolNotFound, tool)
}

// Resolve runs selection followed by location.
func Resolve(sdks []config.SDK, req Request) (ResolvedTool, error) {
	selected, err := Select(sdks, req)
	if err != nil {
		return ResolvedTool{}, err
	}
	path, err := Locate(selected, req.Tool)
	if err != nil {
		return ResolvedTool{}, err
	}
	return ResolvedTool{SDK: selected, Path: path}, nil
}

func candidatePaths(s *config.SDK, tool string) []string {
	return []string{
		filepath.Join(s.Path, "bin", tool),
		filepath.Join(s.Path, "usr", "bin", tool),
	}
}

func hasTool(s *config.SDK, tool string) bool {
	for _, candidate := range candidatePaths(s, tool) {
		if paths.FileExists(candidate) {
			return true
		}
	}
	return false
}
