package cli

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDiagnoseJSON(t *testing.T) {
	healthy := sdkWithTools(t, "macos", "bin/clang", "usr/bin/ld")
	broken := sdkWithTools(t, "ios")
	broken.Path = broken.Path + "-missing"
	installConfig(t, healthy, broken)

	out, _, err := runCommand(t, "--diagnose", "--json")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	var reports []sdkHealth
	if err := json.Unmarshal([]byte(out), &reports); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if !reports[0].RootExists || !reports[0].HasBin || !reports[0].HasUsrBin {
		t.Fatalf("expected healthy first report, got %+v", reports[0])
	}
	if reports[1].RootExists {
		t.Fatalf("expected missing root in second report, got %+v", reports[1])
	}
}

func TestDiagnoseHumanOutput(t *testing.T) {
	s := sdkWithTools(t, "macos", "bin/clang")
	installConfig(t, s)

	out, _, err := runCommand(t, "--diagnose")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "macos") {
		t.Fatalf("expected the SDK name in the report, got %q", out)
	}
	if !strings.Contains(out, s.Path) {
		t.Fatalf("expected the SDK path in the report, got %q", out)
	}
}

func TestDiagnoseEmptyStore(t *testing.T) {
	installConfig(t)

	out, _, err := runCommand(t, "--diagnose")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "no SDKs configured") {
		t.Fatalf("expected an empty-store notice, got %q", out)
	}
}

func TestDiagnoseExitsZeroOnBrokenSDK(t *testing.T) {
	broken := sdkWithTools(t, "ios")
	broken.Path = broken.Path + "-missing"
	installConfig(t, broken)

	if _, _, err := runCommand(t, "--diagnose"); err != nil {
		t.Fatalf("diagnose is informational and must not fail: %v", err)
	}
}
