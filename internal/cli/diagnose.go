package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"sdkrun/internal/config"
	"sdkrun/internal/paths"
)

// sdkHealth captures the on-disk state of one configured SDK. The report
// is informational only; a broken SDK does not fail the invocation.
type sdkHealth struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	Version    string `json:"version"`
	RootExists bool   `json:"root_exists"`
	HasBin     bool   `json:"has_bin"`
	HasUsrBin  bool   `json:"has_usr_bin"`
}

func runDiagnose(cmd *cobra.Command, sdks []config.SDK, jsonOut bool) error {
	reports := make([]sdkHealth, 0, len(sdks))
	for _, s := range sdks {
		reports = append(reports, sdkHealth{
			Name:       s.Name,
			Path:       s.Path,
			Version:    s.Version,
			RootExists: paths.DirExists(s.Path),
			HasBin:     paths.DirExists(filepath.Join(s.Path, "bin")),
			HasUsrBin:  paths.DirExists(filepath.Join(s.Path, "usr", "bin")),
		})
	}

	if jsonOut {
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	printDiagnoseResult(cmd, reports)
	return nil
}

func printDiagnoseResult(cmd *cobra.Command, reports []sdkHealth) {
	if len(reports) == 0 {
		cmd.Println("(no SDKs configured)")
		return
	}

	bold := lipgloss.NewStyle().Bold(true)
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	faint := lipgloss.NewStyle().Faint(true)

	for _, r := range reports {
		if r.RootExists {
			headline := green.Render("✓") + " " + bold.Render(r.Name)
			if r.Version != "" {
				headline += " v" + r.Version
			}
			cmd.Println(headline)

			detail := r.Path
			switch {
			case r.HasBin && r.HasUsrBin:
				detail += " · bin, usr/bin"
			case r.HasBin:
				detail += " · bin"
			case r.HasUsrBin:
				detail += " · usr/bin"
			default:
				detail += " · no tool directories"
			}
			cmd.Println(faint.Render("  " + detail))
		} else {
			headline := red.Render("✗") + " " + bold.Render(r.Name)
			headline += red.Render(" (missing: " + r.Path + ")")
			cmd.Println(headline)
		}
		cmd.Println()
	}
}
