package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sdkrun/internal/config"
	"sdkrun/internal/logging"
	"sdkrun/internal/sdk"
)

// Version is the dispatcher's own version string, printed by --version.
const Version = "1.0.0"

// invocation holds the parsed flag surface for one run. Free tokens are
// the tool name plus its forwarded arguments.
type invocation struct {
	version   bool
	verbose   bool
	sdkName   string
	toolchain string
	logInvoke bool
	find      string
	noCache   bool
	killCache bool

	showSDKPath             bool
	showSDKVersion          bool
	showSDKTargetTriple     bool
	showSDKToolchainPath    bool
	showSDKToolchainVersion bool

	diagnose bool
	jsonOut  bool

	run string
}

// exitStatusError carries the child's exit code out of RunE so Execute can
// terminate the process without os.Exit living inside command logic.
type exitStatusError struct {
	code int
}

func (e *exitStatusError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// Execute runs the root command and exits the process accordingly.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		var exitErr *exitStatusError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		fmt.Fprintf(os.Stderr, "sdkrun: error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	inv := &invocation{}

	cmd := &cobra.Command{
		Use:   "sdkrun [flags] [tool] [arguments...]",
		Short: "Resolve and run development tools from configured SDKs",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, inv, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// The first free token is the tool name; everything after it belongs
	// to the tool, including flag-shaped tokens.
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().BoolVar(&inv.version, "version", false, "print the sdkrun version")
	cmd.Flags().BoolVarP(&inv.verbose, "verbose", "v", false, "print the parsed invocation for debugging")
	cmd.Flags().StringVar(&inv.sdkName, "sdk", "", "select the SDK by exact name instead of probing")
	cmd.Flags().StringVar(&inv.toolchain, "toolchain", "", "reserved")
	cmd.Flags().BoolVarP(&inv.logInvoke, "log", "l", false, "log the invocation before executing the tool")
	cmd.Flags().StringVarP(&inv.find, "find", "f", "", "print the resolved path of a tool without executing it")
	cmd.Flags().BoolVarP(&inv.noCache, "no-cache", "n", false, "reserved")
	cmd.Flags().BoolVarP(&inv.killCache, "kill-cache", "k", false, "reserved")
	cmd.Flags().BoolVar(&inv.showSDKPath, "show-sdk-path", false, "print the path of every configured SDK")
	cmd.Flags().BoolVar(&inv.showSDKVersion, "show-sdk-version", false, "print the version of every configured SDK")
	cmd.Flags().BoolVar(&inv.showSDKTargetTriple, "show-sdk-target-triple", false, "print the target triple of every configured SDK")
	cmd.Flags().BoolVar(&inv.showSDKToolchainPath, "show-sdk-toolchain-path", false, "print the toolchain path of every configured SDK")
	cmd.Flags().BoolVar(&inv.showSDKToolchainVersion, "show-sdk-toolchain-version", false, "print the toolchain version of every configured SDK")
	cmd.Flags().BoolVar(&inv.diagnose, "diagnose", false, "report the health of every configured SDK")
	cmd.Flags().BoolVar(&inv.jsonOut, "json", false, "machine-readable --diagnose output")
	cmd.Flags().StringVar(&inv.run, "run", "", "reserved")

	return cmd
}

// runRoot handles the stages in a fixed order; several may apply to one
// invocation (for example --version combined with a dump, or --find
// followed by execution of the same tool).
func runRoot(cmd *cobra.Command, inv *invocation, args []string) error {
	logger := logging.New(cmd.ErrOrStderr(), inv.verbose)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if inv.version {
		fmt.Fprintf(cmd.OutOrStdout(), "sdkrun %s\n", Version)
	}

	dumpField := func(field func(config.SDK) string) {
		for _, s := range cfg.SDKs {
			fmt.Fprintln(cmd.OutOrStdout(), field(s))
		}
	}
	if inv.showSDKPath {
		dumpField(func(s config.SDK) string { return s.Path })
	}
	if inv.showSDKVersion {
		dumpField(func(s config.SDK) string { return s.Version })
	}
	if inv.showSDKTargetTriple {
		dumpField(func(s config.SDK) string { return s.TargetTriple })
	}
	// Toolchain path and version are aliases for the SDK fields; the
	// configuration has no separate toolchain records.
	if inv.showSDKToolchainPath {
		dumpField(func(s config.SDK) string { return s.Path })
	}
	if inv.showSDKToolchainVersion {
		dumpField(func(s config.SDK) string { return s.Version })
	}

	if inv.diagnose {
		if err := runDiagnose(cmd, cfg.SDKs, inv.jsonOut); err != nil {
			return err
		}
	}

	if inv.find != "" {
		rt, err := sdk.Resolve(cfg.SDKs, sdk.Request{Tool: inv.find, SDKHint: inv.sdkName})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), rt.Path)
	}

	if len(args) > 0 {
		if err := runTool(inv, logger, cfg.SDKs, args); err != nil {
			return err
		}
	}

	if inv.verbose {
		logger.Debug().
			Str("sdk", inv.sdkName).
			Str("toolchain", inv.toolchain).
			Str("find", inv.find).
			Str("run", inv.run).
			Bool("log", inv.logInvoke).
			Strs("arguments", args).
			Msg("parsed invocation")
	}

	return nil
}
