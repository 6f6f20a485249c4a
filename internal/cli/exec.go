package cli

import (
	"github.com/rs/zerolog"

	"sdkrun/internal/config"
	"sdkrun/internal/sdk"
)

// newInvoker is swapped out by tests to capture streams instead of
// inheriting the process's own.
var newInvoker = sdk.NewInvoker

// runTool resolves args[0] and executes it with the remaining tokens,
// terminating the invocation with the child's exit status. Execution mode
// always ends the run; nothing is processed after the child exits.
func runTool(inv *invocation, logger zerolog.Logger, sdks []config.SDK, args []string) error {
	tool := args[0]
	rt, err := sdk.Resolve(sdks, sdk.Request{Tool: tool, SDKHint: inv.sdkName})
	if err != nil {
		return err
	}

	if inv.logInvoke {
		logger.Info().
			Str("tool", tool).
			Str("path", rt.Path).
			Str("sdk", rt.SDK.Name).
			Strs("arguments", args[1:]).
			Msg("invoking command")
	}

	code, err := newInvoker().Run(rt, args[1:])
	if err != nil {
		return err
	}
	return &exitStatusError{code: code}
}
