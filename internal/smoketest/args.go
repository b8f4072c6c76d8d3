package smoketest

import "fmt"

// ParseArgs handles the runner's CLI surface: one optional --echo-json flag.
// Anything else is rejected before any HTTP traffic happens.
func ParseArgs(args []string) (echoJSON bool, err error) {
	for _, arg := range args {
		switch arg {
		case "--echo-json":
			echoJSON = true
		default:
			return false, fmt.Errorf("unknown argument: %s", arg)
		}
	}
	return echoJSON, nil
}
