package config

import (
	"flag"
	"os"
)

const defaultEndpoint = "http://localhost:8080"

// parses CLI flags for the terminal chat client
func ParseTUIFlags() Flags {
	endpoint := os.Getenv("VAIDYA_API_ENDPOINT")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	fs := flag.NewFlagSet("tui", flag.ExitOnError)
	endpointFlag := fs.String("endpoint", endpoint, "base URL of the vaidya server")
	widthFlag := fs.Int("width", 0, "wrap width for rendered replies (0 = terminal width)")
	fs.Parse(os.Args[1:]) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return Flags{Endpoint: *endpointFlag, Width: *widthFlag}
}
