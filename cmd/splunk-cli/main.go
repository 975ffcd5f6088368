// Command splunk-cli is the non-interactive command-line client for a
// Splunk Enterprise REST API.
package main

import "github.com/fitchmultz/splunk-tui/internal/cli"

func main() {
	cli.Main()
}
