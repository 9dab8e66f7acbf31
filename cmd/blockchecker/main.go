// Command blockchecker checks a list of domains against the block-status
// API and posts the results to Slack.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "blockchecker:", err)
		os.Exit(1)
	}
}
