// Command lt-trim trims a compiled analyser to the entries a compiled bidix can translate:
//
//	lt-trim [flags] analyser_bin_file bidix_bin_file trimmed_bin_file
//
// The size of every analyser section is printed on stdout. Sections without a translation are dropped with
// a warning on stderr. Nothing is written when no section is left.
//
// Exit codes: 0 = success, 1 = usage error, unreadable input, unwritable output or empty result.
package main

import (
	"os"

	"github.com/geange/lttoolbox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
