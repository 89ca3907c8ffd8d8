//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Grounded on: github.com/kballard/go-shellquote, already a dependency of
// the wider bassosimone CLI family (see bassosimone-clip/dispatcher.go's
// use of shellquote.Join for error messages). optparse uses the other
// half of the same package, Split, to support [*Parser.ParseLine].
//

// Package shellsplit wraps github.com/kballard/go-shellquote's word
// splitting behind a narrow, optparse-specific name.
package shellsplit

import "github.com/kballard/go-shellquote"

// Split tokenizes line using POSIX shell quoting rules.
func Split(line string) ([]string, error) {
	return shellquote.Split(line)
}
