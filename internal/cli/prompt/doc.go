// Package prompt collects unanswered questions interactively. Fill asks only
// for keys absent from the answer set, so answers loaded from a file always
// win over the terminal.
package prompt
