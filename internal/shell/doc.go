// Package shell interprets terminal input against a virtual filesystem.
//
// An Interpreter owns one Session. Each call to Execute handles exactly one
// input line: in the Idle state the line is parsed as a command, while an
// edit is in progress every line is appended to the file being edited until
// the ":wq" terminator. Execute never fails; problems are reported as output
// lines and, for callers that need them, as Result.Err.
package shell
