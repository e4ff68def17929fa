// Package handler streams raw records through a formatter to an output.
//
// LineReader splits the input into records, ConsoleHandler formats each
// record and writes it out immediately, and Stream ties the two together
// on the caller's goroutine. One input record always produces exactly one
// output line, in input order.
//
// Per-record decoding problems never surface here: the formatter passes
// unrecognized records through. Only transport failures, such as a read
// error on the input or a closed pipe on the output, end a Stream.
//
// ConsoleHandler tracks processed and failed writes via the Stats type,
// which can be queried at runtime.
package handler
