// Package formatter turns raw log records into colorized summary lines.
//
// PrettyFormatter implements both Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer. It parses each
// record with a pooled fastjson parser, decodes it into a core.Entry and
// runs a fixed list of token producers over it: timestamp, level emoji,
// namespace, name, message, GraphQL or HTTP details, URL, content
// length, response time and stack. Empty tokens are dropped and the rest
// are joined with single spaces.
//
// Records that are not JSON objects, lack the "v": 1 marker or carry no
// level are written back unchanged. A formatter never returns an error
// for the record itself; only FormatTo reports the writer's error.
//
// Styling goes through Paint, a pure function of text and Style. Colors
// are always emitted, whether or not the destination is a terminal.
package formatter
