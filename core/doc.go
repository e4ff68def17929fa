// Package core defines the record model shared by the formatter and the
// stream handler.
//
// A record of the leveled JSON convention is a JSON object carrying the
// schema marker "v": 1 and a truthy "level". Decode turns such an object
// into an Entry and resolves every optional field in one pass: message
// falls back to msg, HTTP fields come from the nested req/res objects
// when present and from the top level otherwise, and numeric levels are
// mapped to names (10 trace ... 60 fatal).
//
// Every optional field is a Value. The zero Value means the field was
// absent or null, so renderers only ask IsNull or Truthy and never need
// to inspect the underlying JSON.
package core
