package core

import (
	"regexp"

	"github.com/valyala/fastjson"
)

// lookup walks keys from v through nested objects. When an object repeats
// a key, the last occurrence wins, as it does for JSON.parse. fastjson's
// own Get returns the first one.
func lookup(v *fastjson.Value, keys ...string) *fastjson.Value {
	for _, key := range keys {
		if v == nil || v.Type() != fastjson.TypeObject {
			return nil
		}
		var found *fastjson.Value
		v.GetObject().Visit(func(k []byte, kv *fastjson.Value) {
			if string(k) == key {
				found = kv
			}
		})
		v = found
	}
	return v
}

var jsonNumber = regexp.MustCompile(`^-?(?:0|[1-9][0-9]*)(?:\.[0-9]+)?(?:[eE][+-]?[0-9]+)?$`)

// strictJSON reports whether every number literal under v follows the
// JSON grammar. fastjson also accepts NaN, Inf and forms like "+1" or "01".
func strictJSON(v *fastjson.Value) bool {
	switch v.Type() {
	case fastjson.TypeNumber:
		return jsonNumber.MatchString(v.String())
	case fastjson.TypeArray:
		for _, item := range v.GetArray() {
			if !strictJSON(item) {
				return false
			}
		}
	case fastjson.TypeObject:
		ok := true
		v.GetObject().Visit(func(_ []byte, kv *fastjson.Value) {
			if ok && !strictJSON(kv) {
				ok = false
			}
		})
		return ok
	}
	return true
}
