package core

import (
	"github.com/valyala/fastjson"
)

// SchemaVersion is the value of the "v" marker carried by every record
// of the leveled JSON convention.
const SchemaVersion = 1

// Entry represents one decoded record with its optional fields resolved.
// Absent fields are zero Values.
type Entry struct {
	Level    Level
	RawLevel Value

	Message   Value
	Name      Value
	Namespace Value

	// HTTP metadata, from req/res when present, otherwise top-level
	Method        Value
	URL           Value
	StatusCode    Value
	ContentLength Value
	ResponseTime  Value

	// GraphQL metadata
	OperationName Value
	GraphQL       GraphQLResponse

	Stack Value
}

// GraphQLResponse summarizes a graphqlResponse field
type GraphQLResponse struct {
	// HasErrors is set when the response carries a truthy errors field
	HasErrors bool
	// Codes holds extensions.code of each error that has one
	Codes []string
}

// Decode resolves a parsed record into an Entry. It returns false when
// the record does not follow the convention: not an object, no v == 1
// marker, or a falsy level. Records holding number literals that strict
// JSON rejects, such as NaN, are refused as well. Repeated keys resolve
// to their last occurrence.
func Decode(v *fastjson.Value) (*Entry, bool) {
	if v == nil || v.Type() != fastjson.TypeObject || !strictJSON(v) {
		return nil, false
	}
	if mark := lookup(v, "v"); mark == nil || mark.Type() != fastjson.TypeNumber || mark.GetFloat64() != SchemaVersion {
		return nil, false
	}
	raw := ValueOf(lookup(v, "level"))
	if !raw.Truthy() {
		return nil, false
	}

	e := &Entry{
		Level:     ParseLevel(raw),
		RawLevel:  raw,
		Message:   ValueOf(lookup(v, "message")),
		Name:      ValueOf(lookup(v, "name")),
		Namespace: ValueOf(lookup(v, "ns")),
	}
	if !e.Message.Truthy() {
		e.Message = ValueOf(lookup(v, "msg"))
	}

	if req := lookup(v, "req"); ValueOf(req).Truthy() {
		e.Method = ValueOf(lookup(req, "method"))
		e.URL = ValueOf(lookup(req, "url"))
	} else {
		e.Method = ValueOf(lookup(v, "method"))
		e.URL = ValueOf(lookup(v, "url"))
	}

	res := lookup(v, "res")
	if ValueOf(res).Truthy() {
		e.StatusCode = ValueOf(lookup(res, "statusCode"))
	} else {
		e.StatusCode = ValueOf(lookup(v, "statusCode"))
	}

	e.ContentLength = ValueOf(lookup(v, "contentLength"))
	if !e.ContentLength.Truthy() {
		e.ContentLength = Value{}
		if ValueOf(res).Truthy() {
			e.ContentLength = ValueOf(lookup(res, "headers", "content-length"))
		}
	}

	e.ResponseTime = ValueOf(lookup(v, "responseTime"))
	if !e.ResponseTime.Truthy() {
		e.ResponseTime = ValueOf(lookup(v, "elapsed"))
	}

	e.OperationName = ValueOf(lookup(v, "graphqlRequest", "operationName"))
	e.GraphQL = decodeGraphQL(lookup(v, "graphqlResponse"))

	e.Stack = ValueOf(lookup(v, "stack"))
	if !e.Stack.Truthy() {
		e.Stack = ValueOf(lookup(v, "err", "stack"))
	}

	return e, true
}

func decodeGraphQL(v *fastjson.Value) GraphQLResponse {
	var r GraphQLResponse
	if v == nil {
		return r
	}
	errs := lookup(v, "errors")
	if !ValueOf(errs).Truthy() {
		return r
	}
	r.HasErrors = true
	if errs.Type() != fastjson.TypeArray {
		return r
	}
	for _, item := range errs.GetArray() {
		if code := ValueOf(lookup(item, "extensions", "code")); code.Truthy() {
			r.Codes = append(r.Codes, code.String())
		}
	}
	return r
}
