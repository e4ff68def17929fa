package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/philipp01105/colada/core"
	"github.com/valyala/fastjson"
)

// PrettyFormatter renders records of the leveled JSON convention as one
// colorized line. Anything else is passed through unchanged.
type PrettyFormatter struct {
	Config
	parsers   fastjson.ParserPool
	producers []producer
}

// producer renders one token of the output line; "" means no token
type producer func(e *core.Entry) string

// NewPrettyFormatter creates a new pretty formatter
func NewPrettyFormatter(cfg Config) *PrettyFormatter {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	f := &PrettyFormatter{Config: cfg}
	f.producers = []producer{
		f.formatTime,
		formatLevel,
		formatNamespace,
		formatName,
		formatMessage,
		formatOperationName,
		formatResult,
		formatMethod,
		formatStatusCode,
		formatURL,
		formatContentLength,
		formatResponseTime,
		formatStack,
	}
	return f
}

// Format formats a record
func (f *PrettyFormatter) Format(record []byte) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(record, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// FormatString is Format for string records
func (f *PrettyFormatter) FormatString(record string) string {
	return string(f.Format([]byte(record)))
}

// FormatTo formats a record and writes it directly to the writer
func (f *PrettyFormatter) FormatTo(record []byte, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(record, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatMap formats a record that was already decoded upstream. Maps
// that are passed through are rendered with fmt's default verb.
func (f *PrettyFormatter) FormatMap(m map[string]any) string {
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Sprint(m) + "\n"
	}

	p := f.parsers.Get()
	defer f.parsers.Put(p)

	v, err := p.ParseBytes(b)
	if err != nil {
		return fmt.Sprint(m) + "\n"
	}
	e, ok := core.Decode(v)
	if !ok {
		return fmt.Sprint(m) + "\n"
	}

	buf := getBuffer()
	defer putBuffer(buf)
	f.render(e, buf)
	return buf.String()
}

// formatToBuffer writes the rendered record, or the record itself when it
// cannot be decoded, followed by a newline.
func (f *PrettyFormatter) formatToBuffer(record []byte, buf *bytes.Buffer) {
	p := f.parsers.Get()
	defer f.parsers.Put(p)

	v, err := p.ParseBytes(record)
	if err != nil {
		buf.Write(record)
		buf.WriteByte('\n')
		return
	}
	e, ok := core.Decode(v)
	if !ok {
		buf.Write(record)
		buf.WriteByte('\n')
		return
	}
	f.render(e, buf)
}

// render joins the non-empty tokens of e with spaces and ends the line.
func (f *PrettyFormatter) render(e *core.Entry, buf *bytes.Buffer) {
	first := true
	for _, produce := range f.producers {
		tok := produce(e)
		if tok == "" {
			continue
		}
		if !first {
			buf.WriteByte(' ')
		}
		buf.WriteString(tok)
		first = false
	}
	buf.WriteByte('\n')
}

func (f *PrettyFormatter) formatTime(*core.Entry) string {
	return Paint(f.Now().Format("15:04:05"), StyleGray)
}

var levelEmoji = [...]string{
	core.TraceLevel: "🔍",
	core.DebugLevel: "🐛",
	core.InfoLevel:  "✨",
	core.WarnLevel:  "⚠️",
	core.ErrorLevel: "🚨",
	core.FatalLevel: "💀",
	core.UserLevel:  "",
}

// the warning sign renders one column wide, the rest two
const narrowEmoji = "⚠️"

func formatLevel(e *core.Entry) string {
	if int(e.Level) >= len(levelEmoji) {
		return ""
	}
	emoji := levelEmoji[e.Level]
	if emoji == narrowEmoji {
		return emoji + " "
	}
	return emoji
}

func formatNamespace(e *core.Entry) string {
	if !e.Namespace.Truthy() {
		return ""
	}
	return Paint(e.Namespace.String(), StyleCyan)
}

func formatName(e *core.Entry) string {
	if !e.Name.Truthy() {
		return ""
	}
	return Paint(e.Name.String(), StyleBlue)
}

var messageStyles = [...]Style{
	core.UnknownLevel: StyleNone,
	core.TraceLevel:   StyleWhite,
	core.DebugLevel:   StyleYellow,
	core.InfoLevel:    StyleGreen,
	core.WarnLevel:    StyleMagenta,
	core.ErrorLevel:   StyleRed,
	core.FatalLevel:   StyleFatal,
	core.UserLevel:    StyleGreen,
}

func formatMessage(e *core.Entry) string {
	style := StyleNone
	if int(e.Level) < len(messageStyles) {
		style = messageStyles[e.Level]
	}
	return Paint(messageAlias(e.Message.String()), style)
}

func messageAlias(msg string) string {
	switch msg {
	case "request":
		return "<--"
	case "response":
		return "-->"
	default:
		return msg
	}
}

func isGraphQL(e *core.Entry) bool {
	return e.Namespace.Type == core.StringType && e.Namespace.Str == "graphql"
}

func isMessage(e *core.Entry, msg string) bool {
	return e.Message.Type == core.StringType && e.Message.Str == msg
}

func formatOperationName(e *core.Entry) string {
	if !isGraphQL(e) || !isMessage(e, "request") {
		return ""
	}
	if !e.OperationName.Truthy() {
		return Paint("???", StyleWhite)
	}
	return Paint(e.OperationName.String(), StyleWhite)
}

func formatResult(e *core.Entry) string {
	if !isGraphQL(e) || !isMessage(e, "response") {
		return ""
	}
	if e.GraphQL.HasErrors {
		return Paint(strings.Join(e.GraphQL.Codes, ", "), StyleRed)
	}
	return Paint("ok", StyleWhite)
}

func hasMethod(e *core.Entry) bool {
	return !isGraphQL(e) && !e.Method.IsNull()
}

func formatMethod(e *core.Entry) string {
	if !hasMethod(e) {
		return ""
	}
	return Paint(e.Method.String(), StyleWhite)
}

func formatStatusCode(e *core.Entry) string {
	if !hasMethod(e) {
		return ""
	}
	if !e.StatusCode.Truthy() {
		return Paint("xxx", StyleWhite)
	}
	return Paint(e.StatusCode.String(), StyleWhite)
}

func formatURL(e *core.Entry) string {
	return Paint(e.URL.String(), StyleWhite)
}

func formatContentLength(e *core.Entry) string {
	n, ok := e.ContentLength.Int()
	if !ok {
		return ""
	}
	return Paint(FormatBytes(n), StyleGray)
}

func formatResponseTime(e *core.Entry) string {
	ms, ok := e.ResponseTime.Int()
	if !ok {
		return ""
	}
	return Paint(FormatMillis(ms), StyleGray)
}

func formatStack(e *core.Entry) string {
	if !e.Level.HasStack() || !e.Stack.Truthy() {
		return ""
	}
	return "\n" + e.Stack.String()
}
