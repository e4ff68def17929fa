package core

// Level represents the normalized severity of a record
type Level int8

const (
	// UnknownLevel is any level name or number outside the convention
	UnknownLevel Level = iota
	TraceLevel
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
	// UserLevel is the custom "userlvl" name
	UserLevel
)

var levelNames = [...]string{
	UnknownLevel: "",
	TraceLevel:   "trace",
	DebugLevel:   "debug",
	InfoLevel:    "info",
	WarnLevel:    "warn",
	ErrorLevel:   "error",
	FatalLevel:   "fatal",
	UserLevel:    "userlvl",
}

// String returns the canonical level name, or "" for UnknownLevel
func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return ""
	}
	return levelNames[l]
}

// numeric severities of the convention, 10 apart
var levelNumbers = map[float64]Level{
	10: TraceLevel,
	20: DebugLevel,
	30: InfoLevel,
	40: WarnLevel,
	50: ErrorLevel,
	60: FatalLevel,
}

// ParseLevel maps a raw level field to a Level. Names match exactly
// (case-sensitive); numbers must be one of 10, 20, 30, 40, 50 or 60.
func ParseLevel(v Value) Level {
	switch v.Type {
	case NumberType:
		if l, ok := levelNumbers[v.Num]; ok {
			return l
		}
	case StringType:
		for l, name := range levelNames {
			if name != "" && name == v.Str {
				return Level(l)
			}
		}
	}
	return UnknownLevel
}

// HasStack reports whether records at this level may carry a stack trace
func (l Level) HasStack() bool {
	return l == ErrorLevel || l == FatalLevel
}
