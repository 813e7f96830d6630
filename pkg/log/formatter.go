package log

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
	"github.com/sirupsen/logrus"
)

const defaultTimestampFormat = "15:04:05.000"

var defaultColorScheme = ColorScheme{
	ErrorLevelStyle: "red",
	WarnLevelStyle:  "yellow",
	InfoLevelStyle:  "green",
	DebugLevelStyle: "blue+h",
	TraceLevelStyle: "white",
	TimestampStyle:  "black+h",
}

// ColorStyleName is a name of the configurable style, e.g. the style for the warn level.
type ColorStyleName byte

const (
	ErrorLevelStyle ColorStyleName = iota
	WarnLevelStyle
	InfoLevelStyle
	DebugLevelStyle
	TraceLevelStyle
	TimestampStyle
)

// ColorFunc wraps the given text in the ansi codes of one style.
type ColorFunc func(string) string

// ColorStyle is an `github.com/mgutz/ansi` style declaration, e.g. "yellow+b".
type ColorStyle string

// ColorFunc compiles the style into a reusable coloring function.
func (style ColorStyle) ColorFunc() ColorFunc {
	return ansi.ColorFunc(string(style))
}

// ColorScheme maps style names to their declarations.
type ColorScheme map[ColorStyleName]ColorStyle

func (scheme ColorScheme) compile() compiledColorScheme {
	compiled := make(compiledColorScheme, len(scheme))

	for name, style := range scheme {
		compiled[name] = style.ColorFunc()
	}

	return compiled
}

type compiledColorScheme map[ColorStyleName]ColorFunc

func (scheme compiledColorScheme) LevelColorFunc(level Level) ColorFunc {
	switch level {
	case ErrorLevel:
		return scheme[ErrorLevelStyle]
	case WarnLevel:
		return scheme[WarnLevelStyle]
	case InfoLevel:
		return scheme[InfoLevelStyle]
	case DebugLevel:
		return scheme[DebugLevelStyle]
	case TraceLevel:
		return scheme[TraceLevelStyle]
	default:
		return nil
	}
}

// Formatter renders log entries as `TIMESTAMP LEVEL MESSAGE key=value...` lines,
// coloring the level when the destination is a terminal.
type Formatter struct {
	colorScheme compiledColorScheme

	// DisableColors forces plain output even when the destination is a terminal.
	DisableColors bool

	// DisableTimestamp removes the timestamp column.
	DisableTimestamp bool
}

// NewFormatter returns a new Formatter with the default color scheme.
func NewFormatter() *Formatter {
	return &Formatter{
		colorScheme: defaultColorScheme.compile(),
	}
}

// Format implements logrus.Formatter.
func (formatter *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	buf := entry.Buffer
	if buf == nil {
		buf = new(bytes.Buffer)
	}

	level := FromLogrusLevel(entry.Level)
	useColor := formatter.useColor(entry)

	if !formatter.DisableTimestamp {
		timestamp := entry.Time.Format(defaultTimestampFormat)
		if useColor {
			timestamp = formatter.colorScheme[TimestampStyle](timestamp)
		}

		if _, err := fmt.Fprintf(buf, "%s ", timestamp); err != nil {
			return nil, err
		}
	}

	levelName := strings.ToUpper(level.String())
	if useColor {
		if colorFunc := formatter.colorScheme.LevelColorFunc(level); colorFunc != nil {
			levelName = colorFunc(levelName)
		}
	}

	if _, err := fmt.Fprintf(buf, "%-6s %s", levelName, entry.Message); err != nil {
		return nil, err
	}

	fields := Fields(entry.Data)
	for _, key := range fields.Keys() {
		if _, err := fmt.Fprintf(buf, " %s=%v", key, fields[key]); err != nil {
			return nil, err
		}
	}

	if err := buf.WriteByte('\n'); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (formatter *Formatter) useColor(entry *logrus.Entry) bool {
	if formatter.DisableColors {
		return false
	}

	if entry.Logger == nil {
		return false
	}

	if out, ok := entry.Logger.Out.(*os.File); ok {
		return isatty.IsTerminal(out.Fd())
	}

	return false
}
