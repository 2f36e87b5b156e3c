package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

// maxLineBytes bounds a single log line; zap stack traces can be long.
const maxLineBytes = 1 << 20

// Options selects which lines Tail returns.
type Options struct {
	Lines int // keep at most this many from the end
	// MinLevel drops JSON records below this level. Lines that are not JSON
	// are always kept.
	MinLevel zapcore.Level
}

// Tail returns the last matching lines of the log at path, oldest first.
// A missing log file yields no lines and no error.
func Tail(path string, opts Options) ([]string, error) {
	if opts.Lines <= 0 {
		return nil, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer f.Close()

	var kept []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		line := sc.Text()
		if !opts.keep(line) {
			continue
		}
		kept = append(kept, line)
		if len(kept) > opts.Lines {
			kept = kept[1:]
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return kept, nil
}

func (o Options) keep(line string) bool {
	if o.MinLevel <= zapcore.DebugLevel {
		return true
	}
	rec, ok := Parse(line)
	if !ok || rec.Level == "" {
		return true
	}
	lvl, err := zapcore.ParseLevel(rec.Level)
	if err != nil {
		return true
	}
	return lvl >= o.MinLevel
}

// Record is one decoded JSON log line.
type Record struct {
	Time    time.Time
	Level   string
	Message string
	Fields  map[string]string
}

// reserved keys are rendered in fixed positions rather than as fields.
var reserved = map[string]bool{"ts": true, "level": true, "msg": true, "caller": true, "stacktrace": true}

// Parse decodes a JSON log line. Lines that are not JSON objects report false.
func Parse(line string) (Record, bool) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Record{}, false
	}
	rec := Record{Fields: make(map[string]string)}
	if ts, ok := raw["ts"].(string); ok {
		if parsed, err := time.Parse("2006-01-02T15:04:05.000Z0700", ts); err == nil {
			rec.Time = parsed
		} else if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			rec.Time = parsed
		}
	}
	rec.Level, _ = raw["level"].(string)
	rec.Message, _ = raw["msg"].(string)
	for k, v := range raw {
		if reserved[k] {
			continue
		}
		rec.Fields[k] = fmt.Sprint(v)
	}
	return rec, true
}

// Format renders a log line as "15:04:05 LEVEL message key=value ...".
// Lines that are not JSON are returned unchanged.
func Format(line string) string {
	rec, ok := Parse(line)
	if !ok {
		return line
	}
	var b strings.Builder
	if !rec.Time.IsZero() {
		b.WriteString(rec.Time.Local().Format("15:04:05"))
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "%-5s %s", strings.ToUpper(rec.Level), rec.Message)

	keys := make([]string, 0, len(rec.Fields))
	for k := range rec.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%s", k, rec.Fields[k])
	}
	return b.String()
}
