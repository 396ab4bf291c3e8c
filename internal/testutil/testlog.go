// Package testlog provides an in-memory logx.Logger for assertions in tests.
package testlog

import (
	"sync"

	"rjcouriers-service-booking/internal/logx"
)

// Entry is one recorded log call. Fields include those attached via With.
type Entry struct {
	Level  string
	Msg    string
	Fields []logx.Field
}

// Lookup returns the value of the first field named key.
func (e Entry) Lookup(key string) (any, bool) {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Recorder collects entries from every logger it hands out.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func New() *Recorder { return &Recorder{} }

// Logger returns a logger writing into r.
func (r *Recorder) Logger() logx.Logger {
	return recLogger{r: r}
}

// Entries returns a snapshot of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// AtLevel returns the entries recorded at level ("debug", "info", "warn", "error").
func (r *Recorder) AtLevel(level string) []Entry {
	var out []Entry
	for _, e := range r.Entries() {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Has reports whether an entry with the given message was recorded.
func (r *Recorder) Has(msg string) bool {
	_, ok := r.find(msg)
	return ok
}

// Field returns the value of key in the first entry with the given message.
func (r *Recorder) Field(msg, key string) (any, bool) {
	for _, e := range r.Entries() {
		if e.Msg != msg {
			continue
		}
		if v, ok := e.Lookup(key); ok {
			return v, true
		}
	}
	return nil, false
}

func (r *Recorder) find(msg string) (Entry, bool) {
	for _, e := range r.Entries() {
		if e.Msg == msg {
			return e, true
		}
	}
	return Entry{}, false
}

func (r *Recorder) record(level, msg string, base, fields []logx.Field) {
	all := make([]logx.Field, 0, len(base)+len(fields))
	all = append(all, base...)
	all = append(all, fields...)

	r.mu.Lock()
	r.entries = append(r.entries, Entry{Level: level, Msg: msg, Fields: all})
	r.mu.Unlock()
}

type recLogger struct {
	r    *Recorder
	base []logx.Field
}

func (l recLogger) Debug(msg string, f ...logx.Field) { l.r.record("debug", msg, l.base, f) }
func (l recLogger) Info(msg string, f ...logx.Field)  { l.r.record("info", msg, l.base, f) }
func (l recLogger) Warn(msg string, f ...logx.Field)  { l.r.record("warn", msg, l.base, f) }
func (l recLogger) Error(msg string, f ...logx.Field) { l.r.record("error", msg, l.base, f) }

func (l recLogger) With(f ...logx.Field) logx.Logger {
	base := make([]logx.Field, 0, len(l.base)+len(f))
	base = append(base, l.base...)
	base = append(base, f...)
	return recLogger{r: l.r, base: base}
}

func (recLogger) Sync() error { return nil }

var _ logx.Logger = recLogger{}
