package neopolitan

import (
	"io"

	"github.com/francoispqt/gojay"
	"github.com/sirupsen/logrus"
	"github.com/viant/neopolitan/lexer"
)

type (
	//Tracer receives scan diagnostics
	Tracer interface {
		Trace(event *Event)
	}

	//Event represents a single scan call outcome
	Event struct {
		Token    string
		Pattern  string
		Expected bool
		Matched  bool
		Consumed int //runes advanced
		Marks    int //end marks
	}

	logTracer struct {
		logger logrus.FieldLogger
	}

	//JSONTracer writes scan events as JSON lines
	JSONTracer struct {
		writer io.Writer
		err    error
	}

	countingLexer struct {
		lexer.Lexer
		advanced int
		marks    int
	}
)

// MarshalJSONObject implements gojay.MarshalerJSONObject
func (e *Event) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("token", e.Token)
	enc.StringKey("pattern", e.Pattern)
	enc.BoolKey("expected", e.Expected)
	enc.BoolKey("matched", e.Matched)
	enc.IntKey("consumed", e.Consumed)
	enc.IntKey("marks", e.Marks)
}

// IsNil implements gojay.MarshalerJSONObject
func (e *Event) IsNil() bool {
	return e == nil
}

// UnmarshalJSONObject implements gojay.UnmarshalerJSONObject
func (e *Event) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case "token":
		return dec.String(&e.Token)
	case "pattern":
		return dec.String(&e.Pattern)
	case "expected":
		return dec.Bool(&e.Expected)
	case "matched":
		return dec.Bool(&e.Matched)
	case "consumed":
		return dec.Int(&e.Consumed)
	case "marks":
		return dec.Int(&e.Marks)
	}
	return nil
}

// NKeys implements gojay.UnmarshalerJSONObject
func (e *Event) NKeys() int {
	return 6
}

func (t *logTracer) Trace(event *Event) {
	t.logger.WithFields(logrus.Fields{
		"token":    event.Token,
		"pattern":  event.Pattern,
		"expected": event.Expected,
		"matched":  event.Matched,
		"consumed": event.Consumed,
		"marks":    event.Marks,
	}).Debug("scan")
}

// Trace writes event as a single JSON line
func (t *JSONTracer) Trace(event *Event) {
	if t.err != nil {
		return
	}
	data, err := gojay.MarshalJSONObject(event)
	if err != nil {
		t.err = err
		return
	}
	_, t.err = t.writer.Write(append(data, '\n'))
}

// Err returns the first marshal or write error, tracing stops after it
func (t *JSONTracer) Err() error {
	return t.err
}

func (l *countingLexer) Advance(skip bool) {
	l.advanced++
	l.Lexer.Advance(skip)
}

func (l *countingLexer) MarkEnd() {
	l.marks++
	l.Lexer.MarkEnd()
}

// NewLogTracer creates a tracer logging scan events at debug level
func NewLogTracer(logger logrus.FieldLogger) Tracer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &logTracer{logger: logger}
}

// NewJSONTracer creates a tracer writing one JSON object per line for each scan event, the tracer should not be shared across goroutines
func NewJSONTracer(writer io.Writer) *JSONTracer {
	return &JSONTracer{writer: writer}
}
