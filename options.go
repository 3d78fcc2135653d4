package neopolitan

import "github.com/viant/neopolitan/terminator"

//Option scanner option
type Option func(s *Scanner)

//Options represents scanner options
type Options []Option

//Apply applies options
func (o Options) Apply(s *Scanner) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(s)
	}
}

//WithPattern overrides default "-- /code" terminator pattern
func WithPattern(pattern *terminator.Pattern) Option {
	return func(s *Scanner) {
		if pattern != nil {
			s.pattern = pattern
		}
	}
}

//WithTracer enables scan diagnostics
func WithTracer(tracer Tracer) Option {
	return func(s *Scanner) {
		s.tracer = tracer
	}
}
