package cron

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// New is the constructor for Parser
func New(opts ...Option) (*Parser, error) {
	p := &Parser{
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		err := opt(p)
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Parser turns cron lines into Expressions. A Parser holds no per-call state
// and is safe for concurrent use.
type Parser struct {
	logger   *zap.Logger
	parallel bool
	log      chan Log
}

// Parse splits line into five fields and a command and expands every field.
// The first failing field, counted from the left, aborts the parse and its
// *FieldError is returned unchanged.
func (p *Parser) Parse(line string) (*Expression, error) {
	record := newLog(line, time.Now())
	expr, err := p.parse(line)
	record.Ended = time.Now()
	record.Err = err
	p.emit(record)

	if err != nil {
		p.logger.Debug("expression rejected", zap.String("line", line), zap.Error(err))
		return nil, err
	}
	return expr, nil
}

// ParseField expands a single field of the given kind.
func (p *Parser) ParseField(text string, kind Kind) (*Field, error) {
	f, err := parseField(text, kind)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("field parsed",
		zap.Stringer("kind", kind),
		zap.String("text", text),
		zap.Ints("values", f.Values()),
	)
	return f, nil
}

func (p *Parser) parse(line string) (*Expression, error) {
	tokens, err := tokenize(line)
	if err != nil {
		return nil, err
	}

	var fields [5]*Field
	if p.parallel {
		fields, err = p.parseConcurrently(tokens)
	} else {
		fields, err = p.parseSequentially(tokens)
	}
	if err != nil {
		return nil, err
	}
	return &Expression{fields: fields, command: tokens[len(tokens)-1]}, nil
}

func (p *Parser) parseSequentially(tokens []string) ([5]*Field, error) {
	var fields [5]*Field
	for i, kind := range Kinds() {
		f, err := p.ParseField(tokens[i], kind)
		if err != nil {
			return [5]*Field{}, err
		}
		fields[i] = f
	}
	return fields, nil
}

func (p *Parser) parseConcurrently(tokens []string) ([5]*Field, error) {
	var (
		fields [5]*Field
		errs   [5]error
		g      errgroup.Group
	)
	for i, kind := range Kinds() {
		g.Go(func() error {
			fields[i], errs[i] = p.ParseField(tokens[i], kind)
			return errs[i]
		})
	}
	if g.Wait() == nil {
		return fields, nil
	}

	// Wait reports whichever goroutine failed first in time.
	for _, err := range errs {
		if err != nil {
			return [5]*Field{}, err
		}
	}
	return fields, nil
}

func (p *Parser) emit(record Log) {
	if p.log == nil {
		return
	}
	select {
	case p.log <- record:
	default:
	}
}
