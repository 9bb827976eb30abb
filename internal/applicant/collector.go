package applicant

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"

	"cerb/pkg/domain"
	dErrors "cerb/pkg/domain-errors"
	"cerb/pkg/platform/sentinel"
)

// Prompts and guidance shown by the Collector.
const (
	promptName    = "What is your first and last name? (ex. Chris Thompson): "
	promptAge     = "What is your current age?: "
	promptIncome  = "What is your current annual income? (Enter your income as a positive integer): "
	promptCountry = "What is your country of residence?: "
	promptStudent = "Are you a current post-secondary student?"
	promptRegion  = "Which province or territory do you live in?"
	promptRegionQ = "Enter your response either in the fullname or acronym (ex. British Columbia or BC): "

	guideName    = "Please enter your first and last name, each starting with a capital letter (ex. Chris Thompson)."
	guideAge     = "Please enter your age as a positive integer."
	guideIncome  = "Please enter your income as a positive integer."
	guideCountry = "Please enter your country of residence."
	guideStudent = "Please enter 1 or 2."
)

var studentOptions = []string{"Yes", "No"}

// Collector asks for applicant answers on out and reads them line by line
// from in. Every Collect method except CollectProvince re-prompts until the
// answer is valid; the loops end early only when input runs out or ctx is done.
//
// Lines are read on a background goroutine so a pending read does not hold
// up cancellation. Call Close when the Collector is no longer needed.
type Collector struct {
	in     *bufio.Reader
	out    io.Writer
	logger *zap.Logger

	startOnce sync.Once
	closeOnce sync.Once
	lines     chan readResult
	done      chan struct{}
}

type readResult struct {
	line string
	err  error
}

// Option configures a Collector.
type Option func(*Collector)

// WithLogger sets the logger used for rejected answers.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Collector) {
		c.logger = logger
	}
}

// NewCollector reads answers from in and writes prompts to out.
func NewCollector(in io.Reader, out io.Writer, opts ...Option) *Collector {
	c := &Collector{
		in:     bufio.NewReader(in),
		out:    out,
		logger: zap.NewNop(),
		lines:  make(chan readResult),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CollectProfile asks for all five answers in order and builds the Profile.
func (c *Collector) CollectProfile(ctx context.Context) (Profile, error) {
	name, err := c.CollectName(ctx)
	if err != nil {
		return Profile{}, err
	}
	age, err := c.CollectAge(ctx)
	if err != nil {
		return Profile{}, err
	}
	income, err := c.CollectIncome(ctx)
	if err != nil {
		return Profile{}, err
	}
	country, err := c.CollectCountry(ctx)
	if err != nil {
		return Profile{}, err
	}
	student, err := c.CollectStudentStatus(ctx)
	if err != nil {
		return Profile{}, err
	}
	return NewProfile(name, age, income, country, student)
}

// CollectName loops until the answer is a capitalized first and last name.
func (c *Collector) CollectName(ctx context.Context) (domain.PersonName, error) {
	for {
		line, err := c.ask(ctx, promptName)
		if err != nil {
			return "", err
		}
		name, err := domain.ParsePersonName(strings.TrimSpace(line))
		if err != nil {
			c.reject("name", err, guideName)
			continue
		}
		c.println(fmt.Sprintf("Pleasure to meet you, %s.", name))
		return name, nil
	}
}

// CollectAge loops until the answer is a positive integer.
func (c *Collector) CollectAge(ctx context.Context) (int, error) {
	return c.collectPositive(ctx, "age", promptAge, guideAge, domain.ParseAge)
}

// CollectIncome loops until the answer is a positive integer.
func (c *Collector) CollectIncome(ctx context.Context) (int, error) {
	return c.collectPositive(ctx, "income", promptIncome, guideIncome, domain.ParseIncome)
}

func (c *Collector) collectPositive(ctx context.Context, field, prompt, guide string, parse func(string) (int, error)) (int, error) {
	for {
		line, err := c.ask(ctx, prompt)
		if err != nil {
			return 0, err
		}
		n, err := parse(line)
		if err != nil {
			c.reject(field, err, guide)
			continue
		}
		return n, nil
	}
}

// CollectCountry loops until the answer is non-blank and returns it title-cased.
func (c *Collector) CollectCountry(ctx context.Context) (domain.Country, error) {
	for {
		line, err := c.ask(ctx, promptCountry)
		if err != nil {
			return "", err
		}
		country, err := domain.ParseCountry(line)
		if err != nil {
			c.reject("country", err, guideCountry)
			continue
		}
		return country, nil
	}
}

// CollectStudentStatus shows a Yes/No menu and loops until "1" or "2" is entered.
func (c *Collector) CollectStudentStatus(ctx context.Context) (bool, error) {
	c.println(promptStudent)
	for i, option := range studentOptions {
		c.println(fmt.Sprintf("%d: %s", i+1, option))
	}
	for {
		line, err := c.ask(ctx, "")
		if err != nil {
			return false, err
		}
		switch line {
		case "1":
			return true, nil
		case "2":
			return false, nil
		}
		c.reject("student", dErrors.New(dErrors.CodeInvalidInput, "answer must be 1 or 2"), guideStudent)
	}
}

// CollectProvince lists the provinces and territories and reads a single
// answer. A blank answer is not re-asked: it returns domain.ErrBlankProvince.
func (c *Collector) CollectProvince(ctx context.Context) (domain.Province, error) {
	c.println(promptRegion)
	for _, name := range domain.ProvincesAndTerritories {
		c.println(name)
	}
	line, err := c.ask(ctx, promptRegionQ)
	if err != nil {
		return "", err
	}
	return domain.ParseProvince(line)
}

// Close stops the background reader once its pending read returns. A read
// blocked on an open terminal stays blocked until the process exits.
func (c *Collector) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}

// ask writes prompt (if any) and waits for one line without its line ending,
// or for ctx to end.
func (c *Collector) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if prompt != "" {
		fmt.Fprint(c.out, prompt)
	}
	c.startOnce.Do(func() { go c.readLines() })

	var r readResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-c.lines:
		if !ok {
			return "", fmt.Errorf("%w: %w", sentinel.ErrInputClosed, io.ErrUnexpectedEOF)
		}
		r = res
	}

	if r.err != nil {
		if !errors.Is(r.err, io.EOF) {
			return "", fmt.Errorf("read answer: %w", r.err)
		}
		if r.line == "" {
			return "", fmt.Errorf("%w: %w", sentinel.ErrInputClosed, io.ErrUnexpectedEOF)
		}
	}
	return strings.TrimRight(r.line, "\r\n"), nil
}

// readLines feeds c.lines until the reader fails or Close is called. The
// channel is closed after the final (error-carrying) result.
func (c *Collector) readLines() {
	defer close(c.lines)
	for {
		line, err := c.in.ReadString('\n')
		select {
		case c.lines <- readResult{line: line, err: err}:
		case <-c.done:
			return
		}
		if err != nil {
			return
		}
	}
}

func (c *Collector) reject(field string, err error, guide string) {
	c.logger.Debug("answer rejected",
		zap.String("field", field),
		zap.String("code", string(dErrors.CodeOf(err))),
		zap.Error(err),
	)
	c.println(guide)
}

func (c *Collector) println(s string) {
	fmt.Fprintln(c.out, s)
}
