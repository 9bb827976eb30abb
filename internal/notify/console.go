package notify

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"cerb/internal/notify/metrics"
	dErrors "cerb/pkg/domain-errors"
)

// DefaultLinkDelay gives the reader time to finish the message before the
// browser takes focus.
const DefaultLinkDelay = 2 * time.Second

// Launcher opens a URL outside the process.
type Launcher interface {
	Open(url string) error
}

// Console prints user-facing messages and opens links in the browser.
type Console struct {
	out       io.Writer
	styles    styles
	launcher  Launcher
	delay     time.Duration
	openLinks bool
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

type styles struct {
	message lipgloss.Style
	warn    lipgloss.Style
	success lipgloss.Style
	link    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		message: r.NewStyle(),
		warn:    r.NewStyle().Foreground(lipgloss.Color("#FFC107")).Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("#8BC34A")).Bold(true),
		link:    r.NewStyle().Foreground(lipgloss.Color("#2196F3")).Underline(true),
	}
}

// Option configures a Console.
type Option func(*Console)

// WithLauncher replaces the platform browser command.
func WithLauncher(l Launcher) Option {
	return func(c *Console) { c.launcher = l }
}

// WithLinkDelay sets how long OpenLink waits before launching.
func WithLinkDelay(d time.Duration) Option {
	return func(c *Console) { c.delay = d }
}

// WithLinksDisabled prints links instead of launching a browser.
func WithLinksDisabled() Option {
	return func(c *Console) { c.openLinks = false }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Console) { c.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Console) { c.metrics = m }
}

// NewConsole writes to out. Colors are used only when out is a terminal.
func NewConsole(out io.Writer, opts ...Option) *Console {
	c := &Console{
		out:       out,
		styles:    newStyles(lipgloss.NewRenderer(out)),
		launcher:  NewBrowserLauncher(),
		delay:     DefaultLinkDelay,
		openLinks: true,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Message prints an informational line.
func (c *Console) Message(text string) {
	c.println(c.styles.message, text)
}

// Warn prints a line the applicant should act on.
func (c *Console) Warn(text string) {
	c.println(c.styles.warn, text)
}

// Success prints a positive verdict.
func (c *Console) Success(text string) {
	c.println(c.styles.success, text)
}

// OpenLink waits for the configured delay and then opens url in the browser.
// It returns ctx.Err() if ctx ends during the wait. When links are disabled
// or the launch fails, the URL is printed so the applicant can open it.
func (c *Console) OpenLink(ctx context.Context, url string) error {
	if !c.openLinks {
		c.printLink(url)
		c.metrics.IncrementLink("skipped")
		return nil
	}

	if c.delay > 0 {
		timer := time.NewTimer(c.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			c.metrics.IncrementLink("cancelled")
			return ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		c.metrics.IncrementLink("cancelled")
		return err
	}

	if err := c.launcher.Open(url); err != nil {
		c.logger.Warn("browser launch failed", zap.String("url", url), zap.Error(err))
		c.metrics.IncrementLink("failed")
		c.printLink(url)
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "open browser")
	}
	c.logger.Debug("link opened", zap.String("url", url))
	c.metrics.IncrementLink("opened")
	return nil
}

func (c *Console) printLink(url string) {
	fmt.Fprintln(c.out, "Open this link in your browser: "+c.styles.link.Render(url))
}

func (c *Console) println(style lipgloss.Style, text string) {
	fmt.Fprintln(c.out, style.Render(text))
}
