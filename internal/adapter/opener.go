package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os/exec"
	"runtime"
)

// ErrInvalidURL is returned when asked to open something that is not an
// absolute http(s) URL.
var ErrInvalidURL = errors.New("invalid url")

// Opener opens web pages, trailers and image URLs outside the terminal
type Opener struct {
	command string   // configured command, empty for system default
	args    []string // additional arguments placed before the URL
	logger  *slog.Logger

	// start launches a process without waiting for it
	start func(name string, args ...string) error
	// lookPath reports whether a command exists in PATH
	lookPath func(name string) (string, error)
}

// handler is one way to hand a URL to the desktop
type handler struct {
	command string
	args    []string // placed before the URL
}

// systemHandlers lists the handlers tried per platform, in order
var systemHandlers = map[string][]handler{
	"darwin":  {{command: "open"}},
	"windows": {{command: "rundll32", args: []string{"url.dll,FileProtocolHandler"}}, {command: "cmd", args: []string{"/c", "start", ""}}},
	"linux":   {{command: "xdg-open"}, {command: "sensible-browser"}, {command: "x-www-browser"}, {command: "wslview"}},
}

// NewOpener creates an Opener from the opener configuration
func NewOpener(cfg OpenerConfig, logger *slog.Logger) *Opener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Opener{
		command:  cfg.Command,
		args:     cfg.Args,
		logger:   logger,
		start:    startDetached,
		lookPath: exec.LookPath,
	}
}

func startDetached(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Open hands rawURL to the configured command or the system default handler
func (o *Opener) Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}

	// Tier 1: user configured a specific command
	if o.command != "" {
		args := append(append([]string{}, o.args...), rawURL)
		o.logger.Info("opening with configured command", "command", o.command, "url", rawURL)
		if err := o.start(o.command, args...); err != nil {
			return fmt.Errorf("failed to run %s: %w", o.command, err)
		}
		return nil
	}

	// Tier 2: platform handlers in order
	handlers, ok := systemHandlers[runtime.GOOS]
	if !ok {
		handlers = systemHandlers["linux"]
	}

	for _, h := range handlers {
		if _, err := o.lookPath(h.command); err != nil {
			o.logger.Debug("handler not available", "command", h.command, "error", err)
			continue
		}
		args := append(append([]string{}, h.args...), rawURL)
		if err := o.start(h.command, args...); err != nil {
			o.logger.Debug("handler failed", "command", h.command, "error", err)
			continue
		}
		o.logger.Info("opened with system handler", "command", h.command, "url", rawURL)
		return nil
	}

	return fmt.Errorf("no handler available to open %s on %s", rawURL, runtime.GOOS)
}
