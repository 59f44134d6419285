// Package browser logs into LCR with a real Chromium instance and
// captures the session headers off an authenticated network request.
// LCR has no token endpoint to speak of, so the only way to obtain
// working credentials for the JSON api is to watch the browser make a
// request and copy whatever it sent.
package browser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("browser")

// ErrInvalidLogin is returned when the login flow completed but the
// captured header set was empty, which means the credentials were
// rejected or the site changed underneath us.
var ErrInvalidLogin = errors.New("login produced no session headers")

type Credentials struct {
	Username string
	Password string
}

// TriggerMode selects which request the header capture matches on.
// The site has changed this before, so it is configuration rather
// than a fixed contract.
type TriggerMode string

const (
	// TriggerDocument matches the post-login document GET fired by
	// the final submit.
	TriggerDocument TriggerMode = "document"
	// TriggerLookup types a throwaway query into the member lookup
	// box after login and matches the XHR it fires by url prefix.
	TriggerLookup TriggerMode = "lookup"
)

type Options struct {
	// run the browser with a visible window
	ShowChrome bool

	LoginURL string
	Trigger  TriggerMode
	// exact url matched in document mode
	CaptureURL string
	// url prefix matched in lookup mode
	CapturePrefix string
	// the literal typed into the lookup box carries no meaning, it
	// only has to fire a request
	ProbeQuery string

	ElementTimeout time.Duration
	CaptureTimeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.LoginURL == "" {
		o.LoginURL = "https://lcr.churchofjesuschrist.org"
	}
	if o.Trigger == "" {
		o.Trigger = TriggerDocument
	}
	if o.CaptureURL == "" {
		o.CaptureURL = "https://lcr.churchofjesuschrist.org/?lang=eng"
	}
	if o.CapturePrefix == "" {
		o.CapturePrefix = "https://lcr.churchofjesuschrist.org/services/member-lookup"
	}
	if o.ProbeQuery == "" {
		o.ProbeQuery = "ephraim"
	}
	if o.ElementTimeout == 0 {
		o.ElementTimeout = time.Second * 30
	}
	if o.CaptureTimeout == 0 {
		o.CaptureTimeout = time.Second * 45
	}
	return o
}

const (
	usernameSelector     = "input#input28"
	nextButtonSelector   = "input.button.button-primary"
	passwordSelector     = "input[type=password]"
	submitSelector       = "input[type=submit]"
	memberLookupSelector = "input#memberLookupMain"
)

// Acquire drives a full login through a headless browser and returns
// the headers observed on the first request matching the configured
// trigger. It never returns an empty header map.
func Acquire(ctx context.Context, creds Credentials, opts Options) (map[string]string, error) {
	ctx, span := tracer.Start(ctx, "Acquire")
	defer span.End()

	opts = opts.withDefaults()

	controlURL, err := launcher.New().
		Headless(!opts.ShowChrome).
		Launch()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to launch chromium")
		return nil, fmt.Errorf("browser: launch chromium: %w", err)
	}

	b := rod.New().ControlURL(controlURL).Context(ctx)
	if err := b.Connect(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to connect to chromium")
		return nil, fmt.Errorf("browser: connect to chromium: %w", err)
	}
	defer b.Close()

	page, err := b.Page(proto.TargetCreateTarget{URL: opts.LoginURL})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to open login page")
		return nil, fmt.Errorf("browser: open login page: %w", err)
	}

	headerCh := make(chan map[string]string, 1)

	flow := loginFlow{
		fillForm: func() error { return fillLoginForm(page, creds, opts) },
		startCapture: func() func() {
			return captureHeaders(page, opts, headerCh)
		},
		submit: func() error {
			if err := clickElement(page, opts, submitSelector); err != nil {
				return fmt.Errorf("browser: click submit: %w", err)
			}
			return nil
		},
	}
	if opts.Trigger == TriggerLookup {
		flow.probe = func() error { return fireLookupProbe(page, opts) }
	}

	stopCapture, err := flow.run()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "login flow failed")
		return nil, err
	}
	defer stopCapture()

	select {
	case headers := <-headerCh:
		if err := validateCapturedHeaders(headers); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		slog.Info("captured session headers", "count", len(headers))
		return headers, nil
	case <-time.After(opts.CaptureTimeout):
		span.SetStatus(codes.Error, "timed out waiting for header capture")
		return nil, fmt.Errorf(
			"browser: no request matched the %q capture trigger within %s",
			opts.Trigger, opts.CaptureTimeout,
		)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// captureHeaders subscribes to request events on the CDP event loop
// and hands the first match back over a one-shot channel. The
// returned func tears the subscription down.
func captureHeaders(page *rod.Page, opts Options, out chan<- map[string]string) func() {
	ctx, cancel := context.WithCancel(page.GetContext())
	watched := page.Context(ctx)

	wait := watched.EachEvent(func(e *proto.NetworkRequestWillBeSent) bool {
		if !matchesTrigger(e, opts) {
			return false
		}

		headers := make(map[string]string, len(e.Request.Headers))
		for k, v := range e.Request.Headers {
			headers[k] = v.Str()
		}
		select {
		case out <- headers:
		default:
		}
		return true
	})
	go wait()

	return cancel
}

// validateCapturedHeaders rejects an empty capture, which means the
// portal bounced the credentials instead of issuing a session.
func validateCapturedHeaders(headers map[string]string) error {
	if len(headers) == 0 {
		return ErrInvalidLogin
	}
	return nil
}

func matchesTrigger(e *proto.NetworkRequestWillBeSent, opts Options) bool {
	switch opts.Trigger {
	case TriggerLookup:
		return strings.HasPrefix(e.Request.URL, opts.CapturePrefix)
	default:
		return e.Request.URL == opts.CaptureURL && e.Request.Method == "GET"
	}
}

// loginFlow sequences the login steps. The capture subscription must
// be armed after the form is filled and before the final submit: any
// earlier and a pre-auth redirect through the capture URL would fill
// the one-shot channel with unauthenticated headers.
type loginFlow struct {
	fillForm     func() error
	startCapture func() func()
	submit       func() error
	// set in lookup mode only
	probe func() error
}

// run executes the steps in order and returns the capture teardown.
func (f loginFlow) run() (func(), error) {
	if err := f.fillForm(); err != nil {
		return nil, err
	}
	stop := f.startCapture()
	if err := f.submit(); err != nil {
		stop()
		return nil, err
	}
	if f.probe != nil {
		if err := f.probe(); err != nil {
			stop()
			return nil, err
		}
	}
	return stop, nil
}

// fillLoginForm walks the two-step Okta form up to but not including
// the final submit: username, next, password.
func fillLoginForm(page *rod.Page, creds Credentials, opts Options) error {
	if err := focusUsernameField(page, opts); err != nil {
		return err
	}
	if err := typeInto(page, opts, usernameSelector, creds.Username); err != nil {
		return fmt.Errorf("browser: type username: %w", err)
	}
	if err := clickElement(page, opts, nextButtonSelector); err != nil {
		return fmt.Errorf("browser: click next: %w", err)
	}

	password, err := page.Timeout(opts.ElementTimeout).Element(passwordSelector)
	if err != nil {
		return fmt.Errorf("browser: wait for password field: %w", err)
	}
	// the password field animates into view, wait for it to settle
	// instead of sleeping a fixed second like the flow used to
	if err := password.WaitStable(time.Millisecond * 300); err != nil {
		return fmt.Errorf("browser: wait for password field to settle: %w", err)
	}
	if err := password.Input(creds.Password); err != nil {
		return fmt.Errorf("browser: type password: %w", err)
	}
	return nil
}

// focusUsernameField clicks the username input, retrying up to three
// times. A single click fails intermittently while the page is still
// hydrating.
func focusUsernameField(page *rod.Page, opts Options) error {
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		el, err := page.Timeout(opts.ElementTimeout).Element(usernameSelector)
		if err != nil {
			lastErr = err
			continue
		}
		if err := el.WaitVisible(); err != nil {
			lastErr = err
			continue
		}
		if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return fmt.Errorf("browser: focus username field: %w", lastErr)
}

func clickElement(page *rod.Page, opts Options, selector string) error {
	el, err := page.Timeout(opts.ElementTimeout).Element(selector)
	if err != nil {
		return err
	}
	return el.Click(proto.InputMouseButtonLeft, 1)
}

func typeInto(page *rod.Page, opts Options, selector, text string) error {
	el, err := page.Timeout(opts.ElementTimeout).Element(selector)
	if err != nil {
		return err
	}
	return el.Input(text)
}

// fireLookupProbe types a dummy query into the member lookup box so
// the page fires the XHR the capture is matching on.
func fireLookupProbe(page *rod.Page, opts Options) error {
	lookup, err := page.Timeout(opts.ElementTimeout).Element(memberLookupSelector)
	if err != nil {
		return fmt.Errorf("browser: wait for member lookup: %w", err)
	}
	if err := lookup.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("browser: focus member lookup: %w", err)
	}
	if err := lookup.Input(opts.ProbeQuery); err != nil {
		return fmt.Errorf("browser: type probe query: %w", err)
	}
	return nil
}
