package lcr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/cookiejar"
	"time"

	"lcrassist/lib/browser"
	"lcrassist/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/lcr")

// Client fetches LCR report endpoints. The first call that needs the
// network logs in through a headless browser to capture session
// headers; the headers live for the lifetime of the process, there is
// no refresh. Report responses are never cached.
type Client struct {
	http    *resty.Client
	creds   browser.Credentials
	unit    string
	cfg     Config
	browser browser.Options
	headers map[string]string
}

type ClientOptions struct {
	Credentials browser.Credentials
	UnitNumber  string
	Config      Config
	Browser     browser.Options

	// SessionHeaders skips the browser login entirely when set.
	// Useful for replaying a captured session or for tests.
	SessionHeaders map[string]string
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.SessionHeaders != nil && len(opts.SessionHeaders) == 0 {
		return nil, errors.New("session headers were provided but empty")
	}

	cfg := opts.Config.withDefaults()

	client := resty.New()
	client.SetBaseURL(cfg.BaseURL)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/lcr/http")

	b := opts.Browser
	if b.Trigger == "" {
		b.Trigger = browser.TriggerMode(cfg.CaptureTrigger)
	}
	if b.CaptureURL == "" {
		b.CaptureURL = cfg.CaptureURL
	}
	if b.CapturePrefix == "" {
		b.CapturePrefix = cfg.CapturePrefix
	}
	if b.ProbeQuery == "" {
		b.ProbeQuery = cfg.ProbeQuery
	}

	return &Client{
		http:    client,
		creds:   opts.Credentials,
		unit:    opts.UnitNumber,
		cfg:     cfg,
		browser: b,
		headers: opts.SessionHeaders,
	}, nil
}

// ensureSession lazily runs the browser login on the first fetch.
// Requests are never issued without a non-empty header set.
func (c *Client) ensureSession(ctx context.Context) error {
	if len(c.headers) > 0 {
		return nil
	}
	headers, err := browser.Acquire(ctx, c.creds, c.browser)
	if err != nil {
		return err
	}
	c.headers = headers
	return nil
}

// get performs one authenticated GET and decodes the JSON body into
// out. Any transport error, non-2xx status or decode failure is
// fatal for the call.
func (c *Client) get(ctx context.Context, path string, out any) error {
	ctx, span := tracer.Start(ctx, "get")
	defer span.End()

	if err := c.ensureSession(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to acquire session")
		return err
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetHeaders(c.headers).
		SetHeader("Accept", "application/json").
		Get(path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return fmt.Errorf("GET %s%s: %w", c.cfg.BaseURL, path, err)
	}
	if res.IsError() {
		span.SetStatus(codes.Error, res.Status())
		return fmt.Errorf("GET %s returned %s", res.Request.URL, res.Status())
	}

	if err := json.Unmarshal(res.Body(), out); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to decode body")
		return fmt.Errorf("decode response from %s: %w", res.Request.URL, err)
	}
	return nil
}

// MovedIn lists members who moved into the unit in the last numMonths
// months.
func (c *Client) MovedIn(ctx context.Context, numMonths int) ([]MovedInPerson, error) {
	ctx, span := tracer.Start(ctx, "MovedIn")
	defer span.End()

	var people []MovedInPerson
	err := c.get(ctx, fmt.Sprintf(c.cfg.MovedInPath, c.unit, numMonths), &people)
	if err != nil {
		return nil, err
	}
	return people, nil
}

// MovedOut lists members who moved out of the unit in the last
// numMonths months.
func (c *Client) MovedOut(ctx context.Context, numMonths int) ([]MovedOutPerson, error) {
	ctx, span := tracer.Start(ctx, "MovedOut")
	defer span.End()

	var people []MovedOutPerson
	err := c.get(ctx, fmt.Sprintf(c.cfg.MovedOutPath, c.unit, numMonths), &people)
	if err != nil {
		return nil, err
	}
	return people, nil
}

func (c *Client) MemberList(ctx context.Context) ([]MemberListPerson, error) {
	ctx, span := tracer.Start(ctx, "MemberList")
	defer span.End()

	var people []MemberListPerson
	err := c.get(ctx, fmt.Sprintf(c.cfg.MemberListPath, c.unit), &people)
	if err != nil {
		return nil, err
	}
	return people, nil
}

func (c *Client) MemberProfile(ctx context.Context, legacyCmisID int64) (MemberProfile, error) {
	ctx, span := tracer.Start(ctx, "MemberProfile")
	defer span.End()

	var profile MemberProfile
	err := c.get(ctx, fmt.Sprintf(c.cfg.MemberProfilePath, legacyCmisID), &profile)
	if err != nil {
		return MemberProfile{}, err
	}
	return profile, nil
}

// VisualMemberList fetches the approved photo records and reduces the
// (household, individual) pairs into one display record per pair.
func (c *Client) VisualMemberList(ctx context.Context) ([]VisualPerson, error) {
	ctx, span := tracer.Start(ctx, "VisualMemberList")
	defer span.End()

	var photos []PhotoInfo
	err := c.get(ctx, fmt.Sprintf(c.cfg.PhotosPath, c.unit), &photos)
	if err != nil {
		return nil, err
	}
	return PairPhotos(photos), nil
}

// Ministering fetches the nested assignment structures for the unit.
func (c *Client) Ministering(ctx context.Context) ([]MinisteringQuorum, error) {
	ctx, span := tracer.Start(ctx, "Ministering")
	defer span.End()

	var quorums []MinisteringQuorum
	err := c.get(ctx, fmt.Sprintf(c.cfg.MinisteringPath, c.unit), &quorums)
	if err != nil {
		return nil, err
	}
	return quorums, nil
}

// MinisteringNames flattens the assignment structures into a sorted
// set of unique names. With onlyFemales set, the member list is
// consulted to exclude people recorded male; anyone missing from the
// list counts as female.
func (c *Client) MinisteringNames(ctx context.Context, onlyFemales bool) ([]string, error) {
	ctx, span := tracer.Start(ctx, "MinisteringNames")
	defer span.End()

	quorums, err := c.Ministering(ctx)
	if err != nil {
		return nil, err
	}

	var femaleByID map[int64]bool
	if onlyFemales {
		members, err := c.MemberList(ctx)
		if err != nil {
			return nil, err
		}
		femaleByID = FemaleByID(members)
	}

	return CollectNames(quorums, onlyFemales, femaleByID), nil
}
