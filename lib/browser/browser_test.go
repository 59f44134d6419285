package browser

import (
	"errors"
	"testing"
	"time"

	"github.com/go-rod/rod/lib/proto"
	"github.com/stretchr/testify/require"
)

func TestOptionsWithDefaults(t *testing.T) {
	opts := Options{}.withDefaults()
	require.Equal(t, "https://lcr.churchofjesuschrist.org", opts.LoginURL)
	require.Equal(t, TriggerDocument, opts.Trigger)
	require.Equal(t, "https://lcr.churchofjesuschrist.org/?lang=eng", opts.CaptureURL)
	require.Equal(t, "https://lcr.churchofjesuschrist.org/services/member-lookup", opts.CapturePrefix)
	require.Equal(t, "ephraim", opts.ProbeQuery)
	require.Equal(t, time.Second*30, opts.ElementTimeout)
	require.Equal(t, time.Second*45, opts.CaptureTimeout)
}

func TestOptionsWithDefaultsKeepsOverrides(t *testing.T) {
	opts := Options{
		LoginURL:       "http://localhost:9222",
		Trigger:        TriggerLookup,
		CaptureTimeout: time.Second,
	}.withDefaults()
	require.Equal(t, "http://localhost:9222", opts.LoginURL)
	require.Equal(t, TriggerLookup, opts.Trigger)
	require.Equal(t, time.Second, opts.CaptureTimeout)
}

func TestMatchesTrigger(t *testing.T) {
	opts := Options{}.withDefaults()

	doc := &proto.NetworkRequestWillBeSent{Request: &proto.NetworkRequest{
		URL:    "https://lcr.churchofjesuschrist.org/?lang=eng",
		Method: "GET",
	}}
	require.True(t, matchesTrigger(doc, opts))

	post := &proto.NetworkRequestWillBeSent{Request: &proto.NetworkRequest{
		URL:    "https://lcr.churchofjesuschrist.org/?lang=eng",
		Method: "POST",
	}}
	require.False(t, matchesTrigger(post, opts))

	lookup := &proto.NetworkRequestWillBeSent{Request: &proto.NetworkRequest{
		URL:    "https://lcr.churchofjesuschrist.org/services/member-lookup?term=ephraim",
		Method: "GET",
	}}
	require.False(t, matchesTrigger(lookup, opts))

	opts.Trigger = TriggerLookup
	require.True(t, matchesTrigger(lookup, opts))
	require.False(t, matchesTrigger(doc, opts))
}

func TestLoginFlowOrder(t *testing.T) {
	var steps []string
	record := func(name string) func() error {
		return func() error {
			steps = append(steps, name)
			return nil
		}
	}

	stopped := false
	flow := loginFlow{
		fillForm: record("fill"),
		startCapture: func() func() {
			steps = append(steps, "capture")
			return func() { stopped = true }
		},
		submit: record("submit"),
		probe:  record("probe"),
	}

	stop, err := flow.run()
	require.NoError(t, err)
	// the capture must be armed after the form is filled and before
	// the submit fires the request being captured
	require.Equal(t, []string{"fill", "capture", "submit", "probe"}, steps)
	require.False(t, stopped)
	stop()
	require.True(t, stopped)
}

func TestLoginFlowStopsCaptureOnSubmitError(t *testing.T) {
	stopped := false
	flow := loginFlow{
		fillForm: func() error { return nil },
		startCapture: func() func() {
			return func() { stopped = true }
		},
		submit: func() error { return errors.New("click failed") },
	}

	_, err := flow.run()
	require.Error(t, err)
	require.True(t, stopped)
}

func TestValidateCapturedHeaders(t *testing.T) {
	err := validateCapturedHeaders(map[string]string{})
	require.True(t, errors.Is(err, ErrInvalidLogin))

	err = validateCapturedHeaders(map[string]string{"Cookie": "session=abc"})
	require.NoError(t, err)
}
