package lcr

import (
	"errors"
	"os"

	"lcrassist/lib/configutil"
)

// Config holds the base url and endpoint path templates. The site has
// moved these paths more than once (services/ to api/, report/ to
// umlu/report/), so they are read from lcr.json5 when present instead
// of being hardcoded.
type Config struct {
	BaseURL string `json:"base_url"`

	// fmt templates, see DefaultConfig for the placeholder order
	MovedInPath       string `json:"moved_in_path"`
	MovedOutPath      string `json:"moved_out_path"`
	MemberListPath    string `json:"member_list_path"`
	MemberProfilePath string `json:"member_profile_path"`
	PhotosPath        string `json:"photos_path"`
	MinisteringPath   string `json:"ministering_path"`

	// header capture, passed through to the browser login
	CaptureTrigger string `json:"capture_trigger"`
	CaptureURL     string `json:"capture_url"`
	CapturePrefix  string `json:"capture_prefix"`
	ProbeQuery     string `json:"probe_query"`
}

func DefaultConfig() Config {
	return Config{
		BaseURL:           "https://lcr.churchofjesuschrist.org",
		MovedInPath:       "/api/report/members-moved-in/unit/%s/%d?lang=eng",
		MovedOutPath:      "/api/umlu/report/members-moved-out/unit/%s/%d?lang=eng",
		MemberListPath:    "/api/umlu/report/member-list?lang=eng&unitNumber=%s",
		MemberProfilePath: "/api/records/member-profile/service/%d?lang=eng",
		PhotosPath:        "/api/photos/manage-photos/approved-image-individuals/%s?lang=eng",
		MinisteringPath:   "/api/umlu/v1/ministering/data-full?lang=eng&unitNumber=%s",
		CaptureTrigger:    "document",
	}
}

// LoadConfig reads lcr.json5 (plus lcr.local.json5 overrides) from the
// working directory and fills any unset field from the defaults.
func LoadConfig() (Config, error) {
	cfg, err := configutil.ReadConfig[Config]("lcr.json5")
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, err
	}
	return cfg.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	if c.MovedInPath == "" {
		c.MovedInPath = def.MovedInPath
	}
	if c.MovedOutPath == "" {
		c.MovedOutPath = def.MovedOutPath
	}
	if c.MemberListPath == "" {
		c.MemberListPath = def.MemberListPath
	}
	if c.MemberProfilePath == "" {
		c.MemberProfilePath = def.MemberProfilePath
	}
	if c.PhotosPath == "" {
		c.PhotosPath = def.PhotosPath
	}
	if c.MinisteringPath == "" {
		c.MinisteringPath = def.MinisteringPath
	}
	if c.CaptureTrigger == "" {
		c.CaptureTrigger = def.CaptureTrigger
	}
	return c
}
