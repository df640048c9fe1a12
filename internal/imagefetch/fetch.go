// Package imagefetch downloads candidate emoji images with strict bounds.
// Only a fixed set of hosting domains and image MIME types is accepted,
// redirects are never followed, and response size and time are capped. This
// is the security boundary for all outbound fetches; keep it tight.
package imagefetch

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	// MaxBytes caps the downloaded body size.
	MaxBytes = 256_000
	// Timeout bounds the whole request.
	Timeout = 2500 * time.Millisecond
)

// AllowedDomains are the only hosts images may be fetched from.
var AllowedDomains = []string{"i.imgur.com", "cdn.discordapp.com", "media.discordapp.net"}

// AllowedMIMETypes are the only content types accepted for emoji uploads.
var AllowedMIMETypes = []string{"image/jpeg", "image/png", "image/gif"}

var urlPattern = regexp.MustCompile(`^https?://(www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_+.~#?&/=]*)$`)

// FailureReason tags why a download was refused or failed.
type FailureReason int

const (
	// ReasonNone marks a successful download.
	ReasonNone FailureReason = iota
	// ReasonInvalidURL marks input that is not a well-formed http(s) URL.
	ReasonInvalidURL
	// ReasonDomainNotAllowed marks a host outside the allow-list. No request
	// is made in this case.
	ReasonDomainNotAllowed
	// ReasonDownloadError marks any network, status, size, or MIME failure.
	ReasonDownloadError
)

// Result is the outcome of one Download call. Exactly one of Success or
// Reason describes it; Err is set only for ReasonDownloadError.
type Result struct {
	Success bool
	MIME    string
	Data    []byte

	Reason FailureReason
	Err    error
}

// Fetcher downloads emoji images.
type Fetcher struct {
	client *http.Client
	log    *log.Entry
}

// New returns a Fetcher with redirect-following disabled and the package timeout.
func New() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		log: log.WithField("component", "imagefetch"),
	}
}

func domainAllowed(host string) bool {
	host = strings.ToLower(host)
	for _, d := range AllowedDomains {
		if host == d {
			return true
		}
	}
	return false
}

func mimeAllowed(mime string) bool {
	for _, m := range AllowedMIMETypes {
		if mime == m {
			return true
		}
	}
	return false
}

// Download validates rawURL and fetches its contents. User-input failures
// (bad URL, bad domain) come back as tagged reasons without any network I/O;
// network and content failures come back as ReasonDownloadError with the cause.
func (f *Fetcher) Download(rawURL string) Result {
	if !urlPattern.MatchString(rawURL) {
		return Result{Reason: ReasonInvalidURL}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return Result{Reason: ReasonInvalidURL}
	}

	if !domainAllowed(parsed.Hostname()) {
		return Result{Reason: ReasonDomainNotAllowed}
	}

	resp, err := f.client.Get(parsed.String())
	if err != nil {
		f.log.WithField("url", rawURL).WithError(err).Warn("image download failed")
		return Result{Reason: ReasonDownloadError, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status: %s", resp.Status)
		f.log.WithFields(log.Fields{"url": rawURL, "status": resp.StatusCode}).Warn("image download failed")
		return Result{Reason: ReasonDownloadError, Err: err}
	}

	mime := resp.Header.Get("Content-Type")
	if !mimeAllowed(mime) {
		err := fmt.Errorf("unknown content type: %q", mime)
		f.log.WithFields(log.Fields{"url": rawURL, "mime": mime}).Warn("image download failed")
		return Result{Reason: ReasonDownloadError, Err: err}
	}

	// Read one byte past the cap so oversized bodies are detected, not truncated.
	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxBytes+1))
	if err != nil {
		f.log.WithField("url", rawURL).WithError(err).Warn("image download failed")
		return Result{Reason: ReasonDownloadError, Err: err}
	}
	if len(data) > MaxBytes {
		err := fmt.Errorf("response exceeds %d bytes", MaxBytes)
		f.log.WithField("url", rawURL).Warn("image download failed: oversized body")
		return Result{Reason: ReasonDownloadError, Err: err}
	}

	return Result{Success: true, MIME: mime, Data: data}
}
