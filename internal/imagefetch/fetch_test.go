package imagefetch

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

// allowHost temporarily adds a host to the domain allow-list.
func allowHost(t *testing.T, host string) {
	t.Helper()
	saved := AllowedDomains
	AllowedDomains = append([]string{host}, saved...)
	t.Cleanup(func() { AllowedDomains = saved })
}

func serverHost(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	u := strings.TrimPrefix(srv.URL, "http://")
	if i := strings.LastIndex(u, ":"); i >= 0 {
		u = u[:i]
	}
	return u
}

func TestDownloadRejectsInvalidURL(t *testing.T) {
	f := New()
	for _, u := range []string{"", "not a url", "ftp://i.imgur.com/x.png", "javascript:alert(1)"} {
		res := f.Download(u)
		if res.Success || res.Reason != ReasonInvalidURL {
			t.Errorf("Download(%q): expected invalid URL reason, got %+v", u, res)
		}
	}
}

func TestDownloadRejectsUnlistedDomainWithoutNetworkCall(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	// Server host deliberately NOT allow-listed.
	f := New()
	res := f.Download(srv.URL + "/x.png")
	if res.Success || res.Reason != ReasonDomainNotAllowed {
		t.Fatalf("expected domain rejection, got %+v", res)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Fatal("request was issued for a non-allow-listed domain")
	}

	res = f.Download("https://evil.example.com/x.png")
	if res.Success || res.Reason != ReasonDomainNotAllowed {
		t.Fatalf("expected domain rejection, got %+v", res)
	}
}

func TestDownloadSuccess(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G'}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(payload)
	}))
	defer srv.Close()
	allowHost(t, serverHost(t, srv))

	res := New().Download(srv.URL + "/emoji.png")
	if !res.Success {
		t.Fatalf("expected success, got %+v", res)
	}
	if res.MIME != "image/png" || string(res.Data) != string(payload) {
		t.Fatalf("unexpected payload: mime=%s len=%d", res.MIME, len(res.Data))
	}
}

func TestDownloadRejectsBadMIME(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()
	allowHost(t, serverHost(t, srv))

	res := New().Download(srv.URL + "/page.png")
	if res.Success || res.Reason != ReasonDownloadError {
		t.Fatalf("expected download error for bad MIME, got %+v", res)
	}
}

func TestDownloadRejectsNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()
	allowHost(t, serverHost(t, srv))

	res := New().Download(srv.URL + "/deleted.png")
	if res.Success || res.Reason != ReasonDownloadError {
		t.Fatalf("expected download error for 404, got %+v", res)
	}
}

func TestDownloadRejectsOversizedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/gif")
		big := make([]byte, MaxBytes+100)
		w.Write(big)
	}))
	defer srv.Close()
	allowHost(t, serverHost(t, srv))

	res := New().Download(srv.URL + "/big.gif")
	if res.Success || res.Reason != ReasonDownloadError {
		t.Fatalf("expected download error for oversized body, got %+v", res)
	}
}

func TestDownloadDoesNotFollowRedirects(t *testing.T) {
	var followed int32
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&followed, 1)
	}))
	defer target.Close()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target.URL, http.StatusFound)
	}))
	defer srv.Close()
	allowHost(t, serverHost(t, srv))

	res := New().Download(srv.URL + "/redir.png")
	if res.Success {
		t.Fatal("redirect response must not succeed")
	}
	if atomic.LoadInt32(&followed) != 0 {
		t.Fatal("redirect was followed")
	}
}
