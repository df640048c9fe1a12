package emotes

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"

	"remoji/internal/emoji"
	"remoji/internal/imagefetch"
)

type fakeCreator struct {
	created []string
	failFor map[string]bool
}

func (f *fakeCreator) Create(_ context.Context, name, image, reason string) (*discordgo.Emoji, error) {
	if f.failFor[name] {
		return nil, errors.New("upload rejected")
	}
	if !strings.HasPrefix(image, "data:image/") {
		return nil, errors.New("not a data URI")
	}
	f.created = append(f.created, name)
	return &discordgo.Emoji{ID: "900000000000000" + name, Name: name}, nil
}

func okFetch(string) imagefetch.Result {
	return imagefetch.Result{Success: true, MIME: "image/png", Data: []byte("img")}
}

func failingFetch(badURLs ...string) func(string) imagefetch.Result {
	return func(url string) imagefetch.Result {
		for _, bad := range badURLs {
			if url == bad {
				return imagefetch.Result{Reason: imagefetch.ReasonDownloadError, Err: errors.New("boom")}
			}
		}
		return okFetch(url)
	}
}

func plainMessage(fail copyFailure) string {
	if fail.Kind == failUpload {
		return "upload failed"
	}
	return "download failed"
}

// testRunner builds a batch runner with no real pacing and a recorded sleep.
func testRunner(p pipeline, slept *[]time.Duration) *batchRunner {
	r := newBatchRunner(p, plainMessage)
	r.pace = rate.NewLimiter(rate.Inf, 1)
	r.sleep = func(d time.Duration) { *slept = append(*slept, d) }
	return r
}

func ref(id, name string, animated bool) emoji.Ref {
	return emoji.Ref{ID: id, Name: name, Animated: animated}
}

func TestDedupByURLKeepsFirstOccurrence(t *testing.T) {
	refs := []emoji.Ref{
		ref("11111111111111111", "a", false),
		ref("22222222222222222", "b", false),
		ref("11111111111111111", "a_again", false),
		ref("11111111111111111", "a_anim", true),
	}
	out := dedupByURL(refs)
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	if out[0].Name != "a" || out[1].Name != "b" || out[2].Name != "a_anim" {
		t.Fatalf("unexpected order: %v", out)
	}
}

func TestProjectShortfall(t *testing.T) {
	refs := []emoji.Ref{
		ref("11111111111111111", "a", false),
		ref("22222222222222222", "b", false),
		ref("33333333333333333", "c", true),
	}

	standard, animated := projectShortfall(refs, 1, 5)
	if standard != 1 {
		t.Fatalf("standard shortfall = %d, want 1", standard)
	}
	if animated != -4 {
		t.Fatalf("animated shortfall = %d, want -4", animated)
	}

	standard, animated = projectShortfall(refs, 2, 1)
	if standard != 0 || animated != 0 {
		t.Fatalf("fitting batch reported shortfall (%d, %d)", standard, animated)
	}
}

func TestBatchAllSucceed(t *testing.T) {
	creator := &fakeCreator{}
	var slept []time.Duration
	r := testRunner(pipeline{fetch: okFetch, create: creator, reason: "test"}, &slept)

	refs := []emoji.Ref{
		ref("11111111111111111", "a", false),
		ref("22222222222222222", "b", false),
		ref("33333333333333333", "c", true),
	}
	result := r.run(context.Background(), refs)

	if result.Attempted != 3 || len(result.Created) != 3 || len(result.Failures) != 0 {
		t.Fatalf("attempted=%d created=%d failures=%d", result.Attempted, len(result.Created), len(result.Failures))
	}
	if len(slept) != 0 {
		t.Fatalf("slept %v with zero failures", slept)
	}
	if len(creator.created) != 3 {
		t.Fatalf("creator saw %d items", len(creator.created))
	}
}

func TestBatchPartialFailureBacksOff(t *testing.T) {
	creator := &fakeCreator{}
	var slept []time.Duration
	fetch := failingFetch("https://cdn.discordapp.com/emojis/11111111111111111.png")
	r := testRunner(pipeline{fetch: fetch, create: creator, reason: "test"}, &slept)

	refs := []emoji.Ref{
		ref("11111111111111111", "bad", false),
		ref("22222222222222222", "ok1", false),
		ref("33333333333333333", "ok2", false),
	}
	result := r.run(context.Background(), refs)

	if result.Attempted != 3 || len(result.Created) != 2 || len(result.Failures) != 1 {
		t.Fatalf("attempted=%d created=%d failures=%d", result.Attempted, len(result.Created), len(result.Failures))
	}
	if result.Failures[0].Ref.Name != "bad" || result.Failures[0].Message != "download failed" {
		t.Fatalf("unexpected failure record: %+v", result.Failures[0])
	}

	// One failure before each of the two waits: both sleeps are 500ms * 2^1.
	want := []time.Duration{time.Second, time.Second}
	if len(slept) != len(want) {
		t.Fatalf("slept %v, want %v", slept, want)
	}
	for i := range want {
		if slept[i] != want[i] {
			t.Fatalf("sleep %d = %v, want %v", i, slept[i], want[i])
		}
	}
}

func TestBatchBackoffDoublesPerFailure(t *testing.T) {
	creator := &fakeCreator{failFor: map[string]bool{"bad1": true, "bad2": true}}
	var slept []time.Duration
	r := testRunner(pipeline{fetch: okFetch, create: creator, reason: "test"}, &slept)

	refs := []emoji.Ref{
		ref("11111111111111111", "bad1", false),
		ref("22222222222222222", "bad2", false),
		ref("33333333333333333", "ok", false),
	}
	result := r.run(context.Background(), refs)

	if len(result.Failures) != 2 || len(result.Created) != 1 {
		t.Fatalf("failures=%d created=%d", len(result.Failures), len(result.Created))
	}
	if result.Failures[0].Message != "upload failed" {
		t.Fatalf("message = %q", result.Failures[0].Message)
	}

	want := []time.Duration{time.Second, 2 * time.Second}
	if len(slept) != len(want) {
		t.Fatalf("slept %v, want %v", slept, want)
	}
	for i := range want {
		if slept[i] != want[i] {
			t.Fatalf("sleep %d = %v, want %v", i, slept[i], want[i])
		}
	}
}

func TestBatchAllFail(t *testing.T) {
	creator := &fakeCreator{failFor: map[string]bool{"a": true, "b": true}}
	var slept []time.Duration
	r := testRunner(pipeline{fetch: okFetch, create: creator, reason: "test"}, &slept)

	refs := []emoji.Ref{
		ref("11111111111111111", "a", false),
		ref("22222222222222222", "b", false),
	}
	result := r.run(context.Background(), refs)

	if result.Attempted != 2 || len(result.Created) != 0 || len(result.Failures) != 2 {
		t.Fatalf("attempted=%d created=%d failures=%d", result.Attempted, len(result.Created), len(result.Failures))
	}
}

func TestBatchStopsWhenContextCancelled(t *testing.T) {
	creator := &fakeCreator{}
	r := newBatchRunner(pipeline{fetch: okFetch, create: creator, reason: "test"}, plainMessage)
	r.sleep = func(time.Duration) {}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	refs := []emoji.Ref{
		ref("11111111111111111", "a", false),
		ref("22222222222222222", "b", false),
	}
	result := r.run(ctx, refs)

	// The first item runs, then the pace wait observes the cancelled context.
	if result.Attempted != 1 {
		t.Fatalf("attempted = %d, want 1", result.Attempted)
	}
}

type fakeVotes struct {
	voted bool
	err   error
}

func (f fakeVotes) HasVoted(context.Context, string) (bool, error) {
	return f.voted, f.err
}

func TestVoteLockedFailsClosedOnError(t *testing.T) {
	if !voteLocked(context.Background(), fakeVotes{err: errors.New("top.gg down")}, "u1") {
		t.Fatalf("vote check error did not lock the batch")
	}
	if voteLocked(context.Background(), fakeVotes{voted: true}, "u1") {
		t.Fatalf("voter is locked out")
	}
	if !voteLocked(context.Background(), fakeVotes{voted: false}, "u1") {
		t.Fatalf("non-voter is not locked out")
	}
}

func TestPipelineReportsDownloadFailure(t *testing.T) {
	creator := &fakeCreator{}
	p := pipeline{fetch: failingFetch("https://cdn.discordapp.com/emojis/11111111111111111.png"), create: creator, reason: "test"}

	_, fail := p.copyOne(context.Background(), "a", "https://cdn.discordapp.com/emojis/11111111111111111.png")
	if fail.Kind != failDownload {
		t.Fatalf("kind = %d, want failDownload", fail.Kind)
	}
	if len(creator.created) != 0 {
		t.Fatalf("creator called despite failed download")
	}
}
