package emotes

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"remoji/internal/emoji"
	"remoji/internal/imagefetch"
)

const (
	// maxBatch caps how many emotes one /copy multiple invocation may attempt.
	maxBatch = 30
	// batchBaseDelay is the pacing floor between batch items; it doubles per
	// accumulated failure.
	batchBaseDelay = 500 * time.Millisecond
)

// dedupByURL drops refs that resolve to a CDN URL already seen, preserving
// first-occurrence order. Two refs with different names but the same ID and
// animation flag are the same image.
func dedupByURL(refs []emoji.Ref) []emoji.Ref {
	seen := make(map[string]bool, len(refs))
	out := refs[:0:0]
	for _, r := range refs {
		url := r.URL()
		if seen[url] {
			continue
		}
		seen[url] = true
		out = append(out, r)
	}
	return out
}

// projectShortfall reports how many more standard and animated slots the
// batch needs beyond what the guild has left. Zero or negative means the
// batch fits for that kind.
func projectShortfall(refs []emoji.Ref, remainingStandard, remainingAnimated int) (standard, animated int) {
	var needStandard, needAnimated int
	for _, r := range refs {
		if r.Animated {
			needAnimated++
		} else {
			needStandard++
		}
	}
	return needStandard - remainingStandard, needAnimated - remainingAnimated
}

// voteChecker is satisfied by *votes.Client.
type voteChecker interface {
	HasVoted(ctx context.Context, userID string) (bool, error)
}

// voteLocked reports whether the user is blocked from batch copying. Check
// failures are logged and fail closed, matching the voter gate middleware.
func voteLocked(ctx context.Context, checker voteChecker, userID string) bool {
	voted, err := checker.HasVoted(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("vote check failed")
	}
	return !voted
}

type failureKind int

const (
	failNone failureKind = iota
	failDownload
	failUpload
)

// copyFailure describes why one item could not be copied.
type copyFailure struct {
	Kind  failureKind
	Fetch imagefetch.Result
	Err   error
}

// pipeline is the single-item copy path: download the image, then create the
// guild emoji. Both commands and the batch runner go through it.
type pipeline struct {
	fetch  func(url string) imagefetch.Result
	create creator
	reason string
}

func (p pipeline) copyOne(ctx context.Context, name, url string) (*discordgo.Emoji, copyFailure) {
	res := p.fetch(url)
	if !res.Success {
		return nil, copyFailure{Kind: failDownload, Fetch: res}
	}

	em, err := p.create.Create(ctx, name, dataURI(res.MIME, res.Data), p.reason)
	if err != nil {
		log.WithFields(log.Fields{"name": name, "url": url}).WithError(err).Warn("emoji upload failed")
		return nil, copyFailure{Kind: failUpload, Err: err}
	}
	return em, copyFailure{}
}

// batchFailure records one failed batch item with its user-facing reason.
type batchFailure struct {
	Ref     emoji.Ref
	Message string
}

type batchResult struct {
	Attempted int
	Created   []*discordgo.Emoji
	Failures  []batchFailure
}

// batchRunner copies refs sequentially. Items are paced by the rate limiter
// and, once failures accumulate, by an exponential delay on top of it.
type batchRunner struct {
	pipeline
	messageFor func(copyFailure) string
	pace       *rate.Limiter
	sleep      func(time.Duration)
}

func newBatchRunner(p pipeline, messageFor func(copyFailure) string) *batchRunner {
	return &batchRunner{
		pipeline:   p,
		messageFor: messageFor,
		pace:       rate.NewLimiter(rate.Every(batchBaseDelay), 1),
		sleep:      time.Sleep,
	}
}

func (r *batchRunner) run(ctx context.Context, refs []emoji.Ref) batchResult {
	var result batchResult
	failures := 0

	for i, ref := range refs {
		result.Attempted++

		em, fail := r.copyOne(ctx, ref.Name, ref.URL())
		if fail.Kind != failNone {
			failures++
			result.Failures = append(result.Failures, batchFailure{Ref: ref, Message: r.messageFor(fail)})
		} else {
			result.Created = append(result.Created, em)
		}

		if i == len(refs)-1 {
			break
		}
		if err := r.pace.Wait(ctx); err != nil {
			break
		}
		if failures > 0 {
			r.sleep(batchBaseDelay * (1 << failures))
		}
	}

	return result
}
