// Package coach implements the session orchestrator: the pipeline one
// user message passes through before and after the reasoning step —
// admission control, validation, profile extraction, context-window
// construction, timeout-bounded invocation, output fallback, and
// persistent-memory update.
package coach

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/liftloop/coach/internal/ai"
	"github.com/liftloop/coach/internal/config"
	"github.com/liftloop/coach/internal/history"
	"github.com/liftloop/coach/internal/profile"
	"github.com/liftloop/coach/internal/ratelimit"
	"github.com/liftloop/coach/internal/store"
	"github.com/liftloop/coach/internal/tools"
	"github.com/liftloop/coach/internal/validate"
)

// shortAnswerFloor is the minimum useful answer length; anything
// shorter is replaced by the clarification fallback.
const shortAnswerFloor = 10

// Coach composes the stores, limiter, extractor, tool registry, and
// provider into the end-to-end request lifecycle for one message.
type Coach struct {
	cfg       *config.Config
	provider  ai.Provider
	registry  *tools.Registry
	stores    *store.Stores
	limiter   *ratelimit.Limiter
	extractor *profile.Extractor
	now       func() time.Time

	mu           sync.Mutex
	sessionLocks map[string]*sync.Mutex
}

// New wires a coach from its collaborators. The stores are injected so
// tests can point them at a temp dir; nothing here owns global state.
func New(cfg *config.Config, provider ai.Provider, registry *tools.Registry, stores *store.Stores) *Coach {
	extractor := profile.NewExtractor()
	if cfg.ProfileScanTurns > 0 {
		extractor.ScanTurns = cfg.ProfileScanTurns
	}
	if cfg.MaxLimitations > 0 {
		extractor.MaxLimitations = cfg.MaxLimitations
	}
	return &Coach{
		cfg:          cfg,
		provider:     provider,
		registry:     registry,
		stores:       stores,
		limiter:      ratelimit.New(stores.Rates, cfg.RateLimit.MaxRequests, cfg.Window()),
		extractor:    extractor,
		now:          time.Now,
		sessionLocks: make(map[string]*sync.Mutex),
	}
}

// SetClock overrides the time source for the coach and its limiter.
// Test hook.
func (c *Coach) SetClock(now func() time.Time) {
	c.now = now
	c.limiter.SetClock(now)
}

// Stores exposes the underlying repositories for the serving layer
// (history rendering, stats, out-of-band resets).
func (c *Coach) Stores() *store.Stores {
	return c.stores
}

// sessionLock returns the mutex serializing requests for one session.
// Requests for different sessions run concurrently; two requests for
// the same session must not interleave their read-modify-write of the
// session's stores.
func (c *Coach) sessionLock(sessionID string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	lock, ok := c.sessionLocks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		c.sessionLocks[sessionID] = lock
	}
	return lock
}

// Chat runs one user message through the full pipeline and returns the
// response text. Every failure class resolves to a fixed friendly
// message; this method never returns an error to the caller.
func (c *Coach) Chat(ctx context.Context, sessionID, userInput string) string {
	lock := c.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	// 1. Admission. Rejection touches no store besides the rate window.
	allowed, wait := c.limiter.Check(sessionID)
	if !allowed {
		return fmt.Sprintf(msgRateLimited, int(wait.Seconds()))
	}

	// 2. Validation.
	if !validate.IsValidInput(userInput) {
		return msgClarify
	}

	// 3. Greeting short-circuit: no usage, profile, or memory update.
	if validate.IsGreeting(userInput) {
		return msgGreeting
	}

	now := c.now()

	// 4. Usage stats. Deliberately not rolled back on later failure.
	c.stores.Usage.Record(sessionID, now)

	// 5. Conversation history.
	turns := c.stores.Memory.Turns(sessionID)

	// 6. Profile extraction over the recent window; the whole profile
	// store is re-saved every call.
	prof := c.stores.Profiles.Get(sessionID)
	c.extractor.Extract(&prof, turns, now)
	prof.LastUpdated = now
	c.stores.Profiles.Put(sessionID, prof)

	// 7. Annotate the outgoing message with known limitations. The
	// stored user message stays unannotated; only the reasoning step
	// sees the note.
	enhanced := userInput
	if len(prof.Limitations) > 0 {
		note := prof.Limitations
		if len(note) > 2 {
			note = note[:2]
		}
		enhanced = fmt.Sprintf("%s [User limitations to consider: %s]", userInput, strings.Join(note, "; "))
	}

	// 8. Bounded context window from pre-annotation history.
	window := history.Prepare(turns, c.cfg.ContextMessages)

	// 9. Timeout-bounded invocation with the tool loop.
	output, err := c.invoke(ctx, enhanced, window)
	if err != nil {
		// 11-12. Timeout and generic failure paths: no history write.
		if isTimeout(err) {
			fmt.Printf("[Coach] Reasoning step timed out for session %s\n", sessionID)
			return msgTimeout
		}
		fmt.Printf("[Coach] Reasoning step failed for session %s: %v\n", sessionID, err)
		return msgApology
	}

	// 10. Short-answer fallback, then the memory write. The
	// substituted text is what gets persisted, not the short original.
	final := output
	if len(strings.TrimSpace(final)) < shortAnswerFloor {
		final = msgShortFallback
	}
	c.stores.Memory.Append(sessionID,
		history.Human(userInput),
		history.Assistant(final),
	)
	return final
}
