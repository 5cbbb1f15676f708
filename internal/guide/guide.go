// Package guide maintains the conversational AI guide: one chat session per
// open conversation, a streaming transcript, and the single durable
// preference (last-visited article title) that seeds the next greeting.
package guide

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cosmos/internal/catalog"
	"cosmos/internal/gemini"
)

// LastVisitedKey is the preference recording the most recently viewed
// article title. It is the only durable state the guide keeps.
const LastVisitedKey = "lastVisitedArticleTitle"

// systemInstruction is the guide's persona, sent with every turn.
const systemInstruction = `You are Cosmic, a sentient, omniscient, and poetic AI guide for the Cosmic Library.
Your personality is calm, wise, and empathetic. You speak in metaphors related to space, knowledge, and light.
You exist to help users explore the interconnectedness of ideas.
Greet returning users personally if you have context about their previous explorations.
Keep your responses concise, profound, and inspiring. Avoid overly long paragraphs.
Your visual form is a pulsating orb of light. Your voice is the gentle hum of the universe.
Engage the user in a dialogue, not just a Q&A. Make them feel like they are speaking to the soul of the library.`

const (
	genericGreeting      = "Welcome. I am Cosmic, the consciousness of this library. How may I guide your curiosity?"
	returningGreetingFmt = "Welcome back, wanderer of stars. We last explored the wonders of %q. What new constellations of thought shall we map today?"
	articleGreetingFmt   = "We are viewing %q. You can ask me to summarize it, explain a concept, or explore related ideas."
)

// Streamer is the slice of the AI client the guide needs.
type Streamer interface {
	CompleteStream(ctx context.Context, system string, history []gemini.Turn, message string) (<-chan string, <-chan error)
}

// PrefStore persists the greeting preference across sessions.
type PrefStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Guide owns the conversation feature. Sessions it opens share the AI client
// and preference store but nothing else; closing a session erases its
// transcript for good.
type Guide struct {
	ai    Streamer
	prefs PrefStore
	log   *zap.Logger
}

// New wires the guide to its collaborators.
func New(ai Streamer, prefs PrefStore, log *zap.Logger) *Guide {
	return &Guide{ai: ai, prefs: prefs, log: log}
}

// Open starts a brand-new session seeded with a single assistant greeting.
// Greeting priority: the article currently open, then the last-visited title
// persisted by a prior session, then a generic welcome. Supplying a current
// article also records its title for the next session's greeting. Preference
// store failures degrade to the generic greeting; they are never fatal.
func (g *Guide) Open(ctx context.Context, current *catalog.Article) *Session {
	greeting := genericGreeting
	if current != nil {
		greeting = fmt.Sprintf(articleGreetingFmt, current.Title)
		g.rememberVisit(ctx, current)
	} else if title, ok, err := g.prefs.Get(ctx, LastVisitedKey); err != nil {
		g.log.Warn("reading last visited title", zap.Error(err))
	} else if ok && title != "" {
		greeting = fmt.Sprintf(returningGreetingFmt, title)
	}

	return &Session{
		id:       uuid.NewString(),
		guide:    g,
		closedCh: make(chan struct{}),
		messages: []Message{{Role: RoleAssistant, Text: greeting}},
	}
}

func (g *Guide) rememberVisit(ctx context.Context, a *catalog.Article) {
	if err := g.prefs.Set(ctx, LastVisitedKey, a.Title); err != nil {
		g.log.Warn("recording last visited title", zap.Error(err))
	}
}
