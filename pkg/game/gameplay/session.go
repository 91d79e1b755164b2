package gameplay

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	engineinput "oxygenmaze/pkg/engine/input"
	"oxygenmaze/pkg/engine/world"
	"oxygenmaze/pkg/game/i18n"
	"oxygenmaze/pkg/game/scene"
	"oxygenmaze/pkg/game/state"
)

// Notifier shows a message the user has to acknowledge. Notify is called
// synchronously from key handling.
type Notifier interface {
	Notify(msg string)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(msg string)

// Notify implements Notifier
func (f NotifierFunc) Notify(msg string) {
	f(msg)
}

// Options configures a session
type Options struct {
	Collider world.Collider
	Notifier Notifier
	Logger   *logrus.Entry
}

// Session is one run of the maze from scene construction until it is closed.
type Session struct {
	Game *state.Game

	bindings *engineinput.Bindings
	collider world.Collider
	notifier Notifier
	log      *logrus.Entry

	unsubscribe func()
	quit        bool
}

// NewSession wires a built scene to its bindings and collision model.
func NewSession(s *scene.Scene, opts Options) (*Session, error) {
	bindings, err := engineinput.NewBindings(s.Bindings()...)
	if err != nil {
		return nil, fmt.Errorf("player controls: %w", err)
	}

	if opts.Collider == nil {
		opts.Collider = world.NewPointRadius()
	}
	if opts.Notifier == nil {
		opts.Notifier = NotifierFunc(func(string) {})
	}
	if opts.Logger == nil {
		opts.Logger = logrus.NewEntry(logrus.StandardLogger())
	}

	g := state.NewGame(s)
	sess := &Session{
		Game:     g,
		bindings: bindings,
		collider: opts.Collider,
		notifier: opts.Notifier,
		log:      opts.Logger.WithField("session", g.ID.String()),
	}

	g.AddMessage(i18n.Get("OBJECTIVE"))
	return sess, nil
}

// Logger returns the session-scoped logger
func (s *Session) Logger() *logrus.Entry {
	return s.log
}

// Bindings returns the session's key bindings
func (s *Session) Bindings() *engineinput.Bindings {
	return s.bindings
}

// SetNotifier replaces the notifier, for renderers created after the session
func (s *Session) SetNotifier(n Notifier) {
	s.notifier = n
}

// Start subscribes the session to key events. A session listens to at most
// one dispatcher at a time.
func (s *Session) Start(d *engineinput.Dispatcher) {
	s.Close()
	s.unsubscribe = d.Subscribe(s.HandleInput)
	s.log.WithField("players", len(s.Game.Scene.Players)).Info("session started")

	for i := 0; i < s.bindings.Players(); i++ {
		fields := logrus.Fields{"player": i + 1}
		for act, codes := range s.bindings.GetBindingsByAction(i) {
			name := strings.ReplaceAll(strings.ToLower(engineinput.ActionName(act)), " ", "_")
			fields[name] = strings.Join(codes, " ")
		}
		s.log.WithFields(fields).Debug("controls")
	}
}

// Close releases the key subscription. It is safe to call more than once.
func (s *Session) Close() {
	if s.unsubscribe == nil {
		return
	}
	s.unsubscribe()
	s.unsubscribe = nil
	s.log.WithField("key_events", s.Game.KeyEvents).Info("session closed")
}

// QuitRequested reports whether a quit key was pressed
func (s *Session) QuitRequested() bool {
	return s.quit
}
