package runtime

import (
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/mocks"
	"chat-relay/moderation"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	router   *Router
	registry *Registry
	filter   *moderation.PhraseFilter
	events   chan event.Event
	sinks    map[string]*recordingSink
}

func newRouterFixture(t *testing.T, names ...string) routerFixture {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := NewRegistry()
	filter := moderation.NewPhraseFilter(log, []string{"badger"})
	events := make(chan event.Event, 100)
	sinks := make(map[string]*recordingSink)
	for _, name := range names {
		sinks[name] = newRecordingSink()
		require.NoError(t, registry.Register(name, sinks[name]))
	}
	return routerFixture{
		router:   NewRouter(log, registry, filter, events),
		registry: registry,
		filter:   filter,
		events:   events,
		sinks:    sinks,
	}
}

func TestRouter_Broadcast_Excludes_Sender(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, "alice", "bob", "carol")

	// When alice broadcasts
	outcome := f.router.RouteLine("alice", "hello")

	// Then everybody but alice receives it
	req.ElementsMatch([]string{"bob", "carol"}, outcome.Delivered)
	req.Empty(f.sinks["alice"].Lines())
	req.Equal([]string{"alice: hello"}, f.sinks["bob"].Lines())
	req.Equal([]string{"alice: hello"}, f.sinks["carol"].Lines())
}

func TestRouter_Subset_Addressing(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, "alice", "bob", "carol", "sam")

	// When sam addresses alice, bob and somebody unknown
	outcome := f.router.RouteLine("sam", "@alice,bob,ghost hi")

	// Then only alice and bob receive it, the unknown name is skipped
	req.ElementsMatch([]string{"alice", "bob"}, outcome.Delivered)
	req.Equal([]string{"sam: hi"}, f.sinks["alice"].Lines())
	req.Equal([]string{"sam: hi"}, f.sinks["bob"].Lines())
	req.Empty(f.sinks["carol"].Lines())
	req.Empty(f.sinks["sam"].Lines())
}

func TestRouter_Subset_Deduplicates_Names(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, "alice", "bob")

	f.router.RouteLine("alice", "@bob,bob hi")

	req.Equal([]string{"alice: hi"}, f.sinks["bob"].Lines())
}

func TestRouter_Subset_Never_Echoes_Sender(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, "alice", "bob")

	f.router.RouteLine("alice", "@alice,bob note to self")

	req.Empty(f.sinks["alice"].Lines())
	req.Equal([]string{"alice: note to self"}, f.sinks["bob"].Lines())
}

func TestRouter_Exclusion_Addressing(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, "alice", "bob", "carol")

	// When alice sends to everybody but carol
	outcome := f.router.RouteLine("alice", "@!carol hi")

	// Then only bob receives it
	req.Equal([]string{"bob"}, outcome.Delivered)
	req.Equal([]string{"alice: hi"}, f.sinks["bob"].Lines())
	req.Empty(f.sinks["carol"].Lines())
	req.Empty(f.sinks["alice"].Lines())
}

func TestRouter_Malformed_Line_Is_Dropped(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, "alice", "bob")

	outcome := f.router.RouteLine("alice", "@bob")

	// Then nobody is told anything, not even the sender
	req.True(outcome.Malformed)
	req.Empty(f.sinks["alice"].Lines())
	req.Empty(f.sinks["bob"].Lines())
	evt := <-f.events
	req.Equal(event.MessageMalformedType, evt.Type)
}

func TestRouter_Banned_Content_Is_Contained(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, "alice", "bob", "carol")

	// When alice writes a banned phrase in mixed case
	outcome := f.router.RouteLine("alice", "look at the BaDgEr")

	// Then only alice hears about it, exactly once
	req.Equal("badger", outcome.Rejected)
	req.Empty(outcome.Delivered)
	req.Equal([]string{"Server: Message contains banned content ('badger') and was not sent"}, f.sinks["alice"].Lines())
	req.Empty(f.sinks["bob"].Lines())
	req.Empty(f.sinks["carol"].Lines())
}

func TestRouter_Banned_Content_In_Addressed_Message(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, "alice", "bob")

	outcome := f.router.RouteLine("alice", "@bob badger time")

	req.True(outcome.IsRejected())
	req.Len(f.sinks["alice"].Lines(), 1)
	req.Empty(f.sinks["bob"].Lines())
}

func TestRouter_Filter_Update_Visible_To_Next_Message(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, "alice", "bob")

	// Given the phrase is allowed
	f.router.RouteLine("alice", "spam please")

	// When it becomes banned
	f.filter.ReplaceAll([]string{"spam"})
	outcome := f.router.RouteLine("alice", "spam again")

	// Then the very next message is blocked
	req.Equal("spam", outcome.Rejected)
	req.Equal([]string{"alice: spam please"}, f.sinks["bob"].Lines())
}

func TestRouter_Notices_Are_Not_Filtered(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, "alice", "badger")

	// When the server announces a name that is itself a banned phrase
	f.router.Join("badger")

	// Then everybody, including the newcomer, gets the notices
	expected := []string{"badger has joined the chat", "Connected clients: alice, badger"}
	req.Equal(expected, f.sinks["alice"].Lines())
	req.Equal(expected, f.sinks["badger"].Lines())
}

func TestRouter_Leave_Announces_Roster(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, "alice", "bob")

	// Given bob left the registry
	f.registry.Remove("bob")

	// When his departure is announced
	f.router.Leave("bob")

	// Then alice gets the notice and the new roster, bob gets nothing
	req.Equal([]string{"bob has left the chat", "Connected clients: alice"}, f.sinks["alice"].Lines())
	req.Empty(f.sinks["bob"].Lines())
}

func TestRouter_Failing_Sink_Does_Not_Abort_Fanout(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	f := newRouterFixture(t, "alice", "carol")

	// Given bob's sink always fails
	broken := mocks.NewMockLineSink(ctrl)
	broken.EXPECT().Deliver("alice: hello").Return(errors.ErrSinkFull).Times(1)
	req.NoError(f.registry.Register("bob", broken))

	// When alice broadcasts
	outcome := f.router.RouteLine("alice", "hello")

	// Then carol still receives it
	req.Equal([]string{"carol"}, outcome.Delivered)
	req.Equal([]string{"alice: hello"}, f.sinks["carol"].Lines())
}

func TestRouter_Journal_Events(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, "alice", "bob")

	f.router.RouteLine("alice", "hello")
	f.router.RouteLine("alice", "badger")

	delivered := <-f.events
	req.Equal(event.MessageDeliveredType, delivered.Type)
	req.Equal(event.MessageDelivered{Sender: "alice", Body: "hello", Recipients: []string{"bob"}}, delivered.Payload)

	rejected := <-f.events
	req.Equal(event.MessageRejectedType, rejected.Type)
	req.Equal(event.MessageRejected{Sender: "alice", Phrase: "badger"}, rejected.Payload)
}

func TestRouter_Full_Journal_Never_Blocks(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	sink := newRecordingSink()
	req.NoError(registry.Register("bob", sink))
	filter := moderation.NewPhraseFilter(slog.Default(), nil)

	// Given a journal without room
	router := NewRouter(slog.Default(), registry, filter, make(chan event.Event))

	// When messages are routed
	for i := 0; i < 10; i++ {
		router.Route(domain.Message{Sender: "alice", Body: "hi", Recipients: domain.ToAll()})
	}

	// Then delivery still happened
	req.Len(sink.Lines(), 10)
}
