package workers

import (
	"bytes"
	"chat-relay/domain"
	"chat-relay/mocks"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newConsole(t *testing.T, input string) (*ConsoleWorker, *mocks.MockIOperator, *bytes.Buffer, *int) {
	t.Helper()
	ctrl := gomock.NewController(t)
	operator := mocks.NewMockIOperator(ctrl)
	out := &bytes.Buffer{}
	shutdowns := new(int)
	console := NewConsoleWorker(logs.GetLoggerFromLevel(slog.LevelDebug), strings.NewReader(input), out, operator,
		func() { *shutdowns++ })
	return console, operator, out, shutdowns
}

func TestConsole_Ban_And_Unban(t *testing.T) {
	req := require.New(t)
	console, operator, out, _ := newConsole(t, "")

	operator.EXPECT().AddBannedPhrase("buy now").Return([]string{"buy now", "spam"})
	operator.EXPECT().RemoveBannedPhrase("spam").Return([]string{"buy now"})

	req.False(console.Execute("ban buy now"))
	req.Contains(out.String(), "buy now")
	req.Contains(out.String(), "2 banned phrase(s)")

	out.Reset()
	req.False(console.Execute("UNBAN spam"))
	req.Contains(out.String(), "1 banned phrase(s)")
}

func TestConsole_Set_Replaces_Everything(t *testing.T) {
	req := require.New(t)
	console, operator, out, _ := newConsole(t, "")

	operator.EXPECT().UpdateBannedPhrases([]string{"a", " b"}).Return([]string{"a", "b"})

	req.False(console.Execute("set a, b"))
	req.Contains(out.String(), "2 banned phrase(s)")
}

func TestConsole_Usage_Without_Argument(t *testing.T) {
	req := require.New(t)
	console, _, out, _ := newConsole(t, "")

	// Then the operator is never called
	req.False(console.Execute("ban"))
	req.False(console.Execute("unban   "))
	req.Contains(out.String(), "usage: ban <phrase>")
	req.Contains(out.String(), "usage: unban <phrase>")
}

func TestConsole_Clients_And_Stats(t *testing.T) {
	req := require.New(t)
	console, operator, out, _ := newConsole(t, "")

	operator.EXPECT().Clients().Return([]string{"alice", "bob"})
	operator.EXPECT().Stats().Return(domain.RelayStats{
		Connected:  2,
		Delivered:  7,
		Rejected:   1,
		PhraseHits: map[string]uint64{"spam": 1},
		PID:        42,
	})

	req.False(console.Execute("clients"))
	req.False(console.Execute("stats"))

	output := out.String()
	req.Contains(output, "alice")
	req.Contains(output, "bob")
	req.Contains(output, "2 client(s) connected")
	req.Contains(output, "delivered")
	req.Contains(output, "hits: spam")
}

func TestConsole_Unknown_Command(t *testing.T) {
	req := require.New(t)
	console, _, out, _ := newConsole(t, "")

	req.False(console.Execute("dance"))
	req.False(console.Execute("   "))
	req.Contains(out.String(), `unknown command "dance"`)
}

func TestConsole_Run_Stops_On_Shutdown(t *testing.T) {
	req := require.New(t)
	// Given commands after shutdown are never executed
	console, operator, _, shutdowns := newConsole(t, "banned\nshutdown\nclients\n")
	operator.EXPECT().BannedPhrases().Return(nil).Times(1)

	done := make(chan error, 1)
	go func() { done <- console.Run(context.Background()) }()

	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(time.Second):
		req.Fail("console did not stop")
	}
	req.Equal(1, *shutdowns)
}

func TestConsole_Run_Stops_On_EOF(t *testing.T) {
	console, _, _, shutdowns := newConsole(t, "help\n")

	require.NoError(t, console.Run(context.Background()))
	require.Zero(t, *shutdowns)
}
