package e2e

import (
	"bufio"
	"chat-relay/domain"
	"chat-relay/infrastructure/storage"
	"chat-relay/infrastructure/transport"
	"chat-relay/moderation"
	"chat-relay/runtime"
	"chat-relay/runtime/workers"
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

const lineTimeout = 3 * time.Second

// BaseRelaySuite starts an in-process relay (unless configured to target a remote one)
// and provides line-level helpers to drive chat clients against it.
type BaseRelaySuite struct {
	suite.Suite
	Config       Config
	Orchestrator *runtime.Orchestrator
	db           *badger.DB
	remote       bool
}

// SetupSuite loads the environment configuration
func (s *BaseRelaySuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	s.remote = s.Config.RelayAddr != ""
}

// SetupTest boots a fresh relay for every scenario, unless a remote one is targeted
func (s *BaseRelaySuite) SetupTest() {
	if s.remote {
		return
	}

	var err error
	log := logs.GetLoggerFromLevel(slog.LevelWarn)
	s.db, err = badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	s.Require().NoError(err)

	s.Orchestrator = runtime.NewOrchestrator(log, workers.NewSupervisor(log, 50*time.Millisecond),
		runtime.NewRegistry(), moderation.NewPhraseFilter(log, nil), storage.NewPhraseRepository(s.db, log),
		runtime.Settings{OutboxSize: 256, EventBufferSize: 256, SinkTimeout: 100 * time.Millisecond})
	s.Orchestrator.RestorePhrases([]string{"spam"})

	opts := transport.Options{WriteTimeout: time.Second, MaxLineLength: 4096}
	tcp, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	ws, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)

	s.Orchestrator.AddWorkers(
		workers.NewTCPListener(log, tcp, s.Orchestrator, opts),
		workers.NewWSListener(log, ws, s.Orchestrator, opts, time.Second),
	)
	s.Orchestrator.Start(context.Background())

	s.Config.RelayAddr = tcp.Addr().String()
	s.Config.RelayWSURL = "ws://" + ws.Addr().String() + workers.WSPath
}

func (s *BaseRelaySuite) TearDownTest() {
	if s.Orchestrator == nil {
		return
	}
	defer func() { s.Orchestrator = nil }()
	ctx, cancel := context.WithTimeout(context.Background(), lineTimeout)
	defer cancel()
	s.NoError(s.Orchestrator.Shutdown(ctx))
	s.Orchestrator.Stop()
	s.NoError(s.db.Close())
}

// Step prints a header for a scenario step
func (s *BaseRelaySuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// Chatter is a test client speaking the relay's line protocol.
type Chatter struct {
	s     *BaseRelaySuite
	Name  string
	lines chan string
	write func(string) error
	close func() error
}

// DialTCP connects a TCP client and completes the handshake under name.
func (s *BaseRelaySuite) DialTCP(name string) *Chatter {
	conn, err := net.DialTimeout("tcp", s.Config.RelayAddr, lineTimeout)
	s.Require().NoError(err)

	c := &Chatter{s: s, Name: name, lines: make(chan string, 256), close: conn.Close}
	c.write = func(line string) error {
		_, err := conn.Write([]byte(line + "\n"))
		return err
	}
	go func() {
		defer close(c.lines)
		scanner := bufio.NewScanner(conn)
		for scanner.Scan() {
			c.lines <- scanner.Text()
		}
	}()
	return c.handshake()
}

// DialWS connects a websocket client and completes the handshake under name.
func (s *BaseRelaySuite) DialWS(name string) *Chatter {
	conn, _, err := websocket.DefaultDialer.Dial(s.Config.RelayWSURL, nil)
	s.Require().NoError(err)

	c := &Chatter{s: s, Name: name, lines: make(chan string, 256), close: conn.Close}
	c.write = func(line string) error {
		return conn.WriteMessage(websocket.TextMessage, []byte(line))
	}
	go func() {
		defer close(c.lines)
		for {
			_, payload, err := conn.ReadMessage()
			if err != nil {
				return
			}
			c.lines <- string(payload)
		}
	}()
	return c.handshake()
}

func (c *Chatter) handshake() *Chatter {
	c.Expect(domain.WelcomeMessage)
	c.Say(c.Name)
	c.Until(domain.Instructions[len(domain.Instructions)-1])
	c.s.T().Cleanup(func() { _ = c.close() })
	return c
}

func (c *Chatter) Say(line string) {
	c.s.Require().NoError(c.write(line), "%s could not send %q", c.Name, line)
}

func (c *Chatter) Next() string {
	select {
	case line, ok := <-c.lines:
		c.s.Require().True(ok, "%s: connection closed by the relay", c.Name)
		if c.s.Config.Verbose {
			c.s.T().Logf("%s <- %s", c.Name, line)
		}
		return line
	case <-time.After(lineTimeout):
		c.s.FailNow(fmt.Sprintf("%s: no line received in time", c.Name))
		return ""
	}
}

func (c *Chatter) Expect(want ...string) {
	for _, w := range want {
		c.s.Require().Equal(w, c.Next(), "%s received an unexpected line", c.Name)
	}
}

// Until consumes lines up to and including want.
func (c *Chatter) Until(want string) []string {
	var seen []string
	for {
		line := c.Next()
		seen = append(seen, line)
		if line == want {
			return seen
		}
	}
}

// Silent asserts nothing arrives for a short while.
func (c *Chatter) Silent() {
	select {
	case line, ok := <-c.lines:
		if ok {
			c.s.Failf("unexpected line", "%s received %q", c.Name, line)
		}
	case <-time.After(100 * time.Millisecond):
	}
}

func (c *Chatter) Leave() {
	c.s.Require().NoError(c.close())
}
