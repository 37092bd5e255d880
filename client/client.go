// Package client is the terminal side of the chat relay: it prints what the server
// sends and forwards what the user types, one line each way.
package client

import (
	"bufio"
	"chat-relay/contract"
	"chat-relay/domain"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"slices"
	"strings"

	"github.com/gookit/color"
)

type LineKind int

const (
	ChatLine LineKind = iota
	NoticeLine
	ServerLine
)

// Run relays lines between the user and the server until the server hangs up,
// the user input ends or ctx is cancelled. When name is set it answers the name prompt.
func Run(ctx context.Context, log *slog.Logger, conn contract.LineConn, name string, in io.Reader, out io.Writer) error {
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	received := make(chan error, 1)
	go func() { received <- receive(log, conn, name, out) }()
	go send(log, conn, in)

	err := <-received
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func receive(log *slog.Logger, conn contract.LineConn, name string, out io.Writer) error {
	for {
		line, err := conn.ReadLine()
		if err != nil {
			if stderrors.Is(err, io.EOF) || stderrors.Is(err, net.ErrClosed) || stderrors.Is(err, io.ErrClosedPipe) {
				return nil
			}
			return fmt.Errorf("connection lost: %w", err)
		}
		fmt.Fprintln(out, Render(line))

		if line == domain.WelcomeMessage && name != "" {
			if err := conn.WriteLine(name); err != nil {
				return fmt.Errorf("could not send name: %w", err)
			}
		}
		if line == domain.ShutdownNotice {
			log.Debug("Server is going away")
		}
	}
}

// send closes the connection when the user input ends, which ends receive too.
func send(log *slog.Logger, conn contract.LineConn, in io.Reader) {
	defer func() { _ = conn.Close() }()
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := conn.WriteLine(scanner.Text()); err != nil {
			log.Debug("Write failed", "error", err)
			return
		}
	}
}

// Classify tells server replies, relay notices and chat lines apart.
func Classify(line string) LineKind {
	switch {
	case strings.HasPrefix(line, "Server:"):
		return ServerLine
	case line == domain.WelcomeMessage,
		line == domain.ShutdownNotice,
		line == domain.PhrasesUpdatedNotice,
		strings.HasPrefix(line, "Connected clients:"),
		strings.HasPrefix(line, "Banned phrases:"),
		strings.HasSuffix(line, " has joined the chat"),
		strings.HasSuffix(line, " has left the chat"),
		slices.Contains(domain.Instructions, line):
		return NoticeLine
	}
	return ChatLine
}

// Render colours a line for the terminal: server replies in red, notices in yellow,
// and the sender of a chat line in cyan.
func Render(line string) string {
	switch Classify(line) {
	case ServerLine:
		return color.Red.Sprint(line)
	case NoticeLine:
		return color.Yellow.Sprint(line)
	}
	sender, body, ok := strings.Cut(line, ": ")
	if !ok {
		return line
	}
	return color.Cyan.Sprint(sender) + ": " + body
}
