package workers

import (
	"bufio"
	"chat-relay/contract"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

const consoleHelp = `Commands:
  ban <phrase>        add a banned phrase
  unban <phrase>      remove a banned phrase
  set <a,b,...>       replace the whole banned phrase set
  banned              list banned phrases
  clients             list connected clients
  stats               relay counters and process usage
  shutdown            disconnect everybody and stop the relay
  help                this text`

// ConsoleWorker reads operator commands, one per line, and applies them to the running relay.
type ConsoleWorker struct {
	log      *slog.Logger
	in       io.Reader
	out      io.Writer
	operator contract.IOperator
	shutdown func()
}

func NewConsoleWorker(log *slog.Logger, in io.Reader, out io.Writer, operator contract.IOperator, shutdown func()) *ConsoleWorker {
	return &ConsoleWorker{log: log, in: in, out: out, operator: operator, shutdown: shutdown}
}

// Run returns nil when the input is exhausted, ctx is cancelled or a shutdown is requested.
func (w *ConsoleWorker) Run(ctx context.Context) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(w.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				w.log.Debug("Console input closed")
				return nil
			}
			if stop := w.Execute(line); stop {
				return nil
			}
		}
	}
}

// Execute runs one command line and reports whether the console should stop.
func (w *ConsoleWorker) Execute(line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "":
	case "ban":
		if arg == "" {
			w.printf("usage: ban <phrase>\n")
			return false
		}
		w.printPhrases(w.operator.AddBannedPhrase(arg))
	case "unban":
		if arg == "" {
			w.printf("usage: unban <phrase>\n")
			return false
		}
		w.printPhrases(w.operator.RemoveBannedPhrase(arg))
	case "set":
		w.printPhrases(w.operator.UpdateBannedPhrases(strings.Split(arg, ",")))
	case "banned":
		w.printPhrases(w.operator.BannedPhrases())
	case "clients":
		w.printClients(w.operator.Clients())
	case "stats":
		w.printStats()
	case "shutdown":
		w.log.Info("Shutdown requested from console")
		w.shutdown()
		return true
	case "help":
		w.printf("%s\n", consoleHelp)
	default:
		w.printf("unknown command %q, type help\n", cmd)
	}
	return false
}

func (w *ConsoleWorker) printPhrases(phrases []string) {
	table := w.newTable("Banned phrase")
	for _, p := range phrases {
		table.Append([]string{p})
	}
	table.Render()
	w.printf("%d banned phrase(s)\n", len(phrases))
}

func (w *ConsoleWorker) printClients(names []string) {
	table := w.newTable("#", "Client")
	for i, name := range names {
		table.Append([]string{strconv.Itoa(i + 1), name})
	}
	table.Render()
	w.printf("%d client(s) connected\n", len(names))
}

func (w *ConsoleWorker) printStats() {
	stats := w.operator.Stats()
	table := w.newTable("Metric", "Value")
	table.AppendBulk([][]string{
		{"connected", strconv.Itoa(stats.Connected)},
		{"joins", strconv.FormatUint(stats.Joins, 10)},
		{"leaves", strconv.FormatUint(stats.Leaves, 10)},
		{"delivered", strconv.FormatUint(stats.Delivered, 10)},
		{"rejected", strconv.FormatUint(stats.Rejected, 10)},
		{"malformed", strconv.FormatUint(stats.Malformed, 10)},
		{"pid", strconv.Itoa(int(stats.PID))},
		{"rss (MiB)", fmt.Sprintf("%.1f", float64(stats.RAM)/(1024*1024))},
		{"cpu (%)", fmt.Sprintf("%.1f", stats.CPU)},
	})
	phrases := lo.Keys(stats.PhraseHits)
	sort.Strings(phrases)
	for _, p := range phrases {
		table.Append([]string{"hits: " + p, strconv.FormatUint(stats.PhraseHits[p], 10)})
	}
	table.Render()
}

func (w *ConsoleWorker) newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	return table
}

func (w *ConsoleWorker) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(w.out, format, args...); err != nil {
		w.log.Debug("Console write failed", "error", err)
	}
}
