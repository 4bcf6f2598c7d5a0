package main

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Adithya-Monish-Kumar-K/ftsearch/internal/indexer"
	"github.com/Adithya-Monish-Kumar-K/ftsearch/internal/indexer/index"
	fterrors "github.com/Adithya-Monish-Kumar-K/ftsearch/pkg/errors"
	"github.com/Adithya-Monish-Kumar-K/ftsearch/pkg/logger"
)

// searchEngine is implemented by indexer.Engine and indexer.Shared.
type searchEngine interface {
	Index(id string, text string, payload any) error
	Delete(id string)
	Search(query string) ([]indexer.Result, error)
	Lookup(word string) (index.Posting, bool)
	Count() int
	Clear()
}

// shell executes one command per input line against an engine. Command
// failures are printed and do not stop the stream.
type shell struct {
	engine searchEngine
	out    io.Writer
	logger *slog.Logger
}

func newShell(engine searchEngine, out io.Writer) *shell {
	return &shell{
		engine: engine,
		out:    out,
		logger: logger.WithComponent("shell"),
	}
}

// Run reads commands from in until exit, end of input or ctx is done. A
// cancelled ctx stops Run even while it waits for input; the read in flight
// is abandoned.
func (s *shell) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, readErr := readLines(ctx, in)
	for {
		if ctx.Err() != nil {
			s.logger.Debug("shell cancelled")
			return nil
		}
		var line string
		select {
		case <-ctx.Done():
			s.logger.Debug("shell cancelled")
			return nil
		case l, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("reading commands: %w", err)
				}
				return nil
			}
			line = l
		}
		if ctx.Err() != nil {
			return nil
		}

		fields, err := splitFields(line)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			continue
		}
		if len(fields) == 0 {
			continue
		}
		done, err := s.exec(ctx, fields)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		if done {
			return nil
		}
	}
}

// readLines scans in on its own goroutine. The line channel is closed after
// the scan error (nil on EOF or cancellation) has been sent on the error
// channel.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

func (s *shell) exec(ctx context.Context, fields []string) (bool, error) {
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "index":
		if len(args) < 2 || len(args) > 3 {
			return false, usage("index <id> <text> [payload]")
		}
		var payload any
		if len(args) == 3 {
			payload = args[2]
		}
		if err := s.engine.Index(args[0], args[1], payload); err != nil {
			return false, err
		}
		fmt.Fprintln(s.out, "ok")
	case "search":
		if len(args) == 0 {
			return false, usage("search <query>")
		}
		query := strings.Join(args, " ")
		log := logger.FromContext(logger.WithQuery(ctx, query))
		results, err := s.engine.Search(query)
		if err != nil {
			log.Debug("search rejected", "error", err)
			return false, err
		}
		s.printResults(results)
	case "delete":
		if len(args) != 1 {
			return false, usage("delete <id>")
		}
		s.engine.Delete(args[0])
		fmt.Fprintln(s.out, "ok")
	case "lookup":
		if len(args) != 1 {
			return false, usage("lookup <word>")
		}
		posting, ok := s.engine.Lookup(args[0])
		if !ok {
			fmt.Fprintln(s.out, "not found")
			return false, nil
		}
		fmt.Fprintf(s.out, "%s: %s\n", posting.Word, strings.Join(posting.Documents, " "))
	case "count":
		fmt.Fprintln(s.out, strconv.Itoa(s.engine.Count()))
	case "clear":
		s.engine.Clear()
		fmt.Fprintln(s.out, "ok")
	case "exit", "quit":
		return true, nil
	default:
		return false, fmt.Errorf("%w: %s", fterrors.ErrUnknownCommand, cmd)
	}
	return false, nil
}

func (s *shell) printResults(results []indexer.Result) {
	fmt.Fprintf(s.out, "%d result(s)\n", len(results))
	for _, r := range results {
		if r.Payload == nil {
			fmt.Fprintln(s.out, r.ID)
			continue
		}
		fmt.Fprintf(s.out, "%s\t%v\n", r.ID, r.Payload)
	}
}

// splitFields breaks a command line on spaces. Double quotes group a field.
func splitFields(line string) ([]string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}
	r := csv.NewReader(strings.NewReader(line))
	r.Comma = ' '
	record, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", fterrors.ErrInvalidInput, err)
	}
	fields := record[:0]
	for _, f := range record {
		if f != "" {
			fields = append(fields, f)
		}
	}
	return fields, nil
}

func usage(form string) error {
	return fmt.Errorf("%w: usage: %s", fterrors.ErrInvalidInput, form)
}
