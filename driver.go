package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

const goodbye = "Thank you and goodbye."

type LoopControl int

const (
	Continue LoopControl = iota
	Stop
)

func (l LoopControl) String() string {
	switch l {
	case Continue:
		return "continue"
	case Stop:
		return "stop"
	}
	return fmt.Sprintf("LoopControl(%d)", int(l))
}

// Clearer wipes the terminal before the banner.
type Clearer interface {
	Clear() error
}

type nopClearer struct{}

func (nopClearer) Clear() error { return nil }

// termClearer runs clear(1), but only when out is a terminal.
type termClearer struct {
	out *os.File
}

func (c termClearer) Clear() error {
	fd := c.out.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return nil
	}
	cmd := exec.Command("clear")
	cmd.Stdout = c.out
	if err := cmd.Run(); err != nil {
		return xerrors.Errorf("clear: %w", err)
	}
	return nil
}

type Session struct {
	in     *bufio.Reader
	stdout *bufio.Writer
	stderr *bufio.Writer
	sl     *zap.SugaredLogger
	clear  Clearer
	title  string
}

func NewSession(in io.Reader, stdout, stderr io.Writer, sl *zap.SugaredLogger, clearer Clearer, title string) *Session {
	if clearer == nil {
		clearer = nopClearer{}
	}
	return &Session{
		in:     bufio.NewReader(in),
		stdout: bufio.NewWriter(stdout),
		stderr: bufio.NewWriter(stderr),
		sl:     sl,
		clear:  clearer,
		title:  title,
	}
}

// Run loops over input lines until the tool asks to stop, input ends or ctx
// is cancelled. Only errors the session cannot recover from are returned.
func (s *Session) Run(ctx context.Context, tool Tool) error {
	defer s.stdout.Flush()
	defer s.stderr.Flush()

	if err := s.clear.Clear(); err != nil {
		s.sl.Errorf("Error clearing terminal: %v", err)
	}
	fmt.Fprintln(s.stdout, RenderBanner(s.title))

	s.sl.Infof("Session %s started", tool.Name())
	for l := Continue; l == Continue; {
		select {
		case <-ctx.Done():
			s.sl.Infof("Session %s cancelled: %v", tool.Name(), ctx.Err())
			return nil
		default:
		}
		var err error
		if l, err = s.step(tool); err != nil {
			return err
		}
	}

	fmt.Fprintln(s.stdout, RenderBanner(goodbye))
	s.sl.Infof("Session %s finished", tool.Name())
	return nil
}

func (s *Session) step(tool Tool) (LoopControl, error) {
	defer s.stdout.Flush()
	defer s.stderr.Flush()

	fmt.Fprintln(s.stdout, tool.Prompt())
	s.stdout.Flush()

	line, err := s.in.ReadString('\n')
	switch {
	case err == nil:
	case xerrors.Is(err, io.EOF) && line != "":
		// last line without a newline, the next read ends the session
	case xerrors.Is(err, io.EOF):
		s.sl.Debugf("End of input")
		return Stop, nil
	default:
		fmt.Fprintf(s.stderr, "Could not read from stdin:: %v\n", err)
		s.sl.Errorf("Error reading input: %v", err)
		return Stop, nil
	}
	s.sl.Debugf("Read %q", line)

	l, err := tool.Handle(line, s.stdout)
	if err != nil {
		return s.reject(err)
	}
	return l, nil
}

// reject reports a validation failure. Every Kind must have a case here;
// anything else ends the session with an error.
func (s *Session) reject(err error) (LoopControl, error) {
	var verr *ValidationError
	if !xerrors.As(err, &verr) {
		return Stop, xerrors.Errorf("handle: %w", err)
	}
	var msg string
	switch verr.Kind {
	case NoInput:
		msg = fmt.Sprintf("You have provided no input %s.", verr.Subject)
	case TooFewInputs:
		msg = fmt.Sprintf("You have not provided %d %s.", verr.Want, verr.Subject)
	case TooManyInputs:
		msg = fmt.Sprintf("You have provided more than %d %s.", verr.Want, verr.Subject)
	case ParseFailure:
		msg = fmt.Sprintf("There was an error parsing your input %q:: %v", verr.Token, verr.Err)
	case OutOfRange:
		msg = "You did not provide a number between 0 and 1: nor was it -1."
	default:
		return Stop, xerrors.Errorf("unhandled validation error: %w", err)
	}
	fmt.Fprintln(s.stderr, msg)
	s.sl.Infof("Rejected input (%s): %v", verr.Kind, verr)
	return Continue, nil
}
