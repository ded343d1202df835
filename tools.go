package main

import (
	"io"
	"strings"
)

// Tool is one interactive utility run by a Session.
type Tool interface {
	Name() string
	Prompt() string
	// Handle processes one raw line, trailing newline included. Errors are
	// *ValidationError values.
	Handle(line string, w io.Writer) (LoopControl, error)
}

func isBlankLine(line string) bool {
	return line == "" || line == "\n" || line == "\r\n"
}

type sumsTool struct {
	plot   bool
	height int
}

func (t *sumsTool) Name() string { return "sums" }

func (t *sumsTool) Prompt() string {
	return "Enter numbers separated by spaces; an empty line exits.\n"
}

func (t *sumsTool) Handle(line string, w io.Writer) (LoopControl, error) {
	if isBlankLine(line) {
		return Stop, nil
	}
	samples, err := ParseSamples(line)
	if err != nil {
		return Continue, err
	}
	WriteSummary(w, Aggregate(samples))
	if t.plot {
		if graph := RenderPlot(samples, t.height); graph != "" {
			io.WriteString(w, graph+"\n")
		}
	}
	return Continue, nil
}

type changeTool struct{}

func (changeTool) Name() string { return "change" }

func (changeTool) Prompt() string {
	return "Enter the amount you spent to two decimal places: the input must be\n" +
		"between 0 and 1: -1 is to exit.\n"
}

func (changeTool) Handle(line string, w io.Writer) (LoopControl, error) {
	amount, err := ParseAmount(line)
	if err != nil {
		return Continue, err
	}
	if amount == Sentinel {
		return Stop, nil
	}
	WriteChange(w, amount, Decompose(amount))
	return Continue, nil
}

type pointsTool struct{}

func (pointsTool) Name() string { return "points" }

func (pointsTool) Prompt() string {
	return "Please input 2 integers, an x and y value, for a point in space.\n"
}

func (pointsTool) Handle(line string, w io.Writer) (LoopControl, error) {
	if isBlankLine(line) {
		return Stop, nil
	}
	p, err := ParsePoint(line)
	if err != nil {
		return Continue, err
	}
	WritePoint(w, p)
	return Continue, nil
}

type sentencesTool struct{}

func (sentencesTool) Name() string { return "sentences" }

func (sentencesTool) Prompt() string {
	return "\n\nPlease input a sentence. If you want to exit, just hit the enter\nkey.\n"
}

func (sentencesTool) Handle(line string, w io.Writer) (LoopControl, error) {
	if isBlankLine(line) {
		return Stop, nil
	}
	WriteSentenceStats(w, CountSentence(strings.TrimSpace(line)))
	return Continue, nil
}

type palindromeTool struct{}

func (palindromeTool) Name() string { return "palindrome" }

func (palindromeTool) Prompt() string {
	return "Please enter a string that is a palindrome; if you want to exit then\n" +
		"just hit enter. It can be a sentence or a word.\n"
}

func (palindromeTool) Handle(line string, w io.Writer) (LoopControl, error) {
	if isBlankLine(line) {
		return Stop, nil
	}
	cleaned, err := CleanPalindrome(line)
	if err != nil {
		return Continue, err
	}
	WritePalindrome(w, IsPalindrome(cleaned))
	return Continue, nil
}
