package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, Aggregate([]float64{1, -2, 3}))
	assert.Equal(t, ""+
		"            Positive    Negative     Overall\n"+
		"Sum:           4.000      -2.000       2.000\n"+
		"Count:             2           1           3\n"+
		"Average:       2.000      -2.000       0.667\n",
		buf.String())
}

func TestWriteSentenceStats(t *testing.T) {
	var buf bytes.Buffer
	WriteSentenceStats(&buf, CountSentence("Hello World 42"))
	assert.Equal(t, ""+
		"Keystrokes:          14\n"+
		"Alpha Characters:    10\n"+
		"Numeric Characters:   2\n"+
		"Vowel Characters:     3\n",
		buf.String())
}

func TestWriteChange(t *testing.T) {
	var buf bytes.Buffer
	WriteChange(&buf, 0.41, Decompose(0.41))
	assert.Equal(t, "\nThe amount you gave was $0.41, your change is 1 Quarters,\n"+
		"1 Dimes, 1 Nickels, and 1 Pennies.\n\n", buf.String())
}

func TestWritePoint(t *testing.T) {
	var buf bytes.Buffer
	WritePoint(&buf, Point{X: -3, Y: 7})
	assert.Equal(t, "{x: -3, y: 7}\n", buf.String())
}

func TestWritePalindrome(t *testing.T) {
	var buf bytes.Buffer
	WritePalindrome(&buf, true)
	WritePalindrome(&buf, false)
	assert.Contains(t, buf.String(), "The string you entered is a palindrome.")
	assert.Contains(t, buf.String(), "The string you entered is not a palindrome.")
}

func TestRenderBanner(t *testing.T) {
	banner := RenderBanner("Welcome")
	lines := strings.Split(banner, "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], strings.Repeat("-", 20))
	assert.Contains(t, lines[1], "Welcome")
	assert.Contains(t, lines[2], strings.Repeat("-", 20))
}

func TestRenderPlot(t *testing.T) {
	assert.Empty(t, RenderPlot(nil, 5))
	assert.Empty(t, RenderPlot([]float64{1}, 5))

	graph := RenderPlot([]float64{1, -2, 3, 0}, 1)
	assert.Contains(t, graph, "samples")
	// height is raised to three rows plus the caption
	assert.GreaterOrEqual(t, strings.Count(graph, "\n"), 3)
}
