package framework

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCapturingLogger(t *testing.T) {
	var l CapturingLogger
	l.Println("a", "b")
	l.Printf("value=%d", 3)

	output := l.Output()
	if assert.Len(t, output, 2) {
		assert.Equal(t, "a b", output[0].Message)
		assert.Equal(t, "value=3", output[1].Message)
	}

	// Output returns a copy
	output[0].Message = "changed"
	assert.Equal(t, "a b", l.Output()[0].Message)
}

func TestCapturedOutputToString(t *testing.T) {
	t0 := time.Date(2024, 1, 2, 3, 4, 5, 6000000, time.UTC)
	output := CapturedOutput{
		{Time: t0, Message: "first"},
		{Time: t0, Message: "second"},
	}
	assert.Equal(t,
		"DEBUG [2024-01-02 03:04:05.006] first\nDEBUG [2024-01-02 03:04:05.006] second",
		output.ToString("DEBUG "))
	assert.Equal(t, "", CapturedOutput(nil).ToString("DEBUG "))
}

func TestLoggerWithPrefix(t *testing.T) {
	var buf bytes.Buffer
	base := log.New(&buf, "", 0)
	l := LoggerWithPrefix(base, "[runner] ")
	l.Printf("constructing %s", "CalculatorSuite")
	l.Println("done")
	assert.Equal(t, "[runner] constructing CalculatorSuite\n[runner]  done\n", buf.String())
}
