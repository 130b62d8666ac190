package samples

import "fmt"

// Calculator is the component exercised by CalculatorSuite. It records every operation it
// performs.
type Calculator struct {
	history []string
}

func (c *Calculator) Add(a, b int) int {
	c.record("%d + %d", a, b)
	return a + b
}

// Divide performs integer division. Like Go's / operator, it panics if b is zero.
func (c *Calculator) Divide(a, b int) int {
	c.record("%d / %d", a, b)
	return a / b
}

func (c *Calculator) History() []string {
	return append([]string(nil), c.history...)
}

func (c *Calculator) record(format string, args ...interface{}) {
	c.history = append(c.history, fmt.Sprintf(format, args...))
}
