package samples

import (
	"embed"

	m "github.com/launchdarkly/go-test-helpers/v2/matchers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mynotes/simple-test-runner/framework/data"
	"github.com/mynotes/simple-test-runner/framework/quicktest"
)

//go:embed data-files
var dataFilesRoot embed.FS

const calculatorDataFile = "data-files/calculator.yaml"

// CalculatorSuite is a suite instance. One is constructed per run and every test method below
// is invoked on it, so the calculator's history accumulates across tests.
type CalculatorSuite struct {
	calc *Calculator
}

func NewCalculatorSuite() (*CalculatorSuite, error) {
	return &CalculatorSuite{calc: &Calculator{}}, nil
}

// CalculatorTests returns the registered suite, with the inline data from the embedded data
// file already attached.
func CalculatorTests() (*quicktest.Suite[*CalculatorSuite], error) {
	suite := quicktest.NewSuite("CalculatorSuite", NewCalculatorSuite).
		Fact("StartsWithEmptyHistory", (*CalculatorSuite).StartsWithEmptyHistory)
	quicktest.Theory3(suite, "AddsNumbers", (*CalculatorSuite).AddsNumbers,
		quicktest.InlineData(1, 2, 3),
		quicktest.InlineData(-1, 1, 0),
	)
	quicktest.Theory3(suite, "DividesNumbers", (*CalculatorSuite).DividesNumbers)
	suite.Fact("RecordsEveryOperation", (*CalculatorSuite).RecordsEveryOperation)

	manifest, err := data.LoadInlineDataFS(dataFilesRoot, calculatorDataFile)
	if err != nil {
		return nil, err
	}
	if err := data.ApplyTo(manifest, suite); err != nil {
		return nil, err
	}
	return suite, nil
}

func (s *CalculatorSuite) StartsWithEmptyHistory(t *quicktest.T) {
	m.In(t).Assert(s.calc.History(), m.Length().Should(m.Equal(0)))
}

func (s *CalculatorSuite) AddsNumbers(t *quicktest.T, a, b, expected int) {
	assert.Equal(t, expected, s.calc.Add(a, b))
}

func (s *CalculatorSuite) DividesNumbers(t *quicktest.T, a, b, expected int) {
	t.Debug("dividing %d by %d", a, b)
	assert.Equal(t, expected, s.calc.Divide(a, b))
}

// RecordsEveryOperation relies on running after the arithmetic tests on the same instance.
func (s *CalculatorSuite) RecordsEveryOperation(t *quicktest.T) {
	history := s.calc.History()
	require.NotEmpty(t, history)
	assert.Equal(t, "1 + 2", history[0])
}
