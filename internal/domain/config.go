package domain

// TestFileName is the file every test folder must contain
const TestFileName = "test.m"

// Configuration is the parsed checker configuration
type Configuration struct {
	TestGroups []TestGroup `json:"test-groups"`
}

// TestGroup is a named collection of tests sharing a folder and an expected-output file
type TestGroup struct {
	Name         string `json:"name"`
	Folder       string `json:"folder"`
	ExpectedFile string `json:"expected-file"`
	Tests        []Test `json:"tests"`
}

// Test is a single named unit graded by a numeric weight
type Test struct {
	Name      string  `json:"name"`
	TestScore float64 `json:"test-score"`
}

// TotalTests returns the number of tests across all groups
func (c *Configuration) TotalTests() int {
	total := 0
	for _, g := range c.TestGroups {
		total += len(g.Tests)
	}
	return total
}

// TotalScore returns the sum of every test's weight
func (c *Configuration) TotalScore() float64 {
	var total float64
	for _, g := range c.TestGroups {
		total += g.TotalScore()
	}
	return total
}

// TotalScore returns the sum of the group's test weights
func (g *TestGroup) TotalScore() float64 {
	var total float64
	for _, t := range g.Tests {
		total += t.TestScore
	}
	return total
}
