package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference image filenames.
var All = map[string][]TestCase{
	"parse":  parseCases,
	"range":  rangeCases,
	"stream": streamCases,
}
