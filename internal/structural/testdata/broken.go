package budget

// This file has intentional syntax errors.

func Spend(n int {
	return n
}

type Budget struct {
	Ceiling int
