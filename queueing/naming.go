package queueing

import "strings"

// nameMustBeValid panics if the name does not follow the naming convention:
// dot-separated, capitalized CamelCase tokens with no empty element.
func nameMustBeValid(name string) {
	tokens := strings.Split(name, ".")
	for _, token := range tokens {
		tokenMustBeValid(name, token)
	}
}

func tokenMustBeValid(name, token string) {
	if token == "" {
		panic("Name " + name + " is not valid: element must not be empty")
	}

	invalidChars := []string{
		"_", "\"", "'", "-",
	}

	for _, c := range invalidChars {
		if strings.Contains(token, c) {
			panic("Name " + name + " is not valid: " +
				"element must not contain " + c)
		}
	}

	if token[0] < 'A' || token[0] > 'Z' {
		panic("Name " + name + " is not valid: " +
			"element must start with a capital letter")
	}
}
