package ports

// Prompter asks the user for values the caller did not provide. It is a
// capability interface so orchestration code stays testable without a
// terminal.
//
//go:generate go run go.uber.org/mock/mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// Confirm asks a yes/no question. The default answer is no.
	Confirm(question string) (bool, error)

	// Input asks for a free-form value.
	Input(question string) (string, error)

	// Select asks the user to pick one of the choices and returns it.
	Select(question string, choices []string) (string, error)
}
