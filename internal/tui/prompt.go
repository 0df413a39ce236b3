package tui

import "github.com/charmbracelet/huh"

// Choice is one selectable entry in a Select prompt.
type Choice struct {
	Label string
	Value int
}

// Prompter asks the operator questions. Commands depend on this interface
// so tests can script answers without a terminal; FormPrompter is the
// production binding.
type Prompter interface {
	// Select presents choices and returns the chosen value.
	Select(title string, choices []Choice) (int, error)
	// Input asks for free text. defaultValue prefills the field; validate,
	// when non-nil, keeps the prompt open until the answer passes.
	Input(title, defaultValue string, validate func(string) error) (string, error)
}

// FormPrompter renders prompts as huh forms.
type FormPrompter struct{}

func (FormPrompter) Select(title string, choices []Choice) (int, error) {
	var value int
	opts := make([]huh.Option[int], len(choices))
	for i, c := range choices {
		opts[i] = huh.NewOption(c.Label, c.Value)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(title).
				Options(opts...).
				Value(&value),
		),
	)
	if err := form.Run(); err != nil {
		return 0, err
	}
	return value, nil
}

func (FormPrompter) Input(title, defaultValue string, validate func(string) error) (string, error) {
	value := defaultValue

	input := huh.NewInput().
		Title(title).
		Value(&value)
	if validate != nil {
		input = input.Validate(validate)
	}

	form := huh.NewForm(huh.NewGroup(input))
	if err := form.Run(); err != nil {
		return "", err
	}
	return value, nil
}
