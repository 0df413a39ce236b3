package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/nbaosullivan/lagoon/internal/style"
)

// ConfirmDelete shows an interactive confirmation prompt for destructive
// operations. Returns true only if the operator explicitly confirms.
func ConfirmDelete(resourceType, resourceName string) (bool, error) {
	fmt.Println(style.Warning.Render(fmt.Sprintf(
		"You are about to delete %s %s",
		resourceType,
		style.Bold.Render(resourceName),
	)))

	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %s %q?", resourceType, resourceName)).
				Description("This action cannot be undone.").
				Affirmative("Yes, delete").
				Negative("No, cancel").
				Value(&confirmed),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
