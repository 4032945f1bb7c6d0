package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/ecollajta/smarttwin/internal/cli/formatter"
)

// smarttwinHuhTheme returns a huh theme using the Gruvbox palette.
func smarttwinHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// planWizard holds the text the form edits; values are parsed on apply.
type planWizard struct {
	target string
	hours  string
	staff  string
	molds  string
}

func newPlanWizard(f *planFlags) *planWizard {
	w := &planWizard{
		hours: strconv.FormatFloat(f.hours, 'f', -1, 64),
		staff: strconv.Itoa(f.staff),
		molds: strconv.Itoa(f.molds),
	}
	if f.target > 0 {
		w.target = strconv.Itoa(f.target)
	}
	return w
}

func (w *planWizard) form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("How many units?").
				Placeholder("100").
				Validate(validateRequiredPositiveInt).
				Value(&w.target),
			huh.NewInput().
				Title("Hours available").
				Validate(validateNonNegativeFloat).
				Value(&w.hours),
			huh.NewInput().
				Title("People on the line").
				Validate(validateNonNegativeInt).
				Value(&w.staff),
			huh.NewInput().
				Title("Molds available").
				Validate(validateNonNegativeInt).
				Value(&w.molds),
		),
	).WithTheme(smarttwinHuhTheme()).WithShowHelp(false)
}

// apply copies the validated answers into f. Empty optional answers keep
// the flag values.
func (w *planWizard) apply(f *planFlags) error {
	target, err := strconv.Atoi(w.target)
	if err != nil || target <= 0 {
		return fmt.Errorf("invalid target %q", w.target)
	}
	f.target = target
	if w.hours != "" {
		if f.hours, err = strconv.ParseFloat(w.hours, 64); err != nil {
			return fmt.Errorf("invalid hours %q", w.hours)
		}
	}
	if w.staff != "" {
		if f.staff, err = strconv.Atoi(w.staff); err != nil {
			return fmt.Errorf("invalid staff %q", w.staff)
		}
	}
	if w.molds != "" {
		if f.molds, err = strconv.Atoi(w.molds); err != nil {
			return fmt.Errorf("invalid molds %q", w.molds)
		}
	}
	return nil
}

func runPlanWizard(f *planFlags) error {
	w := newPlanWizard(f)
	if err := w.form().Run(); err != nil {
		return err
	}
	return w.apply(f)
}

func targetForm(result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("How many units?").
				Placeholder("100").
				Validate(validateRequiredPositiveInt).
				Value(result),
		),
	).WithTheme(smarttwinHuhTheme()).WithShowHelp(false)
}

func runTargetWizard(target *int) error {
	var s string
	if err := targetForm(&s).Run(); err != nil {
		return err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid target %q", s)
	}
	*target = v
	return nil
}

// validateRequiredPositiveInt accepts only a positive integer.
func validateRequiredPositiveInt(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateNonNegativeInt accepts empty or a non-negative integer.
func validateNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

func validateNonNegativeFloat(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !(v >= 0) {
		return fmt.Errorf("enter a non-negative number of hours")
	}
	return nil
}
