package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/healthbot/internal/domain"
	"github.com/alexanderramin/healthbot/internal/formatter"
	"github.com/alexanderramin/healthbot/internal/goals"
	"github.com/alexanderramin/healthbot/internal/service"
	"github.com/alexanderramin/healthbot/internal/wizard"
)

// profileForm holds the raw text of every profile field.
type profileForm struct {
	Weight   string
	Height   string
	Age      string
	Activity string
	City     string
	Target   string
}

func (f *profileForm) fill(p *domain.Profile) {
	f.Weight = strconv.FormatFloat(p.WeightKg, 'f', -1, 64)
	f.Height = strconv.FormatFloat(p.HeightCm, 'f', -1, 64)
	f.Age = strconv.Itoa(p.Age)
	f.Activity = strconv.Itoa(p.ActivityMin)
	f.City = p.City
	if p.HasCalorieTarget() {
		f.Target = strconv.Itoa(*p.CalorieTarget)
	}
}

func (f *profileForm) complete() bool {
	return f.Weight != "" && f.Height != "" && f.Age != "" && f.Activity != "" && f.City != ""
}

// toProfile parses the form with the same rules the chat wizard applies.
func (f *profileForm) toProfile(userID int64) (*domain.Profile, error) {
	weight, err := wizard.ParseWeight(f.Weight)
	if err != nil {
		return nil, fmt.Errorf("weight: %w", err)
	}
	height, err := wizard.ParseHeight(f.Height)
	if err != nil {
		return nil, fmt.Errorf("height: %w", err)
	}
	age, err := wizard.ParseAge(f.Age)
	if err != nil {
		return nil, fmt.Errorf("age: %w", err)
	}
	activity, err := wizard.ParseNonNegativeInt(f.Activity)
	if err != nil {
		return nil, fmt.Errorf("activity: %w", err)
	}
	city, err := wizard.ParseText(f.City)
	if err != nil {
		return nil, fmt.Errorf("city: %w", err)
	}
	target, err := wizard.ParseOptionalTarget(f.Target)
	if err != nil {
		return nil, fmt.Errorf("calorie target: %w", err)
	}
	return &domain.Profile{
		UserID:        userID,
		WeightKg:      weight,
		HeightCm:      height,
		Age:           age,
		ActivityMin:   activity,
		City:          city,
		CalorieTarget: target,
	}, nil
}

func validateWith[T any](parse func(string) (T, error)) func(string) error {
	return func(s string) error {
		_, err := parse(s)
		return err
	}
}

func healthHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newProfileFormView(f *profileForm) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Weight (kg)").Placeholder("70").Value(&f.Weight).
				Validate(validateWith(wizard.ParseWeight)),
			huh.NewInput().Title("Height (cm)").Placeholder("175").Value(&f.Height).
				Validate(validateWith(wizard.ParseHeight)),
			huh.NewInput().Title("Age").Placeholder("30").Value(&f.Age).
				Validate(validateWith(wizard.ParseAge)),
			huh.NewInput().Title("Activity (minutes per day)").Placeholder("45").Value(&f.Activity).
				Validate(validateWith(wizard.ParseNonNegativeInt)),
			huh.NewInput().Title("City").Placeholder("Moscow").Value(&f.City).
				Validate(validateWith(wizard.ParseText)),
			huh.NewInput().Title("Daily calorie target (kcal)").
				Description("Leave blank to calculate it").Value(&f.Target).
				Validate(validateWith(wizard.ParseOptionalTarget)),
		),
	).WithTheme(healthHuhTheme()).WithShowHelp(false)
}

func newProfileCmd(app *App) *cobra.Command {
	var userID int64
	var form profileForm

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Create or edit a profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			given := form
			if err := prefill(ctx, app, userID, &form); err != nil {
				return err
			}
			overlay(&form, given)

			if app.IsInteractive() {
				if err := newProfileFormView(&form).RunWithContext(ctx); err != nil {
					return err
				}
			} else if !form.complete() {
				return errors.New("--weight, --height, --age, --activity and --city are required without a terminal")
			}

			p, err := form.toProfile(userID)
			if err != nil {
				return err
			}
			if err := app.Profiles.Save(ctx, p); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Profile saved ✅")
			fmt.Fprintf(out, "Calorie goal: %d kcal\n", goals.CalorieGoal(p))
			return nil
		},
	}

	addUserFlag(cmd, &userID)
	cmd.Flags().StringVar(&form.Weight, "weight", "", "Weight in kg")
	cmd.Flags().StringVar(&form.Height, "height", "", "Height in cm")
	cmd.Flags().StringVar(&form.Age, "age", "", "Age in years")
	cmd.Flags().StringVar(&form.Activity, "activity", "", "Activity minutes per day")
	cmd.Flags().StringVar(&form.City, "city", "", "City for weather lookups")
	cmd.Flags().StringVar(&form.Target, "target", "", "Daily calorie target, or 'skip'")

	return cmd
}

// prefill loads the stored profile into the form. A missing profile leaves
// the form empty.
func prefill(ctx context.Context, app *App, userID int64, f *profileForm) error {
	p, err := app.Profiles.Get(ctx, userID)
	if errors.Is(err, service.ErrProfileRequired) {
		return nil
	}
	if err != nil {
		return err
	}
	f.fill(p)
	return nil
}

// overlay copies every non-empty field of given over f.
func overlay(f *profileForm, given profileForm) {
	for _, pair := range []struct {
		dst *string
		src string
	}{
		{&f.Weight, given.Weight},
		{&f.Height, given.Height},
		{&f.Age, given.Age},
		{&f.Activity, given.Activity},
		{&f.City, given.City},
		{&f.Target, given.Target},
	} {
		if pair.src != "" {
			*pair.dst = pair.src
		}
	}
}
