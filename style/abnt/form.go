package abnt

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/lehigh-university-libraries/citestyle/citation"
	"github.com/lehigh-university-libraries/citestyle/locale"
	"github.com/lehigh-university-libraries/citestyle/settings"
	"github.com/lehigh-university-libraries/citestyle/style"
)

// Outcome is the result of handling a settings request.
type Outcome int

const (
	// Saved means the input was valid and persisted.
	Saved Outcome = iota
	// Display means the form should be shown, with Errors if any.
	Display
)

// locationKeyRegex matches "location[pt_BR]" style input keys.
var locationKeyRegex = regexp.MustCompile(`^location\[([^\]]+)\]$`)

// SettingsForm edits the localised location setting of one journal.
type SettingsForm struct {
	store   *settings.Store
	locales style.Locales
	journal citation.Journal

	// Location maps canonical locale to the entered city
	Location map[string]string

	errors []string
}

// NewSettingsForm creates a form bound to journal's settings.
func NewSettingsForm(store *settings.Store, locales style.Locales, journal citation.Journal) *SettingsForm {
	return &SettingsForm{
		store:    store,
		locales:  locales,
		journal:  journal,
		Location: make(map[string]string),
	}
}

func (f *SettingsForm) primaryLocale() string {
	if f.journal.PrimaryLocale != "" {
		return locale.Canonical(f.journal.PrimaryLocale)
	}
	return f.locales.PrimaryLocale()
}

// InitData loads the stored values into the form.
func (f *SettingsForm) InitData() {
	f.Location = make(map[string]string)
	values, ok := f.store.GetLocalized(f.journal.ID, PluginName, SettingLocation)
	if !ok {
		return
	}
	for loc, v := range values {
		f.Location[loc] = v
	}
}

// ReadInput takes submitted values. Keys are "location[<locale>]", or a
// bare "location" meaning the current locale.
func (f *SettingsForm) ReadInput(input map[string]string) {
	for key, v := range input {
		v = strings.TrimSpace(v)
		if key == SettingLocation {
			f.Location[f.locales.CurrentLocale()] = v
			continue
		}
		if m := locationKeyRegex.FindStringSubmatch(key); m != nil {
			f.Location[locale.Canonical(m[1])] = v
		}
	}
}

// Validate checks the form and records translated error messages.
func (f *SettingsForm) Validate() bool {
	f.errors = nil
	primary := f.primaryLocale()

	if strings.TrimSpace(f.Location[primary]) == "" {
		f.errors = append(f.errors, f.locales.Tr(f.locales.CurrentLocale(), messageKey+".location.required"))
	}

	locs := make([]string, 0, len(f.Location))
	for loc := range f.Location {
		locs = append(locs, loc)
	}
	sort.Strings(locs)
	for _, loc := range locs {
		if _, err := f.locales.FullMonthNames(loc); err != nil {
			f.errors = append(f.errors, f.locales.Tr(f.locales.CurrentLocale(), messageKey+".location.unsupportedLocale", loc))
		}
	}
	return len(f.errors) == 0
}

// Errors returns the messages from the last Validate.
func (f *SettingsForm) Errors() []string {
	return f.errors
}

// Execute persists the form.
func (f *SettingsForm) Execute() error {
	values := make(map[string]string, len(f.Location))
	for loc, v := range f.Location {
		if v != "" {
			values[loc] = v
		}
	}
	if err := f.store.Set(f.journal.ID, PluginName, SettingLocation, values); err != nil {
		return fmt.Errorf("saving location: %w", err)
	}
	slog.Info("saved ABNT settings", "journal", f.journal.ID, "locales", len(values))
	return nil
}

// Handle runs one settings request. With save set the input is read,
// validated and persisted; invalid input is redisplayed. Without save the
// form is filled from input when resubmitted for another locale, or from
// the store otherwise.
func (f *SettingsForm) Handle(save bool, input map[string]string) (Outcome, error) {
	if save {
		f.ReadInput(input)
		if !f.Validate() {
			return Display, nil
		}
		if err := f.Execute(); err != nil {
			return Display, err
		}
		return Saved, nil
	}

	if len(input) > 0 {
		f.ReadInput(input)
	} else {
		f.InitData()
	}
	return Display, nil
}
