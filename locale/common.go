package locale

import (
	"fmt"

	"github.com/nejkit/telegram-bot-keyboard/domain"
)

// LocalizationFileInfo is the on-disk layout: label key -> culture -> text.
type LocalizationFileInfo struct {
	DefaultCulture   string                       `json:"defaultCulture"`
	LocalizedContent map[string]map[string]string `json:"localizedContent"`
}

func (l *LocalizationFileInfo) validate() error {
	if l.DefaultCulture == "" {
		return fmt.Errorf("%w: default culture is empty", domain.ErrorLocalizationFileInvalid)
	}

	for key, cultures := range l.LocalizedContent {
		if len(cultures) == 0 {
			return fmt.Errorf("%w: key %q has no cultures", domain.ErrorLocalizationFileInvalid, key)
		}
	}

	return nil
}
