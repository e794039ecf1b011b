package locale

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nejkit/telegram-bot-keyboard/domain"
	"github.com/sirupsen/logrus"
)

// LocalizationProvider resolves button labels and message texts by key and
// culture, falling back to the default culture and then to the key itself.
type LocalizationProvider struct {
	locales *LocalizationFileInfo
}

func NewLocalizationProvider(filePath string) (*LocalizationProvider, error) {
	cfgFile, err := os.Open(filePath)

	if err != nil {
		return nil, err
	}

	defer func(cfgFile *os.File) {
		err := cfgFile.Close()
		if err != nil {
			logrus.WithError(err).Error("failed to close file")
		}
	}(cfgFile)

	return NewLocalizationProviderFromReader(cfgFile)
}

func NewLocalizationProviderFromReader(reader io.Reader) (*LocalizationProvider, error) {
	data, err := io.ReadAll(reader)

	if err != nil {
		return nil, err
	}

	var locales LocalizationFileInfo

	if err = json.Unmarshal(data, &locales); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrorLocalizationFileInvalid, err)
	}

	if err = locales.validate(); err != nil {
		return nil, err
	}

	logrus.WithField("localeKeysAmount", len(locales.LocalizedContent)).Infoln("loaded localization file")

	return &LocalizationProvider{
		locales: &locales,
	}, nil
}

func (l *LocalizationProvider) GetDefaultLocalization(key string, args ...any) string {
	return l.GetWithCulture(l.locales.DefaultCulture, key, args...)
}

func (l *LocalizationProvider) GetWithCulture(culture, key string, args ...any) string {
	log := logrus.WithFields(logrus.Fields{
		"key":     key,
		"culture": culture,
	})

	contentLocalizations, ok := l.locales.LocalizedContent[key]

	if !ok {
		log.Debug("not found content localization by provided key")
		return key
	}

	content, ok := contentLocalizations[culture]

	if !ok {
		log.Debug("not found content localization by provided language")
		content, ok = contentLocalizations[l.locales.DefaultCulture]

		if !ok {
			log.Debug("not found content localization by default language")
			return key
		}
	}

	if len(args) > 0 {
		return fmt.Sprintf(content, args...)
	}

	return content
}
