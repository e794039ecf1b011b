package types

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// WebAppInfo describes a Web App opened by a button.
type WebAppInfo struct {
	base
	url string
}

func NewWebAppInfo(url string) *WebAppInfo {
	return &WebAppInfo{
		base: newBase(nil, nil),
		url:  url,
	}
}

func WebAppInfoFromDict(data map[string]any, bot *tgbotapi.BotAPI) (*WebAppInfo, error) {
	r := newDictReader(data, bot)

	w := &WebAppInfo{
		url: r.readString("url").ValueOr(""),
	}

	if r.err != nil {
		return nil, r.err
	}

	w.base = newBase(r.apiKwargs(), bot)

	return w, nil
}

func (w *WebAppInfo) URL() string {
	return w.url
}

func (w *WebAppInfo) Kind() Kind {
	return KindWebAppInfo
}

func (w *WebAppInfo) ToDict() map[string]any {
	return map[string]any{
		"url": w.url,
	}
}

func (w *WebAppInfo) Equal(other Object) bool {
	if !sameKind(w, other) {
		return false
	}

	o, ok := other.(*WebAppInfo)

	return ok && o != nil && w.url == o.url
}

func (w *WebAppInfo) Hash() uint64 {
	h := newHasher(w.Kind())
	h.writeString(w.url)

	return h.sum()
}

func (w *WebAppInfo) MarshalJSON() ([]byte, error) {
	return marshalObject(w)
}

func (w *WebAppInfo) UnmarshalJSON(data []byte) error {
	dict, err := decodeDict(data)

	if err != nil {
		return err
	}

	parsed, err := WebAppInfoFromDict(dict, nil)

	if err != nil {
		return err
	}

	*w = *parsed

	return nil
}
