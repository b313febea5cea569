// Package messages holds the localized strings shown in download toasts and
// unread message notifications.
package messages

import (
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Kind selects which download status text to render.
type Kind string

const (
	Start   Kind = "download_start"
	Success Kind = "download_success"
	Failure Kind = "download_failure"

	// NewMessage titles the notification raised when the unread count grows.
	NewMessage Kind = "new_message"
)

// catalog maps language -> message id -> text.
var catalog = map[language.Tag][]*i18n.Message{
	language.English: {
		{ID: string(Start), Other: "Start downloading~"},
		{ID: string(Success), Other: "Download successful, saved to download directory~"},
		{ID: string(Failure), Other: "Download failed, please check your network connection~"},
		{ID: string(NewMessage), Other: "New message"},
	},
	language.Chinese: {
		{ID: string(Start), Other: "开始下载中~"},
		{ID: string(Success), Other: "下载成功，已经保存到下载目录~"},
		{ID: string(Failure), Other: "下载失败，请检查你的网络连接~"},
		{ID: string(NewMessage), Other: "新消息"},
	},
	language.Polish: {
		{ID: string(Start), Other: "Rozpoczynam pobieranie~"},
		{ID: string(Success), Other: "Pobrano, plik zapisano w folderze pobranych~"},
		{ID: string(Failure), Other: "Pobieranie nie powiodło się, sprawdź połączenie z siecią~"},
		{ID: string(NewMessage), Other: "Nowa wiadomość"},
	},
}

// Catalog renders toast texts. The zero value is not usable; use New.
type Catalog struct {
	bundle  *i18n.Bundle
	matcher language.Matcher
	tags    []language.Tag

	// systemLanguage is consulted when the page does not send a language.
	systemLanguage func() string

	mu         sync.Mutex
	localizers map[language.Tag]*i18n.Localizer
}

// New builds the catalog with English as the fallback language.
func New() *Catalog {
	bundle := i18n.NewBundle(language.English)
	// English first so the matcher falls back to it
	tags := []language.Tag{language.English, language.Chinese, language.Polish}
	for _, tag := range tags {
		_ = bundle.AddMessages(tag, catalog[tag]...)
	}

	return &Catalog{
		bundle:         bundle,
		matcher:        language.NewMatcher(tags),
		tags:           tags,
		systemLanguage: systemLocale,
		localizers:     make(map[language.Tag]*i18n.Localizer),
	}
}

// WithSystemLanguage overrides system locale detection.
func (c *Catalog) WithSystemLanguage(fn func() string) *Catalog {
	c.systemLanguage = fn
	return c
}

// Resolve picks the supported language for a BCP 47 tag such as "zh-CN" or
// "pl". An empty tag falls back to the system locale, then English.
func (c *Catalog) Resolve(lang string) language.Tag {
	lang = strings.TrimSpace(lang)
	if lang == "" && c.systemLanguage != nil {
		lang = c.systemLanguage()
	}
	if lang == "" {
		return language.English
	}

	// go-locale reports POSIX style ids like "pl_PL"
	lang = strings.ReplaceAll(lang, "_", "-")
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return language.English
	}

	_, index, confidence := c.matcher.Match(tag)
	if confidence == language.No {
		return language.English
	}
	return c.tags[index]
}

// DownloadMessage returns the toast text for kind in the requested language.
func (c *Catalog) DownloadMessage(kind Kind, lang string) string {
	return c.Text(kind, lang)
}

// Text renders any catalog entry. Unknown kinds render as their id.
func (c *Catalog) Text(kind Kind, lang string) string {
	tag := c.Resolve(lang)

	msg, err := c.localizer(tag).Localize(&i18n.LocalizeConfig{MessageID: string(kind)})
	if err != nil {
		return string(kind)
	}
	return msg
}

func (c *Catalog) localizer(tag language.Tag) *i18n.Localizer {
	c.mu.Lock()
	defer c.mu.Unlock()

	l, ok := c.localizers[tag]
	if !ok {
		l = i18n.NewLocalizer(c.bundle, tag.String())
		c.localizers[tag] = l
	}
	return l
}

func systemLocale() string {
	loc, err := locale.GetLocale()
	if err != nil {
		return ""
	}
	return loc
}
