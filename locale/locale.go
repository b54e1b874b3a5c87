// Package locale negotiates the UI language and rewrites paths when the
// visitor switches language.
package locale

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Default is used when nothing else matches.
const Default = "en"

// Supported lists the locale codes the site is translated into, default first.
var Supported = []string{"en", "ru"}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Russian})

// IsSupported reports whether code is a supported locale.
func IsSupported(code string) bool {
	for _, s := range Supported {
		if s == code {
			return true
		}
	}
	return false
}

// Match picks the best supported locale for an Accept-Language header.
func Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return Supported[idx]
}

// Split strips a leading locale segment from path. locale is "" when the
// path has none; rest always starts with "/".
func Split(path string) (locale, rest string) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	seg, tail, _ := strings.Cut(path[1:], "/")
	if IsSupported(seg) {
		return seg, "/" + tail
	}
	return "", path
}

// SwitchPath rewrites path to the same page under locale. Any existing
// locale segment is replaced; the root becomes "/{locale}".
func SwitchPath(path, locale string) string {
	_, rest := Split(path)
	if rest == "/" {
		return "/" + locale
	}
	return "/" + locale + rest
}

// Prefix returns the path prefix for links in locale: "" for the default.
func Prefix(locale string) string {
	if locale == "" || locale == Default {
		return ""
	}
	return "/" + locale
}

var ru = map[string]string{
	"About":                                 "Обо мне",
	"Selected Works":                        "Избранные работы",
	"Selected Projects":                     "Избранные проекты",
	"Testimonials":                          "Отзывы",
	"FAQs":                                  "Вопросы",
	"Contact":                               "Контакты",
	"Contact me":                            "Связаться",
	"Menu":                                  "Меню",
	"Language":                              "Язык",
	"Blog":                                  "Блог",
	"Latest from the blog":                  "Свежее в блоге",
	"View all posts":                        "Все записи",
	"Read more":                             "Читать далее",
	"Loading posts…":                        "Загрузка записей…",
	"No blog posts yet":                     "Записей пока нет",
	"No blog posts found":                   "Записи не найдены",
	"Check back soon for new articles.":     "Загляните позже, скоро появятся новые статьи.",
	"Failed to load blog posts":             "Не удалось загрузить записи",
	"Failed to load post":                   "Не удалось загрузить запись",
	"Something went wrong while loading.":   "При загрузке что-то пошло не так.",
	"Try Again":                             "Повторить",
	"No date":                               "Без даты",
	"Unknown Author":                        "Неизвестный автор",
	"Back to blog":                          "Назад в блог",
	"Back to home":                          "На главную",
	"Post not found":                        "Запись не найдена",
	"The post you are looking for does not exist.": "Запись, которую вы ищете, не существует.",
	"No content available for this post.":   "Для этой записи нет содержимого.",
	"Some nice words from my past clients":  "Несколько тёплых слов от моих клиентов",
	"Previous testimonial":                  "Предыдущий отзыв",
	"Next testimonial":                      "Следующий отзыв",
	"More Projects":                         "Другие проекты",
	"Project not found":                     "Проект не найден",
	"Visit live site":                       "Открыть сайт",
	"Client":                                "Клиент",
	"Year":                                  "Год",
	"Role":                                  "Роль",
	"Technologies":                          "Технологии",
	"Technical Expertise":                   "Технические навыки",
	"My Approach":                           "Мой подход",
	"Get In Touch":                          "Связаться со мной",
	"All rights reserved.":                  "Все права защищены.",
	"Page not found":                        "Страница не найдена",
	"Something went wrong":                  "Что-то пошло не так",
	"Frequently asked questions":            "Частые вопросы",
}

var printers = map[string]*message.Printer{}

func init() {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range ru {
		_ = b.SetString(language.Russian, key, msg)
	}
	for _, code := range Supported {
		printers[code] = message.NewPrinter(language.MustParse(code), message.Catalog(b))
	}
}

// Printer returns the message printer for locale, falling back to Default.
// Messages are keyed by their English text.
func Printer(locale string) *message.Printer {
	if p, ok := printers[locale]; ok {
		return p
	}
	return printers[Default]
}
