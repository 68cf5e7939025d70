package infrastructure

import (
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/template/html/v2"
	"github.com/gosimple/slug"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func TemplateEngine(viewsFS fs.FS) (*html.Engine, error) {
	engine := html.NewFileSystem(http.FS(viewsFS), ".html")
	sanitizer := bluemonday.StrictPolicy()
	titler := cases.Title(language.English)

	engine.AddFunc("dict", func(values ...any) map[string]any {
		if len(values)%2 != 0 {
			fmt.Println("invalid dict call")
			return nil
		}
		dict := make(map[string]any, len(values)/2)
		for i := 0; i < len(values); i += 2 {
			key, ok := values[i].(string)
			if !ok {
				fmt.Println("dict keys must be strings")
				return nil
			}
			dict[key] = values[i+1]
		}
		return dict
	})

	engine.AddFunc("uppercase", func(text string) string {
		return strings.ToUpper(text)
	})

	engine.AddFunc("notLast", notLast[string])

	engine.AddFunc("slugify", func(text string) string {
		return slug.Make(text)
	})

	engine.AddFunc("sanitize", func(text string) string {
		return sanitizer.Sanitize(text)
	})

	engine.AddFunc("categoryLabel", func(category string) string {
		return titler.String(strings.ReplaceAll(category, "_", " "))
	})

	engine.AddFunc("datetime", func(t time.Time) string {
		return t.Format("Jan 2, 2006 15:04")
	})

	engine.AddFunc("deref", func(value *uint) uint {
		if value == nil {
			return 0
		}
		return *value
	})

	// Format accepted by datetime-local form inputs.
	engine.AddFunc("datetimeLocal", func(t time.Time) string {
		return t.Format("2006-01-02T15:04")
	})

	engine.AddFunc("date", func(t time.Time) string {
		return t.Format("Jan 2, 2006")
	})

	return engine, nil
}

func notLast[V any](slice []V, index int) bool {
	return index < len(slice)-1
}
