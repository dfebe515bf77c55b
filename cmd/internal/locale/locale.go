package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

const (
	DefaultLanguage = "zh"
	displayKey      = "_language_display"
)

//go:embed languages/*.yml
var languageFiles embed.FS

// Translator looks up message strings in the embedded language catalogues.
type Translator struct {
	language    string
	langStrings map[string]map[string]string
}

// New loads the catalogues and picks the language matching the system
// locale. An empty or unknown override is ignored.
func New(override string) (*Translator, error) {
	langStrings, err := loadLanguages(languageFiles, "languages")
	if err != nil {
		return nil, err
	}
	t := &Translator{langStrings: langStrings}
	if err := t.SetLanguage(override); err != nil {
		t.language = t.match(systemLocale())
	}
	return t, nil
}

func loadLanguages(fsys fs.FS, dir string) (map[string]map[string]string, error) {
	names, err := fs.Glob(fsys, path.Join(dir, "*.yml"))
	if err != nil {
		return nil, err
	}
	languages := make(map[string]map[string]string)
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		strs := make(map[string]string)
		if err := yaml.Unmarshal(data, &strs); err != nil {
			return nil, fmt.Errorf("parsing language file %s: %w", name, err)
		}
		languages[strings.TrimSuffix(path.Base(name), ".yml")] = strs
	}
	if _, ok := languages[DefaultLanguage]; !ok {
		return nil, fmt.Errorf("no strings for default language %q", DefaultLanguage)
	}
	return languages, nil
}

func systemLocale() string {
	locale, err := jibber_jabber.DetectIETF()
	if err != nil {
		return DefaultLanguage
	}
	return locale
}

// match picks the closest available language for an IETF tag like "en-US".
func (t *Translator) match(locale string) string {
	available := t.Languages()
	tags := make([]language.Tag, 0, len(available))
	for _, lang := range available {
		tags = append(tags, language.Raw.Make(lang))
	}
	_, index, confidence := language.NewMatcher(tags).Match(language.Make(locale))
	if confidence == language.No {
		return DefaultLanguage
	}
	return available[index]
}

// Get returns the message for key in the current language, formatted with
// args. Keys missing from the current language fall back to the default
// language, then to the key itself.
func (t *Translator) Get(key string, args ...any) string {
	str := t.raw(key)
	if len(args) == 0 {
		return str
	}
	return fmt.Sprintf(str, args...)
}

func (t *Translator) raw(key string) string {
	if value, ok := t.langStrings[t.language][key]; ok {
		return value
	}
	if value, ok := t.langStrings[DefaultLanguage][key]; ok {
		return value
	}
	return key
}

func (t *Translator) Language() string { return t.language }

// Display is the language's own name, e.g. "English".
func (t *Translator) Display(lang string) string {
	if name, ok := t.langStrings[lang][displayKey]; ok {
		return name
	}
	return lang
}

// Languages lists the available language codes, default first, the rest
// sorted.
func (t *Translator) Languages() []string {
	var languages []string
	for lang := range t.langStrings {
		if lang != DefaultLanguage {
			languages = append(languages, lang)
		}
	}
	sort.Strings(languages)
	return append([]string{DefaultLanguage}, languages...)
}

func (t *Translator) SetLanguage(lang string) error {
	if _, ok := t.langStrings[lang]; !ok {
		return fmt.Errorf("no language %q", lang)
	}
	t.language = lang
	return nil
}
