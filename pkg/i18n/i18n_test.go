package i18n_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/inkwellmd/inkwell/pkg/i18n"
)

func TestParseLocale(t *testing.T) {
	t.Parallel()

	for _, tag := range []string{"en", "en-US", "ja", "zh-Hant", "pt-BR"} {
		l, err := i18n.ParseLocale(tag)
		if err != nil {
			t.Fatalf("ParseLocale(%q): %v", tag, err)
		}
		if l.String() != tag {
			t.Errorf("String() = %q, want %q", l.String(), tag)
		}
	}

	if _, err := i18n.ParseLocale("not a locale"); err == nil {
		t.Error("expected error for malformed tag")
	}
	if _, err := i18n.ParseLocale(""); err == nil {
		t.Error("expected error for empty tag")
	}
}

func TestLocaleLanguage(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"en":      "en",
		"en-US":   "en",
		"zh-Hant": "zh",
		"pt-BR":   "pt",
	}
	for tag, want := range cases {
		if got := i18n.MustParseLocale(tag).Language(); got != want {
			t.Errorf("Language(%q) = %q, want %q", tag, got, want)
		}
	}
}

func TestDictionary(t *testing.T) {
	t.Parallel()

	d := i18n.NewDictionary()
	if d.Len() != 0 {
		t.Fatalf("new dictionary Len = %d", d.Len())
	}

	d.Insert("common.greeting", "Hello")
	d.Insert("common.farewell", "Goodbye")
	d.Insert("common.greeting", "Hi") // replace

	if d.Len() != 2 {
		t.Errorf("Len = %d, want 2", d.Len())
	}
	if v, ok := d.Get("common.greeting"); !ok || v != "Hi" {
		t.Errorf("Get(common.greeting) = %q, %v", v, ok)
	}
	if _, ok := d.Get("missing"); ok {
		t.Error("Get(missing) reported present")
	}

	keys := d.Keys()
	if len(keys) != 2 || keys[0] != "common.farewell" || keys[1] != "common.greeting" {
		t.Errorf("Keys = %v", keys)
	}
}

func TestSetTranslate(t *testing.T) {
	t.Parallel()

	en := i18n.NewDictionary()
	en.Insert("common.greeting", "Hello")
	en.Insert("common.farewell", "Goodbye")

	ja := i18n.NewDictionary()
	ja.Insert("common.greeting", "こんにちは")

	set := i18n.NewSet()
	set.Insert(i18n.MustParseLocale("en"), en)
	set.Insert(i18n.MustParseLocale("ja"), ja)
	set.SetDefaultLocale(i18n.MustParseLocale("en"))

	if v, ok := set.Translate("ja", "common.greeting"); !ok || v != "こんにちは" {
		t.Errorf("ja greeting = %q, %v", v, ok)
	}
	// ja has no farewell, falls through to the default locale.
	if v, ok := set.Translate("ja", "common.farewell"); !ok || v != "Goodbye" {
		t.Errorf("ja farewell = %q, %v", v, ok)
	}
	if _, ok := set.Translate("en", "common.missing"); ok {
		t.Error("missing key reported present")
	}
}

func TestSetTranslate_NearestLocale(t *testing.T) {
	t.Parallel()

	en := i18n.NewDictionary()
	en.Insert("nav.home", "Home")

	set := i18n.NewSet()
	set.Insert(i18n.MustParseLocale("en"), en)

	// en-GB is not registered but matches en closely enough.
	if v, ok := set.Translate("en-GB", "nav.home"); !ok || v != "Home" {
		t.Errorf("en-GB nav.home = %q, %v", v, ok)
	}
}

func TestSetLocales(t *testing.T) {
	t.Parallel()

	set := i18n.NewSet()
	set.Insert(i18n.MustParseLocale("ja"), i18n.NewDictionary())
	set.Insert(i18n.MustParseLocale("en"), i18n.NewDictionary())

	locales := set.Locales()
	if len(locales) != 2 || locales[0] != "en" || locales[1] != "ja" {
		t.Errorf("Locales = %v", locales)
	}
}

func TestLoadDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	write := func(rel, content string) {
		t.Helper()
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	write("en/common.json", `{"greeting": "Hello", "nav": {"home": "Home", "docs": "Docs"}}`)
	write("en/site.yaml", "title: My Site\nfooter:\n  copyright: 2026\n")
	write("ja/common.json", `{"greeting": "こんにちは"}`)
	write("_shared/common.json", `{"ignored": "yes"}`)
	write("en/notes.txt", "not a dictionary")

	set, err := i18n.LoadDir(root)
	if err != nil {
		t.Fatal(err)
	}

	locales := set.Locales()
	if len(locales) != 2 || locales[0] != "en" || locales[1] != "ja" {
		t.Fatalf("Locales = %v", locales)
	}

	en, ok := set.Dictionary("en")
	if !ok {
		t.Fatal("en dictionary missing")
	}
	if v, _ := en.Get("common.nav.home"); v != "Home" {
		t.Errorf("common.nav.home = %q", v)
	}
	if v, _ := en.Get("site.title"); v != "My Site" {
		t.Errorf("site.title = %q", v)
	}
	// Non-string scalars keep their literal form.
	if v, _ := en.Get("site.footer.copyright"); v != "2026" {
		t.Errorf("site.footer.copyright = %q", v)
	}
	if _, ok := en.Get("common.ignored"); ok {
		t.Error("underscore directory was not skipped")
	}

	if v, ok := set.Translate("ja", "common.greeting"); !ok || v != "こんにちは" {
		t.Errorf("ja greeting = %q, %v", v, ok)
	}
}

func TestLoadDir_Errors(t *testing.T) {
	t.Parallel()

	if _, err := i18n.LoadDir(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}

	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "not a locale"), 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := i18n.LoadDir(root); err == nil {
		t.Error("expected error for invalid locale directory name")
	}

	root = t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "en"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "en", "bad.json"), []byte("{oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := i18n.LoadDir(root); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
