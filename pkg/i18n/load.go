package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDir loads a dictionary set from a directory laid out as one
// subdirectory per locale:
//
//	dir/
//	  en/
//	    common.json
//	    navigation.yaml
//	  ja/
//	    common.json
//
// File stems become key namespaces; nested objects flatten with dot
// separators, so en/common.json's {"nav": {"home": "Home"}} yields
// the key common.nav.home. Underscore-prefixed directories and files
// with other extensions are skipped.
func LoadDir(dir string) (*Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read locale dir: %w", err)
	}

	set := NewSet()
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), "_") {
			continue
		}
		locale, err := ParseLocale(entry.Name())
		if err != nil {
			return nil, err
		}
		dict, err := loadLocaleDir(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("locale %s: %w", entry.Name(), err)
		}
		set.Insert(locale, dict)
	}
	return set, nil
}

func loadLocaleDir(dir string) (*Dictionary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	dict := NewDictionary()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		namespace := strings.TrimSuffix(name, filepath.Ext(name))

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}

		var tree map[string]any
		switch ext {
		case ".json":
			if err := json.Unmarshal(data, &tree); err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, &tree); err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
		default:
			continue
		}

		flatten(tree, namespace, dict)
	}
	return dict, nil
}

// flatten walks a decoded object tree, joining keys with dots under
// the given prefix.
func flatten(tree map[string]any, prefix string, dict *Dictionary) {
	for key, value := range tree {
		full := prefix + "." + key
		switch v := value.(type) {
		case string:
			dict.Insert(full, v)
		case map[string]any:
			flatten(v, full, dict)
		default:
			dict.Insert(full, stringify(v))
		}
	}
}

func stringify(v any) string {
	if data, err := json.Marshal(v); err == nil {
		return string(data)
	}
	return fmt.Sprint(v)
}
