// Package fonts finds a TTF/OTF font for the HUD that can draw the text it is given, preferring
// families with Japanese coverage since classification reasoning usually arrives in Japanese.
package fonts

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Exts are the font file extensions raylib can load.
var Exts = []string{".ttf", ".otf"}

// BaseDirs returns the directories searched for fonts: the bundled assets first (relative to
// the process cwd), then the usual system locations.
func BaseDirs() []string {
	return []string{
		"assets/fonts",
		"../../assets/fonts",
		"/usr/share/fonts",
		"/usr/local/share/fonts",
		"/Library/Fonts",
		"/System/Library/Fonts",
		"C:/Windows/Fonts",
	}
}

// CJKHints are normalized family names that cover Japanese, best first.
var CJKHints = []string{
	"notosanscjk",
	"notosansjp",
	"sourcehansans",
	"ipaexgothic",
	"ipagothic",
	"mplus",
	"takao",
	"yugoth",
	"meiryo",
	"hiragino",
	"droidsansfallback",
}

// ScanDir returns relative paths of all font files under dir (e.g. "noto/NotoSansJP-Regular.ttf").
// Paths use forward slashes. A missing dir yields no paths and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) || os.IsPermission(err) {
				return nil
			}
			return err
		}
		if info.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalizeForMatch lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalizeForMatch(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// Find returns the full path of the first font under dirs matching a hint, trying hints in
// order. When several files match the same hint, one whose name contains "regular" wins.
// It returns os.ErrNotExist when nothing matches.
func Find(dirs, hints []string) (string, error) {
	var all []string
	for _, base := range dirs {
		list, err := ScanDir(base)
		if err != nil {
			continue
		}
		for _, rel := range list {
			all = append(all, filepath.ToSlash(filepath.Join(base, rel)))
		}
	}
	for _, hint := range hints {
		var matches []string
		for _, full := range all {
			if strings.Contains(normalizeForMatch(filepath.Base(full)), hint) {
				matches = append(matches, full)
			}
		}
		if len(matches) == 0 {
			continue
		}
		for _, m := range matches {
			if strings.Contains(strings.ToLower(m), "regular") {
				return m, nil
			}
		}
		return matches[0], nil
	}
	return "", os.ErrNotExist
}

// Resolve returns path when it names an existing file, otherwise the best CJK font under
// BaseDirs.
func Resolve(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return Find(BaseDirs(), CJKHints)
}

// Codepoints returns the sorted set of printable ASCII plus every rune in lines, the glyphs a
// font must be rasterised with to draw them.
func Codepoints(lines ...string) []rune {
	set := make(map[rune]struct{}, 128)
	for r := rune(32); r < 127; r++ {
		set[r] = struct{}{}
	}
	for _, l := range lines {
		for _, r := range l {
			if r >= 32 {
				set[r] = struct{}{}
			}
		}
	}
	out := make([]rune, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Missing reports whether lines use a rune not in have, which must be sorted.
func Missing(have []rune, lines ...string) bool {
	for _, l := range lines {
		for _, r := range l {
			if r < 32 {
				continue
			}
			i := sort.Search(len(have), func(i int) bool { return have[i] >= r })
			if i == len(have) || have[i] != r {
				return true
			}
		}
	}
	return false
}
