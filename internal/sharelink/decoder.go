// Package sharelink decodes NUSMods share links into structured class
// selections. A share link looks like:
//
//	https://nusmods.com/timetable/sem-2/share?CS2040C=LAB:(0);LEC:(5,6)&CDE2501=TUT:(26)
//
// Each query key is a module code (older links suffix it with "[TYPE]"), and
// each value packs one segment per lesson type. Segment values are positional
// indices in current links and literal class numbers in legacy ones; the
// decoder does not distinguish them, that is the resolver's job.
package sharelink

import (
	"errors"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/alexanderramin/nextup/internal/domain"
)

// ErrInvalidLinkFormat indicates the share link is not a parseable URL with
// a query component. This is the only hard decode failure; unrecognized keys
// and segments are skipped because links carry unrelated metadata parameters.
var ErrInvalidLinkFormat = errors.New("invalid share link format")

var segmentRe = regexp.MustCompile(`^([A-Z]+):\(([^)]+)\)$`)

type queryPair struct {
	key   string
	value string
}

// Decode parses a share link into the ordered list of class selections.
func Decode(link string) ([]domain.Selection, error) {
	pairs, err := parseQuery(link)
	if err != nil {
		return nil, err
	}

	var selections []domain.Selection
	for _, p := range pairs {
		moduleCode := moduleCodeFromKey(p.key)
		if moduleCode == "" || p.value == "" {
			continue
		}
		selections = append(selections, decodeValue(moduleCode, p.value)...)
	}
	return selections, nil
}

// ModuleCodes extracts the distinct module codes from a share link's query
// keys, sorted ascending. No segment values are parsed.
func ModuleCodes(link string) ([]string, error) {
	pairs, err := parseQuery(link)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var codes []string
	for _, p := range pairs {
		code := moduleCodeFromKey(p.key)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}

// parseQuery splits the raw query into ordered key/value pairs. Pairs are
// parsed by hand because url.ParseQuery rejects the semicolons NUSMods embeds
// in selection values.
func parseQuery(link string) ([]queryPair, error) {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil || u.RawQuery == "" {
		return nil, ErrInvalidLinkFormat
	}

	var pairs []queryPair
	for _, pair := range strings.Split(u.RawQuery, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil || key == "" {
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			continue
		}
		pairs = append(pairs, queryPair{key: strings.TrimSpace(key), value: strings.TrimSpace(value)})
	}
	if len(pairs) == 0 {
		return nil, ErrInvalidLinkFormat
	}
	return pairs, nil
}

// moduleCodeFromKey strips the legacy "[TYPE]" suffix from a query key.
func moduleCodeFromKey(key string) string {
	code, _, _ := strings.Cut(key, "[")
	return strings.TrimSpace(code)
}

// decodeValue splits "LAB:(0);LEC:(5,6)" into one Selection per listed value.
func decodeValue(moduleCode, raw string) []domain.Selection {
	var out []domain.Selection
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		m := segmentRe.FindStringSubmatch(part)
		if m == nil {
			continue
		}
		lessonType := m[1]
		for _, v := range strings.Split(m[2], ",") {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			out = append(out, domain.Selection{
				ModuleCode:      moduleCode,
				LessonTypeShort: lessonType,
				EncodedValue:    v,
			})
		}
	}
	return out
}
