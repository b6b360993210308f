package language

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type entry struct {
	code2   string // ISO 639-1 (2-letter)
	code3   string // ISO 639-2 primary (3-letter)
	alt3    string // ISO 639-2 alternate (e.g. "fre" vs "fra")
	display string
}

var languages = []entry{
	{"en", "eng", "", "English"},
	{"es", "spa", "", "Spanish"},
	{"fr", "fra", "fre", "French"},
	{"de", "deu", "ger", "German"},
	{"it", "ita", "", "Italian"},
	{"pt", "por", "", "Portuguese"},
	{"ja", "jpn", "", "Japanese"},
	{"ko", "kor", "", "Korean"},
	{"zh", "zho", "chi", "Chinese"},
	{"ru", "rus", "", "Russian"},
	{"ar", "ara", "", "Arabic"},
	{"hi", "hin", "", "Hindi"},
	{"nl", "nld", "dut", "Dutch"},
	{"pl", "pol", "", "Polish"},
	{"sv", "swe", "", "Swedish"},
	{"da", "dan", "", "Danish"},
	{"no", "nor", "", "Norwegian"},
	{"fi", "fin", "", "Finnish"},
}

var (
	byCode2 map[string]*entry
	byCode3 map[string]*entry
)

var titleCaser = cases.Title(language.Und)

func init() {
	byCode2 = make(map[string]*entry, len(languages))
	byCode3 = make(map[string]*entry, len(languages)*2)
	for i := range languages {
		e := &languages[i]
		byCode2[e.code2] = e
		byCode3[e.code3] = e
		if e.alt3 != "" {
			byCode3[e.alt3] = e
		}
	}
}

// DisplayName returns a readable name for an ISO 639 tag. Unknown tags are
// title-cased as-is; an empty tag yields "Unknown".
func DisplayName(tag string) string {
	cleaned := strings.ToLower(strings.TrimSpace(tag))
	if cleaned == "" {
		return "Unknown"
	}
	switch len(cleaned) {
	case 2:
		if e, ok := byCode2[cleaned]; ok {
			return e.display
		}
	case 3:
		if e, ok := byCode3[cleaned]; ok {
			return e.display
		}
	}
	return titleCaser.String(cleaned)
}

// DisplayList maps a ";"-joined tag list to a ", "-joined list of display
// names, preserving order. Empty segments stay empty markers.
func DisplayList(joined string) string {
	if strings.TrimSpace(joined) == "" {
		return ""
	}
	segments := strings.Split(joined, ";")
	names := make([]string, len(segments))
	for i, segment := range segments {
		if strings.TrimSpace(segment) == "" {
			names[i] = "Unknown"
			continue
		}
		names[i] = DisplayName(segment)
	}
	return strings.Join(names, ", ")
}
