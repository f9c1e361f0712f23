package feed

import (
	"regexp"
	"strings"
)

var (
	zidPattern    = regexp.MustCompile(`z[0-9]{7}`)
	offsetPattern = regexp.MustCompile(`[+-][0-9]{4}$`)
)

// TransformMessage prepares a raw message for display: the literal
// two-character escape `\n` becomes a line break, and every occurrence of a
// zid that resolves to a known student becomes a profile link anchored with
// their display name. Unresolvable zids stay as plain text.
func (a *Assembler) TransformMessage(message string) string {
	message = strings.ReplaceAll(message, `\n`, "<br>")

	seen := make(map[string]struct{})
	for _, zid := range zidPattern.FindAllString(message, -1) {
		if _, done := seen[zid]; done {
			continue
		}
		seen[zid] = struct{}{}

		profile, err := a.store.Profile(zid)
		if err != nil {
			// Unknown zid or unreadable profile: leave the text alone.
			continue
		}
		link := `<a href="/` + zid + `/index">` + profile.FullName + `</a>`
		message = strings.ReplaceAll(message, zid, link)
	}
	return message
}

// TransformTime rewrites a stored timestamp for display:
// 2016-05-13T04:35:53+0000 becomes "2016-05-13 04:35:53". The trailing
// offset goes, the T separator becomes a space.
func TransformTime(t string) string {
	t = offsetPattern.ReplaceAllString(t, "")
	return strings.Replace(t, "T", " ", 1)
}
