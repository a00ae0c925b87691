package chips

import (
	"strings"

	"github.com/ruminaider/chip-select/internal/directory"
)

// Filter returns the directory entries that match query and are not in
// excluded, in directory order. A blank query matches every entry; otherwise
// an entry matches when its name contains query, ignoring case.
func Filter(dir directory.Directory, query string, excluded Selection) []directory.Entry {
	blank := strings.TrimSpace(query) == ""
	needle := strings.ToLower(query)
	skip := excluded.excluded()

	var out []directory.Entry
	for _, e := range dir.Entries() {
		if _, ok := skip[e.Name]; ok {
			continue
		}
		if blank || strings.Contains(strings.ToLower(e.Name), needle) {
			out = append(out, e)
		}
	}
	return out
}
