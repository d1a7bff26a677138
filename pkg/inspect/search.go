package inspect

import (
	"slices"
	"strings"

	"github.com/regview/regview-go/pkg/bits"
	"github.com/regview/regview-go/pkg/design"
)

// Match is one search hit. Field is set for hits on a register field.
type Match struct {
	ID    string
	Field string
	Score int
}

// String returns the hit as "id" or "id:field".
func (m Match) String() string {
	if m.Field != "" {
		return m.ID + ":" + m.Field
	}
	return m.ID
}

const (
	scoreName    = 100
	scoreID      = 50
	scoreAddress = 40
	scoreDoc     = 10
	// Elements rank above fields with an equal match.
	scoreElement = 25
)

// Search finds elements and fields whose name, id, address or doc contain
// query (case-insensitive). Exact name matches score highest. At most limit
// hits are returned; a limit of 0 means no limit.
func Search(d *design.Design, query string, limit int) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var hits []Match
	for _, e := range d.Elements() {
		score := scoreText(q, e.Name, e.ID, e.Doc)
		if e.Addr != nil {
			addr := strings.ToLower(FormatAddress(e.Addr))
			if addr == q || strings.EqualFold(bits.Hex(*e.Addr), q) {
				score += scoreAddress
			}
		}
		if score > 0 {
			hits = append(hits, Match{ID: e.ID, Score: score + scoreElement})
		}

		for _, f := range e.Fields {
			if fs := scoreText(q, f.Name, e.ID+":"+f.Name, f.Doc); fs > 0 {
				hits = append(hits, Match{ID: e.ID, Field: f.Name, Score: fs})
			}
		}
	}

	slices.SortStableFunc(hits, func(a, b Match) int {
		return b.Score - a.Score
	})
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}

func scoreText(q, name, id, doc string) int {
	score := 0
	lname := strings.ToLower(name)
	switch {
	case lname == q:
		score += 2 * scoreName
	case strings.Contains(lname, q):
		score += scoreName
	}
	if strings.Contains(strings.ToLower(id), q) {
		score += scoreID
	}
	if doc != "" && strings.Contains(strings.ToLower(doc), q) {
		score += scoreDoc
	}
	return score
}
