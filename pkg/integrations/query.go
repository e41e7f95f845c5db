package integrations

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/matzehuels/spiget/pkg/models"
)

// Pair is one query parameter. A nil Value means the parameter is absent.
type Pair struct {
	Key   string
	Value any
}

// BuildQuery renders pairs as a query suffix: "?k1=v1&k2=v2", or "" when no
// pair has a value. Values are formatted with fmt.Sprint and are not
// percent-encoded; callers pre-join multi-valued fields with ",".
func BuildQuery(pairs ...Pair) string {
	var b strings.Builder
	for _, p := range pairs {
		if p.Value == nil {
			continue
		}
		if b.Len() == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(fmt.Sprint(p.Value))
	}
	return b.String()
}

// ListOptions are the paging, sorting and projection parameters accepted by
// list endpoints. Zero values are omitted from the query.
type ListOptions struct {
	Size   int      // Items per page
	Page   int      // Page number, starting at 1
	Sort   string   // Field to sort by, prefixed with + or - for direction
	Fields []string // Fields to return
}

// Pairs returns the query pairs for o. Sort and Fields may use snake_case;
// they are converted to the API's camelCase.
func (o ListOptions) Pairs() []Pair {
	return []Pair{
		{"size", nonZero(o.Size)},
		{"page", nonZero(o.Page)},
		{"sort", nonEmpty(models.SortField(o.Sort))},
		{"fields", nonEmpty(models.FieldList(o.Fields))},
	}
}

// Query renders o together with extra pairs, extra first.
func (o ListOptions) Query(extra ...Pair) string {
	return BuildQuery(append(extra, o.Pairs()...)...)
}

// Path joins segments with "/", path-escaping each one.
//
//	Path("search", "resources", "world edit")  // "search/resources/world%20edit"
func Path(segments ...any) string {
	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = url.PathEscape(fmt.Sprint(s))
	}
	return strings.Join(parts, "/")
}

func nonZero(n int) any {
	if n == 0 {
		return nil
	}
	return n
}

func nonEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
