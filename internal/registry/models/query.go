package models

import (
	"net/url"
	"strconv"

	id "kontrola/pkg/domain"
)

// DefaultSort asks the provider for most recent records first.
const DefaultSort = "-date"

// Query is a drill-down request for one family.
type Query struct {
	INN    id.TaxID
	Family Family
	Page   int
	Limit  int
	Sort   string

	// Contracts only. Nil/empty means every value.
	Law  *LawType
	Role Role

	// Litigation only, forwarded verbatim.
	PartyRole string
	Actual    string
	Active    string
	DateFrom  string
	DateTo    string
}

// Pinned reports whether a contracts query fixes law or role.
func (q Query) Pinned() bool {
	return q.Law != nil || q.Role != ""
}

// Params renders the provider filters shared by every call of the query.
// Paging and contract dimensions are added by the caller.
func (q Query) Params() url.Values {
	v := url.Values{}
	v.Set("inn", q.INN.String())
	sort := q.Sort
	if sort == "" {
		sort = DefaultSort
	}
	v.Set("sort", sort)
	if q.Family == FamilyLitigation {
		setIf(v, "role", q.PartyRole)
		setIf(v, "actual", q.Actual)
		setIf(v, "active", q.Active)
		setIf(v, "date_from", q.DateFrom)
		setIf(v, "date_to", q.DateTo)
	}
	return v
}

// WithPaging returns a copy of params with page and limit set.
func WithPaging(params url.Values, page, limit int) url.Values {
	out := cloneValues(params)
	out.Set("page", strconv.Itoa(page))
	out.Set("limit", strconv.Itoa(limit))
	return out
}

// WithCombination returns a copy of params filtered to one law/role pair.
func WithCombination(params url.Values, c Combination) url.Values {
	out := cloneValues(params)
	out.Set("law", c.Law.String())
	out.Set("role", string(c.Role))
	return out
}

func setIf(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v)+2)
	for k, vs := range v {
		out[k] = append([]string(nil), vs...)
	}
	return out
}
