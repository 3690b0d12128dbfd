package catalog

// Filter expressions decouple query semantics from any one store's syntax.
// The handlers build an Expr from query parameters; each store adapter
// translates it to its native filter language.

// Expr is a filter expression node. A nil Expr matches every document.
type Expr interface {
	isExpr()
}

// Equals matches documents whose field equals the given value. On array
// fields (tags) the store applies membership semantics: the array contains
// an element exactly equal to the value.
type Equals struct {
	Field string
	Value interface{}
}

// Contains matches documents whose field contains the given substring,
// case-insensitively. The substring is handed to the store verbatim; stores
// that implement Contains via pattern matching will treat metacharacters as
// patterns (see the Mongo adapter).
type Contains struct {
	Field     string
	Substring string
}

// And matches documents satisfying every sub-expression.
type And struct {
	Exprs []Expr
}

// Or matches documents satisfying at least one sub-expression.
type Or struct {
	Exprs []Expr
}

func (Equals) isExpr()   {}
func (Contains) isExpr() {}
func (And) isExpr()      {}
func (Or) isExpr()       {}

// Query holds the optional listing parameters common to all kinds.
// Language is honored only for kinds that declare a language filter.
type Query struct {
	Tag      string
	Text     string
	Language string
}

// BuildFilter translates listing parameters into a filter expression for the
// given kind. Conditions combine with AND; the free-text condition is an OR
// across the kind's text fields. No parameters yields nil (match all).
func BuildFilter(k Kind, q Query) Expr {
	var conds []Expr
	if q.Tag != "" {
		conds = append(conds, Equals{Field: "tags", Value: q.Tag})
	}
	if k.LanguageFilter && q.Language != "" {
		conds = append(conds, Equals{Field: "language", Value: q.Language})
	}
	if q.Text != "" {
		ors := make([]Expr, 0, len(k.TextFields))
		for _, f := range k.TextFields {
			ors = append(ors, Contains{Field: f, Substring: q.Text})
		}
		conds = append(conds, Or{Exprs: ors})
	}
	switch len(conds) {
	case 0:
		return nil
	case 1:
		return conds[0]
	default:
		return And{Exprs: conds}
	}
}
