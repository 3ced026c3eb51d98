package extract

// Theme is one markup generation's way of extracting T from a document.
type Theme[T any] struct {
	Name    string
	Extract func(*Node) (T, bool)
}

// FirstTheme tries themes in order and returns the first non-empty result
// with the winning theme's name. Later themes are never consulted once one
// succeeds, even if their markup is also present.
func FirstTheme[T any](doc *Node, themes ...Theme[T]) (T, string, bool) {
	var zero T
	if doc == nil {
		return zero, "", false
	}
	for _, th := range themes {
		if v, ok := th.Extract(doc); ok {
			return v, th.Name, true
		}
	}
	return zero, "", false
}

// ListTheme builds a Theme that maps every match of selector through fn and
// succeeds when at least one item survives.
func ListTheme[T any](name, selector string, fn func(*Node) (T, bool)) Theme[[]T] {
	return Theme[[]T]{
		Name: name,
		Extract: func(doc *Node) ([]T, bool) {
			var out []T
			for _, n := range doc.All(selector) {
				if v, ok := fn(n); ok {
					out = append(out, v)
				}
			}
			return out, len(out) > 0
		},
	}
}

// TextListTheme is a ListTheme over the cleaned text of each match.
func TextListTheme(name, selector string, strip ...string) Theme[[]string] {
	return ListTheme(name, selector, func(n *Node) (string, bool) {
		t := n.Text("", strip...)
		if t == nil {
			return "", false
		}
		return *t, true
	})
}
