// Package tables contains one accessor per identity table (or fixed
// join). Each accessor owns the SQL text and parameter binding for its
// table and maps result rows to entity values. Accessors are stateless
// apart from the shared *db.Database; they validate required arguments
// before building a statement and propagate database errors unchanged.
package tables

// nullIfEmpty binds optional text columns: the entities use the empty
// string for "not set", which is stored as SQL NULL.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
