package toml

import "strings"

// assemble folds the section stream spec.md §4.2 produces into a single
// Document tree, enforcing the duplicate-key, table-reopen and
// array-of-tables rules of spec.md §4.3. Grounded on the teacher's
// `toMap`/`getMap` in parse.go: the same "implicitly created table"
// bookkeeping, generalized from a single joined-string map to pointer
// identity (so that a quoted key containing a literal '.' can't be
// confused with a dotted path) and extended to arrays-of-tables and
// explicit-table redefinition.
func assemble(rootPairs []kv, sections []section) (*Document, error) {
	doc := newTable(false)
	explicit := map[*Table]bool{}

	if err := applyPairs(doc, rootPairs); err != nil {
		return nil, err
	}

	for _, sec := range sections {
		switch sec.kind {
		case sectionTable:
			target, err := ensureTablePath(doc, explicit, sec.path, true)
			if err != nil {
				return nil, err
			}
			if err := applyPairs(target, sec.pairs); err != nil {
				return nil, err
			}
		case sectionArrayOfTables:
			target, err := enterArrayOfTables(doc, explicit, sec.path)
			if err != nil {
				return nil, err
			}
			if err := applyPairs(target, sec.pairs); err != nil {
				return nil, err
			}
		}
	}
	return doc, nil
}

// applyPairs assigns each (sub_path, value) pair starting from base,
// tracking which intermediate tables this call itself implicitly
// created so that later pairs in the same pairs list may descend back
// into them, per spec.md §4.3's "Assigning a pair" procedure.
func applyPairs(base *Table, pairs []kv) error {
	implicit := map[*Table]bool{}
	for _, p := range pairs {
		if err := assignDotted(base, implicit, p.path, p.val); err != nil {
			return err
		}
	}
	return nil
}

// assignDotted implements spec.md §4.3's "Assigning a pair" procedure
// against table t, tracking tables this call chain has implicitly
// created in implicit so that a later dotted key sharing a prefix may
// legally descend back into them. It is also used directly by inline-
// table parsing (value_parse.go), which has its own scope.
func assignDotted(t *Table, implicit map[*Table]bool, path []string, v Value) error {
	cur := t
	for _, key := range path[:len(path)-1] {
		existing, ok := cur.Get(key)
		if !ok {
			sub := newTable(false)
			cur.set(key, tableValue(sub))
			implicit[sub] = true
			cur = sub
			continue
		}
		if existing.Kind != KindTable || !implicit[existing.table] {
			if existing.Kind == KindInlineTable {
				return structuralErr("cannot extend inline table %q with a dotted key", key)
			}
			return structuralErr("cannot use %q as a table: key already has a value of a different kind", key)
		}
		cur = existing.table
	}

	last := path[len(path)-1]
	if _, exists := cur.Get(last); exists {
		return structuralErr("key %q is already defined", strings.Join(path, "."))
	}
	cur.set(last, v)
	return nil
}

// ensureTablePath walks path from doc, creating any missing intermediate
// tables and descending into existing ones, per spec.md §4.3's "Ensure
// path" procedure. When final is true, the last path component names the
// table a [header] is opening, and redefinition is checked; when false
// (used for the array-of-tables prefix), every component including the
// last is treated as an intermediate hop.
func ensureTablePath(doc *Table, explicit map[*Table]bool, path []string, final bool) (*Table, error) {
	cur := doc
	for i, key := range path {
		isLast := i == len(path)-1
		existing, ok := cur.Get(key)
		if !ok {
			sub := newTable(false)
			cur.set(key, tableValue(sub))
			cur = sub
			if final && isLast {
				explicit[cur] = true
			}
			continue
		}

		switch existing.Kind {
		case KindTable:
			cur = existing.table
			if final && isLast {
				if explicit[cur] {
					return nil, structuralErr("table %q is already defined", strings.Join(path, "."))
				}
				explicit[cur] = true
			}
		case KindArray:
			elems := existing.arr
			if len(elems) == 0 || elems[len(elems)-1].Kind != KindTable || elems[len(elems)-1].table.Inline {
				return nil, structuralErr("key %q is not a table", strings.Join(path[:i+1], "."))
			}
			// Descend into the last element of the array-of-tables,
			// per spec.md §4.3 rule 1 (this is what permits a header
			// like [products.details] following [[products]]).
			cur = elems[len(elems)-1].table
		default:
			return nil, structuralErr("key %q is not a table", strings.Join(path[:i+1], "."))
		}
	}
	return cur, nil
}

// enterArrayOfTables implements spec.md §4.3's "Applying an
// ArrayOfTablesSection" procedure: ensure the prefix, then append a
// fresh table to (or initialize) the array at the final key.
func enterArrayOfTables(doc *Table, explicit map[*Table]bool, path []string) (*Table, error) {
	parent := doc
	if len(path) > 1 {
		var err error
		parent, err = ensureTablePath(doc, explicit, path[:len(path)-1], false)
		if err != nil {
			return nil, err
		}
	}

	last := path[len(path)-1]
	existing, ok := parent.Get(last)
	fresh := newTable(false)
	if !ok {
		parent.set(last, arrayValue([]Value{tableValue(fresh)}))
		explicit[fresh] = true
		return fresh, nil
	}

	if existing.Kind != KindArray || !isArrayOfTables(existing.arr) {
		return nil, structuralErr("key %q is already defined and is not an array of tables", strings.Join(path, "."))
	}
	existing.arr = append(existing.arr, tableValue(fresh))
	parent.set(last, existing)
	explicit[fresh] = true
	return fresh, nil
}

func isArrayOfTables(elems []Value) bool {
	for _, e := range elems {
		if e.Kind != KindTable || e.table.Inline {
			return false
		}
	}
	return true
}
