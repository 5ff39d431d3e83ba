// Package minque filters in-memory records with small SQL-like queries.
//
// A query is compiled once and evaluated against any number of records:
//
//	f := minque.NewMapFactory()
//	q, err := f.Compile(`key0 == foo and (key1 ^= ba or key1 is null)`)
//	if err != nil {
//		return err
//	}
//	matches, err := q.SelectAll(slices.Values(records))
//
// Queries may contain `?` placeholders. Bind returns a Bound query holding
// its own values, so one compiled Query can be bound many times and the
// results used concurrently:
//
//	q, _ := f.Compile("age < ?")
//	young, _ := q.Bind(21)
//	n, _ := young.Count(slices.Values(people))
//
// Records are read through an Accessor. NewMapFactory reads
// map[string]any records; NewStructFactory resolves properties of a struct
// type by reflection once, at construction time.
//
// All errors are *Error values; use IsCode to test for a specific Code.
package minque
