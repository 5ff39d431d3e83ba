package testutil

import "time"

// KeyedRecords returns four map records keyed "id", "key0".."keyN":
//
//	map0  foo   bar   baz
//	map1  foo   bar   bax
//	map2  hello world
//	map3  0000  1111  2222  3333
func KeyedRecords() []map[string]any {
	return []map[string]any{
		keyed("map0", "foo", "bar", "baz"),
		keyed("map1", "foo", "bar", "bax"),
		keyed("map2", "hello", "world"),
		keyed("map3", "0000", "1111", "2222", "3333"),
	}
}

func keyed(id string, values ...string) map[string]any {
	m := map[string]any{"id": id}
	for i, v := range values {
		m["key"+string(rune('0'+i))] = v
	}
	return m
}

// Person is a typed record with fields, getters and a predicate method.
type Person struct {
	ID        string
	FirstName string
	LastName  string `minque:"family"`
	Age       int
	BirthDate time.Time
	Nickname  *string
	retired   bool
}

// GetFullName is resolved for the property "fullName".
func (p Person) GetFullName() string { return p.FirstName + " " + p.LastName }

// IsRetired is resolved for the property "retired".
func (p *Person) IsRetired() bool { return p.retired }

// People returns three persons aged 20, 40 and 60 with first names
// foo, foo and far, all born before 2000.
func People() []Person {
	nick := "bazz"
	return []Person{
		{ID: "p0", FirstName: "foo", LastName: "bar", Age: 20, BirthDate: time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC), Nickname: &nick},
		{ID: "p1", FirstName: "foo", LastName: "baz", Age: 40, BirthDate: time.Date(1985, 6, 15, 0, 0, 0, 0, time.UTC)},
		{ID: "p2", FirstName: "far", LastName: "qux", Age: 60, BirthDate: time.Date(1965, 12, 31, 0, 0, 0, 0, time.UTC), retired: true},
	}
}

// IDs extracts the "id" property of map records.
func IDs(records []map[string]any) []string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		id, _ := r["id"].(string)
		ids = append(ids, id)
	}
	return ids
}
