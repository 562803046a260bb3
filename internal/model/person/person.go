// Package person holds the Person entity in its two shapes:
// the persistence record mirroring one row of the personnel table,
// and the transport record exchanged with API callers.
//
// The shapes are field-identical today but are kept as separate types so
// the storage schema and the public contract can evolve independently.
package person

// Unspecified is the sentinel stored for a string field that was not supplied.
const Unspecified = "n/a"

// Table is the relational table backing Person.
const Table = "personnel"

// Column limits enforced by the personnel table.
const (
	NameMaxLength    = 80
	SurnameMaxLength = 255
)

// Person is the persistence record: one row of the personnel table.
type Person struct {
	ID      int64  `db:"id"`
	Name    string `db:"name"`
	Surname string `db:"surname"`
	Job     string `db:"job"`
	Age     int    `db:"age"`
}

// Patch returns p with the meaningful fields of v applied: non-blank
// strings and a non-negative age. The id is never changed. A nil v
// returns p unchanged.
func (p Person) Patch(v *PersonView) Person {
	if v == nil {
		return p
	}
	if !IsBlank(v.Name) {
		p.Name = v.Name
	}
	if !IsBlank(v.Surname) {
		p.Surname = v.Surname
	}
	if !IsBlank(v.Job) {
		p.Job = v.Job
	}
	if v.Age >= 0 {
		p.Age = v.Age
	}
	return p
}
