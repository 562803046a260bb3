package person

// ToPersistence converts a transport record into a persistence record.
// A nil view maps to nil.
func ToPersistence(v *PersonView) *Person {
	if v == nil {
		return nil
	}
	return &Person{
		ID:      v.ID,
		Name:    v.Name,
		Surname: v.Surname,
		Job:     v.Job,
		Age:     v.Age,
	}
}

// ToView converts a persistence record into a transport record.
// A nil record maps to nil.
func ToView(p *Person) *PersonView {
	if p == nil {
		return nil
	}
	return &PersonView{
		ID:      p.ID,
		Name:    p.Name,
		Surname: p.Surname,
		Job:     p.Job,
		Age:     p.Age,
	}
}

// ToViews maps a collection of records. The result is never nil so it
// serializes as [] when empty.
func ToViews(records []Person) []PersonView {
	views := make([]PersonView, 0, len(records))
	for i := range records {
		views = append(views, *ToView(&records[i]))
	}
	return views
}
