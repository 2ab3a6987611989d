package domain

// FieldPlaceholder is rendered for any record field that is missing or
// empty in the service response. Each field falls back independently.
const FieldPlaceholder = "N/A"

// Record represents a single directory match returned by the remote
// service. Records carry no identity beyond their position in the result
// list; list order is document order.
type Record struct {
	// Name is the student's first name.
	Name string

	// Roll is the student's roll number.
	Roll string

	// Hometown is the student's home town.
	Hometown string
}

// Normalise replaces any empty field with the placeholder.
func (r Record) Normalise() Record {
	if r.Name == "" {
		r.Name = FieldPlaceholder
	}
	if r.Roll == "" {
		r.Roll = FieldPlaceholder
	}
	if r.Hometown == "" {
		r.Hometown = FieldPlaceholder
	}
	return r
}
