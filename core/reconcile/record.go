package reconcile

import "record-importer/core/utils"

// Require fails with a MissingFieldError naming the first absent field.
func (r Record) Require(fields ...string) error {
	for _, f := range fields {
		if _, ok := r[f]; !ok {
			return &MissingFieldError{Field: f}
		}
	}
	return nil
}

// PositiveInt reads a required positive integer field.
func (r Record) PositiveInt(field string) (int, error) {
	v, ok := r[field]
	if !ok {
		return 0, &MissingFieldError{Field: field}
	}
	n, ok := utils.ToPositiveInt(v)
	if !ok {
		return 0, &InvalidFieldError{Field: field, Value: v}
	}
	return n, nil
}

// Int reads a required integer field of any sign.
func (r Record) Int(field string) (int, error) {
	v, ok := r[field]
	if !ok {
		return 0, &MissingFieldError{Field: field}
	}
	n, ok := utils.ToInt(v)
	if !ok {
		return 0, &InvalidFieldError{Field: field, Value: v}
	}
	return n, nil
}

// Text reads a required string field. Empty strings are accepted.
func (r Record) Text(field string) (string, error) {
	v, ok := r[field]
	if !ok {
		return "", &MissingFieldError{Field: field}
	}
	s, ok := utils.ToString(v)
	if !ok {
		return "", &InvalidFieldError{Field: field, Value: v}
	}
	return s, nil
}
