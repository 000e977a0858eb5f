package model

// Student represents a student record in the database. ID is assigned by the
// store on first save.
type Student struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Age       int
}

// CreateStudentCommand carries the fields for creating or replacing a student.
// Email is a pointer so that a missing or null email can be told apart.
type CreateStudentCommand struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     *string `json:"email" validate:"required"`
	Age       int     `json:"age"`
}

// StudentDto is the API projection of a Student.
type StudentDto struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
}

// ToEntity maps a validated command to a new Student without an id.
func (c CreateStudentCommand) ToEntity() Student {
	s := Student{}
	c.Apply(&s)
	return s
}

// Apply overwrites the mutable fields of s with the command's values.
func (c CreateStudentCommand) Apply(s *Student) {
	s.FirstName = c.FirstName
	s.LastName = c.LastName
	if c.Email != nil {
		s.Email = *c.Email
	}
	s.Age = c.Age
}

// ToStudentDto projects a Student.
func ToStudentDto(s Student) StudentDto {
	return StudentDto{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
		Age:       s.Age,
	}
}
