package models

// CourseOwner is the public projection of a course's owner.
// It carries no credential or timestamp fields.
type CourseOwner struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

type Course struct {
	ID              int64        `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	EstimatedTime   *string      `json:"estimatedTime"`
	MaterialsNeeded *string      `json:"materialsNeeded"`
	UserID          int64        `json:"userId"`
	User            *CourseOwner `json:"User,omitempty"`
}

// CourseInput is the allow-listed body of POST and PUT /api/courses.
// Client supplied id and userId are never read.
type CourseInput struct {
	Title           string  `json:"title" validate:"notblank"`
	Description     string  `json:"description" validate:"notblank"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}

// Owner returns the public projection of u.
func (u User) Owner() CourseOwner {
	return CourseOwner{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		EmailAddress: u.EmailAddress,
	}
}
