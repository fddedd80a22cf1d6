package entities

// TeacherCredential is an externally curated record that authorizes an email
// to log in as a teacher. Read-only from the core's perspective.
type TeacherCredential struct {
	Email    string
	Verified bool
}
