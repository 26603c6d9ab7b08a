package entity

// User is the account profile returned by the clinic backend on login.
type User struct {
	ID             ID     `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	UserType       string `json:"user_type"`
	IsStaff        bool   `json:"is_staff,omitempty"`
	IsSuperuser    bool   `json:"is_superuser,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	DoctorID       ID     `json:"doctor_id,omitempty"`
	PatientID      ID     `json:"patient_id,omitempty"`
}

func (u *User) FullName() string {
	switch {
	case u.FirstName == "" && u.LastName == "":
		return u.Username
	case u.LastName == "":
		return u.FirstName
	case u.FirstName == "":
		return u.LastName
	}
	return u.FirstName + " " + u.LastName
}
