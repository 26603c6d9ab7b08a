package entity

// Doctor is the public doctor profile shown on the booking page.
type Doctor struct {
	ID              int        `json:"id"`
	Bio             string     `json:"bio"`
	Specialization  string     `json:"specialization"`
	ExperienceYears int        `json:"experience_years"`
	ConsultationFee float64    `json:"consultation_fee,omitempty"`
	ProfilePic      string     `json:"profilepic,omitempty"`
	User            DoctorUser `json:"user"`
	Clinic          *Clinic    `json:"clinic,omitempty"`
	Name            string     `json:"name,omitempty"`
}

type DoctorUser struct {
	ID             ID     `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Phone          string `json:"phone"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

func (d *Doctor) DisplayName() string {
	if d.Name != "" {
		return d.Name
	}
	full := d.User.FirstName
	if d.User.LastName != "" {
		if full != "" {
			full += " "
		}
		full += d.User.LastName
	}
	if full == "" {
		return d.User.Username
	}
	return "Dr. " + full
}
