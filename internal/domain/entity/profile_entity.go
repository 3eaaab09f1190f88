package entity

import "time"

// Profile is the public page a user maintains about themselves.
// At most one exists per user; User references the owning account.
// Skill is a comma-delimited list, kept as entered.
type Profile struct {
	ID        string    `json:"_id"`
	User      string    `json:"user"`
	Name      string    `json:"name"`
	Career    string    `json:"career"`
	Bio       string    `json:"bio"`
	Work      string    `json:"work"`
	Education string    `json:"education"`
	Skill     string    `json:"skill"`
	ProfPic   string    `json:"prof_pic,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
