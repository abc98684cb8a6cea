package domain

import "time"

// Contact is a single email recipient. Attributes holds open key-value data
// (plan, locale, segment flags) that campaign target_audience filters match
// against and template variables resolve from.
type Contact struct {
	ID         string         `json:"id" db:"id"`
	Email      string         `json:"email" db:"email"`
	FirstName  string         `json:"first_name" db:"first_name"`
	LastName   string         `json:"last_name" db:"last_name"`
	Attributes map[string]any `json:"attributes,omitempty" db:"attributes"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
}

// Fields merges the named columns with Attributes into one lookup map for
// template rendering. Named columns win on key collision.
func (c *Contact) Fields() map[string]any {
	out := make(map[string]any, len(c.Attributes)+4)
	for k, v := range c.Attributes {
		out[k] = v
	}
	out["id"] = c.ID
	out["email"] = c.Email
	out["first_name"] = c.FirstName
	out["last_name"] = c.LastName
	return out
}
