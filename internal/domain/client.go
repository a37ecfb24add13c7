package domain

import "strings"

type Client struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
}

// FullName is the display name used in order forms.
func (c *Client) FullName() string {
	return strings.TrimSpace(c.LastName + " " + c.FirstName)
}
