package domain

import "fmt"

type Image struct {
	ID          string `json:"image_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (i Image) Describe() string {
	return fmt.Sprintf("AMI ID: %s, Name: %s, Description: %s", i.ID, i.Name, i.Description)
}

type Identity struct {
	Account string `json:"account"`
	ARN     string `json:"arn"`
	UserID  string `json:"user_id"`
}
