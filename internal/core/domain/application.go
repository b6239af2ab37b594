package domain

import "time"

// AcademyEnrollment is a lead captured by the academy enrollment form.
type AcademyEnrollment struct {
	ID         int64
	Name       string
	Email      string
	Phone      string
	Age        string
	Experience string
	Goals      string
	CreatedAt  time.Time
}

// ModelApplication is a lead captured by the model application form.
type ModelApplication struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Age          string
	Location     string
	Height       string
	Weight       string
	Measurements string
	Experience   string
	Portfolio    string
	CreatedAt    time.Time
}

// BrandApplication is a lead captured by the brand partnership form.
type BrandApplication struct {
	ID                int64
	FirstName         string
	LastName          string
	Email             string
	Phone             string
	Age               string
	Location          string
	CompanyName       string
	Industry          string
	Budget            string
	Goals             string
	Timeline          string
	PreviousCampaigns string
	CreatedAt         time.Time
}

// ServiceInquiry is a message captured by the contact form.
type ServiceInquiry struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Subject   string
	Message   string
	CreatedAt time.Time
}
