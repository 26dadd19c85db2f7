package model

import "time"

type ID = string

type User struct {
	UUID      ID        `json:"uuid" db:"uuid"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Email     string `json:"email" db:"email"`

	PasswordHash string `json:"-" db:"password_hash"`
}

type Patient struct {
	UUID      ID        `json:"uuid" db:"uuid"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	Name        string    `json:"name" db:"name"`
	IDNumber    string    `json:"idNumber" db:"id_number"`
	Gender      string    `json:"gender" db:"gender"`
	Contact     string    `json:"contact" db:"contact"`
	DateOfBirth time.Time `json:"dateOfBirth" db:"date_of_birth"`

	CreatedBy ID `json:"-" db:"created_by"`
}

type Visit struct {
	UUID      ID        `json:"uuid" db:"uuid"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	VisitDate   time.Time `json:"visitDate" db:"visit_date"`
	Diagnosis   string    `json:"diagnosis" db:"diagnosis"`
	Medications string    `json:"medications" db:"medications"`
	Notes       *string   `json:"notes,omitempty" db:"notes"`

	Patient   ID `json:"patientId" db:"patient_id"`
	CreatedBy ID `json:"-" db:"created_by"`
}

// VisitWithPatient is a Visit joined with its parent patient's display
// fields, used by the visit list and the dashboard.
type VisitWithPatient struct {
	Visit
	PatientName     string `json:"patientName" db:"patient_name"`
	PatientIDNumber string `json:"patientIdNumber" db:"patient_id_number"`
}

// WeeklyVisitCount is one ISO-week bucket of the dashboard aggregation.
type WeeklyVisitCount struct {
	Week  string `json:"week" db:"week"`
	Count int    `json:"count" db:"count"`
}

type Dashboard struct {
	TotalPatients int                `json:"totalPatients"`
	TotalVisits   int                `json:"totalVisits"`
	RecentVisits  []VisitWithPatient `json:"recentVisits"`
	WeeklyVisits  []WeeklyVisitCount `json:"weeklyVisits"`
}
