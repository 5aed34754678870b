// Package directory serves the static professional-help catalogs: emergency
// helplines and a per-city table of mental-health professionals. A live
// places API would slot in ahead of the fallback table; only the table is
// wired today.
package directory

import (
	"fmt"
	"strings"
)

// Professional is one directory entry.
type Professional struct {
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	Address        string   `json:"address"`
	Phone          string   `json:"phone"`
	Rating         any      `json:"rating"`
	Types          []string `json:"types"`
}

// Contact is one emergency helpline.
type Contact struct {
	Name     string `json:"name"`
	Number   string `json:"number"`
	Hours    string `json:"hours"`
	Services string `json:"services"`
}

// CrisisResources is the static crisis payload.
type CrisisResources struct {
	EmergencyContacts []Contact `json:"emergency_contacts"`
	OnlineResources   []string  `json:"online_resources"`
	Message           string    `json:"message"`
}

// Service answers directory lookups from the static tables.
type Service struct{}

// NewService returns the directory service.
func NewService() *Service {
	return &Service{}
}

// FindProfessionals looks up the city table (case-insensitive); unknown
// cities get a generic "contact local helpline" record.
func (s *Service) FindProfessionals(city, specialization string) []Professional {
	if professionals, ok := fallbackProfessionals[strings.ToLower(city)]; ok {
		return professionals
	}
	return []Professional{{
		Name:           "Local Mental Health Professional",
		Specialization: "Mental Health Specialist",
		Address:        fmt.Sprintf("Search for mental health professionals in %s", city),
		Phone:          "Contact local helpline",
		Rating:         "Not rated",
		Types:          []string{"mental_health", "professional"},
	}}
}

// Cities lists the major cities the directory covers.
func (s *Service) Cities() []string {
	return []string{
		"Delhi", "Mumbai", "Bangalore", "Chennai", "Kolkata",
		"Hyderabad", "Pune", "Ahmedabad", "Jaipur", "Lucknow",
		"Chandigarh", "Kochi", "Bhopal", "Indore", "Nagpur",
	}
}

// Crisis returns the emergency-contact payload.
func (s *Service) Crisis() CrisisResources {
	return CrisisResources{
		EmergencyContacts: []Contact{
			{Name: "Vandrevala Foundation Helpline", Number: "+91-9999666555", Hours: "24/7", Services: "Counselling and mental health support"},
			{Name: "iCall", Number: "+91-9152987821", Hours: "Mon-Sat 10AM-8PM", Services: "Psychological support"},
			{Name: "AASRA", Number: "+91-9820466726", Hours: "24/7", Services: "Crisis intervention"},
			{Name: "Emergency Services", Number: "112", Hours: "24/7", Services: "Police, Fire, Ambulance"},
		},
		OnlineResources: []string{
			"Mental Health First Aid India",
			"The Live Love Laugh Foundation",
			"YourDOST - Online Counseling",
			"Mindful Science Centre",
		},
		Message: "Please reach out if you need immediate help. You are not alone.",
	}
}

var fallbackProfessionals = map[string][]Professional{
	"delhi": {
		{
			Name:           "Dr. Sameer Malhotra - Max Healthcare",
			Specialization: "Psychiatrist",
			Address:        "Max Super Speciality Hospital, Saket, New Delhi",
			Phone:          "+91-11-2651 5050",
			Rating:         4.5,
			Types:          []string{"psychiatrist", "mental_health"},
		},
		{
			Name:           "Dr. Jyoti Kapoor - Paras Hospitals",
			Specialization: "Psychiatrist",
			Address:        "Paras Hospitals, Gurugram",
			Phone:          "+91-124-458 5555",
			Rating:         4.3,
			Types:          []string{"psychiatrist", "therapist"},
		},
	},
	"mumbai": {
		{
			Name:           "Dr. Harish Shetty - LH Hiranandani Hospital",
			Specialization: "Psychiatrist",
			Address:        "LH Hiranandani Hospital, Powai, Mumbai",
			Phone:          "+91-22-2576 3000",
			Rating:         4.6,
			Types:          []string{"psychiatrist", "counselor"},
		},
	},
	"bangalore": {
		{
			Name:           "Dr. Prathima Murthy - NIMHANS",
			Specialization: "Psychiatrist",
			Address:        "NIMHANS, Hosur Road, Bangalore",
			Phone:          "+91-80-2699 5000",
			Rating:         4.7,
			Types:          []string{"psychiatrist", "mental_health"},
		},
		{
			Name:           "Dr. K. John - Apollo Hospitals",
			Specialization: "Therapist",
			Address:        "Apollo Hospitals, Bannerghatta Road, Bangalore",
			Phone:          "+91-80-2630 4050",
			Rating:         4.4,
			Types:          []string{"therapist", "counselor"},
		},
	},
	"chennai": {
		{
			Name:           "Dr. R. Thara - SCARF",
			Specialization: "Psychiatrist",
			Address:        "SCARF, Chennai",
			Phone:          "+91-44-2615 3974",
			Rating:         4.5,
			Types:          []string{"psychiatrist", "mental_health"},
		},
	},
	"kolkata": {
		{
			Name:           "Dr. J. R. Ram - AMRI Hospitals",
			Specialization: "Psychiatrist",
			Address:        "AMRI Hospitals, Kolkata",
			Phone:          "+91-33-6680 0000",
			Rating:         4.3,
			Types:          []string{"psychiatrist", "mental_health"},
		},
	},
}
