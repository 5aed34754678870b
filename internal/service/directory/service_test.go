package directory_test

import (
	"testing"

	"github.com/soulconnect/backend/internal/service/directory"
)

func TestFindProfessionalsKnownCity(t *testing.T) {
	svc := directory.NewService()

	professionals := svc.FindProfessionals("Bangalore", "psychiatrist")
	if len(professionals) != 2 {
		t.Fatalf("expected 2 entries for bangalore, got %d", len(professionals))
	}
}

func TestFindProfessionalsCaseInsensitive(t *testing.T) {
	svc := directory.NewService()

	upper := svc.FindProfessionals("DELHI", "psychiatrist")
	lower := svc.FindProfessionals("delhi", "psychiatrist")
	if len(upper) != len(lower) || len(upper) == 0 {
		t.Fatalf("city lookup should ignore case: %d vs %d", len(upper), len(lower))
	}
}

func TestFindProfessionalsUnknownCity(t *testing.T) {
	svc := directory.NewService()

	professionals := svc.FindProfessionals("Atlantis", "therapist")
	if len(professionals) != 1 {
		t.Fatalf("expected single generic record, got %d", len(professionals))
	}
	if professionals[0].Phone != "Contact local helpline" {
		t.Fatalf("expected generic helpline record, got %+v", professionals[0])
	}
}

func TestCrisisResourcesComplete(t *testing.T) {
	svc := directory.NewService()

	resources := svc.Crisis()
	if len(resources.EmergencyContacts) != 4 {
		t.Fatalf("expected 4 emergency contacts, got %d", len(resources.EmergencyContacts))
	}
	for _, contact := range resources.EmergencyContacts {
		if contact.Name == "" || contact.Number == "" {
			t.Fatalf("incomplete contact: %+v", contact)
		}
	}
}
