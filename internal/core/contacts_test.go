package core

import (
	"strings"
	"testing"

	"github.com/JonMunkholm/exportparse/internal/schema"
)

func contactFields(t *testing.T) FieldIndex {
	t.Helper()
	header := []string{"First Name", "Last Name", "URL", "Email Address", "Company", "Position", "Connected On"}
	return resolveFields(header, schema.Contacts.Fields)
}

// ============================================================================
// normalizeContacts Tests
// ============================================================================

// The admission policy is strict: a row with both name fields empty is
// dropped, never defaulted to "Unknown".
func TestNormalizeContacts_StrictAdmission(t *testing.T) {
	rows := [][]string{
		{"Jane", "Doe", "https://example.com/in/jane", "", "Acme", "Engineer", "02 Jan 2024"},
		{"", "", "", "", "Ghost Corp", "", "03 Jan 2024"},
		{"Sam", "", "", "", "", "", ""},
	}

	contacts, warnings := normalizeContacts(rows, contactFields(t))

	if len(contacts) != 2 {
		t.Fatalf("got %d contacts, want 2 (nameless row dropped)", len(contacts))
	}
	if len(warnings) != 1 {
		t.Errorf("got %d warnings, want 1 drop warning: %v", len(warnings), warnings)
	}

	if contacts[0].Name != "Jane Doe" {
		t.Errorf("Name = %q, want %q", contacts[0].Name, "Jane Doe")
	}
	if contacts[1].Name != "Sam" {
		t.Errorf("single-field name = %q, want %q", contacts[1].Name, "Sam")
	}
	if contacts[0].ConnectedAt != "2024-01-02T00:00:00Z" {
		t.Errorf("ConnectedAt = %q", contacts[0].ConnectedAt)
	}
}

// A non-empty profile URL is the identity key: the hash is invariant under
// changes to company, title, and connection instant.
func TestNormalizeContacts_DedupByURL(t *testing.T) {
	fields := contactFields(t)

	a, _ := normalizeContacts([][]string{
		{"Jane", "Doe", "https://example.com/in/jane", "", "Acme", "Engineer", "02 Jan 2024"},
	}, fields)
	b, _ := normalizeContacts([][]string{
		{"Jane", "Doe", "https://example.com/in/jane", "", "Initech", "Manager", "05 Mar 2025"},
	}, fields)

	if a[0].ID != b[0].ID {
		t.Errorf("ID changed with company/title/instant despite same URL: %q vs %q", a[0].ID, b[0].ID)
	}
}

func TestNormalizeContacts_FallbackIdentityKey(t *testing.T) {
	fields := contactFields(t)

	a, _ := normalizeContacts([][]string{
		{"Jane", "Doe", "", "", "Acme", "", "02 Jan 2024"},
	}, fields)
	b, _ := normalizeContacts([][]string{
		{"Jane", "Doe", "", "", "Initech", "", "02 Jan 2024"},
	}, fields)

	if a[0].ID == b[0].ID {
		t.Error("without a URL, company must participate in the identity key")
	}
}

// A malformed non-empty date warns but retains the row with an empty instant.
func TestNormalizeContacts_BadDateIsSoft(t *testing.T) {
	rows := [][]string{
		{"Jane", "Doe", "", "", "", "", "yesterday-ish"},
	}

	contacts, warnings := normalizeContacts(rows, contactFields(t))

	if len(contacts) != 1 {
		t.Fatalf("row with bad date was dropped")
	}
	if contacts[0].ConnectedAt != "" {
		t.Errorf("ConnectedAt = %q, want empty sentinel", contacts[0].ConnectedAt)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "yesterday-ish") {
		t.Errorf("expected one unparseable-date warning, got %v", warnings)
	}
}

// An empty date is not a warning: "no date" and "bad date" are distinct.
func TestNormalizeContacts_EmptyDateNoWarning(t *testing.T) {
	rows := [][]string{
		{"Jane", "Doe", "", "", "", "", ""},
	}

	_, warnings := normalizeContacts(rows, contactFields(t))
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings for empty date: %v", warnings)
	}
}
