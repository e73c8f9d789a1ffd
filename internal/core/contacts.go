package core

import "strings"

// normalizeContacts converts connections rows into Contact records.
//
// Admission is strict: a row is dropped (with a warning) when both name
// fields are empty. The identity key is the profile URL when present, so a
// contact's ID survives job changes; otherwise it falls back to
// name|company|connectedAt.
func normalizeContacts(rows [][]string, fields FieldIndex) ([]Contact, []string) {
	var contacts []Contact
	var warnings []string

	for _, row := range rows {
		first := getField(row, fields, "firstName")
		last := getField(row, fields, "lastName")
		if first == "" && last == "" {
			warnings = append(warnings, "dropping connection row with no name")
			continue
		}

		name := strings.TrimSpace(first + " " + last)
		company := getField(row, fields, "company")
		profileURL := getField(row, fields, "profileUrl")

		rawDate := getField(row, fields, "connectedOn")
		connectedAt, err := NormalizeTimestamp(rawDate)
		if err != nil {
			warnings = append(warnings, "connection "+name+": "+err.Error())
		}

		var id string
		if profileURL != "" {
			id = StableID(profileURL)
		} else {
			id = StableID(name, company, connectedAt)
		}

		contacts = append(contacts, Contact{
			ID:          id,
			Name:        name,
			Title:       getField(row, fields, "position"),
			Company:     company,
			Location:    getField(row, fields, "location"),
			ConnectedAt: connectedAt,
			ProfileURL:  profileURL,
		})
	}

	return contacts, warnings
}
