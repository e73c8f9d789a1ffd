package core

import "strings"

// StatusUnknown is the only invite status the pipeline produces. The schema
// reserves richer values (accepted, ignored) but acceptance is never
// inferred from source columns.
const StatusUnknown = "unknown"

// normalizeInvites converts invitation rows into Invite records.
//
// A row needs at least one party: when both from and to are empty it is
// dropped with a warning. Direction comes from an explicit direction column
// when one resolves ("outgoing"/"incoming" as case-insensitive substrings),
// otherwise it is inferred from the sender field containing "you".
func normalizeInvites(rows [][]string, fields FieldIndex) ([]Invite, []string) {
	var invites []Invite
	var warnings []string

	for _, row := range rows {
		from := getField(row, fields, "from")
		to := getField(row, fields, "to")
		if from == "" && to == "" {
			warnings = append(warnings, "dropping invitation row with no parties")
			continue
		}

		direction := resolveInviteDirection(getField(row, fields, "direction"), from)

		counterpart := from
		if direction == DirectionSent {
			counterpart = to
		}

		sentAt, err := NormalizeTimestamp(getField(row, fields, "sentAt"))
		if err != nil {
			warnings = append(warnings, "invitation "+counterpart+": "+err.Error())
		}

		invites = append(invites, Invite{
			ID:          StableID(direction, counterpart, sentAt),
			Direction:   direction,
			Counterpart: counterpart,
			Title:       getField(row, fields, "title"),
			Company:     getField(row, fields, "company"),
			Status:      StatusUnknown,
			Message:     getField(row, fields, "message"),
			SentAt:      sentAt,
		})
	}

	return invites, warnings
}

func resolveInviteDirection(explicit, from string) string {
	switch lower := strings.ToLower(explicit); {
	case strings.Contains(lower, "outgoing"):
		return DirectionSent
	case strings.Contains(lower, "incoming"):
		return DirectionReceived
	}

	if strings.Contains(strings.ToLower(from), "you") {
		return DirectionSent
	}
	return DirectionReceived
}
