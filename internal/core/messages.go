package core

import (
	"sort"
	"strings"
)

// messageIDBodyPrefix bounds how much body text feeds the identity hash.
// Two distinct long messages in the same thread at the same instant with
// identical first 40 characters collide; that is an accepted limitation.
const messageIDBodyPrefix = 40

// normalizeMessages converts message rows into Message records.
//
// Rows with an empty body are dropped silently: exports are full of system
// notices and reaction stubs, and warning per row would drown the
// diagnostics. Direction is "self" when the sender field contains the token
// "you" (substring, case-insensitive) — exports write "You", "you
// (original)", and similar variants.
func normalizeMessages(rows [][]string, fields FieldIndex) ([]Message, []string) {
	var messages []Message
	var warnings []string

	for _, row := range rows {
		body := getField(row, fields, "content")
		if body == "" {
			continue
		}

		sender := getField(row, fields, "from")
		fromSelf := strings.Contains(strings.ToLower(sender), "you")

		sentAt, err := NormalizeTimestamp(getField(row, fields, "date"))
		if err != nil {
			warnings = append(warnings, "message: "+err.Error())
		}

		recipients := splitURLList(getField(row, fields, "recipientUrls"))
		threadID := resolveThreadID(row, fields, recipients, sentAt)

		var counterpart string
		if fromSelf {
			if len(recipients) > 0 {
				counterpart = recipients[0]
			}
		} else {
			counterpart = getField(row, fields, "senderProfile")
		}

		messages = append(messages, Message{
			ID:          StableID(threadID, sentAt, prefixRunes(body, messageIDBodyPrefix)),
			ThreadID:    threadID,
			FromSelf:    fromSelf,
			Counterpart: counterpart,
			Body:        body,
			SentAt:      sentAt,
		})
	}

	return messages, warnings
}

// resolveThreadID derives the conversation grouping key, in order of
// preference: the explicit conversation identifier verbatim; a hash of the
// recipient URL set (sorted when there is more than one, so ["a","b"] and
// ["b","a"] group together); finally a hash of participant|day-bucket.
func resolveThreadID(row []string, fields FieldIndex, recipients []string, sentAt string) string {
	if cid := getField(row, fields, "conversationId"); cid != "" {
		return cid
	}

	switch len(recipients) {
	case 0:
		// fall through to the participant|day bucket
	case 1:
		return StableID(recipients[0])
	default:
		sorted := make([]string, len(recipients))
		copy(sorted, recipients)
		sort.Strings(sorted)
		return StableID(strings.Join(sorted, ","))
	}

	participant := getField(row, fields, "to")
	if participant == "" {
		participant = getField(row, fields, "from")
	}
	return StableID(participant, dayBucket(sentAt))
}

// splitURLList splits a comma-separated URL column, trimming and dropping
// empty segments.
func splitURLList(s string) []string {
	if s == "" {
		return nil
	}

	var urls []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			urls = append(urls, part)
		}
	}
	return urls
}

// prefixRunes returns the first n characters of s, counting runes so
// multi-byte text is not cut mid-character.
func prefixRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
