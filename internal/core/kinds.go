package core

import "github.com/JonMunkholm/exportparse/internal/schema"

// Kind registration. Order matters: it sets filename classification
// precedence and the order kinds are reported in.
func init() {
	Register(KindDefinition{Spec: schema.Contacts, Apply: applyContacts})
	Register(KindDefinition{Spec: schema.Messages, Apply: applyMessages})
	Register(KindDefinition{Spec: schema.Invitations, Apply: applyInvites})
	Register(KindDefinition{Spec: schema.CompanyFollows, Apply: applyFollows})
	Register(KindDefinition{Spec: schema.SavedJobs, Apply: applyJobs})
	Register(KindDefinition{Spec: schema.JobApplications, Apply: applyJobs})
}

// accumulator collects typed records into the invocation's Result,
// deduplicating by identity hash within each collection. Saved jobs and job
// applications share one namespace because they share one collection.
type accumulator struct {
	res  *Result
	seen map[string]struct{}
}

func newAccumulator(res *Result) *accumulator {
	return &accumulator{res: res, seen: make(map[string]struct{})}
}

// admit reports whether an ID is new within its collection namespace and
// marks it seen.
func (a *accumulator) admit(namespace, id string) bool {
	key := namespace + "/" + id
	if _, dup := a.seen[key]; dup {
		return false
	}
	a.seen[key] = struct{}{}
	return true
}

func applyContacts(rows [][]string, fields FieldIndex, acc *accumulator) []string {
	contacts, warnings := normalizeContacts(rows, fields)
	for _, c := range contacts {
		if acc.admit("contact", c.ID) {
			acc.res.Contacts = append(acc.res.Contacts, c)
		}
	}
	return warnings
}

func applyMessages(rows [][]string, fields FieldIndex, acc *accumulator) []string {
	messages, warnings := normalizeMessages(rows, fields)
	for _, m := range messages {
		if acc.admit("message", m.ID) {
			acc.res.Messages = append(acc.res.Messages, m)
		}
	}
	return warnings
}

func applyInvites(rows [][]string, fields FieldIndex, acc *accumulator) []string {
	invites, warnings := normalizeInvites(rows, fields)
	for _, inv := range invites {
		if acc.admit("invite", inv.ID) {
			acc.res.Invites = append(acc.res.Invites, inv)
		}
	}
	return warnings
}

func applyFollows(rows [][]string, fields FieldIndex, acc *accumulator) []string {
	follows, warnings := normalizeFollows(rows, fields)
	for _, fol := range follows {
		if acc.admit("follow", fol.ID) {
			acc.res.Follows = append(acc.res.Follows, fol)
		}
	}
	return warnings
}

func applyJobs(rows [][]string, fields FieldIndex, acc *accumulator) []string {
	jobs, warnings := normalizeJobs(rows, fields)
	for _, j := range jobs {
		if acc.admit("job", j.ID) {
			acc.res.Jobs = append(acc.res.Jobs, j)
		}
	}
	return warnings
}
