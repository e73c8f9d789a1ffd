// Package schema declares the expected shape of each supported export file.
//
// Export archives from different account vintages name the same column
// differently ("Connected On" vs "Connected Date", "Content" vs "Message").
// Rather than hard-coding positions or duplicating lookup logic per file
// kind, every kind is described here as data: a header marker cell that
// identifies the real header row, plus an ordered alias list per logical
// field. The core resolver consumes these tables generically.
package schema

// Matcher matches a logical field name against a header cell.
// Exactly one of Literal or Substr is set. Literal compares the whole cell
// case-insensitively; Substr matches a case-insensitive substring.
type Matcher struct {
	Literal string
	Substr  string
}

// Field is one logical field with its ordered alias list.
// Earlier aliases win; later ones are fallbacks for older export formats.
type Field struct {
	Name    string
	Aliases []Matcher
}

// Kind describes one recognized export file kind.
type Kind struct {
	// Key is the stable identifier used for routing and record queries.
	Key string

	// Label is the canonical label reported in diagnostics.
	Label string

	// Match lists case-insensitive filename substrings that identify
	// this kind.
	Match []string

	// Marker is the header cell (exact, case-insensitive) that identifies
	// the true header row among descriptive preamble rows.
	Marker string

	Fields []Field
}

func lit(s string) Matcher { return Matcher{Literal: s} }
func sub(s string) Matcher { return Matcher{Substr: s} }

// Contacts describes the connections export.
var Contacts = Kind{
	Key:    "contacts",
	Label:  "Connections",
	Match:  []string{"connections"},
	Marker: "First Name",
	Fields: []Field{
		{Name: "firstName", Aliases: []Matcher{lit("First Name"), sub("first name")}},
		{Name: "lastName", Aliases: []Matcher{lit("Last Name"), sub("last name")}},
		{Name: "profileUrl", Aliases: []Matcher{lit("URL"), sub("profile url"), sub("profile")}},
		{Name: "company", Aliases: []Matcher{lit("Company"), sub("company")}},
		{Name: "position", Aliases: []Matcher{lit("Position"), lit("Title"), sub("position")}},
		{Name: "location", Aliases: []Matcher{lit("Location"), sub("location")}},
		{Name: "connectedOn", Aliases: []Matcher{lit("Connected On"), sub("connected")}},
	},
}

// Messages describes the canonical messages export.
var Messages = Kind{
	Key:    "messages",
	Label:  "messages",
	Match:  []string{"messages"},
	Marker: "From",
	Fields: []Field{
		{Name: "conversationId", Aliases: []Matcher{lit("Conversation ID"), sub("conversation id")}},
		{Name: "from", Aliases: []Matcher{lit("From"), sub("sender name")}},
		{Name: "senderProfile", Aliases: []Matcher{lit("Sender Profile URL"), sub("sender profile")}},
		{Name: "to", Aliases: []Matcher{lit("To"), sub("recipient name")}},
		{Name: "recipientUrls", Aliases: []Matcher{lit("Recipient Profile URLs"), sub("recipient profile")}},
		{Name: "date", Aliases: []Matcher{lit("Date"), lit("Sent At"), sub("date")}},
		{Name: "subject", Aliases: []Matcher{lit("Subject"), sub("subject")}},
		{Name: "content", Aliases: []Matcher{lit("Content"), lit("Message"), lit("Body"), sub("content")}},
	},
}

// Invitations describes the invitations export.
var Invitations = Kind{
	Key:    "invites",
	Label:  "Invitations",
	Match:  []string{"invitations"},
	Marker: "Sent At",
	Fields: []Field{
		{Name: "from", Aliases: []Matcher{lit("From"), sub("inviter")}},
		{Name: "to", Aliases: []Matcher{lit("To"), sub("invitee")}},
		{Name: "sentAt", Aliases: []Matcher{lit("Sent At"), lit("Date"), sub("sent at")}},
		{Name: "message", Aliases: []Matcher{lit("Message"), sub("message")}},
		{Name: "direction", Aliases: []Matcher{lit("Direction"), sub("direction")}},
		{Name: "title", Aliases: []Matcher{lit("Job Title"), lit("Title"), sub("title")}},
		{Name: "company", Aliases: []Matcher{lit("Company"), sub("company")}},
	},
}

// CompanyFollows describes the company follows export.
var CompanyFollows = Kind{
	Key:    "follows",
	Label:  "Company Follows",
	Match:  []string{"company follows"},
	Marker: "Organization",
	Fields: []Field{
		{Name: "organization", Aliases: []Matcher{lit("Organization"), lit("Company Name"), sub("organization"), sub("company")}},
		{Name: "followedOn", Aliases: []Matcher{lit("Followed On"), sub("followed"), sub("date")}},
	},
}

// SavedJobs describes the saved jobs export.
var SavedJobs = Kind{
	Key:    "jobs",
	Label:  "Saved Jobs",
	Match:  []string{"saved jobs"},
	Marker: "Job Title",
	Fields: []Field{
		{Name: "company", Aliases: []Matcher{lit("Company Name"), lit("Company"), sub("company")}},
		{Name: "title", Aliases: []Matcher{lit("Job Title"), sub("title")}},
		{Name: "date", Aliases: []Matcher{lit("Saved Date"), sub("saved"), sub("date")}},
	},
}

// JobApplications describes the job applications export. It shares the saved
// jobs field shape; rows from both land in one combined collection and the
// originating kind is not retained on the record.
var JobApplications = Kind{
	Key:    "applications",
	Label:  "Job Applications",
	Match:  []string{"job applications"},
	Marker: "Job Title",
	Fields: []Field{
		{Name: "company", Aliases: []Matcher{lit("Company Name"), lit("Company"), sub("company")}},
		{Name: "title", Aliases: []Matcher{lit("Job Title"), sub("title")}},
		{Name: "date", Aliases: []Matcher{lit("Application Date"), sub("application"), sub("date")}},
	},
}
