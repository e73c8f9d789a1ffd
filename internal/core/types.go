package core

// InputFile is one file blob supplied to a parse invocation. The kind of
// container (archive, delimited text, spreadsheet) is inferred from the
// name's extension.
type InputFile struct {
	Name string
	Data []byte
}

// Contact is one connection record. Instants are RFC3339 UTC strings; an
// empty string means the source had no usable value.
type Contact struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	ConnectedAt string `json:"connectedAt,omitempty"`
	ProfileURL  string `json:"profileUrl,omitempty"`
}

// Message is one message record grouped under a thread key.
type Message struct {
	ID       string `json:"id"`
	ThreadID string `json:"threadId"`
	// FromSelf is true when the account owner authored the message.
	FromSelf bool `json:"fromSelf"`
	// Counterpart is the other party's profile URL; may be empty when the
	// source row carried none.
	Counterpart string `json:"counterpart,omitempty"`
	Body        string `json:"body"`
	SentAt      string `json:"sentAt,omitempty"`
}

// Invite direction values.
const (
	DirectionSent     = "sent"
	DirectionReceived = "received"
)

// Invite is one invitation record. Status is always "unknown": the schema
// reserves richer values but acceptance is never inferred from the source.
type Invite struct {
	ID          string `json:"id"`
	Direction   string `json:"direction"`
	Counterpart string `json:"counterpartName"`
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Status      string `json:"status"`
	Message     string `json:"message,omitempty"`
	SentAt      string `json:"sentAt,omitempty"`
}

// CompanyFollow is one followed-organization record.
type CompanyFollow struct {
	ID         string `json:"id"`
	Company    string `json:"company"`
	FollowedAt string `json:"followedAt,omitempty"`
}

// SavedJob is one saved-job or job-application record. The originating file
// kind is deliberately not retained.
type SavedJob struct {
	ID      string `json:"id"`
	Company string `json:"company"`
	Title   string `json:"title"`
	SavedAt string `json:"savedAt,omitempty"`
}

// Summary reports what a parse invocation processed.
type Summary struct {
	// FilesProcessed lists canonical labels in processing order.
	FilesProcessed []string `json:"filesProcessed"`
	// Rows maps canonical label to the raw data row count seen for it.
	Rows map[string]int `json:"rows"`
	// Warnings is the ordered list of non-fatal issues encountered.
	Warnings []string `json:"warnings"`
}

// Result is the aggregate output of one parse invocation. It is built once
// and replaced wholesale by the next invocation, never patched in place.
// Collection order is processing order.
type Result struct {
	Contacts []Contact       `json:"contacts"`
	Messages []Message       `json:"messages"`
	Invites  []Invite        `json:"invites"`
	Follows  []CompanyFollow `json:"follows"`
	Jobs     []SavedJob      `json:"jobs"`
	Summary  Summary         `json:"summary"`
}

func newResult() *Result {
	return &Result{
		Contacts: []Contact{},
		Messages: []Message{},
		Invites:  []Invite{},
		Follows:  []CompanyFollow{},
		Jobs:     []SavedJob{},
	}
}
