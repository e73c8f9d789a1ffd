package core

// errors.go maps internal errors to user-friendly messages with stable
// codes. Users can quote the code to support staff for faster diagnosis.
//
//	PARSE001 - Timeout: the parse exceeded its time budget
//	PARSE002 - No usable files: nothing recognizable was supplied
//	FILE001  - File too large
//	FILE002  - Bad archive: the ZIP container could not be opened
//	FILE003  - No file: no file was provided

import (
	"errors"
	"strings"
)

// UserMessage is a user-facing error description with a stable code.
type UserMessage struct {
	Code    string
	Message string
	Action  string
}

var errorPatterns = []struct {
	substr string
	msg    UserMessage
}{
	{"file too large", UserMessage{
		Code:    "FILE001",
		Message: "The file exceeds the maximum allowed size",
		Action:  "Export a smaller date range or split the archive",
	}},
	{"open archive", UserMessage{
		Code:    "FILE002",
		Message: "The archive could not be opened",
		Action:  "Re-download the export and upload the original ZIP",
	}},
	{"no file provided", UserMessage{
		Code:    "FILE003",
		Message: "No file was provided",
		Action:  "Select an export archive or CSV file to upload",
	}},
}

// MapError converts an internal error into a UserMessage.
func MapError(err error) UserMessage {
	switch {
	case errors.Is(err, ErrParseTimeout):
		return UserMessage{
			Code:    "PARSE001",
			Message: "Processing took too long and was abandoned",
			Action:  "Try again with a smaller export",
		}
	case errors.Is(err, ErrNoUsableFiles):
		return UserMessage{
			Code:    "PARSE002",
			Message: "No recognizable export files were found in the input",
			Action:  "Upload the data export ZIP or its CSV files directly",
		}
	}

	lower := strings.ToLower(err.Error())
	for _, p := range errorPatterns {
		if strings.Contains(lower, p.substr) {
			return p.msg
		}
	}

	return UserMessage{
		Code:    "GEN001",
		Message: "An unexpected error occurred",
		Action:  "Try again; contact support with code GEN001 if it persists",
	}
}
