package core

// unknownField is the default for a missing company or title on job rows.
const unknownField = "Unknown"

// normalizeJobs converts saved-job and job-application rows into SavedJob
// records. Both kinds land in one combined collection with no field
// distinguishing their origin.
//
// Admission is lenient: observed exports omit company or title
// inconsistently between the saved and applied variants, so a row is kept
// when either is present and the missing one defaults to "Unknown". Only a
// row missing both is dropped.
func normalizeJobs(rows [][]string, fields FieldIndex) ([]SavedJob, []string) {
	var jobs []SavedJob
	var warnings []string

	for _, row := range rows {
		company := getField(row, fields, "company")
		title := getField(row, fields, "title")
		if company == "" && title == "" {
			warnings = append(warnings, "dropping job row with no company or title")
			continue
		}
		if company == "" {
			company = unknownField
		}
		if title == "" {
			title = unknownField
		}

		savedAt, err := NormalizeTimestamp(getField(row, fields, "date"))
		if err != nil {
			warnings = append(warnings, "job "+title+": "+err.Error())
		}

		jobs = append(jobs, SavedJob{
			ID:      StableID(company, title, savedAt),
			Company: company,
			Title:   title,
			SavedAt: savedAt,
		})
	}

	return jobs, warnings
}
