package core

// normalizeFollows converts company-follow rows into CompanyFollow records.
// The organization field is the only required one.
func normalizeFollows(rows [][]string, fields FieldIndex) ([]CompanyFollow, []string) {
	var follows []CompanyFollow
	var warnings []string

	for _, row := range rows {
		company := getField(row, fields, "organization")
		if company == "" {
			warnings = append(warnings, "dropping company follow row with no organization")
			continue
		}

		followedAt, err := NormalizeTimestamp(getField(row, fields, "followedOn"))
		if err != nil {
			warnings = append(warnings, "company follow "+company+": "+err.Error())
		}

		follows = append(follows, CompanyFollow{
			ID:         StableID(company, followedAt),
			Company:    company,
			FollowedAt: followedAt,
		})
	}

	return follows, warnings
}
