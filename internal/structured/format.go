package structured

import (
	"fmt"
	"strings"
	"time"
)

func firstString(record map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := record[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func parseTimestamp(s string) (time.Time, bool) {
	s = strings.Replace(s, "Z", "+00:00", 1)
	for _, layout := range []string{
		"2006-01-02T15:04:05-07:00",
		"2006-01-02T15:04:05.999999-07:00",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func formatPrice(v any) string {
	switch p := v.(type) {
	case float64:
		return fmt.Sprintf("Price: $%.0f", p)
	case string:
		if p != "" {
			return "Price: " + p
		}
	}
	return ""
}

// FormatCamp renders one camp record as a prose line. Only present fields
// appear.
func FormatCamp(camp map[string]any) string {
	var parts []string

	if name := firstString(camp, "title", "name"); name != "" {
		parts = append(parts, "Camp: "+name)
	}
	if age := firstString(camp, "age"); age != "" {
		parts = append(parts, "Age Range: "+age)
	}
	if desc := firstString(camp, "description"); desc != "" {
		parts = append(parts, "Description: "+desc)
	}
	if price := formatPrice(camp["price"]); price != "" {
		parts = append(parts, price)
	}

	startStr := firstString(camp, "startDateTime", "startDate")
	endStr := firstString(camp, "endDateTime", "endDate")
	if startStr != "" && endStr != "" {
		start, okS := parseTimestamp(startStr)
		end, okE := parseTimestamp(endStr)
		if okS && okE {
			if start.Year() == end.Year() && start.YearDay() == end.YearDay() {
				parts = append(parts, "Date: "+start.Format("Jan 02, 2006"))
			} else {
				parts = append(parts, fmt.Sprintf("Duration: %s - %s", start.Format("Jan 02"), end.Format("Jan 02, 2006")))
			}
			if start.Format("15:04") != end.Format("15:04") {
				parts = append(parts, fmt.Sprintf("Schedule: %s - %s", start.Format("03:04 PM"), end.Format("03:04 PM")))
			}
		}
	}

	return strings.Join(parts, ". ")
}

// FormatProgram renders one program record as a prose line.
func FormatProgram(program map[string]any) string {
	var parts []string

	if name := firstString(program, "name", "title", "programName"); name != "" {
		parts = append(parts, "Program: "+name)
	}
	if age := firstString(program, "ageRange", "age", "ageGroup"); age != "" {
		parts = append(parts, "Age Range: "+age)
	}
	if desc := firstString(program, "description", "programDescription", "overview"); desc != "" {
		parts = append(parts, "Description: "+desc)
	}
	if dur := firstString(program, "duration"); dur != "" {
		parts = append(parts, "Duration: "+dur)
	}
	if sched := firstString(program, "schedule"); sched != "" {
		parts = append(parts, "Schedule: "+sched)
	}
	if price := formatPrice(program["price"]); price != "" {
		parts = append(parts, price)
	}

	return strings.Join(parts, ". ")
}

// FormatEvent renders one event record as a prose line.
func FormatEvent(event map[string]any) string {
	var parts []string

	if name := firstString(event, "name", "title"); name != "" {
		parts = append(parts, "Event: "+name)
	}
	if desc := firstString(event, "description"); desc != "" {
		parts = append(parts, "Description: "+desc)
	}
	if startStr := firstString(event, "startDateTime", "startDate"); startStr != "" {
		if start, ok := parseTimestamp(startStr); ok {
			parts = append(parts, "Date: "+start.Format("Jan 02, 2006"))
		}
	}

	return strings.Join(parts, ". ")
}

// FormatClub renders one club record as a prose line.
func FormatClub(club map[string]any) string {
	var parts []string

	if name := firstString(club, "name", "title"); name != "" {
		parts = append(parts, "Club: "+name)
	}
	if desc := firstString(club, "description"); desc != "" {
		parts = append(parts, "Description: "+desc)
	}
	if age := firstString(club, "ageRange", "age"); age != "" {
		parts = append(parts, "Age Range: "+age)
	}

	return strings.Join(parts, ". ")
}

// FormatFacility renders the contact card for a facility document.
func FormatFacility(facility map[string]any) string {
	var parts []string

	if v := firstString(facility, "name"); v != "" {
		parts = append(parts, "Facility: "+v)
	}
	if v := firstString(facility, "address"); v != "" {
		parts = append(parts, "Address: "+v)
	}
	if v := firstString(facility, "phone"); v != "" {
		parts = append(parts, "Phone: "+v)
	}
	if v := firstString(facility, "email"); v != "" {
		parts = append(parts, "Email: "+v)
	}
	if v := firstString(facility, "description"); v != "" {
		parts = append(parts, "Description: "+v)
	}

	return strings.Join(parts, "\n")
}

func joinRecords(records []map[string]any, format func(map[string]any) string) string {
	var lines []string
	for _, r := range records {
		if line := format(r); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n\n")
}
