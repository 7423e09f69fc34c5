package model

import "strconv"

var clLabels = map[int]string{
	1:  "Senior Managing Director",
	2:  "Client Account Director",
	3:  "Senior Client Account Executive",
	4:  "Client Account Executive",
	5:  "Associate / Principal Director",
	6:  "Senior Manager / Senior Principal",
	7:  "Manager / Principal",
	8:  "Associate Manager / Associate Principal",
	9:  "Consultant / Team Lead / Specialist",
	10: "Senior Analyst / Senior Software Engineer",
	11: "Analyst / Software Engineer",
	12: "Associate / Associate Software Engineer",
	13: "New Associate / Assistant",
}

// CLLabel returns the title for a career level, or "CL <n>" when the level
// has no title.
func CLLabel(cl int) string {
	if label, ok := clLabels[cl]; ok {
		return label
	}
	return "CL " + strconv.Itoa(cl)
}
