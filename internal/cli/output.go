package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/okian/staffer/internal/domain/model"
	"github.com/okian/staffer/internal/domain/types"
)

// writeJSON prints data as indented JSON.
func writeJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// formatSkills renders a skill map as "AWS:6 Node:7" in name order.
func formatSkills(skills map[string]int) string {
	if len(skills) == 0 {
		return "-"
	}
	names := make([]string, 0, len(skills))
	for name := range skills {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s:%d", name, skills[name]))
	}
	return strings.Join(parts, " ")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// writeProjectsTable prints projects as a table
func writeProjectsTable(w io.Writer, projects []model.Project) error {
	if len(projects) == 0 {
		_, err := fmt.Fprintln(w, "No projects found.")
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tROLE\tCL\tHOURS\tREMOTE\tLOCATION\tSKILLS")
	fmt.Fprintln(tw, "--\t----\t--\t-----\t------\t--------\t------")
	for _, p := range projects {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\t%s\n",
			p.ID, p.Role, p.RequiredCL, p.RequiredHours,
			yesNo(p.RemoteAllowed), orDash(p.Location), formatSkills(p.SkillsNeeded))
	}
	return tw.Flush()
}

// writeEmployeesTable prints employees as a table
func writeEmployeesTable(w io.Writer, employees []model.Employee) error {
	if len(employees) == 0 {
		_, err := fmt.Fprintln(w, "No employees found.")
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tCL\tLOCATION\tHOURS\tRATING\tSKILLS")
	fmt.Fprintln(tw, "--\t----\t--\t--------\t-----\t------\t------")
	for _, e := range employees {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d\t%.1f\t%s\n",
			e.ID, e.Name, e.CL, e.Location, e.AvailabilityHours, e.LastRating, formatSkills(e.Skills))
	}
	return tw.Flush()
}

// writeShortlist prints one project's shortlist and recommendation.
func writeShortlist(w io.Writer, s types.Shortlist) error {
	p := s.Project
	fmt.Fprintf(w, "Project %s: %s\n", p.ID, p.Role)
	fmt.Fprintf(w, "  Level:  CL %d (%s)\n", p.RequiredCL, model.CLLabel(p.RequiredCL))
	fmt.Fprintf(w, "  Hours:  %d/week\n", p.RequiredHours)
	if p.RemoteAllowed {
		fmt.Fprintln(w, "  Remote: yes")
	} else {
		fmt.Fprintf(w, "  Remote: no (%s)\n", orDash(p.Location))
	}
	fmt.Fprintf(w, "  Evaluated %d, eligible %d\n\n", s.Evaluated, s.Eligible)

	if s.Empty() {
		_, err := fmt.Fprintln(w, "No suitable candidates found.")
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "#\tID\tNAME\tCL\tSCORE\tCL FIT\tSKILLS\tAVAILABILITY\tPERFORMANCE")
	fmt.Fprintln(tw, "-\t--\t----\t--\t-----\t------\t------\t------------\t-----------")
	for i, c := range s.Candidates {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			i+1, c.ID, c.Name, c.CL, c.Score,
			c.Breakdown.CL, c.Breakdown.Skills, c.Breakdown.Availability, c.Breakdown.Performance)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	rec := s.Recommendation
	if rec == nil {
		return nil
	}
	fmt.Fprintf(w, "\nRecommended: %s (%s), %s confidence\n", rec.SelectedName, rec.SelectedID, rec.Confidence)
	fmt.Fprintf(w, "  %s\n", rec.Reasoning)
	if len(rec.TopicsToBrushUp) > 0 {
		fmt.Fprintf(w, "  Brush up: %s\n", strings.Join(rec.TopicsToBrushUp, ", "))
	}
	_, err := fmt.Fprintf(w, "  Knowledge transfer: %s\n", rec.KnowledgeTransferURL)
	return err
}
