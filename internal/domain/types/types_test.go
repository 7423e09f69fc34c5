package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/okian/staffer/internal/domain/eligibility"
	"github.com/okian/staffer/internal/domain/model"
	"github.com/okian/staffer/internal/domain/recommend"
	"github.com/okian/staffer/internal/domain/staffing"
	types "github.com/okian/staffer/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewShortlist(t *testing.T) {
	Convey("Given an engine report with two candidates", t, func() {
		p := model.Project{ID: "P101", Role: "Fullstack Developer"}
		report := staffing.Report{
			Shortlist: []model.ScoredCandidate{
				{ID: "E001", Name: "Ravi Khanna", CL: 8, Score: 88},
				{ID: "E006", Name: "Sneha Iyer", CL: 10, Score: 66},
			},
			Evaluated: 8,
			Eligible:  4,
			Rejected: map[eligibility.Reason]int{
				eligibility.ReasonSeniorityGap: 2,
				eligibility.ReasonAvailability: 2,
			},
		}
		rec := &recommend.Recommendation{SelectedID: "E001"}
		at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("IST", 19800))

		s := types.NewShortlist(p, report, rec, at)

		Convey("Then the counts and candidates should be carried over", func() {
			So(s.Project.ID, ShouldEqual, "P101")
			So(s.Candidates, ShouldHaveLength, 2)
			So(s.Evaluated, ShouldEqual, 8)
			So(s.Eligible, ShouldEqual, 4)
			So(s.Recommendation.SelectedID, ShouldEqual, "E001")
		})

		Convey("And rejection reasons should be keyed by name", func() {
			So(s.Rejected, ShouldResemble, map[string]int{"seniority_gap": 2, "availability_shortfall": 2})
		})

		Convey("And the timestamp should be normalized to UTC", func() {
			So(s.GeneratedAt.Location(), ShouldEqual, time.UTC)
			So(s.GeneratedAt.Equal(at), ShouldBeTrue)
		})

		Convey("And Top should return the best candidate", func() {
			top, ok := s.Top()
			So(ok, ShouldBeTrue)
			So(top.ID, ShouldEqual, "E001")
		})

		Convey("And the JSON shape should use the published field names", func() {
			raw, err := json.Marshal(s)
			So(err, ShouldBeNil)
			var m map[string]interface{}
			So(json.Unmarshal(raw, &m), ShouldBeNil)
			So(m, ShouldContainKey, "shortlistedCandidates")
			So(m, ShouldContainKey, "recommendation")
			So(m, ShouldContainKey, "project")
		})
	})

	Convey("Given a report with nobody eligible", t, func() {
		s := types.NewShortlist(model.Project{ID: "P1"}, staffing.Report{Evaluated: 3}, nil, time.Now())

		Convey("Then the shortlist should be empty but not nil", func() {
			So(s.Empty(), ShouldBeTrue)
			So(s.Candidates, ShouldNotBeNil)
			_, ok := s.Top()
			So(ok, ShouldBeFalse)
		})

		Convey("And the recommendation should be omitted from JSON", func() {
			raw, err := json.Marshal(s)
			So(err, ShouldBeNil)
			So(string(raw), ShouldNotContainSubstring, "recommendation")
			So(string(raw), ShouldContainSubstring, `"shortlistedCandidates":[]`)
		})
	})
}
