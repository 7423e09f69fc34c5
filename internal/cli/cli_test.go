package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/staffer/internal/domain/model"
	"github.com/okian/staffer/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

const sparseCatalog = `
employees:
  - { id: E9, name: Solo, cl: 12, location: Pune, availability_hours: 10, last_rating: 3, skills: { Go: 5 } }
projects:
  - { id: Q1, role: Platform Lead, required_cl: 8, required_hours: 40, remote_allowed: false, location: Berlin, skills_needed: { Go: 8 } }
`

// run executes staffctl with args and returns stdout.
func run(args ...string) (string, error) {
	for _, key := range []string{"STAFFER_CONFIG", "STAFFER_CATALOG_PATH", "STAFFER_BATCH_CONCURRENCY"} {
		_ = os.Unsetenv(key)
	}

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestProjectsCommand(t *testing.T) {
	Convey("Given the embedded catalog", t, func() {
		Convey("When projects are listed as a table", func() {
			out, err := run("projects")

			Convey("Then every project should be printed with a header", func() {
				So(err, ShouldBeNil)
				So(out, ShouldContainSubstring, "ROLE")
				for _, id := range []string{"P101", "P102", "P103", "P104", "P105"} {
					So(out, ShouldContainSubstring, id)
				}
				So(out, ShouldContainSubstring, "AWS:6 Node:7 React:7")
			})
		})

		Convey("When projects are listed as JSON", func() {
			out, err := run("projects", "-o", "json")
			So(err, ShouldBeNil)

			var projects []model.Project
			So(json.Unmarshal([]byte(out), &projects), ShouldBeNil)

			Convey("Then the catalog order should be kept", func() {
				So(len(projects), ShouldEqual, 5)
				So(projects[0].ID, ShouldEqual, "P101")
				So(projects[4].ID, ShouldEqual, "P105")
			})
		})
	})
}

func TestEmployeesCommand(t *testing.T) {
	Convey("Given the embedded catalog", t, func() {
		Convey("When employees are listed as JSON", func() {
			out, err := run("employees", "--output", "json")
			So(err, ShouldBeNil)

			var employees []model.Employee
			So(json.Unmarshal([]byte(out), &employees), ShouldBeNil)

			Convey("Then every employee should be returned", func() {
				So(len(employees), ShouldEqual, 8)
				So(employees[0].ID, ShouldEqual, "E001")
			})
		})

		Convey("When employees are listed as a table", func() {
			out, err := run("employees")

			Convey("Then remote employees should show their location", func() {
				So(err, ShouldBeNil)
				So(out, ShouldContainSubstring, "RATING")
				So(out, ShouldContainSubstring, model.RemoteLocation)
			})
		})
	})
}

func TestShortlistCommand(t *testing.T) {
	Convey("Given the embedded catalog", t, func() {
		Convey("When P101 is shortlisted as a table", func() {
			out, err := run("shortlist", "P101")

			Convey("Then the ranked candidates and recommendation should be printed", func() {
				So(err, ShouldBeNil)
				So(out, ShouldContainSubstring, "Project P101")
				So(out, ShouldContainSubstring, "CL 10 (Senior Analyst / Senior Software Engineer)")
				So(out, ShouldContainSubstring, "Evaluated 8, eligible 4")
				So(out, ShouldContainSubstring, "E001")
				So(out, ShouldContainSubstring, "Recommended:")
				So(out, ShouldContainSubstring, "(E001), high confidence")
			})
		})

		Convey("When P104 is shortlisted in demo mode as JSON", func() {
			out, err := run("shortlist", "P104", "--demo", "-o", "json")
			So(err, ShouldBeNil)

			var s types.Shortlist
			So(json.Unmarshal([]byte(out), &s), ShouldBeNil)

			Convey("Then the top candidate should match the engine result", func() {
				So(len(s.Candidates), ShouldEqual, 3)
				So(s.Candidates[0].ID, ShouldEqual, "E007")
				So(s.Candidates[0].Score, ShouldEqual, 96)
				So(s.Recommendation, ShouldNotBeNil)
				So(s.Recommendation.Reasoning, ShouldStartWith, "Demo mode:")
			})
		})

		Convey("When every project is shortlisted", func() {
			out, err := run("shortlist", "--all", "-o", "json")
			So(err, ShouldBeNil)

			var all []types.Shortlist
			So(json.Unmarshal([]byte(out), &all), ShouldBeNil)

			Convey("Then one shortlist per project should be returned in catalog order", func() {
				So(len(all), ShouldEqual, 5)
				So(all[0].Project.ID, ShouldEqual, "P101")
				top, ok := all[4].Top()
				So(ok, ShouldBeTrue)
				So(top.ID, ShouldEqual, "E004")
			})
		})

		Convey("When the project does not exist", func() {
			_, err := run("shortlist", "P999")

			Convey("Then the command should fail", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "not found")
			})
		})

		Convey("When neither an ID nor --all is given", func() {
			_, err := run("shortlist")

			Convey("Then the command should fail", func() {
				So(err, ShouldEqual, ErrMissingProject)
			})
		})

		Convey("When both an ID and --all are given", func() {
			_, err := run("shortlist", "P101", "--all")

			Convey("Then the command should fail", func() {
				So(err, ShouldEqual, ErrMissingProject)
			})
		})
	})

	Convey("Given a catalog file where nobody qualifies", t, func() {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		So(os.WriteFile(path, []byte(sparseCatalog), 0o600), ShouldBeNil)

		Convey("When the project is shortlisted", func() {
			out, err := run("--catalog", path, "shortlist", "Q1")

			Convey("Then an empty result should be reported without failing", func() {
				So(err, ShouldBeNil)
				So(out, ShouldContainSubstring, "No suitable candidates found.")
				So(out, ShouldContainSubstring, "Remote: no (Berlin)")
			})
		})
	})
}

func TestRootCommand(t *testing.T) {
	Convey("Given the root command", t, func() {
		Convey("When an unknown output format is requested", func() {
			_, err := run("projects", "-o", "yaml")

			Convey("Then the command should fail", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "unknown output format")
			})
		})

		Convey("When the catalog file does not exist", func() {
			_, err := run("projects", "--catalog", filepath.Join(t.TempDir(), "missing.yaml"))

			Convey("Then the command should fail", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When the version is requested", func() {
			SetVersionInfo("1.2.3", "abc123", "today")
			out, err := run("version")

			Convey("Then build information should be printed", func() {
				So(err, ShouldBeNil)
				So(out, ShouldContainSubstring, "staffctl 1.2.3")
				So(out, ShouldContainSubstring, "abc123")
			})
		})
	})
}
