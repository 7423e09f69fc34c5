package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	repository "github.com/okian/staffer/internal/adapters/repository"
	service "github.com/okian/staffer/internal/app"
	"github.com/okian/staffer/internal/domain/model"
	"github.com/okian/staffer/internal/domain/recommend"
	"github.com/okian/staffer/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

// failingStore serves projects but fails to list employees.
type failingStore struct {
	repository.Store
	err error
}

func (f failingStore) Employees(context.Context) ([]model.Employee, error) {
	return nil, f.err
}

func startedService(opts ...service.Option) *service.Service {
	svc := service.New(opts...)
	So(svc.Start(context.Background()), ShouldBeNil)
	return svc
}

func TestService_Lifecycle(t *testing.T) {
	Convey("Given a new service", t, func() {
		svc := service.New(service.WithBatchConcurrency(2))
		defer svc.Stop()

		Convey("When it has not been started", func() {
			_, err := svc.Staff(context.Background(), "P101", false)

			Convey("Then staffing should fail with ErrNotStarted", func() {
				So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
				So(svc.GetStats()["started"], ShouldEqual, false)
			})
		})

		Convey("When starting the service", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			err := svc.Start(ctx)

			Convey("Then it should start with the embedded catalog", func() {
				So(err, ShouldBeNil)
				stats := svc.GetStats()
				So(stats["started"], ShouldEqual, true)
				So(stats["projects"], ShouldEqual, 5)
				So(stats["employees"], ShouldEqual, 8)
				So(stats["batchConcurrency"], ShouldEqual, 2)
			})

			Convey("And starting twice should be a no-op", func() {
				So(svc.Start(ctx), ShouldBeNil)
			})

			Convey("And stopping should mark it stopped", func() {
				svc.Stop()
				So(svc.GetStats()["started"], ShouldEqual, false)
			})
		})

		Convey("When the catalog file is missing", func() {
			bad := service.New(service.WithCatalogPath("/non/existent/catalog.yaml"))
			err := bad.Start(context.Background())

			Convey("Then Start should fail", func() {
				So(err, ShouldNotBeNil)
				So(bad.GetStats()["started"], ShouldEqual, false)
			})
		})
	})
}

func TestService_Staff(t *testing.T) {
	Convey("Given a started service over the demo catalog", t, func() {
		fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		svc := startedService(service.WithClock(func() time.Time { return fixed }))
		defer svc.Stop()
		ctx := context.Background()

		Convey("When staffing the fullstack project", func() {
			s, err := svc.Staff(ctx, "P101", false)

			Convey("Then the shortlist should be ranked by score", func() {
				So(err, ShouldBeNil)
				ids := make([]string, len(s.Candidates))
				scores := make([]int, len(s.Candidates))
				for i, c := range s.Candidates {
					ids[i] = c.ID
					scores[i] = c.Score
				}
				So(ids, ShouldResemble, []string{"E001", "E006", "E007", "E002"})
				So(scores, ShouldResemble, []int{88, 66, 62, 61})
			})

			Convey("And the report counts should be filled in", func() {
				So(s.Evaluated, ShouldEqual, 8)
				So(s.Eligible, ShouldEqual, 4)
				So(s.Rejected, ShouldResemble, map[string]int{"seniority_gap": 2, "availability_shortfall": 2})
				So(s.GeneratedAt, ShouldEqual, fixed)
			})

			Convey("And the recommendation should pick the top candidate", func() {
				So(s.Recommendation, ShouldNotBeNil)
				So(s.Recommendation.SelectedID, ShouldEqual, "E001")
				So(s.Recommendation.SelectedName, ShouldEqual, "Ravi Khanna")
				So(s.Recommendation.Confidence, ShouldEqual, recommend.ConfidenceHigh)
				So(s.Recommendation.TopicsToBrushUp, ShouldResemble, []string{"Advanced AWS", "Advanced Node", "Advanced React"})
				So(s.Recommendation.KnowledgeTransferURL, ShouldEqual, "https://docs.example.com/kt/fullstack-platform-overview")
				So(s.Recommendation.Reasoning, ShouldStartWith, "Based on the analysis")
			})
		})

		Convey("When staffing in demo mode", func() {
			s, err := svc.Staff(ctx, "P104", true)

			Convey("Then the reasoning should quote the engine's numbers", func() {
				So(err, ShouldBeNil)
				So(s.Candidates[0].ID, ShouldEqual, "E007")
				So(s.Candidates[0].Score, ShouldEqual, 96)
				So(s.Recommendation.Reasoning, ShouldEqual,
					"Demo mode: Hard filters matched 3 candidates. Rahul Gupta (CL 9) is ranked #1 with a score of 96. Skills match: 100/100, Availability: 85/100.")
			})
		})

		Convey("When staffing an unknown project", func() {
			_, err := svc.Staff(ctx, "P999", false)

			Convey("Then ErrNotFound should be returned", func() {
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})

			Convey("And the outcome should be counted", func() {
				requests := svc.GetStats()["requests"].(map[string]int)
				So(requests[service.OutcomeNotFound], ShouldEqual, 1)
			})
		})

		Convey("When listing the catalog", func() {
			projects, err1 := svc.Projects(ctx)
			employees, err2 := svc.Employees(ctx)
			p, err3 := svc.Project(ctx, "P103")

			Convey("Then the catalog should be served", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(err3, ShouldBeNil)
				So(projects, ShouldHaveLength, 5)
				So(employees, ShouldHaveLength, 8)
				So(p.Location, ShouldEqual, "Bangalore")
			})
		})
	})
}

func TestService_EmptyShortlist(t *testing.T) {
	Convey("Given a catalog where nobody qualifies", t, func() {
		store, err := repository.NewMemoryStore(repository.Catalog{
			Projects: []model.Project{{ID: "P1", Role: "Staff Engineer", RequiredCL: 5, RequiredHours: 40, RemoteAllowed: true}},
			Employees: []model.Employee{
				{ID: "E1", Name: "Junior", CL: 9, AvailabilityHours: 40, LastRating: 4},
				{ID: "E2", Name: "Busy", CL: 5, AvailabilityHours: 10, LastRating: 4},
			},
		})
		So(err, ShouldBeNil)
		svc := startedService(service.WithStore(store))
		defer svc.Stop()

		Convey("When staffing the project", func() {
			s, err := svc.Staff(context.Background(), "P1", false)

			Convey("Then an empty shortlist without recommendation is returned", func() {
				So(err, ShouldBeNil)
				So(s.Empty(), ShouldBeTrue)
				So(s.Candidates, ShouldNotBeNil)
				So(s.Recommendation, ShouldBeNil)
				So(s.Rejected, ShouldResemble, map[string]int{"seniority_gap": 1, "availability_shortfall": 1})
			})
		})
	})
}

func TestService_StoreFailure(t *testing.T) {
	Convey("Given a store that cannot list employees", t, func() {
		base, err := repository.NewDefaultStore()
		So(err, ShouldBeNil)
		boom := errors.New("boom")
		svc := startedService(service.WithStore(failingStore{Store: base, err: boom}))
		defer svc.Stop()

		Convey("Then Staff should return the store error", func() {
			_, err := svc.Staff(context.Background(), "P101", false)
			So(errors.Is(err, boom), ShouldBeTrue)
		})

		Convey("Then StaffAll should return the store error", func() {
			_, err := svc.StaffAll(context.Background())
			So(errors.Is(err, boom), ShouldBeTrue)
		})
	})
}

func TestService_Thresholds(t *testing.T) {
	Convey("Given a service with strict confidence thresholds", t, func() {
		svc := startedService(
			service.WithConfidenceThresholds(95, 90),
			service.WithKnowledgeTransferURL("https://wiki.example.com/kt"),
		)
		defer svc.Stop()

		Convey("When the top score is 88", func() {
			s, err := svc.Staff(context.Background(), "P101", false)

			Convey("Then confidence should be low", func() {
				So(err, ShouldBeNil)
				So(s.Recommendation.Confidence, ShouldEqual, recommend.ConfidenceLow)
			})
		})
	})
}

func TestDemoCatalogScenarios(t *testing.T) {
	type ranked struct {
		id    string
		score int
	}
	cases := []struct {
		project string
		want    []ranked
	}{
		{"P101", []ranked{{"E001", 88}, {"E006", 66}, {"E007", 62}, {"E002", 61}}},
		{"P102", []ranked{{"E002", 89}, {"E006", 51}}},
		{"P103", []ranked{{"E001", 65}, {"E007", 53}}},
		{"P104", []ranked{{"E007", 96}, {"E001", 57}, {"E006", 45}}},
		{"P105", []ranked{{"E004", 89}, {"E002", 50}}},
	}

	Convey("Given a service over the embedded catalog", t, func() {
		svc := startedService()
		defer svc.Stop()
		ctx := context.Background()

		for _, tc := range cases {
			tc := tc
			Convey("When staffing "+tc.project, func() {
				s, err := svc.Staff(ctx, tc.project, false)
				So(err, ShouldBeNil)

				Convey("Then the shortlist should match the published ranking", func() {
					So(len(s.Candidates), ShouldEqual, len(tc.want))
					for i, w := range tc.want {
						So(s.Candidates[i].ID, ShouldEqual, w.id)
						So(s.Candidates[i].Score, ShouldEqual, w.score)
					}
					So(s.Recommendation.SelectedID, ShouldEqual, tc.want[0].id)
				})
			})
		}
	})
}
