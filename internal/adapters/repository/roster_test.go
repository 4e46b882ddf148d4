package repository_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	repository "pulpito/internal/adapters/repository"
	model "pulpito/internal/domain/model"
)

func mustDate(s string) model.Date {
	d, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRosterStore(t *testing.T) {
	Convey("Given a new roster store", t, func() {
		ctx := context.Background()

		Convey("When created empty", func() {
			store := repository.NewRosterStore()

			Convey("Then it holds nothing", func() {
				So(store.Count(ctx), ShouldEqual, 0)
				So(store.Snapshot(ctx), ShouldBeEmpty)
			})

			Convey("And Find reports not found", func() {
				_, err := store.Find(ctx, "ana souza")
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When seeded with an initial roster", func() {
			initial := model.Roster{
				{Name: "Ana Souza", Date: mustDate("2024-01-07")},
				{Name: "José Almeida", Date: mustDate("2024-01-14")},
			}
			store := repository.NewRosterStore(repository.WithInitial(initial))

			Convey("Then the records are present in order", func() {
				snap := store.Snapshot(ctx)
				So(snap, ShouldHaveLength, 2)
				So(snap[0].Name, ShouldEqual, "Ana Souza")
				So(snap[1].Name, ShouldEqual, "José Almeida")
			})

			Convey("And mutating the seed slice does not affect the store", func() {
				initial[0].Name = "Mutated"
				rec, err := store.Find(ctx, "ana souza")
				So(err, ShouldBeNil)
				So(rec.Name, ShouldEqual, "Ana Souza")
			})

			Convey("And Find matches on the canonical key", func() {
				rec, err := store.Find(ctx, "jose almeida")
				So(err, ShouldBeNil)
				So(rec.Name, ShouldEqual, "José Almeida")
			})
		})

		Convey("When upserting records", func() {
			store := repository.NewRosterStore()

			Convey("And the speaker is new", func() {
				appended := store.Upsert(ctx, model.Record{Name: "Ana Souza", Date: mustDate("2024-01-07")})

				Convey("Then the record is appended", func() {
					So(appended, ShouldBeTrue)
					So(store.Count(ctx), ShouldEqual, 1)
				})
			})

			Convey("And the speaker already exists under a variant spelling", func() {
				store.Upsert(ctx, model.Record{Name: "José Almeida", Date: mustDate("2024-01-07")})
				appended := store.Upsert(ctx, model.Record{Name: "Jose Almeida", Date: mustDate("2024-01-14")})

				Convey("Then the record is replaced in place", func() {
					So(appended, ShouldBeFalse)
					So(store.Count(ctx), ShouldEqual, 1)

					rec, err := store.Find(ctx, "jose almeida")
					So(err, ShouldBeNil)
					So(rec.Name, ShouldEqual, "Jose Almeida")
					So(rec.Date.String(), ShouldEqual, "2024-01-14")
				})
			})

			Convey("And replacement preserves the insertion position", func() {
				store.Upsert(ctx, model.Record{Name: "Ana Souza", Date: mustDate("2024-01-07")})
				store.Upsert(ctx, model.Record{Name: "Bruno Costa", Date: mustDate("2024-01-14")})
				store.Upsert(ctx, model.Record{Name: "Ana Souza", Date: mustDate("2024-02-04")})

				snap := store.Snapshot(ctx)
				So(snap[0].Name, ShouldEqual, "Ana Souza")
				So(snap[0].Date.String(), ShouldEqual, "2024-02-04")
				So(snap[1].Name, ShouldEqual, "Bruno Costa")
			})
		})

		Convey("When removing records", func() {
			store := repository.NewRosterStore(repository.WithInitial(model.Roster{
				{Name: "Ana Souza", Date: mustDate("2024-01-07")},
				{Name: "Bruno Costa", Date: mustDate("2024-01-14")},
			}))

			Convey("And the key exists", func() {
				err := store.Remove(ctx, "ana souza")

				Convey("Then the record is gone and order holds", func() {
					So(err, ShouldBeNil)
					So(store.Count(ctx), ShouldEqual, 1)
					So(store.Snapshot(ctx)[0].Name, ShouldEqual, "Bruno Costa")
				})
			})

			Convey("And the key does not exist", func() {
				err := store.Remove(ctx, "carla dias")

				Convey("Then not found is returned", func() {
					So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
					So(store.Count(ctx), ShouldEqual, 2)
				})
			})
		})

		Convey("When snapshots are handed out", func() {
			store := repository.NewRosterStore(repository.WithInitial(model.Roster{
				{Name: "Ana Souza", Date: mustDate("2024-01-07")},
			}))
			snap := store.Snapshot(ctx)
			snap[0].Name = "Mutated"

			Convey("Then the store is isolated from the caller", func() {
				rec, err := store.Find(ctx, "ana souza")
				So(err, ShouldBeNil)
				So(rec.Name, ShouldEqual, "Ana Souza")
			})
		})

		Convey("When accessed concurrently", func() {
			store := repository.NewRosterStore()
			var wg sync.WaitGroup
			for i := 0; i < 20; i++ {
				wg.Add(1)
				go func(n int) {
					defer wg.Done()
					store.Upsert(ctx, model.Record{
						Name: fmt.Sprintf("Speaker %d", n),
						Date: mustDate("2024-01-07"),
					})
					store.Snapshot(ctx)
				}(i)
			}
			wg.Wait()

			Convey("Then every record lands exactly once", func() {
				So(store.Count(ctx), ShouldEqual, 20)
			})
		})
	})
}
