package usecase

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"sehrimilan/internal/cache"
	"sehrimilan/internal/model"
	"sehrimilan/internal/planparser"
	"sehrimilan/internal/shopping"
	repo "sehrimilan/internal/shopping/repository"
)

const samplePlan = "# Day 1\n## Shopping List\n- Dates\n- dates \n# Day 2\n## Shopping List\n- Rice"

var user = model.Scope{UserID: "u1", DisplayName: "Aisha"}

type fixture struct {
	uc    *implUseCase
	lists *mockListRepo
	plans *mockPlanRepo
	cache cache.Cache
}

func newFixture() fixture {
	f := fixture{
		lists: newMockListRepo(),
		plans: &mockPlanRepo{plans: map[string]string{}},
		cache: cache.New(cache.Config{}),
	}
	f.uc = New(&mockLogger{}, f.lists, f.plans, planparser.New(planparser.Options{}), f.cache).(*implUseCase)
	f.uc.clock = func() time.Time { return time.UnixMilli(1700000000000) }
	return f
}

func names(entries []shopping.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("extracts from plan when no list is stored", func(t *testing.T) {
		f := newFixture()
		f.plans.plans["u1"] = samplePlan

		out, err := f.uc.Get(ctx, user, shopping.GetInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []shopping.Entry{
			{ID: "item-2-1700000000000", Name: "Dates", Day: "Day 1", Category: shopping.CategoryGrocery},
			{ID: "item-6-1700000000000", Name: "Rice", Day: "Day 2", Category: shopping.CategoryGrocery},
		}
		if diff := cmp.Diff(want, out.Entries); diff != "" {
			t.Errorf("entries mismatch (-want +got):\n%s", diff)
		}
		if out.Source != shopping.SourcePlan || len(f.lists.upserts) != 1 {
			t.Errorf("expected extracted list to be stored once, source=%s upserts=%d", out.Source, len(f.lists.upserts))
		}
	})

	t.Run("stored list wins over plan", func(t *testing.T) {
		f := newFixture()
		f.plans.plans["u1"] = samplePlan
		f.lists.lists["u1"] = []shopping.Entry{{ID: "x", Name: "Saffron"}}

		out, err := f.uc.Get(ctx, user, shopping.GetInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Source != shopping.SourceStore || len(out.Entries) != 1 || len(f.lists.upserts) != 0 {
			t.Errorf("unexpected result: %+v upserts=%d", out, len(f.lists.upserts))
		}
	})

	t.Run("duplicates in stored list are healed", func(t *testing.T) {
		f := newFixture()
		f.lists.lists["u1"] = []shopping.Entry{
			{ID: "a", Name: "Dates"},
			{ID: "b", Name: "DATES "},
			{ID: "c", Name: "Rice"},
		}

		out, err := f.uc.Get(ctx, user, shopping.GetInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff([]string{"Dates", "Rice"}, names(out.Entries)); diff != "" {
			t.Errorf("names mismatch (-want +got):\n%s", diff)
		}
		if len(f.lists.upserts) != 1 || len(f.lists.lists["u1"]) != 2 {
			t.Error("cleaned list was not written back")
		}
	})

	t.Run("refresh re-extracts", func(t *testing.T) {
		f := newFixture()
		f.plans.plans["u1"] = samplePlan
		f.lists.lists["u1"] = []shopping.Entry{{ID: "x", Name: "Saffron"}}

		out, err := f.uc.Get(ctx, user, shopping.GetInput{Refresh: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff([]string{"Dates", "Rice"}, names(out.Entries)); diff != "" {
			t.Errorf("names mismatch (-want +got):\n%s", diff)
		}
		if f.lists.gets != 0 {
			t.Error("refresh should not read the stored list")
		}
	})

	t.Run("empty stored list falls back to plan", func(t *testing.T) {
		f := newFixture()
		f.plans.plans["u1"] = samplePlan
		f.lists.lists["u1"] = []shopping.Entry{}

		out, _ := f.uc.Get(ctx, user, shopping.GetInput{})
		if out.Source != shopping.SourcePlan || len(out.Entries) != 2 {
			t.Errorf("unexpected result: %+v", out)
		}
	})

	t.Run("no plan and no list", func(t *testing.T) {
		f := newFixture()
		f.cache.Set(cache.KindShopping, "u1", []shopping.Entry{{ID: "old"}})

		out, err := f.uc.Get(ctx, user, shopping.GetInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Source != shopping.SourceNone || len(out.Entries) != 0 {
			t.Errorf("unexpected result: %+v", out)
		}
		if _, ok := f.cache.Get(cache.KindShopping, "u1"); ok {
			t.Error("stale cache entry left behind")
		}
		if len(f.lists.upserts) != 0 {
			t.Error("empty extraction should not be stored")
		}
	})

	t.Run("cached", func(t *testing.T) {
		f := newFixture()
		f.cache.Set(cache.KindShopping, "u1", []shopping.Entry{{ID: "c", Name: "Cached"}})

		out, err := f.uc.Get(ctx, user, shopping.GetInput{Cached: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Source != shopping.SourceCache || f.lists.gets != 0 {
			t.Errorf("expected cache hit, got %+v gets=%d", out, f.lists.gets)
		}
	})

	t.Run("demo", func(t *testing.T) {
		f := newFixture()
		out, _ := f.uc.Get(ctx, model.DemoScope(), shopping.GetInput{})
		if out.Source != shopping.SourceDemo || len(out.Entries) != 5 {
			t.Errorf("unexpected demo output: %+v", out)
		}
	})
}

func TestMutations(t *testing.T) {
	ctx := context.Background()

	seed := func() fixture {
		f := newFixture()
		f.lists.lists["u1"] = []shopping.Entry{
			{ID: "a", Name: "Dates", Day: "Day 1", Category: shopping.CategoryGrocery},
			{ID: "b", Name: "Rice", Day: "Day 2", Category: shopping.CategoryGrocery},
			{ID: "c", Name: "Chicken", Day: "Day 2", Category: shopping.CategoryMeat},
		}
		return f
	}

	t.Run("toggle writes the full list", func(t *testing.T) {
		f := seed()
		before := shopping.Clone(f.lists.lists["u1"])

		out, err := f.uc.Toggle(ctx, user, "b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := shopping.Clone(before)
		want[1].Completed = true
		if diff := cmp.Diff(want, out.Entries); diff != "" {
			t.Errorf("entries mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(want, f.lists.lists["u1"]); diff != "" {
			t.Errorf("stored list mismatch (-want +got):\n%s", diff)
		}
		cached, _ := f.cache.Get(cache.KindShopping, "u1")
		if diff := cmp.Diff(want, cached); diff != "" {
			t.Errorf("cached list mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("add prepends manual entry", func(t *testing.T) {
		f := seed()

		out, err := f.uc.Add(ctx, user, shopping.AddInput{Name: " dates "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Entries) != 4 || out.Entries[0].Name != "dates" || out.Entries[0].Category != shopping.CategoryPersonal {
			t.Errorf("unexpected list: %+v", out.Entries)
		}
	})

	t.Run("add rejects empty name", func(t *testing.T) {
		f := seed()
		if _, err := f.uc.Add(ctx, user, shopping.AddInput{Name: "  "}); !errors.Is(err, shopping.ErrEmptyName) {
			t.Errorf("expected ErrEmptyName, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		f := seed()
		out, err := f.uc.Delete(ctx, user, "a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff([]string{"Rice", "Chicken"}, names(out.Entries)); diff != "" {
			t.Errorf("names mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		f := seed()
		if _, err := f.uc.Toggle(ctx, user, "zzz"); !errors.Is(err, shopping.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
		if _, err := f.uc.Delete(ctx, user, "zzz"); !errors.Is(err, shopping.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
		if len(f.lists.upserts) != 0 {
			t.Error("failed mutation should not write")
		}
	})

	t.Run("store failure", func(t *testing.T) {
		f := seed()
		f.lists.upsertErr = repo.ErrFailedToUpsert
		if _, err := f.uc.Toggle(ctx, user, "a"); !errors.Is(err, repo.ErrFailedToUpsert) {
			t.Errorf("expected ErrFailedToUpsert, got %v", err)
		}
	})

	t.Run("demo is read-only", func(t *testing.T) {
		f := seed()
		if _, err := f.uc.Toggle(ctx, model.DemoScope(), "demo-1"); !errors.Is(err, shopping.ErrDemoReadOnly) {
			t.Errorf("expected ErrDemoReadOnly, got %v", err)
		}
	})
}

func TestShare(t *testing.T) {
	f := newFixture()
	f.lists.lists["u1"] = []shopping.Entry{
		{ID: "a", Name: "Dates", Day: "Day 1"},
		{ID: "b", Name: "Rice", Day: "Day 2", Completed: true},
	}

	out, err := f.uc.Share(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.Text, "• Dates (Day 1)") || !strings.Contains(out.Text, "✓ Rice") || !strings.Contains(out.Text, "_Generated for Aisha by SehriMilan_") {
		t.Errorf("unexpected text: %q", out.Text)
	}
	u, err := url.Parse(out.URL)
	if err != nil || u.Host != "wa.me" || u.Query().Get("text") != out.Text {
		t.Errorf("unexpected url %q", out.URL)
	}
}

func TestMutations_KeepManualDuplicates(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.plans.plans["u1"] = "# Day 1\n## Shopping List\n- Dates\n- Rice"

	got, err := f.uc.Get(ctx, user, shopping.GetInput{})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	dates := got.Entries[0]

	added, err := f.uc.Add(ctx, user, shopping.AddInput{Name: "rice"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	manual := added.Entries[0]
	if diff := cmp.Diff([]string{"rice", "Dates", "Rice"}, names(added.Entries)); diff != "" {
		t.Fatalf("after add (-want +got):\n%s", diff)
	}

	t.Run("toggle leaves the others alone", func(t *testing.T) {
		out, err := f.uc.Toggle(ctx, user, dates.ID)
		if err != nil {
			t.Fatalf("Toggle: %v", err)
		}
		want := shopping.Clone(added.Entries)
		want[1].Completed = true
		if diff := cmp.Diff(want, out.Entries); diff != "" {
			t.Errorf("entries mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(want, f.lists.lists["u1"]); diff != "" {
			t.Errorf("stored list mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("delete removes only the manual entry", func(t *testing.T) {
		out, err := f.uc.Delete(ctx, user, manual.ID)
		if err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if diff := cmp.Diff([]string{"Dates", "Rice"}, names(out.Entries)); diff != "" {
			t.Errorf("names mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestGet_ListOlderThanPlan(t *testing.T) {
	ctx := context.Background()
	planAt := time.UnixMilli(1700000000000)

	seed := func(listAt time.Time) fixture {
		f := newFixture()
		f.plans.plans["u1"] = samplePlan
		f.plans.updated = map[string]time.Time{"u1": planAt}
		f.lists.lists["u1"] = []shopping.Entry{{ID: "old", Name: "Saffron", Day: "Day 1", Category: shopping.CategoryGrocery}}
		f.lists.updated["u1"] = listAt
		f.lists.now = planAt.Add(time.Second)
		return f
	}

	t.Run("stale list is rebuilt from the plan", func(t *testing.T) {
		f := seed(planAt.Add(-time.Minute))

		out, err := f.uc.Get(ctx, user, shopping.GetInput{})
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if out.Source != shopping.SourcePlan {
			t.Errorf("source = %s, want %s", out.Source, shopping.SourcePlan)
		}
		if diff := cmp.Diff([]string{"Dates", "Rice"}, names(out.Entries)); diff != "" {
			t.Errorf("names mismatch (-want +got):\n%s", diff)
		}
		if f.lists.deletes != 1 {
			t.Errorf("deletes = %d, want 1", f.lists.deletes)
		}

		again, err := f.uc.Get(ctx, user, shopping.GetInput{})
		if err != nil || again.Source != shopping.SourceStore {
			t.Errorf("second Get source = %s, err = %v", again.Source, err)
		}
	})

	t.Run("newer list is kept", func(t *testing.T) {
		f := seed(planAt.Add(time.Minute))

		out, err := f.uc.Get(ctx, user, shopping.GetInput{})
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if out.Source != shopping.SourceStore || len(out.Entries) != 1 || out.Entries[0].Name != "Saffron" {
			t.Errorf("unexpected output %+v", out)
		}
		if f.lists.deletes != 0 {
			t.Errorf("deletes = %d, want 0", f.lists.deletes)
		}
	})

	t.Run("mutation applies to the rebuilt list", func(t *testing.T) {
		f := seed(planAt.Add(-time.Minute))

		if _, err := f.uc.Toggle(ctx, user, "old"); !errors.Is(err, shopping.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})
}
