package shopping_test

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"sehrimilan/internal/planparser"
	"sehrimilan/internal/shopping"
)

func TestCategorize(t *testing.T) {
	tests := map[string]shopping.Category{
		"Fresh Chicken Breast": shopping.CategoryMeat,
		"Mixed Vegetables":     shopping.CategoryProduce,
		"Olive Oil":            shopping.CategoryGrocery,
		"Dried fruit mix":      shopping.CategoryProduce,
		"Veggie chicken stock": shopping.CategoryProduce,
		"Minced MEAT":          shopping.CategoryMeat,
	}
	for label, want := range tests {
		if got := shopping.Categorize(label); got != want {
			t.Errorf("Categorize(%q) = %s, want %s", label, got, want)
		}
	}
}

func TestFromExtracted_Sample(t *testing.T) {
	raw := "# Day 1\n## Shopping List\n- Dates\n- dates \n# Day 2\n## Shopping List\n- Rice"
	now := time.UnixMilli(1700000000000)

	items := planparser.New(planparser.Options{}).ExtractShoppingItems(raw)
	got := shopping.FromExtracted(items, now)

	want := []shopping.Entry{
		{ID: "item-2-1700000000000", Name: "Dates", Day: "Day 1", Category: shopping.CategoryGrocery},
		{ID: "item-6-1700000000000", Name: "Rice", Day: "Day 2", Category: shopping.CategoryGrocery},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestFromExtracted_UniqueAndIdempotent(t *testing.T) {
	raw := strings.Join([]string{
		"Intro",
		"## Shopping",
		"- Milk",
		"# Day 1",
		"## Shopping List",
		"-  milk ",
		"- Mango fruit",
		"- MILK",
		"## Day 2",
		"**Shopping**",
		"- Chicken thighs",
		"- mango FRUIT",
	}, "\n")
	svc := planparser.New(planparser.Options{})

	first := shopping.FromExtracted(svc.ExtractShoppingItems(raw), time.Now())
	second := shopping.FromExtracted(svc.ExtractShoppingItems(raw), time.Now())

	seen := map[string]bool{}
	for _, e := range first {
		key := strings.ToLower(strings.TrimSpace(e.Name))
		if seen[key] {
			t.Fatalf("duplicate label %q", e.Name)
		}
		seen[key] = true
	}

	strip := func(es []shopping.Entry) []shopping.Entry {
		out := shopping.Clone(es)
		for i := range out {
			out[i].ID = ""
		}
		return out
	}
	if diff := cmp.Diff(strip(first), strip(second)); diff != "" {
		t.Errorf("second run differs (-first +second):\n%s", diff)
	}
	if len(first) != 3 || first[0].Day != planparser.GlobalDay {
		t.Errorf("unexpected entries: %+v", first)
	}
}

func TestDedupe(t *testing.T) {
	in := []shopping.Entry{
		{ID: "a", Name: "Dates"},
		{ID: "b", Name: " dates"},
		{ID: "c", Name: "Rice"},
	}

	out, removed := shopping.Dedupe(in)
	if !removed {
		t.Fatal("expected duplicates to be reported")
	}
	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "c" {
		t.Errorf("unexpected result: %+v", out)
	}
	if len(in) != 3 {
		t.Error("input was modified")
	}

	if _, removed := shopping.Dedupe(out); removed {
		t.Error("clean list reported duplicates")
	}
}

func TestToggle_OnlyTarget(t *testing.T) {
	in := shopping.DemoEntries()

	out, err := shopping.Toggle(in, "demo-3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range in {
		want := in[i]
		if want.ID == "demo-3" {
			want.Completed = !want.Completed
		}
		if diff := cmp.Diff(want, out[i]); diff != "" {
			t.Errorf("entry %d mismatch (-want +got):\n%s", i, diff)
		}
	}
	if in[2].Completed {
		t.Error("input slice was mutated")
	}

	if _, err := shopping.Toggle(in, "missing"); err != shopping.ErrItemNotFound {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	in := shopping.DemoEntries()

	out, err := shopping.Remove(in, "demo-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(in[1:], out); diff != "" {
		t.Errorf("unexpected list (-want +got):\n%s", diff)
	}

	if _, err := shopping.Remove(in, "nope"); err != shopping.ErrItemNotFound {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestNewManual(t *testing.T) {
	e, err := shopping.NewManual("  Dates  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(e.ID, "manual-") || e.Name != "Dates" || e.Day != shopping.ManualDay || e.Category != shopping.CategoryPersonal {
		t.Errorf("unexpected entry: %+v", e)
	}

	if _, err := shopping.NewManual("   "); err != shopping.ErrEmptyName {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}

	list := shopping.Prepend([]shopping.Entry{{ID: "x", Name: "dates"}}, e)
	if len(list) != 2 || list[0].ID != e.ID {
		t.Errorf("manual entry not prepended: %+v", list)
	}
}

func TestShareText(t *testing.T) {
	text := shopping.ShareText(shopping.DemoEntries()[:2], "Aisha")

	want := "*SehriMilan - Ramadan Shopping List* 🌙\n\n" +
		"*Pending Items:*\n• Premium Dates (Kimia) (Day 1)\n\n" +
		"*Completed:*\n✓ Lentils (Red & Yellow)\n\n" +
		"_Generated for Aisha by SehriMilan_"
	if text != want {
		t.Errorf("share text mismatch:\n got %q\nwant %q", text, want)
	}

	empty := shopping.ShareText(nil, "User")
	if !strings.Contains(empty, "*Pending Items:*\nNone") || !strings.Contains(empty, "*Completed:*\nNone") {
		t.Errorf("empty list should say None: %q", empty)
	}
}

func TestShareURL(t *testing.T) {
	link := shopping.ShareURL("a b+c&d")

	if link != "https://wa.me/?text=a%20b%2Bc%26d" {
		t.Errorf("unexpected link %q", link)
	}
	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := u.Query().Get("text"); got != "a b+c&d" {
		t.Errorf("round trip = %q", got)
	}
}
