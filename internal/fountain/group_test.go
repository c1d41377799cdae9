package fountain

import "testing"

func TestGroupBySetup_Partition(t *testing.T) {
	blocks := []Block{
		{Setup: Setup{Letter: "B", Description: "close"}, SceneNumber: 2, ContentLines: []string{"b2"}},
		{Setup: Setup{Letter: "A", Description: "wide"}, SceneNumber: 1, ContentLines: []string{"a1"}},
		{Setup: Setup{Letter: "A", Description: "wide"}, SceneNumber: 3, ContentLines: []string{"a3"}},
	}

	groups := GroupBySetup(blocks)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	if total != len(blocks) {
		t.Errorf("groups hold %d blocks, want %d (partition)", total, len(blocks))
	}
}

func TestGroupBySetup_SortedBySceneNumber(t *testing.T) {
	blocks := []Block{
		{Setup: Setup{Letter: "A"}, SceneNumber: 9, ContentLines: []string{"late"}},
		{Setup: Setup{Letter: "A"}, SceneNumber: 2, ContentLines: []string{"early"}},
		{Setup: Setup{Letter: "A"}, SceneNumber: 5, ContentLines: []string{"mid"}},
	}

	g := GroupBySetup(blocks)["A"]
	want := []int{2, 5, 9}
	for i, b := range g {
		if b.SceneNumber != want[i] {
			t.Errorf("g[%d].SceneNumber = %d, want %d", i, b.SceneNumber, want[i])
		}
	}
}

func TestGroupBySetup_StableForEqualSceneNumbers(t *testing.T) {
	blocks := []Block{
		{Setup: Setup{Letter: "A"}, SceneNumber: 3, ContentLines: []string{"first"}},
		{Setup: Setup{Letter: "A"}, SceneNumber: 3, ContentLines: []string{"second"}},
		{Setup: Setup{Letter: "A"}, SceneNumber: 3, ContentLines: []string{"third"}},
	}

	g := GroupBySetup(blocks)["A"]
	want := []string{"first", "second", "third"}
	for i, b := range g {
		if b.ContentLines[0] != want[i] {
			t.Errorf("g[%d] = %q, want %q (stable order)", i, b.ContentLines[0], want[i])
		}
	}
}

func TestGroupBySetup_LetterOnlyKey(t *testing.T) {
	// Same letter, different descriptions: one group, per-block descriptions kept.
	blocks := []Block{
		{Setup: Setup{Letter: "A", Description: "wide"}, SceneNumber: 1, ContentLines: []string{"x"}},
		{Setup: Setup{Letter: "A", Description: "handheld"}, SceneNumber: 2, ContentLines: []string{"y"}},
	}

	groups := GroupBySetup(blocks)
	g, ok := groups["A"]
	if !ok || len(groups) != 1 {
		t.Fatalf("got %d groups, want 1 keyed by letter A", len(groups))
	}
	if len(g) != 2 {
		t.Fatalf("group A has %d blocks, want 2", len(g))
	}
	if g[0].Setup.Description != "wide" || g[1].Setup.Description != "handheld" {
		t.Errorf("descriptions = %q, %q; want wide, handheld", g[0].Setup.Description, g[1].Setup.Description)
	}
}

func TestGroupBySetup_Empty(t *testing.T) {
	if groups := GroupBySetup(nil); len(groups) != 0 {
		t.Errorf("got %d groups for no blocks, want 0", len(groups))
	}
}
