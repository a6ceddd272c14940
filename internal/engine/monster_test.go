package engine

import "testing"

func TestAdvanceMonstersAdjacentCaptures(t *testing.T) {
	g, p := setupLevel(t,
		"---",
		"-oM",
		"--!",
	)

	if !AdvanceMonsters(g, p) {
		t.Error("AdvanceMonsters() = false, want capture")
	}
	assertLayout(t, g,
		"---",
		"-M-",
		"--!",
	)
}

func TestAdvanceMonstersStepsCloser(t *testing.T) {
	g, p := setupLevel(t,
		"--M--",
		"-----",
		"M-o-M",
		"-----",
		"--M-!",
	)

	if AdvanceMonsters(g, p) {
		t.Error("AdvanceMonsters() = true, want no capture")
	}
	assertLayout(t, g,
		"-----",
		"--M--",
		"-MoM-",
		"--M--",
		"----!",
	)
}

func TestAdvanceMonstersPillarBlocksSight(t *testing.T) {
	g, p := setupLevel(t,
		"M",
		"+",
		"-",
		"o",
		"!",
	)

	if AdvanceMonsters(g, p) {
		t.Error("AdvanceMonsters() = true, want no capture")
	}
	assertLayout(t, g, "M", "+", "-", "o", "!")
}

func TestAdvanceMonstersStopsAtFirstPillar(t *testing.T) {
	g, p := setupLevel(t, "o-M-+-M!")

	AdvanceMonsters(g, p)
	assertLayout(t, g, "oM--+-M!")
}

func TestAdvanceMonstersQueueOnRay(t *testing.T) {
	g, p := setupLevel(t, "!oMM-M")

	if !AdvanceMonsters(g, p) {
		t.Error("AdvanceMonsters() = false, want capture")
	}
	assertLayout(t, g, "!MM-M-")
}

func TestAdvanceMonstersNoMonsters(t *testing.T) {
	g, p := setupLevel(t,
		"$-@",
		"-o-",
		"?-!",
	)

	if AdvanceMonsters(g, p) {
		t.Error("AdvanceMonsters() = true on a level without monsters")
	}
	assertLayout(t, g, "$-@", "-o-", "?-!")
}

func TestAdvanceMonstersChecksAfterAllRays(t *testing.T) {
	g, p := setupLevel(t,
		"-M-",
		"Mo-",
		"--!",
	)

	if !AdvanceMonsters(g, p) {
		t.Error("AdvanceMonsters() = false, want capture")
	}
	// Both monsters moved onto the player's cell; the left ray still ran
	// after the upward one had already arrived.
	assertLayout(t, g,
		"---",
		"-M-",
		"--!",
	)
}
