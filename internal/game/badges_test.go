package game

import "testing"

func TestBadgeTableIsConsistent(t *testing.T) {
	seen := map[BadgeID]bool{}
	for _, def := range Badges {
		if seen[def.ID] {
			t.Fatalf("duplicate badge id %s", def.ID)
		}
		seen[def.ID] = true
		if def.Requirement <= 0 {
			t.Fatalf("badge %s has non-positive requirement", def.ID)
		}
		if def.Category != BadgeDaily && def.Category != BadgePermanent {
			t.Fatalf("badge %s has category %q", def.ID, def.Category)
		}
	}
	if len(DailyBadgeIDs()) != 7 {
		t.Fatalf("daily badge count = %d, want 7", len(DailyBadgeIDs()))
	}
}

func TestEvaluateBadgesIsSetIdempotent(t *testing.T) {
	p := NewPlayerProgress(noon)
	p.BadgeProgress[BadgeStreakMaster] = 7

	first := evaluateBadges(&p)
	if len(first) != 1 || first[0] != BadgeStreakMaster {
		t.Fatalf("first pass = %v, want [streak_master]", first)
	}

	second := evaluateBadges(&p)
	if len(second) != 0 {
		t.Fatalf("second pass = %v, want none", second)
	}
	if len(p.Badges) != 1 {
		t.Fatalf("badge set = %v, want one entry", p.Badges)
	}
}

func TestClaimRewards(t *testing.T) {
	p := NewPlayerProgress(noon)
	p.Level = 10
	evaluateRewards(&p)
	if len(p.UnlockedRewards) != 2 {
		t.Fatalf("unlocked = %v, want theme_unlock and advanced_analytics", p.UnlockedRewards)
	}

	out, claimed := ClaimRewards(p)
	if len(claimed) != 2 {
		t.Fatalf("claimed = %v", claimed)
	}
	if len(out.UnlockedRewards) != 0 || len(out.ClaimedRewards) != 2 {
		t.Fatalf("post-claim sets = %v / %v", out.UnlockedRewards, out.ClaimedRewards)
	}

	// A claimed reward never re-unlocks.
	if again := evaluateRewards(&out); len(again) != 0 {
		t.Fatalf("claimed reward re-unlocked: %v", again)
	}
}
