package signs

import (
	"testing"
)

func TestRepository_CatalogComplete(t *testing.T) {
	repo := NewRepository()

	// 10 numbers, 25 fingerspelled letters (the pronoun owns I) and
	// the word/phrase catalog.
	if got := repo.Len(); got != 89 {
		t.Errorf("catalog size = %d, want 89", got)
	}

	for _, token := range []string{
		"0", "9", "A", "Z", "Hello", "Thank you", "Good Morning",
		"Good night", "How are you", "Today", "Sunday", "I", "Quiet",
	} {
		if !repo.Contains(token) {
			t.Errorf("catalog missing %q", token)
		}
	}
}

func TestRepository_LandmarkCount(t *testing.T) {
	repo := NewRepository()
	for _, token := range repo.Tokens() {
		def := repo.Get(token)
		for i, kf := range def.Keyframes {
			if len(kf.Right) != LandmarkCount {
				t.Errorf("%s keyframe %d right hand has %d landmarks", token, i, len(kf.Right))
			}
			if kf.Left != nil && len(kf.Left) != LandmarkCount {
				t.Errorf("%s keyframe %d left hand has %d landmarks", token, i, len(kf.Left))
			}
		}
	}
}

func TestRepository_TwoHandedKeyframes(t *testing.T) {
	repo := NewRepository()
	for _, token := range repo.Tokens() {
		def := repo.Get(token)
		if !def.TwoHands {
			continue
		}
		for i, kf := range def.Keyframes {
			if kf.Left == nil {
				t.Errorf("two-handed sign %s keyframe %d has no left hand", token, i)
			}
		}
	}
}

func TestRepository_UnknownTokenFallsBack(t *testing.T) {
	repo := NewRepository()

	def := repo.Get("no-such-sign")
	if def == nil {
		t.Fatal("Get returned nil for unknown token")
	}
	if def != repo.Fallback() {
		t.Error("unknown token did not return the fallback sign")
	}
	if len(def.Keyframes) == 0 || len(def.FirstPose()) != LandmarkCount {
		t.Error("fallback sign has no renderable pose")
	}
}

func TestRepository_AnimatedSignsHaveTwoKeyframes(t *testing.T) {
	repo := NewRepository()
	for _, token := range []string{"Hello", "Thank you", "Good Morning", "How are you", "Sad", "Door", "White", "Dream"} {
		def := repo.Get(token)
		if def.Type != TypeAnimated {
			t.Errorf("%s type = %s, want %s", token, def.Type, TypeAnimated)
		}
		if !def.Animated() {
			t.Errorf("%s should carry two keyframes", token)
		}
	}
}

func TestInterpolatePose(t *testing.T) {
	start := HandPose{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 1}}
	end := HandPose{{X: 1, Y: 1, Z: 1}, {X: 3, Y: 3, Z: 3}}

	mid := InterpolatePose(start, end, 0.5)
	if len(mid) != 2 {
		t.Fatalf("interpolated length = %d, want 2", len(mid))
	}
	if mid[0].X != 0.5 || mid[1].Y != 2 {
		t.Errorf("midpoint = %+v, want lerp at t=0.5", mid)
	}

	// Shorter input governs the output length.
	short := InterpolatePose(start[:1], end, 0.5)
	if len(short) != 1 {
		t.Errorf("mismatched lengths: got %d landmarks, want 1", len(short))
	}
}

func TestHandPose_MirrorX(t *testing.T) {
	p := HandPose{{X: 0.3, Y: 0.4, Z: 0.1}}
	m := p.MirrorX()
	if m[0].X != 0.7 {
		t.Errorf("mirrored X = %v, want 0.7", m[0].X)
	}
	if m[0].Y != 0.4 || m[0].Z != 0.1 {
		t.Error("mirror must not change Y or Z")
	}
	if p[0].X != 0.3 {
		t.Error("MirrorX mutated the source pose")
	}
}

func TestRepository_Interpolate(t *testing.T) {
	repo := NewRepository()

	// Hello slides 0.08 along X between keyframes.
	start := repo.Get("Hello").FirstPose()
	mid := repo.Interpolate("Hello", 0.5)
	want := start[Wrist].X + 0.04
	if diff := mid[Wrist].X - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("wrist X at t=0.5 = %v, want %v", mid[Wrist].X, want)
	}
}
