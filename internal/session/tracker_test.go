package session

import (
	"testing"

	"go.uber.org/zap"

	"github.com/mmtukut/Propabridge/internal/model"
)

func intPtr(v int) *int {
	return &v
}

func TestConfidence_Weights(t *testing.T) {
	budget := &model.Budget{Max: 10_000_000}

	tests := []struct {
		name string
		ctx  model.PreferenceContext
		want int
	}{
		{"empty", model.PreferenceContext{}, 0},
		{"location only", model.PreferenceContext{Location: "lekki"}, 30},
		{"budget only", model.PreferenceContext{Budget: budget}, 25},
		{"bedrooms only", model.PreferenceContext{Bedrooms: intPtr(3)}, 20},
		{"type only", model.PreferenceContext{Type: model.TypeApartment}, 15},
		{"lifestyle only", model.PreferenceContext{Lifestyle: []string{"quiet-area"}}, 10},
		{
			"location budget bedrooms",
			model.PreferenceContext{Location: "lekki", Budget: budget, Bedrooms: intPtr(3)},
			75,
		},
		{
			"everything",
			model.PreferenceContext{
				Location:  "lekki",
				Budget:    budget,
				Bedrooms:  intPtr(3),
				Type:      model.TypeApartment,
				Lifestyle: []string{"family-friendly"},
			},
			100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Confidence(tt.ctx); got != tt.want {
				t.Errorf("Confidence = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStageFor_Boundaries(t *testing.T) {
	tests := []struct {
		confidence int
		want       model.Stage
	}{
		{0, model.StageDiscovery},
		{50, model.StageDiscovery},
		{51, model.StageMatching},
		{80, model.StageMatching},
		{81, model.StageVerification},
		{100, model.StageVerification},
	}

	for _, tt := range tests {
		if got := StageFor(tt.confidence); got != tt.want {
			t.Errorf("StageFor(%d) = %q, want %q", tt.confidence, got, tt.want)
		}
	}
}

func TestTracker_FreshSession(t *testing.T) {
	tr := NewTracker(zap.NewNop())

	state := tr.GetOrCreate("s1")

	if state.SessionID != "s1" {
		t.Errorf("SessionID = %q, want s1", state.SessionID)
	}
	if state.Confidence != 0 {
		t.Errorf("Confidence = %d, want 0", state.Confidence)
	}
	if state.Stage != model.StageDiscovery {
		t.Errorf("Stage = %q, want discovery", state.Stage)
	}
	if state.Turns != 0 {
		t.Errorf("Turns = %d, want 0", state.Turns)
	}
	if len(state.PropertiesShown) != 0 {
		t.Errorf("PropertiesShown = %v, want empty", state.PropertiesShown)
	}
}

func TestTracker_UpdateAccumulates(t *testing.T) {
	tr := NewTracker(zap.NewNop())

	state := tr.Update("s1", model.PreferenceContext{Location: "lekki"})
	if state.Confidence != 30 || state.Stage != model.StageDiscovery {
		t.Fatalf("after turn 1: confidence=%d stage=%q", state.Confidence, state.Stage)
	}

	state = tr.Update("s1", model.PreferenceContext{
		Budget:   &model.Budget{Max: 10_000_000},
		Bedrooms: intPtr(3),
	})
	if state.Confidence != 75 {
		t.Errorf("after turn 2: confidence = %d, want 75", state.Confidence)
	}
	if state.Stage != model.StageMatching {
		t.Errorf("after turn 2: stage = %q, want matching", state.Stage)
	}
	if state.Context.Location != "lekki" {
		t.Errorf("earlier context lost: location = %q", state.Context.Location)
	}
	if state.Turns != 2 {
		t.Errorf("Turns = %d, want 2", state.Turns)
	}
}

func TestTracker_RepeatedMentionDoesNotInflateConfidence(t *testing.T) {
	tr := NewTracker(zap.NewNop())

	tr.Update("s1", model.PreferenceContext{Location: "lekki"})
	state := tr.Update("s1", model.PreferenceContext{Location: "lekki"})

	if state.Confidence != 30 {
		t.Errorf("confidence = %d after repeated location, want 30", state.Confidence)
	}
}

func TestTracker_StageNeverRegresses(t *testing.T) {
	tr := NewTracker(zap.NewNop())

	tr.Update("s1", model.PreferenceContext{
		Location: "lekki",
		Budget:   &model.Budget{Max: 10_000_000},
		Bedrooms: intPtr(3),
	})
	// A vague follow-up adds nothing; the stage must hold.
	state := tr.Update("s1", model.PreferenceContext{})

	if state.Stage != model.StageMatching {
		t.Errorf("stage regressed to %q", state.Stage)
	}
}

func TestTracker_RecordShownIdempotent(t *testing.T) {
	tr := NewTracker(zap.NewNop())

	tr.RecordShown("s1", "lekki_001")
	tr.RecordShown("s1", "lekki_001")
	tr.RecordShown("s1", "ikoyi_001")

	state, ok := tr.Get("s1")
	if !ok {
		t.Fatal("expected session to exist")
	}
	want := []string{"lekki_001", "ikoyi_001"}
	if len(state.PropertiesShown) != len(want) {
		t.Fatalf("PropertiesShown = %v, want %v", state.PropertiesShown, want)
	}
	for i, id := range want {
		if state.PropertiesShown[i] != id {
			t.Errorf("PropertiesShown[%d] = %q, want %q", i, state.PropertiesShown[i], id)
		}
	}
}

func TestTracker_RequestConnectionIsOneWay(t *testing.T) {
	tr := NewTracker(zap.NewNop())

	state := tr.RequestConnection("s1")
	if state.Stage != model.StageConnection {
		t.Fatalf("stage = %q, want connection", state.Stage)
	}

	// Later turns keep the session in the connection stage.
	state = tr.Update("s1", model.PreferenceContext{Location: "lekki"})
	if state.Stage != model.StageConnection {
		t.Errorf("stage = %q after update, want connection", state.Stage)
	}
}

func TestTracker_FullContextAloneNeverReachesConnection(t *testing.T) {
	tr := NewTracker(zap.NewNop())

	state := tr.Update("s1", model.PreferenceContext{
		Location:  "lekki",
		Budget:    &model.Budget{Max: 10_000_000},
		Bedrooms:  intPtr(3),
		Type:      model.TypeApartment,
		Lifestyle: []string{"family-friendly"},
	})

	if state.Confidence != 100 {
		t.Fatalf("confidence = %d, want 100", state.Confidence)
	}
	if state.Stage != model.StageVerification {
		t.Errorf("stage = %q, want verification", state.Stage)
	}
}

func TestTracker_SessionsAreIndependent(t *testing.T) {
	tr := NewTracker(zap.NewNop())

	tr.Update("s1", model.PreferenceContext{Location: "lekki"})
	tr.Update("s2", model.PreferenceContext{Location: "ikoyi"})

	s1, _ := tr.Get("s1")
	s2, _ := tr.Get("s2")
	if s1.Context.Location != "lekki" || s2.Context.Location != "ikoyi" {
		t.Errorf("sessions leaked: s1=%q s2=%q", s1.Context.Location, s2.Context.Location)
	}

	tr.Evict("s1")
	if _, ok := tr.Get("s1"); ok {
		t.Error("s1 still present after Evict")
	}
	if _, ok := tr.Get("s2"); !ok {
		t.Error("evicting s1 disturbed s2")
	}
	if tr.Len() != 1 {
		t.Errorf("Len = %d, want 1", tr.Len())
	}
}

func TestTracker_EvictUnknownIsNoOp(t *testing.T) {
	tr := NewTracker(zap.NewNop())
	tr.Evict("nope")
	if tr.Len() != 0 {
		t.Errorf("Len = %d, want 0", tr.Len())
	}
}

func TestTracker_ReturnedStateIsACopy(t *testing.T) {
	tr := NewTracker(zap.NewNop())

	state := tr.Update("s1", model.PreferenceContext{Location: "lekki"})
	state.Context.Location = "mutated"
	state.PropertiesShown = append(state.PropertiesShown, "bogus")

	fresh, _ := tr.Get("s1")
	if fresh.Context.Location != "lekki" {
		t.Errorf("caller mutation leaked into tracker: %q", fresh.Context.Location)
	}
	if len(fresh.PropertiesShown) != 0 {
		t.Errorf("caller append leaked into tracker: %v", fresh.PropertiesShown)
	}
}
