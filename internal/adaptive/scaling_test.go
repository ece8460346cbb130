package adaptive

import "testing"

func TestAdjustScaling(t *testing.T) {
	tests := []struct {
		name     string
		accuracy float64
		wantKind string // "" means no adjustment
		wantVal  float64
	}{
		{"well above target", 0.95, AdjustIncrease, 1.05},
		{"just above raise threshold", 0.86, AdjustIncrease, 1.05},
		{"at raise threshold stays", 0.85, "", 1.0},
		{"at target", 0.75, "", 1.0},
		{"slightly below target stays", 0.65, "", 1.0},
		{"inside lower deadband stays", 0.61, "", 1.0},
		{"below lower threshold", 0.55, AdjustDecrease, 0.95},
		{"zero accuracy", 0.0, AdjustDecrease, 0.95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWeights(nil)
			adj := w.AdjustScaling(tt.accuracy)

			if tt.wantKind == "" {
				if adj != nil {
					t.Fatalf("AdjustScaling(%v) = %+v, want nil", tt.accuracy, adj)
				}
				if w.Scaling != DefaultScaling {
					t.Errorf("Scaling = %v, want unchanged %v", w.Scaling, DefaultScaling)
				}
				return
			}

			if adj == nil {
				t.Fatalf("AdjustScaling(%v) = nil, want %s", tt.accuracy, tt.wantKind)
			}
			if adj.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", adj.Kind, tt.wantKind)
			}
			if !almostEqual(adj.Scaling, tt.wantVal) {
				t.Errorf("Scaling = %v, want %v", adj.Scaling, tt.wantVal)
			}
			if adj.Scaling != w.Scaling {
				t.Errorf("Adjustment.Scaling = %v, Weights.Scaling = %v", adj.Scaling, w.Scaling)
			}
		})
	}
}

func TestAdjustScalingClamps(t *testing.T) {
	w := NewWeights(nil)
	for i := 0; i < 100; i++ {
		w.AdjustScaling(1.0)
	}
	if w.Scaling != MaxScaling {
		t.Errorf("Scaling after repeated increases = %v, want %v", w.Scaling, MaxScaling)
	}

	for i := 0; i < 100; i++ {
		w.AdjustScaling(0.0)
	}
	if w.Scaling != MinScaling {
		t.Errorf("Scaling after repeated decreases = %v, want %v", w.Scaling, MinScaling)
	}
}
