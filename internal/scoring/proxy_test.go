// ABOUTME: Tests for the proxy recovery estimator and activity status.
// ABOUTME: Covers default RHR adjustment, baseline interpolation, labels.
package scoring

import (
	"testing"

	"github.com/harperreed/vitals/internal/models"
)

func TestProxyRecoveryNoHistory(t *testing.T) {
	// 420 min sleep, no stages, 8000 steps, 500 kcal, no RHR baseline:
	// sleep = 0.6*87.5 + 0.4*70 = 80.5
	// activity = 0.5*(100 - 5000/9000*50) + 0.5*(100 - 300/600*50) = 73.61
	// rhr adjustment defaults to 75
	// 0.5*80.5 + 0.3*73.61 + 0.2*75 = 77.33 -> 77
	got := ProxyRecoveryScore(models.Float(420), nil, nil,
		models.Float(8000), models.Float(500), nil, nil)
	if got == nil || *got != 77 {
		t.Errorf("ProxyRecoveryScore = %v, want 77", got)
	}
}

func TestProxyRecoveryNilSleepDuration(t *testing.T) {
	if got := ProxyRecoveryScore(nil, nil, nil, models.Float(8000), models.Float(500), nil, nil); got != nil {
		t.Errorf("ProxyRecoveryScore without sleep duration = %v, want nil", got)
	}
}

func TestProxyRecoveryStages(t *testing.T) {
	// Stage part: (90+110)/480*100 = 41.67 instead of the 70 fallback
	withStages := ProxyRecoveryScore(models.Float(480), models.Float(90), models.Float(110),
		nil, nil, nil, nil)
	withoutStages := ProxyRecoveryScore(models.Float(480), nil, nil,
		nil, nil, nil, nil)
	if *withStages >= *withoutStages {
		t.Errorf("low stage share (%d) should score below the fallback (%d)",
			*withStages, *withoutStages)
	}
}

func TestProxyRecoveryRHRAdjustment(t *testing.T) {
	sleep := models.Float(480)
	baseline := models.Float(60.0)

	tests := []struct {
		name string
		rhr  *float64
		want float64 // expected rhr adjustment component
	}{
		{"below baseline", models.Float(55), 100},
		{"at baseline", models.Float(60), 100},
		{"five above", models.Float(65), 75},
		{"ten above", models.Float(70), 50},
		{"way above", models.Float(85), 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProxyRecoveryScore(sleep, nil, nil, nil, nil, tt.rhr, baseline)
			// sleep component: 0.6*100 + 0.4*70 = 88; activity neutral 50
			want := roundInt(0.5*88 + 0.3*50 + 0.2*tt.want)
			if got == nil || *got != want {
				t.Errorf("ProxyRecoveryScore = %v, want %d", got, want)
			}
		})
	}
}

func TestProxyRecoveryBounded(t *testing.T) {
	extremes := []float64{-1e6, 0, 1, 480, 1e6}
	for _, a := range extremes {
		for _, b := range extremes {
			got := ProxyRecoveryScore(models.Float(a), models.Float(b), models.Float(b),
				models.Float(a), models.Float(b), models.Float(a), models.Float(b))
			if got != nil && (*got < 0 || *got > 100) {
				t.Fatalf("ProxyRecoveryScore(%v,%v) = %d out of range", a, b, *got)
			}
		}
	}
}

func TestActivityLevelStatus(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{95, "Light (rest day)"},
		{90, "Light (rest day)"},
		{75, "Moderate"},
		{55, "High strain"},
		{30, "Very intense"},
	}
	for _, tt := range tests {
		if got := ActivityLevelStatus(tt.score); got != tt.want {
			t.Errorf("ActivityLevelStatus(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
