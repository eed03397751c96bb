package fraud

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardeval/internal/evaluator/models"
)

func TestLookup_DefaultSurnameChecker(t *testing.T) {
	ctx := context.Background()
	lookup := NewLookup()

	t.Run("blocked surname is risky regardless of case", func(t *testing.T) {
		for _, name := range []string{"Smith", "smith", "  SMITH "} {
			risky, err := lookup.IsFraudRisk(ctx, models.Application{LastName: name})
			require.NoError(t, err)
			assert.True(t, risky, name)
		}
	})

	t.Run("other surnames are not risky", func(t *testing.T) {
		risky, err := lookup.IsFraudRisk(ctx, models.Application{LastName: "Smithson"})
		require.NoError(t, err)
		assert.False(t, risky)
	})
}

func TestLookup_InjectedChecker(t *testing.T) {
	ctx := context.Background()

	t.Run("strategy decides", func(t *testing.T) {
		var seen models.Application
		lookup := NewLookup(WithChecker(CheckFunc(func(_ context.Context, app models.Application) (bool, error) {
			seen = app
			return true, nil
		})))

		app := models.Application{FirstName: "Ada", Age: 36}
		risky, err := lookup.IsFraudRisk(ctx, app)

		require.NoError(t, err)
		assert.True(t, risky)
		assert.Equal(t, app, seen)
	})

	t.Run("strategy errors propagate", func(t *testing.T) {
		checkErr := errors.New("scoring backend down")
		lookup := NewLookup(WithChecker(CheckFunc(func(context.Context, models.Application) (bool, error) {
			return true, checkErr
		})))

		risky, err := lookup.IsFraudRisk(ctx, models.Application{})

		assert.ErrorIs(t, err, checkErr)
		assert.False(t, risky)
	})

	t.Run("nil checker keeps default", func(t *testing.T) {
		lookup := NewLookup(WithChecker(nil))
		risky, err := lookup.IsFraudRisk(ctx, models.Application{LastName: "Smith"})
		require.NoError(t, err)
		assert.True(t, risky)
	})
}

func TestAnyOf(t *testing.T) {
	ctx := context.Background()
	never := CheckFunc(func(context.Context, models.Application) (bool, error) { return false, nil })
	always := CheckFunc(func(context.Context, models.Application) (bool, error) { return true, nil })
	failing := CheckFunc(func(context.Context, models.Application) (bool, error) { return false, errors.New("boom") })

	risky, err := AnyOf(never, always, failing).CheckApplication(ctx, models.Application{})
	require.NoError(t, err)
	assert.True(t, risky, "first risky verdict short-circuits")

	risky, err = AnyOf(never, never).CheckApplication(ctx, models.Application{})
	require.NoError(t, err)
	assert.False(t, risky)

	_, err = AnyOf(never, failing, always).CheckApplication(ctx, models.Application{})
	assert.Error(t, err)
}

func TestPatternChecker(t *testing.T) {
	ctx := context.Background()
	checker := NewPatternChecker(0, "Smith")

	tests := []struct {
		name      string
		app       models.Application
		wantScore int
		wantFlags []string
		wantRisky bool
	}{
		{
			name:      "clean application",
			app:       models.Application{FirstName: "Ada", LastName: "Lovelace", Age: 36, FrequentFlyerNumber: "FF-1"},
			wantScore: 0,
			wantRisky: false,
		},
		{
			name:      "blocked surname alone crosses threshold",
			app:       models.Application{LastName: "smith", Age: 40, FrequentFlyerNumber: "FF-2"},
			wantScore: 60,
			wantFlags: []string{"blocked_surname"},
			wantRisky: true,
		},
		{
			name:      "anonymous underage applicant",
			app:       models.Application{Age: 16},
			wantScore: 80,
			wantFlags: []string{"missing_identity", "missing_flyer_number", "underage"},
			wantRisky: true,
		},
		{
			name:      "retired without income stays below threshold",
			app:       models.Application{FirstName: "Bo", Age: 70, FrequentFlyerNumber: "FF-3"},
			wantScore: 20,
			wantFlags: []string{"retired_without_income"},
			wantRisky: false,
		},
		{
			name:      "score is capped",
			app:       models.Application{LastName: "Smith", Age: 15},
			wantScore: 100,
			wantFlags: []string{"blocked_surname", "missing_flyer_number", "underage"},
			wantRisky: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, flags := checker.Analyze(tt.app)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantFlags, flags)

			risky, err := checker.CheckApplication(ctx, tt.app)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRisky, risky)
		})
	}
}

func TestPatternChecker_CustomThreshold(t *testing.T) {
	checker := NewPatternChecker(15)
	risky, err := checker.CheckApplication(context.Background(), models.Application{FirstName: "Bo", Age: 70, FrequentFlyerNumber: "FF-3"})
	require.NoError(t, err)
	assert.True(t, risky)
}
