package evaluator_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/cucumber/godog"
	"github.com/go-chi/chi/v5"

	"cardeval/internal/evaluator"
	"cardeval/internal/evaluator/handler"
	"cardeval/internal/flyer"
	flyermodels "cardeval/internal/flyer/models"
	"cardeval/internal/flyer/store"
	"cardeval/internal/fraud"
)

func TestDecisionFeatures(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping acceptance features in short mode")
	}
	suite := godog.TestSuite{
		ScenarioInitializer: initializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			Strict:   true,
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatal("acceptance features failed")
	}
}

// decisionWorld holds one scenario's state. The evaluator is built lazily on
// the first request so Given steps can shape the directory and license.
type decisionWorld struct {
	directory  *store.InMemory
	licenseKey string
	router     http.Handler

	status int
	body   map[string]any
}

func initializeScenario(sc *godog.ScenarioContext) {
	w := &decisionWorld{}
	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		*w = decisionWorld{directory: store.NewInMemory(), licenseKey: "OK"}
		return ctx, nil
	})

	sc.Step(`^the frequent flyer directory contains:$`, w.directoryContains)
	sc.Step(`^the validator license key is "([^"]*)"$`, w.licenseKeyIs)
	sc.Step(`^I submit an application for "([^"]*)" "([^"]*)" aged (-?\d+) earning (\d+) with flyer number "([^"]*)"$`, w.submit("/applications/evaluate"))
	sc.Step(`^I submit an application through the alternate endpoint for "([^"]*)" "([^"]*)" aged (-?\d+) earning (\d+) with flyer number "([^"]*)"$`, w.submit("/applications/evaluate-out"))
	sc.Step(`^the response status should be (\d+)$`, w.statusShouldBe)
	sc.Step(`^the decision should be "([^"]*)"$`, w.decisionShouldBe)
	sc.Step(`^the lookup count should be (\d+)$`, w.lookupCountShouldBe)
}

func (w *decisionWorld) directoryContains(ctx context.Context, table *godog.Table) error {
	for _, row := range table.Rows[1:] {
		active, err := strconv.ParseBool(row.Cells[1].Value)
		if err != nil {
			return err
		}
		member := flyermodels.Member{Number: row.Cells[0].Value, Active: active, Tier: flyermodels.TierBlue}
		if err := w.directory.Save(ctx, member); err != nil {
			return err
		}
	}
	return nil
}

func (w *decisionWorld) licenseKeyIs(key string) error {
	if w.router != nil {
		return fmt.Errorf("license key must be set before the first application")
	}
	w.licenseKey = key
	return nil
}

func (w *decisionWorld) ensureRouter() error {
	if w.router != nil {
		return nil
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	validator := flyer.NewValidator(w.directory, flyer.WithLicenseKey(w.licenseKey))
	eval, err := evaluator.New(validator, fraud.NewLookup(), evaluator.WithLogger(logger))
	if err != nil {
		return err
	}
	r := chi.NewRouter()
	handler.New(eval, logger).Register(r)
	w.router = r
	return nil
}

func (w *decisionWorld) submit(path string) func(first, last string, age, income int, number string) error {
	return func(first, last string, age, income int, number string) error {
		payload, err := json.Marshal(map[string]any{
			"first_name":            first,
			"last_name":             last,
			"age":                   age,
			"gross_annual_income":   income,
			"frequent_flyer_number": number,
		})
		if err != nil {
			return err
		}
		return w.do(http.MethodPost, path, payload)
	}
}

func (w *decisionWorld) do(method, path string, payload []byte) error {
	if err := w.ensureRouter(); err != nil {
		return err
	}
	rec := httptest.NewRecorder()
	w.router.ServeHTTP(rec, httptest.NewRequest(method, path, bytes.NewReader(payload)))
	w.status = rec.Code
	w.body = map[string]any{}
	return json.Unmarshal(rec.Body.Bytes(), &w.body)
}

func (w *decisionWorld) statusShouldBe(want int) error {
	if w.status != want {
		return fmt.Errorf("expected status %d, got %d (%v)", want, w.status, w.body)
	}
	return nil
}

func (w *decisionWorld) decisionShouldBe(want string) error {
	if w.status != http.StatusOK {
		return fmt.Errorf("expected a decision, got status %d (%v)", w.status, w.body)
	}
	if got := w.body["decision"]; got != want {
		return fmt.Errorf("expected decision %q, got %v", want, got)
	}
	return nil
}

func (w *decisionWorld) lookupCountShouldBe(want int) error {
	if err := w.do(http.MethodGet, "/applications/lookups", nil); err != nil {
		return err
	}
	got, ok := w.body["lookup_count"].(float64)
	if !ok || int(got) != want {
		return fmt.Errorf("expected lookup count %d, got %v", want, w.body["lookup_count"])
	}
	return nil
}
