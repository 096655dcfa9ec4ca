package aggregate

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"curveScope/internal/model"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestAggregateQualifyingPool(t *testing.T) {
	pools := []model.PoolRecord{
		{ID: "p1", Name: "3pool", IsStable: true, USDTotal: 2_000_000, BaseApy: floatPtr(3.0)},
	}
	gauges := []model.GaugeRecord{
		{PoolID: "p1", CrvApy: floatPtr(2.5), ExtraRewards: model.ExtraRewards{Components: []float64{2.0}}},
	}

	got, err := Aggregate(pools, gauges, Criteria{MinApy: 7.0, MinUSDTotal: 1_000_000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("got %d summaries, want 1", len(got))
	}
	if math.Abs(got[0].TotalApy-7.5) > 1e-9 {
		t.Fatalf("total apy = %v, want 7.5", got[0].TotalApy)
	}
	if got[0].ID != "p1" || got[0].Name != "3pool" {
		t.Fatalf("unexpected summary identity: %+v", got[0])
	}
}

func TestAggregateUSDTotalBelowThreshold(t *testing.T) {
	pools := []model.PoolRecord{
		{ID: "p1", Name: "3pool", IsStable: true, USDTotal: 500_000, BaseApy: floatPtr(3.0)},
	}
	gauges := []model.GaugeRecord{
		{PoolID: "p1", CrvApy: floatPtr(2.5), ExtraRewards: model.ExtraRewards{Components: []float64{2.0}}},
	}

	got, err := Aggregate(pools, gauges, Criteria{MinApy: 7.0, MinUSDTotal: 1_000_000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d summaries, want 0", len(got))
	}
}

func TestAggregateNonStableExcluded(t *testing.T) {
	pools := []model.PoolRecord{
		{ID: "p1", Name: "tricrypto", IsStable: false, USDTotal: 50_000_000, BaseApy: floatPtr(90.0)},
	}
	gauges := []model.GaugeRecord{
		{PoolID: "p1", CrvApy: floatPtr(50.0)},
	}

	got, err := Aggregate(pools, gauges, Criteria{MinApy: 0, MinUSDTotal: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("non-stable pool leaked into output: %+v", got)
	}
}

func TestAggregateNoMatchingGauge(t *testing.T) {
	pools := []model.PoolRecord{
		{ID: "p2", Name: "fraxusdc", IsStable: true, USDTotal: 3_000_000, BaseApy: floatPtr(1.5)},
	}

	got, err := Aggregate(pools, nil, Criteria{MinApy: 1.0, MinUSDTotal: 1_000_000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("got %d summaries, want 1", len(got))
	}
	if got[0].TotalApy != 1.5 || got[0].CrvApy != 0 || got[0].ExtraApy != 0 {
		t.Fatalf("components should default to 0: %+v", got[0])
	}
}

func TestAggregateMissingFieldsDefaultToZero(t *testing.T) {
	pools := []model.PoolRecord{
		{ID: "p1", Name: "lusd", IsStable: true, USDTotal: 2_000_000},
	}
	gauges := []model.GaugeRecord{
		{PoolID: "p1"},
	}

	got, err := Aggregate(pools, gauges, Criteria{MinApy: 0.1, MinUSDTotal: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("zero-apy pool should not qualify: %+v", got)
	}

	got, err = Aggregate(pools, gauges, Criteria{MinApy: 0, MinUSDTotal: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].TotalApy != 0 {
		t.Fatalf("zero-apy pool should qualify at min apy 0: %+v", got)
	}
}

func TestAggregateEmptyInputs(t *testing.T) {
	got, err := Aggregate(nil, nil, DefaultCriteria())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d summaries, want 0", len(got))
	}
}

func TestAggregateDuplicateGaugeLastWins(t *testing.T) {
	pools := []model.PoolRecord{
		{ID: "p1", Name: "usdpool", IsStable: true, USDTotal: 2_000_000},
	}
	gauges := []model.GaugeRecord{
		{PoolID: "p1", CrvApy: floatPtr(1.0)},
		{PoolID: "p1", CrvApy: floatPtr(9.0)},
	}

	got, err := Aggregate(pools, gauges, Criteria{MinApy: 0, MinUSDTotal: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d summaries, want 1", len(got))
	}
	if got[0].CrvApy != 9.0 {
		t.Fatalf("crv apy = %v, want last gauge to win (9.0)", got[0].CrvApy)
	}
}

func TestAggregatePreservesInputOrder(t *testing.T) {
	pools := []model.PoolRecord{
		{ID: "a", Name: "low", IsStable: true, USDTotal: 2_000_000, BaseApy: floatPtr(1.0)},
		{ID: "b", Name: "high", IsStable: true, USDTotal: 2_000_000, BaseApy: floatPtr(9.0)},
		{ID: "c", Name: "mid", IsStable: true, USDTotal: 2_000_000, BaseApy: floatPtr(5.0)},
	}

	got, err := Aggregate(pools, nil, Criteria{MinApy: 0, MinUSDTotal: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var ids []string
	for _, s := range got {
		ids = append(ids, s.ID)
	}
	if !reflect.DeepEqual(ids, []string{"a", "b", "c"}) {
		t.Fatalf("output order %v does not preserve input order", ids)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	pools := []model.PoolRecord{
		{ID: "p1", Name: "usdpool", IsStable: true, USDTotal: 2_000_000, BaseApy: floatPtr(8.0)},
		{ID: "p2", Name: "other", IsStable: true, USDTotal: 900_000, BaseApy: floatPtr(12.0)},
	}
	gauges := []model.GaugeRecord{
		{PoolID: "p1", CrvApy: floatPtr(2.0)},
	}
	criteria := DefaultCriteria()

	first, err := Aggregate(pools, gauges, criteria)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Aggregate(pools, gauges, criteria)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated runs differ: %+v != %+v", first, second)
	}
}

func TestAggregateMonotonicInThresholds(t *testing.T) {
	pools := []model.PoolRecord{
		{ID: "p1", Name: "a", IsStable: true, USDTotal: 2_000_000, BaseApy: floatPtr(8.0)},
		{ID: "p2", Name: "b", IsStable: true, USDTotal: 5_000_000, BaseApy: floatPtr(15.0)},
		{ID: "p3", Name: "c", IsStable: true, USDTotal: 1_200_000, BaseApy: floatPtr(7.0)},
	}

	sizes := make([]int, 0, 4)
	for _, minApy := range []float64{0, 7, 10, 20} {
		got, err := Aggregate(pools, nil, Criteria{MinApy: minApy, MinUSDTotal: 1_000_000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sizes = append(sizes, len(got))
	}

	for i := 1; i < len(sizes); i++ {
		if sizes[i] > sizes[i-1] {
			t.Fatalf("raising min apy grew the result set: %v", sizes)
		}
	}
}

func TestAggregateNegativeThresholdsAdmitAll(t *testing.T) {
	pools := []model.PoolRecord{
		{ID: "p1", Name: "a", IsStable: true, USDTotal: 10},
	}

	got, err := Aggregate(pools, nil, Criteria{MinApy: -5, MinUSDTotal: -1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("degenerate thresholds should admit the stable pool: %+v", got)
	}
}

func TestAggregateExcludeNames(t *testing.T) {
	pools := []model.PoolRecord{
		{ID: "p1", Name: "renBTC-wBTC", IsStable: true, USDTotal: 9_000_000, BaseApy: floatPtr(50.0)},
		{ID: "p2", Name: "usdpool", IsStable: true, USDTotal: 9_000_000, BaseApy: floatPtr(50.0)},
	}

	criteria := Criteria{MinApy: 0, MinUSDTotal: 0, ExcludeNames: []string{"btc", "eth"}}
	got, err := Aggregate(pools, nil, criteria)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 1 || got[0].ID != "p2" {
		t.Fatalf("excluded name leaked into output: %+v", got)
	}
}

func TestAggregateInvalidThresholds(t *testing.T) {
	if _, err := Aggregate(nil, nil, Criteria{MinApy: math.NaN()}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for NaN min apy, got %v", err)
	}
	if _, err := Aggregate(nil, nil, Criteria{MinUSDTotal: math.Inf(1)}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for infinite min usd total, got %v", err)
	}
}

func TestAggregateMissingIdentity(t *testing.T) {
	pools := []model.PoolRecord{{Name: "no-id", IsStable: true}}
	if _, err := Aggregate(pools, nil, DefaultCriteria()); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for pool without id, got %v", err)
	}

	gauges := []model.GaugeRecord{{CrvApy: floatPtr(1.0)}}
	if _, err := Aggregate(nil, gauges, DefaultCriteria()); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for gauge without pool id, got %v", err)
	}
}

func TestAggregateInvariants(t *testing.T) {
	pools := []model.PoolRecord{
		{ID: "p1", Name: "a", IsStable: true, USDTotal: 2_000_000, BaseApy: floatPtr(8.0)},
		{ID: "p2", Name: "b", IsStable: false, USDTotal: 8_000_000, BaseApy: floatPtr(30.0)},
		{ID: "p3", Name: "c", IsStable: true, USDTotal: 400_000, BaseApy: floatPtr(30.0)},
		{ID: "p4", Name: "d", IsStable: true, USDTotal: 4_000_000, BaseApy: floatPtr(2.0)},
	}
	gauges := []model.GaugeRecord{
		{PoolID: "p4", CrvApy: floatPtr(1.0)},
	}
	criteria := DefaultCriteria()

	got, err := Aggregate(pools, gauges, criteria)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, s := range got {
		if s.TotalApy < criteria.MinApy {
			t.Fatalf("summary below min apy: %+v", s)
		}
		if s.USDTotal < criteria.MinUSDTotal {
			t.Fatalf("summary below min usd total: %+v", s)
		}
	}
}
