package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ModesteNGOMA/geofuite/internal/features/reports"
)

func TestMissingCredentialDisablesService(t *testing.T) {
	svc, err := NewService(context.Background(), "", "gemini-2.5-flash")
	require.NoError(t, err)
	require.False(t, svc.Enabled())

	// no network call is ever attempted: Analyze short-circuits to nil
	result := svc.Analyze(context.Background(), "Fuite importante sous la chaussée", "12 Rue de la République")
	require.Nil(t, result)
}

func TestResultValidation(t *testing.T) {
	valid := &Result{
		Severity:          SeverityHigh,
		Summary:           "Fuite majeure sous la chaussée",
		RecommendedStatus: reports.StatusUrgent,
	}
	require.True(t, valid.Valid())

	for _, severity := range AllSeverities {
		r := &Result{Severity: severity, RecommendedStatus: reports.StatusNew}
		require.True(t, r.Valid(), severity)
	}

	badSeverity := &Result{Severity: "Catastrophic", RecommendedStatus: reports.StatusNew}
	require.False(t, badSeverity.Valid())

	badStatus := &Result{Severity: SeverityLow, RecommendedStatus: reports.LeakStatus("ARCHIVED")}
	require.False(t, badStatus.Valid())

	var nilResult *Result
	require.False(t, nilResult.Valid())
}

func TestValidateAnalyzeRequest(t *testing.T) {
	require.NoError(t, ValidateAnalyzeRequest(&AnalyzeRequest{
		Comments: "Fuite importante sous la chaussée",
		Address:  "12 Rue de la République",
	}))

	require.Error(t, ValidateAnalyzeRequest(&AnalyzeRequest{Comments: ""}))
	require.Error(t, ValidateAnalyzeRequest(&AnalyzeRequest{Comments: "drip"}))
	require.Error(t, ValidateAnalyzeRequest(&AnalyzeRequest{Comments: "    \n  "}))

	// five runes, not five bytes
	require.NoError(t, ValidateAnalyzeRequest(&AnalyzeRequest{Comments: "égout"}))
}
