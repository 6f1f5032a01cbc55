package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"hrportal/internal/domain"
	"hrportal/internal/domain/models"
)

func walkToLast(t *testing.T, svc *WizardService, id string) {
	t.Helper()
	for i := 0; i < 3; i++ {
		_, err := svc.Next(id)
		require.NoError(t, err)
	}
}

func TestWizardService_SickLeave(t *testing.T) {
	gw := &fakeWizardGateway{}
	svc := NewWizardService(gw, time.Hour)
	ctx := context.Background()

	v, err := svc.Create("", WizardSickLeave)
	require.NoError(t, err)
	assert.Equal(t, 1, v.State.Current)
	assert.Equal(t, "policy", v.State.StepName)

	// Next never blocks on missing data
	walkToLast(t, svc, v.ID)

	_, err = svc.Submit(ctx, "", v.ID)
	assert.True(t, domain.IsValidation(err), "name and entitlement are missing")
	assert.Empty(t, gw.policies)

	_, err = svc.SetData(v.ID, "policy", json.RawMessage(`{"name":"  Standard  sick leave "}`))
	require.NoError(t, err)
	_, err = svc.SetData(v.ID, "eligibility", json.RawMessage(`{"employment_types":["Full-time"],"min_service_days":30}`))
	require.NoError(t, err)
	_, err = svc.SetData(v.ID, "entitlement", json.RawMessage(`{"days_per_year":12,"paid":true}`))
	require.NoError(t, err)

	v, err = svc.Submit(ctx, "", v.ID)
	require.NoError(t, err)
	assert.True(t, v.State.Completed)
	require.Len(t, gw.policies, 1)
	assert.Equal(t, "Standard sick leave", gw.policies[0].Name)
	assert.Equal(t, 12, gw.policies[0].Entitlement.DaysPerYear)
	assert.Equal(t, []string{"Full-time"}, gw.policies[0].Eligibility.EmploymentTypes)

	_, err = svc.Next(v.ID)
	assert.True(t, domain.IsConflict(err))
	_, err = svc.Submit(ctx, "", v.ID)
	assert.True(t, domain.IsConflict(err))
}

func TestWizardService_BackgroundCheck(t *testing.T) {
	gw := &fakeWizardGateway{}
	svc := NewWizardService(gw, time.Hour)
	ctx := context.Background()

	v, err := svc.Create("", WizardBackgroundCheck)
	require.NoError(t, err)

	_, err = svc.SetData(v.ID, "candidate", json.RawMessage(`{"candidate_name":"Gia","candidate_email":"gia@example.com"}`))
	require.NoError(t, err)
	_, err = svc.SetData(v.ID, "package", json.RawMessage(`{"package":"standard","region":"EU"}`))
	require.NoError(t, err)

	_, err = svc.Submit(ctx, "", v.ID)
	assert.True(t, domain.IsConflict(err), "not on the last step yet")

	walkToLast(t, svc, v.ID)
	_, err = svc.Submit(ctx, "", v.ID)
	assert.True(t, domain.IsValidation(err), "consent missing")

	_, err = svc.SetData(v.ID, "consent", json.RawMessage(`{"consent_given":true}`))
	require.NoError(t, err)
	v, err = svc.Submit(ctx, "", v.ID)
	require.NoError(t, err)

	require.Len(t, gw.starts, 1)
	assert.Equal(t, "EU", gw.starts[0].Region)
	check, ok := v.Result.(models.BackgroundCheck)
	require.True(t, ok)
	assert.Equal(t, "bc1", check.CheckID)
}

func TestWizardService_PublishFailureKeepsWizardOpen(t *testing.T) {
	gw := &fakeWizardGateway{fail: true}
	svc := NewWizardService(gw, time.Hour)
	ctx := context.Background()

	v, err := svc.Create("", WizardBackgroundCheck)
	require.NoError(t, err)
	walkToLast(t, svc, v.ID)
	_, err = svc.SetData(v.ID, "candidate", json.RawMessage(`{"candidate_name":"Gia","candidate_email":"gia@example.com","package":"basic","consent_given":true}`))
	require.NoError(t, err)

	_, err = svc.Submit(ctx, "", v.ID)
	require.Error(t, err)

	gw.fail = false
	v, err = svc.Submit(ctx, "", v.ID)
	require.NoError(t, err)
	assert.True(t, v.State.Completed)
}

func TestWizardService_Errors(t *testing.T) {
	svc := NewWizardService(&fakeWizardGateway{}, time.Hour)

	_, err := svc.Create("", "payroll")
	assert.True(t, domain.IsNotFound(err))
	_, err = svc.Get("nope")
	assert.True(t, domain.IsNotFound(err))

	v, err := svc.Create("", WizardSickLeave)
	require.NoError(t, err)
	_, err = svc.SetData(v.ID, "bonus", json.RawMessage(`{}`))
	assert.True(t, domain.IsValidation(err))
	_, err = svc.SetData(v.ID, "policy", json.RawMessage(`{"name":`))
	assert.True(t, domain.IsValidation(err))

	_, err = svc.SetData(v.ID, "entitlement", json.RawMessage(`{"days_per_year":"twelve"}`))
	require.NoError(t, err, "shape is only checked on submit")
	walkToLast(t, svc, v.ID)
	_, err = svc.Submit(context.Background(), "", v.ID)
	assert.True(t, domain.IsValidation(err))

	v, err = svc.Back(v.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, v.State.Current)
}

func TestWizardService_Sweep(t *testing.T) {
	svc := NewWizardService(&fakeWizardGateway{}, time.Minute)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	v, err := svc.Create("", WizardSickLeave)
	require.NoError(t, err)
	now = now.Add(2 * time.Minute)
	assert.Equal(t, 1, svc.Sweep())
	_, err = svc.Get(v.ID)
	assert.True(t, domain.IsNotFound(err))
}

func TestWizardService_SubmitLogsSubmitRequest(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	svc := NewWizardService(&fakeWizardGateway{}, time.Hour)
	v, err := svc.Create("req-create", WizardSickLeave)
	require.NoError(t, err)
	_, err = svc.SetData(v.ID, "policy", json.RawMessage(`{"name":"Standard"}`))
	require.NoError(t, err)
	_, err = svc.SetData(v.ID, "entitlement", json.RawMessage(`{"days_per_year":10}`))
	require.NoError(t, err)
	walkToLast(t, svc, v.ID)

	_, err = svc.Submit(context.Background(), "req-submit", v.ID)
	require.NoError(t, err)

	published := logs.FilterMessage("wizard published").All()
	require.Len(t, published, 1)
	assert.Equal(t, "req-submit", published[0].ContextMap()["request_id"])
}
