package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/partner-portal/internal/application/usecase"
	"github.com/jhoicas/partner-portal/internal/domain"
	"github.com/jhoicas/partner-portal/internal/domain/access"
	"github.com/jhoicas/partner-portal/internal/domain/entity"
)

type forwardCall struct {
	method, path, credential string
	body                     []byte
}

type fakeForwarder struct {
	calls  []forwardCall
	status int
	body   json.RawMessage
	err    error
}

func (f *fakeForwarder) Forward(_ context.Context, method, path, credential string, body []byte) (int, json.RawMessage, error) {
	f.calls = append(f.calls, forwardCall{method, path, credential, body})
	return f.status, f.body, f.err
}

func ident(tier entity.PlanTier) *entity.SessionIdentity {
	return &entity.SessionIdentity{UserID: "1", Email: "u@x.co", PlanTier: tier, IsActive: true}
}

func TestActionService_Actions(t *testing.T) {
	svc := usecase.NewActionService(&fakeForwarder{})
	assert.Equal(t, []string{"content.campaign", "mining.analysis", "mining.launch"}, svc.Actions())
}

func TestActionService_AccionDesconocida(t *testing.T) {
	fw := &fakeForwarder{}
	_, err := usecase.NewActionService(fw).Run(context.Background(), "rm.rf", ident(entity.PlanPartner), "tok", nil)
	assert.ErrorIs(t, err, usecase.ErrUnknownAction)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	assert.Empty(t, fw.calls)
}

func TestActionService_SinSesion(t *testing.T) {
	fw := &fakeForwarder{}
	_, err := usecase.NewActionService(fw).Run(context.Background(), "mining.launch", nil, "", nil)
	assert.Equal(t, domain.KindUnauthenticated, domain.KindOf(err))
	assert.Empty(t, fw.calls)
}

func TestActionService_GateAntesDelBackend(t *testing.T) {
	fw := &fakeForwarder{status: 200}
	_, err := usecase.NewActionService(fw).Run(context.Background(), "mining.launch", ident(entity.PlanMotor), "tok", nil)

	var denied *usecase.DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, access.CapAccessMining, denied.Capability)
	assert.Equal(t, entity.PlanCerebro, denied.Requirement.Tier)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	assert.Empty(t, fw.calls, "el backend no debe llamarse si el gate rechaza")
}

func TestActionService_ReenviaConCuerpoPorDefecto(t *testing.T) {
	fw := &fakeForwarder{status: 202, body: json.RawMessage(`{"ok":true}`)}
	res, err := usecase.NewActionService(fw).Run(context.Background(), "content.campaign", ident(entity.PlanPartner), "tok", nil)
	require.NoError(t, err)
	assert.Equal(t, 202, res.Status)
	require.Len(t, fw.calls, 1)
	assert.Equal(t, "POST", fw.calls[0].method)
	assert.Equal(t, "/api/v1/content/new-campaign", fw.calls[0].path)
	assert.Equal(t, "tok", fw.calls[0].credential)
	assert.Equal(t, "{}", string(fw.calls[0].body))
}

func TestActionService_PropagaClasificacionDelBackend(t *testing.T) {
	fw := &fakeForwarder{status: 401, err: domain.ErrUnauthenticated}
	res, err := usecase.NewActionService(fw).Run(context.Background(), "mining.analysis", ident(entity.PlanCerebro), "tok", []byte(`{"q":1}`))
	assert.Equal(t, domain.KindUnauthenticated, domain.KindOf(err))
	require.NotNil(t, res)
	assert.Equal(t, 401, res.Status)
}
