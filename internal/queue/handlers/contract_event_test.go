package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/knstl/qstaking-service/internal/config"
	"github.com/knstl/qstaking-service/internal/db"
	"github.com/knstl/qstaking-service/internal/services"
	"github.com/knstl/qstaking-service/internal/types"
	"github.com/knstl/qstaking-service/testutil/mocks"
)

func requireBadRequest(t *testing.T, err *types.Error) {
	t.Helper()
	require.NotNil(t, err)
	require.Equal(t, http.StatusBadRequest, err.StatusCode)
	require.Equal(t, types.BadRequest, err.ErrorCode)
}

func TestContractEventHandlerRejectsMalformedBody(t *testing.T) {
	handler := NewQueueHandler(nil)
	err := handler.ContractEventHandler(context.Background(), "{not json")
	requireBadRequest(t, err)
}

func TestContractEventHandlerRejectsWrongEventType(t *testing.T) {
	handler := NewQueueHandler(nil)
	err := handler.ContractEventHandler(
		context.Background(),
		`{"event_type":"unbonding_started","request_id":"req-1"}`,
	)
	requireBadRequest(t, err)
}

func TestContractEventHandlerRejectsMissingRequestId(t *testing.T) {
	handler := NewQueueHandler(nil)
	err := handler.ContractEventHandler(
		context.Background(),
		`{"event_type":"contract_created","success":true}`,
	)
	requireBadRequest(t, err)
}

func TestContractEventHandlerDispatchesToProvisioning(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := mocks.NewMockDBClient(ctrl)
	mockDB.EXPECT().FindPendingProvisioning(gomock.Any(), "req-1").Return(
		nil, &db.NotFoundError{Key: "req-1", Message: "not found"},
	)
	handler := NewQueueHandler(services.NewWithDependencies(&config.Config{}, mockDB, nil, nil))

	// An event with an unknown correlation id reaches the provisioning layer
	// and is rejected there.
	err := handler.ContractEventHandler(
		context.Background(),
		`{"event_type":"contract_created","request_id":"req-1","success":true}`,
	)
	require.NotNil(t, err)
	require.Equal(t, http.StatusForbidden, err.StatusCode)
	require.Equal(t, types.Unauthorized, err.ErrorCode)
}
