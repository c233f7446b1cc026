package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/knstl/qstaking-service/internal/clients"
	"github.com/knstl/qstaking-service/internal/config"
	"github.com/knstl/qstaking-service/internal/db/model"
	queueclient "github.com/knstl/qstaking-service/internal/queue/client"
	"github.com/knstl/qstaking-service/testutil/mocks"
)

const (
	testDenom         = "uqstk"
	testStaker        = "qstk1qgpqyqszqgpqyqszqgpqyqszqgpqyqszrh5v5g"
	testProxy         = "qstk1zyxwvutszyxwvutszyxwvutszyxwvutsrqpnml"
	testIssuer        = "qstk1cdefghjkcdefghjkcdefghjkcdefghjkmnpqrs"
	testRouter        = "qstk123456789234567892345678923456789234567"
	testCommunityPool = "qstk1aceaceacaceaceacaceaceacaceaceacaceace"
	testContract      = "qstk1jklmnpqrjklmnpqrjklmnpqrjklmnpqrstuvwx"
	testValidator     = "qstkvaloper1qgpqyqszqgpqyqszqgpqyqszqgpqyqszrh5v5g"
	testValidator2    = "qstkvaloper1zyxwvutszyxwvutszyxwvutszyxwvutsrqpnml"
)

var testUnbondingPeriod = 21 * 24 * time.Hour

func testConfig() *config.Config {
	return &config.Config{
		Staking: config.StakingConfig{
			Denom:            testDenom,
			CommissionRate:   "0.1",
			UnbondingPeriod:  testUnbondingPeriod,
			CommunityPool:    testCommunityPool,
			RouterAddress:    testRouter,
			IssuerTemplateId: 7,
			IssuerLabel:      "credit-issuer",
			TokenName:        "Quick Staked Token",
			TokenSymbol:      "qSTK",
			ProxyTemplateId:  8,
			ProxyLabel:       "stake-proxy",
		},
	}
}

func newTestServices(t *testing.T) (*Services, *mocks.MockDBClient, *mocks.MockQueueClient, *mocks.MockBankClientInterface) {
	ctrl := gomock.NewController(t)
	mockDB := mocks.NewMockDBClient(ctrl)
	mockQueue := mocks.NewMockQueueClient(ctrl)
	mockIssuer := mocks.NewMockIssuerClientInterface(ctrl)
	mockBank := mocks.NewMockBankClientInterface(ctrl)
	services := NewWithDependencies(
		testConfig(),
		mockDB,
		&clients.Clients{Issuer: mockIssuer, Bank: mockBank},
		mockQueue,
	)
	return services, mockDB, mockQueue, mockBank
}

// capturePublished records every instruction published during the test so
// assertions can check both content and ordering.
func capturePublished(queue *mocks.MockQueueClient) *[]string {
	published := &[]string{}
	queue.EXPECT().SendMessage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, body string) error {
			*published = append(*published, body)
			return nil
		},
	).AnyTimes()
	return published
}

func publishedTypes(t *testing.T, published []string) []string {
	t.Helper()
	kinds := make([]string, 0, len(published))
	for _, body := range published {
		var envelope queueclient.InstructionEnvelope
		require.NoError(t, json.Unmarshal([]byte(body), &envelope))
		kinds = append(kinds, envelope.InstructionType)
	}
	return kinds
}

func testParticipant() *model.ParticipantDocument {
	return model.NewParticipantDocument(testStaker, testProxy, time.Now().UTC())
}

func testProxyConfig() model.ProxyConfig {
	return model.ProxyConfig{
		Owner:                  testStaker,
		Router:                 testRouter,
		Denom:                  testDenom,
		CommissionRate:         "0.1",
		CommunityPool:          testCommunityPool,
		UnbondingPeriodSeconds: int64(testUnbondingPeriod.Seconds()),
	}
}

func testProxyDocument() *model.ProxyDocument {
	return model.NewProxyDocument(testProxy, testProxyConfig())
}
