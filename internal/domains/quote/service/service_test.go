package service_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "venuequote/infras/otel/mocks"
	"venuequote/internal/domains/quote/mocks"
	"venuequote/internal/domains/quote/model"
	"venuequote/internal/domains/quote/service"
	"venuequote/shared/failure"
)

const session = "session-1"

type testSuite struct {
	svc  service.Quote
	repo *mocks.MockQuote
}

func newTestSuite(t *testing.T) *testSuite {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockQuote(ctrl)

	return &testSuite{
		svc:  service.New(repo, otelMocks.NewOtel()),
		repo: repo,
	}
}

func encoded(t *testing.T, items ...model.LineItem) string {
	t.Helper()

	quote := model.Quote{}
	quote.Append(items...)

	payload, err := quote.Encode()
	require.NoError(t, err)

	return payload
}

func TestQuoteService_Add(t *testing.T) {
	t.Run("appends to an empty slot and persists", func(t *testing.T) {
		suite := newTestSuite(t)

		item := model.LineItem{ID: "a", VenueName: "Main Hall (Mon)", Total: 100}

		suite.repo.EXPECT().
			Load(gomock.Any(), session).
			Return("", false, nil)
		suite.repo.EXPECT().
			Save(gomock.Any(), session, encoded(t, item)).
			Return(nil)

		res, err := suite.svc.Add(context.Background(), session, []model.LineItem{item})
		require.NoError(t, err)

		assert.Equal(t, 1, res.TotalItems)
		assert.Equal(t, "100.00", res.GrandTotal)
	})

	t.Run("appends after existing items", func(t *testing.T) {
		suite := newTestSuite(t)

		existing := model.LineItem{ID: "a", Total: 100}
		incoming := model.LineItem{ID: "b", Total: 50}

		suite.repo.EXPECT().
			Load(gomock.Any(), session).
			Return(encoded(t, existing), true, nil)
		suite.repo.EXPECT().
			Save(gomock.Any(), session, encoded(t, existing, incoming)).
			Return(nil)

		res, err := suite.svc.Add(context.Background(), session, []model.LineItem{incoming})
		require.NoError(t, err)

		require.Equal(t, 2, res.TotalItems)
		assert.Equal(t, "a", res.Items[0].ID)
		assert.Equal(t, "b", res.Items[1].ID)
		assert.Equal(t, "150.00", res.GrandTotal)
	})

	t.Run("propagates a load failure", func(t *testing.T) {
		suite := newTestSuite(t)

		suite.repo.EXPECT().
			Load(gomock.Any(), session).
			Return("", false, errors.New("connection refused"))

		_, err := suite.svc.Add(context.Background(), session, []model.LineItem{{ID: "a"}})
		assert.Error(t, err)
	})
}

func TestQuoteService_Remove(t *testing.T) {
	t.Run("removes and persists", func(t *testing.T) {
		suite := newTestSuite(t)

		a := model.LineItem{ID: "a", Total: 100}
		b := model.LineItem{ID: "b", Total: 50}

		suite.repo.EXPECT().
			Load(gomock.Any(), session).
			Return(encoded(t, a, b), true, nil)
		suite.repo.EXPECT().
			Save(gomock.Any(), session, encoded(t, b)).
			Return(nil)

		res, err := suite.svc.Remove(context.Background(), session, "a")
		require.NoError(t, err)

		require.Equal(t, 1, res.TotalItems)
		assert.Equal(t, "b", res.Items[0].ID)
		assert.Equal(t, "50.00", res.GrandTotal)
	})

	t.Run("absent id is not found and nothing is persisted", func(t *testing.T) {
		suite := newTestSuite(t)

		suite.repo.EXPECT().
			Load(gomock.Any(), session).
			Return(encoded(t, model.LineItem{ID: "a"}), true, nil)

		_, err := suite.svc.Remove(context.Background(), session, "zzz")
		require.Error(t, err)

		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestQuoteService_Get(t *testing.T) {
	t.Run("empty slot yields an empty quote", func(t *testing.T) {
		suite := newTestSuite(t)

		suite.repo.EXPECT().
			Load(gomock.Any(), session).
			Return("", false, nil)

		res, err := suite.svc.Get(context.Background(), session)
		require.NoError(t, err)

		assert.Equal(t, 0, res.TotalItems)
		assert.Equal(t, "0.00", res.GrandTotal)
	})

	t.Run("corrupt payload degrades to an empty quote", func(t *testing.T) {
		suite := newTestSuite(t)

		suite.repo.EXPECT().
			Load(gomock.Any(), session).
			Return("{not json", true, nil)

		res, err := suite.svc.Get(context.Background(), session)
		require.NoError(t, err)

		assert.Equal(t, 0, res.TotalItems)
	})
}

func TestQuoteService_Snapshot(t *testing.T) {
	suite := newTestSuite(t)

	a := model.LineItem{ID: "a", Total: 100}

	suite.repo.EXPECT().
		Load(gomock.Any(), session).
		Return(encoded(t, a), true, nil)

	quote, err := suite.svc.Snapshot(context.Background(), session)
	require.NoError(t, err)

	require.Len(t, quote.Items, 1)
	assert.Equal(t, a, quote.Items[0])
}
