package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/domain"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/usecase"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/usecase/mocks"
)

type reportFixture struct {
	accountRepo     *mocks.MockAccountRepository
	contactRepo     *mocks.MockContactRepository
	invoiceRepo     *mocks.MockInvoiceRepository
	transactionRepo *mocks.MockTransactionRepository
	cache           *mocks.MockReportCache
	uc              *usecase.ReportUseCase
}

func newReportFixture(ctrl *gomock.Controller, withCache bool) *reportFixture {
	f := &reportFixture{
		accountRepo:     mocks.NewMockAccountRepository(ctrl),
		contactRepo:     mocks.NewMockContactRepository(ctrl),
		invoiceRepo:     mocks.NewMockInvoiceRepository(ctrl),
		transactionRepo: mocks.NewMockTransactionRepository(ctrl),
	}

	var cache usecase.ReportCache
	if withCache {
		f.cache = mocks.NewMockReportCache(ctrl)
		cache = f.cache
	}

	f.uc = usecase.NewReportUseCase(f.accountRepo, f.contactRepo, f.invoiceRepo, f.transactionRepo, cache, nil, nil)

	return f
}

func TestReportUseCase_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReportFixture(ctrl, false)

	f.accountRepo.EXPECT().ListAll(gomock.Any()).Return([]domain.Account{
		{ID: "cash", Type: domain.AccountTypeAsset},
		{ID: "capital", Type: domain.AccountTypeEquity},
	}, nil)
	f.contactRepo.EXPECT().ListAll(gomock.Any()).Return([]domain.Contact{
		{ID: "c1", Type: domain.ContactTypeCustomer},
	}, nil)
	f.invoiceRepo.EXPECT().ListAll(gomock.Any()).Return([]domain.Invoice{
		{ID: "i1", CustomerID: "c1", Amount: decimal.NewFromInt(200), Status: domain.InvoiceStatusSent},
	}, nil)
	f.transactionRepo.EXPECT().ListAll(gomock.Any()).Return([]domain.Transaction{
		{ID: "t1", Amount: decimal.NewFromInt(1000), DebitAccount: "cash", CreditAccount: "capital"},
	}, nil)

	summary, err := f.uc.Summary(context.Background())
	require.NoError(t, err)

	assert.True(t, summary.Accounts["cash"].Equal(decimal.NewFromInt(1000)))
	assert.True(t, summary.Accounts["capital"].Equal(decimal.NewFromInt(1000)))
	assert.True(t, summary.Contacts["c1"].Equal(decimal.NewFromInt(200)))
	assert.True(t, summary.Types.Asset.Equal(decimal.NewFromInt(1000)))
	assert.True(t, summary.Equation.IsBalanced)
	assert.False(t, summary.GeneratedAt.IsZero())
}

func TestReportUseCase_Summary_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReportFixture(ctrl, true)

	cached := &usecase.BalanceSummary{
		Accounts: map[string]decimal.Decimal{"cash": decimal.NewFromInt(42)},
		Contacts: map[string]decimal.Decimal{},
	}
	raw, err := json.Marshal(cached)
	require.NoError(t, err)

	// A hit means no repository is touched at all.
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(string(raw), nil)

	summary, err := f.uc.Summary(context.Background())
	require.NoError(t, err)
	assert.True(t, summary.Accounts["cash"].Equal(decimal.NewFromInt(42)))
}

func TestReportUseCase_Summary_CacheMissAndStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReportFixture(ctrl, true)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", errors.New("redis: nil"))
	f.accountRepo.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	f.contactRepo.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	f.invoiceRepo.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	f.transactionRepo.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	f.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.uc.Summary(context.Background())
	require.NoError(t, err)
}

func TestReportUseCase_VerifyEquation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReportFixture(ctrl, false)

	f.accountRepo.EXPECT().ListAll(gomock.Any()).Return([]domain.Account{
		{ID: "cash", Type: domain.AccountTypeAsset},
		{ID: "loan", Type: domain.AccountTypeLiability},
	}, nil)
	// Only the asset side moves: the books cannot balance.
	f.transactionRepo.EXPECT().ListAll(gomock.Any()).Return([]domain.Transaction{
		{ID: "t1", Amount: decimal.NewFromInt(100), DebitAccount: "cash", CreditAccount: "nowhere"},
	}, nil)

	check, err := f.uc.VerifyEquation(context.Background())
	require.NoError(t, err)
	assert.False(t, check.IsBalanced)
	assert.True(t, check.Difference.Equal(decimal.NewFromInt(100)))
}

func TestReportUseCase_CheckLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReportFixture(ctrl, false)

	f.transactionRepo.EXPECT().ListAll(gomock.Any()).Return([]domain.Transaction{
		{ID: "t1", Amount: decimal.NewFromInt(100), DebitAccount: "cash", CreditAccount: "sales"},
	}, nil)

	check, err := f.uc.CheckLedger(context.Background())
	require.NoError(t, err)
	assert.True(t, check.IsValid)
	assert.True(t, check.TotalDebits.Equal(check.TotalCredits))
}

func TestReportUseCase_Summary_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReportFixture(ctrl, false)

	f.accountRepo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := f.uc.Summary(context.Background())
	require.Error(t, err)
}
