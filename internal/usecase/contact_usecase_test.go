package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/domain"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/usecase"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/usecase/mocks"
)

func newContactUseCase(ctrl *gomock.Controller) (*usecase.ContactUseCase, *mocks.MockContactRepository, *mocks.MockInvoiceRepository, *mocks.MockTransactionRepository, *mocks.MockIDGenerator) {
	contactRepo := mocks.NewMockContactRepository(ctrl)
	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	transactionRepo := mocks.NewMockTransactionRepository(ctrl)
	idGen := mocks.NewMockIDGenerator(ctrl)

	uc := usecase.NewContactUseCase(contactRepo, invoiceRepo, transactionRepo, idGen)

	return uc, contactRepo, invoiceRepo, transactionRepo, idGen
}

func TestContactUseCase_CreateContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, contactRepo, _, _, idGen := newContactUseCase(ctrl)

	idGen.EXPECT().Generate().Return("con-1")
	contactRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	contact, err := uc.CreateContact(context.Background(), usecase.CreateContactInput{
		Name: "Acme Supplies",
		Type: domain.ContactTypeVendor,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contact.ID != "con-1" {
		t.Errorf("expected id con-1, got %s", contact.ID)
	}
}

func TestContactUseCase_CreateContact_InvalidType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, _, _ := newContactUseCase(ctrl)

	_, err := uc.CreateContact(context.Background(), usecase.CreateContactInput{
		Name: "Acme",
		Type: domain.ContactType("partner"),
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestContactUseCase_GetBalance_Customer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, contactRepo, invoiceRepo, transactionRepo, _ := newContactUseCase(ctrl)

	contactRepo.EXPECT().GetByID(gomock.Any(), "c1").Return(&domain.Contact{
		ID:   "c1",
		Type: domain.ContactTypeCustomer,
	}, nil)
	transactionRepo.EXPECT().ListAll(gomock.Any()).Return([]domain.Transaction{
		{ID: "t1", Amount: decimal.NewFromInt(50), Type: domain.TransactionTypeIncome, Contact: "c1", ContactType: domain.ContactTypeCustomer},
	}, nil)
	invoiceRepo.EXPECT().ListAll(gomock.Any()).Return([]domain.Invoice{
		{ID: "i1", CustomerID: "c1", Amount: decimal.NewFromInt(200), Status: domain.InvoiceStatusSent},
	}, nil)

	balance, err := uc.GetBalance(context.Background(), "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected 150, got %s", balance)
	}
}

func TestContactUseCase_GetBalance_Vendor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, contactRepo, _, transactionRepo, _ := newContactUseCase(ctrl)

	contactRepo.EXPECT().GetByID(gomock.Any(), "v1").Return(&domain.Contact{
		ID:   "v1",
		Type: domain.ContactTypeVendor,
	}, nil)
	transactionRepo.EXPECT().ListAll(gomock.Any()).Return([]domain.Transaction{
		{ID: "t1", Amount: decimal.NewFromInt(300), Type: domain.TransactionTypeExpense, Contact: "v1", ContactType: domain.ContactTypeVendor, Description: "materials"},
	}, nil)

	balance, err := uc.GetBalance(context.Background(), "v1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected 300, got %s", balance)
	}
}
