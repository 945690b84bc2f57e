package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/dmarins/bankledger/internal/domain"
	"github.com/dmarins/bankledger/internal/usecase"
	"github.com/dmarins/bankledger/internal/usecase/mocks"
)

func TestLedgerUseCase_CheckConsistency_Clean(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledgerRepo := mocks.NewMockLedgerRepository(ctrl)
	ledgerRepo.EXPECT().FindInconsistentAccounts(gomock.Any()).Return(nil, nil)

	uc := usecase.NewLedgerUseCase(ledgerRepo)

	mismatches, err := uc.CheckConsistency(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mismatches) != 0 {
		t.Errorf("expected no mismatches, got %d", len(mismatches))
	}
}

func TestLedgerUseCase_CheckConsistency_Mismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledgerRepo := mocks.NewMockLedgerRepository(ctrl)
	ledgerRepo.EXPECT().FindInconsistentAccounts(gomock.Any()).Return([]*domain.BalanceMismatch{
		{AccountID: 3, Balance: dec("100.00"), EntrySum: dec("90.00")},
	}, nil)

	uc := usecase.NewLedgerUseCase(ledgerRepo)

	mismatches, err := uc.CheckConsistency(context.Background())
	if !errors.Is(err, usecase.ErrInconsistentLedger) {
		t.Fatalf("expected ErrInconsistentLedger, got %v", err)
	}
	if len(mismatches) != 1 || mismatches[0].AccountID != 3 {
		t.Errorf("unexpected mismatches: %+v", mismatches)
	}
}

func TestLedgerUseCase_CheckConsistency_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoErr := errors.New("connection refused")

	ledgerRepo := mocks.NewMockLedgerRepository(ctrl)
	ledgerRepo.EXPECT().FindInconsistentAccounts(gomock.Any()).Return(nil, repoErr)

	uc := usecase.NewLedgerUseCase(ledgerRepo)

	_, err := uc.CheckConsistency(context.Background())
	if !errors.Is(err, repoErr) {
		t.Errorf("expected repository error, got %v", err)
	}
}
