package service

import (
	"context"
	"fmt"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// maxConflictRetries bounds how many times a mutating use case is
// replayed after losing an optimistic concurrency race.
const maxConflictRetries = 3

const versionConflictCode = "WAL_007"

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	walletRepo ports.WalletRepository
	txRepo     ports.TransactionRepository
	outboxPub  ports.OutboxEventPublisher
	eventPub   ports.WalletEventPublisher
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	outboxPub ports.OutboxEventPublisher,
	eventPub ports.WalletEventPublisher,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		outboxPub:  outboxPub,
		eventPub:   eventPub,
		transactor: transactor,
		log:        log,
	}
}

// CreateWallet creates a zero-balance wallet for the user. The wallet
// row and the WALLET_CREATED outbox event commit in one transaction;
// the unique constraint on user_id settles concurrent creations.
func (s *WalletServiceImpl) CreateWallet(ctx context.Context, userID, currency string) (*domain.Wallet, error) {
	wallet, err := domain.NewWallet(userID, currency)
	if err != nil {
		return nil, err
	}

	existing, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check existing wallet: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateWallet(userID)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.walletRepo.Create(ctx, dbTx, wallet); err != nil {
		return nil, err
	}

	payload := domain.WalletCreated{
		WalletID:   wallet.ID.String(),
		UserID:     wallet.UserID,
		Currency:   wallet.Balance.Currency(),
		OccurredAt: wallet.CreatedAt,
	}
	if err := s.outboxPub.PublishOutboxEvent(ctx, dbTx, payload); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publishSync(ctx, payload)

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Str("user_id", wallet.UserID).
		Str("currency", wallet.Balance.Currency()).
		Msg("wallet created")

	return wallet, nil
}

// GetWallet returns the user's wallet.
func (s *WalletServiceImpl) GetWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	if userID == "" {
		return nil, apperror.ErrInvalidArgument("UserId cannot be empty")
	}
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound(userID)
	}
	return wallet, nil
}

// Deposit credits the wallet and appends a DEPOSIT ledger entry. The
// whole use case replays on a version conflict.
func (s *WalletServiceImpl) Deposit(ctx context.Context, userID string, amount domain.Money) (*domain.WalletTransaction, error) {
	var entry *domain.WalletTransaction
	err := s.withConflictRetry(ctx, "deposit", func() error {
		var err error
		entry, err = s.applyBalanceChange(ctx, userID, amount, domain.TransactionTypeDeposit)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Withdraw debits the wallet and appends a WITHDRAW ledger entry.
// Fails with insufficient funds before any state is written.
func (s *WalletServiceImpl) Withdraw(ctx context.Context, userID string, amount domain.Money) (*domain.WalletTransaction, error) {
	var entry *domain.WalletTransaction
	err := s.withConflictRetry(ctx, "withdraw", func() error {
		var err error
		entry, err = s.applyBalanceChange(ctx, userID, amount, domain.TransactionTypeWithdraw)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// applyBalanceChange runs one attempt of a deposit or withdrawal: load,
// mutate in memory, then persist wallet, ledger entry and outbox event
// atomically.
func (s *WalletServiceImpl) applyBalanceChange(ctx context.Context, userID string, amount domain.Money, txType domain.TransactionType) (*domain.WalletTransaction, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound(userID)
	}

	previous := wallet.Balance
	switch txType {
	case domain.TransactionTypeDeposit:
		err = wallet.Deposit(amount)
	case domain.TransactionTypeWithdraw:
		err = wallet.Withdraw(amount)
	default:
		err = apperror.ErrInvalidArgument("Unsupported transaction type")
	}
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &domain.WalletTransaction{
		ID:            uuid.New(),
		WalletID:      wallet.ID,
		Type:          txType,
		Amount:        amount,
		BalanceAfter:  wallet.Balance,
		Description:   describeTransaction(txType, ""),
		Timestamp:     now,
		CorrelationID: uuid.New(),
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.walletRepo.Update(ctx, dbTx, wallet); err != nil {
		return nil, err
	}
	if err := s.txRepo.Create(ctx, dbTx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create ledger entry: %w", err))
	}

	payload := balanceChangePayload(wallet, entry, previous, amount, now)
	if err := s.outboxPub.PublishOutboxEvent(ctx, dbTx, payload); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publishSync(ctx, payload)

	s.log.Info().
		Str("tx_id", entry.ID.String()).
		Str("user_id", userID).
		Str("type", string(txType)).
		Str("amount", amount.String()).
		Str("balance", wallet.Balance.String()).
		Msg("balance change applied")

	return entry, nil
}

// Transfer moves amount between two users atomically: both wallet
// writes, both ledger entries and the FUNDS_TRANSFERRED outbox event
// commit or roll back together. The returned entries share a
// correlation id, withdraw leg first.
func (s *WalletServiceImpl) Transfer(ctx context.Context, fromUserID, toUserID string, amount domain.Money) ([]domain.WalletTransaction, error) {
	if fromUserID == "" || toUserID == "" {
		return nil, apperror.ErrInvalidArgument("UserId cannot be empty")
	}
	if fromUserID == toUserID {
		return nil, apperror.ErrSameUser()
	}

	var entries []domain.WalletTransaction
	err := s.withConflictRetry(ctx, "transfer", func() error {
		var err error
		entries, err = s.transferOnce(ctx, fromUserID, toUserID, amount)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *WalletServiceImpl) transferOnce(ctx context.Context, fromUserID, toUserID string, amount domain.Money) ([]domain.WalletTransaction, error) {
	source, err := s.walletRepo.GetByUserID(ctx, fromUserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get source wallet: %w", err))
	}
	if source == nil {
		return nil, apperror.ErrWalletNotFound(fromUserID)
	}
	target, err := s.walletRepo.GetByUserID(ctx, toUserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get target wallet: %w", err))
	}
	if target == nil {
		return nil, apperror.ErrWalletNotFound(toUserID)
	}

	sourceBefore := source.Balance
	targetBefore := target.Balance
	if err := source.Withdraw(amount); err != nil {
		return nil, err
	}
	if err := target.Deposit(amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	correlationID := uuid.New()
	outEntry := domain.WalletTransaction{
		ID:            uuid.New(),
		WalletID:      source.ID,
		Type:          domain.TransactionTypeTransferOut,
		Amount:        amount,
		BalanceAfter:  source.Balance,
		Description:   describeTransaction(domain.TransactionTypeTransferOut, toUserID),
		Timestamp:     now,
		CorrelationID: correlationID,
	}
	inEntry := domain.WalletTransaction{
		ID:            uuid.New(),
		WalletID:      target.ID,
		Type:          domain.TransactionTypeTransferIn,
		Amount:        amount,
		BalanceAfter:  target.Balance,
		Description:   describeTransaction(domain.TransactionTypeTransferIn, fromUserID),
		Timestamp:     now,
		CorrelationID: correlationID,
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Wallet rows lock in id order so two opposite concurrent
	// transfers cannot deadlock on each other's row locks.
	first, second := source, target
	if second.ID.String() < first.ID.String() {
		first, second = second, first
	}
	if err := s.walletRepo.Update(ctx, dbTx, first); err != nil {
		return nil, err
	}
	if err := s.walletRepo.Update(ctx, dbTx, second); err != nil {
		return nil, err
	}
	if err := s.txRepo.Create(ctx, dbTx, &outEntry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create withdraw leg: %w", err))
	}
	if err := s.txRepo.Create(ctx, dbTx, &inEntry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create deposit leg: %w", err))
	}

	payload := domain.FundsTransferred{
		TransferID:          correlationID.String(),
		SourceWalletID:      source.ID.String(),
		TargetWalletID:      target.ID.String(),
		SourceUserID:        fromUserID,
		TargetUserID:        toUserID,
		Amount:              amount.Amount(),
		Currency:            amount.Currency(),
		SourceBalanceBefore: sourceBefore.Amount(),
		SourceBalanceAfter:  source.Balance.Amount(),
		TargetBalanceBefore: targetBefore.Amount(),
		TargetBalanceAfter:  target.Balance.Amount(),
		OccurredAt:          now,
	}
	if err := s.outboxPub.PublishOutboxEvent(ctx, dbTx, payload); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publishSync(ctx, payload)

	s.log.Info().
		Str("correlation_id", correlationID.String()).
		Str("from_user_id", fromUserID).
		Str("to_user_id", toUserID).
		Str("amount", amount.String()).
		Msg("transfer applied")

	return []domain.WalletTransaction{outEntry, inEntry}, nil
}

// GetBalance returns the current balance of the user's wallet.
func (s *WalletServiceImpl) GetBalance(ctx context.Context, userID string) (domain.Money, error) {
	wallet, err := s.GetWallet(ctx, userID)
	if err != nil {
		return domain.Money{}, err
	}
	return wallet.Balance, nil
}

// GetHistoricalBalance reconstructs the balance at end of day of date
// from the ledger: the balance_after of the last entry at or before
// that instant, or zero when no entry exists yet.
func (s *WalletServiceImpl) GetHistoricalBalance(ctx context.Context, userID string, date time.Time) (domain.Money, error) {
	if userID == "" {
		return domain.Money{}, apperror.ErrInvalidArgument("UserId cannot be empty")
	}
	if date.IsZero() {
		return domain.Money{}, apperror.ErrInvalidArgument("Date is required")
	}
	endOfDay := endOfDayUTC(date)
	if endOfDay.Truncate(24 * time.Hour).After(time.Now().UTC()) {
		return domain.Money{}, apperror.ErrInvalidArgument("Date cannot be in the future")
	}

	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return domain.Money{}, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return domain.Money{}, apperror.ErrWalletNotFound(userID)
	}

	entries, err := s.txRepo.ListByWalletUntil(ctx, wallet.ID, endOfDay)
	if err != nil {
		return domain.Money{}, apperror.InternalError(fmt.Errorf("list ledger entries: %w", err))
	}
	if len(entries) == 0 {
		return domain.ZeroMoney(wallet.Balance.Currency())
	}
	return entries[len(entries)-1].BalanceAfter, nil
}

// withConflictRetry replays op while it keeps losing the optimistic
// concurrency race, up to maxConflictRetries attempts. Any other error
// is returned as is.
func (s *WalletServiceImpl) withConflictRetry(ctx context.Context, op string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxConflictRetries; attempt++ {
		err = fn()
		if apperror.CodeOf(err) != versionConflictCode {
			return err
		}
		s.log.Warn().
			Str("operation", op).
			Int("attempt", attempt).
			Msg("version conflict, retrying")
		if ctx.Err() != nil {
			return apperror.InternalError(ctx.Err())
		}
	}
	return err
}

// publishSync emits the payload on the synchronous event channel after
// commit. Best-effort: the durable copy already sits in the outbox.
func (s *WalletServiceImpl) publishSync(ctx context.Context, payload domain.EventPayload) {
	if err := s.eventPub.PublishWalletEvent(ctx, payload); err != nil {
		s.log.Warn().
			Err(err).
			Str("event_type", payload.EventType()).
			Msg("synchronous event publish failed")
	}
}

func balanceChangePayload(wallet *domain.Wallet, entry *domain.WalletTransaction, previous, amount domain.Money, now time.Time) domain.EventPayload {
	if entry.Type == domain.TransactionTypeDeposit {
		return domain.FundsDeposited{
			WalletID:        wallet.ID.String(),
			UserID:          wallet.UserID,
			Amount:          amount.Amount(),
			Currency:        amount.Currency(),
			PreviousBalance: previous.Amount(),
			NewBalance:      wallet.Balance.Amount(),
			TransactionID:   entry.ID.String(),
			OccurredAt:      now,
		}
	}
	return domain.FundsWithdrawn{
		WalletID:        wallet.ID.String(),
		UserID:          wallet.UserID,
		Amount:          amount.Amount(),
		Currency:        amount.Currency(),
		PreviousBalance: previous.Amount(),
		NewBalance:      wallet.Balance.Amount(),
		TransactionID:   entry.ID.String(),
		OccurredAt:      now,
	}
}

func describeTransaction(txType domain.TransactionType, otherUserID string) string {
	switch txType {
	case domain.TransactionTypeDeposit:
		return "Deposit to wallet"
	case domain.TransactionTypeWithdraw:
		return "Withdraw from wallet"
	case domain.TransactionTypeTransferOut:
		return "Transfer to user " + otherUserID
	case domain.TransactionTypeTransferIn:
		return "Transfer from user " + otherUserID
	default:
		return ""
	}
}

func endOfDayUTC(date time.Time) time.Time {
	d := date.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999999999, time.UTC)
}
