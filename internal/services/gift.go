package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/HamMeyva/challenge-engine/internal/clients/counterstore"
	"github.com/HamMeyva/challenge-engine/internal/db"
	"github.com/HamMeyva/challenge-engine/internal/db/model"
	"github.com/HamMeyva/challenge-engine/internal/observability/metrics"
	"github.com/HamMeyva/challenge-engine/internal/types"
)

type SendGiftRequest struct {
	SenderID    string `validate:"required"`
	RecipientID string `validate:"required,nefield=SenderID"`
	GiftID      string `validate:"required"`
	UnitCost    uint64 `validate:"gt=0"`
	Quantity    uint32 `validate:"gt=0"`
	Channel     string `validate:"required"`
	// IsChallengeActive and ActiveChallengeID describe the stream the gift is
	// sent on, as seen by the caller.
	IsChallengeActive bool
	ActiveChallengeID string `validate:"required_if=IsChallengeActive true"`
}

func (r *SendGiftRequest) TotalCost() uint64 {
	return r.UnitCost * uint64(r.Quantity)
}

type GiftReceipt struct {
	GiftEventID string
	TotalCost   uint64
	Streak      int64
	// ChallengeID and RoundNumber are set when the gift counted towards a
	// challenge round.
	ChallengeID string
	RoundNumber uint32
}

// SendGift moves coins from the sender's spendable balance to the
// recipient's earned balance and, while a challenge runs on the stream,
// counts them towards the recipient's side in the current round.
func (s *Service) SendGift(ctx context.Context, req *SendGiftRequest) (receipt *GiftReceipt, err error) {
	defer func() {
		var cost uint64
		if receipt != nil {
			cost = receipt.TotalCost
		}
		metrics.RecordGiftSettled(cost, err != nil)
	}()

	if req == nil {
		return nil, types.NewValidationError(errors.New("empty request"))
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, types.NewValidationError(err)
	}
	if req.UnitCost > math.MaxInt64/uint64(req.Quantity) {
		return nil, types.NewValidationError(errors.New("gift cost overflows"))
	}

	total := req.TotalCost()
	log := log.Ctx(ctx).With().
		Str("sender_id", req.SenderID).
		Str("recipient_id", req.RecipientID).
		Str("gift_id", req.GiftID).
		Uint64("total_cost", total).
		Logger()

	streak := s.bumpStreak(ctx, req)

	wallet, err := s.db.GetWallet(ctx, req.SenderID)
	if err != nil && !db.IsNotFoundError(err) {
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to get sender wallet: %w", err))
	}
	if wallet == nil || wallet.SpendableBalance < int64(total) {
		return nil, types.ErrInsufficientFunds
	}

	now := s.now()
	giftEventID := uuid.NewString()
	entries := []*model.LedgerEntryDocument{
		{
			ID:                uuid.NewString(),
			UserID:            req.SenderID,
			Amount:            -int64(total),
			Type:              types.LedgerEntrySpendGift,
			Balance:           types.BalanceSpendable,
			GiftEventID:       giftEventID,
			CounterpartUserID: req.RecipientID,
			CreatedAt:         now,
		},
		{
			ID:                uuid.NewString(),
			UserID:            req.RecipientID,
			Amount:            int64(total),
			Type:              types.LedgerEntryReceiveGift,
			Balance:           types.BalanceEarned,
			GiftEventID:       giftEventID,
			CounterpartUserID: req.SenderID,
			CreatedAt:         now,
		},
	}
	if err := s.db.SaveLedgerEntries(ctx, entries); err != nil {
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to save ledger entries: %w", err))
	}

	debit, credit := entries[0], entries[1]
	if _, err := s.db.ApplyLedgerEntry(ctx, debit); err != nil {
		if db.IsInsufficientBalanceError(err) {
			// a concurrent gift spent the balance after the check above
			s.voidGiftEvent(ctx, giftEventID)
			return nil, types.ErrInsufficientFunds
		}
		// the debit may or may not have landed; the reconciler settles or
		// voids the event
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to debit sender: %w", err))
	}
	// from here on the gift is committed; the remaining steps never fail it
	if _, err := s.db.ApplyLedgerEntry(ctx, credit); err != nil {
		log.Error().Err(err).Str("entry_id", credit.ID).Msg("failed to apply ledger entry, left to the reconciler")
	}

	receipt = &GiftReceipt{
		GiftEventID: giftEventID,
		TotalCost:   total,
		Streak:      streak,
	}

	challenge := s.activeChallengeFor(ctx, req)
	if challenge != nil {
		receipt.ChallengeID = challenge.ID
		receipt.RoundNumber = challenge.CurrentRound
	}

	gift := &model.GiftDocument{
		ID:          giftEventID,
		SenderID:    req.SenderID,
		RecipientID: req.RecipientID,
		GiftID:      req.GiftID,
		Channel:     req.Channel,
		Quantity:    req.Quantity,
		UnitCost:    req.UnitCost,
		CoinValue:   total,
		Streak:      streak,
		ChallengeID: receipt.ChallengeID,
		RoundNumber: receipt.RoundNumber,
		CreatedAt:   now,
	}
	if err := s.db.SaveGift(ctx, gift); err != nil {
		log.Error().Err(err).Str("gift_event_id", giftEventID).Msg("failed to save gift record")
	}

	if challenge != nil {
		_, err := s.counters.IncrementRoundCoins(ctx, challenge.ID, challenge.CurrentRound, req.RecipientID, total)
		if err != nil {
			log.Error().Err(err).
				Str("challenge_id", challenge.ID).
				Uint32("round", challenge.CurrentRound).
				Msg("failed to count gift towards challenge round")
		}
	}

	if err := s.db.IncrementChannelGiftStats(ctx, req.Channel, uint64(req.Quantity), total); err != nil {
		log.Warn().Err(err).Msg("failed to update channel gift stats")
	}
	if err := s.db.IncrementViewerGiftStats(ctx, req.SenderID, req.RecipientID, total); err != nil {
		log.Warn().Err(err).Msg("failed to update viewer gift stats")
	}

	log.Debug().
		Str("gift_event_id", giftEventID).
		Int64("streak", streak).
		Str("challenge_id", receipt.ChallengeID).
		Msg("gift settled")
	return receipt, nil
}

// bumpStreak returns the streak value, or 0 if the counter store is unavailable.
func (s *Service) bumpStreak(ctx context.Context, req *SendGiftRequest) int64 {
	key := counterstore.StreakKey{
		Channel:     req.Channel,
		SenderID:    req.SenderID,
		RecipientID: req.RecipientID,
		GiftID:      req.GiftID,
	}
	streak, err := s.counters.IncrementStreak(ctx, key, s.cfg.Gift.StreakWindow)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Stringer("key", key).Msg("failed to increment gift streak")
		return 0
	}
	return streak
}

// activeChallengeFor returns the challenge the gift counts towards, nil if
// the stream has none or it is no longer active.
func (s *Service) activeChallengeFor(ctx context.Context, req *SendGiftRequest) *model.ChallengeDocument {
	if !req.IsChallengeActive {
		return nil
	}

	challenge, err := s.db.GetActiveChallengeByID(ctx, req.ActiveChallengeID)
	if err != nil {
		if !db.IsNotFoundError(err) {
			log.Ctx(ctx).Error().Err(err).
				Str("challenge_id", req.ActiveChallengeID).
				Msg("failed to load active challenge, gift not counted")
		}
		return nil
	}
	return challenge
}

// CreditPurchase books purchased coins to the user's spendable balance.
// reference must be unique per purchase so that replays are rejected.
func (s *Service) CreditPurchase(ctx context.Context, userID string, coins uint64, reference string) error {
	if userID == "" || reference == "" || coins == 0 || coins > math.MaxInt64 {
		return types.NewValidationError(errors.New("user, reference and a positive amount are required"))
	}

	entry := &model.LedgerEntryDocument{
		ID:        "purchase:" + reference,
		UserID:    userID,
		Amount:    int64(coins),
		Type:      types.LedgerEntryPurchase,
		Balance:   types.BalanceSpendable,
		CreatedAt: s.now(),
	}
	if err := s.db.SaveLedgerEntries(ctx, []*model.LedgerEntryDocument{entry}); err != nil {
		if db.IsDuplicateKeyError(err) {
			return types.NewErrorWithMsg(http.StatusConflict, types.Conflict, fmt.Sprintf("purchase %s already booked", reference))
		}
		return types.NewInternalServiceError(fmt.Errorf("failed to save purchase entry: %w", err))
	}

	if _, err := s.db.ApplyLedgerEntry(ctx, entry); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("entry_id", entry.ID).Msg("failed to apply purchase, left to the reconciler")
	}
	return nil
}

// reconcileLedger applies ledger entries whose wallet update was lost. Gift
// events are settled as a unit, debit first, and voided if the sender can no
// longer cover them.
func (s *Service) reconcileLedger(ctx context.Context) error {
	createdBefore := s.now().Add(-s.cfg.Poller.LedgerReconcileDelay)
	entries, err := s.db.FindUnappliedLedgerEntries(ctx, createdBefore, s.cfg.Poller.LedgerReconcileLimit)
	if err != nil {
		return fmt.Errorf("failed to find unapplied ledger entries: %w", err)
	}
	metrics.RecordUnappliedLedgerEntries(len(entries))

	var applyErrs []error
	giftEvents := make(map[string]bool)
	for _, entry := range entries {
		if entry.GiftEventID == "" {
			if err := s.reconcileEntry(ctx, entry); err != nil {
				applyErrs = append(applyErrs, err)
			}
			continue
		}

		if giftEvents[entry.GiftEventID] {
			continue
		}
		giftEvents[entry.GiftEventID] = true
		if err := s.reconcileGiftEvent(ctx, entry.GiftEventID); err != nil {
			applyErrs = append(applyErrs, fmt.Errorf("gift event %s: %w", entry.GiftEventID, err))
		}
	}

	return errors.Join(applyErrs...)
}

func (s *Service) reconcileGiftEvent(ctx context.Context, giftEventID string) error {
	entries, err := s.db.GetLedgerEntriesByGiftEvent(ctx, giftEventID)
	if err != nil {
		return fmt.Errorf("failed to get ledger entries: %w", err)
	}

	for _, entry := range entries {
		if entry.Applied || entry.Voided {
			continue
		}
		err := s.reconcileEntry(ctx, entry)
		if db.IsInsufficientBalanceError(err) {
			s.voidGiftEvent(ctx, giftEventID)
			return nil
		}
		if err != nil {
			// a credit is never applied ahead of its debit
			return err
		}
	}
	return nil
}

func (s *Service) reconcileEntry(ctx context.Context, entry *model.LedgerEntryDocument) error {
	applied, err := s.db.ApplyLedgerEntry(ctx, entry)
	if err != nil {
		return fmt.Errorf("entry %s: %w", entry.ID, err)
	}
	log.Ctx(ctx).Info().
		Str("entry_id", entry.ID).
		Str("user_id", entry.UserID).
		Int64("amount", entry.Amount).
		Bool("balance_moved", applied).
		Msg("reconciled ledger entry")
	return nil
}

// voidGiftEvent is best effort: entries it fails to void are picked up by
// the reconciler, which voids them again.
func (s *Service) voidGiftEvent(ctx context.Context, giftEventID string) {
	if err := s.db.VoidLedgerEntries(ctx, giftEventID); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("gift_event_id", giftEventID).Msg("failed to void gift ledger entries")
		return
	}
	log.Ctx(ctx).Warn().Str("gift_event_id", giftEventID).Msg("gift voided, sender balance does not cover it")
}
