package mapping

import (
	"github.com/SscSPs/pix_wallet/internal/core/domain"
	"github.com/SscSPs/pix_wallet/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d *domain.LedgerEntry) models.LedgerEntry {
	var endToEndID *string
	if d.EndToEndID != "" {
		e := d.EndToEndID
		endToEndID = &e
	}
	return models.LedgerEntry{
		EntryID:       d.EntryID,
		WalletID:      d.WalletID,
		EndToEndID:    endToEndID,
		OperationType: string(d.OperationType),
		Amount:        d.Amount.Decimal(),
		BalanceAfter:  d.BalanceAfter.Decimal(),
		OccurredAt:    d.OccurredAt,
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	d := domain.LedgerEntry{
		EntryID:       m.EntryID,
		WalletID:      m.WalletID,
		OperationType: domain.OperationType(m.OperationType),
		Amount:        domain.MustMoney(m.Amount),
		BalanceAfter:  domain.MustMoney(m.BalanceAfter),
		OccurredAt:    m.OccurredAt,
	}
	if m.EndToEndID != nil {
		d.EndToEndID = *m.EndToEndID
	}
	return d
}

// ToDomainLedgerEntrySlice converts a slice of model entries to domain entries
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
