// File: database/repository/ledger/interface.go
package ledgerRepo

import (
	"context"

	"classboard/models"
)

// LedgerRepository mirrors the grade ledger. Position is the semester's index
// in the ledger and is what List orders by.
type LedgerRepository interface {
	List(ctx context.Context) ([]models.Semester, error)
	Save(ctx context.Context, position int, semester models.Semester) error
	Delete(ctx context.Context, semesterID string) error
	Clear(ctx context.Context) error
}
