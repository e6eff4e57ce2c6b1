package ledger

import (
	"context"
	"testing"

	"github.com/davitra/go-backoffice/app/models"
)

type fakeLineRepo struct {
	lines []*models.StatementLine
}

func (f *fakeLineRepo) FindUnreconciledByAccount(_ context.Context, accountID uint) ([]*models.StatementLine, error) {
	var out []*models.StatementLine
	for _, l := range f.lines {
		if l.AccountID == accountID && !l.Reconciled {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLineRepo) SetMatched(_ context.Context, ids []uint, matched bool) error {
	for _, l := range f.lines {
		for _, id := range ids {
			if l.ID == id {
				l.Matched = matched
			}
		}
	}
	return nil
}

func (f *fakeLineRepo) MarkReconciled(_ context.Context, ids []uint) error {
	for _, l := range f.lines {
		for _, id := range ids {
			if l.ID == id {
				l.Reconciled = true
				l.Matched = false
			}
		}
	}
	return nil
}

func (f *fakeLineRepo) Create(_ context.Context, line *models.StatementLine) error {
	line.ID = uint(len(f.lines) + 1)
	f.lines = append(f.lines, line)
	return nil
}

func seedLines(repo *fakeLineRepo, lines ...*models.StatementLine) {
	for _, l := range lines {
		repo.Create(context.Background(), l)
	}
}

func TestReconcileServiceAutoMatchPersistsFlags(t *testing.T) {
	repo := &fakeLineRepo{}
	seedLines(repo,
		line(1, models.LineSourceBank, "2025-10-01", 500),
		line(1, models.LineSourceBook, "2025-10-01", 500),
		line(1, models.LineSourceBook, "2025-10-05", 75),
		line(2, models.LineSourceBank, "2025-10-01", 500), // other account
	)
	svc := NewReconcileService(repo, quietLogger())

	pairs, err := svc.AutoMatch(context.Background(), 1)
	if err != nil {
		t.Fatalf("AutoMatch: %v", err)
	}
	if pairs != 1 {
		t.Fatalf("pairs = %d", pairs)
	}
	if !repo.lines[0].Matched || !repo.lines[1].Matched {
		t.Error("matched flags should be persisted")
	}
	if repo.lines[2].Matched || repo.lines[3].Matched {
		t.Error("unrelated lines must stay unmatched")
	}
}

func TestReconcileServiceCommit(t *testing.T) {
	repo := &fakeLineRepo{}
	seedLines(repo,
		line(1, models.LineSourceBank, "2025-10-01", 500),
		line(1, models.LineSourceBook, "2025-10-01", 500),
	)
	svc := NewReconcileService(repo, quietLogger())

	if _, err := svc.AutoMatch(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	committed, err := svc.Commit(context.Background(), 1)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if committed != 2 {
		t.Fatalf("committed = %d", committed)
	}
	for _, l := range repo.lines {
		if !l.Reconciled || l.Matched {
			t.Errorf("line %d should be reconciled and unmatched", l.ID)
		}
	}

	// a second pass finds nothing left to work on
	pairs, err := svc.AutoMatch(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if pairs != 0 {
		t.Errorf("reconciled lines must never match again, got %d pairs", pairs)
	}
}
