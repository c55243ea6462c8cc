package inmemdb

import "github.com/Sazzad-Saju/circle-funds-flow/core/fund"

type fundRepository struct {
	db *ledgerTable
}

var _ fund.Repository = (*fundRepository)(nil)

func NewFundRepository(db *DB) fund.Repository {
	return &fundRepository{db: db.ledger}
}

func (repo *fundRepository) GetSummary() (fund.Summary, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.summary, nil
}

func (repo *fundRepository) QueryPayments() ([]fund.MonthlyPayment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	rows := make([]fund.MonthlyPayment, len(repo.db.payments))
	copy(rows, repo.db.payments)
	return rows, nil
}

func (repo *fundRepository) GetPayment(month string) (fund.MonthlyPayment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, row := range repo.db.payments {
		if row.Month == month {
			return row, nil
		}
	}
	return fund.MonthlyPayment{}, fund.ErrMonthNotFound
}

func (repo *fundRepository) QueryContributors() ([]fund.Contributor, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	cs := make([]fund.Contributor, len(repo.db.contributors))
	copy(cs, repo.db.contributors)
	return cs, nil
}

func (repo *fundRepository) QueryGrowth() ([]fund.GrowthPoint, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	pts := make([]fund.GrowthPoint, len(repo.db.growth))
	copy(pts, repo.db.growth)
	return pts, nil
}

func (repo *fundRepository) QueryBreakdown() ([]fund.Share, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	shares := make([]fund.Share, len(repo.db.breakdown))
	copy(shares, repo.db.breakdown)
	return shares, nil
}

// ApplyContribution updates the month row and the summary under one lock.
func (repo *fundRepository) ApplyContribution(month string, amount float64, update func(*fund.MonthlyPayment)) (fund.MonthlyPayment, fund.Summary, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	idx := -1
	for i, row := range repo.db.payments {
		if row.Month == month {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fund.MonthlyPayment{}, fund.Summary{}, fund.ErrMonthNotFound
	}

	rows := make([]fund.MonthlyPayment, len(repo.db.payments))
	copy(rows, repo.db.payments)
	row := rows[idx]
	row.ActualAmount += amount
	if update != nil {
		update(&row)
	}
	rows[idx] = row

	summary := repo.db.summary
	summary.TotalFunds += amount

	repo.db.payments = rows
	repo.db.summary = summary
	return row, summary, nil
}
