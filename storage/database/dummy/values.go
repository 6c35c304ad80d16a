package dummydb

import (
	"time"

	"github.com/curaedu/cura/core/values"
)

type valuesRepository struct {
	db *valuesTable
}

var _ values.Repository = (*valuesRepository)(nil) // interface compliance check

func NewValuesRepository(db *DB) values.Repository {
	return &valuesRepository{db: db.values}
}

func (repo *valuesRepository) QueryAllStatements() ([]values.Statement, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]values.Statement(nil), repo.db.statements...), nil
}

func (repo *valuesRepository) GetStatementByID(id string) (values.Statement, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, stmt := range repo.db.statements {
		if stmt.ID == id {
			return stmt, nil
		}
	}
	return values.Statement{}, values.ErrStatementNotFound
}

func (repo *valuesRepository) CreateStatement(stmt values.Statement) (values.Statement, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.statements = append(repo.db.statements, stmt)
	return stmt, nil
}

func (repo *valuesRepository) CreateResponse(resp values.Response) (values.Response, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.responses = append(repo.db.responses, resp)
	return resp, nil
}

func (repo *valuesRepository) QueryRespondedStatementIDs(userID string, since time.Time) ([]string, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	ids := []string{}
	for _, resp := range repo.db.responses {
		if resp.UserID == userID && !resp.CreatedAt.Before(since) {
			ids = append(ids, resp.StatementID)
		}
	}
	return ids, nil
}
