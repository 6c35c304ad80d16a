package sqlxrepos

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/curaedu/cura/core/values"
)

type valuesRepository struct {
	db *sqlx.DB
}

var _ values.Repository = (*valuesRepository)(nil) // interface compliance check

func NewValuesRepository(db *sqlx.DB) values.Repository {
	return &valuesRepository{db: db}
}

func (repo *valuesRepository) QueryAllStatements() ([]values.Statement, error) {
	stmts := []values.Statement{}
	err := repo.db.Select(&stmts, `SELECT id, text FROM value_statements ORDER BY position`)
	return stmts, errors.Wrap(err, "querying statements")
}

func (repo *valuesRepository) GetStatementByID(id string) (values.Statement, error) {
	var stmt values.Statement
	err := repo.db.Get(&stmt, `SELECT id, text FROM value_statements WHERE id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return values.Statement{}, values.ErrStatementNotFound
		}
		return values.Statement{}, errors.Wrap(err, "getting statement by id")
	}
	return stmt, nil
}

func (repo *valuesRepository) CreateStatement(stmt values.Statement) (values.Statement, error) {
	_, err := repo.db.NamedExec(
		`INSERT INTO value_statements (id, text) VALUES (:id, :text)`, stmt)
	if err != nil {
		return values.Statement{}, errors.Wrap(err, "creating statement")
	}
	return stmt, nil
}

func (repo *valuesRepository) CreateResponse(resp values.Response) (values.Response, error) {
	_, err := repo.db.NamedExec(
		`INSERT INTO values_responses (id, user_id, statement_id, stance, response_text, created_at)
		 VALUES (:id, :user_id, :statement_id, :stance, :response_text, :created_at)`, resp)
	if err != nil {
		return values.Response{}, errors.Wrap(err, "creating response")
	}
	return resp, nil
}

func (repo *valuesRepository) QueryRespondedStatementIDs(userID string, since time.Time) ([]string, error) {
	ids := []string{}
	err := repo.db.Select(&ids,
		`SELECT statement_id FROM values_responses
		 WHERE user_id = $1 AND created_at >= $2`, userID, since)
	return ids, errors.Wrap(err, "querying responded statement ids")
}
