package values

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/curaedu/cura/core"
)

var (
	// errors
	ErrStatementNotFound = errors.New("statement not found")

	nowFunc = time.Now // mockable
)

type (
	Repository interface {
		// QueryAllStatements returns every statement in stable insertion order.
		QueryAllStatements() ([]Statement, error)
		GetStatementByID(id string) (Statement, error)
		CreateStatement(stmt Statement) (Statement, error)
		CreateResponse(resp Response) (Response, error)
		// QueryRespondedStatementIDs returns the ids of statements the user
		// responded to at or after the given instant.
		QueryRespondedStatementIDs(userID string, since time.Time) ([]string, error)
	}

	// ReflectionGenerator produces reflections from an AI collaborator.
	ReflectionGenerator interface {
		GenerateReflection(ctx context.Context, statementText, stance, responseText string) (string, error)
	}

	Service struct {
		repo Repository
		gen  ReflectionGenerator
	}
)

func NewService(repo Repository, gen ReflectionGenerator) *Service {
	return &Service{repo: repo, gen: gen}
}

// NextFor returns the next statement the student has not responded to
// within the current week window.
func (svc *Service) NextFor(userID string) (Statement, error) {
	stmts, err := svc.repo.QueryAllStatements()
	if err != nil {
		return Statement{}, err
	}

	ids, err := svc.repo.QueryRespondedStatementIDs(userID, WeekStart(nowFunc()))
	if err != nil {
		return Statement{}, err
	}
	responded := make(map[string]bool, len(ids))
	for _, id := range ids {
		responded[id] = true
	}

	return NextStatement(stmts, responded)
}

// Respond stores the student's response and returns an AI reflection on it.
// If the reflection call fails the stored response is kept; there is no
// compensating delete.
func (svc *Service) Respond(ctx context.Context, userID string, nr NewResponse) (Response, string, error) {
	stmt, err := svc.repo.GetStatementByID(nr.StatementID)
	if err != nil {
		if err == ErrStatementNotFound {
			return Response{}, "", core.NewNotFoundError("statement")
		}
		return Response{}, "", err
	}

	resp := Response{
		ID:          uuid.NewString(),
		UserID:      userID,
		StatementID: stmt.ID,
		Stance:      nr.Stance,
		Text:        nr.Response,
		CreatedAt:   time.Now().UTC(),
	}
	resp, err = svc.repo.CreateResponse(resp)
	if err != nil {
		return Response{}, "", err
	}

	reflection, err := svc.gen.GenerateReflection(ctx, stmt.Text, resp.Stance, resp.Text)
	if err != nil {
		return resp, "", core.NewUpstreamError("generating reflection", err)
	}
	return resp, reflection, nil
}
