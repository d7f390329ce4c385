package pg

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dropDatabas3/postjohn/internal/store/core"
)

// AppendEmailRecord persiste el intento de envío. Append-only: el registro
// queda aunque el despacho posterior falle (no hay rollback).
func (s *Store) AppendEmailRecord(ctx context.Context, to, subject, body string) (*core.EmailRecord, error) {
	const query = `
		INSERT INTO email_log (id, recipient, subject, body)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	rec := core.EmailRecord{
		ID:      uuid.New(),
		To:      to,
		Subject: subject,
		Body:    body,
	}
	err := s.pool.QueryRow(ctx, query, rec.ID, rec.To, rec.Subject, rec.Body).Scan(&rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("pg: append email record: %w", err)
	}
	return &rec, nil
}
