package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/influencer-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-sales-api/internal/domain"
)

type acceptanceRepository struct {
	conn postgres.Conn
}

func NewAcceptanceRepository(conn postgres.Conn) AcceptanceRepository {
	return &acceptanceRepository{
		conn: conn,
	}
}

// InvalidateCodes marca como usados todos os códigos pendentes do usuário
func (r *acceptanceRepository) InvalidateCodes(ctx context.Context, userID int64) error {
	query, args, err := squirrel.
		Update("verification_codes").
		Set("used", true).
		Where(squirrel.Eq{"user_id": userID, "used": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao invalidar códigos: %w", err)
	}

	return nil
}

func (r *acceptanceRepository) InsertCode(ctx context.Context, code *domain.VerificationCode) error {
	query, args, err := squirrel.
		Insert("verification_codes").
		Columns("user_id", "code", "expires_at", "used").
		Values(code.UserID, code.Code, code.ExpiresAt, code.Used).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&code.ID); err != nil {
		return fmt.Errorf("erro ao gravar código de verificação: %w", err)
	}

	return nil
}

// FindCode devolve o código mais recente com esse valor para o usuário
func (r *acceptanceRepository) FindCode(ctx context.Context, userID int64, code string) (*domain.VerificationCode, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "code", "expires_at", "used").
		From("verification_codes").
		Where(squirrel.Eq{"user_id": userID, "code": code}).
		OrderBy("expires_at DESC", "id DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var found domain.VerificationCode
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&found.ID, &found.UserID, &found.Code, &found.ExpiresAt, &found.Used)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar código de verificação: %w", err)
	}

	return &found, nil
}

func (r *acceptanceRepository) MarkCodeUsed(ctx context.Context, id int64) error {
	query, args, err := squirrel.
		Update("verification_codes").
		Set("used", true).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao marcar código como usado: %w", err)
	}

	return requireAffected(result)
}

func (r *acceptanceRepository) InsertAcceptance(ctx context.Context, acceptance *domain.TermsAcceptance) error {
	query, args, err := squirrel.
		Insert("terms_acceptances").
		Columns("user_id", "terms_version", "terms_hash", "accepted_at", "ip_address", "user_agent", "channel", "status").
		Values(
			acceptance.UserID,
			acceptance.TermsVersion,
			acceptance.TermsHash,
			acceptance.AcceptedAt,
			nullString(acceptance.IPAddress),
			nullString(acceptance.UserAgent),
			acceptance.Channel,
			acceptance.Status,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&acceptance.ID); err != nil {
		return fmt.Errorf("erro ao gravar aceite: %w", err)
	}

	return nil
}

func (r *acceptanceRepository) LatestAcceptance(ctx context.Context, userID int64) (*domain.TermsAcceptance, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "terms_version", "terms_hash", "accepted_at", "ip_address", "user_agent", "channel", "status").
		From("terms_acceptances").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("accepted_at DESC", "id DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		found     domain.TermsAcceptance
		ipAddress sql.NullString
		userAgent sql.NullString
	)
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&found.ID,
		&found.UserID,
		&found.TermsVersion,
		&found.TermsHash,
		&found.AcceptedAt,
		&ipAddress,
		&userAgent,
		&found.Channel,
		&found.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar aceite: %w", err)
	}

	found.IPAddress = ipAddress.String
	found.UserAgent = userAgent.String

	return &found, nil
}
