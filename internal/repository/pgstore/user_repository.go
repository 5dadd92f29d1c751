package pgstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/more-experts/support-portal/internal/domain"
	"github.com/more-experts/support-portal/internal/repository"
)

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &userRepository{pool: pool}
}

const userColumns = `id, name, email, password_hash, package, status, dob, gender, mobile, linkedin,
        address, profile_pic, doc_id_proof, doc_service_guide, doc_contract, doc_cover_letter,
        created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (name, email, password_hash, package, status, dob, gender, mobile, linkedin,
            address, profile_pic, doc_id_proof, doc_service_guide, doc_contract, doc_cover_letter)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Package,
		user.Status,
		user.DOB,
		user.Gender,
		user.Mobile,
		user.LinkedIn,
		user.Address,
		user.ProfilePic,
		user.Documents.IDProof,
		user.Documents.ServiceGuide,
		user.Documents.Contract,
		user.Documents.CoverLetter,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if isUniqueViolation(err) {
		return repository.ErrDuplicate
	}
	return err
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	const query = `
        UPDATE users SET name=$1, email=$2, password_hash=$3, package=$4, status=$5, dob=$6, gender=$7,
            mobile=$8, linkedin=$9, address=$10, profile_pic=$11, doc_id_proof=$12, doc_service_guide=$13,
            doc_contract=$14, doc_cover_letter=$15, updated_at=NOW()
        WHERE id=$16`

	cmd, err := r.pool.Exec(ctx, query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Package,
		user.Status,
		user.DOB,
		user.Gender,
		user.Mobile,
		user.LinkedIn,
		user.Address,
		user.ProfilePic,
		user.Documents.IDProof,
		user.Documents.ServiceGuide,
		user.Documents.Contract,
		user.Documents.CoverLetter,
		user.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	if cmd.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.fetchSingle(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.fetchSingle(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1`, email)
}

func (r *userRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	if err := scanUser(r.pool.QueryRow(ctx, query, arg), &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.User
	for rows.Next() {
		var user domain.User
		if err := scanUser(rows, &user); err != nil {
			return nil, err
		}
		result = append(result, user)
	}
	return result, rows.Err()
}

func scanUser(row pgx.Row, user *domain.User) error {
	return row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Package,
		&user.Status,
		&user.DOB,
		&user.Gender,
		&user.Mobile,
		&user.LinkedIn,
		&user.Address,
		&user.ProfilePic,
		&user.Documents.IDProof,
		&user.Documents.ServiceGuide,
		&user.Documents.Contract,
		&user.Documents.CoverLetter,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}
