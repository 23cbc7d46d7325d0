package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"pet-adoption-api/internal/domain/adoptions"
)

const recordColumns = `
	id, name, type, age,
	area, location,
	justification, description,
	email, phone, owner,
	filename, status, updated_at`

type AdoptionsRepo struct {
	db *sql.DB
}

func NewAdoptionsRepo(db *sql.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

func (r *AdoptionsRepo) Create(ctx context.Context, rec adoptions.Record) (adoptions.RawRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO adoption_requests (
			id, name, type, age, area, justification,
			email, phone, filename, status, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,now())
		RETURNING `+recordColumns,
		rec.ID,
		rec.Name,
		string(rec.Type),
		rec.Age,
		rec.Area,
		rec.Justification,
		rec.Email,
		rec.Phone,
		rec.Filename,
		string(rec.Status),
	)
	return scanRecord(row)
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.RawRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return adoptions.RawRecord{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+recordColumns+`
		FROM adoption_requests
		WHERE id = $1
	`, id)
	return scanRecord(row)
}

func (r *AdoptionsRepo) ListByStatus(ctx context.Context, status adoptions.Status) ([]adoptions.RawRecord, error) {
	return r.list(ctx, `
		SELECT `+recordColumns+`
		FROM adoption_requests
		WHERE status = $1
		ORDER BY updated_at DESC
	`, string(status))
}

func (r *AdoptionsRepo) ListAll(ctx context.Context) ([]adoptions.RawRecord, error) {
	return r.list(ctx, `
		SELECT `+recordColumns+`
		FROM adoption_requests
		ORDER BY updated_at DESC
	`)
}

// Update aplica solo los campos no-nil (semántica de merge por campo,
// como el findByIdAndUpdate original) y devuelve el documento resultante.
func (r *AdoptionsRepo) Update(ctx context.Context, id string, p adoptions.Patch) (adoptions.RawRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE adoption_requests SET
			name          = COALESCE($2, name),
			type          = COALESCE($3, type),
			age           = COALESCE($4, age),
			area          = COALESCE($5, area),
			justification = COALESCE($6, justification),
			email         = COALESCE($7, email),
			phone         = COALESCE($8, phone),
			filename      = COALESCE($9, filename),
			status        = COALESCE($10, status),
			updated_at    = now()
		WHERE id = $1
		RETURNING `+recordColumns,
		id,
		toNullString(p.Name),
		toNullString(p.Type),
		toNullString(p.Age),
		toNullString(p.Area),
		toNullString(p.Justification),
		toNullString(p.Email),
		toNullString(p.Phone),
		toNullString(p.Filename),
		toNullString(p.Status),
	)
	return scanRecord(row)
}

func (r *AdoptionsRepo) Delete(ctx context.Context, id string) (adoptions.RawRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		DELETE FROM adoption_requests
		WHERE id = $1
		RETURNING `+recordColumns,
		id,
	)
	return scanRecord(row)
}

func (r *AdoptionsRepo) list(ctx context.Context, query string, args ...any) ([]adoptions.RawRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]adoptions.RawRecord, 0)
	for rows.Next() {
		raw, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, raw)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

// scanRecord tolera NULLs: filas migradas del sistema anterior pueden
// traer casi cualquier columna vacía.
func scanRecord(row scanner) (adoptions.RawRecord, error) {
	var (
		raw       adoptions.RawRecord
		name      sql.NullString
		petType   sql.NullString
		age       sql.NullString
		area      sql.NullString
		location  sql.NullString
		justif    sql.NullString
		descr     sql.NullString
		email     sql.NullString
		phone     sql.NullString
		ownerDoc  []byte
		filename  sql.NullString
		statusVal sql.NullString
	)

	if err := row.Scan(
		&raw.ID,
		&name,
		&petType,
		&age,
		&area,
		&location,
		&justif,
		&descr,
		&email,
		&phone,
		&ownerDoc,
		&filename,
		&statusVal,
		&raw.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return adoptions.RawRecord{}, ErrNotFound
		}
		return adoptions.RawRecord{}, err
	}

	raw.Name = name.String
	raw.Type = adoptions.PetType(petType.String)
	raw.Age = age.String
	raw.Area = area.String
	raw.Location = location.String
	raw.Justification = justif.String
	raw.Description = descr.String
	raw.Email = email.String
	raw.Phone = phone.String
	raw.Filename = filename.String
	raw.Status = adoptions.Status(statusVal.String)

	if len(ownerDoc) > 0 {
		var owner adoptions.Owner
		if err := json.Unmarshal(ownerDoc, &owner); err == nil {
			raw.Owner = &owner
		}
	}

	return raw, nil
}

func toNullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}
