package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/zhanxing-dev/featured-manager/backend/internal/domain"
	"github.com/zhanxing-dev/featured-manager/backend/internal/featured"
)

func (r *Repository) Create(slot *domain.FeaturedSlot) error {
	query := `
		INSERT INTO featured_slots (
			name,
			description,
			image_ref,
			contact_number,
			instagram_url,
			facebook_url,
			website_url,
			start_date,
			end_date,
			is_live
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{
		slot.Name,
		slot.Description,
		slot.ImageRef,
		slot.ContactNumber,
		slot.SocialLinks.Instagram,
		slot.SocialLinks.Facebook,
		slot.SocialLinks.Website,
		slot.StartDate,
		slot.EndDate,
		slot.IsLive,
	}
	dst := []any{&slot.ID, &slot.CreatedAt, &slot.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) Update(slot *domain.FeaturedSlot) error {
	query := `
		UPDATE featured_slots
		SET
			name = $1,
			description = $2,
			image_ref = $3,
			contact_number = $4,
			instagram_url = $5,
			facebook_url = $6,
			website_url = $7,
			start_date = $8,
			end_date = $9,
			is_live = $10,
			version = version + 1
		WHERE id = $11 AND version = $12
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{
		slot.Name,
		slot.Description,
		slot.ImageRef,
		slot.ContactNumber,
		slot.SocialLinks.Instagram,
		slot.SocialLinks.Facebook,
		slot.SocialLinks.Website,
		slot.StartDate,
		slot.EndDate,
		slot.IsLive,
		slot.ID,
		slot.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&slot.Version); err != nil {
		// id 不存在和版本冲突都会落在这里，调用方重新读取后重试即可
		if errors.Is(err, sql.ErrNoRows) {
			return featured.ErrNotFound
		}
		return err
	}

	return nil
}

func (r *Repository) GetByID(id int64) (*domain.FeaturedSlot, error) {
	query := `
		SELECT
			name,
			description,
			image_ref,
			contact_number,
			instagram_url,
			facebook_url,
			website_url,
			start_date,
			end_date,
			is_live,
			created_at,
			version
		FROM featured_slots
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	slot := &domain.FeaturedSlot{
		ID: id,
	}

	var startDate, endDate sql.NullTime
	dst := []any{
		&slot.Name,
		&slot.Description,
		&slot.ImageRef,
		&slot.ContactNumber,
		&slot.SocialLinks.Instagram,
		&slot.SocialLinks.Facebook,
		&slot.SocialLinks.Website,
		&startDate,
		&endDate,
		&slot.IsLive,
		&slot.CreatedAt,
		&slot.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, featured.ErrNotFound
		}
		return nil, err
	}

	if startDate.Valid {
		slot.StartDate = &startDate.Time
	}
	if endDate.Valid {
		slot.EndDate = &endDate.Time
	}

	return slot, nil
}

func (r *Repository) GetAll() ([]*domain.FeaturedSlot, error) {
	query := `
		SELECT
			id,
			name,
			description,
			image_ref,
			contact_number,
			instagram_url,
			facebook_url,
			website_url,
			start_date,
			end_date,
			is_live,
			created_at,
			version
		FROM featured_slots
		ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := []*domain.FeaturedSlot{}
	for rows.Next() {
		slot := &domain.FeaturedSlot{}
		var startDate, endDate sql.NullTime
		dst := []any{
			&slot.ID,
			&slot.Name,
			&slot.Description,
			&slot.ImageRef,
			&slot.ContactNumber,
			&slot.SocialLinks.Instagram,
			&slot.SocialLinks.Facebook,
			&slot.SocialLinks.Website,
			&startDate,
			&endDate,
			&slot.IsLive,
			&slot.CreatedAt,
			&slot.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		if startDate.Valid {
			slot.StartDate = &startDate.Time
		}
		if endDate.Valid {
			slot.EndDate = &endDate.Time
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return slots, nil
}
