package repository

import "github.com/jackc/pgx/v5/pgxpool"

type Repository struct {
	Interview *InterviewRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Interview: &InterviewRepository{db: db},
	}
}
